package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/arcana/internal/astro"
	"github.com/julianstephens/arcana/internal/models"
	"github.com/julianstephens/arcana/internal/storage"
)

type ReadingCmd struct {
	List    ReadingListCmd    `cmd:"" help:"List saved readings."`
	Show    ReadingShowCmd    `cmd:"" help:"Show one reading in full."`
	Delete  ReadingDeleteCmd  `cmd:"" help:"Soft-delete a reading."`
	Restore ReadingRestoreCmd `cmd:"" help:"Restore a soft-deleted reading."`
}

type ReadingListCmd struct {
	System string `short:"s" help:"Only list readings for one system (astrology, tarot, iching)."`
}

func (c *ReadingListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	readings, err := ctx.Store.GetAllReadings()
	if err != nil {
		return fmt.Errorf("failed to list readings: %w", err)
	}

	if c.System != "" {
		filtered := readings[:0]
		for _, r := range readings {
			if string(r.System) == c.System {
				filtered = append(filtered, r)
			}
		}
		readings = filtered
	}

	if len(readings) == 0 {
		fmt.Println("No readings saved.")
		return nil
	}

	sort.Slice(readings, func(i, j int) bool {
		return readings[i].CreatedAt.Before(readings[j].CreatedAt)
	})
	for _, r := range readings {
		fmt.Println(formatReadingLine(r))
	}
	return nil
}

type ReadingShowCmd struct {
	ID string `arg:"" help:"Reading id (a unique prefix is enough)."`
}

func (c *ReadingShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	reading, err := resolveReading(ctx.Store, c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Reading %s (%s)\n", reading.ID, reading.System)
	fmt.Printf("Created: %s\n\n", reading.CreatedAt.Local().Format("2006-01-02 15:04"))

	switch reading.System {
	case models.SystemAstrology:
		showAstrology(reading.Astrology)
	case models.SystemTarot:
		showTarot(reading.Tarot)
	case models.SystemIChing:
		showIChing(ctx, reading.IChing)
	}

	return nil
}

func showAstrology(state *models.AstrologyReading) {
	if state == nil || state.Chart == nil {
		fmt.Println("No chart recorded.")
		return
	}
	chart := state.Chart
	fmt.Printf("  Ascendant  %s %.2f°\n", titleCase(chart.Ascendant.Sign), chart.Ascendant.Degrees)
	fmt.Printf("  Midheaven  %s %.2f°\n", titleCase(chart.Midheaven.Sign), chart.Midheaven.Degrees)
	for _, id := range []string{"sun", "moon", "mercury", "venus", "mars", "jupiter", "saturn", "uranus", "neptune", "pluto"} {
		if pos, ok := astro.ChartPosition(chart, id); ok {
			fmt.Printf("  %-9s  %s\n", titleCase(id), formatPosition(pos))
		}
	}
	fmt.Printf("\nRevealed: %d/11\n", len(state.RevealedPlanets))
	showFeedback(state.Feedback)
}

func showTarot(state *models.TarotReading) {
	if state == nil {
		fmt.Println("No cards recorded.")
		return
	}
	fmt.Printf("%s\n", state.Spread.Name)
	if state.Question != "" {
		fmt.Printf("Question: %s\n", state.Question)
	}
	for i, drawn := range state.DrawnCards {
		marker := " "
		if i < state.RevealedIndex {
			marker = "*"
		}
		fmt.Printf("%s %d. %s: %s\n", marker, i+1, state.Spread.Positions[i].Name, formatCard(drawn))
	}
	fmt.Printf("\nRevealed: %d/%d\n", state.RevealedIndex, len(state.DrawnCards))
	showFeedback(state.Feedback)
}

func showIChing(ctx *Context, state *models.IChingReading) {
	if state == nil {
		fmt.Println("No cast recorded.")
		return
	}
	fmt.Println(ctx.IChing.CastingSummary(*state))
	fmt.Printf("\nRevealed: %d/%d changing lines\n", state.RevealedLines, len(state.Cast.ChangingLines))
	showFeedback(state.Feedback)
}

func showFeedback(entries []models.FeedbackEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Println("\nFeedback:")
	for _, f := range entries {
		line := fmt.Sprintf("  %s: %s", titleCase(f.Element), f.Text)
		fmt.Println(line)
	}
}

type ReadingDeleteCmd struct {
	ID string `arg:"" help:"Reading id (a unique prefix is enough)."`
}

func (c *ReadingDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	reading, err := resolveReading(ctx.Store, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteReading(reading.ID); err != nil {
		return fmt.Errorf("failed to delete reading: %w", err)
	}
	fmt.Printf("Deleted reading %s (restore with 'arcana reading restore %s')\n", reading.ID, reading.ID)
	return nil
}

type ReadingRestoreCmd struct {
	ID string `arg:"" help:"Full id of the deleted reading."`
}

func (c *ReadingRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if err := ctx.Store.RestoreReading(c.ID); err != nil {
		return fmt.Errorf("failed to restore reading: %w", err)
	}
	fmt.Printf("Restored reading %s\n", c.ID)
	return nil
}

// resolveReading finds a reading by full id or unique id prefix. Deleted
// readings are not matched; restore takes the full id instead.
func resolveReading(store storage.Provider, id string) (models.Reading, error) {
	if reading, err := store.GetReading(id); err == nil {
		return reading, nil
	}

	readings, err := store.GetAllReadings()
	if err != nil {
		return models.Reading{}, fmt.Errorf("failed to list readings: %w", err)
	}

	var matches []models.Reading
	for _, r := range readings {
		if strings.HasPrefix(r.ID, id) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Reading{}, fmt.Errorf("reading not found: %s", id)
	default:
		return models.Reading{}, fmt.Errorf("ambiguous reading id %q matches %d readings", id, len(matches))
	}
}
