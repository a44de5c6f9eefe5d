package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/arcana/internal/models"
	"github.com/julianstephens/arcana/internal/validation"
)

type TarotCmd struct {
	Question    string `arg:"" optional:"" help:"Question to hold while shuffling."`
	Spread      string `short:"s" help:"Spread id (defaults to the configured spread)."`
	NoReversals bool   `help:"Deal every card upright."`
	Save        bool   `help:"Persist the reading."`
}

func (c *TarotCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	spreadID := c.Spread
	if spreadID == "" {
		spreadID = settings.DefaultSpread
	}
	allowReversals := settings.AllowReversals
	if c.NoReversals {
		allowReversals = false
	}

	question := strings.TrimSpace(c.Question)
	if question != "" {
		if result := validation.New().ValidateQuestion(question); result.HasIssues() {
			return fmt.Errorf("%s", result.FormatReport())
		}
	}

	state, err := ctx.Tarot.StartReading(spreadID, question, allowReversals)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", state.Spread.Name)
	if question != "" {
		fmt.Printf("Question: %s\n", question)
	}
	fmt.Println()

	for i, drawn := range state.DrawnCards {
		pos := state.Spread.Positions[i]
		fmt.Printf("%d. %s\n", pos.Index+1, pos.Name)
		fmt.Printf("   %s\n", formatCard(drawn))
		fmt.Printf("   %s\n", strings.Join(cardKeywords(drawn), ", "))
	}

	if c.Save {
		reading := newReading(models.SystemTarot)
		reading.Tarot = &state
		if err := ctx.Store.SaveReading(reading); err != nil {
			return fmt.Errorf("failed to save reading: %w", err)
		}
		fmt.Printf("\nSaved reading %s\n", reading.ID)
	}

	return nil
}

// formatCard renders a drawn card as "The Tower (reversed)".
func formatCard(drawn models.DrawnCard) string {
	if drawn.Reversed {
		return drawn.Card.Name + " (reversed)"
	}
	return drawn.Card.Name
}

func cardKeywords(drawn models.DrawnCard) []string {
	if drawn.Reversed {
		return drawn.Card.KeywordsReversed
	}
	return drawn.Card.KeywordsUpright
}
