package cli

import (
	"fmt"

	"github.com/julianstephens/arcana/internal/astro"
	"github.com/julianstephens/arcana/internal/models"
	"github.com/julianstephens/arcana/internal/validation"
)

type ChartCmd struct {
	Year      int      `arg:"" help:"Birth year (astronomical numbering, 0 = 1 BCE)."`
	Month     int      `arg:"" help:"Birth month (1-12)."`
	Day       *int     `short:"d" help:"Birth day of month (defaults to 1)."`
	Hour      *int     `short:"H" help:"Birth hour, local time 0-23 (defaults to 12)."`
	Minute    *int     `short:"M" help:"Birth minute (defaults to 0)."`
	Latitude  *float64 `help:"Birth latitude in degrees, north positive."`
	Longitude *float64 `help:"Birth longitude in degrees, east positive."`
	Timezone  *float64 `help:"UTC offset in hours (e.g. -5 for EST)."`
	Save      bool     `help:"Persist the chart as a reading."`
}

func (c *ChartCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	result := validation.New().ValidateBirthData(validation.BirthInput{
		Year: c.Year, Month: c.Month, Day: c.Day,
		Hour: c.Hour, Minute: c.Minute,
		Latitude: c.Latitude, Longitude: c.Longitude, Timezone: c.Timezone,
	})
	if result.HasIssues() {
		return fmt.Errorf("%s", result.FormatReport())
	}

	birth := models.BirthData{
		Year: c.Year, Month: c.Month, Day: c.Day,
		Hour: c.Hour, Minute: c.Minute,
		Latitude: c.Latitude, Longitude: c.Longitude, Timezone: c.Timezone,
	}

	// Observer defaults come from settings when the flags are omitted.
	settings, err := ctx.Store.GetSettings()
	if err == nil {
		if birth.Latitude == nil {
			birth.Latitude = &settings.DefaultLatitude
		}
		if birth.Longitude == nil {
			birth.Longitude = &settings.DefaultLongitude
		}
		if birth.Timezone == nil {
			birth.Timezone = &settings.DefaultTimezone
		}
	}

	state, err := ctx.Astro.StartReading(birth)
	if err != nil {
		return fmt.Errorf("failed to compute chart: %w", err)
	}
	chart := state.Chart

	fmt.Printf("Natal chart for %d-%02d", c.Year, c.Month)
	if c.Day != nil {
		fmt.Printf("-%02d", *c.Day)
	}
	fmt.Println()
	fmt.Println()

	fmt.Printf("  Ascendant  %s\n", formatSignPosition(chart.Ascendant))
	fmt.Printf("  Midheaven  %s\n", formatSignPosition(chart.Midheaven))
	fmt.Println()

	for _, id := range []string{"sun", "moon", "mercury", "venus", "mars", "jupiter", "saturn", "uranus", "neptune", "pluto"} {
		pos, ok := astro.ChartPosition(chart, id)
		if !ok {
			continue
		}
		fmt.Printf("  %-9s  %s\n", titleCase(id), formatPosition(pos))
	}

	if len(chart.Aspects) > 0 {
		fmt.Println()
		fmt.Printf("Aspects (%d, tightest first):\n", len(chart.Aspects))
		for _, a := range chart.Aspects {
			fmt.Printf("  %s %s %s %s (orb %.2f°)\n",
				titleCase(a.Planet1), a.AspectSymbol, titleCase(a.Planet2), a.AspectName, a.Orb)
		}
	}

	if c.Save {
		reading := newReading(models.SystemAstrology)
		reading.Astrology = &state
		if err := ctx.Store.SaveReading(reading); err != nil {
			return fmt.Errorf("failed to save reading: %w", err)
		}
		fmt.Printf("\nSaved reading %s\n", reading.ID)
	}

	return nil
}

func formatSignPosition(pos models.SignPosition) string {
	return fmt.Sprintf("%s %.2f°", titleCase(pos.Sign), pos.Degrees)
}
