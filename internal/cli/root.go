package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/arcana/internal/astro"
	"github.com/julianstephens/arcana/internal/backup"
	"github.com/julianstephens/arcana/internal/data"
	"github.com/julianstephens/arcana/internal/iching"
	"github.com/julianstephens/arcana/internal/models"
	"github.com/julianstephens/arcana/internal/storage"
	"github.com/julianstephens/arcana/internal/tarot"
)

type Context struct {
	Store  storage.Provider
	Tables *data.Tables
	Astro  *astro.Engine
	Tarot  *tarot.Engine
	IChing *iching.Engine
}

// NewContext wires the engines over one parsed table set.
func NewContext(store storage.Provider) (*Context, error) {
	tables, err := data.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load divination tables: %w", err)
	}
	return &Context{
		Store:  store,
		Tables: tables,
		Astro:  astro.NewEngine(tables.Aspects),
		Tarot:  tarot.NewEngine(tables),
		IChing: iching.NewEngine(tables),
	}, nil
}

// PerformAutomaticBackup snapshots the store, warning instead of failing:
// a reading session should not be blocked by a backup problem.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// newReading wraps per-system state in a persistence envelope.
func newReading(system models.ReadingSystem) models.Reading {
	now := time.Now().UTC()
	return models.Reading{
		ID:        uuid.NewString(),
		System:    system,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// titleCase renders a lowercase identifier like "the_fool" or "aries" for
// display.
func titleCase(id string) string {
	parts := strings.Split(id, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// formatPosition renders one chart point as "Aries 4.79° (house 3) R".
func formatPosition(pos models.PlanetPosition) string {
	s := fmt.Sprintf("%s %.2f° (house %d)", titleCase(pos.Sign), pos.Degrees, pos.House)
	if pos.Retrograde {
		s += " R"
	}
	return s
}

// formatReadingLine renders one reading for list output.
func formatReadingLine(r models.Reading) string {
	summary := ""
	switch r.System {
	case models.SystemAstrology:
		if r.Astrology != nil && r.Astrology.Chart != nil {
			summary = fmt.Sprintf("%s sun, %s rising",
				titleCase(r.Astrology.Chart.Sun.Sign), titleCase(r.Astrology.Chart.Ascendant.Sign))
		}
	case models.SystemTarot:
		if r.Tarot != nil {
			summary = fmt.Sprintf("%s: %q", r.Tarot.Spread.Name, r.Tarot.Question)
		}
	case models.SystemIChing:
		if r.IChing != nil {
			summary = fmt.Sprintf("Hexagram %d (%s): %q",
				r.IChing.Hexagram.Number, r.IChing.Hexagram.EnglishName, r.IChing.Question)
		}
	}
	return fmt.Sprintf("%s  %s  %-9s  %s",
		r.ID[:8], r.CreatedAt.Local().Format("2006-01-02 15:04"), r.System, summary)
}
