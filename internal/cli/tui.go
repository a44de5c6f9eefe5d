package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/arcana/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	// Snapshot the store before an interactive session touches it.
	ctx.PerformAutomaticBackup()

	model := tui.NewModel(ctx.Store, tui.Engines{
		Tables: ctx.Tables,
		Astro:  ctx.Astro,
		Tarot:  ctx.Tarot,
		IChing: ctx.IChing,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive session: %w", err)
	}
	return nil
}
