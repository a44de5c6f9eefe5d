package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/arcana/internal/models"
	"github.com/julianstephens/arcana/internal/validation"
)

type CastCmd struct {
	Question string `arg:"" optional:"" help:"Question to hold while casting."`
	Save     bool   `help:"Persist the reading."`
}

func (c *CastCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	question := strings.TrimSpace(c.Question)
	if question != "" {
		if result := validation.New().ValidateQuestion(question); result.HasIssues() {
			return fmt.Errorf("%s", result.FormatReport())
		}
	}

	state, err := ctx.IChing.StartReading(question)
	if err != nil {
		return err
	}

	if question != "" {
		fmt.Printf("Question: %s\n\n", question)
	}
	fmt.Println(ctx.IChing.CastingSummary(state))
	fmt.Println()
	fmt.Println(state.Hexagram.Judgment)

	for _, pos := range state.Cast.ChangingLines {
		if pos < 1 || pos > len(state.Hexagram.Lines) {
			continue
		}
		fmt.Printf("\nLine %d: %s\n", pos, state.Hexagram.Lines[pos-1].Meaning)
	}

	if state.TransformedHexagram != nil {
		fmt.Printf("\n%s\n", state.TransformedHexagram.Judgment)
	}

	if c.Save {
		reading := newReading(models.SystemIChing)
		reading.IChing = &state
		if err := ctx.Store.SaveReading(reading); err != nil {
			return fmt.Errorf("failed to save reading: %w", err)
		}
		fmt.Printf("\nSaved reading %s\n", reading.ID)
	}

	return nil
}
