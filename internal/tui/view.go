package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/arcana/internal/astro"
	"github.com/julianstephens/arcana/internal/constants"
	"github.com/julianstephens/arcana/internal/iching"
	"github.com/julianstephens/arcana/internal/models"
	"github.com/julianstephens/arcana/internal/tarot"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateMenu:
		content = m.viewMenu()
	case StateIntake:
		content = m.form.View()
	case StateOverview:
		content = lipgloss.JoinVertical(lipgloss.Left,
			m.revealView.View(),
			"",
			subtleStyle.Render("[enter] continue  [esc] back"),
		)
	case StateRevealing:
		content = lipgloss.JoinVertical(lipgloss.Left,
			m.revealView.View(),
			"",
			subtleStyle.Render(fmt.Sprintf("How does this land?  [1] %s  [2] %s  [3] %s",
				constants.FeedbackResonates, constants.FeedbackNeutral, constants.FeedbackDissonant)),
		)
	case StateSynthesis:
		content = lipgloss.JoinVertical(lipgloss.Left,
			m.revealView.View(),
			"",
			subtleStyle.Render("[enter] back to menu  [q] quit"),
		)
	case StateBrowse:
		content = m.readingList.View()
	case StateViewReading:
		content = lipgloss.JoinVertical(lipgloss.Left,
			m.revealView.View(),
			"",
			subtleStyle.Render("[esc] back"),
		)
	case StateConfirmDelete:
		content = lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this reading?"),
			"",
			"It can be restored later with 'arcana reading restore'.",
			"",
			"[y] Yes   [n] No",
		)
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("arcana"),
		"",
		content,
	))
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString("What would you like to consult?\n\n")
	for i, entry := range menuEntries {
		if i == m.menuIndex {
			b.WriteString(menuSelectedStyle.Render("> " + entry))
		} else {
			b.WriteString(menuItemStyle.Render("  " + entry))
		}
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(dangerStyle.Render(strings.TrimSpace(m.err.Error())))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// displayName renders a lowercase identifier like "the_fool" for display.
func displayName(id string) string {
	parts := strings.Split(id, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func (m *Model) showChartReveal(reveal *astro.Reveal) {
	state := m.reading.Astrology
	pos := reveal.Position

	var b strings.Builder
	fmt.Fprintf(&b, "%s %.2f°, house %d\n", displayName(pos.Sign), pos.Degrees, pos.House)
	if pos.Retrograde {
		b.WriteString("Retrograde\n")
	}

	var involved []models.ChartAspect
	for _, a := range state.Chart.Aspects {
		if a.Planet1 == reveal.Planet || a.Planet2 == reveal.Planet {
			involved = append(involved, a)
		}
	}
	if len(involved) > 0 {
		b.WriteString("\nAspects:\n")
		for _, a := range involved {
			fmt.Fprintf(&b, "  %s %s %s %s (orb %.2f°)\n",
				displayName(a.Planet1), a.AspectSymbol, displayName(a.Planet2), a.AspectName, a.Orb)
		}
	}

	done := len(state.RevealedPlanets)
	fmt.Fprintf(&b, "\n%d of %d revealed", done, len(astro.DefaultRevealOrder))

	m.revealView.SetContent(displayName(reveal.Planet), b.String())
}

func (m *Model) showCardReveal(reveal *tarot.Reveal) {
	state := m.reading.Tarot
	card := reveal.Card.Card

	header := fmt.Sprintf("%s: %s", reveal.Position.Name, card.Name)
	if reveal.Card.Reversed {
		header += " (reversed)"
	}

	keywords := card.KeywordsUpright
	if reveal.Card.Reversed {
		keywords = card.KeywordsReversed
	}

	var b strings.Builder
	b.WriteString(reveal.Position.Description + "\n\n")
	fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(keywords, ", "))
	if card.Element != "" {
		fmt.Fprintf(&b, "Element: %s\n", displayName(card.Element))
	}
	fmt.Fprintf(&b, "\n%d of %d revealed", state.RevealedIndex, len(state.DrawnCards))

	m.revealView.SetContent(header, b.String())
}

func (m *Model) showLineReveal(reveal *iching.Reveal) {
	state := m.reading.IChing

	var b strings.Builder
	b.WriteString(reveal.Line.Meaning + "\n")
	fmt.Fprintf(&b, "\n%d of %d changing lines revealed",
		state.RevealedLines, len(state.Cast.ChangingLines))

	m.revealView.SetContent(fmt.Sprintf("Line %d", reveal.LinePosition), b.String())
}

func (m *Model) showCastOverview() {
	state := m.reading.IChing

	var b strings.Builder
	b.WriteString(m.engines.IChing.CastingSummary(*state))
	b.WriteString("\n\n")
	b.WriteString(state.Hexagram.Judgment)

	m.revealView.SetContent("The Cast", b.String())
}

func (m *Model) showSynthesis() {
	var b strings.Builder

	switch m.system {
	case models.SystemAstrology:
		synth := m.engines.Astro.GetSynthesis(*m.reading.Astrology)
		fmt.Fprintf(&b, "Sun in %s, Moon in %s, %s rising.\n\n",
			displayName(synth.SunSign), displayName(synth.MoonSign), displayName(synth.Ascendant))
		for _, id := range astro.DefaultRevealOrder {
			if pos, ok := synth.Planets[id]; ok {
				fmt.Fprintf(&b, "  %-9s %s %.2f° (house %d)\n",
					displayName(id), displayName(pos.Sign), pos.Degrees, pos.House)
			}
		}
		if len(synth.Aspects) > 0 {
			fmt.Fprintf(&b, "\n%d aspects, tightest: %s %s %s (orb %.2f°)\n",
				len(synth.Aspects),
				displayName(synth.Aspects[0].Planet1), synth.Aspects[0].AspectSymbol,
				displayName(synth.Aspects[0].Planet2), synth.Aspects[0].Orb)
		}

	case models.SystemTarot:
		synth, err := m.engines.Tarot.GetSynthesis(*m.reading.Tarot)
		if err != nil {
			b.WriteString(err.Error())
			break
		}
		fmt.Fprintf(&b, "%s\n", synth.Spread)
		if synth.Question != "" {
			fmt.Fprintf(&b, "Question: %s\n", synth.Question)
		}
		b.WriteString("\n")
		for _, c := range synth.Cards {
			name := c.Card
			if c.Reversed {
				name += " (reversed)"
			}
			fmt.Fprintf(&b, "  %s: %s\n", c.Position, name)
		}
		writeFeedbackSummary(&b, synth.Feedback)

	case models.SystemIChing:
		synth, err := m.engines.IChing.GetSynthesis(*m.reading.IChing)
		if err != nil {
			b.WriteString(err.Error())
			break
		}
		fmt.Fprintf(&b, "Hexagram %d: %s (%s)\n",
			synth.Hexagram.Number, synth.Hexagram.Name, synth.Hexagram.EnglishName)
		if synth.TransformedHexagram != nil {
			fmt.Fprintf(&b, "Transforming to Hexagram %d: %s (%s)\n",
				synth.TransformedHexagram.Number, synth.TransformedHexagram.Name,
				synth.TransformedHexagram.EnglishName)
		}
		if len(synth.ChangingLines) == 0 {
			b.WriteString("The reading is stable.\n")
		}
		writeFeedbackSummary(&b, synth.Feedback)
	}

	m.revealView.SetContent("Synthesis", b.String())
}

func writeFeedbackSummary(b *strings.Builder, entries []models.FeedbackEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\nFeedback:\n")
	for _, f := range entries {
		fmt.Fprintf(b, "  %s: %s\n", displayName(f.Element), f.Text)
	}
}

// showSavedReading renders a stored session read-only for the browse view.
func (m *Model) showSavedReading(reading models.Reading) {
	header := fmt.Sprintf("%s reading, %s",
		displayName(string(reading.System)),
		reading.CreatedAt.Local().Format("2006-01-02 15:04"))

	var b strings.Builder
	switch reading.System {
	case models.SystemAstrology:
		if state := reading.Astrology; state != nil && state.Chart != nil {
			fmt.Fprintf(&b, "Ascendant: %s %.2f°\n", displayName(state.Chart.Ascendant.Sign), state.Chart.Ascendant.Degrees)
			for _, id := range astro.DefaultRevealOrder {
				if id == "ascendant" {
					continue
				}
				if pos, ok := astro.ChartPosition(state.Chart, id); ok {
					fmt.Fprintf(&b, "%-9s %s %.2f° (house %d)\n",
						displayName(id), displayName(pos.Sign), pos.Degrees, pos.House)
				}
			}
			writeFeedbackSummary(&b, state.Feedback)
		}
	case models.SystemTarot:
		if state := reading.Tarot; state != nil {
			fmt.Fprintf(&b, "%s\n", state.Spread.Name)
			if state.Question != "" {
				fmt.Fprintf(&b, "Question: %s\n", state.Question)
			}
			b.WriteString("\n")
			for i, drawn := range state.DrawnCards {
				name := drawn.Card.Name
				if drawn.Reversed {
					name += " (reversed)"
				}
				if i >= state.RevealedIndex {
					name = "(face down)"
				}
				fmt.Fprintf(&b, "%s: %s\n", state.Spread.Positions[i].Name, name)
			}
			writeFeedbackSummary(&b, state.Feedback)
		}
	case models.SystemIChing:
		if state := reading.IChing; state != nil {
			b.WriteString(m.engines.IChing.CastingSummary(*state))
			b.WriteString("\n")
			writeFeedbackSummary(&b, state.Feedback)
		}
	}

	m.revealView.SetContent(header, b.String())
}
