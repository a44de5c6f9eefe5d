package iching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/arcana/internal/data"
	"github.com/julianstephens/arcana/internal/models"
)

// Engine is a stateless I Ching reading engine. The reveal loop walks only
// the changing lines; a stable cast has nothing to reveal and is complete at
// the start.
type Engine struct {
	tables *data.Tables
}

func NewEngine(tables *data.Tables) *Engine {
	return &Engine{tables: tables}
}

// Reveal names the next changing line to discuss, with its text.
type Reveal struct {
	LinePosition int                 `json:"line_position"`
	Line         models.HexagramLine `json:"line"`
}

// HexagramRef is the identifying slice of a hexagram used in summaries.
type HexagramRef struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
}

// Synthesis summarizes a completed reading.
type Synthesis struct {
	Hexagram            HexagramRef            `json:"hexagram"`
	TransformedHexagram *HexagramRef           `json:"transformed_hexagram,omitempty"`
	ChangingLines       []int                  `json:"changing_lines"`
	Question            string                 `json:"question"`
	Feedback            []models.FeedbackEntry `json:"feedback"`
}

// StartReading casts a hexagram for the question and returns a fresh reading
// state.
func (e *Engine) StartReading(question string) (models.IChingReading, error) {
	cast, err := CastHexagram(e.tables)
	if err != nil {
		return models.IChingReading{}, err
	}
	return e.readingFromCast(question, cast)
}

// readingFromCast builds reading state around an already resolved cast. Used
// by StartReading and by replay of persisted readings.
func (e *Engine) readingFromCast(question string, cast models.CastResult) (models.IChingReading, error) {
	hex, ok := e.tables.Hexagram(cast.HexagramNumber)
	if !ok {
		return models.IChingReading{}, fmt.Errorf("hexagram %d not found", cast.HexagramNumber)
	}

	state := models.IChingReading{
		Question:      question,
		Cast:          cast,
		Hexagram:      hex,
		RevealedLines: 0,
		Feedback:      []models.FeedbackEntry{},
	}

	if cast.TransformedHexagramNumber != nil {
		th, ok := e.tables.Hexagram(*cast.TransformedHexagramNumber)
		if !ok {
			return models.IChingReading{}, fmt.Errorf("hexagram %d not found", *cast.TransformedHexagramNumber)
		}
		state.TransformedHexagram = &th
	}

	return state, nil
}

// NextReveal returns the next changing line in ascending order, or nil when
// every changing line has been revealed.
func (e *Engine) NextReveal(state models.IChingReading) *Reveal {
	changing := sortedChanging(state)
	if state.RevealedLines >= len(changing) {
		return nil
	}
	position := changing[state.RevealedLines]

	var line models.HexagramLine
	for _, l := range state.Hexagram.Lines {
		if l.Position == position {
			line = l
			break
		}
	}
	return &Reveal{LinePosition: position, Line: line}
}

// RecordFeedback appends one feedback entry and advances the revealed-line
// counter, returning a new state value. The counter saturates at the number
// of changing lines; late feedback is still recorded.
func (e *Engine) RecordFeedback(state models.IChingReading, entry models.FeedbackEntry) models.IChingReading {
	feedback := make([]models.FeedbackEntry, 0, len(state.Feedback)+1)
	feedback = append(feedback, state.Feedback...)
	feedback = append(feedback, entry)

	revealed := state.RevealedLines + 1
	if max := len(state.Cast.ChangingLines); revealed > max {
		revealed = max
	}

	return models.IChingReading{
		Question:            state.Question,
		Cast:                state.Cast,
		Hexagram:            state.Hexagram,
		TransformedHexagram: state.TransformedHexagram,
		RevealedLines:       revealed,
		Feedback:            feedback,
	}
}

// IsComplete reports whether every changing line has been revealed. A cast
// with no changing lines is complete immediately.
func (e *Engine) IsComplete(state models.IChingReading) bool {
	return state.RevealedLines >= len(state.Cast.ChangingLines)
}

// GetSynthesis summarizes the reading once every changing line has been
// revealed.
func (e *Engine) GetSynthesis(state models.IChingReading) (Synthesis, error) {
	if !e.IsComplete(state) {
		remaining := len(state.Cast.ChangingLines) - state.RevealedLines
		return Synthesis{}, fmt.Errorf("cannot synthesize: %d changing line(s) have not been revealed yet", remaining)
	}

	synth := Synthesis{
		Hexagram: HexagramRef{
			Number:      state.Hexagram.Number,
			Name:        state.Hexagram.Name,
			EnglishName: state.Hexagram.EnglishName,
		},
		ChangingLines: state.Cast.ChangingLines,
		Question:      state.Question,
		Feedback:      state.Feedback,
	}
	if th := state.TransformedHexagram; th != nil {
		synth.TransformedHexagram = &HexagramRef{
			Number:      th.Number,
			Name:        th.Name,
			EnglishName: th.EnglishName,
		}
	}
	return synth, nil
}

// CastingSummary renders a human-readable description of the cast.
func (e *Engine) CastingSummary(state models.IChingReading) string {
	hex := state.Hexagram

	var parts []string
	parts = append(parts, fmt.Sprintf("%s Hexagram %d: %s (%s)",
		hex.Character, hex.Number, hex.Name, hex.EnglishName))

	if upper, ok := e.tables.Trigram(hex.TopTrigram); ok {
		parts = append(parts, "", fmt.Sprintf("Upper: %s %s (%s)", upper.Character, upper.EnglishName, upper.Image))
	}
	if lower, ok := e.tables.Trigram(hex.BottomTrigram); ok {
		parts = append(parts, fmt.Sprintf("Lower: %s %s (%s)", lower.Character, lower.EnglishName, lower.Image))
	}

	if len(state.Cast.ChangingLines) > 0 {
		lines := make([]string, 0, len(state.Cast.ChangingLines))
		for _, l := range state.Cast.ChangingLines {
			lines = append(lines, fmt.Sprintf("Line %d", l))
		}
		parts = append(parts, "", "Changing lines: "+strings.Join(lines, ", "))
	} else {
		parts = append(parts, "", "No changing lines; the reading is stable.")
	}

	if th := state.TransformedHexagram; th != nil {
		parts = append(parts, "", fmt.Sprintf("Transforming to: %s Hexagram %d: %s (%s)",
			th.Character, th.Number, th.Name, th.EnglishName))
	}

	return strings.Join(parts, "\n")
}

func sortedChanging(state models.IChingReading) []int {
	changing := make([]int, len(state.Cast.ChangingLines))
	copy(changing, state.Cast.ChangingLines)
	sort.Ints(changing)
	return changing
}
