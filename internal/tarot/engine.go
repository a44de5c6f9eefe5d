package tarot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/arcana/internal/data"
	"github.com/julianstephens/arcana/internal/models"
)

// ErrUnknownSpread marks a StartReading call with a spread id that is not in
// the embedded tables. The wrapped message lists the available ids.
var ErrUnknownSpread = errors.New("unknown spread")

// Engine is a stateless tarot reading engine over the embedded deck and
// spread tables. All reading state lives in models.TarotReading values.
type Engine struct {
	tables *data.Tables
}

func NewEngine(tables *data.Tables) *Engine {
	return &Engine{tables: tables}
}

// Reveal pairs a drawn card with the spread position it occupies.
type Reveal struct {
	Card     models.DrawnCard      `json:"card"`
	Position models.SpreadPosition `json:"position"`
}

// SynthesisCard is one row of a completed reading summary.
type SynthesisCard struct {
	Position string `json:"position"`
	Card     string `json:"card"`
	Reversed bool   `json:"reversed"`
}

// Synthesis summarizes a fully revealed reading.
type Synthesis struct {
	Spread   string                 `json:"spread"`
	Question string                 `json:"question"`
	Cards    []SynthesisCard        `json:"cards"`
	Feedback []models.FeedbackEntry `json:"feedback"`
}

// StartReading shuffles a fresh deck, draws the spread's cards, and returns
// a reading with nothing revealed.
func (e *Engine) StartReading(spreadID, question string, allowReversals bool) (models.TarotReading, error) {
	spread, ok := e.tables.Spread(spreadID)
	if !ok {
		return models.TarotReading{}, fmt.Errorf(
			"%w %q, available spreads: %s",
			ErrUnknownSpread, spreadID, strings.Join(e.tables.SpreadIDs(), ", "))
	}

	deck := Shuffle(e.tables.Cards)
	drawn, err := Draw(deck, spread.CardCount, allowReversals)
	if err != nil {
		return models.TarotReading{}, err
	}

	return models.TarotReading{
		Spread:        spread,
		Question:      question,
		DrawnCards:    drawn,
		RevealedIndex: 0,
		Feedback:      []models.FeedbackEntry{},
	}, nil
}

// NextReveal returns the card at the current reveal index, or nil when every
// card has been revealed.
func (e *Engine) NextReveal(state models.TarotReading) *Reveal {
	if state.RevealedIndex >= len(state.DrawnCards) {
		return nil
	}
	return &Reveal{
		Card:     state.DrawnCards[state.RevealedIndex],
		Position: state.Spread.Positions[state.RevealedIndex],
	}
}

// RecordFeedback appends one feedback entry and advances the reveal index,
// returning a new state value. Feedback after the last card is still
// recorded; the index saturates at the card count.
func (e *Engine) RecordFeedback(state models.TarotReading, entry models.FeedbackEntry) models.TarotReading {
	feedback := make([]models.FeedbackEntry, 0, len(state.Feedback)+1)
	feedback = append(feedback, state.Feedback...)
	feedback = append(feedback, entry)

	index := state.RevealedIndex + 1
	if index > len(state.DrawnCards) {
		index = len(state.DrawnCards)
	}

	return models.TarotReading{
		Spread:        state.Spread,
		Question:      state.Question,
		DrawnCards:    state.DrawnCards,
		RevealedIndex: index,
		Feedback:      feedback,
	}
}

// IsComplete reports whether every drawn card has been revealed.
func (e *Engine) IsComplete(state models.TarotReading) bool {
	return state.RevealedIndex >= len(state.DrawnCards)
}

// GetSynthesis summarizes the reading. It refuses to summarize while cards
// remain face down.
func (e *Engine) GetSynthesis(state models.TarotReading) (Synthesis, error) {
	if !e.IsComplete(state) {
		remaining := len(state.DrawnCards) - state.RevealedIndex
		return Synthesis{}, fmt.Errorf("cannot synthesize: %d card(s) have not been revealed yet", remaining)
	}

	cards := make([]SynthesisCard, 0, len(state.DrawnCards))
	for i, dc := range state.DrawnCards {
		cards = append(cards, SynthesisCard{
			Position: state.Spread.Positions[i].Name,
			Card:     dc.Card.Name,
			Reversed: dc.Reversed,
		})
	}
	return Synthesis{
		Spread:   state.Spread.Name,
		Question: state.Question,
		Cards:    cards,
		Feedback: state.Feedback,
	}, nil
}
