package models

import "time"

type ReadingSystem string

const (
	SystemAstrology ReadingSystem = "astrology"
	SystemTarot     ReadingSystem = "tarot"
	SystemIChing    ReadingSystem = "iching"
)

// FeedbackEntry is one piece of user feedback tied to a revealed element
// (a planet id, a spread position, a changing line). The engines only store
// and order entries; they never interpret the text.
type FeedbackEntry struct {
	Element   string    `json:"element"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
