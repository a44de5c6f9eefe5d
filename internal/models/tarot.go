package models

type Arcana string

const (
	ArcanaMajor Arcana = "major"
	ArcanaMinor Arcana = "minor"
)

type Suit string

const (
	SuitWands     Suit = "wands"
	SuitCups      Suit = "cups"
	SuitSwords    Suit = "swords"
	SuitPentacles Suit = "pentacles"
)

type TarotCard struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Number           int      `json:"number"`
	Arcana           Arcana   `json:"arcana"`
	Suit             Suit     `json:"suit,omitempty"`
	KeywordsUpright  []string `json:"keywords_upright"`
	KeywordsReversed []string `json:"keywords_reversed"`
	Element          string   `json:"element"`
	Numerology       int      `json:"numerology"`
}

// DrawnCard is a card dealt into a spread position, possibly reversed.
type DrawnCard struct {
	Card          TarotCard `json:"card"`
	Reversed      bool      `json:"reversed"`
	PositionIndex int       `json:"position_index"`
}

type SpreadPosition struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SpreadDefinition struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Positions   []SpreadPosition `json:"positions"`
	CardCount   int              `json:"card_count"`
}

// TarotReading is the immutable state of one tarot session. RevealedIndex
// counts positions already revealed and saturates at the card count.
type TarotReading struct {
	Spread        SpreadDefinition `json:"spread"`
	Question      string           `json:"question"`
	DrawnCards    []DrawnCard      `json:"drawn_cards"`
	RevealedIndex int              `json:"revealed_index"`
	Feedback      []FeedbackEntry  `json:"feedback"`
}
