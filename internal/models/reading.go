package models

import "time"

// Reading is a persisted divination session. Exactly one of the state fields
// matching System is populated; the others stay nil.
type Reading struct {
	ID        string        `json:"id"`
	System    ReadingSystem `json:"system"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	DeletedAt *time.Time    `json:"deleted_at,omitempty"`

	Astrology *AstrologyReading `json:"astrology,omitempty"`
	Tarot     *TarotReading     `json:"tarot,omitempty"`
	IChing    *IChingReading    `json:"iching,omitempty"`
}
