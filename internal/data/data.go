// Package data embeds the static divination tables and parses them once at
// load time. Every accessor validates the table it returns, so a corrupted
// build surfaces as an error instead of a silent bad reading.
package data

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/julianstephens/arcana/internal/models"
)

//go:embed astrology/*.json tarot/*.json iching/*.json
var tables embed.FS

const (
	deckSize      = 78
	hexagramCount = 64
	trigramCount  = 8
)

// Tables holds every parsed static table. One value is shared by all engines
// for the lifetime of the process; nothing mutates it after Load.
type Tables struct {
	Aspects   []models.AspectDefinition
	Cards     []models.TarotCard
	Spreads   []models.SpreadDefinition
	Trigrams  []models.Trigram
	Hexagrams []models.Hexagram
}

// Load parses all embedded tables and verifies their shape.
func Load() (*Tables, error) {
	t := &Tables{}
	if err := parse("astrology/aspects.json", &t.Aspects); err != nil {
		return nil, err
	}
	if err := parse("tarot/cards.json", &t.Cards); err != nil {
		return nil, err
	}
	if err := parse("tarot/spreads.json", &t.Spreads); err != nil {
		return nil, err
	}
	if err := parse("iching/trigrams.json", &t.Trigrams); err != nil {
		return nil, err
	}
	if err := parse("iching/hexagrams.json", &t.Hexagrams); err != nil {
		return nil, err
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func parse(name string, out any) error {
	raw, err := tables.ReadFile(name)
	if err != nil {
		return fmt.Errorf("unable to read embedded table %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unable to parse embedded table %s: %w", name, err)
	}
	return nil
}

func (t *Tables) validate() error {
	if len(t.Aspects) == 0 {
		return fmt.Errorf("aspect table is empty")
	}
	if len(t.Cards) != deckSize {
		return fmt.Errorf("tarot deck has %d cards, expected %d", len(t.Cards), deckSize)
	}
	if len(t.Spreads) == 0 {
		return fmt.Errorf("spread table is empty")
	}
	if len(t.Trigrams) != trigramCount {
		return fmt.Errorf("trigram table has %d entries, expected %d", len(t.Trigrams), trigramCount)
	}
	if len(t.Hexagrams) != hexagramCount {
		return fmt.Errorf("hexagram table has %d entries, expected %d", len(t.Hexagrams), hexagramCount)
	}

	seen := make(map[string]int, hexagramCount)
	for _, h := range t.Hexagrams {
		if h.Number < 1 || h.Number > hexagramCount {
			return fmt.Errorf("hexagram number %d out of range", h.Number)
		}
		if len(h.Binary) != 6 {
			return fmt.Errorf("hexagram %d has malformed binary %q", h.Number, h.Binary)
		}
		if prev, dup := seen[h.Binary]; dup {
			return fmt.Errorf("hexagrams %d and %d share binary %q", prev, h.Number, h.Binary)
		}
		seen[h.Binary] = h.Number
	}

	for _, s := range t.Spreads {
		if len(s.Positions) != s.CardCount {
			return fmt.Errorf("spread %s declares %d cards but has %d positions", s.ID, s.CardCount, len(s.Positions))
		}
	}
	return nil
}

// Spread looks up a spread definition by id.
func (t *Tables) Spread(id string) (models.SpreadDefinition, bool) {
	for _, s := range t.Spreads {
		if s.ID == id {
			return s, true
		}
	}
	return models.SpreadDefinition{}, false
}

// SpreadIDs lists the available spread ids in table order.
func (t *Tables) SpreadIDs() []string {
	ids := make([]string, 0, len(t.Spreads))
	for _, s := range t.Spreads {
		ids = append(ids, s.ID)
	}
	return ids
}

// Hexagram looks up a hexagram by King Wen number.
func (t *Tables) Hexagram(number int) (models.Hexagram, bool) {
	for _, h := range t.Hexagrams {
		if h.Number == number {
			return h, true
		}
	}
	return models.Hexagram{}, false
}

// HexagramByBinary looks up a hexagram by its bottom-to-top binary string.
func (t *Tables) HexagramByBinary(binary string) (models.Hexagram, bool) {
	for _, h := range t.Hexagrams {
		if h.Binary == binary {
			return h, true
		}
	}
	return models.Hexagram{}, false
}

// Trigram looks up a trigram by number.
func (t *Tables) Trigram(number int) (models.Trigram, bool) {
	for _, tr := range t.Trigrams {
		if tr.Number == number {
			return tr, true
		}
	}
	return models.Trigram{}, false
}
