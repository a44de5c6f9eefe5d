// Package tarot implements the tarot deck and the reveal-by-reveal reading
// engine. Shuffling and reversal rolls use crypto/rand so readings cannot be
// predicted or replayed from a seed.
package tarot

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/julianstephens/arcana/internal/models"
)

// randFloat returns a uniform value in [0, 1) from 4 bytes of entropy.
func randFloat() float64 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing means the platform entropy source is gone;
		// nothing sensible can continue.
		panic(fmt.Sprintf("tarot: entropy source unavailable: %v", err))
	}
	return float64(binary.BigEndian.Uint32(buf[:])) / float64(1<<32)
}

// Shuffle returns a Fisher-Yates shuffled copy of cards. The input is never
// modified.
func Shuffle(cards []models.TarotCard) []models.TarotCard {
	shuffled := make([]models.TarotCard, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(randFloat() * float64(i+1))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Draw takes count cards from the top of a pre-shuffled deck. When
// allowReversals is set, each card lands reversed with probability one half.
func Draw(deck []models.TarotCard, count int, allowReversals bool) ([]models.DrawnCard, error) {
	if count < 0 {
		return nil, fmt.Errorf("card count must be non-negative, got %d", count)
	}
	if count > len(deck) {
		return nil, fmt.Errorf("cannot draw %d cards from a deck of %d", count, len(deck))
	}

	drawn := make([]models.DrawnCard, 0, count)
	for i := 0; i < count; i++ {
		drawn = append(drawn, models.DrawnCard{
			Card:          deck[i],
			Reversed:      allowReversals && randFloat() < 0.5,
			PositionIndex: i,
		})
	}
	return drawn, nil
}
