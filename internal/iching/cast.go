// Package iching implements three-coin hexagram casting and the changing-line
// reading engine over the embedded King Wen tables.
package iching

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/julianstephens/arcana/internal/data"
	"github.com/julianstephens/arcana/internal/models"
)

// Line values from the three-coin method, heads counting 3 and tails 2.
const (
	oldYin    = 6 // changing broken line
	youngYang = 7
	youngYin  = 8
	oldYang   = 9 // changing solid line
)

// flipCoin returns true for heads using one byte of entropy.
func flipCoin() bool {
	var b [1]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("iching: entropy source unavailable: %v", err))
	}
	return b[0]&1 == 1
}

// castLine throws three coins and returns the line value in [6, 9].
func castLine() int {
	value := 0
	for i := 0; i < 3; i++ {
		if flipCoin() {
			value += 3
		} else {
			value += 2
		}
	}
	return value
}

func lineBinary(value int) byte {
	if value == youngYang || value == oldYang {
		return '1'
	}
	return '0'
}

// transformedBinary flips the changing lines: old yin becomes yang, old yang
// becomes yin.
func transformedBinary(value int) byte {
	switch value {
	case oldYin:
		return '1'
	case oldYang:
		return '0'
	}
	return lineBinary(value)
}

// CastHexagram throws six lines bottom to top and resolves the resulting
// hexagram, plus the transformed hexagram when any line is changing.
func CastHexagram(tables *data.Tables) (models.CastResult, error) {
	lines := make([]int, 0, 6)
	for i := 0; i < 6; i++ {
		lines = append(lines, castLine())
	}
	return resolveCast(tables, lines)
}

// resolveCast derives both hexagrams from raw line values. Split out from
// CastHexagram so deterministic line sets can be resolved in tests and when
// replaying a saved reading.
func resolveCast(tables *data.Tables, lines []int) (models.CastResult, error) {
	if len(lines) != 6 {
		return models.CastResult{}, fmt.Errorf("a hexagram needs 6 lines, got %d", len(lines))
	}

	var primary, transformed strings.Builder
	changing := []int{}
	for i, v := range lines {
		if v < oldYin || v > oldYang {
			return models.CastResult{}, fmt.Errorf("line %d has value %d, expected 6-9", i+1, v)
		}
		primary.WriteByte(lineBinary(v))
		transformed.WriteByte(transformedBinary(v))
		if v == oldYin || v == oldYang {
			changing = append(changing, i+1)
		}
	}

	binary := primary.String()
	hex, ok := tables.HexagramByBinary(binary)
	if !ok {
		return models.CastResult{}, fmt.Errorf("no hexagram for binary pattern %q", binary)
	}

	result := models.CastResult{
		Lines:          lines,
		ChangingLines:  changing,
		HexagramNumber: hex.Number,
		Binary:         binary,
	}

	if len(changing) > 0 {
		tb := transformed.String()
		th, ok := tables.HexagramByBinary(tb)
		if !ok {
			return models.CastResult{}, fmt.Errorf("no hexagram for transformed binary pattern %q", tb)
		}
		result.TransformedHexagramNumber = &th.Number
		result.TransformedBinary = tb
	}

	return result, nil
}
