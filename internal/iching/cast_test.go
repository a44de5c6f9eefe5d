package iching

import (
	"testing"

	"github.com/julianstephens/arcana/internal/data"
)

func loadTables(t *testing.T) *data.Tables {
	t.Helper()
	tables, err := data.Load()
	if err != nil {
		t.Fatalf("data.Load failed: %v", err)
	}
	return tables
}

func TestCastHexagram(t *testing.T) {
	tables := loadTables(t)

	for trial := 0; trial < 20; trial++ {
		cast, err := CastHexagram(tables)
		if err != nil {
			t.Fatalf("CastHexagram failed: %v", err)
		}
		if len(cast.Lines) != 6 {
			t.Fatalf("Cast has %d lines", len(cast.Lines))
		}
		for i, v := range cast.Lines {
			if v < 6 || v > 9 {
				t.Errorf("Line %d has value %d outside 6-9", i+1, v)
			}
		}
		if cast.HexagramNumber < 1 || cast.HexagramNumber > 64 {
			t.Errorf("Hexagram number %d out of range", cast.HexagramNumber)
		}
		if len(cast.Binary) != 6 {
			t.Errorf("Binary %q malformed", cast.Binary)
		}
		if len(cast.ChangingLines) == 0 {
			if cast.TransformedHexagramNumber != nil {
				t.Errorf("Stable cast has a transformed hexagram")
			}
		} else {
			if cast.TransformedHexagramNumber == nil {
				t.Errorf("Changing cast missing transformed hexagram")
			}
			if len(cast.TransformedBinary) != 6 {
				t.Errorf("Transformed binary %q malformed", cast.TransformedBinary)
			}
		}
	}
}

func TestResolveCastStable(t *testing.T) {
	tables := loadTables(t)

	// Six young yang lines: hexagram 1, no change.
	cast, err := resolveCast(tables, []int{7, 7, 7, 7, 7, 7})
	if err != nil {
		t.Fatalf("resolveCast failed: %v", err)
	}
	if cast.HexagramNumber != 1 {
		t.Errorf("All-yang cast resolved to %d, want 1", cast.HexagramNumber)
	}
	if cast.Binary != "111111" {
		t.Errorf("Binary = %s", cast.Binary)
	}
	if len(cast.ChangingLines) != 0 || cast.TransformedHexagramNumber != nil {
		t.Errorf("Stable cast should have no transformation")
	}
}

func TestResolveCastAllChanging(t *testing.T) {
	tables := loadTables(t)

	// Six old yang lines: hexagram 1 transforming into hexagram 2.
	cast, err := resolveCast(tables, []int{9, 9, 9, 9, 9, 9})
	if err != nil {
		t.Fatalf("resolveCast failed: %v", err)
	}
	if cast.HexagramNumber != 1 {
		t.Errorf("Primary = %d, want 1", cast.HexagramNumber)
	}
	if cast.TransformedHexagramNumber == nil || *cast.TransformedHexagramNumber != 2 {
		t.Errorf("Transformed = %v, want 2", cast.TransformedHexagramNumber)
	}
	if len(cast.ChangingLines) != 6 {
		t.Errorf("Changing lines = %v", cast.ChangingLines)
	}
	if cast.TransformedBinary != "000000" {
		t.Errorf("Transformed binary = %s", cast.TransformedBinary)
	}
}

func TestResolveCastMixed(t *testing.T) {
	tables := loadTables(t)

	// Bottom three yang, top three yin, with line 2 changing (old yin -> yang
	// becomes... line values bottom to top: 7, 6, 7, 8, 8, 8.
	// Primary binary 101000; transformed 111000 (hexagram 11, Peace).
	cast, err := resolveCast(tables, []int{7, 6, 7, 8, 8, 8})
	if err != nil {
		t.Fatalf("resolveCast failed: %v", err)
	}
	if cast.Binary != "101000" {
		t.Fatalf("Binary = %s, want 101000", cast.Binary)
	}
	if len(cast.ChangingLines) != 1 || cast.ChangingLines[0] != 2 {
		t.Errorf("Changing lines = %v, want [2]", cast.ChangingLines)
	}
	if cast.TransformedBinary != "111000" {
		t.Errorf("Transformed binary = %s, want 111000", cast.TransformedBinary)
	}
	if cast.TransformedHexagramNumber == nil || *cast.TransformedHexagramNumber != 11 {
		t.Errorf("Transformed hexagram = %v, want 11 (Peace)", cast.TransformedHexagramNumber)
	}
}

func TestResolveCastRejectsBadInput(t *testing.T) {
	tables := loadTables(t)

	if _, err := resolveCast(tables, []int{7, 7, 7}); err == nil {
		t.Errorf("Expected error for short line slice")
	}
	if _, err := resolveCast(tables, []int{7, 7, 7, 7, 7, 5}); err == nil {
		t.Errorf("Expected error for line value outside 6-9")
	}
}

func TestEveryBinaryResolves(t *testing.T) {
	tables := loadTables(t)

	// All 64 yin/yang combinations must round-trip through the table.
	for mask := 0; mask < 64; mask++ {
		lines := make([]int, 6)
		for i := 0; i < 6; i++ {
			if mask&(1<<i) != 0 {
				lines[i] = 7
			} else {
				lines[i] = 8
			}
		}
		cast, err := resolveCast(tables, lines)
		if err != nil {
			t.Fatalf("Mask %06b failed to resolve: %v", mask, err)
		}
		hex, ok := tables.Hexagram(cast.HexagramNumber)
		if !ok {
			t.Fatalf("Hexagram %d missing from table", cast.HexagramNumber)
		}
		if hex.Binary != cast.Binary {
			t.Errorf("Mask %06b: cast binary %s but hexagram %d has %s",
				mask, cast.Binary, hex.Number, hex.Binary)
		}
	}
}
