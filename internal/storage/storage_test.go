package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/arcana/internal/models"
)

func TestInitRejectsExistingJSONStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcana.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("expected error initializing over an existing store")
	}
}

func TestLoadUninitialized(t *testing.T) {
	jsonStore := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := jsonStore.Load(); err == nil {
		t.Error("expected load error for missing JSON store")
	}

	sqliteStore := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := sqliteStore.Load(); err == nil {
		t.Error("expected load error for missing SQLite store")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	for name, store := range map[string]Provider{
		"sqlite": setupTestSQLiteStore(t),
		"json":   setupTestJSONStore(t),
	} {
		t.Run(name, func(t *testing.T) {
			defaults, err := store.GetSettings()
			if err != nil {
				t.Fatalf("failed to get default settings: %v", err)
			}
			if defaults.DefaultSpread != "three_card" {
				t.Errorf("default spread = %s, want three_card", defaults.DefaultSpread)
			}
			if !defaults.AllowReversals {
				t.Error("reversals should default to allowed")
			}

			updated := Settings{
				DefaultSpread:    "celtic_cross",
				AllowReversals:   false,
				DefaultLatitude:  40.7128,
				DefaultLongitude: -74.006,
				DefaultTimezone:  -5,
			}
			if err := store.SaveSettings(updated); err != nil {
				t.Fatalf("failed to save settings: %v", err)
			}

			got, err := store.GetSettings()
			if err != nil {
				t.Fatalf("failed to get settings: %v", err)
			}
			if got != updated {
				t.Errorf("settings round trip mismatch: %+v != %+v", got, updated)
			}
		})
	}
}

func TestSQLiteReadingStatePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "arcana.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	transformed := 46
	reading := models.Reading{
		ID:        uuid.NewString(),
		System:    models.SystemIChing,
		CreatedAt: now,
		UpdatedAt: now,
		IChing: &models.IChingReading{
			Question: "persisted?",
			Cast: models.CastResult{
				Lines:                     []int{9, 7, 7, 8, 8, 8},
				ChangingLines:             []int{1},
				HexagramNumber:            11,
				TransformedHexagramNumber: &transformed,
				Binary:                    "111000",
				TransformedBinary:         "011000",
			},
			Hexagram:      models.Hexagram{Number: 11, Name: "Tai", EnglishName: "Peace"},
			RevealedLines: 1,
			Feedback: []models.FeedbackEntry{
				{Element: "line 1", Text: "rings true", Timestamp: now},
			},
		},
	}
	if err := store.SaveReading(reading); err != nil {
		t.Fatalf("failed to save reading: %v", err)
	}
	store.Close()

	// Reopen and verify the full state survived the round trip.
	reopened := NewSQLiteStore(dbPath)
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetReading(reading.ID)
	if err != nil {
		t.Fatalf("failed to get reading: %v", err)
	}
	if got.System != models.SystemIChing {
		t.Errorf("system = %s", got.System)
	}
	if !got.CreatedAt.Equal(now) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, now)
	}
	if got.IChing == nil {
		t.Fatal("iching state missing")
	}
	if got.IChing.Cast.HexagramNumber != 11 {
		t.Errorf("hexagram = %d", got.IChing.Cast.HexagramNumber)
	}
	if got.IChing.Cast.TransformedHexagramNumber == nil || *got.IChing.Cast.TransformedHexagramNumber != 46 {
		t.Errorf("transformed hexagram = %v", got.IChing.Cast.TransformedHexagramNumber)
	}
	if len(got.IChing.Feedback) != 1 || got.IChing.Feedback[0].Element != "line 1" {
		t.Errorf("feedback = %+v", got.IChing.Feedback)
	}
	if got.Astrology != nil || got.Tarot != nil {
		t.Error("unrelated system states should stay nil")
	}
}

func TestGetAllReadingsOrdering(t *testing.T) {
	store := setupTestSQLiteStore(t)

	base := time.Now().UTC().Truncate(time.Second)
	var ids []string
	for i := 0; i < 3; i++ {
		r := sampleTarotReading(t)
		r.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		r.UpdatedAt = r.CreatedAt
		if err := store.SaveReading(r); err != nil {
			t.Fatalf("failed to save reading %d: %v", i, err)
		}
		ids = append(ids, r.ID)
	}

	all, err := store.GetAllReadings()
	if err != nil {
		t.Fatalf("failed to get all readings: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d readings, want 3", len(all))
	}
	for i, r := range all {
		if r.ID != ids[i] {
			t.Errorf("position %d has reading %s, want %s (created_at order)", i, r.ID, ids[i])
		}
	}
}
