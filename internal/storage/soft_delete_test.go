package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/arcana/internal/models"
)

func setupTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func setupTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}

	return store
}

func sampleTarotReading(t *testing.T) models.Reading {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	return models.Reading{
		ID:        uuid.NewString(),
		System:    models.SystemTarot,
		CreatedAt: now,
		UpdatedAt: now,
		Tarot: &models.TarotReading{
			Spread:   models.SpreadDefinition{ID: "single", Name: "Single Card", CardCount: 1},
			Question: "test question",
			DrawnCards: []models.DrawnCard{
				{Card: models.TarotCard{ID: "the_fool", Name: "The Fool", Arcana: "major"}, PositionIndex: 0},
			},
			RevealedIndex: 0,
			Feedback:      []models.FeedbackEntry{},
		},
	}
}

func TestReadingSoftDelete(t *testing.T) {
	for name, store := range map[string]Provider{
		"sqlite": setupTestSQLiteStore(t),
		"json":   setupTestJSONStore(t),
	} {
		t.Run(name, func(t *testing.T) {
			reading := sampleTarotReading(t)

			if err := store.SaveReading(reading); err != nil {
				t.Fatalf("failed to save reading: %v", err)
			}

			got, err := store.GetReading(reading.ID)
			if err != nil {
				t.Fatalf("failed to get reading: %v", err)
			}
			if got.ID != reading.ID {
				t.Errorf("expected reading ID %s, got %s", reading.ID, got.ID)
			}

			if err := store.DeleteReading(reading.ID); err != nil {
				t.Fatalf("failed to delete reading: %v", err)
			}

			// Deleted readings are invisible to GetReading and GetAllReadings.
			if _, err := store.GetReading(reading.ID); err == nil {
				t.Error("expected error when getting deleted reading, got nil")
			}
			all, err := store.GetAllReadings()
			if err != nil {
				t.Fatalf("failed to get all readings: %v", err)
			}
			for _, r := range all {
				if r.ID == reading.ID {
					t.Error("deleted reading should not appear in GetAllReadings")
				}
			}

			// Double delete is an error.
			if err := store.DeleteReading(reading.ID); err == nil {
				t.Error("expected error deleting an already-deleted reading")
			}

			// Restore brings the record back intact.
			if err := store.RestoreReading(reading.ID); err != nil {
				t.Fatalf("failed to restore reading: %v", err)
			}
			restored, err := store.GetReading(reading.ID)
			if err != nil {
				t.Fatalf("failed to get restored reading: %v", err)
			}
			if restored.DeletedAt != nil {
				t.Error("restored reading still has deleted_at set")
			}
			if restored.Tarot == nil || restored.Tarot.Question != "test question" {
				t.Error("restored reading lost its tarot state")
			}
		})
	}
}

func TestRestoreRequiresDeletion(t *testing.T) {
	store := setupTestSQLiteStore(t)

	reading := sampleTarotReading(t)
	if err := store.SaveReading(reading); err != nil {
		t.Fatalf("failed to save reading: %v", err)
	}

	if err := store.RestoreReading(reading.ID); err == nil {
		t.Error("expected error restoring a reading that is not deleted")
	}
	if err := store.RestoreReading("no-such-id"); err == nil {
		t.Error("expected error restoring a nonexistent reading")
	}
}

func TestSaveDeletedReadingForbidden(t *testing.T) {
	for name, store := range map[string]Provider{
		"sqlite": setupTestSQLiteStore(t),
		"json":   setupTestJSONStore(t),
	} {
		t.Run(name, func(t *testing.T) {
			reading := sampleTarotReading(t)
			if err := store.SaveReading(reading); err != nil {
				t.Fatalf("failed to save reading: %v", err)
			}
			if err := store.DeleteReading(reading.ID); err != nil {
				t.Fatalf("failed to delete reading: %v", err)
			}

			reading.UpdatedAt = time.Now().UTC()
			if err := store.SaveReading(reading); err == nil {
				t.Error("expected error updating a deleted reading")
			}
		})
	}
}
