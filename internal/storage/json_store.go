package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/arcana/internal/models"
)

// Store is the on-disk shape of a JSON-backed config file.
type Store struct {
	Version  int                       `json:"version"`
	Settings Settings                  `json:"settings"`
	Readings map[string]models.Reading `json:"readings"`
}

// JSONStore keeps everything in one JSON file. It mirrors SQLiteStore's
// behavior, including soft deletion, so the two are interchangeable behind
// Provider.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Settings: DefaultSettings(),
		Readings: make(map[string]models.Reading),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'arcana init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Readings == nil {
		s.store.Readings = make(map[string]models.Reading)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) SaveReading(reading models.Reading) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if existing, ok := s.store.Readings[reading.ID]; ok && existing.DeletedAt != nil {
		return fmt.Errorf("cannot update a deleted reading: %s", reading.ID)
	}

	s.store.Readings[reading.ID] = reading
	return s.save()
}

func (s *JSONStore) GetReading(id string) (models.Reading, error) {
	if s.store == nil {
		return models.Reading{}, fmt.Errorf("storage not loaded")
	}

	reading, ok := s.store.Readings[id]
	if !ok || reading.DeletedAt != nil {
		return models.Reading{}, fmt.Errorf("reading not found: %s", id)
	}

	return reading, nil
}

func (s *JSONStore) GetAllReadings() ([]models.Reading, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	readings := make([]models.Reading, 0, len(s.store.Readings))
	for _, reading := range s.store.Readings {
		if reading.DeletedAt == nil {
			readings = append(readings, reading)
		}
	}

	return readings, nil
}

func (s *JSONStore) DeleteReading(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	reading, ok := s.store.Readings[id]
	if !ok {
		return fmt.Errorf("reading not found: %s", id)
	}
	if reading.DeletedAt != nil {
		return fmt.Errorf("reading is already deleted: %s", id)
	}

	// Soft delete: set deleted_at timestamp
	now := time.Now().UTC()
	reading.DeletedAt = &now
	s.store.Readings[id] = reading
	return s.save()
}

func (s *JSONStore) RestoreReading(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	reading, ok := s.store.Readings[id]
	if !ok {
		return fmt.Errorf("reading not found: %s", id)
	}

	// Only allow restoring readings that are currently soft-deleted
	if reading.DeletedAt == nil {
		return fmt.Errorf("cannot restore a reading that is not deleted: %s", id)
	}

	reading.DeletedAt = nil
	s.store.Readings[id] = reading
	return s.save()
}

// GetConfigPath returns the path to the underlying configuration/storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple arcana processes that share the same storage path at
//     the same time is not supported and may lead to data loss or corruption.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
