package storage

import (
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/arcana/internal/migration"
	"github.com/julianstephens/arcana/internal/models"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func migrationFS() fs.FS {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		// The migrations directory is compiled into the binary; this can
		// only fail if the embed directive and this path disagree.
		panic(fmt.Sprintf("storage: embedded migrations missing: %v", err))
	}
	return sub
}

// Migrations exposes the embedded schema migrations for diagnostics.
func Migrations() fs.FS {
	return migrationFS()
}

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	runner := migration.NewRunner(s.db, migrationFS())
	if _, err := runner.Apply(nil); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed default settings on a fresh database.
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'arcana init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	runner := migration.NewRunner(s.db, migrationFS())
	if err := runner.ValidateVersion(); err != nil {
		return err
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	settings := Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case "default_spread":
			settings.DefaultSpread = value
		case "allow_reversals":
			settings.AllowReversals = value == "true"
		case "default_latitude":
			if _, err := fmt.Sscanf(value, "%g", &settings.DefaultLatitude); err != nil {
				return Settings{}, fmt.Errorf("parsing default_latitude: %w", err)
			}
		case "default_longitude":
			if _, err := fmt.Sscanf(value, "%g", &settings.DefaultLongitude); err != nil {
				return Settings{}, fmt.Errorf("parsing default_longitude: %w", err)
			}
		case "default_timezone":
			if _, err := fmt.Sscanf(value, "%g", &settings.DefaultTimezone); err != nil {
				return Settings{}, fmt.Errorf("parsing default_timezone: %w", err)
			}
		}
		count++
	}

	if count == 0 {
		return Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	allowReversals := "false"
	if settings.AllowReversals {
		allowReversals = "true"
	}

	pairs := [][2]string{
		{"default_spread", settings.DefaultSpread},
		{"allow_reversals", allowReversals},
		{"default_latitude", fmt.Sprintf("%g", settings.DefaultLatitude)},
		{"default_longitude", fmt.Sprintf("%g", settings.DefaultLongitude)},
		{"default_timezone", fmt.Sprintf("%g", settings.DefaultTimezone)},
	}
	for _, p := range pairs {
		if _, err := stmt.Exec(p[0], p[1]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// readingState is the JSON blob stored in the state column: the per-system
// reading payload without the envelope fields that have their own columns.
type readingState struct {
	Astrology *models.AstrologyReading `json:"astrology,omitempty"`
	Tarot     *models.TarotReading     `json:"tarot,omitempty"`
	IChing    *models.IChingReading    `json:"iching,omitempty"`
}

func (s *SQLiteStore) SaveReading(reading models.Reading) error {
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM readings WHERE id = ?", reading.ID).Scan(&deletedAt)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to check reading existence: %w", err)
	}
	if err == nil && deletedAt.Valid {
		return fmt.Errorf("cannot update a deleted reading: %s", reading.ID)
	}

	state, err := json.Marshal(readingState{
		Astrology: reading.Astrology,
		Tarot:     reading.Tarot,
		IChing:    reading.IChing,
	})
	if err != nil {
		return fmt.Errorf("failed to serialize reading state: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO readings (id, system, created_at, updated_at, deleted_at, state)
		VALUES (?, ?, ?, ?, NULL, ?)`,
		reading.ID, string(reading.System),
		reading.CreatedAt.UTC().Format(time.RFC3339),
		reading.UpdatedAt.UTC().Format(time.RFC3339),
		string(state),
	)
	return err
}

func (s *SQLiteStore) GetReading(id string) (models.Reading, error) {
	row := s.db.QueryRow(`
		SELECT id, system, created_at, updated_at, deleted_at, state
		FROM readings WHERE id = ? AND deleted_at IS NULL`, id)

	reading, err := scanReading(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Reading{}, fmt.Errorf("reading not found: %s", id)
		}
		return models.Reading{}, err
	}
	return reading, nil
}

func (s *SQLiteStore) GetAllReadings() ([]models.Reading, error) {
	rows, err := s.db.Query(`
		SELECT id, system, created_at, updated_at, deleted_at, state
		FROM readings WHERE deleted_at IS NULL ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []models.Reading
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}
	return readings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReading(row rowScanner) (models.Reading, error) {
	var r models.Reading
	var system, createdAt, updatedAt, state string
	var deletedAt sql.NullString

	if err := row.Scan(&r.ID, &system, &createdAt, &updatedAt, &deletedAt, &state); err != nil {
		return models.Reading{}, err
	}

	r.System = models.ReadingSystem(system)

	var err error
	if r.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return models.Reading{}, fmt.Errorf("parsing created_at for reading %s: %w", r.ID, err)
	}
	if r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return models.Reading{}, fmt.Errorf("parsing updated_at for reading %s: %w", r.ID, err)
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.Reading{}, fmt.Errorf("parsing deleted_at for reading %s: %w", r.ID, err)
		}
		r.DeletedAt = &t
	}

	var st readingState
	if err := json.Unmarshal([]byte(state), &st); err != nil {
		return models.Reading{}, fmt.Errorf("parsing state for reading %s: %w", r.ID, err)
	}
	r.Astrology = st.Astrology
	r.Tarot = st.Tarot
	r.IChing = st.IChing

	return r, nil
}

func (s *SQLiteStore) DeleteReading(id string) error {
	// Soft delete: set deleted_at instead of removing the record
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM readings WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("reading not found: %s", id)
		}
		return fmt.Errorf("failed to check reading existence: %w", err)
	}

	if deletedAt.Valid {
		return fmt.Errorf("reading is already deleted: %s", id)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec("UPDATE readings SET deleted_at = ? WHERE id = ?", now, id)
	return err
}

func (s *SQLiteStore) RestoreReading(id string) error {
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM readings WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("reading not found: %s", id)
		}
		return fmt.Errorf("failed to check reading existence: %w", err)
	}

	if !deletedAt.Valid {
		return fmt.Errorf("cannot restore a reading that is not deleted: %s", id)
	}

	_, err = s.db.Exec("UPDATE readings SET deleted_at = NULL WHERE id = ?", id)
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
