package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyFreshDatabase(t *testing.T) {
	db := openTestDB(t)
	migrations := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{Data: []byte(
			"CREATE TABLE widgets (id TEXT PRIMARY KEY);",
		)},
		"002_add_name.sql": &fstest.MapFile{Data: []byte(
			"ALTER TABLE widgets ADD COLUMN name TEXT;",
		)},
	}

	runner := NewRunner(db, migrations)

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied %d migrations, want 2", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Schema from both migrations must be present.
	if _, err := db.Exec("INSERT INTO widgets (id, name) VALUES ('a', 'b')"); err != nil {
		t.Errorf("migrated schema unusable: %v", err)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	migrations := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{Data: []byte(
			"CREATE TABLE widgets (id TEXT PRIMARY KEY);",
		)},
	}
	runner := NewRunner(db, migrations)

	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}
	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("second Apply applied %d migrations, want 0", applied)
	}
}

func TestApplyRejectsNewerDatabase(t *testing.T) {
	db := openTestDB(t)
	migrations := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{Data: []byte(
			"CREATE TABLE widgets (id TEXT PRIMARY KEY);",
		)},
	}
	runner := NewRunner(db, migrations)

	if err := runner.ensureVersionTable(); err != nil {
		t.Fatalf("ensureVersionTable failed: %v", err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (9)"); err != nil {
		t.Fatalf("failed to seed version: %v", err)
	}

	if _, err := runner.Apply(nil); err == nil {
		t.Error("expected error applying against a newer database")
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected ValidateVersion error for a newer database")
	}
}

func TestReadRejectsMalformedFilenames(t *testing.T) {
	db := openTestDB(t)

	cases := map[string]fstest.MapFS{
		"no version prefix": {
			"init.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
		},
		"non-numeric version": {
			"abc_init.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
		},
		"zero version": {
			"000_init.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
		},
		"duplicate versions": {
			"001_a.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
			"001_b.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
		},
	}

	for name, fsys := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := NewRunner(db, fsys).Read(); err == nil {
				t.Errorf("expected Read error for %s", name)
			}
		})
	}
}

func TestFailedMigrationRollsBack(t *testing.T) {
	db := openTestDB(t)
	migrations := fstest.MapFS{
		"001_init.sql": &fstest.MapFile{Data: []byte(
			"CREATE TABLE widgets (id TEXT PRIMARY KEY);",
		)},
		"002_broken.sql": &fstest.MapFile{Data: []byte(
			"THIS IS NOT SQL;",
		)},
	}
	runner := NewRunner(db, migrations)

	applied, err := runner.Apply(nil)
	if err == nil {
		t.Fatal("expected Apply to fail on broken migration")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1 (only the good migration)", applied)
	}

	// The version must reflect only the successful migration.
	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
}
