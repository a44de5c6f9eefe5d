package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "arcana.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE readings (id TEXT PRIMARY KEY, system TEXT)`); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO readings (id, system) VALUES ('r1', 'tarot'), ('r2', 'iching')`); err != nil {
		t.Fatalf("failed to insert test data: %v", err)
	}

	return dbPath
}

func countReadings(t *testing.T, dbPath string) int {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM readings").Scan(&count); err != nil {
		t.Fatalf("failed to count readings: %v", err)
	}
	return count
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	manager := NewManager(dbPath)

	backupPath, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	if filepath.Dir(backupPath) != manager.GetBackupDir() {
		t.Errorf("backup written outside backup dir: %s", backupPath)
	}
	if got := countReadings(t, backupPath); got != 2 {
		t.Errorf("backup has %d readings, want 2", got)
	}
}

func TestCreateBackupMissingStore(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "absent.db"))
	if _, err := manager.CreateBackup(); err == nil {
		t.Error("expected error backing up a missing store")
	}
}

func TestListBackups(t *testing.T) {
	dbPath := setupTestDB(t)
	manager := NewManager(dbPath)

	if backups, err := manager.ListBackups(); err != nil || len(backups) != 0 {
		t.Fatalf("expected empty list before any backup, got %v, %v", backups, err)
	}

	first, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	second, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("second CreateBackup failed: %v", err)
	}

	backups, err := manager.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("got %d backups, want 2", len(backups))
	}
	for _, b := range backups {
		if b.Path != first && b.Path != second {
			t.Errorf("unexpected backup path %s", b.Path)
		}
		if b.Size == 0 {
			t.Errorf("backup %s has zero size", b.Path)
		}
	}
	if backups[0].Timestamp.Before(backups[1].Timestamp) {
		t.Error("backups not sorted newest first")
	}
}

func TestRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	manager := NewManager(dbPath)

	// Create more backups than the retention limit. Collision handling
	// gives each backup a unique name even within the same minute.
	for i := 0; i < MaxBackups+3; i++ {
		if _, err := manager.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup %d failed: %v", i, err)
		}
	}

	backups, err := manager.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) > MaxBackups {
		t.Errorf("rotation kept %d backups, limit is %d", len(backups), MaxBackups)
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	manager := NewManager(dbPath)

	backupPath, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Mutate the live store, then restore.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec("DELETE FROM readings"); err != nil {
		t.Fatalf("failed to wipe readings: %v", err)
	}
	db.Close()

	if got := countReadings(t, dbPath); got != 0 {
		t.Fatalf("expected wiped store, got %d readings", got)
	}

	if err := manager.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if got := countReadings(t, dbPath); got != 2 {
		t.Errorf("restored store has %d readings, want 2", got)
	}
}

func TestRestoreInvalidBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	manager := NewManager(dbPath)

	if err := manager.RestoreBackup(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("expected error restoring a missing backup")
	}

	garbage := filepath.Join(t.TempDir(), "garbage.db")
	if err := os.WriteFile(garbage, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write garbage file: %v", err)
	}
	if err := manager.RestoreBackup(garbage); err == nil {
		t.Error("expected error restoring a corrupted backup")
	}
}

func TestJSONStoreBackup(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "arcana.json")
	content := []byte(`{"version":1,"settings":{},"readings":{}}`)
	if err := os.WriteFile(storePath, content, 0600); err != nil {
		t.Fatalf("failed to write store: %v", err)
	}

	manager := NewManager(storePath)
	backupPath, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("JSON store backup has extension %s", filepath.Ext(backupPath))
	}

	got, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(got) != string(content) {
		t.Error("JSON backup content differs from store")
	}

	// Restore into a mutated store.
	if err := os.WriteFile(storePath, []byte("{}"), 0600); err != nil {
		t.Fatalf("failed to mutate store: %v", err)
	}
	if err := manager.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	restored, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatalf("failed to read restored store: %v", err)
	}
	if string(restored) != string(content) {
		t.Error("restored JSON store content differs from backup")
	}
}
