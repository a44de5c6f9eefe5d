package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/arcana/internal/backup"
	"github.com/julianstephens/arcana/internal/migration"
	"github.com/julianstephens/arcana/internal/storage"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: store file exists and loads
	configPath := ctx.Store.GetConfigPath()
	if _, err := os.Stat(configPath); err != nil {
		fmt.Printf("❌ Store file: %s (run 'arcana init' first)\n", configPath)
		hasError = true
	} else if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Store load failed: %v\n", err)
		hasError = true
	} else {
		defer ctx.Store.Close()
		fmt.Printf("✓ Store loads: %s\n", configPath)

		// Check 2: settings readable
		if settings, err := ctx.Store.GetSettings(); err != nil {
			fmt.Printf("❌ Settings unreadable: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings readable (default spread: %s)\n", settings.DefaultSpread)
		}

		// Check 3: schema version (SQLite stores only)
		if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
			runner := migration.NewRunner(sqliteStore.GetDB(), storage.Migrations())
			current, err := runner.CurrentVersion()
			if err != nil {
				fmt.Printf("❌ Schema version unreadable: %v\n", err)
				hasError = true
			} else {
				latest, err := runner.LatestVersion()
				switch {
				case err != nil:
					fmt.Printf("❌ Migrations unreadable: %v\n", err)
					hasError = true
				case current < latest:
					fmt.Printf("❌ Schema out of date: version %d, latest is %d\n", current, latest)
					hasError = true
				case current > latest:
					fmt.Printf("❌ Schema version %d is newer than this build supports (%d)\n", current, latest)
					hasError = true
				default:
					fmt.Printf("✓ Schema up to date (version %d)\n", current)
				}
			}
		} else {
			fmt.Println("⊘ Schema version: not applicable to JSON stores")
		}
	}

	// Check 4: divination tables
	if ctx.Tables == nil {
		fmt.Println("❌ Divination tables not loaded")
		hasError = true
	} else {
		fmt.Printf("✓ Divination tables loaded (%d cards, %d spreads, %d hexagrams)\n",
			len(ctx.Tables.Cards), len(ctx.Tables.Spreads), len(ctx.Tables.Hexagrams))
	}

	// Check 5: backups
	mgr := backup.NewManager(configPath)
	if backups, err := mgr.ListBackups(); err != nil {
		fmt.Printf("⚠ Backup directory unreadable: %v\n", err)
	} else if len(backups) == 0 {
		fmt.Println("⚠ No backups found (run 'arcana backup create')")
	} else {
		fmt.Printf("✓ Backups present (%d, newest %s)\n",
			len(backups), backups[0].Timestamp.Format("2006-01-02 15:04"))
	}

	// Check 6: clock sanity. Timestamps on readings and backups are
	// meaningless if the system clock predates this code.
	if time.Now().Year() < 2024 {
		fmt.Printf("⚠ System clock looks wrong: %s\n", time.Now().Format(time.RFC3339))
	} else {
		fmt.Println("✓ System clock sane")
	}

	// Check 7: other running instances that could race on the store file
	if others, err := otherInstances(); err != nil {
		fmt.Printf("⚠ Could not scan processes: %v\n", err)
	} else if others > 0 {
		fmt.Printf("⚠ %d other arcana process(es) running; concurrent writes can corrupt a JSON store\n", others)
	} else {
		fmt.Println("✓ No other arcana processes running")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

// otherInstances counts running processes that share this binary's name,
// excluding the current process.
func otherInstances() (int, error) {
	self := filepath.Base(os.Args[0])
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range procs {
		if p.Pid() == os.Getpid() {
			continue
		}
		if strings.EqualFold(p.Executable(), self) {
			count++
		}
	}
	return count, nil
}
