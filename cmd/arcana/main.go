package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/arcana/internal/cli"
	"github.com/julianstephens/arcana/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"~/.config/arcana/arcana.db"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize arcana storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch an interactive reading session." default:"1"`
	Chart   cli.ChartCmd   `cmd:"" help:"Compute and print a natal chart."`
	Tarot   cli.TarotCmd   `cmd:"" help:"Shuffle and print a tarot spread."`
	Cast    cli.CastCmd    `cmd:"" help:"Cast and print an I Ching hexagram."`
	Reading cli.ReadingCmd `cmd:"" help:"Manage saved readings."`
	Backup  cli.BackupCmd  `cmd:"" help:"Manage store backups."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run diagnostics on the arcana installation."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("arcana"),
		kong.Description("Terminal companion for astrology, tarot, and I Ching readings"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Store format follows the file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx, err := cli.NewContext(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
