package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/julianstephens/habitgrid/internal/cli"
	"github.com/julianstephens/habitgrid/internal/habits"
	"github.com/julianstephens/habitgrid/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"~/.config/habitgrid/habitgrid.db"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Init  cli.InitCmd `cmd:"" help:"Initialize habitgrid storage."`
	Tui   cli.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List all habits."`
	} `cmd:"" help:"Manage habits."`
	Toggle cli.ToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show habit statistics."`
	Week   cli.WeekCmd   `cmd:"" help:"Show the rolling completion grid."`
	Theme  cli.ThemeCmd  `cmd:"" help:"Show or set the UI theme."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run diagnostics."`
	Debug  cli.DebugCmd  `cmd:"" help:"Debugging helpers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitgrid"),
		kong.Description("Personal habit tracker with streaks and a rolling completion grid"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if CLI.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Repo:  habits.NewRepository(store),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
