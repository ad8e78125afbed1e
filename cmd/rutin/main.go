package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/tuncdemir/rutin/internal/cli"
	"github.com/tuncdemir/rutin/internal/config"
	"github.com/tuncdemir/rutin/internal/constants"
	"github.com/tuncdemir/rutin/internal/errors"
	"github.com/tuncdemir/rutin/internal/logger"
	"github.com/tuncdemir/rutin/internal/storage"
	"github.com/tuncdemir/rutin/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Snapshot path. A .db suffix selects the SQLite backend; anything else stores a JSON snapshot." default:""`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize the rutin store."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit    cli.HabitCmd    `cmd:"" help:"Manage habits."`
	Mark     cli.MarkCmd     `cmd:"" help:"Toggle a habit's completion for a day."`
	Today    cli.TodayCmd    `cmd:"" help:"Show today's habits, streaks, and completion."`
	Streak   cli.StreakCmd   `cmd:"" help:"Show a habit's current streak."`
	Calendar cli.CalendarCmd `cmd:"" help:"Show a month's completion calendar."`
	Note     cli.NoteCmd     `cmd:"" help:"Manage day notes."`
	Theme    cli.ThemeCmd    `cmd:"" help:"Show or set the color theme."`
	Backup   cli.BackupCmd   `cmd:"" help:"Manage snapshot backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with streaks, day notes, and a completion calendar"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load()
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Config != "" {
		cfg.ConfigPath = CLI.Config
	}
	cfg.Debug = cfg.Debug || CLI.Debug

	path, err := config.ResolvePath(cfg.ConfigPath)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: filepath.Dir(path)}); err != nil {
		errors.Fatal(err)
	}

	var store storage.Store
	if strings.HasSuffix(path, ".db") {
		store = sqlite.NewStore(path)
	} else {
		store = storage.NewJSONStore(path)
	}

	appCtx := &cli.Context{Store: store}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	runErr := ctx.Run(appCtx)
	if err := store.Close(); err != nil {
		logger.Warn("Failed to close store", "error", err)
	}
	if runErr != nil {
		errors.Fatal(runErr)
	}
}
