package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/nisu0001/bea-apa3.0/internal/cli"
	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/errors"
	"github.com/nisu0001/bea-apa3.0/internal/logger"
	"github.com/nisu0001/bea-apa3.0/internal/scheduler"
	"github.com/nisu0001/bea-apa3.0/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Settings file path. A .json path uses the JSON store; anything else opens a SQLite database." default:"~/.config/bea-apa/settings.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init         cli.InitCmd         `cmd:"" help:"Initialize storage."`
	Tui          cli.TuiCmd          `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Daemon       cli.DaemonCmd       `cmd:"" help:"Run the reminder daemon."`
	Log          cli.LogCmd          `cmd:"" help:"Log a drink."`
	Status       cli.StatusCmd       `cmd:"" help:"Show today's hydration progress."`
	Stats        cli.StatsCmd        `cmd:"" help:"Show hydration statistics."`
	History      cli.HistoryCmd      `cmd:"" help:"Show per-day drink history."`
	Settings     cli.SettingsCmd     `cmd:"" help:"View or update settings."`
	Todo         cli.TodoCmd         `cmd:"" help:"Manage tasks."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show achievements."`
	Autostart    cli.AutostartCmd    `cmd:"" help:"Manage launch-at-login."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Hydration reminder and task companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)
	configDir := filepath.Dir(configPath)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}

	appCtx := &cli.Context{
		Store:     store,
		Scheduler: scheduler.New(),
		ConfigDir: configDir,
	}

	errors.Fatal(ctx.Run(appCtx))
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
