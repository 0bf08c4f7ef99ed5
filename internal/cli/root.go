// Package cli wires the commands: the bare invocation opens the board,
// subcommands cover scripted use.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"twodo/internal/config"
	"twodo/internal/logging"
	"twodo/internal/store"
	"twodo/internal/tui"
)

type App struct {
	ConfigPath string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "twodo [file]",
		Short:        "Two task lists (todo and done) over one flat file",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the board on the configured task file (./TODO by default)
  twodo

  # Open the board on a specific file
  twodo groceries.txt

  # Scriptable commands
  twodo add Buy milk
  twodo list --all
  twodo history --limit 10
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, app, args)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("TWODO_CONFIG", ""), "Path to config file (default: twodo.yaml in . or the user config dir)")
	cmd.PersistentFlags().String("file", "", "Task file path")
	cmd.PersistentFlags().Bool("history", true, "Record board events in the history sidecar")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().String("log-file", "", "Log destination file")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newDocsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runBoard(cmd *cobra.Command, app *App, args []string) error {
	cfg, cleanup, err := setup(cmd, app, true)
	if err != nil {
		return err
	}
	defer cleanup()

	path := taskPath(cfg, args)
	var hist *store.History
	if cfg.History.Enabled {
		h, err := store.OpenHistory(cmd.Context(), store.HistoryPath(path))
		if err != nil {
			// The board works fine without its event log.
			logging.Warnf("history disabled: %v", err)
		} else {
			hist = h
			defer hist.Close()
		}
	}
	return tui.Run(path, hist)
}

// setup resolves configuration for the running command and points logging
// where it belongs: the configured file, or stderr for non-TUI commands.
// While the board owns the terminal, logs without a file go nowhere.
func setup(cmd *cobra.Command, app *App, tuiMode bool) (config.Config, func(), error) {
	cfg, err := config.Load(cmd, app.ConfigPath)
	if err != nil {
		return cfg, nil, err
	}
	cleanup := func() {}
	switch {
	case cfg.Log.File != "":
		closer, err := logging.SetupFile(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return cfg, nil, err
		}
		cleanup = func() { _ = closer.Close() }
	case !tuiMode:
		logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level)
	}
	return cfg, cleanup, nil
}

// taskPath resolves the file a command operates on: positional argument
// first, then whatever configuration produced.
func taskPath(cfg config.Config, args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return cfg.File
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
