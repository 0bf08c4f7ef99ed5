package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"twodo/internal/logging"
	"twodo/internal/store"
)

func newAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>...",
		Short: "Append a todo item without opening the board",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := setup(cmd, app, false)
			if err != nil {
				return err
			}
			defer cleanup()

			// Multiple words form one title, so quoting is optional:
			//   twodo add Buy milk
			title := strings.Join(args, " ")

			todo, done, err := store.Load(cfg.File)
			if err != nil {
				return err
			}
			todo = append(todo, title)
			if err := store.Save(cfg.File, todo, done); err != nil {
				return err
			}

			if cfg.History.Enabled {
				recordAdd(cmd, cfg.File, title)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added: %s\n", title)
			return nil
		},
	}
	return cmd
}

// recordAdd appends the event best-effort; a broken sidecar never fails the
// add itself.
func recordAdd(cmd *cobra.Command, path, title string) {
	h, err := store.OpenHistory(cmd.Context(), store.HistoryPath(path))
	if err != nil {
		logging.Warnf("history disabled: %v", err)
		return
	}
	defer h.Close()
	if err := h.Append(cmd.Context(), store.EventAdd, title); err != nil {
		logging.Warnf("history append failed: %v", err)
	}
}
