package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"twodo/internal/store"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [file]",
		Short: "Print recent board events, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := setup(cmd, app, false)
			if err != nil {
				return err
			}
			defer cleanup()

			path := taskPath(cfg, args)
			h, err := store.OpenHistory(cmd.Context(), store.HistoryPath(path))
			if err != nil {
				return err
			}
			defer h.Close()

			events, err := h.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "no recorded events")
				return nil
			}
			for _, ev := range events {
				fmt.Fprintf(out, "%s  %-6s  %s\n", ev.At.Local().Format("2006-01-02 15:04"), ev.Kind, ev.Title)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of events to print")
	return cmd
}
