package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"twodo/internal/store"
)

func newListCmd(app *App) *cobra.Command {
	var (
		doneOnly bool
		all      bool
	)
	cmd := &cobra.Command{
		Use:   "list [file]",
		Short: "Print items without opening the board",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := setup(cmd, app, false)
			if err != nil {
				return err
			}
			defer cleanup()

			todo, done, err := store.Load(taskPath(cfg, args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if all || !doneOnly {
				for _, title := range todo {
					fmt.Fprintf(out, "- [ ] %s\n", title)
				}
			}
			if all || doneOnly {
				for _, title := range done {
					fmt.Fprintf(out, "- [x] %s\n", title)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&doneOnly, "done", false, "Print finished items instead of pending ones")
	cmd.Flags().BoolVar(&all, "all", false, "Print both lists")
	return cmd
}
