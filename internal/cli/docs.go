package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"twodo/internal/docs"
)

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show on-demand documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, topic := range docs.Topics() {
					fmt.Fprintln(out, topic)
				}
				return nil
			}
			body, ok := docs.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown docs topic %q (run `twodo docs` to list topics)", args[0])
			}
			fmt.Fprint(out, body)
			return nil
		},
	}
}
