package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leeovery/todo/internal/task"
)

func newRawCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "raw <todo|done>",
		Short: "Print done or pending tasks in plain text",
		Args:  exactArgs("raw", 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := task.ParseStatus(args[0])
			if err != nil {
				return err
			}
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, text := range store.Raw(status) {
				if _, err := fmt.Fprintln(out, text); err != nil {
					return fmt.Errorf("failed to write to stdout: %w", err)
				}
			}
			return nil
		},
	}
}
