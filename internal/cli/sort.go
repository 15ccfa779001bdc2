package cli

import (
	"github.com/spf13/cobra"
)

func newSortCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Sort completed and uncompleted tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			return store.Sort()
		},
	}
}
