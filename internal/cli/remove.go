package cli

import (
	"github.com/spf13/cobra"
)

func newRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <index>...",
		Aliases: []string{"remove"},
		Short:   "Remove task/s",
		Args:    minArgs("rm"),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			return userError("rm", store.Remove(args))
		},
	}
}
