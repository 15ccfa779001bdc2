package cli

import (
	"github.com/spf13/cobra"
)

func newDoneCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <index>...",
		Short: "Mark task/s as done",
		Args:  minArgs("done"),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			return userError("done", store.Done(args))
		},
	}
}
