package cli

import (
	"github.com/spf13/cobra"
)

func newResetCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			return store.Reset()
		},
	}
}

func newRestoreCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Restore the most recent backup after reset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			return store.Restore()
		},
	}
}
