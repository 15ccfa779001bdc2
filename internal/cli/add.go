package cli

import (
	"github.com/spf13/cobra"
)

func newAddCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:                "add <task>...",
		Short:              "Add new task/s",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			args, helped := a.literalArgs(cmd, args)
			if helped {
				return nil
			}
			if err := minArgs("add")(cmd, args); err != nil {
				return err
			}
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			n, err := store.Add(args)
			if err != nil {
				return userError("add", err)
			}
			a.logger.Debug("added tasks", "count", n)
			return nil
		},
	}
}
