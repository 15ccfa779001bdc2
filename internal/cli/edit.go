package cli

import (
	"github.com/spf13/cobra"
)

func newEditCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:                "edit <index> <task>",
		Short:              "Edit an existing task",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			args, helped := a.literalArgs(cmd, args)
			if helped {
				return nil
			}
			if err := exactArgs("edit", 2)(cmd, args); err != nil {
				return err
			}
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			return userError("edit", store.Edit(args[0], args[1]))
		},
	}
}
