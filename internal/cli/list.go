package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *App) *cobra.Command {
	var jsonFlag, yamlFlag bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ResolveFormat(jsonFlag, yamlFlag)
			if err != nil {
				return err
			}
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return NewFormatter(format, out, a.IsTTY).FormatList(out, store.List())
		},
	}
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print tasks as JSON")
	cmd.Flags().BoolVar(&yamlFlag, "yaml", false, "Print tasks as YAML")

	return cmd
}
