// Package cli implements the todo command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leeovery/todo/internal/config"
	"github.com/leeovery/todo/internal/storage"
)

// App is the todo CLI application. Nil writers fall back to os.Stdout and os.Stderr.
type App struct {
	Stdout io.Writer
	Stderr io.Writer
	// IsTTY enables styled list output.
	IsTTY bool

	verbose bool
	logger  *Logger
}

// Run parses args and dispatches the subcommand.
// args[0] is the program name. Returns the process exit code.
func (a *App) Run(args []string) int {
	if a.Stdout == nil {
		a.Stdout = os.Stdout
	}
	if a.Stderr == nil {
		a.Stderr = os.Stderr
	}

	root := a.newRootCmd()
	if len(args) > 0 {
		args = args[1:]
	}
	root.SetArgs(args)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	err := root.Execute()
	if cerr := a.logger.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing log file: %w", cerr)
	}
	if err != nil {
		fmt.Fprintf(a.Stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "todo",
		Short:         "A super fast and simple tasks organizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unknown command '%s'. Run 'todo help' for usage", args[0])
			}
			printTopLevelHelp(cmd.OutOrStdout())
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Show debug information")

	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		if info := findCommand(cmd.Name()); info != nil && cmd != root {
			printCommandHelp(cmd.OutOrStdout(), info)
			return
		}
		printTopLevelHelp(cmd.OutOrStdout())
	})
	root.SetHelpCommand(newHelpCmd())

	root.AddCommand(newListCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newDoneCmd(a))
	root.AddCommand(newEditCmd(a))
	root.AddCommand(newSortCmd(a))
	root.AddCommand(newResetCmd(a))
	root.AddCommand(newRestoreCmd(a))
	root.AddCommand(newRawCmd(a))

	return root
}

// newHelpCmd replaces cobra's help command so unknown topics are an error.
func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Show help for a command",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printTopLevelHelp(cmd.OutOrStdout())
				return nil
			}
			info := findCommand(args[0])
			if info == nil {
				return fmt.Errorf("unknown help topic '%s'. Run 'todo help' for usage", args[0])
			}
			printCommandHelp(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

// openStore resolves configuration, sets up logging and opens the todo file.
func (a *App) openStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	a.logger = NewLogger(a.Stderr, a.verbose)
	a.logger.AttachFile(cfg.LogFile)
	a.logger.Info("command", "name", cmd.Name())

	return storage.Open(cfg, storage.WithLogger(a.logger))
}

// literalArgs handles the arguments of a command that disables flag parsing so
// task text starting with a dash reaches the store unchanged. Global flags and
// --help are honoured only before the first other argument; "--" ends them.
// It reports true when help was printed and the command should stop.
func (a *App) literalArgs(cmd *cobra.Command, args []string) ([]string, bool) {
	for len(args) > 0 {
		switch args[0] {
		case "--":
			return args[1:], false
		case "-v", "--verbose":
			a.verbose = true
		case "-h", "--help":
			if info := findCommand(cmd.Name()); info != nil {
				printCommandHelp(cmd.OutOrStdout(), info)
			}
			return nil, true
		default:
			return args, false
		}
		args = args[1:]
	}
	return args, false
}

// arityError formats the usage error shown for a wrong argument count.
func arityError(name, want string) error {
	return fmt.Errorf("todo %s takes %s", name, want)
}

// minArgs requires at least one argument.
func minArgs(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return arityError(name, "at least 1 argument")
		}
		return nil
	}
}

// exactArgs requires exactly n arguments.
func exactArgs(name string, n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			want := fmt.Sprintf("exact %d arguments", n)
			if n == 1 {
				want = "exact 1 argument"
			}
			return arityError(name, want)
		}
		return nil
	}
}

// userError maps store sentinels to the messages users see.
func userError(name string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNoArguments):
		return arityError(name, "at least 1 argument")
	case errors.Is(err, storage.ErrNoTasks):
		return fmt.Errorf("todo %s needs at least 1 non-blank task", name)
	default:
		return err
	}
}
