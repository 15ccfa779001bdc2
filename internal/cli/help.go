package cli

import (
	"fmt"
	"io"
	"strings"
)

// flagInfo describes a single command flag for help output.
type flagInfo struct {
	Name string // "--json"
	Desc string
}

// commandInfo describes a command for help output.
type commandInfo struct {
	Name        string
	Aliases     []string
	Summary     string // one-line for top-level listing
	Usage       string // "todo add <task>..."
	Description string
	Example     string
	Flags       []flagInfo
}

// commands is the ordered registry of all todo commands.
var commands = []commandInfo{
	{
		Name:        "add",
		Summary:     "Add new task/s",
		Usage:       "todo add <task>...",
		Description: "Appends each argument as a new pending task. Blank arguments are skipped.\n" +
			"Arguments are taken as written, dashes included. Put -- first when the first task is -v or --help.",
		Example:     `todo add "buy carrots"`,
	},
	{
		Name:        "edit",
		Summary:     "Edit an existing task",
		Usage:       "todo edit <index> <task>",
		Description: "Replaces the text of the task at index, keeping whether it is done. The new text may be blank.",
		Example:     "todo edit 1 banana",
	},
	{
		Name:        "list",
		Aliases:     []string{"ls"},
		Summary:     "List all tasks",
		Usage:       "todo list [--json|--yaml]",
		Description: "Lists every task with its index. Completed tasks are struck through.",
		Example:     "todo list",
		Flags: []flagInfo{
			{"--json", "Print tasks as JSON"},
			{"--yaml", "Print tasks as YAML"},
		},
	},
	{
		Name:        "done",
		Summary:     "Mark task/s as done",
		Usage:       "todo done <index>...",
		Description: "Marks the tasks at the given indices as completed.",
		Example:     "todo done 2 3 (marks second and third tasks as completed)",
	},
	{
		Name:        "rm",
		Aliases:     []string{"remove"},
		Summary:     "Remove task/s",
		Usage:       "todo rm <index>...",
		Description: "Removes the tasks at the given indices. Later tasks move up.",
		Example:     "todo rm 4",
	},
	{
		Name:        "reset",
		Summary:     "Delete all tasks",
		Usage:       "todo reset",
		Description: "Deletes the todo file, keeping a backup unless TODO_NOBACKUP is set.",
	},
	{
		Name:        "restore",
		Summary:     "Restore the most recent backup after reset",
		Usage:       "todo restore",
		Description: "Copies the backup taken by the last reset over the todo file.",
	},
	{
		Name:        "sort",
		Summary:     "Sort completed and uncompleted tasks",
		Usage:       "todo sort",
		Description: "Moves pending tasks before completed ones, keeping their order.",
		Example:     "todo sort",
	},
	{
		Name:        "raw",
		Summary:     "Print done or pending tasks in plain text",
		Usage:       "todo raw <todo|done>",
		Description: "Prints nothing but the text of done/pending tasks, useful for scripting.",
		Example:     "todo raw done",
	},
	{
		Name:        "help",
		Summary:     "Show help for a command",
		Usage:       "todo help [<command>]",
		Description: "Shows usage information. With a command name, shows help for that command.",
	},
}

// findCommand returns the commandInfo for the given name or alias, or nil.
func findCommand(name string) *commandInfo {
	for i := range commands {
		if commands[i].Name == name {
			return &commands[i]
		}
		for _, alias := range commands[i].Aliases {
			if alias == name {
				return &commands[i]
			}
		}
	}
	return nil
}

// printTopLevelHelp writes the full command listing to w.
func printTopLevelHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: todo [COMMAND] [ARGUMENTS]")
	fmt.Fprintln(w, "Todo is a super fast and simple tasks organizer")
	fmt.Fprintln(w, "Example: todo list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s%s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global flags:")
	fmt.Fprintln(w, "  --verbose, -v   Show debug information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TODO_PATH       Todo file (default ~/TODO if present, else ~/.todo)")
	fmt.Fprintln(w, "  TODO_BAK_DIR    Backup file or directory (default /tmp/todo.bak)")
	fmt.Fprintln(w, "  TODO_NOBACKUP   Skip the backup on reset when set")
	fmt.Fprintln(w, "  TODO_LOG        Also log operations to this file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'todo help <command>' for detailed help on a command.")
}

// printCommandHelp writes detailed help for a single command to w.
func printCommandHelp(w io.Writer, cmd *commandInfo) {
	fmt.Fprintf(w, "Usage: %s\n", cmd.Usage)
	if len(cmd.Aliases) > 0 {
		fmt.Fprintf(w, "Aliases: %s\n", strings.Join(cmd.Aliases, ", "))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, cmd.Description)

	if len(cmd.Flags) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Flags:")
		for _, f := range cmd.Flags {
			fmt.Fprintf(w, "  %-10s%s\n", f.Name, f.Desc)
		}
	}
	if cmd.Example != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Example: %s\n", cmd.Example)
	}
}
