package cli

import (
	"strings"
	"testing"

	"github.com/leeovery/todo/internal/testutil"
)

func TestHelp(t *testing.T) {
	t.Run("todo help shows all commands", func(t *testing.T) {
		stdout, _, code := runApp(t, nil, "help")
		if code != 0 {
			t.Fatalf("exit code = %d, want 0", code)
		}
		for _, name := range []string{
			"add", "edit", "list", "done", "rm",
			"reset", "restore", "sort", "raw", "help",
		} {
			if !strings.Contains(stdout, "  "+name) {
				t.Errorf("stdout missing command %q", name)
			}
		}
	})

	t.Run("todo help lists the environment variables", func(t *testing.T) {
		stdout, _, _ := runApp(t, nil, "help")
		for _, env := range []string{"TODO_PATH", "TODO_BAK_DIR", "TODO_NOBACKUP", "TODO_LOG"} {
			if !strings.Contains(stdout, env) {
				t.Errorf("stdout missing %s", env)
			}
		}
	})

	t.Run("todo help <command> shows command usage", func(t *testing.T) {
		stdout, _, code := runApp(t, nil, "help", "add")
		if code != 0 {
			t.Fatalf("exit code = %d, want 0", code)
		}
		if !strings.HasPrefix(stdout, "Usage: todo add <task>...") {
			t.Errorf("stdout = %q, want add usage", stdout)
		}
	})

	t.Run("todo help resolves aliases", func(t *testing.T) {
		stdout, _, _ := runApp(t, nil, "help", "ls")
		if !strings.Contains(stdout, "Usage: todo list [--json|--yaml]") {
			t.Errorf("stdout = %q, want list usage", stdout)
		}
		if !strings.Contains(stdout, "--yaml") {
			t.Errorf("stdout = %q, want list flags", stdout)
		}
	})

	t.Run("--help on a command shows that command", func(t *testing.T) {
		stdout, _, code := runApp(t, nil, "edit", "--help")
		if code != 0 {
			t.Fatalf("exit code = %d, want 0", code)
		}
		if !strings.HasPrefix(stdout, "Usage: todo edit <index> <task>") {
			t.Errorf("stdout = %q, want edit usage", stdout)
		}
	})

	t.Run("--help before the tasks shows add help and adds nothing", func(t *testing.T) {
		path := testutil.WriteTodoFile(t, "")
		stdout, _, code := runApp(t, todoEnv(path), "add", "--help")
		if code != 0 {
			t.Fatalf("exit code = %d, want 0", code)
		}
		if !strings.HasPrefix(stdout, "Usage: todo add <task>...") {
			t.Errorf("stdout = %q, want add usage", stdout)
		}
		if got := testutil.ReadFile(t, path); got != "" {
			t.Errorf("file = %q, want empty", got)
		}
	})

	t.Run("todo help rejects an unknown topic", func(t *testing.T) {
		_, stderr, code := runApp(t, nil, "help", "nope")
		if code != 1 {
			t.Fatalf("exit code = %d, want 1", code)
		}
		if !strings.Contains(stderr, "unknown help topic 'nope'") {
			t.Errorf("stderr = %q", stderr)
		}
	})
}

func TestFindCommand(t *testing.T) {
	t.Run("it returns nil for unknown names", func(t *testing.T) {
		if got := findCommand("create"); got != nil {
			t.Errorf("findCommand(create) = %+v, want nil", got)
		}
	})

	t.Run("it matches the remove alias", func(t *testing.T) {
		got := findCommand("remove")
		if got == nil || got.Name != "rm" {
			t.Errorf("findCommand(remove) = %+v, want rm", got)
		}
	})
}
