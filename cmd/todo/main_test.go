package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leeovery/todo/internal/testutil"
)

// buildTodoBinary builds the todo binary for testing and returns the path to it.
func buildTodoBinary(t *testing.T) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "todo")
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/todo/")
	cmd.Dir = testutil.FindRepoRoot(t)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build todo binary: %v\n%s", err, out)
	}
	return binPath
}

// todoCommand prepares a run of the binary against a todo file in a temp dir.
func todoCommand(binPath, dir string, args ...string) *exec.Cmd {
	cmd := exec.Command(binPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"TODO_PATH="+filepath.Join(dir, "todo"),
		"TODO_BAK_DIR="+filepath.Join(dir, "todo.bak"),
	)
	return cmd
}

func TestMainIntegration(t *testing.T) {
	binPath := buildTodoBinary(t)

	t.Run("it returns exit code 0 with no subcommand (prints usage)", func(t *testing.T) {
		dir := t.TempDir()

		out, err := todoCommand(binPath, dir).CombinedOutput()
		if err != nil {
			t.Fatalf("expected exit code 0, got error: %v\n%s", err, out)
		}
		if !strings.Contains(string(out), "Usage:") {
			t.Errorf("output = %q, want it to contain 'Usage:'", out)
		}
	})

	t.Run("it adds, completes and lists tasks in plain text when piped", func(t *testing.T) {
		dir := t.TempDir()

		for _, args := range [][]string{{"add", "buy carrots", "call mum"}, {"done", "1"}} {
			if out, err := todoCommand(binPath, dir, args...).CombinedOutput(); err != nil {
				t.Fatalf("todo %v failed: %v\n%s", args, err, out)
			}
		}

		out, err := todoCommand(binPath, dir, "list").Output()
		if err != nil {
			t.Fatalf("todo list failed: %v", err)
		}
		want := "1 buy carrots\n2 call mum\n"
		if string(out) != want {
			t.Errorf("stdout = %q, want %q", out, want)
		}

		data, err := os.ReadFile(filepath.Join(dir, "todo"))
		if err != nil {
			t.Fatalf("failed to read todo file: %v", err)
		}
		if string(data) != "[*] buy carrots\n[ ] call mum\n" {
			t.Errorf("todo file = %q", data)
		}
	})

	t.Run("it returns exit code 1 and writes the error to stderr for missing arguments", func(t *testing.T) {
		dir := t.TempDir()

		cmd := todoCommand(binPath, dir, "add")
		var stdout, stderr strings.Builder
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		err := cmd.Run()

		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("expected ExitError, got %T: %v", err, err)
		}
		if exitErr.ExitCode() != 1 {
			t.Errorf("exit code = %d, want 1", exitErr.ExitCode())
		}
		if stdout.String() != "" {
			t.Errorf("stdout = %q, want empty (errors should go to stderr)", stdout.String())
		}
		if stderr.String() != "Error: todo add takes at least 1 argument\n" {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("it returns exit code 1 for unknown subcommand", func(t *testing.T) {
		dir := t.TempDir()

		out, err := todoCommand(binPath, dir, "nonexistent").CombinedOutput()
		if err == nil {
			t.Fatal("expected exit code 1, got 0")
		}
		if !strings.Contains(string(out), "Error: unknown command 'nonexistent'") {
			t.Errorf("output = %q, want it to contain \"Error: unknown command 'nonexistent'\"", out)
		}
	})

	t.Run("it resets and restores through the backup", func(t *testing.T) {
		dir := t.TempDir()
		content := "[ ] one\n[*] two\n"
		if err := os.WriteFile(filepath.Join(dir, "todo"), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write todo file: %v", err)
		}

		if out, err := todoCommand(binPath, dir, "reset").CombinedOutput(); err != nil {
			t.Fatalf("todo reset failed: %v\n%s", err, out)
		}
		if out, err := todoCommand(binPath, dir, "restore").CombinedOutput(); err != nil {
			t.Fatalf("todo restore failed: %v\n%s", err, out)
		}

		data, err := os.ReadFile(filepath.Join(dir, "todo"))
		if err != nil {
			t.Fatalf("failed to read todo file: %v", err)
		}
		if string(data) != content {
			t.Errorf("todo file = %q, want %q", data, content)
		}
	})
}
