// Package testutil provides shared test helpers for the todo project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// FindRepoRoot walks up from the current working directory to find
// the repository root (the directory containing go.mod).
func FindRepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("cannot get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find repository root (no go.mod found)")
		}
		dir = parent
	}
}

// WriteTodoFile creates a todo file holding content in a fresh temp dir and
// returns its path. The backup for that file lives next to it as todo.bak.
func WriteTodoFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todo")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write todo file: %v", err)
	}
	return path
}

// ReadFile returns the contents of path, failing the test if it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// todoEnvNames lists every environment variable todo reads.
var todoEnvNames = []string{"TODO_PATH", "TODO_BAK_DIR", "TODO_NOBACKUP", "TODO_LOG", "TODO_LOCK_TIMEOUT"}

// SetTodoEnv points HOME at a fresh temp dir and sets exactly the TODO_*
// variables in env, unsetting the rest. Everything is restored when the test ends.
func SetTodoEnv(t *testing.T, env map[string]string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, name := range todoEnvNames {
		t.Setenv(name, "")
		if val, ok := env[name]; ok {
			t.Setenv(name, val)
			continue
		}
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("failed to unset %s: %v", name, err)
		}
	}
}
