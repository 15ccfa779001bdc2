// Package config resolves the todo file locations and options from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Environment variables recognized by todo.
const (
	EnvPath        = "TODO_PATH"
	EnvBackupDir   = "TODO_BAK_DIR"
	EnvNoBackup    = "TODO_NOBACKUP"
	EnvLogFile     = "TODO_LOG"
	EnvLockTimeout = "TODO_LOCK_TIMEOUT"
)

const (
	legacyFileName  = "TODO"
	defaultFileName = ".todo"
	// DefaultBackupPath is used when TODO_BAK_DIR is unset.
	DefaultBackupPath = "/tmp/todo.bak"
	backupFileName    = "todo.bak"
	// DefaultLockTimeout bounds how long a write waits for the file lock.
	DefaultLockTimeout = 5 * time.Second
)

// Config holds every setting the task store and CLI need. It is built once at
// startup and passed down explicitly.
type Config struct {
	TaskPath    string
	BackupPath  string
	NoBackup    bool
	LogFile     string
	LockTimeout time.Duration
}

// Keys under which viper binds the TODO_* environment variables.
const (
	envPrefix      = "TODO"
	keyPath        = "path"
	keyBackupDir   = "bak_dir"
	keyNoBackup    = "nobackup"
	keyLogFile     = "log"
	keyLockTimeout = "lock_timeout"
)

// Load resolves the configuration from the process environment.
func Load() (Config, error) {
	return load(os.UserHomeDir)
}

func load(home func() (string, error)) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
	for _, key := range []string{keyPath, keyBackupDir, keyNoBackup, keyLogFile, keyLockTimeout} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("binding %s: %w", key, err)
		}
	}
	v.SetDefault(keyBackupDir, DefaultBackupPath)
	v.SetDefault(keyLockTimeout, DefaultLockTimeout.String())

	cfg := Config{
		NoBackup: v.IsSet(keyNoBackup),
		LogFile:  v.GetString(keyLogFile),
	}

	taskPath := v.GetString(keyPath)
	if taskPath == "" {
		dir, err := home()
		if err != nil {
			return Config{}, fmt.Errorf("resolving home directory: %w", err)
		}
		taskPath = defaultTaskPath(dir)
	}
	cfg.TaskPath = taskPath

	cfg.BackupPath = resolveBackupPath(v.GetString(keyBackupDir))

	timeout, err := time.ParseDuration(strings.TrimSpace(v.GetString(keyLockTimeout)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", EnvLockTimeout, err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("invalid %s: must be positive, got %s", EnvLockTimeout, timeout)
	}
	cfg.LockTimeout = timeout

	return cfg, nil
}

// defaultTaskPath prefers a legacy ~/TODO file when one exists.
func defaultTaskPath(home string) string {
	legacy := filepath.Join(home, legacyFileName)
	if _, err := os.Stat(legacy); err == nil {
		return legacy
	}
	return filepath.Join(home, defaultFileName)
}

// resolveBackupPath treats an existing directory as the place to keep todo.bak;
// anything else is used as the backup file path itself.
func resolveBackupPath(p string) string {
	if p == "" {
		return DefaultBackupPath
	}
	if info, err := os.Stat(p); err == nil && info.IsDir() {
		return filepath.Join(p, backupFileName)
	}
	return p
}
