// Package storage provides the Store that owns the todo file and its backup.
// The file is read once into a line snapshot; every mutation rewrites the whole
// file from that snapshot using an atomic temp file + rename under a file lock.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/gofrs/flock"
	"github.com/natefinch/atomic"

	"github.com/leeovery/todo/internal/config"
	"github.com/leeovery/todo/internal/task"
)

const filePerms = 0644

var (
	// ErrNoArguments is returned when an operation needs at least one argument.
	ErrNoArguments = errors.New("at least one argument is required")
	// ErrNoTasks is returned by Add when every argument is blank.
	ErrNoTasks = errors.New("no non-blank tasks to add")
	// ErrNoBackup is returned by Restore when there is no backup file.
	ErrNoBackup = errors.New("no backup to restore")
)

// Logger receives diagnostics from the store. *log.Logger from
// charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
}

// Store holds the snapshot of the todo file taken when it was opened.
type Store struct {
	path        string
	backupPath  string
	noBackup    bool
	lockPath    string
	lockTimeout time.Duration
	logger      Logger

	lines []string
}

// Option configures a Store.
type Option func(*Store)

// WithLockTimeout sets how long writes wait for the file lock.
func WithLockTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.lockTimeout = d
	}
}

// WithLogger sets the logger used for debug output and warnings.
func WithLogger(l Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Open opens or creates the todo file named by cfg and reads it into memory.
func Open(cfg config.Config, opts ...Option) (*Store, error) {
	s := &Store{
		path:        cfg.TaskPath,
		backupPath:  cfg.BackupPath,
		noBackup:    cfg.NoBackup,
		lockPath:    cfg.TaskPath + ".lock",
		lockTimeout: cfg.LockTimeout,
	}
	if s.lockTimeout <= 0 {
		s.lockTimeout = config.DefaultLockTimeout
	}
	for _, opt := range opts {
		opt(s)
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, filePerms)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the todo file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("couldn't read the todo file: %w", err)
	}
	s.lines = task.SplitLines(data)
	s.debug("loaded todo file", "path", s.path, "lines", len(s.lines))

	return s, nil
}

// Lines returns a copy of the raw line snapshot.
func (s *Store) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// List returns every record in the snapshot with its 1-based position.
// Lines that carry no record are skipped.
func (s *Store) List() []task.Entry {
	return task.Entries(s.lines)
}

// Raw returns the text of every record with the given status, in file order.
func (s *Store) Raw(status task.Status) []string {
	texts := []string{}
	for _, e := range s.List() {
		if e.Record.Status == status {
			texts = append(texts, e.Record.Text)
		}
	}
	return texts
}

// Add appends each non-blank text as a new pending record. The existing
// content is not rewritten. Returns the number of records added.
func (s *Store) Add(texts []string) (int, error) {
	if len(texts) == 0 {
		return 0, ErrNoArguments
	}

	var records []task.Record
	for _, text := range texts {
		trimmed := task.TrimText(text)
		if trimmed == "" {
			continue
		}
		if err := task.ValidateText(trimmed); err != nil {
			return 0, err
		}
		records = append(records, task.Pending(trimmed))
	}
	if len(records) == 0 {
		return 0, ErrNoTasks
	}

	unlock, err := s.acquireExclusive()
	if err != nil {
		return 0, err
	}
	defer unlock()

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_APPEND|os.O_CREATE, filePerms)
	if err != nil {
		return 0, fmt.Errorf("couldn't open the todo file: %w", err)
	}

	var buf bytes.Buffer
	if needsNewline(f) {
		buf.WriteByte('\n')
	}
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, r.String())
	}
	buf.Write(task.JoinLines(lines))

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return 0, fmt.Errorf("unable to write data: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("unable to write data: %w", err)
	}

	s.lines = append(s.lines, lines...)
	s.debug("appended tasks", "count", len(lines))
	return len(lines), nil
}

// needsNewline reports whether f is non-empty and does not end in a newline.
func needsNewline(f *os.File) bool {
	info, err := f.Stat()
	if err != nil || info.Size() == 0 {
		return false
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false
	}
	return last[0] != '\n'
}

// Remove rewrites the file without the lines at the given 1-based indices.
// Every other line is kept verbatim, including lines that carry no record.
func (s *Store) Remove(indices []string) error {
	if len(indices) == 0 {
		return ErrNoArguments
	}
	match := indexSet(indices)

	kept := make([]string, 0, len(s.lines))
	for i, line := range s.lines {
		if match.take(i + 1) {
			continue
		}
		kept = append(kept, line)
	}
	s.warnUnmatched(match)

	return s.rewrite(kept)
}

// Done marks the records at the given indices as completed. Records that are
// already completed are kept as they are. Lines that carry no record are dropped.
func (s *Store) Done(indices []string) error {
	if len(indices) == 0 {
		return ErrNoArguments
	}
	match := indexSet(indices)

	out := make([]string, 0, len(s.lines))
	for i, line := range s.lines {
		r, ok := task.Parse(line)
		if !ok {
			s.debug("dropping line without a status tag", "index", i+1)
			continue
		}
		if match.take(i+1) && !r.IsDone() {
			r = task.Done(r.Text)
		}
		out = append(out, r.String())
	}
	s.warnUnmatched(match)

	return s.rewrite(out)
}

// Edit replaces the text of the record at index, keeping its status. The new
// text may be blank. Lines that carry no record are dropped.
func (s *Store) Edit(index, text string) error {
	if index == "" {
		return ErrNoArguments
	}
	text = task.TrimText(text)
	if err := task.ValidateLine(text); err != nil {
		return err
	}
	match := indexSet([]string{index})

	out := make([]string, 0, len(s.lines))
	for i, line := range s.lines {
		r, ok := task.Parse(line)
		if !ok {
			s.debug("dropping line without a status tag", "index", i+1)
			continue
		}
		if match.take(i + 1) {
			r.Text = text
		}
		out = append(out, r.String())
	}
	s.warnUnmatched(match)

	return s.rewrite(out)
}

// Sort rewrites the file with pending records first and completed records
// second, each group in its original order. Lines that carry no record are dropped.
func (s *Store) Sort() error {
	var pending, done []string
	for _, line := range s.lines {
		r, ok := task.Parse(line)
		if !ok {
			continue
		}
		if r.IsDone() {
			done = append(done, r.String())
		} else {
			pending = append(pending, r.String())
		}
	}
	return s.rewrite(append(pending, done...))
}

// Reset deletes the todo file, copying it to the backup path first unless
// backups are disabled. A failed backup is logged and the file is still deleted.
func (s *Store) Reset() error {
	unlock, err := s.acquireExclusive()
	if err != nil {
		return err
	}
	defer unlock()

	if !s.noBackup {
		if err := s.backup(); err != nil {
			s.warn("couldn't back up the todo file", "err", err)
		} else {
			s.debug("backed up todo file", "backup", s.backupPath)
		}
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error while clearing todo file: %w", err)
	}
	s.lines = []string{}
	s.debug("cleared todo file", "path", s.path)
	return nil
}

func (s *Store) backup() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	return writeFile(s.backupPath, data)
}

// Restore copies the backup file over the todo file.
func (s *Store) Restore() error {
	data, err := os.ReadFile(s.backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s does not exist", ErrNoBackup, s.backupPath)
		}
		return fmt.Errorf("unable to restore the backup: %w", err)
	}

	unlock, err := s.acquireExclusive()
	if err != nil {
		return err
	}
	defer unlock()

	if err := writeFile(s.path, data); err != nil {
		return fmt.Errorf("unable to restore the backup: %w", err)
	}
	s.lines = task.SplitLines(data)
	s.debug("restored todo file", "backup", s.backupPath, "lines", len(s.lines))
	return nil
}

// rewrite replaces the todo file with lines under the exclusive lock.
func (s *Store) rewrite(lines []string) error {
	unlock, err := s.acquireExclusive()
	if err != nil {
		return err
	}
	defer unlock()

	if err := writeFile(s.path, task.JoinLines(lines)); err != nil {
		return fmt.Errorf("cannot save the todo file: %w", err)
	}
	s.lines = lines
	s.debug("rewrote todo file", "lines", len(lines))
	return nil
}

// writeFile atomically replaces path with data. New files get filePerms;
// existing files keep their mode.
func writeFile(path string, data []byte) error {
	_, statErr := os.Stat(path)
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	if os.IsNotExist(statErr) {
		if err := os.Chmod(path, filePerms); err != nil {
			return fmt.Errorf("failed to set file permissions: %w", err)
		}
	}
	return nil
}

// acquireExclusive takes the write lock, returning a function that releases it.
func (s *Store) acquireExclusive() (func(), error) {
	fl := flock.New(s.lockPath)

	s.debug("acquiring exclusive lock", "lock", s.lockPath)
	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, 10*time.Millisecond)
	if err != nil || !locked {
		return nil, fmt.Errorf("could not acquire lock on %s - another process may be using todo", s.lockPath)
	}
	s.debug("exclusive lock acquired")

	return func() {
		fl.Unlock()
		s.debug("exclusive lock released")
	}, nil
}

// indices tracks which requested positions were seen.
type indices map[string]bool

func indexSet(args []string) indices {
	m := indices{}
	for _, a := range args {
		m[a] = false
	}
	return m
}

// take reports whether pos was requested and marks it as seen.
func (m indices) take(pos int) bool {
	key := strconv.Itoa(pos)
	if _, ok := m[key]; !ok {
		return false
	}
	m[key] = true
	return true
}

func (s *Store) warnUnmatched(m indices) {
	var missing []string
	for idx, seen := range m {
		if !seen {
			missing = append(missing, idx)
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		return indexLess(missing[i], missing[j])
	})
	for _, idx := range missing {
		s.warn("no task at index", "index", idx)
	}
}

// indexLess orders numeric indices by value, ahead of any that do not parse.
func indexLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

func (s *Store) debug(msg string, keyvals ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, keyvals...)
	}
}

func (s *Store) warn(msg string, keyvals ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, keyvals...)
	}
}
