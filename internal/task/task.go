// Package task defines the task record and its one-line encoding in the todo file.
package task

import (
	"fmt"
	"strings"
)

// Status represents whether a task is still open or completed.
type Status int

const (
	StatusPending Status = iota
	StatusDone
)

// Status tags prefixed to every encoded record.
const (
	PendingTag = "[ ] "
	DoneTag    = "[*] "
)

// TagLen is the length of every status tag. Lines shorter than this carry no record.
const TagLen = len(PendingTag)

// Record is a single task: a status and free-form text.
type Record struct {
	Status Status
	Text   string
}

// Pending creates a pending record with the given text.
func Pending(text string) Record {
	return Record{Status: StatusPending, Text: text}
}

// Done creates a completed record with the given text.
func Done(text string) Record {
	return Record{Status: StatusDone, Text: text}
}

// IsDone reports whether the record is completed.
func (r Record) IsDone() bool {
	return r.Status == StatusDone
}

// Tag returns the status tag for the record.
func (r Record) Tag() string {
	if r.Status == StatusDone {
		return DoneTag
	}
	return PendingTag
}

// String renders the record as it is stored on disk, without a trailing newline.
func (r Record) String() string {
	return r.Tag() + r.Text
}

// Parse decodes a single line. It returns false for lines too short to carry a
// status tag and for lines whose first four characters are not a known tag.
func Parse(line string) (Record, bool) {
	if len(line) < TagLen {
		return Record{}, false
	}
	switch line[:TagLen] {
	case PendingTag:
		return Pending(line[TagLen:]), true
	case DoneTag:
		return Done(line[TagLen:]), true
	default:
		return Record{}, false
	}
}

// ParseStatus converts a user-supplied status name ("todo" or "done").
func ParseStatus(name string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "todo", "pending":
		return StatusPending, nil
	case "done":
		return StatusDone, nil
	default:
		return 0, fmt.Errorf("unknown status %q (want todo or done)", name)
	}
}

// String returns the user-facing name of the status.
func (s Status) String() string {
	if s == StatusDone {
		return "done"
	}
	return "todo"
}

// TrimText removes leading and trailing whitespace from task text.
func TrimText(text string) string {
	return strings.TrimSpace(text)
}

// ValidateText checks that text is non-blank and fits on a single line.
func ValidateText(text string) error {
	if TrimText(text) == "" {
		return fmt.Errorf("task text is required")
	}
	return ValidateLine(text)
}

// ValidateLine checks that text fits on a single line. Blank text is allowed.
func ValidateLine(text string) error {
	if strings.ContainsAny(text, "\n\r") {
		return fmt.Errorf("task text must not contain newlines")
	}
	return nil
}
