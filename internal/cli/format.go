package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/leeovery/todo/internal/task"
)

// Format represents the output format type.
type Format string

// Format constants for output selection.
const (
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// Formatter renders a task list.
type Formatter interface {
	FormatList(w io.Writer, entries []task.Entry) error
}

// DetectTTY reports whether w is a terminal.
func DetectTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ResolveFormat determines the output format from flags.
// Returns an error if more than one format flag is set.
func ResolveFormat(jsonFlag, yamlFlag bool) (Format, error) {
	switch {
	case jsonFlag && yamlFlag:
		return "", errors.New("cannot specify multiple format flags (--json, --yaml)")
	case jsonFlag:
		return FormatJSON, nil
	case yamlFlag:
		return FormatYAML, nil
	default:
		return FormatPretty, nil
	}
}

// NewFormatter returns the Formatter for format. Pretty output is styled only
// when styled is true.
func NewFormatter(format Format, w io.Writer, styled bool) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return NewPrettyFormatter(w, styled)
	}
}

// PrettyFormatter prints "<index> <text>" lines, the index in bold and
// completed text struck through.
type PrettyFormatter struct {
	index lipgloss.Style
	done  lipgloss.Style
}

// NewPrettyFormatter builds a PrettyFormatter rendering for w. When styled is
// false the renderer uses the ASCII profile and emits no escape sequences.
func NewPrettyFormatter(w io.Writer, styled bool) *PrettyFormatter {
	r := lipgloss.NewRenderer(w)
	if !styled {
		r.SetColorProfile(termenv.Ascii)
	}
	return &PrettyFormatter{
		index: r.NewStyle().Bold(true),
		done:  r.NewStyle().Strikethrough(true),
	}
}

// FormatList writes one line per entry. An empty list writes nothing.
func (f *PrettyFormatter) FormatList(w io.Writer, entries []task.Entry) error {
	for _, e := range entries {
		text := e.Record.Text
		if e.Record.IsDone() {
			text = f.done.Render(text)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", f.index.Render(fmt.Sprint(e.Index)), text); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	return nil
}

// listItem is the machine-readable shape of a record.
type listItem struct {
	Index int    `json:"index" yaml:"index"`
	Done  bool   `json:"done" yaml:"done"`
	Text  string `json:"text" yaml:"text"`
}

func listItems(entries []task.Entry) []listItem {
	items := make([]listItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, listItem{Index: e.Index, Done: e.Record.IsDone(), Text: e.Record.Text})
	}
	return items
}

// JSONFormatter writes the list as an indented JSON array.
type JSONFormatter struct{}

// FormatList writes entries as JSON. An empty list is "[]".
func (f *JSONFormatter) FormatList(w io.Writer, entries []task.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(listItems(entries)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// YAMLFormatter writes the list as a YAML sequence.
type YAMLFormatter struct{}

// FormatList writes entries as YAML. An empty list is "[]".
func (f *YAMLFormatter) FormatList(w io.Writer, entries []task.Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(listItems(entries)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
