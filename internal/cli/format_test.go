package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leeovery/todo/internal/task"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name       string
		json, yaml bool
		want       Format
		wantErr    bool
	}{
		{"it defaults to pretty", false, false, FormatPretty, false},
		{"it selects json", true, false, FormatJSON, false},
		{"it selects yaml", false, true, FormatYAML, false},
		{"it rejects both flags", true, true, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFormat(tt.json, tt.yaml)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrettyFormatter(t *testing.T) {
	entries := []task.Entry{
		{Index: 1, Record: task.Pending("buy carrots")},
		{Index: 4, Record: task.Done("call mum")},
	}

	t.Run("it writes plain lines when unstyled", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewPrettyFormatter(&buf, false).FormatList(&buf, entries); err != nil {
			t.Fatalf("FormatList() error: %v", err)
		}
		want := "1 buy carrots\n4 call mum\n"
		if buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
		if strings.Contains(buf.String(), "\x1b[") {
			t.Errorf("output = %q, want no escape sequences", buf.String())
		}
	})

	t.Run("it writes nothing for no entries", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewPrettyFormatter(&buf, false).FormatList(&buf, nil); err != nil {
			t.Fatalf("FormatList() error: %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("output = %q, want empty", buf.String())
		}
	})
}

func TestNewFormatter(t *testing.T) {
	t.Run("it returns the formatter for each format", func(t *testing.T) {
		var buf bytes.Buffer
		if _, ok := NewFormatter(FormatJSON, &buf, false).(*JSONFormatter); !ok {
			t.Error("json format did not return *JSONFormatter")
		}
		if _, ok := NewFormatter(FormatYAML, &buf, false).(*YAMLFormatter); !ok {
			t.Error("yaml format did not return *YAMLFormatter")
		}
		if _, ok := NewFormatter(FormatPretty, &buf, false).(*PrettyFormatter); !ok {
			t.Error("pretty format did not return *PrettyFormatter")
		}
	})
}

func TestYAMLFormatter(t *testing.T) {
	t.Run("it writes an empty sequence for no entries", func(t *testing.T) {
		var buf bytes.Buffer
		if err := (&YAMLFormatter{}).FormatList(&buf, nil); err != nil {
			t.Fatalf("FormatList() error: %v", err)
		}
		if buf.String() != "[]\n" {
			t.Errorf("output = %q, want %q", buf.String(), "[]\n")
		}
	})
}

func TestDetectTTY(t *testing.T) {
	t.Run("it is false for non-file writers", func(t *testing.T) {
		if DetectTTY(&bytes.Buffer{}) {
			t.Error("DetectTTY(buffer) = true, want false")
		}
	})
}
