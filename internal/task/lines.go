package task

import (
	"bufio"
	"bytes"
)

// SplitLines splits raw file contents into lines. A trailing newline does not
// produce an empty final line, and "\r\n" endings are accepted.
func SplitLines(data []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if lines == nil {
		lines = []string{}
	}
	return lines
}

// JoinLines serializes lines, terminating every line with a newline.
func JoinLines(lines []string) []byte {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Entry is a parsed record together with its 1-based position in the file.
type Entry struct {
	Index  int
	Record Record
}

// Entries returns every line that parses into a record, keeping raw positions
// so indices still count noise lines.
func Entries(lines []string) []Entry {
	entries := []Entry{}
	for i, line := range lines {
		if r, ok := Parse(line); ok {
			entries = append(entries, Entry{Index: i + 1, Record: r})
		}
	}
	return entries
}
