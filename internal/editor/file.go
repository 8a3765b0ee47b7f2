package editor

import (
	"errors"
	"os"
	"strings"
)

// OpenFile loads path into the buffer, replacing any current content and
// history. A missing or unreadable file leaves a single empty line; the
// returned error is informational and the session continues.
func (e *Editor) OpenFile(path string) error {
	e.filename = path
	e.lines = [][]rune{{}}
	e.cursor = Cursor{}
	e.scroll = 0
	e.mode = ModeEdit
	e.statusMessage = ""
	e.dirty = false
	e.history.reset()

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lines := splitFileLines(data)
	if len(lines) > e.maxLines {
		lines = lines[:e.maxLines]
	}
	if len(lines) == 0 {
		lines = [][]rune{{}}
	}
	e.lines = lines
	return nil
}

// Save writes the buffer to path, one terminator per line. In-memory state
// is untouched on failure.
func (e *Editor) Save(path string) error {
	if path == "" {
		if e.filename == "" {
			return errors.New("no file name")
		}
		path = e.filename
	}
	var b strings.Builder
	for _, line := range e.lines {
		b.WriteString(string(line))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return err
	}
	e.filename = path
	e.dirty = false
	return nil
}

func (e *Editor) Content() string {
	var b strings.Builder
	for i, line := range e.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(line))
	}
	return b.String()
}

// splitFileLines splits file data into terminator-free lines. A trailing
// newline does not produce a phantom empty last line.
func splitFileLines(data []byte) [][]rune {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}
