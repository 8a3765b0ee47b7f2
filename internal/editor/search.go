package editor

import (
	"strings"
	"unicode/utf8"
)

// SetQuery replaces the retained search string. The query persists between
// searches until replaced. An empty query is rejected.
func (e *Editor) SetQuery(query string) bool {
	if query == "" {
		e.setStatus("no search query")
		return false
	}
	e.searchQuery = query
	return true
}

func (e *Editor) Query() string {
	return e.searchQuery
}

// SearchForward finds the first occurrence of the retained query after the
// cursor, wrapping to the top of the buffer when the tail is exhausted. The
// cursor moves to the start of the match; on a miss it stays put.
func (e *Editor) SearchForward() bool {
	if e.searchQuery == "" {
		e.setStatus("no search query")
		return false
	}
	startRow := e.cursor.Row
	for row := startRow; row < len(e.lines); row++ {
		from := 0
		if row == startRow {
			from = e.cursor.Col + 1
		}
		if e.matchInLine(row, from) {
			return true
		}
	}
	for row := 0; row < startRow; row++ {
		if e.matchInLine(row, 0) {
			return true
		}
	}
	e.setStatus("not found: " + e.searchQuery)
	return false
}

func (e *Editor) matchInLine(row, from int) bool {
	line := e.lines[row]
	if from > len(line) {
		from = len(line)
	}
	if from < 0 {
		from = 0
	}
	rest := string(line[from:])
	idx := strings.Index(rest, e.searchQuery)
	if idx < 0 {
		return false
	}
	e.cursor = Cursor{Row: row, Col: from + utf8.RuneCountInString(rest[:idx])}
	e.ensureCursorVisible(e.viewHeightCached())
	return true
}
