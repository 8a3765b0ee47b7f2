package editor

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/codein/internal/config"
)

type Mode int

const (
	ModeEdit Mode = iota
	ModeSearch
	ModeSaveAs
	ModeHelp
)

type Cursor struct {
	Row int
	Col int
}

type Editor struct {
	lines    [][]rune
	cursor   Cursor
	scroll   int
	mode     Mode
	filename string
	dirty    bool

	keymap        map[string]string
	maxLines      int
	maxLineLength int
	tabWidth      int

	history *history

	statusMessage string
	prompt        []rune

	searchQuery string

	viewWidth  int
	viewHeight int

	styleMain   tcell.Style
	styleStatus tcell.Style
	stylePrompt tcell.Style
}

func New(cfg config.Config) *Editor {
	keymap := make(map[string]string, len(cfg.Keymap))
	for k, v := range cfg.Keymap {
		keymap[k] = v
	}
	maxLines := cfg.Editor.MaxLines
	if maxLines < 1 {
		maxLines = 1
	}
	maxLineLength := cfg.Editor.MaxLineLength
	if maxLineLength < 1 {
		maxLineLength = 1
	}
	tabWidth := cfg.Editor.TabWidth
	if tabWidth < 1 {
		tabWidth = 1
	}
	mainFg := parseColor(cfg.Theme.Foreground, tcell.ColorWhite)
	mainBg := parseColor(cfg.Theme.Background, tcell.ColorBlack)
	statusFg := parseColor(cfg.Theme.StatuslineForeground, tcell.ColorBlack)
	statusBg := parseColor(cfg.Theme.StatuslineBackground, tcell.ColorGray)
	promptFg := parseColor(cfg.Theme.PromptForeground, statusFg)
	promptBg := parseColor(cfg.Theme.PromptBackground, statusBg)
	return &Editor{
		lines:         [][]rune{{}},
		keymap:        keymap,
		maxLines:      maxLines,
		maxLineLength: maxLineLength,
		tabWidth:      tabWidth,
		history:       newHistory(cfg.Editor.UndoDepth),
		styleMain:     tcell.StyleDefault.Foreground(mainFg).Background(mainBg),
		styleStatus:   tcell.StyleDefault.Foreground(statusFg).Background(statusBg),
		stylePrompt:   tcell.StyleDefault.Foreground(promptFg).Background(promptBg),
	}
}

// HandleKey processes one key event. It returns true when the editor
// should quit.
func (e *Editor) HandleKey(ev *tcell.EventKey) bool {
	if e.mode == ModeEdit && e.statusMessage != "" {
		e.statusMessage = ""
	}
	switch e.mode {
	case ModeSearch:
		return e.handleSearchPrompt(ev)
	case ModeSaveAs:
		return e.handleSavePrompt(ev)
	case ModeHelp:
		// Any key dismisses the help screen
		e.mode = ModeEdit
		return false
	default:
		return e.handleEdit(ev)
	}
}

func (e *Editor) handleEdit(ev *tcell.EventKey) bool {
	if action, ok := e.keymap[keyString(ev)]; ok {
		return e.execAction(action)
	}
	if ev.Key() == tcell.KeyRune {
		if r := ev.Rune(); unicode.IsPrint(r) {
			e.InsertRune(r, e.viewWidthCached())
		}
	}
	return false
}

func (e *Editor) execAction(action string) bool {
	switch action {
	case "quit":
		return true
	case "save":
		e.saveAction()
	case "move_left":
		e.moveLeft()
	case "move_right":
		e.moveRight()
	case "move_up":
		e.moveUp()
	case "move_down":
		e.moveDown()
	case "page_up":
		e.pageUp()
	case "page_down":
		e.pageDown()
	case "line_start":
		e.moveLineStart()
	case "line_end":
		e.moveLineEnd()
	case "backspace":
		e.Backspace()
	case "newline":
		e.InsertNewline()
	case "insert_tab":
		e.InsertRune('\t', e.viewWidthCached())
	case "undo":
		e.Undo()
	case "redo":
		e.Redo()
	case "search":
		e.enterSearchPrompt()
	case "search_next":
		e.SearchForward()
	case "help":
		e.mode = ModeHelp
	default:
		e.setStatus("unknown action: " + action)
	}
	return false
}

func (e *Editor) saveAction() {
	if e.filename == "" {
		e.enterSavePrompt()
		return
	}
	if err := e.Save(e.filename); err != nil {
		e.setStatus("save failed: " + err.Error())
		return
	}
	e.setStatus("saved " + e.filename)
}

// InsertRune inserts r at the cursor. width is the current screen width;
// once the cursor reaches it the insert is routed to a line split so lines
// never outgrow the active display width.
func (e *Editor) InsertRune(r rune, width int) {
	if width > 1 && e.cursor.Col >= width-1 {
		e.InsertNewline()
		return
	}
	line := e.lines[e.cursor.Row]
	if e.cursor.Col > len(line) {
		e.cursor.Col = len(line)
	}
	if len(line)+1 >= e.maxLineLength {
		return
	}
	e.recordUndo()
	line = append(line, 0)
	copy(line[e.cursor.Col+1:], line[e.cursor.Col:])
	line[e.cursor.Col] = r
	e.lines[e.cursor.Row] = line
	e.cursor.Col++
	e.dirty = true
}

// Backspace removes the rune before the cursor, or joins the current line
// onto the previous one when the cursor is at column 0.
func (e *Editor) Backspace() {
	if e.cursor.Col > 0 {
		line := e.lines[e.cursor.Row]
		col := e.cursor.Col
		if col > len(line) {
			col = len(line)
		}
		if col == 0 {
			return
		}
		e.recordUndo()
		copy(line[col-1:], line[col:])
		e.lines[e.cursor.Row] = line[:len(line)-1]
		e.cursor.Col = col - 1
		e.dirty = true
		return
	}
	if e.cursor.Row == 0 {
		return
	}
	prev := e.lines[e.cursor.Row-1]
	cur := e.lines[e.cursor.Row]
	if len(prev)+len(cur) >= e.maxLineLength {
		return
	}
	e.recordUndo()
	merged := make([]rune, 0, len(prev)+len(cur))
	merged = append(merged, prev...)
	merged = append(merged, cur...)

	newLines := make([][]rune, 0, len(e.lines)-1)
	newLines = append(newLines, e.lines[:e.cursor.Row-1]...)
	newLines = append(newLines, merged)
	newLines = append(newLines, e.lines[e.cursor.Row+1:]...)
	e.lines = newLines

	e.cursor = Cursor{Row: e.cursor.Row - 1, Col: len(prev)}
	e.dirty = true
}

// InsertNewline splits the current line at the cursor.
func (e *Editor) InsertNewline() {
	if len(e.lines) >= e.maxLines {
		return
	}
	e.recordUndo()
	row, col := e.cursor.Row, e.cursor.Col
	line := e.lines[row]
	if col > len(line) {
		col = len(line)
	}
	left := append([]rune(nil), line[:col]...)
	right := append([]rune(nil), line[col:]...)

	newLines := make([][]rune, 0, len(e.lines)+1)
	newLines = append(newLines, e.lines[:row]...)
	newLines = append(newLines, left, right)
	newLines = append(newLines, e.lines[row+1:]...)
	e.lines = newLines

	e.cursor = Cursor{Row: row + 1, Col: 0}
	e.dirty = true
}

func (e *Editor) setStatus(msg string) {
	e.statusMessage = msg
}

func (e *Editor) SetStatusMessage(msg string) {
	e.setStatus(msg)
}

func (e *Editor) LineCount() int {
	return len(e.lines)
}

// Line returns a copy of line i, or "" when i is out of range.
func (e *Editor) Line(i int) string {
	if i < 0 || i >= len(e.lines) {
		return ""
	}
	return string(e.lines[i])
}

func (e *Editor) CursorPos() (int, int) {
	return e.cursor.Row, e.cursor.Col
}

func (e *Editor) Scroll() int {
	return e.scroll
}

func (e *Editor) Filename() string {
	return e.filename
}

// RestoreState re-applies a remembered cursor, viewport and search query,
// clamping everything into the current buffer.
func (e *Editor) RestoreState(row, col, scroll int, query string) {
	if row < 0 {
		row = 0
	}
	if row >= len(e.lines) {
		row = len(e.lines) - 1
	}
	e.cursor.Row = row
	e.cursor.Col = col
	e.clampCursorCol()
	if scroll < 0 {
		scroll = 0
	}
	if scroll >= len(e.lines) {
		scroll = len(e.lines) - 1
	}
	e.scroll = scroll
	e.searchQuery = query
}

func (e *Editor) viewWidthCached() int {
	if e.viewWidth < 1 {
		return 1
	}
	return e.viewWidth
}

func (e *Editor) viewHeightCached() int {
	if e.viewHeight < 1 {
		return 1
	}
	return e.viewHeight
}
