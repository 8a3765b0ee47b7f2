package editor

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/codein/internal/config"
)

func newTestEditor(lines ...string) *Editor {
	e := New(config.Default())
	if len(lines) > 0 {
		e.lines = make([][]rune, len(lines))
		for i, l := range lines {
			e.lines[i] = []rune(l)
		}
	}
	e.viewWidth = 80
	e.viewHeight = 24
	return e
}

func bufferLines(e *Editor) []string {
	out := make([]string, e.LineCount())
	for i := range out {
		out[i] = e.Line(i)
	}
	return out
}

func assertBuffer(t *testing.T, e *Editor, want ...string) {
	t.Helper()
	got := bufferLines(e)
	if len(got) != len(want) {
		t.Fatalf("line count = %d, want %d (%q)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func assertCursor(t *testing.T, e *Editor, row, col int) {
	t.Helper()
	gr, gc := e.CursorPos()
	if gr != row || gc != col {
		t.Fatalf("cursor = (%d,%d), want (%d,%d)", gr, gc, row, col)
	}
}

func TestInsertRune(t *testing.T) {
	e := newTestEditor("hllo")
	e.cursor = Cursor{Row: 0, Col: 1}
	e.InsertRune('e', 80)
	assertBuffer(t, e, "hello")
	assertCursor(t, e, 0, 2)
	if !e.dirty {
		t.Fatalf("dirty = false, want true")
	}
}

func TestInsertRuneAppend(t *testing.T) {
	e := newTestEditor()
	for _, r := range "abc" {
		e.InsertRune(r, 80)
	}
	assertBuffer(t, e, "abc")
	assertCursor(t, e, 0, 3)
}

func TestInsertRuneForcedWrap(t *testing.T) {
	e := newTestEditor("abcdefgh")
	e.cursor = Cursor{Row: 0, Col: 8}
	// Screen is 9 columns wide, so column 8 has no room left.
	e.InsertRune('x', 9)
	assertBuffer(t, e, "abcdefgh", "")
	assertCursor(t, e, 1, 0)
}

func TestInsertRuneMaxLineLength(t *testing.T) {
	cfg := config.Default()
	cfg.Editor.MaxLineLength = 4
	e := New(cfg)
	e.viewWidth = 80
	e.viewHeight = 24
	e.lines = [][]rune{[]rune("abc")}
	e.cursor = Cursor{Row: 0, Col: 3}
	e.InsertRune('d', 80)
	assertBuffer(t, e, "abc")
	assertCursor(t, e, 0, 3)
	if len(e.history.undo) != 0 {
		t.Fatalf("undo depth = %d after rejected insert, want 0", len(e.history.undo))
	}
}

func TestBackspaceInLine(t *testing.T) {
	e := newTestEditor("hello")
	e.cursor = Cursor{Row: 0, Col: 3}
	e.Backspace()
	assertBuffer(t, e, "helo")
	assertCursor(t, e, 0, 2)
}

func TestBackspaceJoinsLines(t *testing.T) {
	e := newTestEditor("abc", "def")
	e.cursor = Cursor{Row: 1, Col: 0}
	e.Backspace()
	assertBuffer(t, e, "abcdef")
	assertCursor(t, e, 0, 3)
}

func TestBackspaceAtOrigin(t *testing.T) {
	e := newTestEditor("abc")
	e.Backspace()
	assertBuffer(t, e, "abc")
	assertCursor(t, e, 0, 0)
	if len(e.history.undo) != 0 {
		t.Fatalf("undo depth = %d after no-op, want 0", len(e.history.undo))
	}
}

func TestBackspaceJoinRespectsMaxLineLength(t *testing.T) {
	cfg := config.Default()
	cfg.Editor.MaxLineLength = 6
	e := New(cfg)
	e.viewWidth = 80
	e.viewHeight = 24
	e.lines = [][]rune{[]rune("abc"), []rune("def")}
	e.cursor = Cursor{Row: 1, Col: 0}
	e.Backspace()
	assertBuffer(t, e, "abc", "def")
	assertCursor(t, e, 1, 0)
}

func TestInsertNewlineSplits(t *testing.T) {
	e := newTestEditor("hello")
	e.cursor = Cursor{Row: 0, Col: 2}
	e.InsertNewline()
	assertBuffer(t, e, "he", "llo")
	assertCursor(t, e, 1, 0)
}

func TestInsertNewlineAtLineEnd(t *testing.T) {
	e := newTestEditor("hello")
	e.cursor = Cursor{Row: 0, Col: 5}
	e.InsertNewline()
	assertBuffer(t, e, "hello", "")
	assertCursor(t, e, 1, 0)
}

func TestInsertNewlineMaxLines(t *testing.T) {
	cfg := config.Default()
	cfg.Editor.MaxLines = 2
	e := New(cfg)
	e.viewWidth = 80
	e.viewHeight = 24
	e.lines = [][]rune{[]rune("a"), []rune("b")}
	e.cursor = Cursor{Row: 1, Col: 1}
	e.InsertNewline()
	assertBuffer(t, e, "a", "b")
	assertCursor(t, e, 1, 1)
}

func TestHandleKeyInsertsPrintable(t *testing.T) {
	e := newTestEditor()
	e.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	assertBuffer(t, e, "x")
}

func TestHandleKeyQuit(t *testing.T) {
	e := newTestEditor()
	if !e.HandleKey(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModNone)) {
		t.Fatalf("ctrl+q returned false, want true")
	}
}

func TestHandleKeyEnterSplits(t *testing.T) {
	e := newTestEditor("ab")
	e.cursor = Cursor{Row: 0, Col: 1}
	e.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assertBuffer(t, e, "a", "b")
}

func TestHelpModeDismissedByAnyKey(t *testing.T) {
	e := newTestEditor("abc")
	e.HandleKey(tcell.NewEventKey(tcell.KeyCtrlH, 0, tcell.ModNone))
	if e.mode != ModeHelp {
		t.Fatalf("mode = %v after ctrl+h, want ModeHelp", e.mode)
	}
	e.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	if e.mode != ModeEdit {
		t.Fatalf("mode = %v after keypress, want ModeEdit", e.mode)
	}
	assertBuffer(t, e, "abc")
}

func TestStatusMessageClearedOnNextKey(t *testing.T) {
	e := newTestEditor("abc")
	e.Undo()
	if e.statusMessage != "nothing to undo" {
		t.Fatalf("status = %q, want %q", e.statusMessage, "nothing to undo")
	}
	e.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if e.statusMessage != "" {
		t.Fatalf("status = %q after keypress, want empty", e.statusMessage)
	}
}

func TestRestoreStateClamps(t *testing.T) {
	e := newTestEditor("ab", "c")
	e.RestoreState(10, 10, 10, "needle")
	assertCursor(t, e, 1, 1)
	if e.Scroll() != 1 {
		t.Fatalf("scroll = %d, want 1", e.Scroll())
	}
	if e.Query() != "needle" {
		t.Fatalf("query = %q, want %q", e.Query(), "needle")
	}
}
