package editor

// snapshot is an independent deep copy of the buffer, cursor and viewport,
// taken before a mutation. Restoring one can never be corrupted by later
// edits to the live buffer.
type snapshot struct {
	lines  [][]rune
	cursor Cursor
	scroll int
}

// history keeps two bounded stacks of snapshots. Pushing onto a full stack
// evicts the oldest entry rather than failing.
type history struct {
	undo  []snapshot
	redo  []snapshot
	depth int
}

func newHistory(depth int) *history {
	if depth < 1 {
		depth = 1
	}
	return &history{depth: depth}
}

func (h *history) push(stack []snapshot, s snapshot) []snapshot {
	if len(stack) >= h.depth {
		copy(stack, stack[1:])
		stack = stack[:len(stack)-1]
	}
	return append(stack, s)
}

// record pushes a pre-mutation snapshot and invalidates redo history.
func (h *history) record(s snapshot) {
	h.undo = h.push(h.undo, s)
	h.redo = h.redo[:0]
}

// popUndo swaps the live state for the most recent undo snapshot. The live
// state goes onto the redo stack.
func (h *history) popUndo(live snapshot) (snapshot, bool) {
	if len(h.undo) == 0 {
		return snapshot{}, false
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = h.push(h.redo, live)
	return top, true
}

// popRedo is the mirror of popUndo.
func (h *history) popRedo(live snapshot) (snapshot, bool) {
	if len(h.redo) == 0 {
		return snapshot{}, false
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = h.push(h.undo, live)
	return top, true
}

func (h *history) reset() {
	h.undo = nil
	h.redo = nil
}

// captureSnapshot deep-copies the live state.
func (e *Editor) captureSnapshot() snapshot {
	lines := make([][]rune, len(e.lines))
	for i, line := range e.lines {
		lines[i] = append([]rune(nil), line...)
	}
	return snapshot{lines: lines, cursor: e.cursor, scroll: e.scroll}
}

func (e *Editor) restoreSnapshot(s snapshot) {
	e.lines = s.lines
	e.cursor = s.cursor
	e.scroll = s.scroll
}

// recordUndo is called by every mutating operation before it touches the
// buffer. Any operation that does so is reversible for free.
func (e *Editor) recordUndo() {
	e.history.record(e.captureSnapshot())
}

func (e *Editor) Undo() {
	s, ok := e.history.popUndo(e.captureSnapshot())
	if !ok {
		e.setStatus("nothing to undo")
		return
	}
	e.restoreSnapshot(s)
	e.dirty = true
}

func (e *Editor) Redo() {
	s, ok := e.history.popRedo(e.captureSnapshot())
	if !ok {
		e.setStatus("nothing to redo")
		return
	}
	e.restoreSnapshot(s)
	e.dirty = true
}
