package editor

func (e *Editor) moveLeft() {
	if e.cursor.Col > 0 {
		e.cursor.Col--
		return
	}
	if e.cursor.Row == 0 {
		return
	}
	e.cursor.Row--
	e.cursor.Col = len(e.lines[e.cursor.Row])
}

func (e *Editor) moveRight() {
	lineLen := len(e.lines[e.cursor.Row])
	if e.cursor.Col < lineLen {
		e.cursor.Col++
		return
	}
	if e.cursor.Row >= len(e.lines)-1 {
		return
	}
	e.cursor.Row++
	e.cursor.Col = 0
}

func (e *Editor) moveUp() {
	if e.cursor.Row == 0 {
		return
	}
	e.cursor.Row--
	e.clampCursorCol()
}

func (e *Editor) moveDown() {
	if e.cursor.Row >= len(e.lines)-1 {
		return
	}
	e.cursor.Row++
	e.clampCursorCol()
}

func (e *Editor) moveLineStart() {
	e.cursor.Col = 0
}

func (e *Editor) moveLineEnd() {
	e.cursor.Col = len(e.lines[e.cursor.Row])
}

func (e *Editor) pageUp() {
	height := e.viewHeightCached()
	if e.cursor.Row == 0 {
		e.scroll = 0
		return
	}
	e.cursor.Row -= height
	if e.cursor.Row < 0 {
		e.cursor.Row = 0
	}
	if e.scroll > e.cursor.Row {
		e.scroll = e.cursor.Row
	}
	e.clampCursorCol()
}

func (e *Editor) pageDown() {
	height := e.viewHeightCached()
	if e.cursor.Row >= len(e.lines)-1 {
		e.scroll = len(e.lines) - height
		if e.scroll < 0 {
			e.scroll = 0
		}
		return
	}
	e.cursor.Row += height
	if e.cursor.Row >= len(e.lines) {
		e.cursor.Row = len(e.lines) - 1
	}
	e.scroll = e.cursor.Row - height + 1
	if e.scroll < 0 {
		e.scroll = 0
	}
	e.clampCursorCol()
}

func (e *Editor) clampCursorCol() {
	lineLen := len(e.lines[e.cursor.Row])
	if e.cursor.Col > lineLen {
		e.cursor.Col = lineLen
	}
}

// ensureCursorVisible clamps the cursor into the buffer and pulls the
// scroll offset so the cursor row lies inside the visible window. This is
// the single reconciliation point for scrolling; only the page_up/page_down
// viewport resets bypass it.
func (e *Editor) ensureCursorVisible(viewHeight int) {
	if viewHeight <= 0 {
		return
	}
	if e.cursor.Row < 0 {
		e.cursor.Row = 0
	}
	if e.cursor.Row >= len(e.lines) {
		e.cursor.Row = len(e.lines) - 1
	}
	e.clampCursorCol()
	if e.scroll < 0 {
		e.scroll = 0
	}
	if e.cursor.Row < e.scroll {
		e.scroll = e.cursor.Row
		return
	}
	if e.cursor.Row >= e.scroll+viewHeight {
		e.scroll = e.cursor.Row - viewHeight + 1
	}
}
