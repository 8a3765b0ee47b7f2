package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var helpText = []string{
	"=== CODEIN HELP ===",
	"",
	"Navigation:",
	"  Arrow keys      Move cursor",
	"  Page Up/Down    Move by page",
	"  Home / End      Start / end of line",
	"",
	"Editing:",
	"  Type            Insert characters",
	"  Backspace       Delete character",
	"  Enter           New line / split line",
	"  Ctrl+U          Undo",
	"  Ctrl+Z          Redo",
	"",
	"Search & File:",
	"  Ctrl+F          Find text",
	"  Ctrl+N          Find next",
	"  Ctrl+S          Save file (prompts for name if none set)",
	"  Ctrl+Q          Quit editor",
	"  Ctrl+H          Show this help",
	"",
	"Press any key to return...",
}

func (e *Editor) Render(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	viewHeight := h - 1 // last row is status or prompt
	if viewHeight < 0 {
		viewHeight = 0
	}
	e.viewWidth = w
	e.viewHeight = viewHeight
	e.ensureCursorVisible(viewHeight)

	s.SetStyle(e.styleMain)
	s.Clear()

	if e.mode == ModeHelp {
		for y, line := range helpText {
			if y >= h-1 {
				break
			}
			drawText(s, 0, y, w, line, e.styleMain)
		}
		s.HideCursor()
		s.Show()
		return
	}

	for y := 0; y < viewHeight; y++ {
		idx := e.scroll + y
		if idx >= len(e.lines) {
			break
		}
		style := e.styleMain
		if idx == e.cursor.Row {
			style = style.Bold(true)
		}
		e.drawLine(s, y, w, e.lines[idx], style)
	}

	bottom := h - 1
	var cx, cy int
	if e.mode == ModeSearch || e.mode == ModeSaveAs {
		cx = e.renderPrompt(s, w, bottom)
		cy = bottom
	} else {
		e.renderStatusline(s, w, bottom)
		cy = e.cursor.Row - e.scroll
		cx = visualCol(e.lines[e.cursor.Row], e.cursor.Col, e.tabWidth)
		if cx >= w {
			cx = w - 1
		}
	}
	s.ShowCursor(cx, cy)
	s.Show()
}

func (e *Editor) drawLine(s tcell.Screen, y, w int, line []rune, style tcell.Style) {
	x := 0
	for _, r := range line {
		if x >= w {
			return
		}
		if r == '\t' {
			next := x + e.tabWidth - (x % e.tabWidth)
			for ; x < next && x < w; x++ {
				s.SetContent(x, y, ' ', nil, style)
			}
			continue
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func (e *Editor) renderStatusline(s tcell.Screen, w, y int) {
	name := "[No Name]"
	if e.filename != "" {
		name = "File: " + e.filename
	}
	left := " " + name
	if e.dirty {
		left += " *"
	}
	if e.statusMessage != "" {
		left += " | " + e.statusMessage
	}
	right := fmt.Sprintf("Ln %d, Col %d | Ctrl+H: help ", e.cursor.Row+1, e.cursor.Col+1)

	line := composeStatusLine(left, right, w)
	for x, r := range line {
		if x >= w {
			break
		}
		s.SetContent(x, y, r, nil, e.styleStatus)
	}
}

// renderPrompt draws the active prompt on the bottom row and returns the
// cursor column within it.
func (e *Editor) renderPrompt(s tcell.Screen, w, y int) int {
	label := "Search: "
	if e.mode == ModeSaveAs {
		label = "Save as: "
	}
	text := label + string(e.prompt)
	clearLine(s, y, w, e.stylePrompt)
	drawText(s, 0, y, w, text, e.stylePrompt)
	cx := len([]rune(text))
	if cx >= w {
		cx = w - 1
	}
	return cx
}

func drawText(s tcell.Screen, x, y, w int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= w {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func clearLine(s tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

func composeStatusLine(left, right string, width int) []rune {
	if width <= 0 {
		return nil
	}
	leftRunes := []rune(left)
	rightRunes := []rune(right)
	if len(leftRunes)+len(rightRunes) > width {
		if len(rightRunes) >= width {
			rightRunes = rightRunes[len(rightRunes)-width:]
			leftRunes = nil
		} else {
			leftRunes = leftRunes[:width-len(rightRunes)]
		}
	}
	spaceCount := width - len(leftRunes) - len(rightRunes)
	if spaceCount < 0 {
		spaceCount = 0
	}
	line := make([]rune, 0, width)
	line = append(line, leftRunes...)
	for i := 0; i < spaceCount; i++ {
		line = append(line, ' ')
	}
	line = append(line, rightRunes...)
	return line
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

func visualCol(line []rune, logicalCol int, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	if logicalCol < 0 {
		logicalCol = 0
	}
	if logicalCol > len(line) {
		logicalCol = len(line)
	}
	col := 0
	for i := 0; i < logicalCol; i++ {
		if line[i] == '\t' {
			col += tabWidth - (col % tabWidth)
			continue
		}
		col++
	}
	return col
}
