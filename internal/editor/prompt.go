package editor

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// The search and save-as prompts are single-line inputs on the bottom row.
// They are editor modes fed through HandleKey; cancelling one leaves the
// buffer, cursor and history untouched.

func (e *Editor) enterSearchPrompt() {
	e.mode = ModeSearch
	e.prompt = e.prompt[:0]
}

func (e *Editor) enterSavePrompt() {
	e.mode = ModeSaveAs
	e.prompt = e.prompt[:0]
}

func (e *Editor) handleSearchPrompt(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		e.mode = ModeEdit
		e.prompt = e.prompt[:0]
	case tcell.KeyEnter:
		query := string(e.prompt)
		e.mode = ModeEdit
		e.prompt = e.prompt[:0]
		if e.SetQuery(query) {
			e.SearchForward()
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.prompt) > 0 {
			e.prompt = e.prompt[:len(e.prompt)-1]
		}
	case tcell.KeyRune:
		if r := ev.Rune(); unicode.IsPrint(r) {
			e.prompt = append(e.prompt, r)
		}
	}
	return false
}

func (e *Editor) handleSavePrompt(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		e.mode = ModeEdit
		e.prompt = e.prompt[:0]
	case tcell.KeyEnter:
		path := string(e.prompt)
		e.mode = ModeEdit
		e.prompt = e.prompt[:0]
		if path == "" {
			return false
		}
		if err := e.Save(path); err != nil {
			e.setStatus("save failed: " + err.Error())
			return false
		}
		e.setStatus("saved " + path)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.prompt) > 0 {
			e.prompt = e.prompt[:len(e.prompt)-1]
		}
	case tcell.KeyRune:
		if r := ev.Rune(); unicode.IsPrint(r) {
			e.prompt = append(e.prompt, r)
		}
	}
	return false
}
