package editor

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "up"},
		{"pgdn", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), "pgdn"},
		{"home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), "home"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "tab"},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "backspace"},
		{"ctrl backspace alias", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), "ctrl+h"},
		{"ctrl+f", tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModNone), "ctrl+f"},
		{"ctrl+q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModNone), "ctrl+q"},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "esc"},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), "x"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyString(tt.ev); got != tt.want {
				t.Fatalf("keyString = %q, want %q", got, tt.want)
			}
		})
	}
}
