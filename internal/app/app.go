package app

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/codein/internal/config"
	"github.com/kobzarvs/codein/internal/editor"
	"github.com/kobzarvs/codein/internal/logger"
	"github.com/kobzarvs/codein/internal/session"
)

// App is the top-level runtime for codein.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() error {
	runtime.LockOSThread()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(os.Getenv("CODEIN_DEBUG") != ""); err != nil {
		return err
	}
	defer logger.Close()

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	sm, err := session.NewManager()
	if err != nil {
		logger.Warn("session disabled", "error", err)
		sm = nil
	} else {
		defer sm.Stop()
	}

	ed := editor.New(cfg)
	var openPath string
	if len(a.args) > 0 {
		openPath = a.args[0]
		if abs, err := filepath.Abs(openPath); err == nil {
			openPath = abs
		}
		if err := ed.OpenFile(openPath); err != nil {
			// Missing files are fine; the buffer starts empty and the
			// path is kept for the first save.
			logger.Warn("open failed", "path", openPath, "error", err)
			ed.SetStatusMessage("new file: " + openPath)
		}
		if sm != nil {
			if state, ok := sm.GetFileState(openPath); ok {
				ed.RestoreState(state.CursorRow, state.CursorCol, state.Scroll, state.SearchQuery)
			}
		}
		logger.Info("opened", "path", openPath, "lines", ed.LineCount())
	}

	ed.Render(s)
	for {
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ed.HandleKey(ev) {
				a.rememberState(sm, openPath, ed)
				return nil
			}
		case *tcell.EventResize:
			s.Sync()
		}
		ed.Render(s)
	}
}

func (a *App) rememberState(sm *session.Manager, openPath string, ed *editor.Editor) {
	if sm == nil {
		return
	}
	// Prefer the path the buffer was actually saved under.
	path := ed.Filename()
	if path == "" {
		path = openPath
	}
	if path == "" {
		return
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	row, col := ed.CursorPos()
	sm.SetFileState(path, session.FileState{
		CursorRow:   row,
		CursorCol:   col,
		Scroll:      ed.Scroll(),
		SearchQuery: ed.Query(),
	})
}
