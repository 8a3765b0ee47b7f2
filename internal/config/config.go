package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	MaxLines      int `toml:"max-lines"`
	MaxLineLength int `toml:"max-line-length"`
	UndoDepth     int `toml:"undo-depth"`
	TabWidth      int `toml:"tab-width"`
}

type Theme struct {
	Foreground           string `toml:"foreground"`
	Background           string `toml:"background"`
	StatuslineForeground string `toml:"statusline-foreground"`
	StatuslineBackground string `toml:"statusline-background"`
	PromptForeground     string `toml:"prompt-foreground"`
	PromptBackground     string `toml:"prompt-background"`
}

type Config struct {
	Editor EditorOptions     `toml:"editor"`
	Theme  Theme             `toml:"theme"`
	Keymap map[string]string `toml:"keymap"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			MaxLines:      10000,
			MaxLineLength: 4096,
			UndoDepth:     32,
			TabWidth:      4,
		},
		Theme: Theme{
			Foreground:           "#B3B1AD",
			Background:           "#0A0E14",
			StatuslineForeground: "#0A0E14",
			StatuslineBackground: "#B3B1AD",
			PromptForeground:     "#0A0E14",
			PromptBackground:     "#B3B1AD",
		},
		Keymap: map[string]string{
			"left":      "move_left",
			"right":     "move_right",
			"up":        "move_up",
			"down":      "move_down",
			"pgup":      "page_up",
			"pgdn":      "page_down",
			"home":      "line_start",
			"end":       "line_end",
			"backspace": "backspace",
			"enter":     "newline",
			"tab":       "insert_tab",
			"ctrl+u":    "undo",
			"ctrl+z":    "redo",
			"ctrl+f":    "search",
			"ctrl+n":    "search_next",
			"ctrl+s":    "save",
			"ctrl+h":    "help",
			"ctrl+q":    "quit",
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Editor.MaxLines > 0 {
		cfg.Editor.MaxLines = userCfg.Editor.MaxLines
	}
	if userCfg.Editor.MaxLineLength > 0 {
		cfg.Editor.MaxLineLength = userCfg.Editor.MaxLineLength
	}
	if userCfg.Editor.UndoDepth > 0 {
		cfg.Editor.UndoDepth = userCfg.Editor.UndoDepth
	}
	if userCfg.Editor.TabWidth > 0 {
		cfg.Editor.TabWidth = userCfg.Editor.TabWidth
	}
	if userCfg.Theme.Foreground != "" {
		cfg.Theme.Foreground = userCfg.Theme.Foreground
	}
	if userCfg.Theme.Background != "" {
		cfg.Theme.Background = userCfg.Theme.Background
	}
	if userCfg.Theme.StatuslineForeground != "" {
		cfg.Theme.StatuslineForeground = userCfg.Theme.StatuslineForeground
	}
	if userCfg.Theme.StatuslineBackground != "" {
		cfg.Theme.StatuslineBackground = userCfg.Theme.StatuslineBackground
	}
	if userCfg.Theme.PromptForeground != "" {
		cfg.Theme.PromptForeground = userCfg.Theme.PromptForeground
	}
	if userCfg.Theme.PromptBackground != "" {
		cfg.Theme.PromptBackground = userCfg.Theme.PromptBackground
	}
	for key, action := range userCfg.Keymap {
		cfg.Keymap[key] = action
	}
	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("CODEIN_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "codein"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "codein"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
