package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/mines.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/mines.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		TickRate: 20,
		Keys: KeysConfig{
			Up:      []string{"up", "k", "w"},
			Down:    []string{"down", "j", "s"},
			Left:    []string{"left", "h", "a"},
			Right:   []string{"right", "l", "d"},
			Reveal:  []string{" ", "enter"},
			Flag:    []string{"f", "m"},
			Restart: []string{"r"},
			Quit:    []string{"q", "ctrl+c"},
		},
		Theme: ThemeConfig{
			Hidden:   "gray",
			Flag:     "bright_red",
			Mine:     "red",
			Explored: "default",
			Cursor:   "bright_yellow",
			Frame:    "white",
			Status:   "bright_white",
			Won:      "bright_green",
			Lost:     "bright_red",
			Numbers: []string{
				"bright_blue", "green", "bright_red", "blue",
				"red", "cyan", "magenta", "gray",
			},
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.mines/mines.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
