// Package config provides YAML-based configuration loading for the game:
// key bindings, colors, SSH server settings and logging. Board size and mine
// count are fixed by the engine and deliberately absent here.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// Config is the complete application configuration.
type Config struct {
	TickRate int          `yaml:"tick_rate"`
	Keys     KeysConfig   `yaml:"keys"`
	Theme    ThemeConfig  `yaml:"theme"`
	Server   ServerConfig `yaml:"server"`
	Log      LogConfig    `yaml:"log"`
}

// KeysConfig lists the keys bound to each action, in Bubble Tea key notation.
type KeysConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Reveal  []string `yaml:"reveal"`
	Flag    []string `yaml:"flag"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// ThemeConfig names the color of each board element.
type ThemeConfig struct {
	Hidden   string   `yaml:"hidden"`
	Flag     string   `yaml:"flag"`
	Mine     string   `yaml:"mine"`
	Explored string   `yaml:"explored"`
	Cursor   string   `yaml:"cursor"`
	Frame    string   `yaml:"frame"`
	Status   string   `yaml:"status"`
	Won      string   `yaml:"won"`
	Lost     string   `yaml:"lost"`
	Numbers  []string `yaml:"numbers"` // colors for counts 1..8
}

// ServerConfig holds settings for the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // log file used by local play
}

// Palette is a ThemeConfig with every color name resolved.
type Palette struct {
	Hidden   core.Color
	Flag     core.Color
	Mine     core.Color
	Explored core.Color
	Cursor   core.Color
	Frame    core.Color
	Status   core.Color
	Won      core.Color
	Lost     core.Color
	Numbers  [8]core.Color
}

// Number returns the color for a neighbor count 1..8.
func (p Palette) Number(n int) core.Color {
	if n < 1 || n > len(p.Numbers) {
		return core.ColorDefault
	}
	return p.Numbers[n-1]
}

// Palette resolves the theme's color names.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	named := []struct {
		name string
		dst  *core.Color
	}{
		{t.Hidden, &p.Hidden},
		{t.Flag, &p.Flag},
		{t.Mine, &p.Mine},
		{t.Explored, &p.Explored},
		{t.Cursor, &p.Cursor},
		{t.Frame, &p.Frame},
		{t.Status, &p.Status},
		{t.Won, &p.Won},
		{t.Lost, &p.Lost},
	}
	for _, n := range named {
		c, ok := core.ParseColor(n.name)
		if !ok {
			return Palette{}, fmt.Errorf("config: unknown color %q", n.name)
		}
		*n.dst = c
	}

	if len(t.Numbers) != len(p.Numbers) {
		return Palette{}, fmt.Errorf("config: theme.numbers needs %d colors, got %d", len(p.Numbers), len(t.Numbers))
	}
	for i, name := range t.Numbers {
		c, ok := core.ParseColor(name)
		if !ok {
			return Palette{}, fmt.Errorf("config: unknown color %q", name)
		}
		p.Numbers[i] = c
	}
	return p, nil
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}

	keys := map[string][]string{
		"up":      c.Keys.Up,
		"down":    c.Keys.Down,
		"left":    c.Keys.Left,
		"right":   c.Keys.Right,
		"reveal":  c.Keys.Reveal,
		"flag":    c.Keys.Flag,
		"restart": c.Keys.Restart,
		"quit":    c.Keys.Quit,
	}
	for action, bound := range keys {
		if len(bound) == 0 {
			return fmt.Errorf("config: no keys bound to %q", action)
		}
	}

	if _, err := c.Theme.Palette(); err != nil {
		return err
	}

	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout must not be negative")
	}
	return nil
}
