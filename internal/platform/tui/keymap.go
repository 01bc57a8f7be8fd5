package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
)

// KeyMap holds the key bindings for the game. It also feeds the help footer.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Reveal  key.Binding
	Flag    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(k config.KeysConfig) KeyMap {
	return KeyMap{
		Up:      binding(k.Up, "up"),
		Down:    binding(k.Down, "down"),
		Left:    binding(k.Left, "left"),
		Right:   binding(k.Right, "right"),
		Reveal:  binding(k.Reveal, "reveal"),
		Flag:    binding(k.Flag, "flag"),
		Restart: binding(k.Restart, "new game"),
		Quit:    binding(k.Quit, "quit"),
	}
}

// DefaultKeyMap returns the bindings from the built-in configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys formats at most two keys for the help footer, e.g. "f/m".
func helpKeys(keys []string) string {
	names := make([]string, 0, 2)
	for _, k := range keys {
		if len(names) == 2 {
			break
		}
		if k == " " {
			k = "space"
		}
		names = append(names, k)
	}
	return strings.Join(names, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Flag, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reveal, k.Flag, k.Restart, k.Quit},
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Reveal):
		return core.ActionReveal
	case key.Matches(msg, k.Flag):
		return core.ActionFlag
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MouseAction translates a mouse press to a game action:
// left button reveals, right button flags.
func MouseAction(msg tea.MouseMsg) core.Action {
	if msg.Action != tea.MouseActionPress {
		return core.ActionNone
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return core.ActionReveal
	case tea.MouseButtonRight:
		return core.ActionFlag
	}
	return core.ActionNone
}
