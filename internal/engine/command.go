package engine

import (
	"fmt"
	"strings"
)

// Command is a player command applied to a single cell.
type Command int

const (
	Reveal     Command = iota // uncover the cell
	ToggleFlag                // place or remove a flag
)

// String returns the command name used by ParseCommand.
func (c Command) String() string {
	switch c {
	case Reveal:
		return "reveal"
	case ToggleFlag:
		return "flag"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// ParseCommand parses "reveal" or "flag" (case-insensitive).
func ParseCommand(s string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reveal", "open":
		return Reveal, nil
	case "flag":
		return ToggleFlag, nil
	default:
		return 0, fmt.Errorf("engine: unknown command %q", s)
	}
}
