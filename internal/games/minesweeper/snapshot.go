package minesweeper

import "github.com/vovakirdan/tui-mines/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Cursor    engine.Coord
	Field     engine.Field
	Layout    engine.Layout
	FlagsLeft int
	Elapsed   int
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.Lost():
		state = StateLost
	case g.session.Won():
		state = StateWon
	}

	return Snapshot{
		Tick:      g.tick,
		Cursor:    g.cursor,
		Field:     g.session.Field(),
		Layout:    g.session.Layout(),
		FlagsLeft: g.session.FlagsLeft(),
		Elapsed:   g.elapsed,
		State:     state,
	}
}
