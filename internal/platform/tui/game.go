package tui

import "github.com/vovakirdan/tui-mines/internal/core"

// Game is the interface the platform drives. Implementations hold all game
// state and are advanced one tick at a time.
type Game interface {
	// ID returns a unique identifier, used in logs.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a fresh game with the given configuration.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts to a new screen size without losing progress.
	Resize(w, h int)

	// Step advances the game by one tick using the collected input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}
