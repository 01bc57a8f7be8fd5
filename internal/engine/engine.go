// Package engine implements the mine-clearing game state machine: a hidden
// layout of mines and neighbor counts, and the masked field the player sees.
//
// The engine never retains the masked field. Callers thread it through
// HandleCommand and the query predicates, receiving a new Field value from
// every mutating call.
package engine

import (
	"math/rand"
)

// Board constants. Neither is configurable.
const (
	Dimension = 9                     // side length of the square board
	Mines     = 10                    // number of mines per game
	Cells     = Dimension * Dimension // number of cells on the board
)

// Engine owns the hidden layout of a single game.
// An Engine is not safe for concurrent use; give every game its own.
type Engine struct {
	rng    *rand.Rand
	layout Layout
}

// New creates an engine drawing layouts from rng. An initial layout is
// generated immediately so the engine is usable before GenerateField.
func New(rng *rand.Rand) *Engine {
	e := &Engine{rng: rng}
	e.layout = generateLayout(rng)
	return e
}

// NewWithLayout creates an engine around a fixed layout.
// GenerateField on such an engine keeps the layout and only resets the field.
func NewWithLayout(l Layout) *Engine {
	return &Engine{layout: l}
}

// GenerateField starts a new game: it replaces the hidden layout and returns
// an all-Hidden field. Any field from a previous game is meaningless
// afterwards.
func (e *Engine) GenerateField() Field {
	if e.rng != nil {
		e.layout = generateLayout(e.rng)
	}
	return Field{}
}

// Layout returns a copy of the hidden layout.
func (e *Engine) Layout() Layout {
	return e.layout
}

// HandleCommand applies cmd at index to masked and returns the resulting
// field. It does not modify the layout. An index off the board leaves the
// field unchanged.
func (e *Engine) HandleCommand(masked Field, index int, cmd Command) Field {
	if !ValidIndex(index) {
		return masked
	}
	c := CoordOf(index)
	switch cmd {
	case Reveal:
		return e.reveal(masked, c)
	case ToggleFlag:
		return toggleFlag(masked, c)
	default:
		return masked
	}
}

// reveal handles a Reveal command. A flag blocks it.
func (e *Engine) reveal(masked Field, c Coord) Field {
	if masked.At(c) == Flagged {
		return masked
	}
	switch t := e.layout.At(c); {
	case t.IsMine():
		return e.revealMines(masked)
	case t.IsNumber():
		masked.set(c, RevealedFor(int(t)))
		return masked
	default:
		return e.explore(masked, c)
	}
}

// revealMines marks every mine as RevealedMine and leaves other cells alone.
func (e *Engine) revealMines(masked Field) Field {
	for _, c := range e.layout.MineCoords() {
		masked.set(c, RevealedMine)
	}
	return masked
}

// toggleFlag flips Hidden and Flagged. Revealed cells are left unchanged.
func toggleFlag(masked Field, c Coord) Field {
	switch masked.At(c) {
	case Flagged:
		masked.set(c, Hidden)
	case Hidden:
		masked.set(c, Flagged)
	}
	return masked
}

// IsWin reports whether the flagged cells are exactly the mines.
func (e *Engine) IsWin(masked Field) bool {
	for row := range Dimension {
		for col := range Dimension {
			flagged := masked[row][col] == Flagged
			if flagged != e.layout[row][col].IsMine() {
				return false
			}
		}
	}
	return true
}

// IsLost reports whether a mine has been revealed.
func (e *Engine) IsLost(masked Field) bool {
	return masked.Count(RevealedMine) > 0
}

// GameInProgress reports whether the game is neither won nor lost.
func (e *Engine) GameInProgress(masked Field) bool {
	return !e.IsWin(masked) && !e.IsLost(masked)
}

// IsUnwinnable reports whether a flood reveal passed through a flag and
// opened a mine as Explored. Such a mine can no longer be flagged, so IsWin
// can never hold again; the game ends only by revealing a hidden mine or by
// starting over.
func (e *Engine) IsUnwinnable(masked Field) bool {
	for _, c := range e.layout.MineCoords() {
		if masked.At(c) == Explored {
			return true
		}
	}
	return false
}

// CountFlags returns the number of flagged cells in masked.
func (e *Engine) CountFlags(masked Field) int {
	return masked.CountFlags()
}
