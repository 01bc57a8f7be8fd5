package engine

// Cell is a cell of the masked (player-visible) field.
// The zero value is Hidden, so a zero Field is a fresh board.
type Cell uint8

// Masked cell states. Revealed1..Revealed8 carry their neighbor count
// as their numeric value.
const (
	Hidden Cell = iota
	Revealed1
	Revealed2
	Revealed3
	Revealed4
	Revealed5
	Revealed6
	Revealed7
	Revealed8
	RevealedMine // only appears after a loss
	Flagged
	Explored // revealed, zero adjacent mines
)

// RevealedFor returns the revealed state for a neighbor count.
// A zero count maps to Explored.
func RevealedFor(count int) Cell {
	if count <= 0 || count > 8 {
		return Explored
	}
	return Cell(count)
}

// IsNumber reports whether c is one of Revealed1..Revealed8.
func (c Cell) IsNumber() bool {
	return c >= Revealed1 && c <= Revealed8
}

// IsRevealed reports whether the player has uncovered c.
func (c Cell) IsRevealed() bool {
	return c.IsNumber() || c == Explored || c == RevealedMine
}

// Count returns the neighbor count shown by c, or 0 for non-number cells.
func (c Cell) Count() int {
	if c.IsNumber() {
		return int(c)
	}
	return 0
}

// String returns a human-readable name for the cell state.
func (c Cell) String() string {
	switch {
	case c == Hidden:
		return "Hidden"
	case c.IsNumber():
		return "Revealed" + string(rune('0'+c))
	case c == RevealedMine:
		return "RevealedMine"
	case c == Flagged:
		return "Flagged"
	case c == Explored:
		return "Explored"
	default:
		return "Unknown"
	}
}

// Tile is a cell of the hidden layout: a mine or the number of
// adjacent mines.
type Tile int8

// Mine marks a mine in the layout. Every other tile holds 0..8.
const Mine Tile = -1

// IsMine reports whether t is a mine.
func (t Tile) IsMine() bool {
	return t == Mine
}

// IsNumber reports whether t is a nonzero neighbor count.
func (t Tile) IsNumber() bool {
	return t >= 1 && t <= 8
}
