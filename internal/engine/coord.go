package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// CoordOf converts a flattened index (row*Dimension + col) to a Coord.
func CoordOf(index int) Coord {
	return Coord{Row: index / Dimension, Col: index % Dimension}
}

// Index flattens c to row*Dimension + col.
func (c Coord) Index() int {
	return c.Row*Dimension + c.Col
}

// Valid reports whether c lies on the board.
func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Row < Dimension && c.Col >= 0 && c.Col < Dimension
}

// ParseCoord parses "row,col" with zero-based row and column.
func ParseCoord(s string) (Coord, error) {
	rowStr, colStr, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, fmt.Errorf("engine: coordinate %q is not row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return Coord{}, fmt.Errorf("engine: bad row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return Coord{}, fmt.Errorf("engine: bad column in %q: %w", s, err)
	}
	c := Coord{Row: row, Col: col}
	if !c.Valid() {
		return Coord{}, fmt.Errorf("engine: coordinate %q is off the board", s)
	}
	return c, nil
}

// ValidIndex reports whether index addresses a cell on the board.
func ValidIndex(index int) bool {
	return index >= 0 && index < Cells
}

// Neighbours returns the up to eight king-move neighbours of c that lie on
// the board, in row-major order.
func Neighbours(c Coord) []Coord {
	out := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Coord{Row: c.Row + dr, Col: c.Col + dc}
			if n.Valid() {
				out = append(out, n)
			}
		}
	}
	return out
}
