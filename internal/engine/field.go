package engine

import "strings"

// Field is the masked view of the board. It is a value type: assigning or
// returning a Field copies it, so callers can keep snapshots freely.
type Field [Dimension][Dimension]Cell

// At returns the cell at c.
func (f Field) At(c Coord) Cell {
	return f[c.Row][c.Col]
}

// AtIndex returns the cell at a flattened index.
func (f Field) AtIndex(index int) Cell {
	return f.At(CoordOf(index))
}

// set writes a cell in place. Only used on local copies.
func (f *Field) set(c Coord, v Cell) {
	f[c.Row][c.Col] = v
}

// Count returns the number of cells equal to v.
func (f Field) Count(v Cell) int {
	n := 0
	for _, c := range f.Flat() {
		if c == v {
			n++
		}
	}
	return n
}

// CountFlags returns the number of flagged cells.
func (f Field) CountFlags() int {
	return f.Count(Flagged)
}

// Flat returns the cells in row-major order.
func (f Field) Flat() []Cell {
	out := make([]Cell, 0, Cells)
	for row := range Dimension {
		out = append(out, f[row][:]...)
	}
	return out
}

// String renders the field as Dimension lines: '#' hidden, 'F' flagged,
// '*' revealed mine, '.' explored and digits for revealed counts.
func (f Field) String() string {
	var sb strings.Builder
	sb.Grow(Cells + Dimension)
	for i := range Cells {
		if i > 0 && i%Dimension == 0 {
			sb.WriteByte('\n')
		}
		switch c := f.AtIndex(i); {
		case c == Hidden:
			sb.WriteByte('#')
		case c == Flagged:
			sb.WriteByte('F')
		case c == RevealedMine:
			sb.WriteByte('*')
		case c.IsNumber():
			sb.WriteByte(byte('0' + c.Count()))
		default:
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
