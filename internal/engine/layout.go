package engine

import (
	"math/rand"
	"strings"
)

// Layout is the hidden arrangement of mines and neighbor counts.
// It is generated once per game and never mutated afterwards.
type Layout [Dimension][Dimension]Tile

// At returns the tile at c.
func (l Layout) At(c Coord) Tile {
	return l[c.Row][c.Col]
}

// MineCoords returns the coordinates of all mines in row-major order.
func (l Layout) MineCoords() []Coord {
	var out []Coord
	for row := range Dimension {
		for col := range Dimension {
			if l[row][col].IsMine() {
				out = append(out, Coord{Row: row, Col: col})
			}
		}
	}
	return out
}

// String renders the layout as Dimension lines: '*' for mines,
// '.' for zero counts and digits otherwise.
func (l Layout) String() string {
	var sb strings.Builder
	sb.Grow(Cells + Dimension)
	for row := range Dimension {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range Dimension {
			switch t := l[row][col]; {
			case t.IsMine():
				sb.WriteByte('*')
			case t == 0:
				sb.WriteByte('.')
			default:
				sb.WriteByte(byte('0' + t))
			}
		}
	}
	return sb.String()
}

// LayoutWithMines builds a layout with mines at the given coordinates and
// neighbor counts everywhere else. Coordinates off the board are ignored.
func LayoutWithMines(mines []Coord) Layout {
	var l Layout
	for _, c := range mines {
		if c.Valid() {
			l[c.Row][c.Col] = Mine
		}
	}
	return l.countMines()
}

// placeMines lays out Mines mine markers among Cells tiles and shuffles them
// uniformly.
func placeMines(rng *rand.Rand) Layout {
	flat := make([]Tile, Cells)
	for i := range Mines {
		flat[i] = Mine
	}
	rng.Shuffle(len(flat), func(i, j int) {
		flat[i], flat[j] = flat[j], flat[i]
	})

	var l Layout
	for i, t := range flat {
		c := CoordOf(i)
		l[c.Row][c.Col] = t
	}
	return l
}

// countMines fills every non-mine tile with the number of adjacent mines.
func (l Layout) countMines() Layout {
	out := l
	for row := range Dimension {
		for col := range Dimension {
			c := Coord{Row: row, Col: col}
			if l.At(c).IsMine() {
				continue
			}
			n := 0
			for _, nb := range Neighbours(c) {
				if l.At(nb).IsMine() {
					n++
				}
			}
			out[row][col] = Tile(n)
		}
	}
	return out
}

// generateLayout returns a fresh random layout.
func generateLayout(rng *rand.Rand) Layout {
	return placeMines(rng).countMines()
}
