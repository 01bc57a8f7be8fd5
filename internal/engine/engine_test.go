package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wallMines is a column of mines down col 4 plus one in the bottom-right
// corner. Flooding from the top-left stops at the wall.
var wallMines = []Coord{
	{0, 4}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {5, 4}, {6, 4}, {7, 4}, {8, 4},
	{8, 8},
}

func wallEngine() *Engine {
	return NewWithLayout(LayoutWithMines(wallMines))
}

func idx(row, col int) int {
	return Coord{Row: row, Col: col}.Index()
}

func TestGeneratedLayoutInvariants(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		e := New(rand.New(rand.NewSource(seed)))
		field := e.GenerateField()
		require.Equal(t, Field{}, field, "seed %d: fresh field must be all Hidden", seed)

		l := e.Layout()
		require.Len(t, l.MineCoords(), Mines, "seed %d", seed)

		for row := range Dimension {
			for col := range Dimension {
				c := Coord{Row: row, Col: col}
				if l.At(c).IsMine() {
					continue
				}
				want := 0
				for _, nb := range Neighbours(c) {
					if l.At(nb).IsMine() {
						want++
					}
				}
				assert.Equal(t, Tile(want), l.At(c), "seed %d at %v", seed, c)
			}
		}
	}
}

func TestGenerateFieldReplacesLayout(t *testing.T) {
	e := New(rand.New(rand.NewSource(7)))
	first := e.Layout()
	e.GenerateField()
	assert.NotEqual(t, first, e.Layout())
}

func TestSameSeedSameLayout(t *testing.T) {
	a := New(rand.New(rand.NewSource(42)))
	b := New(rand.New(rand.NewSource(42)))
	assert.Equal(t, a.Layout(), b.Layout())
}

func TestLayoutWithMinesCounts(t *testing.T) {
	l := LayoutWithMines(wallMines)

	assert.Equal(t, Tile(2), l.At(Coord{0, 3}))
	assert.Equal(t, Tile(3), l.At(Coord{4, 3}))
	assert.Equal(t, Tile(2), l.At(Coord{8, 3}))
	assert.Equal(t, Tile(0), l.At(Coord{4, 1}))
	assert.Equal(t, Tile(1), l.At(Coord{7, 8}))
	assert.Equal(t, Tile(1), l.At(Coord{8, 7}))
	assert.Equal(t, Tile(3), l.At(Coord{7, 5}))
	assert.Equal(t, Tile(2), l.At(Coord{8, 5}))
	assert.Equal(t, Tile(3), l.At(Coord{4, 5}))
}

func TestFloodRevealFromCorner(t *testing.T) {
	e := wallEngine()
	got := e.HandleCommand(e.GenerateField(), idx(0, 0), Reveal)

	var want Field
	for row := range Dimension {
		for col := 0; col < 3; col++ {
			want[row][col] = Explored
		}
		want[row][3] = Revealed3
	}
	want[0][3] = Revealed2
	want[8][3] = Revealed2

	assert.Equal(t, want, got)
	assert.True(t, e.GameInProgress(got))
}

func TestFloodRevealIsIdempotent(t *testing.T) {
	e := wallEngine()
	once := e.HandleCommand(Field{}, idx(0, 0), Reveal)
	twice := e.HandleCommand(once, idx(0, 0), Reveal)
	assert.Equal(t, once, twice)

	// Starting anywhere in the same region gives the same result.
	other := e.HandleCommand(Field{}, idx(6, 1), Reveal)
	assert.Equal(t, once, other)
}

func TestRevealNumberDoesNotPropagate(t *testing.T) {
	e := wallEngine()
	got := e.HandleCommand(Field{}, idx(4, 3), Reveal)

	var want Field
	want[4][3] = Revealed3
	assert.Equal(t, want, got)
}

func TestRevealOnFlagIsBlocked(t *testing.T) {
	e := wallEngine()
	tests := []Coord{{0, 0}, {4, 3}, {2, 4}}

	for _, c := range tests {
		flagged := e.HandleCommand(Field{}, c.Index(), ToggleFlag)
		require.Equal(t, Flagged, flagged.At(c))

		got := e.HandleCommand(flagged, c.Index(), Reveal)
		assert.Equal(t, flagged, got, "reveal on flag at %v must not change the field", c)
	}
}

func TestRevealMineRevealsAllMines(t *testing.T) {
	e := wallEngine()
	field := e.HandleCommand(Field{}, idx(0, 0), ToggleFlag)
	field = e.HandleCommand(field, idx(0, 8), Reveal)
	before := field

	got := e.HandleCommand(field, idx(3, 4), Reveal)

	assert.Equal(t, Mines, got.Count(RevealedMine))
	for row := range Dimension {
		for col := range Dimension {
			c := Coord{Row: row, Col: col}
			if e.Layout().At(c).IsMine() {
				assert.Equal(t, RevealedMine, got.At(c))
			} else {
				assert.Equal(t, before.At(c), got.At(c), "non-mine cell %v changed", c)
			}
		}
	}
	assert.True(t, e.IsLost(got))
	assert.False(t, e.GameInProgress(got))
}

func TestToggleFlag(t *testing.T) {
	e := wallEngine()
	c := Coord{2, 2}

	once := e.HandleCommand(Field{}, c.Index(), ToggleFlag)
	assert.Equal(t, Flagged, once.At(c))
	assert.Equal(t, 1, e.CountFlags(once))

	twice := e.HandleCommand(once, c.Index(), ToggleFlag)
	assert.Equal(t, Field{}, twice)

	revealed := e.HandleCommand(Field{}, idx(4, 3), Reveal)
	toggled := e.HandleCommand(revealed, idx(4, 3), ToggleFlag)
	assert.Equal(t, revealed, toggled, "toggling a revealed cell is a no-op")
}

func TestFloodSweepsFlags(t *testing.T) {
	e := wallEngine()

	// A flag on a zero cell inside the region is overwritten.
	field := e.HandleCommand(Field{}, idx(1, 1), ToggleFlag)
	got := e.HandleCommand(field, idx(0, 0), Reveal)
	assert.Equal(t, Explored, got.At(Coord{1, 1}))
	assert.Zero(t, got.CountFlags())

	// A flag on a numbered border cell is overwritten and the fill passes
	// through it to its neighbours.
	field = e.HandleCommand(Field{}, idx(0, 3), ToggleFlag)
	got = e.HandleCommand(field, idx(0, 0), Reveal)
	assert.Equal(t, Revealed2, got.At(Coord{0, 3}))
	assert.Equal(t, Explored, got.At(Coord{0, 4}))
	assert.Equal(t, Explored, got.At(Coord{1, 4}))
	assert.Equal(t, Hidden, got.At(Coord{2, 4}))
}

func TestIsWin(t *testing.T) {
	e := wallEngine()

	field := Field{}
	for i, c := range wallMines {
		assert.False(t, e.IsWin(field), "win before flag %d", i)
		field = e.HandleCommand(field, c.Index(), ToggleFlag)
	}
	assert.True(t, e.IsWin(field))
	assert.False(t, e.GameInProgress(field))

	extra := e.HandleCommand(field, idx(0, 0), ToggleFlag)
	assert.False(t, e.IsWin(extra), "an extra flag on a safe cell is not a win")

	missing := e.HandleCommand(field, wallMines[0].Index(), ToggleFlag)
	assert.False(t, e.IsWin(missing), "9 of 10 mines flagged is not a win")
}

func TestCountFlagsIgnoresRevealedCells(t *testing.T) {
	e := wallEngine()
	field := e.HandleCommand(Field{}, idx(0, 0), Reveal)
	field = e.HandleCommand(field, idx(0, 6), ToggleFlag)
	field = e.HandleCommand(field, idx(8, 8), ToggleFlag)
	field = e.HandleCommand(field, idx(4, 3), ToggleFlag) // revealed, no-op

	assert.Equal(t, 2, e.CountFlags(field))
	assert.Equal(t, 2, field.CountFlags())
}

func TestFreshFieldIsInProgress(t *testing.T) {
	e := New(rand.New(rand.NewSource(1)))
	field := e.GenerateField()
	assert.True(t, e.GameInProgress(field))
	assert.False(t, e.IsWin(field))
	assert.False(t, e.IsLost(field))
}

func TestHandleCommandOutOfRange(t *testing.T) {
	e := wallEngine()
	for _, index := range []int{-1, Cells, Cells + 10} {
		assert.Equal(t, Field{}, e.HandleCommand(Field{}, index, Reveal))
		assert.Equal(t, Field{}, e.HandleCommand(Field{}, index, ToggleFlag))
	}
}

func TestHandleCommandDoesNotMutateInput(t *testing.T) {
	e := wallEngine()
	in := Field{}
	_ = e.HandleCommand(in, idx(0, 0), Reveal)
	assert.Equal(t, Field{}, in)
}

func TestUnwinnableAfterFloodThroughFlag(t *testing.T) {
	e := wallEngine()
	assert.False(t, e.IsUnwinnable(Field{}))

	field := e.HandleCommand(Field{}, idx(0, 3), ToggleFlag)
	field = e.HandleCommand(field, idx(0, 0), Reveal)
	require.True(t, e.IsUnwinnable(field))

	// Flagging every mine cannot win: the swept mines are no longer flaggable.
	for _, c := range wallMines {
		field = e.HandleCommand(field, c.Index(), ToggleFlag)
	}
	assert.Equal(t, Explored, field.At(Coord{0, 4}))
	assert.Equal(t, 8, field.CountFlags())
	assert.False(t, e.IsWin(field))
	assert.False(t, e.IsLost(field))
	assert.True(t, e.GameInProgress(field))
}

func TestFloodWithoutFlagsStaysWinnable(t *testing.T) {
	e := wallEngine()
	field := e.HandleCommand(Field{}, idx(0, 0), Reveal)
	assert.False(t, e.IsUnwinnable(field))
}
