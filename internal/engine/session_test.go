package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIgnoresCommandsAfterLoss(t *testing.T) {
	s := NewSessionWithLayout(LayoutWithMines(wallMines))
	s.Apply(idx(0, 4), Reveal)
	require.True(t, s.Lost())

	lost := s.Field()
	s.Apply(idx(0, 0), Reveal)
	s.Apply(idx(0, 0), ToggleFlag)
	assert.Equal(t, lost, s.Field())
}

func TestSessionWinAndFlagsLeft(t *testing.T) {
	s := NewSessionWithLayout(LayoutWithMines(wallMines))
	assert.Equal(t, Mines, s.FlagsLeft())

	for _, c := range wallMines {
		s.Apply(c.Index(), ToggleFlag)
	}
	assert.True(t, s.Won())
	assert.False(t, s.InProgress())
	assert.Zero(t, s.FlagsLeft())
}

func TestSessionRestart(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(3)))
	first := s.Layout()
	s.Apply(0, ToggleFlag)
	s.Restart()

	assert.Equal(t, Field{}, s.Field())
	assert.NotEqual(t, first, s.Layout())
}

func TestSessionFieldIsSnapshot(t *testing.T) {
	s := NewSessionWithLayout(LayoutWithMines(wallMines))
	snap := s.Field()
	s.Apply(idx(0, 0), Reveal)
	assert.Equal(t, Field{}, snap)
}

func TestNewSessionPlaysFirstDrawnLayout(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(11)))
	e := New(rand.New(rand.NewSource(11)))

	assert.Equal(t, e.Layout(), s.Layout())
	assert.Equal(t, Field{}, s.Field())
}

func TestSessionUnwinnable(t *testing.T) {
	s := NewSessionWithLayout(LayoutWithMines(wallMines))
	s.Apply(idx(0, 3), ToggleFlag)
	assert.False(t, s.Unwinnable())

	s.Apply(idx(0, 0), Reveal)
	assert.True(t, s.Unwinnable())
	assert.True(t, s.InProgress())

	// Revealing a still-hidden mine ends it as a loss.
	s.Apply(idx(5, 4), Reveal)
	assert.True(t, s.Lost())
	assert.False(t, s.Unwinnable())
}
