// Package minesweeper is the playable mine-clearing game: a cursor, a timer
// and a mine counter around an engine.Session.
package minesweeper

import (
	"math/rand"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/engine"
)

// Game implements the mine-clearing game for the terminal platform.
type Game struct {
	palette config.Palette
	layout  *engine.Layout // fixed layout for tests; nil draws from rng

	rng      *rand.Rand
	session  *engine.Session
	cursor   engine.Coord
	tick     uint64
	tickRate int

	started   bool
	playTicks uint64 // ticks spent started, in progress and not paused
	elapsed   int

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game using the given colors.
func New(palette config.Palette) *Game {
	return &Game{palette: palette}
}

// NewWithLayout creates a game that always plays on l.
func NewWithLayout(palette config.Palette, l engine.Layout) *Game {
	return &Game{palette: palette, layout: &l}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "minesweeper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// Reset initializes the game and generates a new field.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	if g.layout != nil {
		g.session = engine.NewSessionWithLayout(*g.layout)
	} else {
		g.session = engine.NewSession(g.rng)
	}

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.cursor = engine.Coord{Row: engine.Dimension / 2, Col: engine.Dimension / 2}
	g.resetTimer()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the game to new screen dimensions without losing progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minWidth || h < minHeight
}

// restart generates a new field and keeps the cursor where it is.
func (g *Game) restart() {
	g.session.Restart()
	g.resetTimer()
}

func (g *Game) resetTimer() {
	g.started = false
	g.playTicks = 0
	g.elapsed = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State(), Restarted: true}
	}

	// The tick that ends the game still counts.
	if g.started && g.session.InProgress() {
		g.playTicks++
	}

	g.moveCursor(in)

	if in.Has(core.ActionReveal) {
		g.apply(g.cursor.Index(), engine.Reveal)
	}
	if in.Has(core.ActionFlag) {
		g.apply(g.cursor.Index(), engine.ToggleFlag)
	}
	for _, click := range in.Clicks {
		c, ok := g.cellAt(click.X, click.Y)
		if !ok {
			continue
		}
		g.cursor = c
		switch click.Action {
		case core.ActionReveal:
			g.apply(c.Index(), engine.Reveal)
		case core.ActionFlag:
			g.apply(c.Index(), engine.ToggleFlag)
		}
	}

	g.elapsed = int(g.playTicks / uint64(g.tickRate))

	return core.StepResult{State: g.State()}
}

// moveCursor applies directional input, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	}
	switch {
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, engine.Dimension-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, engine.Dimension-1)
}

// apply forwards a command to the session. The first command starts the timer.
func (g *Game) apply(index int, cmd engine.Command) {
	if !g.session.InProgress() {
		return
	}
	g.started = true
	g.session.Apply(index, cmd)
}

// Field returns a snapshot of the masked field.
func (g *Game) Field() engine.Field {
	return g.session.Field()
}

// Cursor returns the selected cell.
func (g *Game) Cursor() engine.Coord {
	return g.cursor
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	outcome := core.OutcomeNone
	switch {
	case g.session.Lost():
		outcome = core.OutcomeLost
	case g.session.Won():
		outcome = core.OutcomeWon
	}
	return core.GameState{
		Started:  g.started,
		GameOver: outcome != core.OutcomeNone,
		Outcome:  outcome,
		Elapsed:  g.elapsed,
	}
}
