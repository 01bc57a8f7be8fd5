package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/engine"
)

const (
	cellWidth = 3 // characters per cell: cursor bracket, glyph, cursor bracket

	boardW = engine.Dimension*cellWidth + 2 // +2 for the frame
	boardH = engine.Dimension + 2
	boardY = 2 // title and HUD above

	minWidth  = boardW
	minHeight = boardY + boardH + 2 // status line and a spare row
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := g.boardX()
	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX)
	g.renderStatus(dst)
}

// boardX returns the left edge of the centered board frame.
func (g *Game) boardX() int {
	return (g.screenW - boardW) / 2
}

// cellAt maps a screen position to the board cell under it.
func (g *Game) cellAt(x, y int) (engine.Coord, bool) {
	innerX := g.boardX() + 1
	innerY := boardY + 1
	inner := core.NewRect(innerX, innerY, engine.Dimension*cellWidth, engine.Dimension)
	if !inner.Contains(x, y) {
		return engine.Coord{}, false
	}
	return engine.Coord{Row: y - innerY, Col: (x - innerX) / cellWidth}, true
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", g.palette.Status)
	dst.DrawTextCentered(y+1, "Please resize terminal", g.palette.Status)
}

// renderHUD draws the title, the mines counter, the face and the timer.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	dst.DrawTextCentered(0, "MINESWEEPER", g.palette.Status)

	counter := fmt.Sprintf("Mines %03d", g.session.FlagsLeft())
	dst.DrawTextColor(boardX, 1, counter, g.palette.Status)

	face, faceColor := ":)", g.palette.Status
	switch {
	case g.session.Lost():
		face, faceColor = "X(", g.palette.Lost
	case g.session.Won():
		face, faceColor = "B)", g.palette.Won
	}
	dst.DrawTextColor(boardX+(boardW-len(face))/2, 1, face, faceColor)

	timer := fmt.Sprintf("Time %03d", core.Min(g.elapsed, 999))
	dst.DrawTextColor(boardX+boardW-len(timer), 1, timer, g.palette.Status)
}

// renderBoard draws the frame, every cell and the cursor.
func (g *Game) renderBoard(dst *core.Screen, boardX int) {
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), g.palette.Frame)

	field := g.session.Field()
	for row := range engine.Dimension {
		for col := range engine.Dimension {
			x := boardX + 1 + col*cellWidth + 1
			y := boardY + 1 + row
			r, color := g.glyph(field[row][col])
			dst.SetColor(x, y, r, color)
		}
	}

	cx := boardX + 1 + g.cursor.Col*cellWidth
	cy := boardY + 1 + g.cursor.Row
	dst.SetColor(cx, cy, '[', g.palette.Cursor)
	dst.SetColor(cx+2, cy, ']', g.palette.Cursor)
}

// glyph returns the rune and color for a masked cell.
func (g *Game) glyph(c engine.Cell) (rune, core.Color) {
	switch {
	case c == engine.Hidden:
		return '·', g.palette.Hidden
	case c == engine.Flagged:
		return '⚑', g.palette.Flag
	case c == engine.RevealedMine:
		return '*', g.palette.Mine
	case c.IsNumber():
		return rune('0' + c.Count()), g.palette.Number(c.Count())
	default:
		return ' ', g.palette.Explored
	}
}

// renderStatus draws the win/loss message under the board.
func (g *Game) renderStatus(dst *core.Screen) {
	y := boardY + boardH
	switch {
	case g.session.Lost():
		dst.DrawTextCentered(y, "Boom! Press r to try again", g.palette.Lost)
	case g.session.Won():
		dst.DrawTextCentered(y, "Cleared! Press r for a new game", g.palette.Won)
	case g.session.Unwinnable():
		// A flood passed a flag and opened a mine; flags can no longer win.
		dst.DrawTextCentered(y, "Stuck! Press r to restart", g.palette.Lost)
	}
}
