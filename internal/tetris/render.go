package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout constants in screen cells.
const (
	cellW      = 2  // Each board cell is two characters wide
	panelW     = 12 // Next-piece and stats panel
	panelGap   = 2
	hudRows    = 1
	filledRune = '█'
	emptyRune  = '·'
)

// MinScreenSize returns the smallest screen that fits the well and panel.
func MinScreenSize(b *Board) (w, h int) {
	return b.Width()*cellW + 2 + panelGap + panelW, b.Height() + 2 + hudRows
}

// Render draws the well, the falling piece, the next-piece preview and any
// overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	if g.tooSmall {
		minW, minH := MinScreenSize(g.engine.Board())
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	b := g.engine.Board()
	minW, _ := MinScreenSize(b)
	well := core.NewRect((dst.Width()-minW)/2, hudRows, b.Width()*cellW+2, b.Height()+2)

	dst.DrawText(well.X, 0, g.Title())
	dst.DrawBox(well, core.ColorWhite)

	for y := range b.Height() {
		for x := range b.Width() {
			g.drawCell(dst, well, x, y, b.At(x, y))
		}
	}

	if !g.engine.IsGameOver() {
		cur := g.engine.Current()
		for x, y := range cur.BoardCells {
			if y >= 0 {
				g.drawCell(dst, well, x, y, cur.Color)
			}
		}
	}

	g.renderPanel(dst, well.Right()+panelGap, well.Y)

	switch {
	case g.engine.IsGameOver():
		renderOverlay(dst, "Game Over", fmt.Sprintf("Lines: %d  R to restart", g.engine.LinesCleared()))
	case g.paused:
		renderOverlay(dst, "Paused", "P to continue")
	}
}

// drawCell paints board cell (x, y) inside well.
func (g *Game) drawCell(dst *core.Screen, well core.Rect, x, y int, c core.Color) {
	sx := well.X + 1 + x*cellW
	sy := well.Y + 1 + y
	if c == Empty {
		dst.SetColored(sx, sy, ' ', core.ColorDefault)
		dst.SetColored(sx+1, sy, emptyRune, core.ColorGray)
		return
	}
	dst.SetColored(sx, sy, filledRune, c)
	dst.SetColored(sx+1, sy, filledRune, c)
}

// renderPanel draws the next piece and counters at (x, y).
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, "NEXT")

	next := g.engine.Next()
	for r, c := range next.Matrix.Cells() {
		dst.SetColored(x+c*cellW, y+2+r, filledRune, next.Color)
		dst.SetColored(x+c*cellW+1, y+2+r, filledRune, next.Color)
	}

	dst.DrawText(x, y+7, "LINES")
	dst.DrawText(x, y+8, fmt.Sprintf("%d", g.engine.LinesCleared()))
	dst.DrawText(x, y+10, "PIECES")
	dst.DrawText(x, y+11, fmt.Sprintf("%d", g.engine.Locks()))
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
