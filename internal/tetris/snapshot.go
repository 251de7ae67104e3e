package tetris

import (
	"strings"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Mode        Mode
	State       State
	Paused      bool
	Lines       int
	LastCleared int
	Locks       int
	Current     Kind
	Next        Kind
	X, Y        int
	Matrix      string
	Board       string // Rows joined by "/", '.' empty and the color index otherwise
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{Mode: g.mode}
	}
	cur := g.engine.Current()
	return Snapshot{
		Tick:        g.tick,
		Mode:        g.mode,
		State:       g.engine.State(),
		Paused:      g.paused,
		Lines:       g.engine.LinesCleared(),
		LastCleared: g.engine.LastCleared(),
		Locks:       g.engine.Locks(),
		Current:     cur.Kind,
		Next:        g.engine.Next().Kind,
		X:           cur.X,
		Y:           cur.Y,
		Matrix:      cur.Matrix.String(),
		Board:       boardString(g.engine.Board()),
	}
}

func boardString(b *Board) string {
	var sb strings.Builder
	sb.Grow((b.Width() + 1) * b.Height())
	for y := range b.Height() {
		if y > 0 {
			sb.WriteByte('/')
		}
		for _, c := range b.Row(y) {
			if c == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(c))
			}
		}
	}
	return sb.String()
}
