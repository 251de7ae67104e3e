package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Default board dimensions in cells.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Empty marks an unoccupied board cell.
const Empty = core.ColorDefault

// Board is the settled terrain: a fixed width×height grid whose cells are
// Empty or hold the color of a locked piece.
type Board struct {
	width  int
	height int
	cells  []core.Color // row-major, len == width*height
}

// NewBoard creates an empty board. Non-positive dimensions fall back to the
// defaults.
func NewBoard(width, height int) *Board {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]core.Color, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y), or Empty outside the grid.
func (b *Board) At(x, y int) core.Color {
	if !b.inside(x, y) {
		return Empty
	}
	return b.cells[y*b.width+x]
}

// Set writes a cell. Out-of-range coordinates are ignored.
func (b *Board) Set(x, y int, c core.Color) {
	if !b.inside(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// Row returns a copy of row y.
func (b *Board) Row(y int) []core.Color {
	out := make([]core.Color, b.width)
	if y >= 0 && y < b.height {
		copy(out, b.cells[y*b.width:(y+1)*b.width])
	}
	return out
}

// Rows returns a copy of the grid, top row first.
func (b *Board) Rows() [][]core.Color {
	rows := make([][]core.Color, b.height)
	for y := range rows {
		rows[y] = b.Row(y)
	}
	return rows
}

// Reset empties every cell.
func (b *Board) Reset() {
	clear(b.cells)
}

// Collides reports whether p, shifted by (dx, dy), overlaps a wall, the
// floor or an occupied cell. Filled cells above the board (y < 0) are only
// checked against the side walls.
func (b *Board) Collides(p Piece, dx, dy int) bool {
	for x, y := range p.BoardCells {
		x += dx
		y += dy
		if x < 0 || x >= b.width || y >= b.height {
			return true
		}
		if y >= 0 && b.cells[y*b.width+x] != Empty {
			return true
		}
	}
	return false
}

// Merge writes the piece's color into the cells it covers. Cells above the
// board are skipped; the number skipped is returned. The caller must have
// checked that the placement does not collide.
func (b *Board) Merge(p Piece) int {
	skipped := 0
	for x, y := range p.BoardCells {
		if y < 0 {
			skipped++
			continue
		}
		b.Set(x, y, p.Color)
	}
	return skipped
}

// RowFull reports whether every cell in row y is occupied.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, shifts the remaining rows down keeping
// their order, fills the top with empty rows and returns the number removed.
func (b *Board) ClearLines() int {
	w := b.width
	dst := b.height - 1
	for y := b.height - 1; y >= 0; y-- {
		if b.RowFull(y) {
			continue
		}
		if dst != y {
			copy(b.cells[dst*w:(dst+1)*w], b.cells[y*w:(y+1)*w])
		}
		dst--
	}
	cleared := dst + 1
	clear(b.cells[:cleared*w])
	return cleared
}
