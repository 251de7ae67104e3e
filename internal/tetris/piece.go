package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// SpawnColumn is the board column new pieces start at. It is fixed rather
// than centred per shape width.
const SpawnColumn = 3

// Randomizer is the source of randomness for piece selection.
// *rand.Rand satisfies it; tests supply fixed sequences.
type Randomizer interface {
	Intn(n int) int
}

// Piece is the active falling piece.
// X and Y locate the top-left corner of the bounding box in board cells;
// Y is negative while the piece is above the visible board.
type Piece struct {
	Kind   Kind
	Matrix Matrix
	X, Y   int
	Color  core.Color
}

// NewPiece creates a piece of the given kind positioned fully above row 0.
// Unknown kinds fall back to DefaultKind.
func NewPiece(kind Kind) *Piece {
	def := Shape(kind)
	return &Piece{
		Kind:   def.Kind,
		Matrix: def.Matrix,
		X:      SpawnColumn,
		Y:      -def.Matrix.Size(),
		Color:  def.Color,
	}
}

// NewRandomPiece picks a kind uniformly from the catalog.
func NewRandomPiece(r Randomizer) *Piece {
	return NewPiece(Kind(r.Intn(KindCount())))
}

// Size returns the side length of the piece's bounding box.
func (p *Piece) Size() int {
	return p.Matrix.Size()
}

// Rotate turns the piece 90° clockwise in place. Position is unchanged and
// no collision check is made.
func (p *Piece) Rotate() {
	p.Matrix = p.Matrix.Rotated()
}

// BoardCells yields the board coordinates (x, y) of every filled cell,
// including cells above the board.
func (p Piece) BoardCells(yield func(x, y int) bool) {
	for r, c := range p.Matrix.Cells() {
		if !yield(p.X+c, p.Y+r) {
			return
		}
	}
}
