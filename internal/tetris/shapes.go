// Package tetris implements a falling-block puzzle engine: a fixed-size board
// with collision and line clearing, the active piece with rotation, and an
// engine that ties gravity, input and the piece lifecycle together.
//
// The engine has no timer and no I/O of its own. Hosts feed it commands and
// timestamps and read board and piece state back for rendering.
package tetris

import (
	"iter"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies a shape in the catalog.
type Kind uint8

const (
	KindI Kind = iota
	KindL
	KindJ
	KindT
	KindO
	KindS
	KindZ

	kindCount
)

// DefaultKind is used when a piece is requested for an unknown kind.
const DefaultKind = KindT

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindT:
		return "T"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	return k < kindCount
}

// ParseKind maps a letter such as "T" back to its kind. Lowercase letters
// are accepted.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToUpper(name)
	for k := range Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return DefaultKind, false
}

// Kinds yields every catalog kind in catalog order.
func Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := Kind(0); k < kindCount; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

// KindCount is the number of shapes in the catalog.
func KindCount() int {
	return int(kindCount)
}

// ShapeDefinition is one immutable catalog entry.
type ShapeDefinition struct {
	Kind   Kind
	Matrix Matrix
	Color  core.Color
}

// catalog is filled once at package init and never written afterwards.
var catalog = [kindCount]ShapeDefinition{
	KindI: {
		Kind: KindI,
		Matrix: mustParseMatrix(
			".#..",
			".#..",
			".#..",
			".#..",
		),
		Color: core.ColorCyan,
	},
	KindL: {
		Kind: KindL,
		Matrix: mustParseMatrix(
			".#.",
			".#.",
			".##",
		),
		Color: core.ColorOrange,
	},
	KindJ: {
		Kind: KindJ,
		Matrix: mustParseMatrix(
			".#.",
			".#.",
			"##.",
		),
		Color: core.ColorBlue,
	},
	KindT: {
		Kind: KindT,
		Matrix: mustParseMatrix(
			"...",
			"###",
			".#.",
		),
		Color: core.ColorMagenta,
	},
	KindO: {
		Kind: KindO,
		Matrix: mustParseMatrix(
			"##",
			"##",
		),
		Color: core.ColorYellow,
	},
	KindS: {
		Kind: KindS,
		Matrix: mustParseMatrix(
			".##",
			"##.",
			"...",
		),
		Color: core.ColorGreen,
	},
	KindZ: {
		Kind: KindZ,
		Matrix: mustParseMatrix(
			"##.",
			".##",
			"...",
		),
		Color: core.ColorRed,
	},
}

// Shape returns the catalog entry for kind, falling back to DefaultKind.
// The returned value is a copy; the catalog itself cannot be modified.
func Shape(kind Kind) ShapeDefinition {
	if !kind.Valid() {
		kind = DefaultKind
	}
	return catalog[kind]
}
