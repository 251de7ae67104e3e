package tetris

import (
	"fmt"
	"iter"
	"strings"
)

// MaxMatrixSize is the largest bounding box a shape may use.
const MaxMatrixSize = 4

// Matrix is a square grid of filled/empty cells of size N (1..MaxMatrixSize).
// It is a plain value: assignment copies it and == compares cell by cell.
type Matrix struct {
	size  int
	cells [MaxMatrixSize][MaxMatrixSize]bool
}

// ParseMatrix builds a matrix from rows where '#', 'X' or '1' mark filled
// cells and anything else is empty. Rows must form a square of size
// 1..MaxMatrixSize.
func ParseMatrix(rows ...string) (Matrix, bool) {
	var m Matrix
	n := len(rows)
	if n == 0 || n > MaxMatrixSize {
		return m, false
	}
	m.size = n
	for r, row := range rows {
		if len(row) != n {
			return Matrix{}, false
		}
		for c := 0; c < n; c++ {
			switch row[c] {
			case '#', 'X', '1':
				m.cells[r][c] = true
			}
		}
	}
	return m, true
}

func mustParseMatrix(rows ...string) Matrix {
	m, ok := ParseMatrix(rows...)
	if !ok {
		panic(fmt.Sprintf("tetris: invalid shape matrix %q", rows))
	}
	return m
}

// Size returns N for an N×N matrix.
func (m Matrix) Size() int {
	return m.size
}

// Filled reports whether local cell (row, col) is filled.
// Coordinates outside the matrix are empty.
func (m Matrix) Filled(row, col int) bool {
	if row < 0 || col < 0 || row >= m.size || col >= m.size {
		return false
	}
	return m.cells[row][col]
}

// Rotated returns the matrix turned 90° clockwise: new[c][n-1-r] = old[r][c].
func (m Matrix) Rotated() Matrix {
	out := Matrix{size: m.size}
	n := m.size
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out.cells[c][n-1-r] = m.cells[r][c]
		}
	}
	return out
}

// Cells yields the (row, col) of each filled cell in row-major order.
func (m Matrix) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r := 0; r < m.size; r++ {
			for c := 0; c < m.size; c++ {
				if m.cells[r][c] && !yield(r, c) {
					return
				}
			}
		}
	}
}

// String renders the matrix as rows of '#' and '.' separated by '/'.
func (m Matrix) String() string {
	rows := make([]string, m.size)
	for r := 0; r < m.size; r++ {
		var sb strings.Builder
		for c := 0; c < m.size; c++ {
			if m.cells[r][c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[r] = sb.String()
	}
	return strings.Join(rows, "/")
}
