package sudoku

import (
	"errors"

	"github.com/kpitt/lynx-sudoku/internal/dlx"
)

// ErrUnsolvable indicates the given fixed cells already violate a row,
// column, or box uniqueness constraint — the puzzle is unsolvable by
// construction.
var ErrUnsolvable = errors.New("sudoku: given cells conflict")

// numColumns is the exact-cover column count: 81 cell constraints + 81 row
// constraints + 81 column constraints + 81 box constraints.
const numColumns = 324

// Encode reduces g to an exact-cover matrix. Each candidate placement
// (x, y, v) still consistent with g's fixed cells becomes one row with
// exactly the four column memberships columnsFor describes.
//
// Before building the matrix, Encode runs a constraint pre-check: it scans
// g's fixed cells and tracks, per row/column/box, which digits remain
// available. If a fixed cell's value conflicts with an earlier fixed cell
// under any of the three constraints, Encode returns ErrUnsolvable without
// ever constructing a matrix — building one anyway would silently carry
// unsatisfiable unit columns.
func Encode(g Grid) (*dlx.Matrix[uint16], error) {
	avail := newAvailability()

	conflict := false
	g.ForEach(func(x, y int, value uint8) {
		if conflict || value == 0 {
			return
		}
		if !avail.mark(x, y, value) {
			conflict = true
		}
	})
	if conflict {
		return nil, ErrUnsolvable
	}

	m := dlx.NewMatrix[uint16](numColumns)

	g.ForEach(func(x, y int, value uint8) {
		if value != 0 {
			m.AppendRow(columnsFor(x, y, value))
			return
		}
		for _, v := range avail.candidates(x, y) {
			m.AppendRow(columnsFor(x, y, v))
		}
	})

	return m, nil
}

// columnsFor returns the four column indices the candidate placement
// (x, y, value) belongs to: cell, row, column, and box constraints.
func columnsFor(x, y int, value uint8) []int {
	v := int(value) - 1
	box := Box(x, y)
	return []int{
		9*y + x,
		81 + 9*y + v,
		162 + 9*x + v,
		243 + 9*box + v,
	}
}
