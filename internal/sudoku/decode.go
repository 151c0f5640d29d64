package sudoku

import (
	"sort"

	"github.com/kpitt/lynx-sudoku/internal/dlx"
)

// Decode builds the solved grid from sol. For each chosen row, Decode
// collects its four column memberships and sorts them ascending: the
// smallest falls in [0, 81) and identifies the cell, the second-smallest
// falls in [81, 162) and identifies the placed digit. The remaining two
// columns (column and box constraints) are redundant once the first two are
// known, since columnsFor only ever emits rows that satisfy all four
// simultaneously.
func Decode(sol dlx.Solution[uint16]) Grid {
	var g Grid

	for _, row := range sol.Rows() {
		cols := sol.Columns(row)
		sort.Slice(cols, func(i, j int) bool { return cols[i] < cols[j] })

		if len(cols) != 4 || cols[0] >= 81 || cols[1] < 81 || cols[1] >= 162 {
			fatalError("decode", "chosen row has malformed column memberships")
		}

		cell := int(cols[0])
		x, y := cell%9, cell/9
		value := uint8((int(cols[1])-81)%9) + 1

		g.Set(x, y, value)
	}

	return g
}
