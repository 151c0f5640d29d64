package dlx

import "golang.org/x/exp/constraints"

// Solve runs Algorithm X's recursive backtracking search over m, selecting
// rows via the minimum-remaining-values heuristic (chooseColumn) and
// recursing over every data node of the chosen column in turn. It returns
// the first solution found, if any — the engine never enumerates further
// solutions once one is found.
//
// On success, Solution wraps m in whatever state the successful path left
// it (callers reach it only through the Solution View) plus the ordered
// list of chosen row identifiers. On failure, m is restored to exactly the
// state it was in when Solve was called.
func Solve[Idx constraints.Unsigned](m *Matrix[Idx]) (Solution[Idx], bool) {
	var chosen []Idx
	if !solveRec(m, &chosen) {
		return Solution[Idx]{}, false
	}
	return Solution[Idx]{matrix: m, rows: chosen}, true
}

func solveRec[Idx constraints.Unsigned](m *Matrix[Idx], stack *[]Idx) bool {
	column, ok := m.chooseColumn()
	if !ok {
		// Header ring is empty: every column is covered.
		return true
	}

	rows := newColumnCursor(m, column)
	rows.skip() // the column's header is not a candidate row

	for {
		row, ok := rows.next()
		if !ok {
			break
		}

		m.selectRow(row)
		*stack = append(*stack, row)

		if solveRec(m, stack) {
			return true
		}

		*stack = (*stack)[:len(*stack)-1]
		m.deselectRow(row)
	}

	return false
}
