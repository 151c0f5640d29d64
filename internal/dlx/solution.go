package dlx

import "golang.org/x/exp/constraints"

// Solution is a consumable view onto the matrix a successful Solve left
// behind: the ordered list of chosen row identifiers, plus a per-row cursor
// over each row's column memberships. selectRow never unlinks a chosen
// row's own elements from their row cycle — it only unlinks columns and
// conflicting rows — so walking a chosen row's columns remains valid after
// the matrix has reached its post-solve state.
type Solution[Idx constraints.Unsigned] struct {
	matrix *Matrix[Idx]
	rows   []Idx
}

// Rows returns the chosen row identifiers in the order the search selected
// them.
func (s Solution[Idx]) Rows() []Idx {
	return s.rows
}

// RowCursor walks a single chosen row's column memberships by following
// right links starting at the row identifier, stopping when the cursor
// returns to the start. Iteration is forward-only and single-pass.
type RowCursor[Idx constraints.Unsigned] struct {
	cur *cursor[Idx]
	m   *Matrix[Idx]
}

// Cursor returns a RowCursor over row's column memberships. row must be one
// of the identifiers returned by Rows.
func (s Solution[Idx]) Cursor(row Idx) *RowCursor[Idx] {
	return &RowCursor[Idx]{cur: newRowCursor(s.matrix, row), m: s.matrix}
}

// Next yields the column index of the current element and advances the
// cursor, or returns ok=false once every element of the row has been
// visited.
func (c *RowCursor[Idx]) Next() (column Idx, ok bool) {
	elem, ok := c.cur.next()
	if !ok {
		return 0, false
	}
	return c.m.arena.get(elem).column, true
}

// Columns collects every column a chosen row belongs to, in row-cycle
// order, as a convenience over Cursor for callers that want the whole set
// at once.
func (s Solution[Idx]) Columns(row Idx) []Idx {
	cur := s.Cursor(row)
	var cols []Idx
	for {
		c, ok := cur.Next()
		if !ok {
			break
		}
		cols = append(cols, c)
	}
	return cols
}
