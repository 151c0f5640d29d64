package dlx

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Matrix is a sparse 0/1 exact-cover matrix represented as a toroidal
// doubly-linked mesh of nodes on a single arena. Indices 0..C-1 are column
// headers, index C is the root sentinel, and indices C+1.. are data nodes
// appended in row-major order by AppendRow.
//
// A Matrix is owned exclusively by whoever constructed it. Solve borrows it
// mutably for the duration of the search and restores it to its pre-search
// state on any path that does not find a solution.
type Matrix[Idx constraints.Unsigned] struct {
	arena *arena[Idx]
	cols  Idx // number of columns (C); also the index of the root sentinel
}

// NewMatrix allocates a matrix with the given number of columns. Columns
// are indexed 0..C-1; the root sentinel is allocated immediately after them
// and inserted as the last element of the header ring.
func NewMatrix[Idx constraints.Unsigned](columns int) *Matrix[Idx] {
	c := toIdx[Idx](columns)
	a := newArena[Idx](columns + 1)

	for i := 0; i <= columns; i++ {
		ii := toIdx[Idx](i)
		var left, right Idx
		if i == 0 {
			left = c
		} else {
			left = toIdx[Idx](i - 1)
		}
		if i == columns {
			right = toIdx[Idx](0)
		} else {
			right = toIdx[Idx](i + 1)
		}
		a.push(node[Idx]{left: left, right: right, up: ii, down: ii, column: 0})
	}

	return &Matrix[Idx]{arena: a, cols: c}
}

// Columns reports the number of constraint columns (C).
func (m *Matrix[Idx]) Columns() int {
	return int(m.cols)
}

// AppendRow appends one row with a node in each of the given columns,
// returning the row's identifier (the arena index of its first node).
// columns must be non-empty, every entry must be in 0..Columns()-1, and no
// column may repeat within a single row; violating these is a programmer
// error.
func (m *Matrix[Idx]) AppendRow(columns []int) Idx {
	if len(columns) == 0 {
		panic("dlx: AppendRow requires at least one column")
	}

	row := toIdx[Idx](m.arena.len())
	m.arena.reserve(len(columns))

	for i, col := range columns {
		if col < 0 || col >= int(m.cols) {
			panic(fmt.Sprintf("dlx: column %d out of range [0, %d)", col, m.cols))
		}
		colIdx := toIdx[Idx](col)

		nodeIdx := toIdx[Idx](int(row) + i)
		left := toIdx[Idx](int(row) + (i-1+len(columns))%len(columns))
		right := toIdx[Idx](int(row) + (i+1)%len(columns))

		header := m.arena.getMut(colIdx)
		up := header.up
		header.up = nodeIdx
		header.column++

		m.arena.getMut(up).down = nodeIdx

		m.arena.push(node[Idx]{
			left: left, right: right,
			up: up, down: colIdx,
			column: colIdx,
		})
	}

	return row
}

// chooseColumn applies the minimum-remaining-values heuristic over the
// header ring (anchored at the root sentinel), with ties broken by the
// smaller header index. ok is false when the ring is empty — every column
// is covered and the current partial solution is complete.
func (m *Matrix[Idx]) chooseColumn() (col Idx, ok bool) {
	headers := newRowCursor(m, m.cols)
	headers.skip() // the root sentinel itself is not a column

	first, more := headers.next()
	if !more {
		return 0, false
	}

	best := first
	bestSize := m.arena.get(best).column
	for {
		c, more := headers.next()
		if !more {
			break
		}
		size := m.arena.get(c).column
		if size < bestSize || (size == bestSize && c < best) {
			best, bestSize = c, size
		}
	}
	return best, true
}

// removeColumn unlinks column's header from the header ring. It does not
// touch the column's own up/down data-node chain.
func (m *Matrix[Idx]) removeColumn(column Idx) {
	h := m.arena.get(column)
	m.arena.getMut(h.left).right = h.right
	m.arena.getMut(h.right).left = h.left
}

// restoreColumn is the exact reverse of removeColumn.
func (m *Matrix[Idx]) restoreColumn(column Idx) {
	h := m.arena.get(column)
	m.arena.getMut(h.left).right = column
	m.arena.getMut(h.right).left = column
}

// removeRow unlinks row's other elements (every node in its row cycle
// except row itself) from their respective column chains, decrementing
// each such column's size. The row cycle itself (left/right links among
// row's own elements) is left untouched.
func (m *Matrix[Idx]) removeRow(row Idx) {
	elements := newRowCursor(m, row)
	elements.skip() // row's own node is not removed from its column here

	for {
		elem, ok := elements.next()
		if !ok {
			break
		}
		n := m.arena.get(elem)
		m.arena.getMut(n.column).column--
		m.arena.getMut(n.up).down = n.down
		m.arena.getMut(n.down).up = n.up
	}
}

// restoreRow is the exact reverse of removeRow.
func (m *Matrix[Idx]) restoreRow(row Idx) {
	elements := newRowCursor(m, row)
	elements.skip()

	for {
		elem, ok := elements.next()
		if !ok {
			break
		}
		n := m.arena.get(elem)
		m.arena.getMut(n.column).column++
		m.arena.getMut(n.up).down = elem
		m.arena.getMut(n.down).up = elem
	}
}

// selectRow walks row's row cycle rightward, anchored on row itself. For
// each element (including row's own node, whose column is the column the
// caller chose via chooseColumn) it removes every conflicting row from
// that column and then removes the column's header from the header ring.
func (m *Matrix[Idx]) selectRow(row Idx) {
	elements := newRowCursor(m, row)
	for {
		elem, ok := elements.next()
		if !ok {
			break
		}
		column := m.arena.get(elem).column

		conflicts := newColumnCursor(m, column)
		conflicts.skip() // the header itself is not a row
		for {
			r, ok := conflicts.next()
			if !ok {
				break
			}
			m.removeRow(r)
		}

		m.removeColumn(column)
	}
}

// deselectRow is the exact reverse of selectRow: it walks row's row cycle
// leftward starting from row's left neighbor, restoring columns and their
// conflicting rows in mirror order. select/deselect pairs must nest in
// LIFO order for the invariants of the matrix to hold.
func (m *Matrix[Idx]) deselectRow(row Idx) {
	start := m.arena.get(row).left
	elements := newReverseRowCursor(m, start)
	for {
		elem, ok := elements.next()
		if !ok {
			break
		}
		column := m.arena.get(elem).column

		m.restoreColumn(column)

		conflicts := newReverseColumnCursor(m, column)
		conflicts.skip()
		for {
			r, ok := conflicts.next()
			if !ok {
				break
			}
			m.restoreRow(r)
		}
	}
}
