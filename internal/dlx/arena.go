// Package dlx implements Knuth's Dancing Links (Algorithm X) over a sparse
// 0/1 matrix stored as a toroidal doubly-linked mesh on a single flat
// buffer. The matrix is generic over the width of its node-index type so
// callers can trade capacity for memory (see [Matrix]).
package dlx

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// node is one cell of the toroidal mesh. left/right link the row cycle,
// up/down link the column cycle. column is overloaded: for a data node it
// holds the index of its column header; for a header node it holds the
// header's size, i.e. the number of data nodes currently live in that
// column. The two uses never collide because headers and data nodes occupy
// disjoint index ranges.
type node[Idx constraints.Unsigned] struct {
	left, right, up, down Idx
	column                Idx
}

// arena is the flat, index-addressed buffer of nodes. It is the only memory
// a Matrix allocates while solving.
type arena[Idx constraints.Unsigned] struct {
	buf []node[Idx]
}

func newArena[Idx constraints.Unsigned](capacity int) *arena[Idx] {
	return &arena[Idx]{buf: make([]node[Idx], 0, capacity)}
}

// reserve ensures capacity for n further nodes without reallocation. When
// it must grow, it at least doubles the capacity so growth stays amortized.
func (a *arena[Idx]) reserve(n int) {
	if cap(a.buf)-len(a.buf) < n {
		newCap := len(a.buf) + n
		if doubled := 2 * cap(a.buf); doubled > newCap {
			newCap = doubled
		}
		grown := make([]node[Idx], len(a.buf), newCap)
		copy(grown, a.buf)
		a.buf = grown
	}
}

// push appends node and returns its new index.
func (a *arena[Idx]) push(n node[Idx]) Idx {
	idx := toIdx[Idx](len(a.buf))
	a.buf = append(a.buf, n)
	return idx
}

// get returns a copy of the node at i. Out-of-range i is a programmer error.
func (a *arena[Idx]) get(i Idx) node[Idx] {
	return a.buf[mustIndex(i, len(a.buf))]
}

// getMut returns a pointer to the node at i for in-place mutation.
// Out-of-range i is a programmer error.
func (a *arena[Idx]) getMut(i Idx) *node[Idx] {
	return &a.buf[mustIndex(i, len(a.buf))]
}

func (a *arena[Idx]) len() int {
	return len(a.buf)
}

// mustIndex converts a node index to a slice index, aborting on the
// programmer error of an out-of-range handle.
func mustIndex[Idx constraints.Unsigned](i Idx, length int) int {
	si := int(i)
	if si < 0 || si >= length {
		panic(fmt.Sprintf("dlx: node index %d out of range [0, %d)", i, length))
	}
	return si
}

// toIdx converts a host size to the configured index type, aborting on
// overflow. A value that doesn't fit the index type is a programmer error:
// it means the caller chose too narrow an Idx for the matrix it built.
func toIdx[Idx constraints.Unsigned](n int) Idx {
	idx := Idx(n)
	if int(idx) != n {
		panic(fmt.Sprintf("dlx: index overflow converting %d to %T", n, idx))
	}
	return idx
}
