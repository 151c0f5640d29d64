package dlx

import "golang.org/x/exp/constraints"

// cursor is the shared shape behind the four traversal directions the
// engine needs: row-forward, row-reverse, column-forward (down), and
// column-reverse (up). It holds a start index, a current index, and an
// exhausted flag that becomes true the step after the cursor returns to
// start. The first call to next yields start itself; the call that returns
// to start signals exhaustion on the following call.
type cursor[Idx constraints.Unsigned] struct {
	m         *Matrix[Idx]
	start     Idx
	cur       Idx
	exhausted bool
	step      func(node[Idx]) Idx
}

// next returns the current item and true, or the zero value and false once
// the cursor has completed one full cycle back to start.
func (c *cursor[Idx]) next() (Idx, bool) {
	if c.exhausted {
		var zero Idx
		return zero, false
	}

	item := c.cur
	nxt := c.step(c.m.arena.get(c.cur))
	if nxt == c.start {
		c.exhausted = true
	} else {
		c.cur = nxt
	}
	return item, true
}

// skip discards the cursor's next item, used to pass over a cycle's own
// header/anchor node when only its members are wanted.
func (c *cursor[Idx]) skip() {
	c.next()
}

func newRowCursor[Idx constraints.Unsigned](m *Matrix[Idx], start Idx) *cursor[Idx] {
	return &cursor[Idx]{m: m, start: start, cur: start, step: func(n node[Idx]) Idx { return n.right }}
}

func newReverseRowCursor[Idx constraints.Unsigned](m *Matrix[Idx], start Idx) *cursor[Idx] {
	return &cursor[Idx]{m: m, start: start, cur: start, step: func(n node[Idx]) Idx { return n.left }}
}

func newColumnCursor[Idx constraints.Unsigned](m *Matrix[Idx], start Idx) *cursor[Idx] {
	return &cursor[Idx]{m: m, start: start, cur: start, step: func(n node[Idx]) Idx { return n.down }}
}

func newReverseColumnCursor[Idx constraints.Unsigned](m *Matrix[Idx], start Idx) *cursor[Idx] {
	return &cursor[Idx]{m: m, start: start, cur: start, step: func(n node[Idx]) Idx { return n.up }}
}
