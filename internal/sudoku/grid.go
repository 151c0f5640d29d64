// Package sudoku reduces 9x9 Sudoku puzzles to exact-cover instances,
// solves them with the internal/dlx engine, and decodes the result back
// into a grid. It also provides the puzzle's text parser and printer.
package sudoku

// Grid is a 9x9 Sudoku board. Cells are addressed by zero-based column x
// and row y; a value of 0 means the cell is empty. Grid is stored
// row-major (g[y][x]); every accessor in this package goes through Get/Set
// so the storage order never leaks into callers.
type Grid [9][9]uint8

// Get returns the value at (x, y), or 0 if the cell is empty.
func (g Grid) Get(x, y int) uint8 {
	return g[y][x]
}

// Set places value at (x, y). value must be in 0..9.
func (g *Grid) Set(x, y int, value uint8) {
	g[y][x] = value
}

// Box returns the index (0..8) of the 3x3 box containing (x, y). Boxes are
// numbered left-to-right, top-to-bottom: box 0 is the top-left box, box 8
// the bottom-right.
func Box(x, y int) int {
	return 3*(y/3) + x/3
}

// ForEach visits every cell of the grid, outer loop over y (row) then x
// (column), calling fn with each cell's coordinates and value. This is the
// iteration helper the encoder and printer both build on (spec calls it out
// as shared between the two).
func (g Grid) ForEach(fn func(x, y int, value uint8)) {
	for y := range 9 {
		for x := range 9 {
			fn(x, y, g[y][x])
		}
	}
}

// Equal reports whether g and other hold identical cell values.
func (g Grid) Equal(other Grid) bool {
	return g == other
}
