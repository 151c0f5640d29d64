package sudoku

import "github.com/kpitt/lynx-sudoku/internal/dlx"

// Solve reduces g to an exact-cover instance, runs the DLX engine, and
// decodes the winning row set back into a grid.
//
// It returns (solved, true, nil) on success. It returns (Grid{}, false,
// nil) when g has no solution — whether because the encoder's constraint
// pre-check rejected g's givens outright, or because the search exhausted
// every candidate without finding one — neither case is treated as an
// error; an unsolvable puzzle is an expected outcome, not a fault.
func Solve(g Grid) (Grid, bool, error) {
	m, err := Encode(g)
	if err == ErrUnsolvable {
		return Grid{}, false, nil
	}
	if err != nil {
		return Grid{}, false, err
	}

	sol, ok := dlx.Solve(m)
	if !ok {
		return Grid{}, false, nil
	}

	return Decode(sol), true, nil
}
