package sudoku

import (
	"testing"

	"github.com/kpitt/lynx-sudoku/internal/dlx"
)

func TestEncodeDecodeRoundTripsGivens(t *testing.T) {
	var g Grid
	g.Set(4, 2, 7)

	m, err := Encode(g)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	sol, ok := dlx.Solve(m)
	if !ok {
		t.Fatal("expected a solution")
	}

	decoded := Decode(sol)
	if got := decoded.Get(4, 2); got != 7 {
		t.Errorf("decoded cell (4,2) = %d, want 7", got)
	}
}
