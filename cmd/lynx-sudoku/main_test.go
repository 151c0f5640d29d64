package main

import (
	"strings"
	"testing"
)

// TestRunLinesBatchPreservesOrder feeds runLines three newline-separated
// puzzles and checks they come back as three single-line outputs in the
// same order, with blank lines skipped.
func TestRunLinesBatchPreservesOrder(t *testing.T) {
	const (
		empty = "................................................................................."
		easy  = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
		bad   = "55..............................................................................."
	)

	input := strings.Join([]string{empty, "", easy, bad}, "\n")

	var out strings.Builder
	if err := runLines(strings.NewReader(input), &out); err != nil {
		t.Fatalf("runLines returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d output lines, want 3: %q", len(lines), lines)
	}

	for i, line := range lines {
		if len(line) != 81 {
			t.Errorf("line %d has length %d, want 81", i, len(line))
		}
	}

	// The first line came from a fully empty grid: its solution is a
	// complete, fully-digit grid (no '.' survives).
	if strings.Contains(lines[0], ".") {
		t.Errorf("line 0 (from the empty grid) retained empty cells: %q", lines[0])
	}

	// The third line is unsolvable (two 5s in row 0) and must be echoed
	// back verbatim in line form, not dropped or reordered.
	if lines[2] != bad {
		t.Errorf("line 2 = %q, want the unsolved input echoed back: %q", lines[2], bad)
	}
}

func TestRunLinesSkipsWhitespaceOnlyLines(t *testing.T) {
	const easy = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	input := "   \n" + easy + "\n\t\n"

	var out strings.Builder
	if err := runLines(strings.NewReader(input), &out); err != nil {
		t.Fatalf("runLines returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d output lines, want 1: %q", len(lines), lines)
	}
}
