package sudoku

import (
	"bufio"
	"strings"
	"testing"
)

func TestParseDigitsAndEmpties(t *testing.T) {
	input := strings.Repeat("1", 9) + strings.Repeat(".", 72)
	g, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	for x := range 9 {
		if got := g.Get(x, 0); got != 1 {
			t.Errorf("Get(%d, 0) = %d, want 1", x, got)
		}
	}
	if got := g.Get(0, 1); got != 0 {
		t.Errorf("Get(0, 1) = %d, want 0", got)
	}
}

func TestParseIgnoresWhitespace(t *testing.T) {
	line := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	spaced := strings.Join(splitEvery(line, 9), "\n") + "\n"

	g1, err := Parse(strings.NewReader(line))
	if err != nil {
		t.Fatalf("Parse(line) error: %v", err)
	}
	g2, err := Parse(strings.NewReader(spaced))
	if err != nil {
		t.Fatalf("Parse(spaced) error: %v", err)
	}
	if !g1.Equal(g2) {
		t.Error("whitespace changed the parsed grid")
	}
}

func splitEvery(s string, n int) []string {
	var out []string
	for len(s) > 0 {
		if len(s) < n {
			out = append(out, s)
			break
		}
		out = append(out, s[:n])
		s = s[n:]
	}
	return out
}

func TestParseTooShort(t *testing.T) {
	_, err := Parse(strings.NewReader(strings.Repeat(".", 80)))
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if pe.Kind != TooShort {
		t.Errorf("Kind = %v, want TooShort", pe.Kind)
	}
	if pe.Count != 80 {
		t.Errorf("Count = %d, want 80", pe.Count)
	}
}

func TestParseTooLong(t *testing.T) {
	_, err := Parse(strings.NewReader(strings.Repeat(".", 82)))
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if pe.Kind != TooLong {
		t.Errorf("Kind = %v, want TooLong", pe.Kind)
	}
	if pe.Count != 82 {
		t.Errorf("Count = %d, want 82", pe.Count)
	}
}

// TestParseThreeNewlineDelimitedPuzzles checks that three puzzles separated
// by newlines parse, one per line, into three distinct grids in the same
// order they appeared.
func TestParseThreeNewlineDelimitedPuzzles(t *testing.T) {
	puzzles := []string{
		strings.Repeat(".", 81),
		"53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79",
		strings.Repeat("1", 9) + strings.Repeat(".", 72),
	}
	input := strings.Join(puzzles, "\n")

	scanner := bufio.NewScanner(strings.NewReader(input))
	var got []Grid
	for scanner.Scan() {
		g, err := Parse(strings.NewReader(scanner.Text()))
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", scanner.Text(), err)
		}
		got = append(got, g)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanner error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("parsed %d puzzles, want 3", len(got))
	}
	for i, puzzle := range puzzles {
		want, err := Parse(strings.NewReader(puzzle))
		if err != nil {
			t.Fatalf("Parse(puzzles[%d]) returned error: %v", i, err)
		}
		if !got[i].Equal(want) {
			t.Errorf("puzzle %d out of order or mismatched: got %v, want %v", i, got[i], want)
		}
	}
}

func TestParseInvalidCharacter(t *testing.T) {
	_, err := Parse(strings.NewReader(strings.Repeat(".", 40) + "x" + strings.Repeat(".", 40)))
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if pe.Kind != InvalidCharacter {
		t.Errorf("Kind = %v, want InvalidCharacter", pe.Kind)
	}
	if pe.Rune != 'x' {
		t.Errorf("Rune = %q, want 'x'", pe.Rune)
	}
}
