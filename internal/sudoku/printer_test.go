package sudoku

import (
	"strings"
	"testing"
)

func TestWriteLineNoTrailingNewline(t *testing.T) {
	var g Grid
	g.Set(0, 0, 9)

	var buf strings.Builder
	if err := g.WriteLine(&buf); err != nil {
		t.Fatalf("WriteLine returned error: %v", err)
	}

	out := buf.String()
	if len(out) != 81 {
		t.Fatalf("len(output) = %d, want 81", len(out))
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("WriteLine must not emit a trailing newline")
	}
	if out[0] != '9' {
		t.Errorf("first character = %q, want '9'", out[0])
	}
}

func TestWriteBlockNoTrailingNewline(t *testing.T) {
	var g Grid
	var buf strings.Builder
	if err := g.WriteBlock(&buf); err != nil {
		t.Fatalf("WriteBlock returned error: %v", err)
	}

	out := buf.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9", len(lines))
	}
	for i, line := range lines {
		if len(line) != 9 {
			t.Errorf("line %d has length %d, want 9", i, len(line))
		}
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("WriteBlock must not emit a trailing newline after the last row")
	}
}

func TestGridStringIsLineForm(t *testing.T) {
	var g Grid
	g.Set(8, 8, 3)
	if got := g.String(); len(got) != 81 || got[80] != '3' {
		t.Errorf("String() = %q, want 81 chars ending in '3'", got)
	}
}
