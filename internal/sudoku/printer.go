package sudoku

import (
	"io"

	"github.com/fatih/color"
)

// WriteLine writes g as 81 characters on a single line, no separators, no
// trailing newline: digits for filled cells, '.' for empty ones.
func (g Grid) WriteLine(w io.Writer) error {
	_, err := w.Write(g.bytes())
	return err
}

// WriteBlock writes g as nine lines of nine characters, digits for filled
// cells and '.' for empty ones, rows separated by newlines with no
// trailing newline after the last row.
func (g Grid) WriteBlock(w io.Writer) error {
	line := g.bytes()
	for y := range 9 {
		if y != 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := w.Write(line[y*9 : y*9+9]); err != nil {
			return err
		}
	}
	return nil
}

func (g Grid) bytes() []byte {
	buf := make([]byte, 0, 81)
	g.ForEach(func(x, y int, value uint8) {
		if value == 0 {
			buf = append(buf, '.')
		} else {
			buf = append(buf, '0'+value)
		}
	})
	return buf
}

// String renders g in line form, for use in log messages and test
// failures where a block-form dump would be unwieldy.
func (g Grid) String() string {
	return string(g.bytes())
}

const (
	borderTop    = "┌───┬───┬───╥───┬───┬───╥───┬───┬───┐"
	borderBot    = "└───┴───┴───╨───┴───┴───╨───┴───┴───┘"
	dividerMinor = "├───┼───┼───╫───┼───┼───╫───┼───┼───┤"
	dividerMajor = "╞═══╪═══╪═══╬═══╪═══╪═══╬═══╪═══╪═══╡"
	edgeMinor    = "│"
	edgeMajor    = "║"
)

var (
	solvedValueColor = color.New(color.Bold, color.FgHiWhite)
	givenValueColor  = color.New(color.Bold, color.FgHiYellow, color.BgHiBlack)
	emptyValueColor  = color.New(color.FgHiBlack)
	borderColor      = color.New(color.FgHiWhite)
)

// PrintDisplay writes g to w as a colorized nine-box visual grid,
// distinguishing cells that were given (nonzero in given) from cells this
// package solved. It is for interactive display only — unlike WriteBlock
// and WriteLine, its output is decorative and not meant to be read back by
// Parse.
func (g Grid) PrintDisplay(w io.Writer, given Grid) {
	borderColor.Fprintln(w, borderTop)
	for y := range 9 {
		if y != 0 {
			if y%3 == 0 {
				borderColor.Fprintln(w, dividerMajor)
			} else {
				borderColor.Fprintln(w, dividerMinor)
			}
		}
		printDisplayRow(w, g, given, y)
	}
	borderColor.Fprintln(w, borderBot)
}

func printDisplayRow(w io.Writer, g, given Grid, y int) {
	for x := range 9 {
		if x != 0 && x%3 == 0 {
			borderColor.Fprint(w, edgeMajor)
		} else {
			borderColor.Fprint(w, edgeMinor)
		}
		printDisplayCell(w, g.Get(x, y), given.Get(x, y) != 0)
	}
	borderColor.Fprintln(w, edgeMinor)
}

func printDisplayCell(w io.Writer, value uint8, isGiven bool) {
	switch {
	case value == 0:
		emptyValueColor.Fprint(w, " . ")
	case isGiven:
		givenValueColor.Fprintf(w, " %d ", value)
	default:
		solvedValueColor.Fprintf(w, " %d ", value)
	}
}
