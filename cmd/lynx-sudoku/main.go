// Command lynx-sudoku solves a 9x9 Sudoku puzzle read from a file or
// standard input, using the Dancing Links exact-cover engine in
// internal/dlx.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kpitt/lynx-sudoku/internal/sudoku"
	"github.com/mattn/go-isatty"
)

type args struct {
	file  string
	lines bool
}

func parseArgs(argv []string) args {
	switch len(argv) {
	case 0:
		return args{}
	case 1:
		if argv[0] == "--lines" {
			return args{lines: true}
		}
		if argv[0] == "-h" || argv[0] == "--help" {
			usage()
		}
		return args{file: argv[0]}
	case 2:
		if argv[0] != "--lines" {
			usage()
		}
		return args{file: argv[1], lines: true}
	default:
		usage()
		panic("unreachable")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [--lines] [FILE]\n", os.Args[0])
	os.Exit(1)
}

func main() {
	a := parseArgs(os.Args[1:])

	var in io.Reader = os.Stdin
	if a.file != "" {
		f, err := os.Open(a.file)
		if err != nil {
			fail(err)
		}
		defer f.Close()
		in = f
	} else if isStdinTTY() {
		if a.lines {
			fmt.Println("Enter one puzzle per line, 81 cells each.")
		} else {
			fmt.Println("Enter the puzzle as 9 lines of 9 characters.")
		}
		fmt.Println("Use 0 or . for empty cells; spaces are ignored.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	if a.lines {
		if err := runLines(in, os.Stdout); err != nil {
			fail(err)
		}
		return
	}

	if err := runWhole(in, os.Stdout); err != nil {
		fail(err)
	}
}

func runWhole(r io.Reader, w io.Writer) error {
	g, err := sudoku.Parse(r)
	if err != nil {
		return err
	}

	solved, ok, err := sudoku.Solve(g)
	if err != nil {
		return err
	}
	if !ok {
		return g.WriteBlock(w)
	}
	return solved.WriteBlock(w)
}

func runLines(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		g, err := sudoku.Parse(strings.NewReader(line))
		if err != nil {
			return err
		}

		solved, ok, err := sudoku.Solve(g)
		if err != nil {
			return err
		}

		out := g
		if ok {
			out = solved
		}
		if err := out.WriteLine(w); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return scanner.Err()
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "lynx-sudoku: %s\n", err)
	os.Exit(1)
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
