package sudoku

import (
	"fmt"
	"os"
)

// fatalError reports an invariant violation and aborts the process. It is
// reserved for conditions that indicate a bug in this package rather than
// bad input — a correctly built matrix never produces the kind of
// malformed solution fatalError guards against in decode.go, so reaching
// it always means the encoder or solver broke an invariant upstream.
func fatalError(context, msg string) {
	fmt.Fprintf(os.Stderr, "lynx-sudoku: internal error in %s: %s\n", context, msg)
	os.Exit(1)
}
