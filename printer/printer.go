package printer

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/msapastar/pastar/internal/backtrace"
)

// defaultWidth is used when the output stream isn't a terminal or its
// size can't be queried.
const defaultWidth = 80

// Print renders an alignment as terminal-width-wrapped blocks, each row
// prefixed with its sequence's name, followed by the overall similarity
// percentage.
func Print(w io.Writer, names []string, aligned []string) error {
	if len(names) == 0 || len(aligned) == 0 {
		return nil
	}

	nameWidth := 0
	for _, n := range names {
		if len(n) > nameWidth {
			nameWidth = len(n)
		}
	}

	blockWidth := terminalWidth() - nameWidth - 1
	if blockWidth < 1 {
		blockWidth = 1
	}

	seqLen := len(aligned[0])
	for start := 0; start < seqLen; start += blockWidth {
		end := start + blockWidth
		if end > seqLen {
			end = seqLen
		}
		for i, name := range names {
			if _, err := fmt.Fprintf(w, "%-*s %s\n", nameWidth, name, aligned[i][start:end]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "similarity: %.2f%%\n", backtrace.Similarity(aligned)*100)
	return err
}

// terminalWidth queries stdout's column count, falling back to
// defaultWidth when stdout isn't a terminal (e.g. piped output, tests).
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
