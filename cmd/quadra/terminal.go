package main

import (
	"io"
	"os"

	"golang.org/x/term"

	"quadra/internal/config"
)

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// shouldUseTUI resolves [ui].mode; the form needs both ends on a terminal.
func shouldUseTUI(mode config.Mode, in io.Reader, out io.Writer) bool {
	return mode.Resolve(isTerminal(in) && isTerminal(out))
}

// shouldColor resolves [output].color against the diagnostics stream.
func shouldColor(mode config.Mode, errOut io.Writer) bool {
	return mode.Resolve(isTerminal(errOut))
}
