package util

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether the file is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column width of the terminal attached to f, or
// fallback when f is not a terminal or the size cannot be determined.
func TerminalWidth(f *os.File, fallback int) int {
	if !term.IsTerminal(int(f.Fd())) {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}

	return width
}
