package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether the file is attached to a terminal. Color is
// auto-disabled when writing to a pipe or a file.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ShouldColor decides whether colored output is appropriate, combining the
// explicit --no-color flag with terminal detection on stdout.
func ShouldColor(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	return IsTerminal(os.Stdout)
}
