// Package terminal queries the attached terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size is a terminal size in character cells
type Size struct {
	Width  int
	Height int
}

// GetSize returns the current terminal size.
// Falls back to 80x24 if the size cannot be determined.
func GetSize() Size {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return Size{Width: DefaultWidth, Height: DefaultHeight}
	}
	return Size{Width: width, Height: height}
}

// Fits reports whether a cols x rows block plus reserved lines fits on screen
func (s Size) Fits(cols, rows, reservedRows int) bool {
	return cols <= s.Width && rows+reservedRows <= s.Height
}
