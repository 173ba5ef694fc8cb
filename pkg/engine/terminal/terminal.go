// Package terminal probes the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Fits reports whether a block of text columns wide fits the terminal width.
// Output that is not a terminal always fits.
func Fits(columns int) bool {
	if !IsTerminal() {
		return true
	}
	width, _ := GetSize()
	return columns <= width
}
