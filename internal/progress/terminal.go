// Package progress handles the live progress stream: terminal capability
// detection at startup and the serialized per-shard glyph writes.
package progress

import (
	"os"

	"golang.org/x/term"
)

// ColorMode controls whether colored output is emitted.
type ColorMode string

const (
	// ColorAuto enables color when stdout is a terminal and NO_COLOR is unset.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces colored output.
	ColorAlways ColorMode = "always"
	// ColorNever disables colored output.
	ColorNever ColorMode = "never"
)

// Capabilities describes the terminal features detected at startup.
// Computed once and threaded explicitly into every consumer; nothing in the
// run reads ambient terminal state after this.
type Capabilities struct {
	// IsTTY reports whether stdout is attached to a terminal.
	IsTTY bool
	// ColorEnabled reports whether colored output (and the child
	// --gtest_color=yes flag) should be used.
	ColorEnabled bool
}

// DetectCapabilities detects terminal features for the given color mode.
// Checks: stdout isatty, NO_COLOR env, explicit mode override.
func DetectCapabilities(mode ColorMode) Capabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	var colorEnabled bool
	switch mode {
	case ColorAlways:
		colorEnabled = true
	case ColorNever:
		colorEnabled = false
	default:
		colorEnabled = isTTY && os.Getenv("NO_COLOR") == ""
	}

	return Capabilities{
		IsTTY:        isTTY,
		ColorEnabled: colorEnabled,
	}
}

// ValidColorMode reports whether s is a recognized color mode.
func ValidColorMode(s string) bool {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}
