// Package detector decides whether cxxcmd can open its interactive form.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the presentation mode for the application.
type OutputMode int

const (
	// ModeAuto picks a mode from the environment.
	ModeAuto OutputMode = iota
	// ModeInteractive opens the terminal form.
	ModeInteractive
	// ModeLinear prints plain output suitable for scripts and CI.
	ModeLinear
)

// String implements fmt.Stringer.
func (m OutputMode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// isTerminal is replaced in tests.
var isTerminal = term.IsTerminal

// DetectEnvironment returns ModeInteractive when both stdin and stdout are
// terminals and no CI environment variable is set.
func DetectEnvironment() OutputMode {
	isTTY := isTerminal(int(os.Stdin.Fd())) && isTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeInteractive
}

// ResolveMode applies the user's --mode flag on top of auto-detection.
// userFlag should be one of "auto", "ui", "linear", "ci", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "ui":
		return ModeInteractive
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}
