package tui

import (
	"os"

	"golang.org/x/term"

	"github.com/archora/archora/pkg/archora"
)

// Mode represents how the shell talks to the user.
type Mode int

const (
	// ModeLine reads one command per line from stdin and prints plain text.
	// Used for pipes, scripts and CI.
	ModeLine Mode = iota
	// ModeInteractive runs the full-screen terminal.
	ModeInteractive
)

// DetectMode picks the shell front end.
//
// Returns ModeLine if:
//   - ARCHORA_NON_INTERACTIVE=1 is set
//   - CI is set
//   - NO_COLOR is set
//   - stdin or stdout is not a terminal
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv(archora.EnvNonInteractive) == "1" {
		return ModeLine
	}
	if os.Getenv("CI") != "" {
		return ModeLine
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeLine
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeLine
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeLine
	}

	return ModeInteractive
}

// IsInteractive reports whether DetectMode picks the full-screen terminal.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
