package tui

import (
	"testing"
)

func TestDetectMode_ARCHORA_NON_INTERACTIVE(t *testing.T) {
	t.Setenv("ARCHORA_NON_INTERACTIVE", "1")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")

	if got := DetectMode(); got != ModeLine {
		t.Errorf("DetectMode() = %d, want ModeLine", got)
	}
}

func TestDetectMode_CI(t *testing.T) {
	t.Setenv("ARCHORA_NON_INTERACTIVE", "")
	t.Setenv("CI", "true")
	t.Setenv("NO_COLOR", "")

	if got := DetectMode(); got != ModeLine {
		t.Errorf("DetectMode() = %d, want ModeLine", got)
	}
}

func TestDetectMode_NO_COLOR(t *testing.T) {
	t.Setenv("ARCHORA_NON_INTERACTIVE", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "1")

	if got := DetectMode(); got != ModeLine {
		t.Errorf("DetectMode() = %d, want ModeLine", got)
	}
}

func TestDetectMode_NoTerminal(t *testing.T) {
	// go test never attaches a terminal to stdin.
	t.Setenv("ARCHORA_NON_INTERACTIVE", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")

	if got := DetectMode(); got != ModeLine {
		t.Errorf("DetectMode() = %d, want ModeLine (no terminal in test)", got)
	}
	if IsInteractive() {
		t.Error("IsInteractive() = true in test environment, want false")
	}
}

func TestDetectMode_ARCHORA_NON_INTERACTIVE_WrongValue(t *testing.T) {
	// Only "1" forces line mode; anything else falls through to the terminal check.
	t.Setenv("ARCHORA_NON_INTERACTIVE", "yes")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")

	if got := DetectMode(); got != ModeLine {
		t.Errorf("DetectMode() = %d, want ModeLine (no terminal)", got)
	}
}
