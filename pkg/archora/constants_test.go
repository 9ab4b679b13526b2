package archora_test

import (
	"testing"

	"github.com/archora/archora/pkg/archora"
)

func TestHomeDir(t *testing.T) {
	tests := []struct {
		user string
		want string
	}{
		{"prayatna", "/home/prayatna"},
		{"dixit", "/home/dixit"},
		{archora.DefaultUser, "/home/" + archora.DefaultUser},
	}

	for _, tt := range tests {
		t.Run(tt.user, func(t *testing.T) {
			if got := archora.HomeDir(tt.user); got != tt.want {
				t.Errorf("HomeDir(%q) = %q, want %q", tt.user, got, tt.want)
			}
		})
	}
}

func TestExitCodesAreDistinct(t *testing.T) {
	codes := []int{
		archora.ExitSuccess, archora.ExitGeneralError, archora.ExitUsageError, archora.ExitPanic,
		archora.ExitConfigError, archora.ExitUnknownUser, archora.ExitInvalidFixture, archora.ExitCommandFailed,
	}

	seen := make(map[int]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("exit code %d used twice", c)
		}
		seen[c] = true
	}
}
