package archora_test

import (
	"errors"
	"testing"

	"github.com/archora/archora/pkg/archora"
)

func TestSessionConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    archora.SessionConfig
		wantError bool
	}{
		{
			name:   "default user with embedded fixture",
			config: archora.SessionConfig{User: "prayatna"},
		},
		{
			name:   "custom fixture and profiles",
			config: archora.SessionConfig{User: "dixit", FixturePath: "fs.yaml", ProfilesPath: "team.yaml"},
		},
		{
			name:      "missing user",
			config:    archora.SessionConfig{},
			wantError: true,
		},
		{
			name:      "user with slash",
			config:    archora.SessionConfig{User: "../root"},
			wantError: true,
		},
		{
			name:      "blank fixture path",
			config:    archora.SessionConfig{User: "shubham", FixturePath: "   "},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !errors.Is(err, archora.ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSessionConfig_Validate_CollectsAllErrors(t *testing.T) {
	cfg := archora.SessionConfig{User: "", FixturePath: " ", ProfilesPath: "\t"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}

	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		t.Fatalf("expected joined error, got %T", err)
	}
	if n := len(joined.Unwrap()); n != 3 {
		t.Errorf("expected 3 validation errors, got %d: %v", n, err)
	}
}
