package archora

import (
	"errors"
	"fmt"
	"strings"
)

// SessionConfig contains everything needed to start a terminal session.
type SessionConfig struct {
	// User is the identity the session starts as. Selects /home/<User>.
	User string

	// FixturePath points to a YAML filesystem fixture.
	// Empty means the embedded default fixture.
	FixturePath string

	// ProfilesPath points to a YAML profiles file.
	// Empty means the embedded default profiles.
	ProfilesPath string

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the SessionConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *SessionConfig) Validate() error {
	var errs []error

	if c.User == "" {
		errs = append(errs, fmt.Errorf("User is required: %w", ErrInvalidConfig))
	} else if strings.ContainsAny(c.User, "/~ \t") {
		errs = append(errs, fmt.Errorf("user %q contains path or whitespace characters: %w", c.User, ErrInvalidConfig))
	}

	if c.FixturePath != "" && strings.TrimSpace(c.FixturePath) == "" {
		errs = append(errs, fmt.Errorf("FixturePath cannot be blank: %w", ErrInvalidConfig))
	}

	if c.ProfilesPath != "" && strings.TrimSpace(c.ProfilesPath) == "" {
		errs = append(errs, fmt.Errorf("ProfilesPath cannot be blank: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
