package archora

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	cfg, err := resolveSessionConfig(cmd)
//	if errors.Is(err, archora.ErrUnknownUser) {
//	    // Handle a user without a profile
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownUser indicates the requested user has no profile and no home directory.
	ErrUnknownUser = errors.New("unknown user")

	// ErrInvalidFixture indicates the seed data for the filesystem or profiles is malformed.
	ErrInvalidFixture = errors.New("invalid fixture")

	// ErrCommandFailed indicates at least one terminal command reported a failure.
	ErrCommandFailed = errors.New("command failed")
)

// usageErrorPatterns are the messages cobra and pflag produce for CLI misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUnknownUser):
		return ExitUnknownUser
	case errors.Is(err, ErrInvalidFixture):
		return ExitInvalidFixture
	case errors.Is(err, ErrCommandFailed):
		return ExitCommandFailed
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
