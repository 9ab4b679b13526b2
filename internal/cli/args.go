package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireCommandLines validates that at least one command line argument is provided.
// Returns a helpful error message with usage and examples if missing.
func RequireCommandLines(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <command_line>

Usage: %s

Example:
  %s "mkdir notes" "cd notes" pwd

Quote each command line so its arguments stay together.`, cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// RequireAtMostOnePath validates that no more than one fixture path is provided.
func RequireAtMostOnePath(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("accepts at most 1 arg(s), received %d\n\nUsage: %s", len(args), cmd.UseLine())
	}
	return nil
}
