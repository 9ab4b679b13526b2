package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/archora/archora/internal/fixture"
)

var rootCmd = &cobra.Command{
	Use:   "archora",
	Short: "The Archora portfolio terminal",
	Long: asciiLogo() + `

Archora is a simulated Linux shell over an in-memory filesystem seeded with
the team's portfolio. Log in as a team member, browse their home directory
with ls, cd and cat, or create and remove files with mkdir, touch and rm.
Nothing is written to disk; every session starts from the seed data.

Run without a subcommand to open the shell.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Unknown user
  12 - Invalid fixture or profiles file
  13 - A command failed (exec --strict)`,
	Args:         cobra.NoArgs,
	RunE:         runShell,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	addSessionFlags(rootCmd, &rootSessionFlags)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func asciiLogo() string {
	logo, _ := fixture.Art("logo")
	return logo
}
