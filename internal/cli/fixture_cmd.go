package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archora/archora/internal/vfs"
	"github.com/archora/archora/pkg/archora"
)

var fixtureCmd = &cobra.Command{
	Use:   "fixture [path]",
	Short: "Validate a filesystem fixture and print it as a tree",
	Long: `Fixture parses a YAML filesystem fixture, checks that every profile has a
home directory in it, and prints the tree with a SHA-256 fingerprint of
its names and contents.

Without a path the built-in fixture is checked.

Fixture format:
  A mapping is a directory, a quoted string is a file's content. Key order
  is the listing order.

    home:
      prayatna:
        README.md: "# Home\n\nWelcome!"
        projects: {}

Examples:
  archora fixture
  archora fixture ./tree.yaml --profiles ./team.yaml`,
	Args: RequireAtMostOnePath,
	RunE: runFixture,
}

var fixtureProfiles string

func init() {
	rootCmd.AddCommand(fixtureCmd)

	fixtureCmd.Flags().StringVar(&fixtureProfiles, "profiles", "",
		"YAML profiles file to check the homes against (default: built-in team profiles)")
}

func runFixture(cmd *cobra.Command, args []string) error {
	cfg := archora.SessionConfig{ProfilesPath: fixtureProfiles}
	label := "(built-in)"
	if len(args) == 1 {
		cfg.FixturePath = args[0]
		label = args[0]
	}

	root, _, err := loadSeedData(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := vfs.WriteTree(out, label, root); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, vfs.Summary(root))
	fmt.Fprintf(out, "sha256: %s\n", vfs.Fingerprint(root))
	return nil
}
