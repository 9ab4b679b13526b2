package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/archora/archora/internal/fixture"
)

// completeUserNames provides shell completion for --user from the
// profiles the command would load.
func completeUserNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	profilesPath, _ := cmd.Flags().GetString("profiles")

	profiles, err := fixture.Profiles(profilesPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var matches []string
	for _, user := range profiles.Users() {
		if strings.HasPrefix(user, toComplete) {
			matches = append(matches, user)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats provides shell completion for --format values.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, f := range outputFormats {
		if strings.HasPrefix(f, toComplete) {
			matches = append(matches, f)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
