package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/archora/archora/internal/tui"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open the terminal (default command)",
	Long: `Shell opens the Archora terminal.

When stdin and stdout are terminals, a full-screen terminal starts with
tab completion, command history, and a status bar. Otherwise (pipes, CI,
ARCHORA_NON_INTERACTIVE=1) one command is read per input line and plain
text is written back, each line preceded by the prompt.

Key bindings:
  tab          complete the command name or path argument
  up/down      walk the command history
  ctrl+n       log in as the next team member
  ctrl+r       close and reopen the terminal (history and user reset)
  ctrl+l       clear the screen
  ctrl+d       quit

Examples:
  # Open the terminal as the default user
  archora

  # Log in as dixit with a custom tree
  archora shell --user dixit --fixture ./tree.yaml

  # Pick the user from a list
  archora shell --select-user

  # Script a session
  printf 'cd projects\nls\n' | archora shell`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

var (
	rootSessionFlags  sessionFlags
	shellSessionFlags sessionFlags
	selectUser        bool
)

func init() {
	rootCmd.AddCommand(shellCmd)
	addSessionFlags(shellCmd, &shellSessionFlags)

	shellCmd.Flags().BoolVar(&selectUser, "select-user", false,
		"Choose the user from a list before the terminal opens\n"+
			"Ignored when the shell is not interactive")
}

func runShell(cmd *cobra.Command, args []string) error {
	flags := rootSessionFlags
	if cmd.Name() == "shell" {
		flags = shellSessionFlags
	}
	verbose := getVerboseFlag(cmd)

	cfg, err := resolveSessionConfig(flags, verbose)
	if err != nil {
		return err
	}

	root, profiles, err := loadSeedData(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	interactive := tui.IsInteractive()
	if selectUser && interactive {
		chosen, err := tui.SelectUser(ctx, profiles, cfg.User)
		if err != nil {
			return err
		}
		cfg.User = chosen
	}

	logger, closeLog, err := newLogger(cfg.Verbose, interactive)
	if err != nil {
		return err
	}
	defer closeLog()

	in, err := newInterpreter(cfg, root, profiles, logger)
	if err != nil {
		return err
	}

	if interactive {
		return tui.RunTerminal(ctx, in)
	}

	failed, err := tui.RunLines(ctx, in, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	logger.Verbose("session %s ended: %d command(s), %d failed", in.Session().ID, in.Session().Commands, failed)
	return nil
}
