package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archora/archora/internal/logging"
	"github.com/archora/archora/internal/shell"
	"github.com/archora/archora/pkg/archora"
)

const (
	formatText = "text"
	formatHTML = "html"
)

var outputFormats = []string{formatText, formatHTML}

var execCmd = &cobra.Command{
	Use:   "exec <command_line>...",
	Short: "Run command lines in one session and print the results",
	Long: `Exec runs each argument as one terminal command line, in order, in a
single session: a cd in one line affects the lines after it. Results are
printed as plain text or as the web terminal's HTML markup.

Failed commands print their error and execution continues. With --strict
the process then exits with code 13 if any command failed.

Examples:
  archora exec "mkdir notes" "cd notes" pwd
  archora exec --user shubham "cat server.js"
  archora exec --format html "cat ~/README.md"
  archora exec --strict "rm projects" || echo "failed"`,
	Args: RequireCommandLines,
	RunE: runExec,
}

type execFlagValues struct {
	session sessionFlags
	format  string
	strict  bool
}

var execFlags execFlagValues

func init() {
	rootCmd.AddCommand(execCmd)
	addSessionFlags(execCmd, &execFlags.session)

	execCmd.Flags().StringVarP(&execFlags.format, "format", "f", formatText,
		"Output format: text|html")
	execCmd.Flags().BoolVar(&execFlags.strict, "strict", false,
		"Exit with code 13 when any command fails")

	_ = execCmd.RegisterFlagCompletionFunc("format", completeFormats)
}

func runExec(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	render, err := rendererFor(execFlags.format)
	if err != nil {
		return err
	}

	cfg, err := resolveSessionConfig(execFlags.session, verbose)
	if err != nil {
		return err
	}
	root, profiles, err := loadSeedData(cfg)
	if err != nil {
		return err
	}

	var logger archora.Logger = logging.NewNullLogger()
	if cfg.Verbose {
		logger = logging.NewConsoleLogger(true)
	}
	in, err := newInterpreter(cfg, root, profiles, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, line := range args {
		res := in.Execute(line)
		if res.Failed() {
			failed++
		}
		if text := render(res); text != "" {
			fmt.Fprintln(out, text)
		}
	}

	if failed > 0 && execFlags.strict {
		return fmt.Errorf("%w: %d of %d command(s) failed", archora.ErrCommandFailed, failed, len(args))
	}
	return nil
}

func rendererFor(format string) (func(shell.Result) string, error) {
	switch format {
	case formatText:
		return shell.RenderText, nil
	case formatHTML:
		return shell.RenderHTML, nil
	}
	return nil, fmt.Errorf("invalid argument %q for --format: must be one of %v", format, outputFormats)
}
