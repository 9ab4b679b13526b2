package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/archora/archora/internal/profile"
	"github.com/archora/archora/internal/shell"
	"github.com/archora/archora/internal/tui/components"
)

// ErrSelectionCancelled is returned when the user quits the user picker.
var ErrSelectionCancelled = errors.New("user selection cancelled")

// RunTerminal runs the full-screen terminal until the user quits.
func RunTerminal(ctx context.Context, in *shell.Interpreter) error {
	p := tea.NewProgram(NewTerminal(in), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// SelectUser asks the user to pick a profile, starting on current.
func SelectUser(ctx context.Context, reg *profile.Registry, current string) (string, error) {
	p := tea.NewProgram(components.NewUserSelector(reg, current), tea.WithContext(ctx))
	m, err := p.Run()
	if err != nil {
		return "", err
	}

	sel := m.(components.UserSelector)
	if sel.Cancelled() || sel.User() == "" {
		return "", ErrSelectionCancelled
	}
	return sel.User(), nil
}

// RunLines is the non-interactive shell: it prints the banner, then
// reads one command per line from r and writes plain-text results to w,
// each input line preceded by the prompt. It returns the number of
// failed commands.
func RunLines(ctx context.Context, in *shell.Interpreter, r io.Reader, w io.Writer) (int, error) {
	if _, err := fmt.Fprintln(w, in.Banner()); err != nil {
		return 0, err
	}

	failed := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return failed, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if _, err := fmt.Fprintf(w, "%s %s\n", in.Prompt(), line); err != nil {
			return failed, err
		}
		res := in.Execute(line)
		if res.Failed() {
			failed++
		}
		if out := shell.RenderText(res); out != "" {
			if _, err := fmt.Fprintln(w, out); err != nil {
				return failed, err
			}
		}
	}
	return failed, scanner.Err()
}
