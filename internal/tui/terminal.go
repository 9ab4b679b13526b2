package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/archora/archora/internal/shell"
	"github.com/archora/archora/internal/tui/components"
	"github.com/archora/archora/pkg/archora"
)

// chromeHeight is the number of rows below the scrollback: prompt,
// status bar and key help.
const chromeHeight = 3

// Terminal is the full-screen shell: a scrollback viewport, an input
// line with the prompt and a status bar.
type Terminal struct {
	in       *shell.Interpreter
	input    textinput.Model
	viewport viewport.Model
	paths    *components.PathCompleter
	keys     KeyMap
	lines    []string
	width    int
}

// NewTerminal creates a terminal model over in and prints the banner.
func NewTerminal(in *shell.Interpreter) Terminal {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()

	t := Terminal{
		in:       in,
		input:    ti,
		viewport: viewport.New(80, 20),
		paths:    components.NewPathCompleter(in.Store(), in.Resolve),
		keys:     DefaultKeyMap(),
		width:    80,
	}
	t.banner()
	return t
}

// Init implements tea.Model.
func (t Terminal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (t Terminal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.width = msg.Width
		t.viewport.Width = msg.Width
		t.viewport.Height = max(msg.Height-chromeHeight, 1)
		t.input.Width = max(msg.Width-len(t.in.Prompt())-2, 10)
		t.refresh()
		return t, nil

	case tea.KeyMsg:
		if !key.Matches(msg, t.keys.Complete) {
			t.paths.Reset()
		}

		switch {
		case key.Matches(msg, t.keys.Quit):
			return t, tea.Quit

		case key.Matches(msg, t.keys.Submit):
			t.submit()
			return t, nil

		case key.Matches(msg, t.keys.HistPrev):
			if line, ok := t.in.Session().History.Prev(); ok {
				t.input.SetValue(line)
				t.input.CursorEnd()
			}
			return t, nil

		case key.Matches(msg, t.keys.HistNext):
			t.input.SetValue(t.in.Session().History.Next())
			t.input.CursorEnd()
			return t, nil

		case key.Matches(msg, t.keys.Complete):
			t.complete()
			return t, nil

		case key.Matches(msg, t.keys.SwitchUser):
			next := t.in.Profiles().Next(t.in.Session().User)
			if err := t.in.SwitchUser(next); err == nil {
				t.banner()
			}
			return t, nil

		case key.Matches(msg, t.keys.Reset):
			t.in.Reset()
			t.input.Reset()
			t.banner()
			return t, nil

		case key.Matches(msg, t.keys.Clear):
			t.lines = nil
			t.refresh()
			return t, nil

		case key.Matches(msg, t.keys.ScrollUp), key.Matches(msg, t.keys.ScrollDown):
			var cmd tea.Cmd
			t.viewport, cmd = t.viewport.Update(msg)
			return t, cmd
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// View implements tea.Model.
func (t Terminal) View() string {
	s := t.in.Session()
	status := fmt.Sprintf("user: %s │ dir: %s │ cmds: %d", s.User, s.Cwd, s.Commands)

	var b strings.Builder
	b.WriteString(t.viewport.View())
	b.WriteString("\n")
	b.WriteString(t.prompt())
	b.WriteString(" ")
	b.WriteString(t.input.View())
	b.WriteString("\n")
	b.WriteString(StatusBarStyle.Width(t.width).Render(status))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(t.keys.HelpText()))
	return b.String()
}

// Scrollback returns the rendered output lines.
func (t Terminal) Scrollback() []string {
	return t.lines
}

func (t *Terminal) prompt() string {
	return RenderPrompt(t.in.Profile(), archora.HostName, t.in.Session().Cwd)
}

func (t *Terminal) submit() {
	line := t.input.Value()
	t.input.Reset()
	if strings.TrimSpace(line) == "" {
		return
	}

	t.lines = append(t.lines, t.prompt()+" "+strings.TrimSpace(line))
	res := t.in.Execute(line)
	if res.Clear {
		t.lines = nil
	} else if out := RenderResult(res); out != "" {
		t.lines = append(t.lines, out)
	}
	t.refresh()
}

// complete completes the command word, or the last path argument when
// the command word is already typed.
func (t *Terminal) complete() {
	value := t.input.Value()
	fields := strings.Fields(value)

	if len(fields) == 0 || (len(fields) == 1 && !strings.HasSuffix(value, " ")) {
		matches := t.in.Complete(strings.TrimSpace(value))
		switch len(matches) {
		case 0:
		case 1:
			t.input.SetValue(matches[0])
			t.input.CursorEnd()
		default:
			t.lines = append(t.lines, DimStyle.Render(strings.Join(matches, "  ")))
			t.refresh()
		}
		return
	}

	word := ""
	if !strings.HasSuffix(value, " ") {
		word = fields[len(fields)-1]
	}
	base := value[:len(value)-len(word)]

	t.paths.DirsOnly(strings.EqualFold(fields[0], "cd"))
	t.input.SetValue(base + t.paths.Next(word))
	t.input.CursorEnd()
}

func (t *Terminal) banner() {
	t.lines = []string{ArtStyle.Render(t.in.Banner())}
	t.refresh()
}

func (t *Terminal) refresh() {
	t.viewport.SetContent(strings.Join(t.lines, "\n"))
	t.viewport.GotoBottom()
}
