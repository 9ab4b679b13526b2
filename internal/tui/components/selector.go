package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/archora/archora/internal/profile"
)

// Choice is one selectable user.
type Choice struct {
	User  string
	Label string
	Role  string
	Color string
}

// UserSelector picks the user to log in as before the terminal opens.
type UserSelector struct {
	title     string
	choices   []Choice
	cursor    int
	selected  int
	keyMap    selectorKeyMap
	styles    selectorStyles
	cancelled bool
}

type selectorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

type selectorStyles struct {
	Title      lipgloss.Style
	Unselected lipgloss.Style
	Role       lipgloss.Style
	Help       lipgloss.Style
}

func defaultSelectorStyles() selectorStyles {
	return selectorStyles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#58a6ff")).MarginBottom(1),
		Unselected: lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e")),
		Role:       lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")).MarginLeft(4),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")).MarginTop(1),
	}
}

func defaultSelectorKeyMap() selectorKeyMap {
	return selectorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "log in"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// NewUserSelector lists every profile in reg, with the cursor on current.
func NewUserSelector(reg *profile.Registry, current string) UserSelector {
	s := UserSelector{
		title:    "Log in to Archora as",
		selected: -1,
		keyMap:   defaultSelectorKeyMap(),
		styles:   defaultSelectorStyles(),
	}
	for i, user := range reg.Users() {
		p, _ := reg.Get(user)
		s.choices = append(s.choices, Choice{User: user, Label: p.Name, Role: p.Role, Color: p.Color})
		if user == current {
			s.cursor = i
		}
	}
	return s
}

// Init implements tea.Model.
func (s UserSelector) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s UserSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(km, s.keyMap.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(km, s.keyMap.Down):
		if s.cursor < len(s.choices)-1 {
			s.cursor++
		}
	case key.Matches(km, s.keyMap.Select):
		s.selected = s.cursor
		return s, tea.Quit
	case key.Matches(km, s.keyMap.Quit):
		s.cancelled = true
		return s, tea.Quit
	}
	return s, nil
}

// View implements tea.Model.
func (s UserSelector) View() string {
	var b strings.Builder

	b.WriteString(s.styles.Title.Render(s.title))
	b.WriteString("\n\n")

	for i, c := range s.choices {
		line := "○ " + c.Label + " (" + c.User + ")"
		if i == s.cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Bold(true).Render("● " + c.Label + " (" + c.User + ")"))
		} else {
			b.WriteString("  " + s.styles.Unselected.Render(line))
		}
		b.WriteString("\n")

		if c.Role != "" {
			b.WriteString(s.styles.Role.Render(c.Role))
			b.WriteString("\n")
		}
	}

	b.WriteString(s.styles.Help.Render("\n↑/↓ navigate • enter log in • q quit"))
	return b.String()
}

// Cancelled reports whether the user quit without choosing.
func (s UserSelector) Cancelled() bool {
	return s.cancelled
}

// User returns the chosen user name, or "" if none was chosen.
func (s UserSelector) User() string {
	if s.selected >= 0 && s.selected < len(s.choices) {
		return s.choices[s.selected].User
	}
	return ""
}
