package tui

import "github.com/charmbracelet/lipgloss"

// Color palette, after the web terminal's theme.
var (
	ColorFg     = lipgloss.Color("#c9d1d9")
	ColorDim    = lipgloss.Color("#8b949e")
	ColorBlue   = lipgloss.Color("#58a6ff")
	ColorCyan   = lipgloss.Color("#39c5cf")
	ColorYellow = lipgloss.Color("#e3b341")
	ColorRed    = lipgloss.Color("#ff7b72")
	ColorBar    = lipgloss.Color("#161b22")
)

// Styles for terminal output.
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorFg)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	DirStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	ArtStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	// Info blocks get the web terminal's left-border box.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(ColorBlue).
			PaddingLeft(1)

	ContentStyle = lipgloss.NewStyle().
			Foreground(ColorDim).
			PaddingLeft(2)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorDim).
			Background(ColorBar).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorDim)
)

// UserStyle colors a user name with their profile color.
func UserStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// Symbols for listings.
const (
	SymbolDir  = "📁"
	SymbolFile = "📄"
)
