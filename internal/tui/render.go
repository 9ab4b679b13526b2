package tui

import (
	"strings"

	"github.com/archora/archora/internal/profile"
	"github.com/archora/archora/internal/shell"
)

// RenderResult styles a command result for the scrollback.
func RenderResult(r shell.Result) string {
	switch r.Kind {
	case shell.KindSilent:
		return ""
	case shell.KindFailure:
		out := ErrorStyle.Render(r.Text)
		if r.Failure == shell.UnknownCommand {
			out += "\n" + DimStyle.Render(shell.UnknownCommandHint)
		}
		return out
	}

	switch r.Format {
	case shell.FormatPath:
		return PathStyle.Render(r.Text)
	case shell.FormatContent:
		return ContentStyle.Render(r.Text)
	case shell.FormatArt:
		return ArtStyle.Render(r.Text)
	case shell.FormatListing:
		items := make([]string, len(r.Entries))
		for i, e := range r.Entries {
			if e.IsDir {
				items[i] = DirStyle.Render(SymbolDir + " " + e.Name)
			} else {
				items[i] = TextStyle.Render(SymbolFile + " " + e.Name)
			}
		}
		return strings.Join(items, "   ")
	}
	return BoxStyle.Render(r.Text)
}

// RenderPrompt styles "user@archora:cwd$" with the user's color.
func RenderPrompt(p *profile.Profile, host, cwd string) string {
	return UserStyle(p.Color).Render(p.User) +
		TextStyle.Render("@"+host+":") +
		DirStyle.Render(cwd) +
		TextStyle.Render("$")
}
