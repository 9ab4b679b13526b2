package shell

import (
	"fmt"
	"strings"
)

// UnknownCommandHint follows every unknown-command failure.
const UnknownCommandHint = `Type "help" for available commands`

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeHTML escapes text the way a browser serialises a text node:
// only &, < and > are replaced.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// RenderText renders r as plain text. Silent results render as "".
func RenderText(r Result) string {
	switch r.Kind {
	case KindSilent:
		return ""
	case KindFailure:
		if r.Failure == UnknownCommand {
			return r.Text + "\n" + UnknownCommandHint
		}
		return r.Text
	}

	if r.Format != FormatListing {
		return r.Text
	}
	names := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		if e.IsDir {
			names[i] = e.Name + "/"
		} else {
			names[i] = e.Name
		}
	}
	return strings.Join(names, "  ")
}

// RenderHTML renders r as the markup the web terminal prints into its
// scrollback.
func RenderHTML(r Result) string {
	switch r.Kind {
	case KindSilent:
		return ""
	case KindFailure:
		out := fmt.Sprintf(`<span class="term-red">%s</span>`, EscapeHTML(r.Text))
		if r.Failure == UnknownCommand {
			out += fmt.Sprintf(`<span class="term-dim">%s</span>`, EscapeHTML(UnknownCommandHint))
		}
		return out
	}

	switch r.Format {
	case FormatPath:
		return fmt.Sprintf(`<span class="term-cyan">%s</span>`, EscapeHTML(r.Text))
	case FormatContent:
		return fmt.Sprintf(`<div class="term-file"><pre>%s</pre></div>`, EscapeHTML(r.Text))
	case FormatArt:
		return fmt.Sprintf(`<pre class="term-cyan">%s</pre>`, EscapeHTML(r.Text))
	case FormatListing:
		var b strings.Builder
		b.WriteString(`<div class="term-ls">`)
		for _, e := range r.Entries {
			if e.IsDir {
				fmt.Fprintf(&b, `<span class="term-blue">📁 %s</span>`, EscapeHTML(e.Name))
			} else {
				fmt.Fprintf(&b, `<span>📄 %s</span>`, EscapeHTML(e.Name))
			}
		}
		b.WriteString(`</div>`)
		return b.String()
	}
	return fmt.Sprintf(`<div class="term-box"><pre>%s</pre></div>`, EscapeHTML(r.Text))
}
