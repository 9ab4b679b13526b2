package components

import (
	"path"
	"sort"
	"strings"

	"github.com/archora/archora/internal/vfs"
)

// Lister lists a directory of the virtual filesystem.
type Lister interface {
	List(p string) ([]vfs.Entry, error)
}

// PathCompleter provides tab-completion and cycling for virtual paths.
// It tracks state across Tab presses to cycle through matches.
//
// Usage:
//
//	completer := NewPathCompleter(store, in.Resolve)
//
//	// On Tab press:
//	completed := completer.Next(word)
//
//	// On any other keypress:
//	completer.Reset()
type PathCompleter struct {
	fs         Lister
	resolve    func(token string) string
	matches    []vfs.Entry
	cycleIndex int
	lastParent string
	dirsOnly   bool
}

// NewPathCompleter creates a completer over fs. resolve turns the typed
// parent directory into a canonical path (relative to the session's cwd).
func NewPathCompleter(fs Lister, resolve func(token string) string) *PathCompleter {
	return &PathCompleter{fs: fs, resolve: resolve}
}

// DirsOnly restricts matches to directories (for cd).
func (c *PathCompleter) DirsOnly(dirsOnly bool) *PathCompleter {
	if c.dirsOnly != dirsOnly {
		c.Reset()
	}
	c.dirsOnly = dirsOnly
	return c
}

// Next returns the next completion for input.
// On first call (or after the parent directory changes) it computes
// matches; on later calls with the same parent it cycles through them.
func (c *PathCompleter) Next(input string) string {
	parent, prefix := splitPath(input)

	if parent != c.lastParent || c.matches == nil {
		c.matches = c.findMatches(parent, prefix)
		c.cycleIndex = 0
		c.lastParent = parent

		if len(c.matches) == 0 {
			return input
		}

		// First Tab: extend to the longest common prefix if that adds anything.
		if len(c.matches) > 1 {
			common := longestCommonPrefix(c.matches)
			candidate := joinInput(parent, common)
			if len(candidate) > len(input) {
				c.cycleIndex = -1
				return candidate
			}
		}

		return c.formatMatch(parent, c.matches[c.cycleIndex])
	}

	if len(c.matches) == 0 {
		return input
	}

	c.cycleIndex = (c.cycleIndex + 1) % len(c.matches)
	return c.formatMatch(parent, c.matches[c.cycleIndex])
}

// Matches returns the names found by the last Next call.
func (c *PathCompleter) Matches() []string {
	names := make([]string, len(c.matches))
	for i, m := range c.matches {
		names[i] = m.Name
	}
	return names
}

// Reset clears the cycle state. Call this when the user types a non-Tab key.
func (c *PathCompleter) Reset() {
	c.matches = nil
	c.cycleIndex = 0
	c.lastParent = ""
}

func (c *PathCompleter) findMatches(parent, prefix string) []vfs.Entry {
	dir := parent
	if dir == "" {
		dir = "."
	}

	entries, err := c.fs.List(c.resolve(dir))
	if err != nil {
		return nil
	}

	var matches []vfs.Entry
	lowPrefix := strings.ToLower(prefix)

	for _, e := range entries {
		if c.dirsOnly && !e.IsDir {
			continue
		}
		if strings.HasPrefix(strings.ToLower(e.Name), lowPrefix) {
			matches = append(matches, e)
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches
}

func (c *PathCompleter) formatMatch(parent string, e vfs.Entry) string {
	result := joinInput(parent, e.Name)
	if e.IsDir {
		result += vfs.Separator
	}
	return result
}

// joinInput joins a typed parent and a name without canonicalising
// the parent, so "~" and ".." stay as the user typed them.
func joinInput(parent, name string) string {
	switch {
	case parent == "":
		return name
	case strings.HasSuffix(parent, vfs.Separator):
		return parent + name
	}
	return parent + vfs.Separator + name
}

// splitPath splits an input into the typed parent directory and a name prefix.
//
//	"projects/te" → ("projects", "te")
//	"projects/"   → ("projects", "")
//	"READ"        → ("", "READ")
//	"/"           → ("/", "")
//	"/ho"         → ("/", "ho")
//	"~/"          → ("~", "")
func splitPath(input string) (parent, prefix string) {
	if input == "" {
		return "", ""
	}

	i := strings.LastIndex(input, vfs.Separator)
	switch {
	case i < 0:
		return "", input
	case i == 0:
		return vfs.RootPath, input[1:]
	}
	return path.Clean(input[:i]), input[i+1:]
}

// longestCommonPrefix finds the longest common prefix among entry names
// (case-insensitive).
func longestCommonPrefix(entries []vfs.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	first := strings.ToLower(entries[0].Name)
	for i := 0; i < len(first); i++ {
		ch := first[i]
		for _, e := range entries[1:] {
			name := strings.ToLower(e.Name)
			if i >= len(name) || name[i] != ch {
				return entries[0].Name[:i]
			}
		}
	}
	return entries[0].Name
}
