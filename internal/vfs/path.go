package vfs

import "strings"

const (
	// Separator divides path segments.
	Separator = "/"

	// HomeAlias at the start of a token stands for the active user's home.
	HomeAlias = "~"

	// RootPath is the canonical path of the root directory.
	RootPath = "/"
)

// Resolve turns a user-supplied token into a canonical absolute path.
// cwd must already be canonical; home is substituted for a leading "~".
// Excess ".." segments are clamped at the root.
func Resolve(cwd, home, token string) string {
	switch {
	case strings.HasPrefix(token, HomeAlias):
		token = home + token[len(HomeAlias):]
	case !strings.HasPrefix(token, Separator):
		token = cwd + Separator + token
	}

	stack := make([]string, 0, strings.Count(token, Separator)+1)
	for _, seg := range strings.Split(token, Separator) {
		switch seg {
		case "", ".":
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, seg)
		}
	}
	return Separator + strings.Join(stack, Separator)
}

// Split divides a canonical path into its parent path and final segment.
// The root splits into ("/", "").
func Split(p string) (parent, name string) {
	segs := segments(p)
	if len(segs) == 0 {
		return RootPath, ""
	}
	return Separator + strings.Join(segs[:len(segs)-1], Separator), segs[len(segs)-1]
}

// Join appends name to a canonical directory path.
func Join(dir, name string) string {
	if dir == RootPath {
		return RootPath + name
	}
	return dir + Separator + name
}

// IsValidName reports whether name can label a node: non-empty, without
// separators, and not one of the navigation segments.
func IsValidName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.Contains(name, Separator)
}

func segments(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, Separator) {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}
