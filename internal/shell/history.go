package shell

// History records submitted lines and tracks a replay cursor for
// arrow-key navigation. The cursor sits one past the newest entry
// whenever a line is pushed.
type History struct {
	entries []string
	index   int
}

// Push appends line and moves the cursor past it.
func (h *History) Push(line string) {
	h.entries = append(h.entries, line)
	h.index = len(h.entries)
}

// Prev steps back one entry. It reports false at the oldest entry, in
// which case the caller keeps whatever is in the input.
func (h *History) Prev() (string, bool) {
	if h.index <= 0 {
		return "", false
	}
	h.index--
	return h.entries[h.index], true
}

// Next steps forward one entry. Stepping past the newest entry returns ""
// so the caller clears the input.
func (h *History) Next() string {
	if h.index < len(h.entries)-1 {
		h.index++
		return h.entries[h.index]
	}
	h.index = len(h.entries)
	return ""
}

// Entries returns a copy of every recorded line, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded lines.
func (h *History) Len() int {
	return len(h.entries)
}

// Index returns the replay cursor.
func (h *History) Index() int {
	return h.index
}
