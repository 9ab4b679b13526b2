package vfs

// Node is an entry in the tree. The implementations are *Dir and *File;
// callers switch on the concrete type.
type Node interface {
	isNode()
}

// File is a leaf holding text content.
type File struct {
	Content string
}

func (*File) isNode() {}

// Dir holds uniquely named children in insertion order.
type Dir struct {
	names    []string
	children map[string]Node
}

func (*Dir) isNode() {}

// NewDir returns an empty directory.
func NewDir() *Dir {
	return &Dir{children: make(map[string]Node)}
}

// Entry describes one child of a directory.
type Entry struct {
	Name  string
	IsDir bool
}

// Child returns the child called name.
func (d *Dir) Child(name string) (Node, bool) {
	n, ok := d.children[name]
	return n, ok
}

// Len returns the number of children.
func (d *Dir) Len() int {
	return len(d.names)
}

// Names returns child names in insertion order.
func (d *Dir) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Entries returns the children in insertion order.
func (d *Dir) Entries() []Entry {
	entries := make([]Entry, 0, len(d.names))
	for _, name := range d.names {
		_, isDir := d.children[name].(*Dir)
		entries = append(entries, Entry{Name: name, IsDir: isDir})
	}
	return entries
}

// add inserts a child. The caller has already checked that name is free.
func (d *Dir) add(name string, n Node) {
	d.names = append(d.names, name)
	d.children[name] = n
}

func (d *Dir) remove(name string) {
	if _, ok := d.children[name]; !ok {
		return
	}
	delete(d.children, name)
	for i, n := range d.names {
		if n == name {
			d.names = append(d.names[:i], d.names[i+1:]...)
			break
		}
	}
}

// clone returns a deep copy, so a fixture can seed any number of stores.
func (d *Dir) clone() *Dir {
	out := &Dir{
		names:    make([]string, len(d.names)),
		children: make(map[string]Node, len(d.children)),
	}
	copy(out.names, d.names)
	for name, child := range d.children {
		switch c := child.(type) {
		case *Dir:
			out.children[name] = c.clone()
		case *File:
			out.children[name] = &File{Content: c.Content}
		}
	}
	return out
}
