package vfs

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/archora/archora/pkg/archora"
)

// ParseFixture builds a directory tree from a YAML document whose nested
// mappings are directories and whose string values are file contents.
// Key order is kept, so listings come out in the order the fixture lists
// them. An empty document yields an empty root.
func ParseFixture(data []byte) (*Dir, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", archora.ErrInvalidFixture, err)
	}
	if len(doc.Content) == 0 {
		return NewDir(), nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must be a mapping", archora.ErrInvalidFixture, root.Line)
	}
	return buildDir(root, RootPath)
}

func buildDir(m *yaml.Node, at string) (*Dir, error) {
	dir := NewDir()
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], m.Content[i+1]

		name := key.Value
		if key.Kind != yaml.ScalarNode || key.Tag == "!!null" || !IsValidName(name) {
			return nil, fmt.Errorf("%w: line %d: invalid entry name %q under %s", archora.ErrInvalidFixture, key.Line, name, at)
		}
		if _, dup := dir.children[name]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate entry %q under %s", archora.ErrInvalidFixture, key.Line, name, at)
		}

		switch {
		case value.Kind == yaml.MappingNode:
			sub, err := buildDir(value, Join(at, name))
			if err != nil {
				return nil, err
			}
			dir.add(name, sub)
		case value.Kind == yaml.ScalarNode && value.Tag == "!!str":
			dir.add(name, &File{Content: value.Value})
		default:
			return nil, fmt.Errorf("%w: line %d: %s must be a mapping or a quoted string", archora.ErrInvalidFixture, value.Line, Join(at, name))
		}
	}
	return dir, nil
}

// WriteTree prints dir in the style of tree(1). Directories carry a
// trailing separator.
func WriteTree(w io.Writer, label string, dir *Dir) error {
	if _, err := fmt.Fprintln(w, label); err != nil {
		return err
	}
	return writeTree(w, dir, "")
}

func writeTree(w io.Writer, dir *Dir, indent string) error {
	entries := dir.Entries()
	for i, e := range entries {
		branch, next := "├── ", "│   "
		if i == len(entries)-1 {
			branch, next = "└── ", "    "
		}

		name := e.Name
		if e.IsDir {
			name += Separator
		}
		if _, err := fmt.Fprintln(w, indent+branch+name); err != nil {
			return err
		}

		if e.IsDir {
			child := dir.children[e.Name].(*Dir)
			if err := writeTree(w, child, indent+next); err != nil {
				return err
			}
		}
	}
	return nil
}

// CountNodes returns the number of directories and files below dir.
func CountNodes(dir *Dir) (dirs, files int) {
	for _, name := range dir.names {
		switch c := dir.children[name].(type) {
		case *Dir:
			d, f := CountNodes(c)
			dirs += d + 1
			files += f
		case *File:
			files++
		}
	}
	return dirs, files
}

// Summary is a one-line description of a tree, used in verbose logs.
func Summary(dir *Dir) string {
	dirs, files := CountNodes(dir)
	return fmt.Sprintf("%d directories, %d files", dirs, files)
}
