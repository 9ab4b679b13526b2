package vfs

import (
	"github.com/archora/archora/internal/logging"
	"github.com/archora/archora/pkg/archora"
)

// Store owns the live tree and the fixture it was built from.
type Store struct {
	fixture *Dir
	root    *Dir
	logger  archora.Logger
}

// New builds a store from fixture. The fixture itself is never mutated,
// so the same fixture can seed several stores and Reset can rebuild from it.
func New(fixture *Dir, logger archora.Logger) *Store {
	if fixture == nil {
		fixture = NewDir()
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	s := &Store{
		fixture: fixture,
		logger:  logger,
	}
	s.root = fixture.clone()
	return s
}

// Root returns the live root directory.
func (s *Store) Root() *Dir {
	return s.root
}

// Reset discards every change and rebuilds the tree from the fixture.
func (s *Store) Reset() {
	s.root = s.fixture.clone()
	s.logger.Verbose("store reset from fixture (%d top-level entries)", s.root.Len())
}

// Lookup walks the canonical path p from the root. It reports false when a
// segment is missing or when the walk would have to descend into a file.
func (s *Store) Lookup(p string) (Node, bool) {
	var cur Node = s.root
	for _, seg := range segments(p) {
		dir, ok := cur.(*Dir)
		if !ok {
			return nil, false
		}
		if cur, ok = dir.children[seg]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// List returns the children of the directory at p.
func (s *Store) List(p string) ([]Entry, error) {
	n, ok := s.Lookup(p)
	if !ok {
		return nil, newError(OpList, p, ErrNotFound)
	}
	switch n := n.(type) {
	case *Dir:
		return n.Entries(), nil
	default:
		return nil, newError(OpList, p, ErrNotADirectory)
	}
}

// Read returns the content of the file at p.
func (s *Store) Read(p string) (string, error) {
	n, ok := s.Lookup(p)
	if !ok {
		return "", newError(OpRead, p, ErrNotFound)
	}
	switch n := n.(type) {
	case *File:
		return n.Content, nil
	default:
		return "", newError(OpRead, p, ErrIsADirectory)
	}
}

// Mkdir creates an empty directory at p. The parent must exist.
func (s *Store) Mkdir(p string) error {
	parent, name, err := s.parentDir(OpMkdir, p)
	if err != nil {
		return err
	}
	if _, exists := parent.children[name]; exists || name == "" {
		return newError(OpMkdir, p, ErrAlreadyExists)
	}

	parent.add(name, NewDir())
	s.logger.Verbose("mkdir %s", p)
	return nil
}

// Touch creates an empty file at p unless a file is already there.
func (s *Store) Touch(p string) error {
	parent, name, err := s.parentDir(OpTouch, p)
	if err != nil {
		return err
	}
	if name == "" {
		return newError(OpTouch, p, ErrIsADirectory)
	}

	switch parent.children[name].(type) {
	case *Dir:
		return newError(OpTouch, p, ErrIsADirectory)
	case *File:
		return nil
	}

	parent.add(name, &File{})
	s.logger.Verbose("touch %s", p)
	return nil
}

// Remove deletes the file or empty directory at p. The root is never
// removable, and a path through a file does not exist; both are reported
// as not found.
func (s *Store) Remove(p string) error {
	parentPath, name := Split(p)
	n, ok := s.Lookup(parentPath)
	if !ok {
		return newError(OpRemove, p, ErrNotFound)
	}
	parent, ok := n.(*Dir)
	if !ok {
		return newError(OpRemove, p, ErrNotFound)
	}

	child, ok := parent.children[name]
	if !ok || name == "" {
		return newError(OpRemove, p, ErrNotFound)
	}
	if dir, isDir := child.(*Dir); isDir && dir.Len() > 0 {
		return newError(OpRemove, p, ErrNotEmpty)
	}

	parent.remove(name)
	s.logger.Verbose("rm %s", p)
	return nil
}

// parentDir locates the directory that holds (or would hold) p.
func (s *Store) parentDir(op, p string) (*Dir, string, error) {
	parentPath, name := Split(p)
	n, ok := s.Lookup(parentPath)
	if !ok {
		return nil, "", newError(op, p, ErrNotFound)
	}
	dir, ok := n.(*Dir)
	if !ok {
		return nil, "", newError(op, p, ErrNotADirectory)
	}
	return dir, name, nil
}
