package vfs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a path does not exist in the tree
	ErrNotFound = errors.New("no such file or directory")

	// ErrNotADirectory indicates a path expected to be traversable is a file
	ErrNotADirectory = errors.New("not a directory")

	// ErrIsADirectory indicates a path expected to be a file is a directory
	ErrIsADirectory = errors.New("is a directory")

	// ErrAlreadyExists indicates a creation target is already occupied
	ErrAlreadyExists = errors.New("file exists")

	// ErrNotEmpty indicates attempt to remove non-empty directory
	ErrNotEmpty = errors.New("directory not empty")
)

// Operation names used in Error.Op.
const (
	OpList   = "list"
	OpRead   = "read"
	OpMkdir  = "mkdir"
	OpTouch  = "touch"
	OpRemove = "remove"
)

// Error wraps a store failure with the operation and the canonical path
// it was applied to.
type Error struct {
	Op   string // Operation that failed (e.g., "mkdir", "remove")
	Path string // Canonical path
	Err  error  // One of the sentinel errors above
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap implements error unwrapping for the errors.Is/As functions
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Err: err}
}
