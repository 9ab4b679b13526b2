// Package vfs implements the in-memory filesystem behind the Archora terminal.
//
// The tree is made of two node kinds:
//   - *Dir: an ordered mapping of child names to nodes
//   - *File: a text payload
//
// Paths handed to the Store are canonical absolute paths as produced by
// Resolve. Resolution is a pure string transformation; the Store never
// sees "~", "." or "..".
//
// A Store is built from a fixture (see ParseFixture) and can be rebuilt
// from it at any time with Reset. It is owned by a single session and is
// not safe for concurrent use.
package vfs
