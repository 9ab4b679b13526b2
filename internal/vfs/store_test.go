package vfs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFixture = `home:
  prayatna:
    README.md: "hello\nworld"
    projects:
      terminal.md: "# Terminal"
etc:
  motd: "welcome"
`

func newTestStore(t *testing.T) *Store {
	t.Helper()
	root, err := ParseFixture([]byte(testFixture))
	require.NoError(t, err)
	return New(root, nil)
}

func requireStoreError(t *testing.T, err error, sentinel error, op, path string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel), "want %v, got %v", sentinel, err)

	var vErr *Error
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, op, vErr.Op)
	assert.Equal(t, path, vErr.Path)
}

func TestStore_Lookup(t *testing.T) {
	s := newTestStore(t)

	n, ok := s.Lookup("/")
	require.True(t, ok)
	assert.Same(t, s.Root(), n)

	n, ok = s.Lookup("/home/prayatna/README.md")
	require.True(t, ok)
	assert.Equal(t, &File{Content: "hello\nworld"}, n)

	_, ok = s.Lookup("/home/nobody")
	assert.False(t, ok)

	// Cannot descend through a file.
	_, ok = s.Lookup("/etc/motd/inner")
	assert.False(t, ok)
}

func TestStore_List(t *testing.T) {
	s := newTestStore(t)

	entries, err := s.List("/home/prayatna")
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "README.md"}, {Name: "projects", IsDir: true}}, entries)

	_, err = s.List("/nope")
	requireStoreError(t, err, ErrNotFound, OpList, "/nope")

	_, err = s.List("/etc/motd")
	requireStoreError(t, err, ErrNotADirectory, OpList, "/etc/motd")
}

func TestStore_Read(t *testing.T) {
	s := newTestStore(t)

	content, err := s.Read("/etc/motd")
	require.NoError(t, err)
	assert.Equal(t, "welcome", content)

	_, err = s.Read("/etc")
	requireStoreError(t, err, ErrIsADirectory, OpRead, "/etc")

	_, err = s.Read("/etc/missing")
	requireStoreError(t, err, ErrNotFound, OpRead, "/etc/missing")
}

func TestStore_Mkdir(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Mkdir("/home/prayatna/notes"))
	n, ok := s.Lookup("/home/prayatna/notes")
	require.True(t, ok)
	assert.Equal(t, 0, n.(*Dir).Len())

	err := s.Mkdir("/home/prayatna/notes")
	requireStoreError(t, err, ErrAlreadyExists, OpMkdir, "/home/prayatna/notes")

	err = s.Mkdir("/home/prayatna/README.md")
	requireStoreError(t, err, ErrAlreadyExists, OpMkdir, "/home/prayatna/README.md")

	err = s.Mkdir("/missing/child")
	requireStoreError(t, err, ErrNotFound, OpMkdir, "/missing/child")

	err = s.Mkdir("/etc/motd/child")
	requireStoreError(t, err, ErrNotADirectory, OpMkdir, "/etc/motd/child")

	err = s.Mkdir("/")
	requireStoreError(t, err, ErrAlreadyExists, OpMkdir, "/")
}

func TestStore_Mkdir_Exclusive(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Mkdir("/etc/x"))
	require.Error(t, s.Mkdir("/etc/x"))

	count := 0
	for _, name := range s.Root().children["etc"].(*Dir).Names() {
		if name == "x" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestStore_Touch(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Touch("/etc/new.txt"))
	content, err := s.Read("/etc/new.txt")
	require.NoError(t, err)
	assert.Equal(t, "", content)

	// Existing file keeps its content.
	require.NoError(t, s.Touch("/etc/motd"))
	content, err = s.Read("/etc/motd")
	require.NoError(t, err)
	assert.Equal(t, "welcome", content)

	err = s.Touch("/home/prayatna/projects")
	requireStoreError(t, err, ErrIsADirectory, OpTouch, "/home/prayatna/projects")

	err = s.Touch("/")
	requireStoreError(t, err, ErrIsADirectory, OpTouch, "/")

	err = s.Touch("/nope/file")
	requireStoreError(t, err, ErrNotFound, OpTouch, "/nope/file")

	err = s.Touch("/etc/motd/file")
	requireStoreError(t, err, ErrNotADirectory, OpTouch, "/etc/motd/file")
}

func TestStore_Remove(t *testing.T) {
	s := newTestStore(t)

	err := s.Remove("/home/prayatna/projects")
	requireStoreError(t, err, ErrNotEmpty, OpRemove, "/home/prayatna/projects")

	require.NoError(t, s.Remove("/home/prayatna/projects/terminal.md"))
	require.NoError(t, s.Remove("/home/prayatna/projects"))
	_, ok := s.Lookup("/home/prayatna/projects")
	assert.False(t, ok)

	err = s.Remove("/home/prayatna/projects")
	requireStoreError(t, err, ErrNotFound, OpRemove, "/home/prayatna/projects")

	err = s.Remove("/")
	requireStoreError(t, err, ErrNotFound, OpRemove, "/")

	err = s.Remove("/etc/motd/x")
	requireStoreError(t, err, ErrNotFound, OpRemove, "/etc/motd/x")
}

func TestStore_Remove_PreservesSiblingOrder(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Touch("/etc/a"))
	require.NoError(t, s.Touch("/etc/b"))
	require.NoError(t, s.Remove("/etc/a"))

	entries, err := s.List("/etc")
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "motd"}, {Name: "b"}}, entries)
}

func TestStore_FailedMutationLeavesTreeUnchanged(t *testing.T) {
	s := newTestStore(t)
	before := s.Root().clone()

	assert.Error(t, s.Mkdir("/home/prayatna/projects"))
	assert.Error(t, s.Touch("/home/prayatna/projects"))
	assert.Error(t, s.Remove("/home/prayatna/projects"))
	assert.Error(t, s.Mkdir("/etc/motd/x"))

	assert.Equal(t, before, s.Root())
}

func TestStore_Reset(t *testing.T) {
	root, err := ParseFixture([]byte(testFixture))
	require.NoError(t, err)
	s := New(root, nil)

	require.NoError(t, s.Mkdir("/tmp"))
	require.NoError(t, s.Remove("/etc/motd"))

	s.Reset()
	_, ok := s.Lookup("/tmp")
	assert.False(t, ok)
	content, err := s.Read("/etc/motd")
	require.NoError(t, err)
	assert.Equal(t, "welcome", content)

	// The fixture itself was never touched.
	_, ok = root.Child("tmp")
	assert.False(t, ok)
}

func TestStore_StoresShareNothing(t *testing.T) {
	root, err := ParseFixture([]byte(testFixture))
	require.NoError(t, err)
	a, b := New(root, nil), New(root, nil)

	require.NoError(t, a.Mkdir("/only-in-a"))
	_, ok := b.Lookup("/only-in-a")
	assert.False(t, ok)
}

func TestError_Message(t *testing.T) {
	err := &Error{Op: OpMkdir, Path: "/etc", Err: ErrAlreadyExists}
	assert.Equal(t, "mkdir /etc: file exists", err.Error())
}
