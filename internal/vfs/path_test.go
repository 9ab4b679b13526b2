package vfs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	const (
		cwd  = "/home/prayatna"
		home = "/home/prayatna"
	)

	tests := []struct {
		token string
		want  string
	}{
		{".", "/home/prayatna"},
		{"", "/home/prayatna"},
		{"projects", "/home/prayatna/projects"},
		{"./projects/../skills.txt", "/home/prayatna/skills.txt"},
		{"..", "/home"},
		{"../..", "/"},
		{"../../../..", "/"},
		{"/", "/"},
		{"//etc//motd", "/etc/motd"},
		{"/etc/./motd/", "/etc/motd"},
		{"~", "/home/prayatna"},
		{"~/", "/home/prayatna"},
		{"~/projects", "/home/prayatna/projects"},
		{"~/../dixit", "/home/dixit"},
		{"/home/../../etc", "/etc"},
		{"a/b/c/../../d", "/home/prayatna/a/d"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(cwd, home, tt.token))
		})
	}
}

func TestResolve_RelativeToRoot(t *testing.T) {
	assert.Equal(t, "/etc", Resolve("/", "/home/dixit", "etc"))
	assert.Equal(t, "/", Resolve("/", "/home/dixit", ".."))
}

func TestResolve_HomeUsesCurrentUser(t *testing.T) {
	assert.Equal(t, "/home/shubham/projects", Resolve("/etc", "/home/shubham", "~/projects"))
}

func TestResolve_IdempotentOnCanonicalPaths(t *testing.T) {
	paths := []string{"/", "/home", "/home/prayatna/projects/terminal.md", "/etc/config.json"}
	for _, p := range paths {
		assert.Equal(t, p, Resolve("/somewhere/else", "/home/x", p))
		assert.Equal(t, p, Resolve("/", "/", Resolve("/", "/", p)))
	}
}

func TestResolve_ExcessParentsClampAtRoot(t *testing.T) {
	cwd := "/home/prayatna/projects"
	for n := 3; n <= 10; n++ {
		token := strings.TrimSuffix(strings.Repeat("../", n), "/")
		assert.Equal(t, "/", Resolve(cwd, "/home/prayatna", token), "n=%d", n)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		path, parent, name string
	}{
		{"/", "/", ""},
		{"/etc", "/", "etc"},
		{"/home/prayatna/notes", "/home/prayatna", "notes"},
	}
	for _, tt := range tests {
		parent, name := Split(tt.path)
		assert.Equal(t, tt.parent, parent, tt.path)
		assert.Equal(t, tt.name, name, tt.path)
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "/etc", Join("/", "etc"))
	assert.Equal(t, "/etc/motd", Join("/etc", "motd"))
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("README.md"))
	assert.True(t, IsValidName(".hidden"))
	assert.False(t, IsValidName(""))
	assert.False(t, IsValidName("."))
	assert.False(t, IsValidName(".."))
	assert.False(t, IsValidName("a/b"))
}
