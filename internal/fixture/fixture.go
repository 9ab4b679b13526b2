// Package fixture holds the seed data the terminal starts from: the
// filesystem tree, the team profiles and the ASCII art. Each loader
// accepts an optional path; an empty path selects the embedded copy.
package fixture

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/archora/archora/internal/profile"
	"github.com/archora/archora/internal/vfs"
)

var (
	//go:embed filesystem.yaml
	filesystemYAML []byte

	//go:embed profiles.yaml
	profilesYAML []byte

	//go:embed art/*.txt
	artFS embed.FS
)

// Filesystem parses the filesystem fixture at filePath, or the embedded
// one when filePath is empty.
func Filesystem(filePath string) (*vfs.Dir, error) {
	data, err := read(filePath, filesystemYAML)
	if err != nil {
		return nil, err
	}
	root, err := vfs.ParseFixture(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", describe(filePath), err)
	}
	return root, nil
}

// Profiles parses the profiles file at filePath, or the embedded one when
// filePath is empty.
func Profiles(filePath string) (*profile.Registry, error) {
	data, err := read(filePath, profilesYAML)
	if err != nil {
		return nil, err
	}
	reg, err := profile.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", describe(filePath), err)
	}
	return reg, nil
}

// Art returns the named ASCII art.
func Art(name string) (string, bool) {
	data, err := artFS.ReadFile(path.Join("art", name+".txt"))
	if err != nil {
		return "", false
	}
	return strings.TrimRight(string(data), "\n"), true
}

// ArtNames lists the available art, sorted.
func ArtNames() []string {
	entries, err := artFS.ReadDir("art")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

func read(filePath string, embedded []byte) ([]byte, error) {
	if filePath == "" {
		return embedded, nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return data, nil
}

func describe(filePath string) string {
	if filePath == "" {
		return "embedded fixture"
	}
	return filePath
}
