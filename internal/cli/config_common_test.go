package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archora/archora/pkg/archora"
)

// isolate runs the test in an empty directory with no ARCHORA_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(archora.EnvUser, "")
	t.Setenv(archora.EnvFixture, "")
	t.Setenv(archora.EnvProfiles, "")
	t.Setenv(archora.EnvNonInteractive, "1")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestResolveSessionConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := resolveSessionConfig(sessionFlags{}, false)
	require.NoError(t, err)
	assert.Equal(t, archora.SessionConfig{User: archora.DefaultUser}, cfg)
}

func TestResolveSessionConfig_Precedence(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, archora.ConfigFileName), "user: dixit\nfixture: tree.yaml\nverbose: true\n")

	t.Run("archora.yaml over defaults", func(t *testing.T) {
		cfg, err := resolveSessionConfig(sessionFlags{}, false)
		require.NoError(t, err)
		assert.Equal(t, "dixit", cfg.User)
		assert.Equal(t, filepath.Join(".", "tree.yaml"), cfg.FixturePath)
		assert.True(t, cfg.Verbose)
	})

	t.Run("environment over archora.yaml", func(t *testing.T) {
		t.Setenv(archora.EnvUser, "shubham")
		t.Setenv(archora.EnvProfiles, "/srv/team.yaml")

		cfg, err := resolveSessionConfig(sessionFlags{}, false)
		require.NoError(t, err)
		assert.Equal(t, "shubham", cfg.User)
		assert.Equal(t, "/srv/team.yaml", cfg.ProfilesPath)
	})

	t.Run("flags over environment", func(t *testing.T) {
		t.Setenv(archora.EnvUser, "shubham")

		cfg, err := resolveSessionConfig(sessionFlags{user: "prayatna", fixture: "other.yaml"}, false)
		require.NoError(t, err)
		assert.Equal(t, "prayatna", cfg.User)
		assert.Equal(t, "other.yaml", cfg.FixturePath)
	})
}

func TestResolveSessionConfig_Invalid(t *testing.T) {
	isolate(t)

	_, err := resolveSessionConfig(sessionFlags{user: "../root"}, false)
	require.Error(t, err)
	assert.Equal(t, archora.ExitConfigError, archora.ExitCodeForError(err))
}

func TestResolveSessionConfig_BrokenConfigFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, archora.ConfigFileName), "{{broken")

	_, err := resolveSessionConfig(sessionFlags{}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, archora.ErrInvalidConfig))
}

func TestLoadSeedData(t *testing.T) {
	dir := isolate(t)

	t.Run("embedded", func(t *testing.T) {
		root, profiles, err := loadSeedData(archora.SessionConfig{})
		require.NoError(t, err)
		_, ok := root.Child("home")
		assert.True(t, ok)
		assert.Equal(t, []string{"prayatna", "shubham", "dixit"}, profiles.Users())
	})

	t.Run("missing file is an invalid fixture", func(t *testing.T) {
		_, _, err := loadSeedData(archora.SessionConfig{FixturePath: filepath.Join(dir, "nope.yaml")})
		require.Error(t, err)
		assert.Equal(t, archora.ExitInvalidFixture, archora.ExitCodeForError(err))
	})

	t.Run("profile without a home directory", func(t *testing.T) {
		path := filepath.Join(dir, "homeless.yaml")
		writeFile(t, path, "home:\n  shubham: {}\n  dixit: {}\netc: {}\n")

		_, _, err := loadSeedData(archora.SessionConfig{FixturePath: path})
		require.Error(t, err)
		assert.True(t, errors.Is(err, archora.ErrInvalidFixture))
		assert.Contains(t, err.Error(), `user "prayatna" has no home directory /home/prayatna`)
	})

	t.Run("malformed profiles", func(t *testing.T) {
		path := filepath.Join(dir, "team.yaml")
		writeFile(t, path, "- just\n- a list\n")

		_, _, err := loadSeedData(archora.SessionConfig{ProfilesPath: path})
		assert.True(t, errors.Is(err, archora.ErrInvalidFixture))
	})
}

func TestNewInterpreter_UnknownUser(t *testing.T) {
	isolate(t)
	root, profiles, err := loadSeedData(archora.SessionConfig{})
	require.NoError(t, err)

	logger, closeLog, err := newLogger(false, false)
	require.NoError(t, err)
	defer closeLog()

	_, err = newInterpreter(archora.SessionConfig{User: "mallory"}, root, profiles, logger)
	assert.Equal(t, archora.ExitUnknownUser, archora.ExitCodeForError(err))
}

func TestNewLogger_FullScreenWritesFile(t *testing.T) {
	dir := isolate(t)

	logger, closeLog, err := newLogger(true, true)
	require.NoError(t, err)
	logger.Verbose("hello %s", "log")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[VERBOSE] hello log")
}
