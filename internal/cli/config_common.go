package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/archora/archora/internal/config"
	"github.com/archora/archora/internal/fixture"
	"github.com/archora/archora/internal/logging"
	"github.com/archora/archora/internal/profile"
	"github.com/archora/archora/internal/shell"
	"github.com/archora/archora/internal/vfs"
	"github.com/archora/archora/pkg/archora"
)

// logFileName receives verbose output while the full-screen terminal owns stdout.
const logFileName = "archora.log"

// sessionFlags holds the flags every session-starting command shares.
type sessionFlags struct {
	user     string
	fixture  string
	profiles string
}

func addSessionFlags(cmd *cobra.Command, f *sessionFlags) {
	cmd.Flags().StringVarP(&f.user, "user", "u", "",
		"User to log in as\n"+
			"Precedence: --user > $ARCHORA_USER > archora.yaml > "+archora.DefaultUser)
	cmd.Flags().StringVar(&f.fixture, "fixture", "",
		"YAML filesystem fixture (default: built-in portfolio tree)\n"+
			"Precedence: --fixture > $ARCHORA_FIXTURE > archora.yaml")
	cmd.Flags().StringVar(&f.profiles, "profiles", "",
		"YAML profiles file (default: built-in team profiles)\n"+
			"Precedence: --profiles > $ARCHORA_PROFILES > archora.yaml")

	_ = cmd.RegisterFlagCompletionFunc("user", completeUserNames)
}

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if archora.yaml does not exist (not an error).
func loadProjectConfig(dir string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w: %v", archora.ConfigFileName, archora.ErrInvalidConfig, err)
	}
	return projectCfg, nil
}

// resolveSessionConfig merges flags, environment and archora.yaml.
// Priority (highest to lowest): flag > environment > archora.yaml > default
func resolveSessionConfig(flags sessionFlags, verbose bool) (archora.SessionConfig, error) {
	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return archora.SessionConfig{}, err
	}
	if projectCfg == nil {
		projectCfg = &config.ProjectConfig{}
	}

	cfg := archora.SessionConfig{
		User:         firstNonEmpty(flags.user, os.Getenv(archora.EnvUser), projectCfg.User, archora.DefaultUser),
		FixturePath:  firstNonEmpty(flags.fixture, os.Getenv(archora.EnvFixture), projectCfg.Fixture),
		ProfilesPath: firstNonEmpty(flags.profiles, os.Getenv(archora.EnvProfiles), projectCfg.Profiles),
		Verbose:      verbose || projectCfg.Verbose,
	}

	if err := cfg.Validate(); err != nil {
		return archora.SessionConfig{}, err
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// loadSeedData reads the filesystem fixture and the profiles and checks
// that every profile has a home directory. Every failure, including an
// unreadable file, is reported as ErrInvalidFixture.
func loadSeedData(cfg archora.SessionConfig) (*vfs.Dir, *profile.Registry, error) {
	root, err := fixture.Filesystem(cfg.FixturePath)
	if err != nil {
		return nil, nil, asFixtureError(err)
	}
	profiles, err := fixture.Profiles(cfg.ProfilesPath)
	if err != nil {
		return nil, nil, asFixtureError(err)
	}
	if err := checkHomes(root, profiles); err != nil {
		return nil, nil, err
	}
	return root, profiles, nil
}

func asFixtureError(err error) error {
	if errors.Is(err, archora.ErrInvalidFixture) {
		return err
	}
	return fmt.Errorf("%w: %v", archora.ErrInvalidFixture, err)
}

// checkHomes reports every profile whose home directory is missing.
func checkHomes(root *vfs.Dir, profiles *profile.Registry) error {
	store := vfs.New(root, nil)

	var errs []error
	for _, user := range profiles.Users() {
		home := archora.HomeDir(user)
		n, ok := store.Lookup(home)
		if !ok {
			errs = append(errs, fmt.Errorf("user %q has no home directory %s: %w", user, home, archora.ErrInvalidFixture))
			continue
		}
		if _, isDir := n.(*vfs.Dir); !isDir {
			errs = append(errs, fmt.Errorf("home %s of user %q is a file: %w", home, user, archora.ErrInvalidFixture))
		}
	}
	return errors.Join(errs...)
}

// newInterpreter starts a session over a fresh store built from root.
func newInterpreter(cfg archora.SessionConfig, root *vfs.Dir, profiles *profile.Registry, logger archora.Logger) (*shell.Interpreter, error) {
	in, err := shell.New(vfs.New(root, logger), profiles,
		shell.WithUser(cfg.User),
		shell.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	logger.Verbose("session %s: user=%s cwd=%s fixture=%s (%s)", in.Session().ID, in.Session().User, in.Session().Cwd,
		vfs.Fingerprint(root)[:12], vfs.Summary(root))
	return in, nil
}

// newLogger returns the session logger. The full-screen terminal owns
// stdout and stderr, so there verbose output goes to archora.log.
// The returned close func is never nil.
func newLogger(verbose, fullScreen bool) (archora.Logger, func() error, error) {
	noop := func() error { return nil }
	if !verbose {
		return logging.NewNullLogger(), noop, nil
	}
	if !fullScreen {
		return logging.NewConsoleLogger(true), noop, nil
	}

	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open %s: %w", logFileName, err)
	}
	return logging.NewWriterLogger(f, true), f.Close, nil
}
