package shell

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/archora/archora/internal/fixture"
	"github.com/archora/archora/internal/logging"
	"github.com/archora/archora/internal/profile"
	"github.com/archora/archora/internal/vfs"
	"github.com/archora/archora/pkg/archora"
)

// Handler runs one command with the arguments that followed the command word.
type Handler func(in *Interpreter, args []string) Result

type command struct {
	name    string
	summary string
	run     Handler
}

// Interpreter dispatches command lines for a single session.
type Interpreter struct {
	store       *vfs.Store
	profiles    *profile.Registry
	session     *Session
	commands    map[string]command
	defaultUser string
	clock       func() time.Time
	intn        func(n int) int
	logger      archora.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithUser sets the user the session starts as and returns to on Reset.
func WithUser(user string) Option {
	return func(in *Interpreter) { in.defaultUser = user }
}

// WithClock replaces time.Now, for the time and neofetch commands.
func WithClock(clock func() time.Time) Option {
	return func(in *Interpreter) { in.clock = clock }
}

// WithRandom replaces the random source used by joke.
func WithRandom(intn func(n int) int) Option {
	return func(in *Interpreter) { in.intn = intn }
}

// WithLogger sets the logger.
func WithLogger(logger archora.Logger) Option {
	return func(in *Interpreter) { in.logger = logger }
}

// New creates an interpreter over store. The starting user must have a
// profile, otherwise archora.ErrUnknownUser is returned.
func New(store *vfs.Store, profiles *profile.Registry, opts ...Option) (*Interpreter, error) {
	in := &Interpreter{
		store:       store,
		profiles:    profiles,
		defaultUser: archora.DefaultUser,
		clock:       time.Now,
		intn:        rand.IntN,
		logger:      logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(in)
	}

	if _, ok := profiles.Get(in.defaultUser); !ok {
		return nil, fmt.Errorf("%w: %q (known users: %s)", archora.ErrUnknownUser, in.defaultUser, strings.Join(profiles.Users(), ", "))
	}

	in.commands = make(map[string]command)
	for _, c := range builtinCommands() {
		in.commands[c.name] = c
	}

	in.session = newSession(in.defaultUser, in.clock())
	in.logger.Verbose("session %s started as %s", in.session.ID, in.session.User)
	return in, nil
}

// Session returns the live session cursor.
func (in *Interpreter) Session() *Session {
	return in.session
}

// Store returns the filesystem the interpreter operates on.
func (in *Interpreter) Store() *vfs.Store {
	return in.store
}

// Profiles returns the known users.
func (in *Interpreter) Profiles() *profile.Registry {
	return in.profiles
}

// Profile returns the active user's profile.
func (in *Interpreter) Profile() *profile.Profile {
	p, _ := in.profiles.Get(in.session.User)
	return p
}

// Prompt returns the shell prompt, e.g. "dixit@archora:/home/dixit$".
func (in *Interpreter) Prompt() string {
	return fmt.Sprintf("%s@%s:%s$", in.session.User, archora.HostName, in.session.Cwd)
}

// Execute runs one input line. Blank lines are ignored and not recorded.
func (in *Interpreter) Execute(line string) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return Silent()
	}

	in.session.History.Push(line)
	in.session.Commands++

	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])

	cmd, ok := in.commands[name]
	if !ok {
		in.logger.Verbose("session %s: unknown command %q", in.session.ID, name)
		return Failure(UnknownCommand, fmt.Sprintf("bash: %s: command not found", name))
	}

	res := cmd.run(in, fields[1:])
	if res.Failed() {
		in.logger.Verbose("session %s: %s (%s)", in.session.ID, res.Text, res.Failure)
	}
	return res
}

// Commands returns the command names in the dispatch table, sorted.
func (in *Interpreter) Commands() []string {
	names := make([]string, 0, len(in.commands))
	for name := range in.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Complete returns the command names starting with prefix, sorted.
func (in *Interpreter) Complete(prefix string) []string {
	prefix = strings.ToLower(prefix)
	var matches []string
	for _, name := range in.Commands() {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

// SwitchUser logs in as user and moves to their home directory.
func (in *Interpreter) SwitchUser(user string) error {
	if _, ok := in.profiles.Get(user); !ok {
		return fmt.Errorf("%w: %q", archora.ErrUnknownUser, user)
	}
	in.session.User = user
	in.session.Cwd = archora.HomeDir(user)
	in.logger.Verbose("session %s: switched to %s", in.session.ID, user)
	return nil
}

// Reset starts a fresh session as the default user, as if the terminal
// had been closed and reopened. The filesystem keeps its changes.
func (in *Interpreter) Reset() {
	in.session = newSession(in.defaultUser, in.clock())
	in.logger.Verbose("session %s started as %s", in.session.ID, in.session.User)
}

// ReloadFixture resets the session and rebuilds the filesystem from its
// fixture, discarding every change.
func (in *Interpreter) ReloadFixture() {
	in.store.Reset()
	in.Reset()
}

// Banner is printed when a terminal opens or the user changes.
func (in *Interpreter) Banner() string {
	logo, _ := fixture.Art(defaultArt)
	return fmt.Sprintf("%s\n\nWelcome to Archora Terminal!\nCurrent user: %s\nType help to see available commands.\n",
		logo, in.Profile().Name)
}

// Resolve turns a path argument into a canonical path for this session.
func (in *Interpreter) Resolve(token string) string {
	return vfs.Resolve(in.session.Cwd, in.session.Home(), token)
}
