package shell

import (
	"time"

	"github.com/google/uuid"

	"github.com/archora/archora/pkg/archora"
)

// Session is the cursor state of one interactive terminal: who is logged
// in, where they are, and what they typed.
type Session struct {
	ID       uuid.UUID
	User     string
	Cwd      string
	History  History
	Commands int
	Started  time.Time
}

func newSession(user string, now time.Time) *Session {
	return &Session{
		ID:      uuid.New(),
		User:    user,
		Cwd:     archora.HomeDir(user),
		Started: now,
	}
}

// Home returns the active user's home directory.
func (s *Session) Home() string {
	return archora.HomeDir(s.User)
}
