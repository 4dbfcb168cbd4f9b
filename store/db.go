package store

import (
	"time"

	"github.com/adipramono/chargelog/internal/session"
)

// DB is the database storage interface.
type DB interface {
	// LoadSessions returns every saved session sorted by start time.
	// Malformed records are dropped, never surfaced as errors.
	LoadSessions() ([]session.Session, error)
	// SaveSessions replaces the stored session list atomically
	SaveSessions(sessions []session.Session) error
	// PutSession creates or overwrites a single session record
	PutSession(sess *session.Session) error
	// DeleteSession removes a saved session
	DeleteSession(id string) error
	// SetLastBackup records the time of the most recent backup
	SetLastBackup(t time.Time) error
	// LastBackup returns the time of the most recent backup
	LastBackup() (time.Time, error)
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
