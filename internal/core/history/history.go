// Package history defines command history domain types and interfaces.
package history

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no matching history entry exists.
var ErrNotFound = errors.New("history entry not found")

// Entry represents one REPL line dispatched during a session.
type Entry struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Command   string    `json:"command"`
	Args      string    `json:"args,omitempty"`
	ExitCode  int       `json:"exit_code"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Failed returns true if the command was rejected.
func (e *Entry) Failed() bool {
	return e.ExitCode != 0
}

// Store persists command history.
type Store interface {
	// List returns all entries, newest first.
	List(ctx context.Context) ([]Entry, error)

	// Save prepends entry, keeping at most maxEntries (0 = unlimited).
	Save(ctx context.Context, entry Entry, maxEntries int) error

	// LastFailed returns the most recent failed entry or ErrNotFound.
	LastFailed(ctx context.Context) (Entry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}
