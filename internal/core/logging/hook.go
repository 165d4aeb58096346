package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies session_id and command from the event context. Events
// for a rejected command also carry rejected=<reason>.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if sessionID := GetSessionID(ctx); sessionID != "" {
		e.Str("session_id", sessionID)
	}

	if command := GetCommand(ctx); command != "" {
		e.Str("command", command)
	}

	if reason := GetRejection(ctx); reason != "" {
		e.Str("rejected", reason)
	}
}
