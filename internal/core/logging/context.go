package logging

import "context"

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	commandKey   contextKey = "command"
	rejectionKey contextKey = "rejected"
)

// WithSessionID adds a REPL session ID to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// WithCommand adds the name of the command being dispatched to the context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}

// GetSessionID retrieves the session ID from the context.
// Returns empty string if not present.
func GetSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if cmd, ok := ctx.Value(commandKey).(string); ok {
		return cmd
	}
	return ""
}

// WithRejection marks the current command as rejected for reason, normally a
// tracker error kind such as "invalid_task_index".
func WithRejection(ctx context.Context, reason string) context.Context {
	return context.WithValue(ctx, rejectionKey, reason)
}

// GetRejection returns the rejection reason, or empty string if the command
// was accepted.
func GetRejection(ctx context.Context) string {
	if reason, ok := ctx.Value(rejectionKey).(string); ok {
		return reason
	}
	return ""
}
