package task

import "errors"

// ErrorKind enumerates the recoverable, user-facing tracker errors.
type ErrorKind int

const (
	UnknownCommand ErrorKind = iota + 1
	MissingDescription
	InvalidDeadline
	InvalidEvent
	InvalidDateFormat
	InvalidTaskIndex
)

// Message returns the fixed message shown to the user for the kind.
func (k ErrorKind) Message() string {
	switch k {
	case UnknownCommand:
		return "Sorry, I don't know what that means."
	case MissingDescription:
		return "The description of a task cannot be empty."
	case InvalidDeadline:
		return "A deadline needs a date: deadline <description> /by <yyyy-mm-dd>"
	case InvalidEvent:
		return "An event needs a date: event <description> /at <yyyy-mm-dd>"
	case InvalidDateFormat:
		return "Dates must be written as yyyy-mm-dd, e.g. 2024-12-02."
	case InvalidTaskIndex:
		return "That task number does not exist in the list."
	default:
		return "Something went wrong."
	}
}

// String returns a short identifier for logs.
func (k ErrorKind) String() string {
	switch k {
	case UnknownCommand:
		return "unknown_command"
	case MissingDescription:
		return "missing_description"
	case InvalidDeadline:
		return "invalid_deadline"
	case InvalidEvent:
		return "invalid_event"
	case InvalidDateFormat:
		return "invalid_date_format"
	case InvalidTaskIndex:
		return "invalid_task_index"
	default:
		return "unknown"
	}
}

// Error is a recoverable tracker error. The session reports it and keeps
// running.
type Error struct {
	Kind ErrorKind
}

func (e *Error) Error() string { return e.Kind.Message() }

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrUnknownCommand     = &Error{Kind: UnknownCommand}
	ErrMissingDescription = &Error{Kind: MissingDescription}
	ErrInvalidDeadline    = &Error{Kind: InvalidDeadline}
	ErrInvalidEvent       = &Error{Kind: InvalidEvent}
	ErrInvalidDateFormat  = &Error{Kind: InvalidDateFormat}
	ErrInvalidTaskIndex   = &Error{Kind: InvalidTaskIndex}
)

// AsError returns the tracker error wrapped in err, if any.
func AsError(err error) (*Error, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
