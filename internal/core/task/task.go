// Package task defines the tracked task variants, their text projections,
// the tracker error family, and the ordered task list.
package task

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies a task variant.
type Kind int

const (
	KindToDo Kind = iota
	KindDeadline
	KindEvent
)

// Symbol returns the single-letter tag used in display strings and file records.
func (k Kind) Symbol() string {
	switch k {
	case KindToDo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

// String returns a lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindToDo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// ParseKind maps a record symbol back to its Kind.
func ParseKind(symbol string) (Kind, bool) {
	switch symbol {
	case "T":
		return KindToDo, true
	case "D":
		return KindDeadline, true
	case "E":
		return KindEvent, true
	default:
		return 0, false
	}
}

// DoneMarker is shown between the brackets of a completed task.
const DoneMarker = "✓"

// RecordSeparator separates fields of a file record.
const RecordSeparator = " | "

// Task is a tracked item. The set of implementations is closed: *ToDo,
// *Deadline and *Event.
type Task interface {
	Kind() Kind
	Description() string
	Done() bool
	MarkDone()
	MarkUndone()

	// Display renders the task for the user, e.g. "[D][ ] submit report (by: 2 Dec 2024)".
	Display() string

	// Record renders the task as a single line of the storage file.
	Record() string

	sealed()
}

type base struct {
	description string
	done        bool
}

func newBase(description string) (base, error) {
	if strings.TrimSpace(description) == "" {
		return base{}, ErrMissingDescription
	}
	return base{description: description}, nil
}

func (b *base) Description() string { return b.description }
func (b *base) Done() bool          { return b.done }
func (b *base) MarkDone()           { b.done = true }
func (b *base) MarkUndone()         { b.done = false }
func (b *base) sealed()             {}

func (b *base) display(k Kind) string {
	marker := " "
	if b.done {
		marker = DoneMarker
	}
	return fmt.Sprintf("[%s][%s] %s", k.Symbol(), marker, b.description)
}

func (b *base) record(k Kind) string {
	done := "0"
	if b.done {
		done = "1"
	}
	return k.Symbol() + RecordSeparator + done + RecordSeparator + b.description
}

// ToDo is a task with no date attached.
type ToDo struct {
	base
}

// NewToDo creates a ToDo. The description must not be blank.
func NewToDo(description string) (*ToDo, error) {
	b, err := newBase(description)
	if err != nil {
		return nil, err
	}
	return &ToDo{base: b}, nil
}

func (t *ToDo) Kind() Kind      { return KindToDo }
func (t *ToDo) Display() string { return t.display(KindToDo) }
func (t *ToDo) Record() string  { return t.record(KindToDo) }

// Deadline is a task due by a calendar date.
type Deadline struct {
	base
	by time.Time
}

// NewDeadline creates a Deadline due on by, an ISO-8601 calendar date.
func NewDeadline(description, by string) (*Deadline, error) {
	b, err := newBase(description)
	if err != nil {
		return nil, err
	}
	date, err := ParseDate(by)
	if err != nil {
		return nil, err
	}
	return &Deadline{base: b, by: date}, nil
}

// By returns the due date.
func (d *Deadline) By() time.Time { return d.by }

func (d *Deadline) Kind() Kind { return KindDeadline }

func (d *Deadline) Display() string {
	return fmt.Sprintf("%s (by: %s)", d.display(KindDeadline), FormatDisplayDate(d.by))
}

func (d *Deadline) Record() string {
	return d.record(KindDeadline) + RecordSeparator + FormatRecordDate(d.by)
}

// Event is a task happening on a calendar date.
type Event struct {
	base
	at time.Time
}

// NewEvent creates an Event occurring on at, an ISO-8601 calendar date.
func NewEvent(description, at string) (*Event, error) {
	b, err := newBase(description)
	if err != nil {
		return nil, err
	}
	date, err := ParseDate(at)
	if err != nil {
		return nil, err
	}
	return &Event{base: b, at: date}, nil
}

// At returns the event date.
func (e *Event) At() time.Time { return e.at }

func (e *Event) Kind() Kind { return KindEvent }

func (e *Event) Display() string {
	return fmt.Sprintf("%s (at: %s)", e.display(KindEvent), FormatDisplayDate(e.at))
}

func (e *Event) Record() string {
	return e.record(KindEvent) + RecordSeparator + FormatRecordDate(e.at)
}

// Date returns the date carried by a Deadline or Event. ok is false for a ToDo.
func Date(t Task) (date time.Time, ok bool) {
	switch v := t.(type) {
	case *Deadline:
		return v.by, true
	case *Event:
		return v.at, true
	default:
		return time.Time{}, false
	}
}

// Equal reports whether two tasks have the same kind, description, done
// flag and date.
func Equal(a, b Task) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() || a.Description() != b.Description() || a.Done() != b.Done() {
		return false
	}
	da, _ := Date(a)
	db, _ := Date(b)
	return da.Equal(db)
}
