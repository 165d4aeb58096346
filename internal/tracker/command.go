package tracker

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/colonyops/blob/internal/core/task"
)

var (
	whitespace  = regexp.MustCompile(`\s+`)
	bySeparator = regexp.MustCompile(`\s+/by\s+`)
	atSeparator = regexp.MustCompile(`\s+/at\s+`)
)

// Command is a parsed line of user input. The set of implementations is
// closed and handled exhaustively by Tracker.Execute.
type Command interface {
	Name() string
	command()
}

type (
	ByeCommand  struct{}
	ListCommand struct{}

	MarkCommand   struct{ Index int }
	UnmarkCommand struct{ Index int }
	DeleteCommand struct{ Index int }

	TodoCommand struct{ Description string }

	DeadlineCommand struct {
		Description string
		By          string
	}

	EventCommand struct {
		Description string
		At          string
	}

	FindCommand struct{ Keyword string }
)

func (ByeCommand) Name() string      { return "bye" }
func (ListCommand) Name() string     { return "list" }
func (MarkCommand) Name() string     { return "mark" }
func (UnmarkCommand) Name() string   { return "unmark" }
func (DeleteCommand) Name() string   { return "delete" }
func (TodoCommand) Name() string     { return "todo" }
func (DeadlineCommand) Name() string { return "deadline" }
func (EventCommand) Name() string    { return "event" }
func (FindCommand) Name() string     { return "find" }

func (ByeCommand) command()      {}
func (ListCommand) command()     {}
func (MarkCommand) command()     {}
func (UnmarkCommand) command()   {}
func (DeleteCommand) command()   {}
func (TodoCommand) command()     {}
func (DeadlineCommand) command() {}
func (EventCommand) command()    {}
func (FindCommand) command()     {}

// splitLine trims line and splits it on the first run of whitespace into the
// command word and its arguments.
func splitLine(line string) (name, args string) {
	parts := whitespace.Split(strings.TrimSpace(line), 2)
	name = parts[0]
	if len(parts) == 2 {
		args = parts[1]
	}
	return name, args
}

// Parse classifies one line of input and validates its arguments. Failures
// are *task.Error values.
func Parse(line string) (Command, error) {
	name, args := splitLine(line)

	switch name {
	case "bye":
		return ByeCommand{}, nil
	case "list":
		return ListCommand{}, nil
	case "mark":
		i, err := parseIndex(args)
		if err != nil {
			return nil, err
		}
		return MarkCommand{Index: i}, nil
	case "unmark":
		i, err := parseIndex(args)
		if err != nil {
			return nil, err
		}
		return UnmarkCommand{Index: i}, nil
	case "delete":
		i, err := parseIndex(args)
		if err != nil {
			return nil, err
		}
		return DeleteCommand{Index: i}, nil
	case "todo":
		if args == "" {
			return nil, task.ErrMissingDescription
		}
		return TodoCommand{Description: args}, nil
	case "deadline":
		if args == "" {
			return nil, task.ErrMissingDescription
		}
		desc, by, ok := splitOn(bySeparator, args)
		if !ok {
			return nil, task.ErrInvalidDeadline
		}
		return DeadlineCommand{Description: desc, By: by}, nil
	case "event":
		if args == "" {
			return nil, task.ErrMissingDescription
		}
		desc, at, ok := splitOn(atSeparator, args)
		if !ok {
			return nil, task.ErrInvalidEvent
		}
		return EventCommand{Description: desc, At: at}, nil
	case "find":
		return FindCommand{Keyword: args}, nil
	default:
		return nil, task.ErrUnknownCommand
	}
}

func parseIndex(args string) (int, error) {
	if args == "" {
		return 0, task.ErrInvalidTaskIndex
	}
	i, err := strconv.Atoi(args)
	if err != nil {
		return 0, task.ErrInvalidTaskIndex
	}
	return i, nil
}

// splitOn splits s at the first match of sep.
func splitOn(sep *regexp.Regexp, s string) (before, after string, ok bool) {
	loc := sep.FindStringIndex(s)
	if loc == nil {
		return "", "", false
	}
	return s[:loc[0]], s[loc[1]:], true
}
