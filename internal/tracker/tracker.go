// Package tracker turns lines of user input into operations on the task list.
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/blob/internal/core/history"
	"github.com/colonyops/blob/internal/core/logging"
	"github.com/colonyops/blob/internal/core/task"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Storage loads and saves the task list.
type Storage interface {
	Load(ctx context.Context) ([]task.Task, error)
	Save(ctx context.Context, tasks []task.Task) error
}

// Options configures a Tracker.
type Options struct {
	Storage Storage

	// History records every dispatched line when non-nil.
	History    history.Store
	MaxHistory int

	Logger zerolog.Logger
}

// Tracker is one interactive session: the task list plus the storage it was
// loaded from.
type Tracker struct {
	tasks      *task.List
	storage    Storage
	history    history.Store
	maxHistory int
	sessionID  string
	log        zerolog.Logger
}

// Open loads the task list from opts.Storage. A load error is fatal to the
// session and is returned as is.
func Open(ctx context.Context, opts Options) (*Tracker, error) {
	tasks, err := opts.Storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return New(task.NewList(tasks...), opts), nil
}

// New creates a Tracker over an existing list.
func New(list *task.List, opts Options) *Tracker {
	return &Tracker{
		tasks:      list,
		storage:    opts.Storage,
		history:    opts.History,
		maxHistory: opts.MaxHistory,
		sessionID:  uuid.NewString(),
		log:        opts.Logger,
	}
}

// SessionID identifies this session in logs and history.
func (t *Tracker) SessionID() string { return t.sessionID }

// Tasks returns the underlying task list.
func (t *Tracker) Tasks() *task.List { return t.tasks }

// Context returns ctx tagged with the session ID for logging.
func (t *Tracker) Context(ctx context.Context) context.Context {
	return logging.WithSessionID(ctx, t.sessionID)
}

// Dispatch parses and executes one line of input. A *task.Error means the
// line was rejected and the session continues. Any other error comes from
// saving on bye, in which case the result still carries the farewell.
func (t *Tracker) Dispatch(ctx context.Context, line string) (Result, error) {
	name, args := splitLine(line)
	ctx = logging.WithCommand(t.Context(ctx), name)

	res, err := t.dispatch(ctx, line)
	if te, ok := task.AsError(err); ok {
		ctx = logging.WithRejection(ctx, te.Kind.String())
	}
	t.record(ctx, name, args, err)

	if logging.GetRejection(ctx) != "" {
		t.log.Debug().Ctx(ctx).Msg("command rejected")
	} else if err == nil {
		t.log.Debug().Ctx(ctx).Msg("command executed")
	}
	return res, err
}

func (t *Tracker) dispatch(ctx context.Context, line string) (Result, error) {
	cmd, err := Parse(line)
	if err != nil {
		return Result{}, err
	}
	return t.Execute(ctx, cmd)
}

// Execute runs an already parsed command against the task list.
func (t *Tracker) Execute(ctx context.Context, cmd Command) (Result, error) {
	switch c := cmd.(type) {
	case ByeCommand:
		return t.bye(ctx)
	case ListCommand:
		return listResult(t.tasks.Display()), nil
	case MarkCommand:
		done, err := t.tasks.MarkDone(c.Index)
		if err != nil {
			return Result{}, err
		}
		return markedResult(done), nil
	case UnmarkCommand:
		undone, err := t.tasks.MarkUndone(c.Index)
		if err != nil {
			return Result{}, err
		}
		return unmarkedResult(undone), nil
	case DeleteCommand:
		removed, err := t.tasks.Delete(c.Index)
		if err != nil {
			return Result{}, err
		}
		return deletedResult(removed, t.tasks.Len()), nil
	case TodoCommand:
		td, err := task.NewToDo(c.Description)
		if err != nil {
			return Result{}, err
		}
		return t.add(td), nil
	case DeadlineCommand:
		d, err := task.NewDeadline(c.Description, c.By)
		if err != nil {
			return Result{}, err
		}
		return t.add(d), nil
	case EventCommand:
		e, err := task.NewEvent(c.Description, c.At)
		if err != nil {
			return Result{}, err
		}
		return t.add(e), nil
	case FindCommand:
		return findResult(t.tasks.Find(c.Keyword)), nil
	default:
		return Result{}, task.ErrUnknownCommand
	}
}

// Save writes the current task list to storage.
func (t *Tracker) Save(ctx context.Context) error {
	if err := t.storage.Save(ctx, t.tasks.Tasks()); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func (t *Tracker) add(tk task.Task) Result {
	n := t.tasks.Add(tk)
	return addedResult(tk, n)
}

func (t *Tracker) bye(ctx context.Context) (Result, error) {
	res := byeResult()
	if err := t.Save(ctx); err != nil {
		t.log.Error().Ctx(ctx).Err(err).Msg("failed to save tasks on exit")
		return res, err
	}
	return res, nil
}

// record appends the dispatched line to history. Failures are logged only.
func (t *Tracker) record(ctx context.Context, name, args string, err error) {
	if t.history == nil {
		return
	}

	entry := history.Entry{
		ID:        uuid.NewString(),
		SessionID: t.sessionID,
		Command:   name,
		Args:      args,
		Timestamp: time.Now(),
	}
	if err != nil {
		entry.ExitCode = 1
		entry.Error = err.Error()
	}

	if herr := t.history.Save(ctx, entry, t.maxHistory); herr != nil {
		t.log.Warn().Ctx(ctx).Err(herr).Msg("failed to record history")
	}
}
