// Package repl runs the interactive read, dispatch, present loop.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/colonyops/blob/internal/core/task"
	"github.com/colonyops/blob/internal/tracker"
	"github.com/rs/zerolog"
)

// Loop drives one session until bye, end of input, or a read or save failure.
type Loop struct {
	Tracker   *tracker.Tracker
	Presenter Presenter
	In        io.Reader
	Out       io.Writer
	Prompt    string
	Log       zerolog.Logger
}

// Run greets the user and processes input line by line. It returns nil after
// a successful bye. End of input is treated as bye so piped sessions are
// saved, and a failed read saves before returning the error. Rejected
// commands are presented and the loop continues.
func (l *Loop) Run(ctx context.Context) error {
	ctx = l.Tracker.Context(ctx)
	l.Log.Info().Ctx(ctx).Int("tasks", l.Tracker.Tasks().Len()).Msg("session started")

	l.Presenter.Present(tracker.Greeting().Messages)

	// Lines have no length limit; a bufio.Scanner would fail on long input.
	reader := bufio.NewReader(l.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, _ = fmt.Fprint(l.Out, l.Prompt)

		line, err := reader.ReadString('\n')
		switch {
		case err == nil:
		case errors.Is(err, io.EOF) && line != "":
			// Unterminated final line; the next read reports EOF.
		case errors.Is(err, io.EOF):
			_, _ = fmt.Fprintln(l.Out)
			l.Log.Debug().Ctx(ctx).Msg("end of input, ending session")
			line = "bye"
		default:
			return l.abort(ctx, fmt.Errorf("read input: %w", err))
		}
		line = strings.TrimRight(line, "\r\n")

		res, err := l.Tracker.Dispatch(ctx, line)
		if err != nil {
			if te, ok := task.AsError(err); ok {
				l.Presenter.PresentError(te)
				continue
			}

			if len(res.Messages) > 0 {
				l.Presenter.Present(res.Messages)
			}
			l.Presenter.PresentError(err)
			return err
		}

		l.Presenter.Present(res.Messages)
		if res.Exit {
			l.Log.Info().Ctx(ctx).Int("tasks", l.Tracker.Tasks().Len()).Msg("session ended")
			return nil
		}
	}
}

// abort saves the task list before ending the session on a read failure so
// work from earlier lines is kept.
func (l *Loop) abort(ctx context.Context, cause error) error {
	l.Log.Error().Ctx(ctx).Err(cause).Msg("session input failed")
	l.Presenter.PresentError(cause)

	if err := l.Tracker.Save(ctx); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}
