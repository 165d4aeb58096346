package commands

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/blob/internal/core/history"
	"github.com/colonyops/blob/internal/store/jsonfile"
	"github.com/colonyops/blob/pkg/iojson"
)

type HistoryCmd struct {
	flags *Flags

	// flags
	failedOnly bool
	lastFailed bool
	jsonOutput bool
}

// NewHistoryCmd creates a new history command
func NewHistoryCmd(flags *Flags) *HistoryCmd {
	return &HistoryCmd{flags: flags}
}

// Register adds the history command to the application
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "history",
		Usage:     "Show commands typed in past sessions",
		UsageText: "blob history [--failed | --last-failed] [--json]",
		Description: `Lists recorded session commands, newest first.

Use --failed to show only rejected commands, or --last-failed for the most
recent one. Recording is controlled by history.enabled in the config file.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "failed",
				Usage:       "only show rejected commands",
				Destination: &cmd.failedOnly,
			},
			&cli.BoolFlag{
				Name:        "last-failed",
				Usage:       "only show the most recent rejected command",
				Destination: &cmd.lastFailed,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
		Commands: []*cli.Command{
			{
				Name:      "clear",
				Usage:     "Delete all recorded commands",
				UsageText: "blob history clear",
				Action:    cmd.clear,
			},
		},
	})

	return app
}

func (cmd *HistoryCmd) store() *jsonfile.HistoryStore {
	return jsonfile.NewHistoryStore(cmd.flags.Config.HistoryFile())
}

func (cmd *HistoryCmd) run(ctx context.Context, c *cli.Command) error {
	entries, err := cmd.entries(ctx)
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, e := range entries {
			if err := iojson.WriteLine(out, e); err != nil {
				return fmt.Errorf("encode history entry: %w", err)
			}
		}
		return nil
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, "No history found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TIME\tCOMMAND\tSTATUS")
	for _, e := range entries {
		line := e.Command
		if e.Args != "" {
			line += " " + e.Args
		}
		status := "ok"
		if e.Failed() {
			status = e.Error
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", e.Timestamp.Local().Format(time.DateTime), line, status)
	}
	return w.Flush()
}

func (cmd *HistoryCmd) entries(ctx context.Context) ([]history.Entry, error) {
	store := cmd.store()

	if cmd.lastFailed {
		e, err := store.LastFailed(ctx)
		if errors.Is(err, history.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read history: %w", err)
		}
		return []history.Entry{e}, nil
	}

	entries, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if !cmd.failedOnly {
		return entries, nil
	}

	failed := make([]history.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Failed() {
			failed = append(failed, e)
		}
	}
	return failed, nil
}

func (cmd *HistoryCmd) clear(ctx context.Context, c *cli.Command) error {
	if err := cmd.store().Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	_, _ = fmt.Fprintln(c.Root().Writer, "History cleared")
	return nil
}
