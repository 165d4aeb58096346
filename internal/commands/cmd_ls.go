package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/blob/internal/core/logging"
	"github.com/colonyops/blob/internal/core/task"
	"github.com/colonyops/blob/internal/store/textfile"
	"github.com/colonyops/blob/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List saved tasks",
		UsageText: "blob ls [--json]",
		Description: `Prints the saved task list without starting a session.

Use --json for one JSON object per task, in list order.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// taskInfo is the JSON output format for blob ls --json.
type taskInfo struct {
	Index       int    `json:"index"`
	Kind        string `json:"kind"`
	Done        bool   `json:"done"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	store := textfile.New(cmd.flags.Config.TasksPath(), logging.Component("textfile"))

	tasks, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for i, t := range tasks {
			info := taskInfo{
				Index:       i + 1,
				Kind:        t.Kind().String(),
				Done:        t.Done(),
				Description: t.Description(),
			}
			if d, ok := task.Date(t); ok {
				info.Date = task.FormatRecordDate(d)
			}
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode task: %w", err)
			}
		}
		return nil
	}

	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, "No tasks found")
		return nil
	}

	for i, t := range tasks {
		_, _ = fmt.Fprintf(out, "%d. %s\n", i+1, t.Display())
	}
	return nil
}
