package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/blob/internal/core/history"
	"github.com/colonyops/blob/internal/core/logging"
	"github.com/colonyops/blob/internal/repl"
	"github.com/colonyops/blob/internal/store/jsonfile"
	"github.com/colonyops/blob/internal/store/textfile"
	"github.com/colonyops/blob/internal/tracker"
)

type ReplCmd struct {
	flags *Flags
}

// NewReplCmd creates the interactive session command
func NewReplCmd(flags *Flags) *ReplCmd {
	return &ReplCmd{flags: flags}
}

// Flags returns the session flags for registration on the root command
func (cmd *ReplCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "plain",
			Usage:       "disable colors and borders in session output",
			Sources:     cli.EnvVars("BLOB_PLAIN"),
			Destination: &cmd.flags.Plain,
		},
	}
}

// Run starts an interactive session. Exported for use as default command.
func (cmd *ReplCmd) Run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	if err := cfg.ValidateDeep(cmd.flags.ConfigPath); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// An untyped nil keeps history disabled; a nil *HistoryStore would not be.
	var hist history.Store
	if cfg.History.IsEnabled() {
		hist = jsonfile.NewHistoryStore(cfg.HistoryFile())
	}

	tr, err := tracker.Open(ctx, tracker.Options{
		Storage:    textfile.New(cfg.TasksPath(), logging.Component("textfile")),
		History:    hist,
		MaxHistory: cfg.History.MaxEntries,
		Logger:     logging.Component("tracker"),
	})
	if err != nil {
		return err
	}

	root := c.Root()
	plain := cfg.Plain || cmd.flags.Plain || !isTerminal(root.Writer)

	loop := &repl.Loop{
		Tracker:   tr,
		Presenter: repl.NewPresenter(root.Writer, cfg.Palette(), plain),
		In:        root.Reader,
		Out:       root.Writer,
		Prompt:    cfg.Prompt,
		Log:       logging.Component("repl"),
	}

	if err := loop.Run(ctx); err != nil {
		log.Error().Err(err).Msg("session ended with error")
		return err
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
