package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/blob/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "blob config validate [options]",
				Description: "Checks the configuration values and that the data directory and task file are usable.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationIssue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	issues := cmd.issues(cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath))

	if cmd.format == "json" {
		err := iojson.Write(c.Root().Writer, struct {
			Valid  bool              `json:"valid"`
			Config string            `json:"config"`
			Errors []validationIssue `json:"errors,omitempty"`
		}{
			Valid:  len(issues) == 0,
			Config: cmd.flags.ConfigPath,
			Errors: issues,
		})
		if err != nil {
			return err
		}
		if len(issues) > 0 {
			return cli.Exit("", 1)
		}
		return nil
	}

	out := c.Root().Writer
	if len(issues) == 0 {
		_, _ = fmt.Fprintln(out, "Configuration is valid")
		return nil
	}

	for _, issue := range issues {
		if issue.Field != "" {
			_, _ = fmt.Fprintf(out, "%s: %s\n", issue.Field, issue.Message)
		} else {
			_, _ = fmt.Fprintln(out, issue.Message)
		}
	}
	return cli.Exit(fmt.Sprintf("%d error(s) found", len(issues)), 1)
}

func (cmd *ConfigValidateCmd) issues(err error) []validationIssue {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []validationIssue{{Message: err.Error()}}
	}

	issues := make([]validationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return issues
}
