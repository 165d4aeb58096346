package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/blob/internal/core/config"
	"github.com/colonyops/blob/internal/core/history"
)

type testApp struct {
	flags  *Flags
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dataDir := t.TempDir()
	cfg, err := config.Load("", dataDir)
	require.NoError(t, err)

	return &testApp{flags: &Flags{DataDir: dataDir, Config: cfg}}
}

// run executes args against a root command wired like main, minus the
// Before hook that loads config from disk.
func (a *testApp) run(t *testing.T, stdin string, args ...string) error {
	t.Helper()
	a.stdout.Reset()
	a.stderr.Reset()

	replCmd := NewReplCmd(a.flags)
	app := &cli.Command{
		Name:           "blob",
		Reader:         strings.NewReader(stdin),
		Writer:         &a.stdout,
		ErrWriter:      &a.stderr,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Flags:          replCmd.Flags(),
		Action:         replCmd.Run,
	}
	app = NewLsCmd(a.flags).Register(app)
	app = NewHistoryCmd(a.flags).Register(app)
	app = NewConfigValidateCmd(a.flags).Register(app)

	return app.Run(context.Background(), append([]string{"blob"}, args...))
}

func TestReplCmd_PersistsTasks(t *testing.T) {
	a := newTestApp(t)

	err := a.run(t, "todo read book\nevent party /at 2024-12-31\nmark 2\nbye\n")
	require.NoError(t, err)
	assert.Contains(t, a.stdout.String(), "Hello! I'm Blob.")
	assert.Contains(t, a.stdout.String(), "Bye. Hope to see you again soon!")

	data, err := os.ReadFile(a.flags.Config.TasksPath())
	require.NoError(t, err)
	assert.Equal(t, "T | 0 | read book\nE | 1 | party | 2024-12-31\n", string(data))
}

func TestLsCmd(t *testing.T) {
	a := newTestApp(t)

	require.NoError(t, a.run(t, "", "ls"))
	assert.Empty(t, a.stdout.String())
	assert.Contains(t, a.stderr.String(), "No tasks found")

	require.NoError(t, a.run(t, "todo read book\ndeadline submit report /by 2024-12-02\nmark 1\n"))

	require.NoError(t, a.run(t, "", "ls"))
	assert.Equal(t, "1. [T][✓] read book\n2. [D][ ] submit report (by: 2 Dec 2024)\n", a.stdout.String())

	require.NoError(t, a.run(t, "", "ls", "--json"))
	lines := strings.Split(strings.TrimSpace(a.stdout.String()), "\n")
	require.Len(t, lines, 2)

	var first, second taskInfo
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, taskInfo{Index: 1, Kind: "todo", Done: true, Description: "read book"}, first)
	assert.Equal(t, taskInfo{Index: 2, Kind: "deadline", Description: "submit report", Date: "2024-12-02"}, second)
}

func TestHistoryCmd(t *testing.T) {
	a := newTestApp(t)

	require.NoError(t, a.run(t, "", "history"))
	assert.Contains(t, a.stderr.String(), "No history found")

	require.NoError(t, a.run(t, "todo read book\ndance\nmark 7\nlist\nbye\n"))

	require.NoError(t, a.run(t, "", "history"))
	out := a.stdout.String()
	assert.Contains(t, out, "TIME")
	assert.Contains(t, out, "todo read book")
	assert.Contains(t, out, "mark 7")

	require.NoError(t, a.run(t, "", "history", "--failed", "--json"))
	lines := strings.Split(strings.TrimSpace(a.stdout.String()), "\n")
	require.Len(t, lines, 2)

	var newest history.Entry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &newest))
	assert.Equal(t, "mark", newest.Command)
	assert.Equal(t, "7", newest.Args)
	assert.True(t, newest.Failed())

	require.NoError(t, a.run(t, "", "history", "--last-failed", "--json"))
	lines = strings.Split(strings.TrimSpace(a.stdout.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"command":"mark"`)

	require.NoError(t, a.run(t, "", "history", "clear"))
	assert.Contains(t, a.stdout.String(), "History cleared")

	require.NoError(t, a.run(t, "", "history", "--json"))
	assert.Empty(t, a.stdout.String())
}

func TestHistoryCmd_Disabled(t *testing.T) {
	a := newTestApp(t)
	disabled := false
	a.flags.Config.History.Enabled = &disabled

	require.NoError(t, a.run(t, "todo x\nbye\n"))

	_, err := os.Stat(a.flags.Config.HistoryFile())
	assert.True(t, os.IsNotExist(err))
}

func TestConfigValidateCmd(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		a := newTestApp(t)
		require.NoError(t, a.run(t, "", "config", "validate"))
		assert.Contains(t, a.stdout.String(), "Configuration is valid")
	})

	t.Run("task file is a directory", func(t *testing.T) {
		a := newTestApp(t)
		require.NoError(t, os.MkdirAll(filepath.Join(a.flags.DataDir, "tasks.txt"), 0o755))

		err := a.run(t, "", "config", "validate", "--format", "json")
		require.Error(t, err)

		var result struct {
			Valid  bool              `json:"valid"`
			Errors []validationIssue `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(a.stdout.Bytes(), &result))
		assert.False(t, result.Valid)
		require.NotEmpty(t, result.Errors)
		assert.Equal(t, "tasks_file", result.Errors[0].Field)
	})

	t.Run("session refuses invalid paths", func(t *testing.T) {
		a := newTestApp(t)
		require.NoError(t, os.MkdirAll(filepath.Join(a.flags.DataDir, "tasks.txt"), 0o755))

		err := a.run(t, "bye\n")
		assert.ErrorContains(t, err, "invalid config")
	})
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	assert.Equal(t, "/xdg/config/blob/config.yaml", DefaultConfigPath())
	assert.Equal(t, "/xdg/data/blob", DefaultDataDir())
}
