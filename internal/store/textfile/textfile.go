// Package textfile persists tasks as pipe-delimited lines in a flat text file.
package textfile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/colonyops/blob/internal/core/task"
	"github.com/rs/zerolog"
)

// ErrMalformedRecord is returned by ParseRecord for lines that do not describe a task.
var ErrMalformedRecord = errors.New("malformed task record")

// fieldSep requires whitespace on both sides so a bare "|" can appear in a
// description.
var fieldSep = regexp.MustCompile(`\s+\|\s+`)

// Store reads and writes the task file at a fixed path.
type Store struct {
	path string
	log  zerolog.Logger
}

// New creates a Store for the file at path.
func New(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Path returns the location of the task file.
func (s *Store) Path() string {
	return s.path
}

// Load reads all tasks from disk. The parent directory and an empty file
// are created when missing. Blank lines are ignored and malformed records
// are skipped with a warning; any I/O error is returned.
func (s *Store) Load(ctx context.Context) ([]task.Task, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open task file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var (
		tasks   []task.Task
		lineNum int
		skipped int
	)

	// Records have no length limit, so read whole lines rather than scan tokens.
	r := bufio.NewReader(f)
	for {
		raw, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read task file: %w", err)
		}

		if raw != "" {
			lineNum++
		}

		if line := strings.TrimSpace(raw); line != "" {
			t, perr := ParseRecord(line)
			if perr != nil {
				skipped++
				s.log.Warn().Ctx(ctx).Err(perr).Int("line", lineNum).Str("record", line).Msg("skipping task record")
			} else {
				tasks = append(tasks, t)
			}
		}

		if err != nil {
			break
		}
	}

	s.log.Debug().Ctx(ctx).
		Str("path", s.path).
		Int("tasks", len(tasks)).
		Int("skipped", skipped).
		Msg("loaded tasks")

	return tasks, nil
}

// Save replaces the task file with one record per task, in order.
func (s *Store) Save(ctx context.Context, tasks []task.Task) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	var buf bytes.Buffer
	for _, t := range tasks {
		buf.WriteString(t.Record())
		buf.WriteByte('\n')
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace task file: %w", err)
	}

	s.log.Debug().Ctx(ctx).Str("path", s.path).Int("tasks", len(tasks)).Msg("saved tasks")
	return nil
}

// ParseRecord rebuilds a task from one line of the task file.
func ParseRecord(line string) (task.Task, error) {
	fields := fieldSep.Split(strings.TrimSpace(line), -1)
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: expected at least 3 fields, got %d", ErrMalformedRecord, len(fields))
	}

	kind, ok := task.ParseKind(fields[0])
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrMalformedRecord, fields[0])
	}

	want := 4
	if kind == task.KindToDo {
		want = 3
	}
	if len(fields) != want {
		return nil, fmt.Errorf("%w: %s record needs %d fields, got %d", ErrMalformedRecord, kind, want, len(fields))
	}

	var (
		t   task.Task
		err error
	)
	switch kind {
	case task.KindToDo:
		t, err = task.NewToDo(fields[2])
	case task.KindDeadline:
		t, err = task.NewDeadline(fields[2], fields[3])
	case task.KindEvent:
		t, err = task.NewEvent(fields[2], fields[3])
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	if fields[1] == "1" {
		t.MarkDone()
	}
	return t, nil
}
