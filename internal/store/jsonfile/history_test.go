package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/colonyops/blob/internal/core/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty when file missing", func(t *testing.T) {
		s := NewHistoryStore(filepath.Join(t.TempDir(), "history.json"))

		entries, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)

		_, err = s.LastFailed(ctx)
		assert.ErrorIs(t, err, history.ErrNotFound)
	})

	t.Run("newest first with pruning", func(t *testing.T) {
		s := NewHistoryStore(filepath.Join(t.TempDir(), "nested", "history.json"))

		for i := range 5 {
			entry := history.Entry{
				ID:        fmt.Sprintf("e%d", i),
				Command:   "todo",
				Args:      fmt.Sprintf("task %d", i),
				Timestamp: time.Now(),
			}
			require.NoError(t, s.Save(ctx, entry, 3))
		}

		entries, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "e4", entries[0].ID)
		assert.Equal(t, "e2", entries[2].ID)
	})

	t.Run("last failed", func(t *testing.T) {
		s := NewHistoryStore(filepath.Join(t.TempDir(), "history.json"))

		require.NoError(t, s.Save(ctx, history.Entry{ID: "a", Command: "mark", ExitCode: 1, Error: "bad index"}, 0))
		require.NoError(t, s.Save(ctx, history.Entry{ID: "b", Command: "list"}, 0))

		entry, err := s.LastFailed(ctx)
		require.NoError(t, err)
		assert.Equal(t, "a", entry.ID)
		assert.True(t, entry.Failed())
	})

	t.Run("clear", func(t *testing.T) {
		s := NewHistoryStore(filepath.Join(t.TempDir(), "history.json"))
		require.NoError(t, s.Save(ctx, history.Entry{ID: "a"}, 0))
		require.NoError(t, s.Clear(ctx))

		entries, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := NewHistoryStore(path).List(ctx)
		assert.Error(t, err)
	})
}
