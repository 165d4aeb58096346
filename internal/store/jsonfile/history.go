// Package jsonfile implements stores backed by JSON files.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/colonyops/blob/internal/core/history"
)

// HistoryFile is the root JSON structure stored on disk.
type HistoryFile struct {
	Entries []history.Entry `json:"entries"`
}

// HistoryStore implements history.Store using a JSON file for persistence.
// Entries are kept newest first.
type HistoryStore struct {
	path string
	mu   sync.RWMutex
}

var _ history.Store = (*HistoryStore)(nil)

// NewHistoryStore creates a new JSON file history store at the given path.
func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

// List returns all history entries, newest first.
func (s *HistoryStore) List(ctx context.Context) ([]history.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.read()
	if err != nil {
		return nil, err
	}
	return file.Entries, nil
}

// LastFailed returns the most recent rejected command or history.ErrNotFound.
func (s *HistoryStore) LastFailed(ctx context.Context) (history.Entry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return history.Entry{}, err
	}

	for _, entry := range entries {
		if entry.Failed() {
			return entry, nil
		}
	}
	return history.Entry{}, history.ErrNotFound
}

// Save prepends entry and drops the oldest entries beyond maxEntries.
func (s *HistoryStore) Save(ctx context.Context, entry history.Entry, maxEntries int) error {
	return s.update(func(file *HistoryFile) {
		file.Entries = append([]history.Entry{entry}, file.Entries...)
		if maxEntries > 0 && len(file.Entries) > maxEntries {
			file.Entries = file.Entries[:maxEntries]
		}
	})
}

// Clear removes all history entries.
func (s *HistoryStore) Clear(ctx context.Context) error {
	return s.update(func(file *HistoryFile) {
		file.Entries = []history.Entry{}
	})
}

func (s *HistoryStore) update(fn func(file *HistoryFile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}
	fn(&file)
	return s.write(file)
}

// read returns an empty HistoryFile when the file is missing or empty.
func (s *HistoryStore) read() (HistoryFile, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return HistoryFile{}, nil
	}
	if err != nil {
		return HistoryFile{}, fmt.Errorf("read history: %w", err)
	}
	if len(data) == 0 {
		return HistoryFile{}, nil
	}

	var file HistoryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return HistoryFile{}, fmt.Errorf("decode history %s: %w", s.path, err)
	}
	return file, nil
}

func (s *HistoryStore) write(file HistoryFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}
