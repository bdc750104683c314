// Package store persists found matches: a JSON results file that is
// reloaded on startup and rewritten on every find, plus an optional
// Postgres table for long-running sessions.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"vanityseek/internal/worker"
)

// JSONStore keeps the full result set in a single JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the file at path. The file is
// created on first Save.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads previously saved matches. A missing file is an empty
// result set, not an error.
func (s *JSONStore) Load() ([]worker.Match, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading results file: %w", err)
	}

	var matches []worker.Match
	if err := json.Unmarshal(data, &matches); err != nil {
		return nil, fmt.Errorf("parsing results file: %w", err)
	}
	return matches, nil
}

// Save rewrites the results file with the full match set.
func (s *JSONStore) Save(matches []worker.Match) error {
	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing results file: %w", err)
	}
	return nil
}
