// Package persistence contains file-backed adapters for secondary ports.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/example/stride/internal/ports/secondary"
)

// StateFile is the filename of the canonical JSON state blob.
const StateFile = "state.json"

// FileStore implements secondary.StateStore with a single JSON blob on disk.
// This is the canonical persisted encoding:
//
//	{ currentDate, stepsToday, waterToday, waterGoalMl, history, baselineStepCount }
type FileStore struct {
	path string
	mu   sync.RWMutex
}

// NewFileStore creates a file-backed state store under dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, StateFile)}
}

// Load reads and decodes the state blob. A missing file means fresh install;
// an undecodable file is reported as an error so the caller can fall back to
// a fresh state.
func (s *FileStore) Load(ctx context.Context) (*secondary.StateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, secondary.ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var record secondary.StateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	return &record, nil
}

// Save writes the full state blob, creating the directory if needed.
func (s *FileStore) Save(ctx context.Context, state *secondary.StateRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}
