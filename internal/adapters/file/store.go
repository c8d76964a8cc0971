// Package file provides a ScoreStore backed by the local filesystem. Each
// score is kept as one JSON document, which keeps the library usable without
// a Redis dependency.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/descant"
)

// Store implements ports.ScoreStore using the local filesystem.
// It stores scores as JSON files in a configured directory.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".descant/scores".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".descant", "scores")
	}
	return &Store{BasePath: basePath}
}

// Save persists the score to a JSON file atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it
// to the destination.
func (s *Store) Save(ctx context.Context, score *descant.Score) error {
	if score == nil || score.ID == "" {
		return fmt.Errorf("score ID cannot be empty")
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure score directory: %w", err)
	}

	destPath := filepath.Join(s.BasePath, score.ID+".json")

	data, err := json.MarshalIndent(score, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal score: %w", err)
	}

	// Same directory keeps the temp file on the same filesystem, which the
	// atomic rename requires.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+score.ID+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // Remove if still exists (not renamed)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}

	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists, so remove it first. The
	// small delete-then-rename window beats leaving a partial file behind.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing score file for overwrite: %w", err)
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file to score file: %w", err)
	}

	return nil
}

// Load retrieves the score from a JSON file.
func (s *Store) Load(ctx context.Context, id string) (*descant.Score, error) {
	if id == "" {
		return nil, fmt.Errorf("score ID cannot be empty")
	}

	filePath := filepath.Join(s.BasePath, id+".json")

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, descant.ErrScoreNotFound
		}
		return nil, fmt.Errorf("failed to read score file: %w", err)
	}

	var score descant.Score
	if err := json.Unmarshal(data, &score); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score: %w", err)
	}

	return &score, nil
}

// Delete removes the score file.
func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("score ID cannot be empty")
	}

	filePath := filepath.Join(s.BasePath, id+".json")

	err := os.Remove(filePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete score file: %w", err)
	}

	return nil
}

// List returns all stored score IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if strings.HasPrefix(entry.Name(), "tmp-") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), ".json"))
	}

	return ids, nil
}
