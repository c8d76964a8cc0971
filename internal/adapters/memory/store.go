// Package memory provides an in-memory ScoreStore, the default for the
// library and for tests.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/descant"
)

// Store implements ports.ScoreStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*descant.Score
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*descant.Score),
	}
}

func copyScore(score *descant.Score) *descant.Score {
	copied := *score
	copied.Cantus = append([]string(nil), score.Cantus...)
	copied.Counterpoint = append([]string(nil), score.Counterpoint...)
	return &copied
}

// Save persists the score in memory.
func (s *Store) Save(ctx context.Context, score *descant.Score) error {
	// Copy on write so the caller can't mutate stored state by pointer.
	copied := copyScore(score)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[score.ID] = copied
	return nil
}

// Load retrieves the score from memory.
func (s *Store) Load(ctx context.Context, id string) (*descant.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	score, ok := s.data[id]
	if !ok {
		return nil, descant.ErrScoreNotFound
	}

	return copyScore(score), nil
}

// Delete removes the score.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored score IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
