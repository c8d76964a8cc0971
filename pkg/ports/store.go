// Package ports defines the driven-side contracts of descant: interfaces
// that storage adapters implement so the CLI and HTTP surfaces can persist
// generated scores without caring where they live.
package ports

import (
	"context"

	"github.com/aretw0/descant"
)

// ScoreStore defines the interface for persisting generated scores.
type ScoreStore interface {
	// Save persists the score under its ID.
	Save(ctx context.Context, score *descant.Score) error

	// Load retrieves a score by ID.
	// Returns descant.ErrScoreNotFound if the score does not exist.
	Load(ctx context.Context, id string) (*descant.Score, error)

	// Delete removes a score by ID. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored scores.
	List(ctx context.Context) ([]string, error)
}
