package ports

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/descant"
)

// RunScoreStoreContract verifies that a ScoreStore implementation honors the
// interface semantics. Every adapter should invoke this from its own tests.
func RunScoreStoreContract(t *testing.T, store ScoreStore) {
	ctx := context.Background()

	newScore := func(id string) *descant.Score {
		return &descant.Score{
			ID:           id,
			CreatedAt:    time.Now().UTC().Truncate(time.Second),
			Root:         "C",
			Mode:         "ionian",
			Direction:    "above",
			Cantus:       []string{"C4", "D4", "C4"},
			Counterpoint: []string{"G4", "B4", "C5"},
			Steps:        3,
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		id := fmt.Sprintf("contract-save-%s", time.Now().Format("20060102150405.000"))
		score := newScore(id)

		require.NoError(t, store.Save(ctx, score))

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, score.ID, loaded.ID)
		assert.Equal(t, score.Root, loaded.Root)
		assert.Equal(t, score.Mode, loaded.Mode)
		assert.Equal(t, score.Direction, loaded.Direction)
		assert.Equal(t, score.Cantus, loaded.Cantus)
		assert.Equal(t, score.Counterpoint, loaded.Counterpoint)
		assert.Equal(t, score.Steps, loaded.Steps)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "contract-no-such-score")
		assert.ErrorIs(t, err, descant.ErrScoreNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		id := fmt.Sprintf("contract-overwrite-%s", time.Now().Format("20060102150405.000"))
		first := newScore(id)
		require.NoError(t, store.Save(ctx, first))

		second := newScore(id)
		second.Counterpoint = []string{"E4", "F4", "E4"}
		require.NoError(t, store.Save(ctx, second))

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, second.Counterpoint, loaded.Counterpoint)
	})

	t.Run("Delete", func(t *testing.T) {
		id := fmt.Sprintf("contract-delete-%s", time.Now().Format("20060102150405.000"))
		require.NoError(t, store.Save(ctx, newScore(id)))
		require.NoError(t, store.Delete(ctx, id))

		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, descant.ErrScoreNotFound)

		// Deleting again must not fail.
		assert.NoError(t, store.Delete(ctx, id))
	})

	t.Run("List", func(t *testing.T) {
		id := fmt.Sprintf("contract-list-%s", time.Now().Format("20060102150405.000"))
		require.NoError(t, store.Save(ctx, newScore(id)))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id)
	})
}
