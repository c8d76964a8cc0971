package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/descant"
	"github.com/aretw0/descant/internal/adapters/file"
	"github.com/aretw0/descant/pkg/ports"
)

// Ensure Store implements ScoreStore
var _ ports.ScoreStore = (*file.Store)(nil)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunScoreStoreContract(t, store)
}

func TestFileStore_OnDisk(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	score := &descant.Score{
		ID:           "on-disk",
		Root:         "D",
		Mode:         "dorian",
		Direction:    "below",
		Cantus:       []string{"D4", "E4", "D4"},
		Counterpoint: []string{"D3", "C4", "D3"},
		Steps:        5,
	}
	require.NoError(t, store.Save(ctx, score))

	// The score lands as a JSON file named after its ID.
	path := filepath.Join(dir, "on-disk.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"dorian"`)

	require.NoError(t, store.Delete(ctx, "on-disk"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_ListIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	for _, id := range []string{"s1", "s2"} {
		require.NoError(t, store.Save(ctx, &descant.Score{ID: id, Cantus: []string{"C4"}, Counterpoint: []string{"G4"}}))
	}

	// Non-JSON files and leftover temp files must not show up.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "garbage.txt"), []byte("garbage"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp-s3-123.json"), []byte("{}"), 0644))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"s1", "s2"}, ids)
}

func TestFileStore_DefaultBasePath(t *testing.T) {
	store := file.New("")
	assert.Equal(t, filepath.Join(".descant", "scores"), store.BasePath)
}
