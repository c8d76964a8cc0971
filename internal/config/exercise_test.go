package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/descant/internal/config"
	"github.com/aretw0/descant/pkg/theory"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "exercises.yaml", `
exercises:
  - name: opening-drill
    cantus: "c4 d4 e4 d4 c4"
    root: c
    mode: ionian
    direction: above
    seed: 42
  - cantus: "d4 e4 d4"
    root: d
    mode: dorian
    direction: below
    budget: 5000
`)

	exercises, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, exercises, 2)

	assert.Equal(t, "opening-drill", exercises[0].Name)
	require.NotNil(t, exercises[0].Seed)
	assert.Equal(t, int64(42), *exercises[0].Seed)

	// Unnamed exercises get a positional name.
	assert.Equal(t, "exercise-2", exercises[1].Name)
	assert.Equal(t, 5000, exercises[1].Budget)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "exercises.json", `{
  "exercises": [
    {"name": "one", "cantus": "c4 d4 c4", "root": "c", "mode": "ionian", "direction": "above"}
  ]
}`)

	exercises, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "one", exercises[0].Name)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty exercises", func(t *testing.T) {
		path := writeFile(t, "empty.yaml", "exercises: []\n")
		_, err := config.Load(path)
		assert.ErrorContains(t, err, "no exercises")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "exercises: [unclosed\n")
		_, err := config.Load(path)
		assert.Error(t, err)
	})
}

func TestResolve(t *testing.T) {
	ex := config.Exercise{
		Name:      "resolve-me",
		Cantus:    "e4 d4 c4",
		Root:      "c",
		Mode:      "harmonic minor",
		Direction: "below",
	}

	resolved, err := ex.Resolve()
	require.NoError(t, err)
	assert.Len(t, resolved.Cantus, 3)
	assert.Equal(t, theory.HarmonicMinor, resolved.Scale.Mode)
	assert.Equal(t, theory.Below, resolved.Direction)
}

func TestResolve_Errors(t *testing.T) {
	cases := []struct {
		name string
		ex   config.Exercise
	}{
		{"bad cantus", config.Exercise{Cantus: "c4 q9", Root: "c", Mode: "ionian", Direction: "above"}},
		{"empty cantus", config.Exercise{Cantus: "", Root: "c", Mode: "ionian", Direction: "above"}},
		{"bad root", config.Exercise{Cantus: "c4", Root: "x", Mode: "ionian", Direction: "above"}},
		{"bad mode", config.Exercise{Cantus: "c4", Root: "c", Mode: "nope", Direction: "above"}},
		{"bad direction", config.Exercise{Cantus: "c4", Root: "c", Mode: "ionian", Direction: "up"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.ex.Resolve()
			assert.Error(t, err)
		})
	}
}
