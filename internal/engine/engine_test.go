package engine

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/descant/pkg/notation"
	"github.com/aretw0/descant/pkg/theory"
)

func mustParse(t *testing.T, input string) []theory.Pitch {
	t.Helper()
	pitches, err := notation.Parse(input)
	require.NoError(t, err, "bad fixture %q", input)
	return pitches
}

func cMajor() theory.Scale {
	return theory.NewScale(theory.NewNote(theory.C, theory.Natural), theory.Ionian)
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// assertValid checks every structural invariant a successful result must
// hold, without pinning exact pitches (exploration order is random).
func assertValid(t *testing.T, cantus, line []theory.Pitch, scale theory.Scale) {
	t.Helper()

	require.Len(t, line, len(cantus))

	for i, p := range line {
		assert.True(t, scale.ContainsPitch(p), "position %d: %v not in %v", i, p, scale)
	}

	// Boundary consonances.
	opening := theory.Between(line[0], cantus[0])
	assert.Contains(t, []theory.Interval{theory.Unison, theory.PerfectFifth}, opening,
		"opening interval %v", opening)
	closing := theory.Between(line[len(line)-1], cantus[len(cantus)-1])
	assert.Equal(t, theory.Unison, closing, "closing interval %v", closing)

	thirdRun, sixthRun := 0, 0
	for i := range line {
		vertical := theory.Between(line[i], cantus[i])

		if i > 0 {
			// Melodic leap bounds.
			leap := line[i].Semitones() - line[i-1].Semitones()
			if leap < 0 {
				leap = -leap
			}
			assert.LessOrEqual(t, leap, 12, "leap at %d", i)
			assert.NotEqual(t, 6, leap, "tritone leap at %d", i)

			// No same-direction motion into perfect consonances.
			if vertical.IsPerfect() {
				motion := line[i].Semitones() - line[i-1].Semitones()
				cantusMotion := cantus[i].Semitones() - cantus[i-1].Semitones()
				assert.False(t, (motion >= 0) == (cantusMotion >= 0),
					"direct %v at position %d", vertical, i)
			}
		}

		// Parallel run bound.
		if vertical.IsThird() {
			thirdRun++
		} else {
			thirdRun = 0
		}
		if vertical.IsSixth() {
			sixthRun++
		} else {
			sixthRun = 0
		}
		assert.LessOrEqual(t, thirdRun, 3, "run of thirds ending at %d", i)
		assert.LessOrEqual(t, sixthRun, 3, "run of sixths ending at %d", i)
	}
}

func TestGenerateAbove(t *testing.T) {
	cantus := mustParse(t, "c4 d4 e4 d4 c4")
	eng := New(WithRand(seeded(1)))

	line, stats, err := eng.Generate(context.Background(), cantus, cMajor(), theory.Above)
	require.NoError(t, err)
	assertValid(t, cantus, line, cMajor())
	assert.Positive(t, stats.Steps)

	// The voice stays on its side of the cantus.
	for i := range line {
		assert.GreaterOrEqual(t, line[i].Semitones(), cantus[i].Semitones(), "position %d", i)
	}
}

func TestGenerateBelow(t *testing.T) {
	cantus := mustParse(t, "e4 d4 f4 e4 d4 c4 d4 e4")
	eng := New(WithRand(seeded(7)))

	line, _, err := eng.Generate(context.Background(), cantus, cMajor(), theory.Below)
	require.NoError(t, err)
	assertValid(t, cantus, line, cMajor())

	for i := range line {
		assert.LessOrEqual(t, line[i].Semitones(), cantus[i].Semitones(), "position %d", i)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	cantus := mustParse(t, "c4 d4 e4 d4 c4")

	first, _, err := New(WithRand(seeded(42))).Generate(context.Background(), cantus, cMajor(), theory.Above)
	require.NoError(t, err)
	second, _, err := New(WithRand(seeded(42))).Generate(context.Background(), cantus, cMajor(), theory.Above)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same seed must reproduce the same line")
}

func TestGenerateSingleNoteCantus(t *testing.T) {
	// Opening and closing constraints coincide: the only lawful pitches
	// are the unison and the octave.
	cantus := mustParse(t, "c4")
	eng := New(WithRand(seeded(3)))

	line, _, err := eng.Generate(context.Background(), cantus, cMajor(), theory.Below)
	require.NoError(t, err)
	require.Len(t, line, 1)
	assert.Equal(t, theory.Unison, theory.Between(line[0], cantus[0]))
	assert.LessOrEqual(t, line[0].Semitones(), cantus[0].Semitones())
}

func TestGenerateNoSolution(t *testing.T) {
	// No opening candidate for F#4 lands in C major, so the search must
	// report failure without recursing at all.
	cantus := mustParse(t, "f#4 g#4 f#4")
	eng := New(WithRand(seeded(5)))

	line, stats, err := eng.Generate(context.Background(), cantus, cMajor(), theory.Above)
	assert.ErrorIs(t, err, ErrNoSolution)
	assert.Nil(t, line)
	assert.Zero(t, stats.Steps, "no candidates should have been explored")
}

func TestGenerateEmptyCantus(t *testing.T) {
	eng := New()
	_, _, err := eng.Generate(context.Background(), nil, cMajor(), theory.Above)
	assert.ErrorIs(t, err, ErrEmptyCantus)
}

func TestGenerateBudgetExhausted(t *testing.T) {
	cantus := mustParse(t, "c4 d4 e4 d4 c4")
	eng := New(WithRand(seeded(1)), WithStepBudget(1))

	_, stats, err := eng.Generate(context.Background(), cantus, cMajor(), theory.Above)
	require.ErrorIs(t, err, ErrBudgetExhausted)
	assert.NotErrorIs(t, err, ErrNoSolution, "budget exhaustion is not a no-solution proof")
	assert.Equal(t, 1, stats.Steps)
}

func TestGenerateCancelled(t *testing.T) {
	cantus := mustParse(t, "c4 d4 e4 d4 c4")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := New(WithRand(seeded(1))).Generate(ctx, cantus, cMajor(), theory.Above)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateLeapRecoveryAfterCantusLeap(t *testing.T) {
	// The counterpoint may leap; whenever it does, the next motion must be
	// a contrary step. Run several seeds and inspect every produced leap.
	cantus := mustParse(t, "c4 e4 d4 g4 e4 d4 c4")

	for seed := int64(0); seed < 8; seed++ {
		line, _, err := New(WithRand(seeded(seed))).Generate(context.Background(), cantus, cMajor(), theory.Above)
		if err != nil {
			continue
		}
		assertValid(t, cantus, line, cMajor())

		for i := 2; i < len(line); i++ {
			last := line[i-1].Semitones() - line[i-2].Semitones()
			if last > 4 || last < -4 {
				motion := line[i].Semitones() - line[i-1].Semitones()
				assert.LessOrEqual(t, abs(motion), 2, "seed %d: leap at %d not answered by a step", seed, i)
				assert.False(t, (motion >= 0) == (last >= 0), "seed %d: leap at %d answered in the same direction", seed, i)
			}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
