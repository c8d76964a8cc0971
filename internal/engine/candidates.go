package engine

import "github.com/aretw0/descant/pkg/theory"

// Candidate widths in semitones, applied away from the cantus in the run's
// direction. The interior set is the consonant vocabulary: fifth, thirds,
// sixths, octave, and the octave-extended thirds (tenths).
var (
	openingWidths = []int{
		theory.Unison.Semitones(),
		theory.PerfectFifth.Semitones(),
		theory.OctaveSemitones,
	}
	closingWidths = []int{
		theory.Unison.Semitones(),
		theory.OctaveSemitones,
	}
	interiorWidths = []int{
		theory.PerfectFifth.Semitones(),
		theory.MinorThird.Semitones(),
		theory.MajorThird.Semitones(),
		theory.MinorSixth.Semitones(),
		theory.MajorSixth.Semitones(),
		theory.OctaveSemitones,
		theory.OctaveSemitones + theory.MinorThird.Semitones(),
		theory.OctaveSemitones + theory.MajorThird.Semitones(),
	}
)

func applyWidths(from theory.Pitch, dir theory.Direction, widths []int) []theory.Pitch {
	out := make([]theory.Pitch, len(widths))
	for i, w := range widths {
		out[i] = dir.Apply(from, w)
	}
	return out
}

// rawCandidates generates the unfiltered candidate set for a position.
// The opening must be a perfect consonance; the close a unison or octave;
// a single-note cantus must satisfy both at once, which the closing set
// does. Interior positions draw from the full consonant vocabulary.
func rawCandidates(cantus []theory.Pitch, pos int, dir theory.Direction) []theory.Pitch {
	switch {
	case pos == len(cantus)-1:
		return applyWidths(cantus[pos], dir, closingWidths)
	case pos == 0:
		return applyWidths(cantus[0], dir, openingWidths)
	default:
		return applyWidths(cantus[pos], dir, interiorWidths)
	}
}
