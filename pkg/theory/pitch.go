package theory

import "strconv"

// Pitch is an absolute musical position: a note spelling plus an octave.
// Equality and ordering follow the semitone distance from middle C, so
// enharmonic spellings at the same height compare equal (B♯3 == C4).
// Pitches are immutable values; arithmetic returns new ones.
type Pitch struct {
	Note   Note
	Octave int
}

// NewPitch builds a pitch from a note spelling and an octave number.
func NewPitch(n Note, octave int) Pitch {
	return Pitch{Note: n, Octave: octave}
}

// Semitones returns the true signed semitone distance from middle C (C4).
// This is the non-modular measure used for leap and register checks.
func (p Pitch) Semitones() int {
	return p.Note.SemitonesFromC() + (p.Octave-4)*OctaveSemitones
}

// PitchFromSemitones maps a signed semitone distance from middle C back to
// a pitch, spelled with sharps.
func PitchFromSemitones(semitones int) Pitch {
	octave := 4
	for semitones < 0 {
		semitones += OctaveSemitones
		octave--
	}
	for semitones >= OctaveSemitones {
		semitones -= OctaveSemitones
		octave++
	}
	return Pitch{Note: NoteFromSemitones(semitones), Octave: octave}
}

// Equal reports enharmonic equality at the same height.
func (p Pitch) Equal(other Pitch) bool {
	return p.Semitones() == other.Semitones()
}

// Less orders pitches from low to high.
func (p Pitch) Less(other Pitch) bool {
	return p.Semitones() < other.Semitones()
}

// Add transposes the pitch up by an interval.
func (p Pitch) Add(iv Interval) Pitch {
	return PitchFromSemitones(p.Semitones() + iv.Semitones())
}

// Sub transposes the pitch down by an interval.
func (p Pitch) Sub(iv Interval) Pitch {
	return PitchFromSemitones(p.Semitones() - iv.Semitones())
}

// Transpose shifts the pitch by a signed number of semitones.
func (p Pitch) Transpose(semitones int) Pitch {
	return PitchFromSemitones(p.Semitones() + semitones)
}

// Between classifies the interval between two pitches. The result is the
// modulo-12 class of their distance, so operand order does not matter and
// an octave comes back as a unison.
func Between(a, b Pitch) Interval {
	diff := a.Semitones() - b.Semitones()
	if diff < 0 {
		diff = -diff
	}
	return IntervalFromSemitones(diff)
}

func (p Pitch) String() string {
	return p.Note.String() + strconv.Itoa(p.Octave)
}
