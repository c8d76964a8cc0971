package theory

// Interval is a semitone class in [0,11]. Compound intervals collapse to
// their simple form, so an octave is classified as a unison.
type Interval int

const (
	Unison Interval = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	Tritone
	PerfectFifth
	MinorSixth
	MajorSixth
	MinorSeventh
	MajorSeventh
)

// OctaveSemitones is the span of a perfect octave.
const OctaveSemitones = 12

// IntervalFromSemitones classifies a semitone count modulo the octave.
// Negative counts are folded into [0,11] first.
func IntervalFromSemitones(semitones int) Interval {
	s := semitones % OctaveSemitones
	if s < 0 {
		s += OctaveSemitones
	}
	return Interval(s)
}

// Semitones returns the width of the interval in semitones.
func (iv Interval) Semitones() int {
	return int(iv)
}

// Add sums two intervals modulo the octave.
func (iv Interval) Add(other Interval) Interval {
	return IntervalFromSemitones(iv.Semitones() + other.Semitones())
}

// Invert returns the inversion of the interval: the interval that completes
// it to an octave. The unison inverts to itself.
func (iv Interval) Invert() Interval {
	return IntervalFromSemitones(OctaveSemitones - iv.Semitones())
}

// IsThird reports whether the interval is a minor or major third.
func (iv Interval) IsThird() bool {
	return iv == MinorThird || iv == MajorThird
}

// IsSixth reports whether the interval is a minor or major sixth.
func (iv Interval) IsSixth() bool {
	return iv == MinorSixth || iv == MajorSixth
}

// IsPerfect reports whether the interval is a perfect consonance once
// octaves are folded: the unison (which covers octaves) or the fifth.
func (iv Interval) IsPerfect() bool {
	return iv == Unison || iv == PerfectFifth
}

func (iv Interval) String() string {
	names := [...]string{
		"unison", "minor second", "major second", "minor third",
		"major third", "perfect fourth", "tritone", "perfect fifth",
		"minor sixth", "major sixth", "minor seventh", "major seventh",
	}
	if iv < Unison || iv > MajorSeventh {
		return "unknown interval"
	}
	return names[iv]
}
