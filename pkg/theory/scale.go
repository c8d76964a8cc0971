package theory

import (
	"fmt"
	"strings"
)

// Mode names a scale pattern: the ordered steps taken from the root.
type Mode int

const (
	Ionian Mode = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
	MelodicMinor
	HarmonicMinor
	WholeTone
	Pentatonic
	PhrygianDominant
	HungarianMinor
)

var modeNames = map[Mode]string{
	Ionian:           "ionian",
	Dorian:           "dorian",
	Phrygian:         "phrygian",
	Lydian:           "lydian",
	Mixolydian:       "mixolydian",
	Aeolian:          "aeolian",
	Locrian:          "locrian",
	MelodicMinor:     "melodic-minor",
	HarmonicMinor:    "harmonic-minor",
	WholeTone:        "whole-tone",
	Pentatonic:       "pentatonic",
	PhrygianDominant: "phrygian-dominant",
	HungarianMinor:   "hungarian-minor",
}

// modeSteps holds the interval pattern of each mode, root to octave.
var modeSteps = map[Mode][]Interval{
	Ionian:           {MajorSecond, MajorSecond, MinorSecond, MajorSecond, MajorSecond, MajorSecond, MinorSecond},
	Dorian:           {MajorSecond, MinorSecond, MajorSecond, MajorSecond, MajorSecond, MinorSecond, MajorSecond},
	Phrygian:         {MinorSecond, MajorSecond, MajorSecond, MajorSecond, MinorSecond, MajorSecond, MajorSecond},
	Lydian:           {MajorSecond, MajorSecond, MajorSecond, MinorSecond, MajorSecond, MajorSecond, MinorSecond},
	Mixolydian:       {MajorSecond, MajorSecond, MinorSecond, MajorSecond, MajorSecond, MinorSecond, MajorSecond},
	Aeolian:          {MajorSecond, MinorSecond, MajorSecond, MajorSecond, MinorSecond, MajorSecond, MajorSecond},
	Locrian:          {MinorSecond, MajorSecond, MajorSecond, MinorSecond, MajorSecond, MajorSecond, MajorSecond},
	MelodicMinor:     {MajorSecond, MinorSecond, MajorSecond, MajorSecond, MajorSecond, MajorSecond, MinorSecond},
	HarmonicMinor:    {MajorSecond, MinorSecond, MajorSecond, MajorSecond, MinorSecond, MinorThird, MinorSecond},
	WholeTone:        {MajorSecond, MajorSecond, MajorSecond, MajorSecond, MajorSecond, MajorSecond},
	Pentatonic:       {MajorSecond, MajorSecond, MinorThird, MajorSecond, MinorThird},
	PhrygianDominant: {MinorSecond, MinorThird, MinorSecond, MajorSecond, MinorSecond, MajorSecond, MajorSecond},
	HungarianMinor:   {MajorSecond, MinorSecond, MinorThird, MinorSecond, MinorSecond, MinorThird, MinorSecond},
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown mode"
}

// Modes returns all supported modes in declaration order.
func Modes() []Mode {
	return []Mode{
		Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian,
		MelodicMinor, HarmonicMinor, WholeTone, Pentatonic,
		PhrygianDominant, HungarianMinor,
	}
}

// ParseMode resolves a mode by its canonical name, case-insensitively.
// Both "melodic-minor" and "melodic minor" forms are accepted.
func ParseMode(s string) (Mode, error) {
	needle := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
	for mode, name := range modeNames {
		if name == needle {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Scale is a root note plus a mode. Its member set is octave-independent:
// membership is decided on pitch classes.
type Scale struct {
	Root Note
	Mode Mode
}

// NewScale builds a scale from a root and a mode.
func NewScale(root Note, mode Mode) Scale {
	return Scale{Root: root, Mode: mode}
}

// Notes returns the scale degrees in order, stepping from the root through
// the mode's pattern. The closing root is included, as spelled by stepping.
func (s Scale) Notes() []Note {
	steps := modeSteps[s.Mode]
	notes := make([]Note, 0, len(steps)+1)
	notes = append(notes, s.Root)
	last := s.Root
	for _, step := range steps {
		last = last.Add(step)
		notes = append(notes, last)
	}
	return notes
}

// Contains reports whether the note's pitch class belongs to the scale.
func (s Scale) Contains(n Note) bool {
	for _, member := range s.Notes() {
		if member.Equal(n) {
			return true
		}
	}
	return false
}

// ContainsPitch reports membership of a pitch's class, octave ignored.
func (s Scale) ContainsPitch(p Pitch) bool {
	return s.Contains(p.Note)
}

func (s Scale) String() string {
	return fmt.Sprintf("%s %s", s.Root, s.Mode)
}
