package theory

// Letter is one of the seven diatonic letter names.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

// semitone offset of each letter above C within one octave.
var letterSemitones = [...]int{C: 0, D: 2, E: 4, F: 5, G: 7, A: 9, B: 11}

func (l Letter) String() string {
	return [...]string{"C", "D", "E", "F", "G", "A", "B"}[l]
}

// Accidental shifts a letter by up to two semitones in either direction.
type Accidental int

const (
	DoubleFlat Accidental = iota - 2
	Flat
	Natural
	Sharp
	DoubleSharp
)

func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "𝄫"
	case Flat:
		return "♭"
	case Sharp:
		return "♯"
	case DoubleSharp:
		return "𝄪"
	default:
		return ""
	}
}

// Note is an octave-independent note spelling: a letter plus an accidental.
// Two spellings are equal when they name the same pitch class (enharmonic
// equality), so C♯ == D♭.
type Note struct {
	Letter     Letter
	Accidental Accidental
}

// NewNote builds a note from a letter and accidental.
func NewNote(l Letter, a Accidental) Note {
	return Note{Letter: l, Accidental: a}
}

// SemitonesFromC returns the signed semitone distance of the spelling above
// C within one octave. C𝄫 yields -2; B𝄪 yields 13.
func (n Note) SemitonesFromC() int {
	return letterSemitones[n.Letter] + int(n.Accidental)
}

// Class returns the pitch class in [0,11].
func (n Note) Class() int {
	c := n.SemitonesFromC() % 12
	if c < 0 {
		c += 12
	}
	return c
}

// NoteFromSemitones maps a semitone count above C to a note, spelling the
// black keys with sharps.
func NoteFromSemitones(semitones int) Note {
	sharpSpellings := [...]Note{
		{C, Natural}, {C, Sharp}, {D, Natural}, {D, Sharp},
		{E, Natural}, {F, Natural}, {F, Sharp}, {G, Natural},
		{G, Sharp}, {A, Natural}, {A, Sharp}, {B, Natural},
	}
	c := semitones % 12
	if c < 0 {
		c += 12
	}
	return sharpSpellings[c]
}

// Equal reports enharmonic equality.
func (n Note) Equal(other Note) bool {
	return n.Class() == other.Class()
}

// Add transposes the note up by an interval, respelled with sharps.
func (n Note) Add(iv Interval) Note {
	return NoteFromSemitones(n.SemitonesFromC() + iv.Semitones())
}

// Sub transposes the note down by an interval, respelled with sharps.
func (n Note) Sub(iv Interval) Note {
	return NoteFromSemitones(n.SemitonesFromC() - iv.Semitones())
}

func (n Note) String() string {
	return n.Letter.String() + n.Accidental.String()
}
