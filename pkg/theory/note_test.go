package theory

import "testing"

func TestNoteSemitonesFromC(t *testing.T) {
	tests := []struct {
		note Note
		want int
	}{
		{NewNote(C, Natural), 0},
		{NewNote(D, Natural), 2},
		{NewNote(D, Sharp), 3},
		{NewNote(B, Natural), 11},
		{NewNote(C, Flat), -1},
		{NewNote(B, DoubleSharp), 13},
	}

	for _, tt := range tests {
		if got := tt.note.SemitonesFromC(); got != tt.want {
			t.Errorf("SemitonesFromC(%v) = %d, want %d", tt.note, got, tt.want)
		}
	}
}

func TestEnharmonicEquivalents(t *testing.T) {
	tests := []struct {
		a, b Note
	}{
		{NewNote(C, Natural), NewNote(D, DoubleFlat)},
		{NewNote(E, Natural), NewNote(F, Flat)},
		{NewNote(D, Sharp), NewNote(E, Flat)},
		{NewNote(C, Natural), NewNote(B, Sharp)},
	}

	for _, tt := range tests {
		if !tt.a.Equal(tt.b) {
			t.Errorf("%v should be enharmonic to %v", tt.a, tt.b)
		}
	}
}

func TestNoteFromSemitones(t *testing.T) {
	tests := []struct {
		semitones int
		want      Note
	}{
		{0, NewNote(C, Natural)},
		{1, NewNote(C, Sharp)},
		{6, NewNote(F, Sharp)},
		{11, NewNote(B, Natural)},
		{12, NewNote(C, Natural)},
		{-1, NewNote(B, Natural)},
		{-12, NewNote(C, Natural)},
	}

	for _, tt := range tests {
		if got := NoteFromSemitones(tt.semitones); got != tt.want {
			t.Errorf("NoteFromSemitones(%d) = %v, want %v", tt.semitones, got, tt.want)
		}
	}
}

func TestNoteString(t *testing.T) {
	tests := []struct {
		note Note
		want string
	}{
		{NewNote(C, Natural), "C"},
		{NewNote(F, Sharp), "F♯"},
		{NewNote(B, Flat), "B♭"},
		{NewNote(G, DoubleSharp), "G𝄪"},
		{NewNote(E, DoubleFlat), "E𝄫"},
	}

	for _, tt := range tests {
		if got := tt.note.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
