package theory

import "testing"

func TestScaleNotes(t *testing.T) {
	got := NewScale(NewNote(C, Natural), Ionian).Notes()
	want := []Note{
		NewNote(C, Natural), NewNote(D, Natural), NewNote(E, Natural),
		NewNote(F, Natural), NewNote(G, Natural), NewNote(A, Natural),
		NewNote(B, Natural), NewNote(C, Natural),
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d degrees, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("degree %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScaleNotesMelodicMinor(t *testing.T) {
	// F melodic minor: F G A♭ B♭ C D E F (spelled with sharps here,
	// membership is enharmonic).
	scale := NewScale(NewNote(F, Natural), MelodicMinor)
	want := []Note{
		NewNote(F, Natural), NewNote(G, Natural), NewNote(A, Flat),
		NewNote(B, Flat), NewNote(C, Natural), NewNote(D, Natural),
		NewNote(E, Natural), NewNote(F, Natural),
	}

	got := scale.Notes()
	if len(got) != len(want) {
		t.Fatalf("expected %d degrees, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("degree %d = %v, want enharmonic of %v", i, got[i], want[i])
		}
	}
}

func TestScaleContains(t *testing.T) {
	cMajor := NewScale(NewNote(C, Natural), Ionian)

	if !cMajor.Contains(NewNote(G, Natural)) {
		t.Error("G should be in C ionian")
	}
	if cMajor.Contains(NewNote(F, Sharp)) {
		t.Error("F♯ should not be in C ionian")
	}
	// Membership is enharmonic: E♯ sounds as F.
	if !cMajor.Contains(NewNote(E, Sharp)) {
		t.Error("E♯ (enharmonic F) should be in C ionian")
	}
	// And octave-independent through pitches.
	if !cMajor.ContainsPitch(NewPitch(NewNote(A, Natural), 1)) {
		t.Error("A1 should be in C ionian")
	}
}

func TestWholeToneAndPentatonicClose(t *testing.T) {
	// Both patterns must land back on the root after the last step.
	for _, mode := range []Mode{WholeTone, Pentatonic} {
		scale := NewScale(NewNote(C, Natural), mode)
		notes := scale.Notes()
		if !notes[len(notes)-1].Equal(scale.Root) {
			t.Errorf("%v does not close the octave: ends on %v", mode, notes[len(notes)-1])
		}
	}
	// The whole-tone scale has six distinct classes.
	wt := NewScale(NewNote(C, Natural), WholeTone)
	classes := map[int]bool{}
	for _, n := range wt.Notes() {
		classes[n.Class()] = true
	}
	if len(classes) != 6 {
		t.Errorf("whole-tone scale has %d classes, want 6", len(classes))
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"ionian", Ionian, false},
		{"Dorian", Dorian, false},
		{"harmonic minor", HarmonicMinor, false},
		{"melodic-minor", MelodicMinor, false},
		{"chromatic", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("Above"); err != nil || d != Above {
		t.Errorf("ParseDirection(Above) = %v, %v", d, err)
	}
	if d, err := ParseDirection(" below "); err != nil || d != Below {
		t.Errorf("ParseDirection(below) = %v, %v", d, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}
}
