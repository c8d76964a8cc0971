package theory

import "testing"

func TestIntervalFromSemitones(t *testing.T) {
	tests := []struct {
		semitones int
		want      Interval
	}{
		{0, Unison},
		{7, PerfectFifth},
		{12, Unison},
		{13, MinorSecond},
		{-1, MajorSeventh},
	}

	for _, tt := range tests {
		if got := IntervalFromSemitones(tt.semitones); got != tt.want {
			t.Errorf("IntervalFromSemitones(%d) = %v, want %v", tt.semitones, got, tt.want)
		}
	}
}

func TestIntervalInvert(t *testing.T) {
	tests := []struct {
		iv   Interval
		want Interval
	}{
		{Unison, Unison},
		{MajorThird, MinorSixth},
		{Tritone, Tritone},
		{PerfectFifth, PerfectFourth},
	}

	for _, tt := range tests {
		if got := tt.iv.Invert(); got != tt.want {
			t.Errorf("Invert(%v) = %v, want %v", tt.iv, got, tt.want)
		}
	}

	// Inverting twice is the identity.
	if got := MajorSeventh.Invert().Invert(); got != MajorSeventh {
		t.Errorf("double inversion = %v, want %v", got, MajorSeventh)
	}
}

func TestIntervalAdd(t *testing.T) {
	if got := MajorThird.Add(MinorThird); got != PerfectFifth {
		t.Errorf("M3 + m3 = %v, want perfect fifth", got)
	}
	// Addition wraps modulo the octave.
	if got := MajorSeventh.Add(MajorSecond); got != MinorSecond {
		t.Errorf("M7 + M2 = %v, want minor second", got)
	}
}

func TestIntervalClassPredicates(t *testing.T) {
	if !MinorThird.IsThird() || !MajorThird.IsThird() || MajorSecond.IsThird() {
		t.Error("IsThird misclassifies")
	}
	if !MinorSixth.IsSixth() || !MajorSixth.IsSixth() || PerfectFifth.IsSixth() {
		t.Error("IsSixth misclassifies")
	}
	if !Unison.IsPerfect() || !PerfectFifth.IsPerfect() || PerfectFourth.IsPerfect() {
		t.Error("IsPerfect misclassifies")
	}
}
