package notation

import (
	"strconv"
	"strings"

	"github.com/aretw0/descant/pkg/theory"
)

// FormatNote renders a note spelling in the ASCII form ParseNote accepts
// ("F#", "Bb"). Double accidentals, which parsing never produces, fall
// back to doubled markers.
func FormatNote(n theory.Note) string {
	var sb strings.Builder
	sb.WriteString(n.Letter.String())
	switch n.Accidental {
	case theory.Sharp:
		sb.WriteByte('#')
	case theory.Flat:
		sb.WriteByte('b')
	case theory.DoubleSharp:
		sb.WriteString("##")
	case theory.DoubleFlat:
		sb.WriteString("bb")
	}
	return sb.String()
}

// FormatPitch renders a pitch in the ASCII form Parse accepts ("F#3",
// "Bb5").
func FormatPitch(p theory.Pitch) string {
	return FormatNote(p.Note) + strconv.Itoa(p.Octave)
}

// Format renders a pitch sequence as a space-separated line.
func Format(pitches []theory.Pitch) string {
	parts := make([]string, len(pitches))
	for i, p := range pitches {
		parts[i] = FormatPitch(p)
	}
	return strings.Join(parts, " ")
}
