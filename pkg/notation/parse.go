// Package notation converts between pitch text and theory values.
//
// The text form is one pitch per whitespace-separated token: a letter A-G
// (either case), an optional single accidental ("#" or "b"), and one octave
// digit 0-8. Parsing is fail-fast: the first malformed token aborts with a
// positioned error, and no partial result is returned.
package notation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aretw0/descant/pkg/theory"
)

// ParseError describes the first malformed token encountered.
type ParseError struct {
	Token  string // the offending token
	Index  int    // zero-based token position in the input
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("token %d %q: %s", e.Index, e.Token, e.Reason)
}

// Parse reads a whitespace-separated pitch sequence.
func Parse(input string) ([]theory.Pitch, error) {
	tokens := strings.Fields(input)
	pitches := make([]theory.Pitch, 0, len(tokens))

	for i, token := range tokens {
		p, err := ParsePitch(token)
		if err != nil {
			if perr, ok := err.(*ParseError); ok {
				perr.Index = i
				return nil, perr
			}
			return nil, err
		}
		pitches = append(pitches, p)
	}

	return pitches, nil
}

// ParsePitch reads a single pitch token such as "c4", "F#3" or "Bb5".
func ParsePitch(token string) (theory.Pitch, error) {
	runes := []rune(token)
	if len(runes) < 2 || len(runes) > 3 {
		return theory.Pitch{}, &ParseError{Token: token, Reason: "want letter, optional accidental, octave digit"}
	}

	letter, ok := parseLetter(runes[0])
	if !ok {
		return theory.Pitch{}, &ParseError{Token: token, Reason: fmt.Sprintf("invalid pitch letter %q", runes[0])}
	}

	accidental := theory.Natural
	rest := runes[1:]
	if !unicode.IsDigit(rest[0]) {
		switch rest[0] {
		case '#':
			accidental = theory.Sharp
		case 'b':
			accidental = theory.Flat
		default:
			return theory.Pitch{}, &ParseError{Token: token, Reason: fmt.Sprintf("invalid accidental %q", rest[0])}
		}
		rest = rest[1:]
	}

	if len(rest) != 1 || rest[0] < '0' || rest[0] > '8' {
		return theory.Pitch{}, &ParseError{Token: token, Reason: "octave must be a single digit 0-8"}
	}
	octave := int(rest[0] - '0')

	return theory.NewPitch(theory.NewNote(letter, accidental), octave), nil
}

func parseLetter(r rune) (theory.Letter, bool) {
	switch unicode.ToLower(r) {
	case 'a':
		return theory.A, true
	case 'b':
		return theory.B, true
	case 'c':
		return theory.C, true
	case 'd':
		return theory.D, true
	case 'e':
		return theory.E, true
	case 'f':
		return theory.F, true
	case 'g':
		return theory.G, true
	default:
		return 0, false
	}
}

// ParseNote reads a note spelling without an octave, such as "c" or "eb".
// Used for scale roots.
func ParseNote(token string) (theory.Note, error) {
	runes := []rune(token)
	if len(runes) < 1 || len(runes) > 2 {
		return theory.Note{}, &ParseError{Token: token, Reason: "want letter plus optional accidental"}
	}

	letter, ok := parseLetter(runes[0])
	if !ok {
		return theory.Note{}, &ParseError{Token: token, Reason: fmt.Sprintf("invalid pitch letter %q", runes[0])}
	}

	accidental := theory.Natural
	if len(runes) == 2 {
		switch runes[1] {
		case '#':
			accidental = theory.Sharp
		case 'b':
			accidental = theory.Flat
		default:
			return theory.Note{}, &ParseError{Token: token, Reason: fmt.Sprintf("invalid accidental %q", runes[1])}
		}
	}

	return theory.NewNote(letter, accidental), nil
}
