package theory

import (
	"fmt"
	"strings"
)

// Direction fixes the vertical relationship of the generated voice to the
// cantus firmus: Above transposes candidate intervals upward, Below
// downward.
type Direction int

const (
	Above Direction = iota
	Below
)

// Sign returns +1 for Above and -1 for Below.
func (d Direction) Sign() int {
	if d == Below {
		return -1
	}
	return 1
}

// Apply transposes p away from the cantus by the given semitone width,
// in the direction's sign.
func (d Direction) Apply(p Pitch, semitones int) Pitch {
	return p.Transpose(d.Sign() * semitones)
}

func (d Direction) String() string {
	if d == Below {
		return "below"
	}
	return "above"
}

// ParseDirection resolves "above" or "below", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "above":
		return Above, nil
	case "below":
		return Below, nil
	default:
		return 0, fmt.Errorf("unknown direction %q (want \"above\" or \"below\")", s)
	}
}
