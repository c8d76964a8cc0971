package descant

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/aretw0/descant/pkg/notation"
	"github.com/aretw0/descant/pkg/theory"
)

// Score is the persistable form of a generation: both voices rendered in
// ASCII notation plus the parameters that produced them. It is what the
// store adapters save and what the HTTP API returns.
type Score struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Root         string    `json:"root"`
	Mode         string    `json:"mode"`
	Direction    string    `json:"direction"`
	Cantus       []string  `json:"cantus"`
	Counterpoint []string  `json:"counterpoint"`
	Steps        int       `json:"steps"`
}

// NewScore renders a Result into its persistable form.
func NewScore(id string, result *Result, scale theory.Scale, dir theory.Direction) *Score {
	return &Score{
		ID:           id,
		CreatedAt:    time.Now().UTC(),
		Root:         notation.FormatNote(scale.Root),
		Mode:         scale.Mode.String(),
		Direction:    dir.String(),
		Cantus:       formatLine(result.Cantus),
		Counterpoint: formatLine(result.Counterpoint),
		Steps:        result.Steps,
	}
}

// NewID returns a random score identifier. Distinct calls yield distinct
// IDs, so saving consecutive runs never overwrites an earlier score.
func NewID() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("score-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}

func formatLine(pitches []theory.Pitch) []string {
	out := make([]string, len(pitches))
	for i, p := range pitches {
		out[i] = notation.FormatPitch(p)
	}
	return out
}
