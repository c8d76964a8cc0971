package rules

import (
	"fmt"

	"github.com/aretw0/descant/pkg/theory"
)

// Violation reports why a candidate was rejected by a rule.
type Violation struct {
	Rule      string // rule name
	Candidate theory.Pitch
	Pos       int
	Reason    string
}

func (e *Violation) Error() string {
	return fmt.Sprintf("rule %q rejects %v at position %d: %s", e.Rule, e.Candidate, e.Pos, e.Reason)
}

func violation(name string, ctx *Context, candidate theory.Pitch, format string, args ...any) error {
	return &Violation{
		Rule:      name,
		Candidate: candidate,
		Pos:       ctx.Pos,
		Reason:    fmt.Sprintf(format, args...),
	}
}
