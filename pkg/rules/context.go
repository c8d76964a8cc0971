// Package rules implements the first-species voice-leading filters.
//
// Each Rule is a pure predicate over a candidate pitch and the Context of
// the partial counterpoint built so far. Rules never mutate anything and
// are order-independent in outcome; the default pipeline orders them
// cheapest first.
package rules

import "github.com/aretw0/descant/pkg/theory"

// Context carries everything a rule may inspect: the fixed cantus firmus,
// the counterpoint line built so far, the position being filled, the scale
// and the vertical direction.
type Context struct {
	Cantus    []theory.Pitch
	Line      []theory.Pitch
	Pos       int
	Scale     theory.Scale
	Direction theory.Direction
}

// CantusAt returns the cantus pitch sounding at the position being filled.
func (c *Context) CantusAt() theory.Pitch {
	return c.Cantus[c.Pos]
}

// Prev returns the last counterpoint pitch placed. Valid only when
// len(Line) > 0.
func (c *Context) Prev() theory.Pitch {
	return c.Line[len(c.Line)-1]
}

// Closing reports whether the position being filled is the final one.
func (c *Context) Closing() bool {
	return c.Pos == len(c.Cantus)-1
}

func sign(n int) int {
	if n >= 0 {
		return 1
	}
	return -1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
