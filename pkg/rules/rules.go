package rules

import "github.com/aretw0/descant/pkg/theory"

// Rule defines the contract for a single voice-leading filter.
type Rule interface {
	// Name returns the short identifier used in violations and logs.
	Name() string
	// Check returns nil if the candidate is acceptable, or a *Violation.
	Check(ctx *Context, candidate theory.Pitch) error
}

const (
	// stepSemitones is the widest melodic motion still counted as a step.
	stepSemitones = int(theory.MajorSecond)
	// leapSemitones is the melodic motion beyond which leap recovery applies.
	leapSemitones = int(theory.MajorThird)
	// ceilingSemitones is the widest vertical distance allowed between the
	// voices: an octave plus a major third.
	ceilingSemitones = theory.OctaveSemitones + int(theory.MajorThird)
	// maxParallelRun bounds consecutive thirds or sixths against the cantus.
	maxParallelRun = 3
)

// --- Scale membership ---

// ScaleMembership keeps only candidates whose pitch class belongs to the
// scale. This is the cheapest filter and runs first.
type ScaleMembership struct{}

func (ScaleMembership) Name() string { return "scale-membership" }

func (r ScaleMembership) Check(ctx *Context, candidate theory.Pitch) error {
	if !ctx.Scale.ContainsPitch(candidate) {
		return violation(r.Name(), ctx, candidate, "%v is not in %v", candidate.Note, ctx.Scale)
	}
	return nil
}

// --- Parallel and direct perfect consonances ---

// NoParallelPerfects rejects candidates that reach a perfect fifth, unison
// or octave while both voices move in the same direction. The sign test
// covers parallel motion and direct (hidden) approaches alike.
type NoParallelPerfects struct{}

func (NoParallelPerfects) Name() string { return "no-parallel-perfects" }

func (r NoParallelPerfects) Check(ctx *Context, candidate theory.Pitch) error {
	if len(ctx.Line) == 0 {
		return nil
	}
	vertical := theory.Between(candidate, ctx.CantusAt())
	if !vertical.IsPerfect() {
		return nil
	}

	motion := candidate.Semitones() - ctx.Prev().Semitones()
	cantusMotion := ctx.CantusAt().Semitones() - ctx.Cantus[ctx.Pos-1].Semitones()
	if sign(motion) == sign(cantusMotion) {
		return violation(r.Name(), ctx, candidate, "direct motion into a %v", vertical)
	}
	return nil
}

// --- Register ceiling ---

// RegisterCeiling bounds the vertical spread of the voices to a tenth
// (an octave plus a major third).
type RegisterCeiling struct{}

func (RegisterCeiling) Name() string { return "register-ceiling" }

func (r RegisterCeiling) Check(ctx *Context, candidate theory.Pitch) error {
	if spread := abs(candidate.Semitones() - ctx.CantusAt().Semitones()); spread > ceilingSemitones {
		return violation(r.Name(), ctx, candidate, "spread of %d semitones exceeds %d", spread, ceilingSemitones)
	}
	return nil
}

// --- Parallel third/sixth runs ---

// ParallelRunLimit bounds runs of consecutive thirds (or sixths) against
// the cantus to three, counting backward until the interval class changes.
type ParallelRunLimit struct{}

func (ParallelRunLimit) Name() string { return "parallel-run-limit" }

func (r ParallelRunLimit) Check(ctx *Context, candidate theory.Pitch) error {
	vertical := theory.Between(candidate, ctx.CantusAt())

	var sameClass func(theory.Interval) bool
	switch {
	case vertical.IsThird():
		sameClass = theory.Interval.IsThird
	case vertical.IsSixth():
		sameClass = theory.Interval.IsSixth
	default:
		return nil
	}

	run := 1
	for i := len(ctx.Line) - 1; i >= 0; i-- {
		if !sameClass(theory.Between(ctx.Line[i], ctx.Cantus[i])) {
			break
		}
		run++
	}
	if run > maxParallelRun {
		return violation(r.Name(), ctx, candidate, "run of %d consecutive %vs", run, vertical)
	}
	return nil
}

// --- Simultaneous skips ---

// NoSimultaneousSkips rejects candidates when both voices skip (move more
// than a major second) in the same direction at once.
type NoSimultaneousSkips struct{}

func (NoSimultaneousSkips) Name() string { return "no-simultaneous-skips" }

func (r NoSimultaneousSkips) Check(ctx *Context, candidate theory.Pitch) error {
	if len(ctx.Line) == 0 {
		return nil
	}
	motion := candidate.Semitones() - ctx.Prev().Semitones()
	cantusMotion := ctx.CantusAt().Semitones() - ctx.Cantus[ctx.Pos-1].Semitones()

	if abs(motion) > stepSemitones && abs(cantusMotion) > stepSemitones && sign(motion) == sign(cantusMotion) {
		return violation(r.Name(), ctx, candidate, "both voices skip in the same direction")
	}
	return nil
}

// --- Repeated pitches ---

// RepeatedPitchLimit rejects a candidate equal to both of the previous two
// counterpoint pitches: the same pitch may not sound three times running.
type RepeatedPitchLimit struct{}

func (RepeatedPitchLimit) Name() string { return "repeated-pitch-limit" }

func (r RepeatedPitchLimit) Check(ctx *Context, candidate theory.Pitch) error {
	if len(ctx.Line) < 2 {
		return nil
	}
	prev, prev2 := ctx.Line[len(ctx.Line)-1], ctx.Line[len(ctx.Line)-2]
	if candidate.Equal(prev) && prev.Equal(prev2) {
		return violation(r.Name(), ctx, candidate, "%v would sound three times in a row", candidate)
	}
	return nil
}

// --- Leap size ---

// MaxLeap bounds melodic motion to an octave.
type MaxLeap struct{}

func (MaxLeap) Name() string { return "max-leap" }

func (r MaxLeap) Check(ctx *Context, candidate theory.Pitch) error {
	if len(ctx.Line) == 0 {
		return nil
	}
	if leap := abs(candidate.Semitones() - ctx.Prev().Semitones()); leap > theory.OctaveSemitones {
		return violation(r.Name(), ctx, candidate, "leap of %d semitones", leap)
	}
	return nil
}

// NoTritoneLeap rejects melodic motion of exactly six semitones.
type NoTritoneLeap struct{}

func (NoTritoneLeap) Name() string { return "no-tritone-leap" }

func (r NoTritoneLeap) Check(ctx *Context, candidate theory.Pitch) error {
	if len(ctx.Line) == 0 {
		return nil
	}
	if abs(candidate.Semitones()-ctx.Prev().Semitones()) == theory.Tritone.Semitones() {
		return violation(r.Name(), ctx, candidate, "tritone leap")
	}
	return nil
}

// --- Cadence ---

// StepwiseClose forces the final pitch to be approached by step.
type StepwiseClose struct{}

func (StepwiseClose) Name() string { return "stepwise-close" }

func (r StepwiseClose) Check(ctx *Context, candidate theory.Pitch) error {
	if !ctx.Closing() || len(ctx.Line) == 0 {
		return nil
	}
	if leap := abs(candidate.Semitones() - ctx.Prev().Semitones()); leap > stepSemitones {
		return violation(r.Name(), ctx, candidate, "final pitch approached by a leap of %d semitones", leap)
	}
	return nil
}

// --- Leap recovery ---

// LeapRecovery requires that a leap wider than a major third be answered by
// a step in the opposite direction. Applies once two pitches are placed.
type LeapRecovery struct{}

func (LeapRecovery) Name() string { return "leap-recovery" }

func (r LeapRecovery) Check(ctx *Context, candidate theory.Pitch) error {
	if len(ctx.Line) < 2 {
		return nil
	}
	prev, prev2 := ctx.Line[len(ctx.Line)-1], ctx.Line[len(ctx.Line)-2]

	lastMotion := prev.Semitones() - prev2.Semitones()
	if abs(lastMotion) <= leapSemitones {
		return nil
	}

	motion := candidate.Semitones() - prev.Semitones()
	if abs(motion) > stepSemitones || sign(motion) == sign(lastMotion) {
		return violation(r.Name(), ctx, candidate, "leap of %d must resolve by a contrary step", lastMotion)
	}
	return nil
}
