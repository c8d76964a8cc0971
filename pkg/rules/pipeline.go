package rules

import "github.com/aretw0/descant/pkg/theory"

// Default returns the full first-species pipeline in its canonical order:
// the cheap membership check first, then the vertical rules, then the
// melodic rules. Outcome does not depend on the order, only cost does.
func Default() []Rule {
	return []Rule{
		ScaleMembership{},
		NoParallelPerfects{},
		RegisterCeiling{},
		ParallelRunLimit{},
		NoSimultaneousSkips{},
		RepeatedPitchLimit{},
		MaxLeap{},
		NoTritoneLeap{},
		StepwiseClose{},
		LeapRecovery{},
	}
}

// Check runs the candidate through every rule in order and returns the
// first violation, or nil if all rules pass.
func Check(pipeline []Rule, ctx *Context, candidate theory.Pitch) error {
	for _, rule := range pipeline {
		if err := rule.Check(ctx, candidate); err != nil {
			return err
		}
	}
	return nil
}

// Filter returns the candidates that survive the whole pipeline, preserving
// their order. The input slice is not modified.
func Filter(pipeline []Rule, ctx *Context, candidates []theory.Pitch) []theory.Pitch {
	survivors := make([]theory.Pitch, 0, len(candidates))
	for _, candidate := range candidates {
		if Check(pipeline, ctx, candidate) == nil {
			survivors = append(survivors, candidate)
		}
	}
	return survivors
}
