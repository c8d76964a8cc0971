/*
Package descant generates a second melodic voice (a counterpoint) against a
fixed reference melody (a cantus firmus) under the rules of first-species
diatonic counterpoint.

The core is a constrained backtracking search: at every position the engine
generates the consonant candidate pitches, prunes them through an ordered
pipeline of voice-leading rules, shuffles the survivors, and recurses. Dead
ends backtrack chronologically; the first complete line found is returned.
Exhaustion without a result is a normal outcome (ErrNoSolution), not a
fault.

# Architecture

The library is split the hexagonal way: pkg/theory holds the immutable
pitch, interval and scale value types; pkg/rules holds the pure
voice-leading filters; pkg/notation converts pitch text; the engine in this
package ties them together. Store and transport adapters (file, redis,
HTTP, MCP) live under internal and are reached through the descant CLI.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/descant"
		"github.com/aretw0/descant/pkg/notation"
		"github.com/aretw0/descant/pkg/theory"
	)

	func main() {
		cantus, err := notation.Parse("c4 d4 e4 d4 c4")
		if err != nil {
			log.Fatal(err)
		}

		scale := theory.NewScale(theory.NewNote(theory.C, theory.Natural), theory.Ionian)

		eng := descant.New()
		result, err := eng.Generate(context.Background(), cantus, scale, theory.Above)
		if err != nil {
			log.Fatal(err) // descant.ErrNoSolution is a legitimate outcome
		}

		fmt.Println(notation.Format(result.Cantus))
		fmt.Println(notation.Format(result.Counterpoint))
	}

Runs are randomized by default. Inject a seeded source with WithRand for
reproducible output, and set WithStepBudget to bound worst-case search.
*/
package descant
