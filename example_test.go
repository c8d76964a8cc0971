package descant_test

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/aretw0/descant"
	"github.com/aretw0/descant/pkg/notation"
	"github.com/aretw0/descant/pkg/theory"
)

// Generating a counterpoint above a short cantus firmus in C ionian.
func Example() {
	cantus, err := notation.Parse("c4 d4 e4 d4 c4")
	if err != nil {
		log.Fatal(err)
	}

	eng := descant.New(
		descant.WithRand(rand.New(rand.NewSource(1))),
	)

	scale := theory.Scale{Root: theory.NewNote(theory.C, theory.Natural), Mode: theory.Ionian}
	result, err := eng.Generate(context.Background(), cantus, scale, theory.Above)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(result.Counterpoint) == len(cantus))
	// Output: true
}
