package descant

import (
	"errors"

	"github.com/aretw0/descant/internal/engine"
)

// ErrNoSolution is returned when the exhaustive search proves no valid
// counterpoint exists for the given cantus, scale and direction.
var ErrNoSolution = engine.ErrNoSolution

// ErrBudgetExhausted is returned when the search hits its step budget
// before completing. It proves nothing about feasibility.
var ErrBudgetExhausted = engine.ErrBudgetExhausted

// ErrEmptyCantus is returned for a zero-length cantus firmus.
var ErrEmptyCantus = engine.ErrEmptyCantus

// ErrScoreNotFound is returned when a score ID cannot be found in a store.
var ErrScoreNotFound = errors.New("score not found")
