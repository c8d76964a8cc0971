package descant

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/aretw0/descant/internal/engine"
	"github.com/aretw0/descant/pkg/rules"
	"github.com/aretw0/descant/pkg/theory"
)

// Version of the descant library.
var Version = "0.3.0"

// Engine is the high-level entry point for the descant library.
// It wraps the internal search engine and provides a simplified API for
// consumers.
type Engine struct {
	logger   *slog.Logger
	rnd      *rand.Rand
	pipeline []rules.Rule
	budget   int
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRand injects the randomness source used to shuffle candidate order.
// Inject a seeded source for reproducible output.
func WithRand(rnd *rand.Rand) Option {
	return func(e *Engine) {
		e.rnd = rnd
	}
}

// WithRules replaces the default first-species rule pipeline.
func WithRules(pipeline []rules.Rule) Option {
	return func(e *Engine) {
		e.pipeline = pipeline
	}
}

// WithStepBudget caps the number of search steps before the run is aborted
// with ErrBudgetExhausted. Zero (the default) means unbounded.
func WithStepBudget(steps int) Option {
	return func(e *Engine) {
		e.budget = steps
	}
}

// New initializes a new descant Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{
		pipeline: rules.Default(),
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.DiscardHandler)
	}
	if eng.rnd == nil {
		eng.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return eng
}

// Result is a successful generation: the fixed cantus firmus, the produced
// counterpoint of equal length, and how much search it took.
type Result struct {
	Cantus       []theory.Pitch
	Counterpoint []theory.Pitch
	Steps        int
}

// Generate searches for a counterpoint line against the cantus firmus in
// the given scale and direction. A failed search returns ErrNoSolution;
// a capped search returns ErrBudgetExhausted. Both are expected outcomes
// the caller must distinguish from a valid sequence.
func (e *Engine) Generate(ctx context.Context, cantus []theory.Pitch, scale theory.Scale, dir theory.Direction) (*Result, error) {
	core := engine.New(
		engine.WithRules(e.pipeline),
		engine.WithRand(e.rnd),
		engine.WithLogger(e.logger),
		engine.WithStepBudget(e.budget),
	)

	line, stats, err := core.Generate(ctx, cantus, scale, dir)
	if err != nil {
		return nil, err
	}

	return &Result{
		Cantus:       cantus,
		Counterpoint: line,
		Steps:        stats.Steps,
	}, nil
}
