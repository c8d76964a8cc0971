// Package engine drives the backtracking search for a counterpoint line.
//
// The search is a chronological depth-first exploration over candidate
// pitches, pruned by the rule pipeline at every position and randomized in
// exploration order. Exhaustion is a normal outcome, not a fault.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/aretw0/descant/pkg/rules"
	"github.com/aretw0/descant/pkg/theory"
)

// ErrNoSolution signals that the exhaustive search completed without
// finding a rule-valid line. Callers must treat this as a legitimate
// result, not an error condition of the engine.
var ErrNoSolution = errors.New("no counterpoint satisfies the rules")

// ErrBudgetExhausted signals that the search was aborted after spending its
// step budget. Unlike ErrNoSolution it proves nothing about feasibility.
var ErrBudgetExhausted = errors.New("search budget exhausted")

// ErrEmptyCantus is returned for a zero-length cantus firmus.
var ErrEmptyCantus = errors.New("cantus firmus must not be empty")

// Stats reports how much work a generation run performed.
type Stats struct {
	// Steps counts candidate expansions, including dead ends.
	Steps int
}

// Engine owns the search configuration: the rule pipeline, the randomness
// source for exploration order, and an optional step budget.
type Engine struct {
	pipeline []rules.Rule
	rnd      *rand.Rand
	logger   *slog.Logger
	budget   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules replaces the default rule pipeline.
func WithRules(pipeline []rules.Rule) Option {
	return func(e *Engine) {
		e.pipeline = pipeline
	}
}

// WithRand injects the randomness source used to shuffle candidates.
// Tests pass a seeded source for deterministic exploration order.
func WithRand(rnd *rand.Rand) Option {
	return func(e *Engine) {
		e.rnd = rnd
	}
}

// WithLogger sets a structured logger for search diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStepBudget caps the number of candidate expansions. Zero means
// unbounded. When the cap is hit the run fails with ErrBudgetExhausted.
func WithStepBudget(steps int) Option {
	return func(e *Engine) {
		e.budget = steps
	}
}

// New creates an engine with the default pipeline and a time-seeded
// randomness source.
func New(opts ...Option) *Engine {
	e := &Engine{
		pipeline: rules.Default(),
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate searches for a counterpoint line against the cantus firmus.
// On success the returned line has exactly one pitch per cantus pitch.
func (e *Engine) Generate(ctx context.Context, cantus []theory.Pitch, scale theory.Scale, dir theory.Direction) ([]theory.Pitch, Stats, error) {
	if len(cantus) == 0 {
		return nil, Stats{}, ErrEmptyCantus
	}

	run := &search{
		engine: e,
		ctx:    ctx,
		cantus: cantus,
		scale:  scale,
		dir:    dir,
	}

	line, err := run.solve(nil)
	stats := Stats{Steps: run.steps}
	if err != nil {
		e.logger.Debug("search failed", "err", err, "steps", run.steps, "scale", scale.String(), "direction", dir.String())
		return nil, stats, err
	}

	e.logger.Debug("search succeeded", "steps", run.steps, "length", len(line))
	return line, stats, nil
}

// search holds the per-run state so Engine itself stays reusable.
type search struct {
	engine *Engine
	ctx    context.Context
	cantus []theory.Pitch
	scale  theory.Scale
	dir    theory.Direction
	steps  int
}

// solve extends the partial line by one position and recurses. The first
// recursive success propagates up untouched; sibling candidates after a
// success are never explored.
func (s *search) solve(line []theory.Pitch) ([]theory.Pitch, error) {
	if err := s.ctx.Err(); err != nil {
		return nil, err
	}
	if len(line) == len(s.cantus) {
		return line, nil
	}

	pos := len(line)
	rctx := &rules.Context{
		Cantus:    s.cantus,
		Line:      line,
		Pos:       pos,
		Scale:     s.scale,
		Direction: s.dir,
	}

	candidates := rules.Filter(s.engine.pipeline, rctx, rawCandidates(s.cantus, pos, s.dir))
	s.engine.rnd.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, candidate := range candidates {
		if s.engine.budget > 0 && s.steps >= s.engine.budget {
			return nil, ErrBudgetExhausted
		}
		s.steps++

		// Full slice expression: the recursion must never alias our tail.
		next := append(line[:len(line):len(line)], candidate)
		result, err := s.solve(next)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, ErrNoSolution) {
			return nil, err
		}
	}

	return nil, ErrNoSolution
}
