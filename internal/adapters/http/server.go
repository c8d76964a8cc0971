// Package http exposes the generator and score stores as a JSON API.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	mathrand "math/rand"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/descant"
	"github.com/aretw0/descant/pkg/notation"
	"github.com/aretw0/descant/pkg/ports"
	"github.com/aretw0/descant/pkg/theory"
)

// Server wires the generation engine and a score store behind HTTP handlers.
type Server struct {
	store  ports.ScoreStore
	logger *slog.Logger
	budget int
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the structured logger used by the handlers.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithStepBudget sets the default search budget applied to requests that
// do not carry their own.
func WithStepBudget(steps int) Option {
	return func(s *Server) {
		s.budget = steps
	}
}

// NewHandler creates the HTTP handler for the API.
func NewHandler(store ports.ScoreStore, opts ...Option) http.Handler {
	server := &Server{store: store}
	for _, opt := range opts {
		opt(server)
	}
	if server.logger == nil {
		server.logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Get("/healthz", server.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/generate", server.generate)
		r.Get("/modes", server.modes)
		r.Get("/scores", server.listScores)
		r.Get("/scores/{id}", server.getScore)
		r.Delete("/scores/{id}", server.deleteScore)
	})

	return r
}

// GenerateRequest is the body of POST /v1/generate.
type GenerateRequest struct {
	Cantus    string `json:"cantus"`
	Root      string `json:"root"`
	Mode      string `json:"mode"`
	Direction string `json:"direction"`
	Seed      *int64 `json:"seed,omitempty"`
	Budget    int    `json:"budget,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": descant.Version,
	})
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	cantus, err := notation.Parse(req.Cantus)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid cantus: %w", err))
		return
	}

	root, err := notation.ParseNote(req.Root)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid root: %w", err))
		return
	}

	mode, err := theory.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	dir, err := theory.ParseDirection(req.Direction)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	budget := req.Budget
	if budget == 0 {
		budget = s.budget
	}

	opts := []descant.Option{
		descant.WithLogger(s.logger),
		descant.WithStepBudget(budget),
	}
	if req.Seed != nil {
		opts = append(opts, descant.WithRand(mathrand.New(mathrand.NewSource(*req.Seed))))
	}

	scale := theory.Scale{Root: root, Mode: mode}
	result, err := descant.New(opts...).Generate(r.Context(), cantus, scale, dir)
	if err != nil {
		switch {
		case errors.Is(err, descant.ErrNoSolution):
			generateTotal.WithLabelValues("no_solution").Inc()
			writeError(w, http.StatusUnprocessableEntity, err)
		case errors.Is(err, descant.ErrBudgetExhausted):
			generateTotal.WithLabelValues("budget_exhausted").Inc()
			writeError(w, http.StatusServiceUnavailable, err)
		case errors.Is(err, descant.ErrEmptyCantus):
			generateTotal.WithLabelValues("bad_input").Inc()
			writeError(w, http.StatusBadRequest, err)
		default:
			generateTotal.WithLabelValues("error").Inc()
			s.logger.Error("generation failed", "error", err)
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	generateTotal.WithLabelValues("ok").Inc()
	searchSteps.Observe(float64(result.Steps))

	score := descant.NewScore(descant.NewID(), result, scale, dir)
	if err := s.store.Save(r.Context(), score); err != nil {
		s.logger.Error("failed to persist score", "id", score.ID, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.logger.Info("score generated", "id", score.ID, "steps", score.Steps)
	writeJSON(w, http.StatusCreated, score)
}

func (s *Server) modes(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0)
	for _, m := range theory.Modes() {
		names = append(names, m.String())
	}
	writeJSON(w, http.StatusOK, map[string][]string{"modes": names})
}

func (s *Server) listScores(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"scores": ids})
}

func (s *Server) getScore(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	score, err := s.store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, descant.ErrScoreNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, score)
}

func (s *Server) deleteScore(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
