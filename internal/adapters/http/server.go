// Package http exposes the solver over a JSON API. Solver failures
// (bad brackets, singular derivatives, divergence) are part of the
// API's vocabulary, so they come back as 200 with an "error" field;
// only an undecodable body is a 400.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zofmath/zof"
	"github.com/zofmath/zof/pkg/domain"
)

// Solver is the single engine operation the API needs.
type Solver func(req domain.Request) (*domain.Result, error)

// Server routes API requests to the solver.
type Server struct {
	solve   Solver
	logger  *slog.Logger
	metrics *metrics
}

// NewHandler builds the API router around solve. A nil solve uses
// zof.Solve directly.
func NewHandler(solve Solver, logger *slog.Logger) http.Handler {
	if solve == nil {
		solve = zof.Solve
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{solve: solve, logger: logger, metrics: newMetrics()}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/api/solve", s.handleSolve)
	r.Get("/api/methods", s.handleMethods)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// errorResponse is the body returned for any solver failure.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	// Decode into a map first so numeric fields sent as strings
	// ("tolerance": "1e-8") still land; mapstructure weak typing does
	// the coercion.
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.logger.Warn("undecodable solve body", "err", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	var req domain.Request
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &req,
	})
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := dec.Decode(raw); err != nil {
		s.logger.Warn("undecodable solve body", "err", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := s.solve(req)
	if err != nil {
		s.logger.Info("solve failed",
			"method", string(req.Method), "function", req.Function, "err", err)
		s.metrics.observe(req.Method, "error", time.Since(start))
		writeJSON(w, s.logger, http.StatusOK, errorResponse{Error: err.Error()})
		return
	}

	s.logger.Info("solve succeeded",
		"method", string(req.Method), "root", res.Root, "iterations", res.Iterations)
	s.metrics.observe(req.Method, "ok", time.Since(start))
	writeJSON(w, s.logger, http.StatusOK, res)
}

// methodInfo describes one method for API discovery.
type methodInfo struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Params  []string `json:"params"`
	Columns []string `json:"columns"`
}

func (s *Server) handleMethods(w http.ResponseWriter, r *http.Request) {
	methods := domain.Methods()
	out := make([]methodInfo, len(methods))
	for i, m := range methods {
		out[i] = methodInfo{
			ID:      string(m),
			Name:    m.DisplayName(),
			Params:  m.Params(),
			Columns: m.Columns(),
		}
	}
	writeJSON(w, s.logger, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": zof.Version,
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "err", err)
	}
}
