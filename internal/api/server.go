// Package api serves the brave book dataset over a read-only HTTP API.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/udisondev/zodiacbuddy/internal/bravebook"
	"github.com/udisondev/zodiacbuddy/internal/observe"
)

// Search limits for GET /targets.
const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// Server — HTTP-обработчики поверх неизменяемого Dataset.
type Server struct {
	ds       *bravebook.Dataset
	metrics  *observe.Metrics
	gatherer prometheus.Gatherer
}

// NewServer creates a Server. A nil gatherer disables GET /metrics.
func NewServer(ds *bravebook.Dataset, metrics *observe.Metrics, gatherer prometheus.Gatherer) *Server {
	return &Server{ds: ds, metrics: metrics, gatherer: gatherer}
}

// Routes returns the router with every endpoint mounted.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(observe.Middleware(s.metrics))

	r.Get("/healthz", s.handleHealth)
	r.Get("/books", s.handleListBooks)
	r.Get("/books/{id}", s.handleGetBook)
	r.Get("/targets", s.handleFindTargets)

	if s.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}
