// Package server exposes grid searches over HTTP.
//
// Routes:
//
//	GET  /health              liveness probe
//	GET  /metrics             Prometheus exposition
//	GET  /api/v1/algorithms   algorithms with their heuristic choices
//	POST /api/v1/search       search a text grid, JSON or GeoJSON result
//	POST /api/v1/render       search a text grid, PNG frame
//	POST /api/v1/paint        replay painter clicks, then search
package server

import (
	"net/http"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathgrid/heuristic"
	"github.com/katalvlaran/pathgrid/internal/config"
	"github.com/katalvlaran/pathgrid/internal/metrics"
	"github.com/katalvlaran/pathgrid/search"
)

// maxBodyBytes bounds every request body.
const maxBodyBytes = 8 << 20

// Server holds the shared state of the HTTP handlers.
type Server struct {
	logger   *zap.Logger
	metrics  *metrics.Collector
	validate *validator.Validate

	maxCells int
	cellSize int

	mu       sync.RWMutex
	defaults config.SearchConfig
}

// New returns a Server for cfg. A nil logger logs nothing; a nil collector
// gets a fresh one.
func New(cfg *config.Config, logger *zap.Logger, collector *metrics.Collector) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if collector == nil {
		collector = metrics.NewCollector()
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Server{
		logger:   logger,
		metrics:  collector,
		validate: v,
		maxCells: cfg.Server.MaxGridCells,
		cellSize: cfg.Grid.CellSize,
		defaults: cfg.Search,
	}
}

// SetDefaults replaces the algorithm and heuristic used when a request
// leaves them empty. It is safe to call while serving.
func (s *Server) SetDefaults(sc config.SearchConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults = sc
}

// Defaults returns the current search defaults.
func (s *Server) Defaults() config.SearchConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaults
}

// Handler builds the chi router with all middleware and routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID())
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger())
	r.Use(middleware.Recoverer)
	r.Use(CORS())

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/algorithms", s.handleAlgorithms)
		r.Post("/search", s.handleSearch)
		r.Post("/render", s.handleRender)
		r.Post("/paint", s.handlePaint)
	})

	return r
}

// resolve fills empty selectors from the current defaults.
func (s *Server) resolve(algName, kindName string) (search.Algorithm, heuristic.Kind, error) {
	return s.Defaults().Resolve(algName, kindName)
}

// observe times fn and records the search outcome.
func (s *Server) observe(alg search.Algorithm, kind heuristic.Kind, fn func() (search.Result, error)) (search.Result, error) {
	started := time.Now()
	res, err := fn()
	if err != nil {
		s.metrics.ObserveSearchError(alg, kind)
		return res, err
	}
	s.metrics.ObserveSearch(alg, kind, res, time.Since(started))

	return res, nil
}
