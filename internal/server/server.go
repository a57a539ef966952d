// Package server exposes the competition import over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/soyrandom1/scrambles-matcher/internal/config"
	"github.com/soyrandom1/scrambles-matcher/internal/wca"
	"github.com/soyrandom1/scrambles-matcher/pkg/importer"
)

const shutdownTimeout = 5 * time.Second

// Remote lists and imports competitions from the WCA website.
type Remote interface {
	ManagedCompetitions(ctx context.Context) ([]wca.CompetitionSummary, error)
	ImportFromCompetition(ctx context.Context, competitionID string, load importer.Loader) error
}

// Server is the HTTP import service. It keeps no state between requests.
type Server struct {
	cfg      config.ServerConfig
	remote   Remote
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *Metrics
	limiter  *IPRateLimiter
}

// New creates the service. remote may be nil, in which case the WCA routes
// answer 503.
func New(cfg config.ServerConfig, remote Remote, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	return &Server{
		cfg:      cfg,
		remote:   remote,
		logger:   logger,
		registry: registry,
		metrics:  NewMetrics(registry),
		limiter:  NewIPRateLimiter(limit, cfg.RateBurst),
	}
}

// Handler returns the service routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(s.logger))

	r.Get("/health", HealthHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Use(RateLimitMiddleware(s.limiter))
		r.Get("/competitions", s.handleCompetitions)
		r.Post("/import/wca/{competitionId}", s.handleImportWCA)
		r.Post("/import/wcif", s.handleImportFile(importer.SourceWCIF))
		r.Post("/import/xlsx", s.handleImportFile(importer.SourceXLSX))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "listening", slog.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
