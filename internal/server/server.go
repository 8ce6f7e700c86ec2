// Package server implements the coursegraph HTTP API.
//
// Every endpoint takes a catalog in the request body (JSON by default, TOML
// or YAML by Content-Type) and runs it through pkg/pipeline, so the API and
// the CLI produce identical layouts.
//
//	POST /v1/layout?direction=TB|LR&expand=ID,...&collapsed=true
//	POST /v1/render?format=svg|png|pdf|dot|html|json&direction=TB|LR
//	POST /v1/courses/{id}/prerequisites
//	POST /v1/courses/{id}/dependents
//	GET  /healthz
//	GET  /metrics
//
// Failures are JSON bodies of the form
// {"code": "CYCLE_DETECTED", "message": "...", "request_id": "..."}.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/coursegraph/pkg/pipeline"
)

// Defaults for the HTTP server.
const (
	DefaultMaxBodyBytes    = 4 << 20
	DefaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 5 * time.Second
)

// Server serves the HTTP API.
type Server struct {
	runner  *pipeline.Runner
	metrics *Metrics
	logger  *log.Logger

	// Defaults supplies the direction and geometry used when a request does
	// not set them.
	Defaults pipeline.Options

	// MaxBodyBytes caps catalog uploads.
	MaxBodyBytes int64
}

// New creates a server. metrics may be nil to disable /metrics.
func New(runner *pipeline.Runner, metrics *Metrics, logger *log.Logger) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	return &Server{
		runner:       runner,
		metrics:      metrics,
		logger:       logger,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(logRequests(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		r.Use(limitBody(s.MaxBodyBytes))

		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)
		r.Route("/courses/{id}", func(r chi.Router) {
			r.Post("/prerequisites", s.handleRelations(relationPrerequisites))
			r.Post("/dependents", s.handleRelations(relationDependents))
		})
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
