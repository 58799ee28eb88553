// Package server implements the mindweave HTTP API.
//
// The API exposes the outline-to-mind-map pipeline over three endpoints:
//
//   - POST /api/v1/generate: parse, lay out, and render an outline
//   - POST /api/v1/layout: parse and lay out an outline, returning layout JSON
//   - GET  /healthz: liveness probe
//
// Routing uses chi; every request gets a UUID request id and structured
// request logging via charmbracelet/log.
package server

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mindweave/mindweave/internal/config"
	"github.com/mindweave/mindweave/pkg/pipeline"
)

// Server hosts the HTTP API on top of a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	cfg    config.ServerConfig

	http *http.Server
}

// New creates a server. The runner must not be nil; a nil logger falls back
// to the default logger.
func New(cfg config.ServerConfig, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
		cfg:    cfg,
	}
	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	}
	return s
}

// Router builds the chi route tree. Exposed separately so tests can drive
// the handler stack without binding a socket.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Post("/layout", s.handleLayout)
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
	defer cancel()

	s.logger.Info("server shutting down")
	return s.http.Shutdown(shutdownCtx)
}
