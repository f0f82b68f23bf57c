// Package server implements the drawset preview HTTP service.
//
// Routes:
//
//	GET  /healthz            liveness and version
//	POST /v1/render          render a document to SVG
//	POST /v1/arrange         arrange a document and return object rects as JSON
//	GET  /v1/renders/{id}    fetch a previous render by id
//
// Every request builds its own object list; the only state shared between
// requests is the pipeline runner and its cache.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/drawset/pkg/canvas"
	"github.com/matzehuels/drawset/pkg/pipeline"
)

const (
	// DefaultMaxBodyBytes caps request bodies when Config.MaxBodyBytes is zero.
	DefaultMaxBodyBytes = 1 << 20

	// DefaultRenderTTL is how long renders stay fetchable by id.
	DefaultRenderTTL = time.Hour

	shutdownTimeout = 10 * time.Second
)

// Config configures a Server.
type Config struct {
	Addr         string
	MaxBodyBytes int64
	Layout       canvas.Layout
	Background   canvas.Color
	RenderTTL    time.Duration
}

// Server serves the preview API.
type Server struct {
	cfg    Config
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server rendering through runner.
func New(runner *pipeline.Runner, cfg Config, logger *log.Logger) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.RenderTTL <= 0 {
		cfg.RenderTTL = DefaultRenderTTL
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{cfg: cfg, runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.With(s.limitBody).Post("/render", s.handleRender)
		r.With(s.limitBody).Post("/arrange", s.handleArrange)
		r.Get("/renders/{id}", s.handleGetRender)
	})
	return r
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
