// Package server exposes the name corrector as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/v1/health
//	GET  /api/v1/correct?name=<name>[&case=vocative][&genitive=true]...
//	POST /api/v1/correct   body: {"name":"...","options":{...}}
//	POST /api/v1/batch     body: {"names":[...],"records":[...],"options":{...}}
//	GET  /api/v1/inflect?name=<name>&case=<case>[&particles=false]
//	GET  /api/v1/rules/{case}
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/cours-de-latin/greeknames"
	"github.com/cours-de-latin/greeknames/internal/config"
)

// Server is the HTTP front end of a Corrector.
type Server struct {
	corrector  *greeknames.Corrector
	logger     *slog.Logger
	workers    int
	router     *chi.Mux
	httpServer *http.Server
}

// New builds the router and the http.Server from cfg. A nil logger means
// slog.Default().
func New(cfg *config.Config, corrector *greeknames.Corrector, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if corrector == nil {
		corrector = greeknames.New(nil)
	}

	s := &Server{
		corrector: corrector,
		logger:    logger,
		workers:   cfg.Batch.Workers,
		router:    chi.NewRouter(),
	}

	s.router.Use(RequestID)
	s.router.Use(chiMiddleware.RealIP)
	s.router.Use(Logger(logger))
	s.router.Use(chiMiddleware.Recoverer)
	s.router.Use(corsHandler(cfg.CORS))

	s.routes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

func (s *Server) routes() {
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/correct", s.handleCorrectQuery)
		r.Post("/correct", s.handleCorrect)
		r.Post("/batch", s.handleBatch)
		r.Get("/inflect", s.handleInflect)
		r.Get("/rules/{case}", s.handleRules)
	})
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}

func corsHandler(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: config.SplitList(cfg.AllowedOrigins),
		AllowedMethods: config.SplitList(cfg.AllowedMethods),
		AllowedHeaders: config.SplitList(cfg.AllowedHeaders),
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         cfg.MaxAge,
	}).Handler
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start listens and serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shut down server: %w", err)
	}
	return nil
}
