// Package server provides the JSON API HTTP server.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/handlers"
	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server represents the HTTP server.
type Server struct {
	config  *config.Config
	logger  *zap.Logger
	router  *chi.Mux
	server  *http.Server
	service inbound.CatalogService
}

// NewServer creates a new HTTP server instance.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	service inbound.CatalogService,
) *Server {
	s := &Server{
		config:  cfg,
		logger:  logger,
		service: service,
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// setupRoutes configures the JSON API routes.
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewMetrics().Instrument())
	r.Use(middleware.Security())
	r.Use(middleware.CORS())
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())

	r.Get("/health", s.handleHealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints.
func (s *Server) setupAPIV1Routes(r chi.Router) {
	h := handlers.NewCatalogHandlers(s.service, s.logger)

	r.Route("/frameworks", func(r chi.Router) {
		r.Get("/", h.ListFrameworks)
		r.Post("/search", h.SearchFrameworks)
		r.Get("/{slug}", h.GetFramework)
		r.Post("/{slug}/steps", h.AssembleSteps)
	})

	r.Route("/ingredients", func(r chi.Router) {
		r.Get("/", h.ListIngredients)
		r.Get("/{id}", h.GetIngredient)
		r.Get("/{id}/frameworks", h.FrameworksUsingIngredient)
	})

	r.Post("/catalog/refresh", h.RefreshCatalog)
}

// handleHealthCheck reports liveness.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","version":%q}`, s.config.App.Version)
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("addr", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
