// Package server provides the HTTP server and REST API for the menu engine
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/barkeep/v1/internal/application/menu"
	"github.com/barkeep/v1/internal/infrastructure/config"
	"github.com/barkeep/v1/internal/infrastructure/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Server represents the HTTP server
type Server struct {
	config   *config.Config
	logger   *zap.Logger
	router   *chi.Mux
	server   *http.Server
	menu     *menu.Service
	validate *validator.Validate
	printer  *message.Printer
	registry *prometheus.Registry
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	menuService *menu.Service,
	registry *prometheus.Registry,
) *Server {
	s := &Server{
		config:   cfg,
		logger:   logger.Named("http-server"),
		menu:     menuService,
		validate: validator.New(),
		printer:  message.NewPrinter(language.English),
		registry: registry,
	}

	s.router = s.setupRouter()
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))

	r.Get("/health", s.handleHealth)
	if s.config.Server.EnableMetrics && s.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/bar", s.handleBar)
		r.Get("/menu", s.handleMenu)
		r.Get("/menu/surprise", s.handleSurprise)
		r.Get("/recipes/{name}", s.handleRecipe)

		r.Post("/orders", s.handlePlaceOrder)
		r.Get("/orders", s.handleListOrders)
		r.Post("/orders/{id}/confirm", s.handleConfirmOrder)

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", s.handleListBottles)
			r.Post("/", s.handleUpsertBottle)
			r.Patch("/", s.handleSetBottleField)
			r.Post("/toggle", s.handleToggleStock)
			r.Delete("/", s.handleDeleteBottle)
			r.Post("/upload", s.handleImportBarstock)
		})
	})

	return r
}

// Router exposes the configured router, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start begins listening for requests
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"version": s.config.App.Version,
	})
}
