// Package server provides the HTTP server implementation for the locale service.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shelfline/locale-service/internal/config"
	apperrors "github.com/shelfline/locale-service/internal/errors"
	"github.com/shelfline/locale-service/internal/handler"
	"github.com/shelfline/locale-service/internal/health"
	"github.com/shelfline/locale-service/internal/metrics"
	"github.com/shelfline/locale-service/internal/middleware"
	"github.com/shelfline/locale-service/internal/service"
	"github.com/shelfline/locale-service/internal/store"
)

// Server represents the HTTP server.
type Server struct {
	router          *mux.Router
	httpServer      *http.Server
	settingsHandler *handler.SettingsHandler
	formatHandler   *handler.FormatHandler
	healthCheck     *health.HealthCheck
	errorHandler    *apperrors.Handler
	metrics         *metrics.Metrics
	logger          *zap.Logger
	cfg             *config.Config
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.Config,
	settings *service.SettingsService,
	settingsStore store.SettingsStore,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Server {
	router := mux.NewRouter()
	errorHandler := apperrors.NewHandler(logger)
	settingsHandler := handler.NewSettingsHandler(settings, errorHandler, logger)
	formatHandler := handler.NewFormatHandler(settings, errorHandler, m, logger)
	healthCheck := health.NewHealthCheck(settingsStore, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		router:          router,
		httpServer:      httpServer,
		settingsHandler: settingsHandler,
		formatHandler:   formatHandler,
		healthCheck:     healthCheck,
		errorHandler:    errorHandler,
		metrics:         m,
		logger:          logger,
		cfg:             cfg,
	}
}

// SetupRoutes configures all HTTP routes.
func (s *Server) SetupRoutes() {
	// Setup middleware chain
	middlewareChain := []func(http.Handler) http.Handler{
		middleware.Recovery(s.logger),
		middleware.RequestID,
		middleware.Logging(s.logger, s.metrics),
		middleware.CORS([]string{"*"}),
	}

	// Add rate limiter if enabled
	if s.cfg.RateLimiter.Enabled {
		rateLimiter := middleware.NewRateLimiter(
			s.cfg.RateLimiter.RequestsPerSecond,
			s.cfg.RateLimiter.BurstSize,
			s.logger,
		)
		middlewareChain = append(middlewareChain, rateLimiter.Limit)
	}

	// Apply middleware to router
	chain := middleware.Chain(middlewareChain...)
	s.router.Use(func(next http.Handler) http.Handler {
		return chain(next)
	})

	// Health check endpoints
	s.router.HandleFunc("/health", s.healthCheck.LivenessHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/ready", s.healthCheck.ReadinessHandler).Methods(http.MethodGet)

	// Metrics endpoint
	if s.cfg.Metrics.Enabled {
		s.router.Handle(s.cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	// API v1 routes
	v1 := s.router.PathPrefix("/v1").Subrouter()

	// Tenant onboarding and settings
	v1.HandleFunc("/tenants", s.settingsHandler.ProvisionTenant).Methods(http.MethodPost)
	v1.HandleFunc("/tenants/{tenant_id}/settings", s.settingsHandler.GetSettings).Methods(http.MethodGet)
	v1.HandleFunc("/tenants/{tenant_id}/settings", s.settingsHandler.UpdateSettings).Methods(http.MethodPut)

	// Settings form prefill
	v1.HandleFunc("/presets/{country}", s.settingsHandler.GetPreset).Methods(http.MethodGet)

	// Formatting surface consumed by every page
	v1.HandleFunc("/tenants/{tenant_id}/format", s.formatHandler.Format).Methods(http.MethodPost)

	// Not found handler
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		s.errorHandler.WriteErrorResponse(w, http.StatusNotFound, apperrors.ErrCodeInvalidRequest, "endpoint not found", requestID)
	})

	// Method not allowed handler
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		s.errorHandler.WriteErrorResponse(w, http.StatusMethodNotAllowed, apperrors.ErrCodeInvalidRequest, "method not allowed", requestID)
	})
}

// Router exposes the configured router, used by tests.
func (s *Server) Router() *mux.Router {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
