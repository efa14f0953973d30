// Package http wires the API and metrics servers: router, middleware chain, health checks
// and graceful shutdown.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	hashidHTTP "github.com/allisson/selfhash/internal/hashid/http"
	"github.com/allisson/selfhash/internal/metrics"
)

// RouterConfig holds the optional middleware settings of the API router.
type RouterConfig struct {
	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int
	CORSEnabled             bool
	CORSAllowOrigins        string
	MetricsNamespace        string
}

// Server is the public API server.
type Server struct {
	server       *http.Server
	router       *gin.Engine
	logger       *slog.Logger
	hashHandler  *hashidHTTP.HashHandler
	shuttingDown atomic.Bool
}

// NewServer creates the API server. Call SetupRouter before Start.
func NewServer(hashHandler *hashidHTTP.HashHandler, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger:      logger,
		hashHandler: hashHandler,
	}
}

// SetupRouter builds the middleware chain and registers all routes. ctx bounds the
// background work of the middlewares (limiter cleanup). A nil metricsProvider disables
// HTTP metrics.
func (s *Server) SetupRouter(ctx context.Context, cfg RouterConfig, metricsProvider *metrics.Provider) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	if s.hashHandler != nil {
		s.hashHandler.RegisterRoutes(v1.Group("/hashes"))
	}

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the router, mainly for tests.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. http.ErrServerClosed is not an error.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start http server: %w", err)
	}
	return nil
}

// Shutdown flips readiness off and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shuttingDown.Store(true)
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports not_ready while draining or when no hash handler is wired.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"hash_generator": "ok"}
	ready := true

	if s.hashHandler == nil {
		components["hash_generator"] = "error"
		ready = false
	}
	if s.shuttingDown.Load() {
		components["server"] = "shutting_down"
		ready = false
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
