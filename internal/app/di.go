// Package app provides the dependency injection container that assembles the application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/selfhash/internal/config"
	hashidDomain "github.com/allisson/selfhash/internal/hashid/domain"
	hashidHTTP "github.com/allisson/selfhash/internal/hashid/http"
	hashidService "github.com/allisson/selfhash/internal/hashid/service"
	hashidUseCase "github.com/allisson/selfhash/internal/hashid/usecase"
	"github.com/allisson/selfhash/internal/http"
	"github.com/allisson/selfhash/internal/metrics"
)

// Container holds the application components. Each one is built on first access and
// cached, initialization errors included.
type Container struct {
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Hash stack
	hashGenerator *hashidService.Generator
	hashUseCase   hashidUseCase.HashUseCase
	hashHandler   *hashidHTTP.HashHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	hashGeneratorInit   sync.Once
	hashUseCaseInit     sync.Once
	hashHandlerInit     sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a container for cfg.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the JSON logger. Logs go to stderr so CLI output on stdout stays clean.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLogLevel(c.config.LogLevel),
		}))
	})
	return c.logger
}

// MetricsProvider returns the Prometheus-backed meter provider, or nil when metrics are
// disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.setInitError("metricsProvider", fmt.Errorf("failed to create metrics provider: %w", err))
			return
		}
		c.metricsProvider = provider
	})
	return c.metricsProvider, c.initError("metricsProvider")
}

// BusinessMetrics returns the operation metrics recorder, a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.setInitError("businessMetrics", err)
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.setInitError("businessMetrics", fmt.Errorf("failed to create business metrics: %w", err))
			return
		}
		c.businessMetrics = bm
	})
	return c.businessMetrics, c.initError("businessMetrics")
}

// HashProfile builds the hash profile from configuration.
func (c *Container) HashProfile() hashidDomain.Profile {
	return hashidDomain.Profile{
		Prefix:    c.config.HashPrefix,
		Algorithm: hashidDomain.Algorithm(c.config.HashAlgorithm),
		Encoding:  hashidDomain.Encoding(c.config.HashEncoding),
		CrcLength: c.config.HashCrcLength,
	}
}

// HashGenerator returns the generator for the configured profile.
func (c *Container) HashGenerator() (*hashidService.Generator, error) {
	c.hashGeneratorInit.Do(func() {
		generator, err := hashidService.NewGenerator(c.HashProfile())
		if err != nil {
			c.setInitError("hashGenerator", fmt.Errorf("failed to create hash generator: %w", err))
			return
		}
		c.hashGenerator = generator
	})
	return c.hashGenerator, c.initError("hashGenerator")
}

// HashUseCase returns the hash use case, instrumented when metrics are enabled.
func (c *Container) HashUseCase() (hashidUseCase.HashUseCase, error) {
	c.hashUseCaseInit.Do(func() {
		generator, err := c.HashGenerator()
		if err != nil {
			c.setInitError("hashUseCase", err)
			return
		}

		useCase := hashidUseCase.NewHashUseCase(generator)
		if c.config.MetricsEnabled {
			bm, err := c.BusinessMetrics()
			if err != nil {
				c.setInitError("hashUseCase", err)
				return
			}
			useCase = hashidUseCase.NewHashUseCaseWithMetrics(useCase, bm)
		}
		c.hashUseCase = useCase
	})
	return c.hashUseCase, c.initError("hashUseCase")
}

// HashHandler returns the HTTP handler for /v1/hashes.
func (c *Container) HashHandler() (*hashidHTTP.HashHandler, error) {
	c.hashHandlerInit.Do(func() {
		useCase, err := c.HashUseCase()
		if err != nil {
			c.setInitError("hashHandler", err)
			return
		}
		c.hashHandler = hashidHTTP.NewHashHandler(useCase, c.Logger())
	})
	return c.hashHandler, c.initError("hashHandler")
}

// HTTPServer returns the routed API server. ctx bounds the router's background work and
// is only read on the first call.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	c.httpServerInit.Do(func() {
		handler, err := c.HashHandler()
		if err != nil {
			c.setInitError("httpServer", err)
			return
		}
		provider, err := c.MetricsProvider()
		if err != nil {
			c.setInitError("httpServer", err)
			return
		}

		server := http.NewServer(handler, c.config.ServerHost, c.config.ServerPort, c.Logger())
		server.SetupRouter(ctx, http.RouterConfig{
			RateLimitEnabled:        c.config.RateLimitEnabled,
			RateLimitRequestsPerSec: c.config.RateLimitRequestsPerSec,
			RateLimitBurst:          c.config.RateLimitBurst,
			CORSEnabled:             c.config.CORSEnabled,
			CORSAllowOrigins:        c.config.CORSAllowOrigins,
			MetricsNamespace:        c.config.MetricsNamespace,
		}, provider)
		c.httpServer = server
	})
	return c.httpServer, c.initError("httpServer")
}

// MetricsServer returns the /metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.setInitError("metricsServer", err)
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	return c.metricsServer, c.initError("metricsServer")
}

// Shutdown releases resources that outlive the servers. Servers are stopped by their
// runner.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (c *Container) setInitError(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) initError(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
