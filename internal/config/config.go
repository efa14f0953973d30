// Package config loads application configuration from environment variables, optionally
// seeded from the nearest .env file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	hashidDomain "github.com/allisson/selfhash/internal/hashid/domain"
)

var logLevels = []interface{}{"debug", "info", "warn", "error"}

// Config holds all application configuration.
type Config struct {
	// ServerHost is the address the API server binds to.
	ServerHost string
	// ServerPort is the API server port.
	ServerPort int

	// LogLevel is one of debug, info, warn or error.
	LogLevel string

	// HashPrefix is prepended to every issued hash.
	HashPrefix string
	// HashAlgorithm names the main digest algorithm.
	HashAlgorithm string
	// HashEncoding names the text encoding of digests.
	HashEncoding string
	// HashCrcLength truncates the checksum to this many characters; below 1 keeps it whole.
	HashCrcLength int

	// RateLimitEnabled turns on the per-IP limiter for /v1 endpoints.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the sustained per-IP request rate.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the per-IP burst size.
	RateLimitBurst int

	// CORSEnabled turns on CORS handling.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins.
	CORSAllowOrigins string

	// MetricsEnabled turns on business and HTTP metrics and the metrics server.
	MetricsEnabled bool
	// MetricsNamespace prefixes every metric name.
	MetricsNamespace string
	// MetricsPort is the port of the dedicated /metrics server.
	MetricsPort int

	// ShutdownTimeout bounds graceful shutdown of the servers.
	ShutdownTimeout time.Duration
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		// Server
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Hash profile
		HashPrefix:    env.GetString("HASH_PREFIX", ""),
		HashAlgorithm: env.GetString("HASH_ALGORITHM", "sha256"),
		HashEncoding:  env.GetString("HASH_ENCODING", "hex"),
		HashCrcLength: env.GetInt("HASH_CRC_LENGTH", 0),

		// Rate limiting
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "selfhash"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),
	}
}

// Validate checks ports, log level, prefix length and limiter settings. Algorithm and
// encoding names are checked when the hash generator is built.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.LogLevel, validation.Required, validation.In(logLevels...)),
		validation.Field(&c.HashPrefix, validation.Length(0, hashidDomain.MaxPrefixLength)),
		validation.Field(&c.HashAlgorithm, validation.Required),
		validation.Field(&c.HashEncoding, validation.Required),
		validation.Field(&c.RateLimitRequestsPerSec,
			validation.When(c.RateLimitEnabled, validation.Required, validation.Min(0.0).Exclusive()),
		),
		validation.Field(&c.RateLimitBurst,
			validation.When(c.RateLimitEnabled, validation.Required, validation.Min(1)),
		),
		validation.Field(&c.MetricsNamespace, validation.When(c.MetricsEnabled, validation.Required)),
		validation.Field(&c.MetricsPort,
			validation.When(c.MetricsEnabled, validation.Required, validation.Min(1), validation.Max(65535)),
		),
	)
}

// GetGinMode returns the Gin mode for the configured log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv loads the first .env file found walking up from the working directory.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
