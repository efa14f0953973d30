package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "", cfg.HashPrefix)
				assert.Equal(t, "sha256", cfg.HashAlgorithm)
				assert.Equal(t, "hex", cfg.HashEncoding)
				assert.Equal(t, 0, cfg.HashCrcLength)
				assert.True(t, cfg.RateLimitEnabled)
				assert.Equal(t, 10.0, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 20, cfg.RateLimitBurst)
				assert.False(t, cfg.CORSEnabled)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "selfhash", cfg.MetricsNamespace)
				assert.Equal(t, 8081, cfg.MetricsPort)
				assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
			},
		},
		{
			name: "load custom hash profile",
			envVars: map[string]string{
				"HASH_PREFIX":     "sess_",
				"HASH_ALGORITHM":  "blake3",
				"HASH_ENCODING":   "base64url",
				"HASH_CRC_LENGTH": "4",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "sess_", cfg.HashPrefix)
				assert.Equal(t, "blake3", cfg.HashAlgorithm)
				assert.Equal(t, "base64url", cfg.HashEncoding)
				assert.Equal(t, 4, cfg.HashCrcLength)
			},
		},
		{
			name: "load custom server and limiter configuration",
			envVars: map[string]string{
				"SERVER_HOST":                 "localhost",
				"SERVER_PORT":                 "9090",
				"RATE_LIMIT_ENABLED":          "false",
				"RATE_LIMIT_REQUESTS_PER_SEC": "2.5",
				"RATE_LIMIT_BURST":            "5",
				"SHUTDOWN_TIMEOUT_SECONDS":    "3",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost", cfg.ServerHost)
				assert.Equal(t, 9090, cfg.ServerPort)
				assert.False(t, cfg.RateLimitEnabled)
				assert.Equal(t, 2.5, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 5, cfg.RateLimitBurst)
				assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
			},
		},
		{
			name: "load custom cors and metrics configuration",
			envVars: map[string]string{
				"CORS_ENABLED":       "true",
				"CORS_ALLOW_ORIGINS": "https://a.example,https://b.example",
				"METRICS_ENABLED":    "false",
				"METRICS_NAMESPACE":  "tokens",
				"METRICS_PORT":       "9191",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.CORSEnabled)
				assert.Equal(t, "https://a.example,https://b.example", cfg.CORSAllowOrigins)
				assert.False(t, cfg.MetricsEnabled)
				assert.Equal(t, "tokens", cfg.MetricsNamespace)
				assert.Equal(t, 9191, cfg.MetricsPort)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg := Load()

			tt.validate(t, cfg)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerPort:              8080,
			LogLevel:                "info",
			HashAlgorithm:           "sha256",
			HashEncoding:            "hex",
			RateLimitEnabled:        true,
			RateLimitRequestsPerSec: 10,
			RateLimitBurst:          20,
			MetricsEnabled:          true,
			MetricsNamespace:        "selfhash",
			MetricsPort:             8081,
		}
	}

	t.Run("Success_Defaults", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("Success_DisabledFeaturesSkipChecks", func(t *testing.T) {
		cfg := valid()
		cfg.RateLimitEnabled = false
		cfg.RateLimitBurst = 0
		cfg.MetricsEnabled = false
		cfg.MetricsPort = 0

		assert.NoError(t, cfg.Validate())
	})

	t.Run("Success_MaxPrefixLength", func(t *testing.T) {
		cfg := valid()
		cfg.HashPrefix = strings.Repeat("p", 256)

		assert.NoError(t, cfg.Validate())
	})

	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{name: "Error_PortOutOfRange", mutate: func(cfg *Config) { cfg.ServerPort = 70000 }},
		{name: "Error_UnknownLogLevel", mutate: func(cfg *Config) { cfg.LogLevel = "trace" }},
		{name: "Error_PrefixTooLong", mutate: func(cfg *Config) { cfg.HashPrefix = strings.Repeat("p", 257) }},
		{name: "Error_EmptyAlgorithm", mutate: func(cfg *Config) { cfg.HashAlgorithm = "" }},
		{name: "Error_ZeroRate", mutate: func(cfg *Config) { cfg.RateLimitRequestsPerSec = 0 }},
		{name: "Error_ZeroBurst", mutate: func(cfg *Config) { cfg.RateLimitBurst = 0 }},
		{name: "Error_EmptyNamespace", mutate: func(cfg *Config) { cfg.MetricsNamespace = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_GetGinMode(t *testing.T) {
	assert.Equal(t, "debug", (&Config{LogLevel: "debug"}).GetGinMode())
	assert.Equal(t, "release", (&Config{LogLevel: "info"}).GetGinMode())
	assert.Equal(t, "release", (&Config{LogLevel: ""}).GetGinMode())
}
