// Package config loads the service configuration. Values are layered, each
// overriding the last: built-in defaults, configs/base.yaml,
// configs/{profile}.yaml, then APP_* environment variables.
package config

import "time"

// Config is the complete service configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Client     ClientConfig     `koanf:"client"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
	Onboarding OnboardingConfig `koanf:"onboarding"`
}

// ServerConfig configures the inbound HTTP server. WriteTimeout also bounds
// request handling.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig selects the slog level (debug, info, warn, error) and output
// format (json, text).
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig configures the profile API client. Endpoint paths are joined
// to BaseURL.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig is the exponential backoff applied to idempotent requests.
// MaxAttempts counts the first try.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig trips the breaker after MaxFailures consecutive
// failures and probes again after Timeout with HalfOpenLimit requests.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig is a token bucket for outbound calls. Zero
// RequestsPerSecond disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig selects the OpenTelemetry exporter. Endpoint is required
// for the otlp exporter.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// OnboardingConfig bounds the in-memory form store.
type OnboardingConfig struct {
	FormTTL  time.Duration `koanf:"form_ttl"`
	MaxForms int           `koanf:"max_forms"`
}
