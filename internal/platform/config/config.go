// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Actuator  ActuatorConfig  `koanf:"actuator"`
	Probes    ProbesConfig    `koanf:"probes"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// ShutdownTimeout bounds the graceful drain after a termination signal.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings.
// A zero RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// Read modes for the actuator endpoints.
const (
	ReadModeCached   = "cached"
	ReadModeDirect   = "direct"
	ReadModeCombined = "combined"
)

// ActuatorConfig holds settings for the actuator endpoints.
type ActuatorConfig struct {
	BasePath string `koanf:"base_path"`

	// ReadMode selects how endpoints answer: from the cached verdict, by
	// querying every probe, or both ANDed together.
	ReadMode string `koanf:"read_mode"`

	// RefreshWaitTimeout caps POST {base_path}/refresh?wait=true.
	RefreshWaitTimeout time.Duration `koanf:"refresh_wait_timeout"`
}

// ProbesConfig holds the dependency probes registered at startup.
type ProbesConfig struct {
	Postgres   PostgresProbeConfig   `koanf:"postgres"`
	Redis      RedisProbeConfig      `koanf:"redis"`
	Downstream DownstreamProbeConfig `koanf:"downstream"`
}

// ProbeConfig holds settings shared by every ping-based probe.
type ProbeConfig struct {
	Enabled bool          `koanf:"enabled"`
	Timeout time.Duration `koanf:"timeout"`

	// FailureThreshold is the number of consecutive failed pings after
	// which the probe reports not alive. Zero keeps it alive forever.
	FailureThreshold int `koanf:"failure_threshold"`
}

// PostgresProbeConfig configures the PostgreSQL probe.
type PostgresProbeConfig struct {
	ProbeConfig `koanf:",squash"`

	DSN      string `koanf:"dsn"`
	MaxConns int32  `koanf:"max_conns"`
}

// RedisProbeConfig configures the Redis probe.
type RedisProbeConfig struct {
	ProbeConfig `koanf:",squash"`

	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// DownstreamProbeConfig configures the probe against the downstream HTTP
// service reached through the client section.
type DownstreamProbeConfig struct {
	ProbeConfig `koanf:",squash"`

	Name       string `koanf:"name"`
	HealthPath string `koanf:"health_path"`
}
