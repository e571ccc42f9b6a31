package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Actuator.validate(),
		c.Probes.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp", "prometheus":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp, prometheus; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (a *ActuatorConfig) validate() error {
	var errs []error

	if !strings.HasPrefix(a.BasePath, "/") || strings.HasSuffix(a.BasePath, "/") {
		errs = append(errs, fmt.Errorf("actuator.base_path must start and not end with '/', got %q", a.BasePath))
	}

	switch a.ReadMode {
	case ReadModeCached, ReadModeDirect, ReadModeCombined:
		// Valid modes.
	default:
		errs = append(errs, fmt.Errorf("actuator.read_mode must be one of: cached, direct, combined; got %q", a.ReadMode))
	}

	if a.RefreshWaitTimeout <= 0 {
		errs = append(errs, errors.New("actuator.refresh_wait_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (p *ProbesConfig) validate() error {
	var errs []error

	if p.Postgres.Enabled && p.Postgres.DSN == "" {
		errs = append(errs, errors.New("probes.postgres.dsn must not be empty when enabled"))
	}
	if p.Redis.Enabled && p.Redis.Addr == "" {
		errs = append(errs, errors.New("probes.redis.addr must not be empty when enabled"))
	}
	if p.Downstream.Enabled && p.Downstream.Name == "" {
		errs = append(errs, errors.New("probes.downstream.name must not be empty when enabled"))
	}

	errs = append(errs,
		p.Postgres.ProbeConfig.validate("probes.postgres"),
		p.Redis.ProbeConfig.validate("probes.redis"),
		p.Downstream.ProbeConfig.validate("probes.downstream"),
	)

	return errors.Join(errs...)
}

func (pc *ProbeConfig) validate(prefix string) error {
	if !pc.Enabled {
		return nil
	}

	var errs []error

	if pc.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if pc.FailureThreshold < 0 {
		errs = append(errs, fmt.Errorf("%s.failure_threshold must not be negative, got %d", prefix, pc.FailureThreshold))
	}

	return errors.Join(errs...)
}
