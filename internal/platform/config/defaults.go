package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultProbeFailureThreshold = 3
	defaultPostgresMaxConns      = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "go-actuator",

		"actuator.base_path":            "/actuator",
		"actuator.read_mode":            ReadModeCached,
		"actuator.refresh_wait_timeout": "5s",

		"probes.postgres.enabled":           false,
		"probes.postgres.timeout":           "2s",
		"probes.postgres.failure_threshold": defaultProbeFailureThreshold,
		"probes.postgres.dsn":               "",
		"probes.postgres.max_conns":         defaultPostgresMaxConns,

		"probes.redis.enabled":           false,
		"probes.redis.timeout":           "1s",
		"probes.redis.failure_threshold": defaultProbeFailureThreshold,
		"probes.redis.addr":              "localhost:6379",
		"probes.redis.password":          "",
		"probes.redis.db":                0,

		"probes.downstream.enabled":           false,
		"probes.downstream.timeout":           "2s",
		"probes.downstream.failure_threshold": defaultProbeFailureThreshold,
		"probes.downstream.name":              "downstream",
		"probes.downstream.health_path":       "/health",
	}
}
