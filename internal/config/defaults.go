package config

const (
	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "json",

		"store.guard.enabled":                         false,
		"store.guard.retry.max_attempts":              defaultRetryMaxAttempts,
		"store.guard.retry.initial_interval":          "100ms",
		"store.guard.retry.max_interval":              "10s",
		"store.guard.retry.multiplier":                defaultRetryMultiplier,
		"store.guard.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"store.guard.circuit_breaker.timeout":         "30s",
		"store.guard.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"store.guard.rate_limit.requests_per_second":  0.0,
		"store.guard.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "didhub",
	}
}
