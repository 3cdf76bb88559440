package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Store.Guard.validate(),
		c.Telemetry.validate(),
	)
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

func (g *GuardConfig) validate() error {
	if !g.Enabled {
		return nil
	}

	var errs []error

	if g.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("store.guard.retry.max_attempts must be >= 1, got %d", g.Retry.MaxAttempts))
	}
	if g.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("store.guard.retry.multiplier must be positive, got %f", g.Retry.Multiplier))
	}
	if g.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("store.guard.circuit_breaker.max_failures must be >= 1, got %d",
			g.CircuitBreaker.MaxFailures))
	}
	if g.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("store.guard.rate_limit.requests_per_second must not be negative, got %f",
			g.RateLimit.RequestsPerSecond))
	}
	if g.RateLimit.RequestsPerSecond > 0 && g.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("store.guard.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			g.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}
