package config_test

import (
	"testing"
	"time"

	"github.com/didstack/didhub/internal/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Store.Guard.Enabled {
		t.Error("Store.Guard.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
	if !cfg.Store.Guard.Enabled {
		t.Error("Store.Guard.Enabled = false, want true for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Store.Guard.Retry.MaxAttempts != 3 {
		t.Errorf("Store.Guard.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Store.Guard.Retry.MaxAttempts)
	}
	if cfg.Store.Guard.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Store.Guard.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Store.Guard.CircuitBreaker.MaxFailures)
	}
	if cfg.Telemetry.ServiceName != "didhub" {
		t.Errorf("Telemetry.ServiceName = %q, want \"didhub\" (from base)", cfg.Telemetry.ServiceName)
	}
}

func TestLoad_ProdInheritsRetryFromBase(t *testing.T) {
	t.Chdir("../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	// prod.yaml enables the guard but only overrides rate_limit; retry and
	// circuit breaker settings inherit from base.yaml.
	if cfg.Store.Guard.Retry.InitialInterval != 100*time.Millisecond {
		t.Errorf("Store.Guard.Retry.InitialInterval = %v, want 100ms (from base)",
			cfg.Store.Guard.Retry.InitialInterval)
	}
	if cfg.Store.Guard.RateLimit.RequestsPerSecond != 50 {
		t.Errorf("Store.Guard.RateLimit.RequestsPerSecond = %f, want 50 (from prod)",
			cfg.Store.Guard.RateLimit.RequestsPerSecond)
	}
	if cfg.Store.Guard.RateLimit.BurstSize != 10 {
		t.Errorf("Store.Guard.RateLimit.BurstSize = %d, want 10 (from prod)",
			cfg.Store.Guard.RateLimit.BurstSize)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../..")
	t.Setenv("DIDHUB_LOG_LEVEL", "warn")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" (env override)", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../..")
	t.Setenv("DIDHUB_TELEMETRY_SERVICE_NAME", "didhub-test")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Telemetry.ServiceName != "didhub-test" {
		t.Errorf("Telemetry.ServiceName = %q, want \"didhub-test\" (env override)", cfg.Telemetry.ServiceName)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../..")
	t.Setenv("DIDHUB_STORE_GUARD_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Store.Guard.Retry.MaxAttempts != 7 {
		t.Errorf("Store.Guard.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Store.Guard.Retry.MaxAttempts)
	}
}

func TestLoad_EnvOverrideDuration(t *testing.T) {
	t.Chdir("../..")
	t.Setenv("DIDHUB_STORE_GUARD_RETRY_INITIAL_INTERVAL", "250ms")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 250 * time.Millisecond
	if cfg.Store.Guard.Retry.InitialInterval != want {
		t.Errorf("Store.Guard.Retry.InitialInterval = %v, want %v (env override)",
			cfg.Store.Guard.Retry.InitialInterval, want)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_EmptyProfile(t *testing.T) {
	t.Chdir("../..")

	_, err := config.Load("")
	if err == nil {
		t.Fatal("Load(\"\") returned nil error, want error")
	}
}

func TestLoad_PathTraversalProfile(t *testing.T) {
	t.Chdir("../..")

	_, err := config.Load("../evil")
	if err == nil {
		t.Fatal("Load(\"../evil\") returned nil error, want error")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Format = "xml"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log format")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_GuardEnabledBadRetry(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Store.Guard.Enabled = true
	cfg.Store.Guard.Retry.MaxAttempts = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for guard with zero max_attempts")
	}
}

func TestValidate_GuardDisabledSkipsChecks(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Store.Guard.Enabled = false
	cfg.Store.Guard.Retry.MaxAttempts = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil when guard is disabled", err)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Store: config.StoreConfig{
			Guard: config.GuardConfig{
				Enabled: false,
				Retry: config.RetryConfig{
					MaxAttempts:     3,
					InitialInterval: 100 * time.Millisecond,
					MaxInterval:     10 * time.Second,
					Multiplier:      2.0,
				},
				CircuitBreaker: config.CircuitBreakerConfig{
					MaxFailures:   5,
					Timeout:       30 * time.Second,
					HalfOpenLimit: 1,
				},
				RateLimit: config.RateLimitConfig{
					RequestsPerSecond: 0,
					BurstSize:         1,
				},
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:     false,
			Exporter:    "stdout",
			ServiceName: "didhub",
		},
	}
}
