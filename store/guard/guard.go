// Package guard wraps a store.Store with the resilience pipeline used for
// remote-backed stores: circuit breaker, rate limiting, OpenTelemetry tracing
// and metrics, and retry with exponential backoff on read operations.
//
// The guard applies middleware-like processing in this order:
//
//	Circuit Breaker → Rate Limiter → OTEL Span → Retry (reads only) → Store
//
// Construction:
//
//	guarded := guard.New(inner, &cfg.Store.Guard, "resource-store", metrics, logger)
//
// Read operations (FindByID, Query) are retried on transient failures. Write
// operations (Save, Update, Delete) execute exactly once and propagate the
// first failure, so publishers never double-apply a state transition.
//
// Domain outcomes (did.ErrNotFound, did.ErrConflict, did.ErrValidation) pass
// through unchanged and do not count as circuit breaker failures. When the
// breaker is open or the rate limiter rejects, the returned error wraps
// did.ErrUnavailable.
package guard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/didstack/didhub/did"
	"github.com/didstack/didhub/internal/config"
	"github.com/didstack/didhub/internal/telemetry"
	"github.com/didstack/didhub/store"
)

// Compile-time interface check.
var _ store.Store = (*Store)(nil)

// retryConfig holds the retry policy values extracted from config.RetryConfig
// using unexported types to avoid leaking the config package through the API.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Store decorates an inner store.Store with circuit breaker, rate limiting,
// retry, and OpenTelemetry instrumentation.
type Store struct {
	inner    store.Store
	name     string
	breaker  *gobreaker.CircuitBreaker[struct{}]
	limiter  *rate.Limiter // nil when rate limiting is disabled
	retryCfg retryConfig
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// New creates a guarded store wrapping inner.
//
// The name identifies the underlying store in traces, metrics, and health
// results (e.g., "resource-store"). If metrics is nil, metric recording is
// skipped; a nil logger discards.
func New(inner store.Store, cfg *config.GuardConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// Domain outcomes are valid responses from a healthy store.
			return err == nil || isDomainErr(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Store{
		inner:   inner,
		name:    name,
		breaker: cb,
		limiter: limiter,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Save persists a new resource through the guard. Not retried.
func (s *Store) Save(ctx context.Context, resource did.Resource) error {
	return s.execute(ctx, "Save", false, func(ctx context.Context) error {
		return s.inner.Save(ctx, resource)
	})
}

// Update replaces an existing resource through the guard. Not retried.
func (s *Store) Update(ctx context.Context, resource did.Resource) error {
	return s.execute(ctx, "Update", false, func(ctx context.Context) error {
		return s.inner.Update(ctx, resource)
	})
}

// FindByID returns the resource for the given DID, retrying transient failures.
func (s *Store) FindByID(ctx context.Context, didID string) (*did.Resource, error) {
	var res *did.Resource
	err := s.execute(ctx, "FindByID", true, func(ctx context.Context) error {
		var opErr error
		res, opErr = s.inner.FindByID(ctx, didID)
		return opErr
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Query returns all resources matching the filter, retrying transient failures.
func (s *Store) Query(ctx context.Context, filter did.Filter) ([]did.Resource, error) {
	var res []did.Resource
	err := s.execute(ctx, "Query", true, func(ctx context.Context) error {
		var opErr error
		res, opErr = s.inner.Query(ctx, filter)
		return opErr
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Delete removes the resource for the given DID through the guard. Not retried.
func (s *Store) Delete(ctx context.Context, didID string) error {
	return s.execute(ctx, "Delete", false, func(ctx context.Context) error {
		return s.inner.Delete(ctx, didID)
	})
}

// execute runs one store operation through the full pipeline:
// Circuit Breaker → Rate Limiter → OTEL Span → Retry (when retryable) → inner.
func (s *Store) execute(ctx context.Context, operation string, retryable bool, fn func(context.Context) error) error {
	start := time.Now()

	_, err := s.breaker.Execute(func() (struct{}, error) {
		if err := s.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		spanCtx, span := s.startSpan(ctx, operation)
		defer span.End()

		var opErr error
		if retryable {
			opErr = s.doWithRetry(spanCtx, operation, fn)
		} else {
			opErr = fn(spanCtx)
		}
		s.finishSpan(span, opErr)

		return struct{}{}, opErr
	})

	s.recordMetrics(ctx, operation, start, err)

	return s.wrapRejection(err)
}

// Name returns the store identifier (e.g., "resource-store").
// Together with HealthCheck, this method lets Store satisfy the health
// registry's Checker interface via structural typing, without an import.
func (s *Store) Name() string {
	return s.name
}

// HealthCheck reports the underlying store's availability based on the
// circuit breaker state; no store call is made.
//
// State mapping:
//   - "closed": store is operating normally; returns nil.
//   - "half-open": circuit breaker is probing recovery; returns a
//     descriptive error indicating degraded state.
//   - "open": store is unavailable and the breaker is rejecting
//     requests; returns a descriptive error indicating failure.
func (s *Store) HealthCheck(_ context.Context) error {
	state := s.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", s.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", s.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", s.name, state)
	}
}

// waitForRateLimit blocks until the rate limiter allows the operation or the
// context is canceled. Returns nil immediately when rate limiting is disabled.
func (s *Store) waitForRateLimit(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}
	if err := s.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s: rate limiter rejected operation: %w", s.name, did.ErrUnavailable)
	}
	return nil
}

// startSpan creates an OTEL client span for the store operation.
func (s *Store) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("guard")

	spanName := fmt.Sprintf("Store %s %s", operation, s.name)
	ctx, span := tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.operation", operation),
			attribute.String("peer.service", s.name),
		),
	)

	return ctx, span
}

// finishSpan records the operation outcome on the span.
func (s *Store) finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics records operation duration and count metrics.
// Metrics are recorded outside the circuit breaker so that circuit-open
// rejections are captured. Safe to call with nil metrics.
func (s *Store) recordMetrics(ctx context.Context, operation string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	duration := time.Since(start).Seconds()

	result := "success"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case err != nil && !isDomainErr(err):
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrStore.String(s.name),
		telemetry.AttrOperation.String(operation),
		telemetry.AttrResult.String(result),
	)

	s.metrics.StoreOperationDuration.Record(ctx, duration, attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// wrapRejection converts circuit breaker rejections into errors wrapping
// did.ErrUnavailable so callers can errors.Is() without importing gobreaker.
// The gobreaker sentinel stays in the chain for callers that want it.
func (s *Store) wrapRejection(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%s: %w: %w", s.name, did.ErrUnavailable, err)
	}
	return err
}

// isDomainErr reports whether err is a domain outcome rather than an
// infrastructure failure. Domain outcomes are never retried and never trip
// the circuit breaker.
func isDomainErr(err error) bool {
	return errors.Is(err, did.ErrNotFound) ||
		errors.Is(err, did.ErrConflict) ||
		errors.Is(err, did.ErrValidation)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
