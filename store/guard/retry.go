package guard

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/didstack/didhub/internal/logging"
)

// jitterFraction is the fraction of the backoff interval used for jitter.
const jitterFraction = 0.25

// doWithRetry executes fn with exponential backoff between attempts.
// Only transient failures are retried; domain outcomes and context
// cancellation end the loop immediately.
func (s *Store) doWithRetry(ctx context.Context, operation string, fn func(context.Context) error) error {
	if s.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("guard: maxAttempts must be >= 1, got %d", s.retryCfg.maxAttempts)
	}

	var lastErr error

	for attempt := range s.retryCfg.maxAttempts {
		if attempt > 0 {
			if err := s.waitForRetry(ctx, operation, attempt, lastErr); err != nil {
				return err
			}
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}

		lastErr = err
		if !isRetryable(err) {
			return err
		}
	}

	return lastErr
}

// waitForRetry sleeps for the backoff duration before the given attempt,
// logging the retry. Returns early if the context is canceled.
func (s *Store) waitForRetry(ctx context.Context, operation string, attempt int, lastErr error) error {
	delay := backoff(attempt, s.retryCfg)

	logger := logging.FromContext(ctx)
	logger.WarnContext(ctx, "retrying store operation",
		slog.String("store", s.name),
		slog.String("operation", operation),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", s.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// backoff computes the delay before the given attempt (1-based) using
// exponential backoff with jitter.
func backoff(attempt int, cfg retryConfig) time.Duration {
	base := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	if max := float64(cfg.maxInterval); base > max {
		base = max
	}

	// Full jitter in the range [base-25%, base+25%].
	jitter := base * jitterFraction * (2*secureRandFloat64() - 1)
	return time.Duration(base + jitter)
}

// isRetryable reports whether the operation may be attempted again.
// Context cancellation and domain outcomes are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return !isDomainErr(err)
}

// secureRandFloat64 returns a uniformly distributed float64 in [0, 1)
// seeded from crypto/rand. Falls back to 0.5 (no jitter direction bias)
// if the system entropy source fails.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0.5
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / float64(1<<53)
}
