// Package retry implements the exponential backoff policy every source
// adapter call goes through before the orchestrator records it as a
// breaker failure, grounded on the original scraper base class's
// with_retry decorator (base 2, max 3 attempts).
package retry

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/opportunityradar/radar/internal/domain"
)

const (
	DefaultMaxAttempts   = 3
	DefaultBackoffFactor = 2.0
)

// Do calls fn up to maxAttempts times, sleeping backoffFactor**attempt
// seconds between attempts, stopping early on success or on a
// non-retryable error. Only domain.ErrTransientNetwork and
// domain.ErrRateLimited are retried; anything else (parse errors,
// anti-bot blocks) returns immediately so the caller can decide how to
// record it.
func Do(ctx context.Context, maxAttempts int, backoffFactor float64, fn func(ctx context.Context) error) error {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if backoffFactor <= 0 {
		backoffFactor = DefaultBackoffFactor
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}
		if attempt == maxAttempts-1 {
			break
		}
		delay := time.Duration(math.Pow(backoffFactor, float64(attempt)) * float64(time.Second))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return lastErr
}

func retryable(err error) bool {
	return errors.Is(err, domain.ErrTransientNetwork) || errors.Is(err, domain.ErrRateLimited)
}
