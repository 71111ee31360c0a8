// Package ratelimit paces per-source requests to honor each adapter's
// configured request_delay, the same concern
// services/trace/agent/providers/egress/rate_limiter.go addresses for LLM
// providers, reimplemented over golang.org/x/time/rate instead of a
// hand-rolled sliding window.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiters holds one token-bucket limiter per source, each configured
// from that source's request_delay (the minimum seconds between
// requests).
type Limiters struct {
	mu       sync.Mutex
	perDelay map[string]*rate.Limiter
}

// NewLimiters constructs an empty registry; sources register lazily on
// first use via Wait.
func NewLimiters() *Limiters {
	return &Limiters{perDelay: make(map[string]*rate.Limiter)}
}

// Wait blocks until a request for source is allowed to proceed, honoring
// ctx cancellation. delaySeconds is the minimum spacing between requests
// for this source; a limiter is created for the source on first use and
// reused afterward, so delaySeconds is only read the first time.
func (l *Limiters) Wait(ctx context.Context, source string, delaySeconds float64) error {
	limiter := l.limiterFor(source, delaySeconds)
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("ratelimit: wait for %s: %w", source, err)
	}
	return nil
}

func (l *Limiters) limiterFor(source string, delaySeconds float64) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.perDelay[source]; ok {
		return lim
	}
	if delaySeconds <= 0 {
		delaySeconds = 1.0
	}
	// One request every delaySeconds, with a burst of 1 so callers never
	// front-load a burst of requests against a source.
	lim := rate.NewLimiter(rate.Every(time.Duration(delaySeconds*float64(time.Second))), 1)
	l.perDelay[source] = lim
	return lim
}
