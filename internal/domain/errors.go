package domain

import "errors"

// Sentinel errors shared across the ingestion, embedding, and ranking
// packages. Callers match these with errors.Is; wrapping with fmt.Errorf's
// %w verb is the only way a package should attach one of these to a more
// specific failure.
var (
	// ErrTransientNetwork marks a failure the caller should retry: a
	// timeout, a connection reset, a 5xx response.
	ErrTransientNetwork = errors.New("domain: transient network error")

	// ErrSourceParse marks a source page that returned 200 but whose body
	// could not be parsed into the shape an adapter expects.
	ErrSourceParse = errors.New("domain: source parse error")

	// ErrRateLimited marks a 429 or an adapter-local rate limiter denial.
	ErrRateLimited = errors.New("domain: rate limited")

	// ErrBlockedByAntiBot marks a response indicating bot-detection
	// (CAPTCHA page, Cloudflare challenge, WAF block page).
	ErrBlockedByAntiBot = errors.New("domain: blocked by anti-bot defenses")

	// ErrInvalidInput marks a caller error: malformed request body, empty
	// embedding text, an opportunity missing a required field.
	ErrInvalidInput = errors.New("domain: invalid input")

	// ErrProviderError marks a non-retryable failure from an external
	// provider (embedding API, circuit open).
	ErrProviderError = errors.New("domain: provider error")

	// ErrConflict marks a persistence-layer invariant violation (duplicate
	// key outside the expected upsert race).
	ErrConflict = errors.New("domain: conflict")

	// ErrBreakerOpen marks a call rejected because its circuit breaker is
	// open.
	ErrBreakerOpen = errors.New("domain: circuit breaker open")

	// ErrNotFound marks a lookup that found nothing.
	ErrNotFound = errors.New("domain: not found")
)
