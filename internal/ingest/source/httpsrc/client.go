// Package httpsrc provides the shared HTTP client and fetch helper every
// HTTP-only adapter builds on, grounded on the original scraper base
// class's client construction: a realistic browser User-Agent and
// redirect-following, since several sources reject requests from an
// obvious bot client.
package httpsrc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/opportunityradar/radar/internal/domain"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// NewClient builds the *http.Client every HTTP-only adapter shares.
// Redirects are followed by default (Go's http.Client already does this);
// only the timeout is adjusted from the zero value.
func NewClient() *http.Client {
	return &http.Client{Timeout: 20 * time.Second}
}

// Get performs a GET request with the shared browser-like headers and
// returns the response body. Non-2xx responses are classified into the
// domain error taxonomy: 429 is ErrRateLimited, common anti-bot status
// codes (403, 503 with a Cloudflare-style body) are ErrBlockedByAntiBot,
// other 5xx/network failures are ErrTransientNetwork.
func Get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("httpsrc: build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/json;q=0.9,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpsrc: %s: %w", url, domain.ErrTransientNetwork)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpsrc: read body %s: %w", url, domain.ErrTransientNetwork)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("httpsrc: %s: %w", url, domain.ErrRateLimited)
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusServiceUnavailable:
		return nil, fmt.Errorf("httpsrc: %s: status %d: %w", url, resp.StatusCode, domain.ErrBlockedByAntiBot)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("httpsrc: %s: status %d: %w", url, resp.StatusCode, domain.ErrTransientNetwork)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("httpsrc: %s: status %d: %w", url, resp.StatusCode, domain.ErrSourceParse)
	}

	return body, nil
}
