// Package browser implements the headless-browser SourceAdapter family for
// sources that render listings client-side or challenge plain HTTP
// clients, grounded on
// theRebelliousNerd-codenerd/internal/browser/session_manager.go's
// go-rod launch/connect pattern.
package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Pool owns a single headless Chromium instance shared by every
// browser-family adapter, since launching a new browser process per
// adapter call would be far too slow for a scheduled scrape.
type Pool struct {
	mu      sync.Mutex
	browser *rod.Browser
}

// NewPool launches a headless Chromium instance and returns a Pool
// wrapping it. Callers must call Close when the process shuts down.
func NewPool() (*Pool, error) {
	controlURL, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("browser: launch: %w", err)
	}
	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("browser: connect: %w", err)
	}
	return &Pool{browser: b}, nil
}

// Close tears down the underlying browser process.
func (p *Pool) Close() error {
	return p.browser.Close()
}

// Navigate opens url in a fresh incognito page, waits for network idle (or
// timeout), and hands the page to fn. The page is always closed before
// Navigate returns.
func (p *Pool) Navigate(ctx context.Context, url string, timeout time.Duration, fn func(page *rod.Page) error) error {
	p.mu.Lock()
	incognito, err := p.browser.Incognito()
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("browser: incognito context: %w", err)
	}

	page, err := incognito.Context(ctx).Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return fmt.Errorf("browser: open page %s: %w", url, err)
	}
	defer page.Close()

	page = page.Timeout(timeout)
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("browser: wait load %s: %w", url, err)
	}

	return fn(page)
}
