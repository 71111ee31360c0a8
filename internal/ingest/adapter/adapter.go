// Package adapter defines the SourceAdapter contract every ingestion
// source implements, plus a small registry the orchestrator uses to look
// adapters up by name.
package adapter

import (
	"context"

	"github.com/opportunityradar/radar/internal/ingest/normalize"
)

// ScrapeResult is one page of listing results from a source.
type ScrapeResult struct {
	Records []normalize.Raw
	// HasMore reports whether another page should be requested. An
	// adapter that returns zero records but HasMore=true is treated by
	// the orchestrator the same as HasMore=false: empty pages always end
	// the run, per the original pagination loop.
	HasMore bool
}

// Adapter is a single external source's scraping logic. Implementations
// hold no orchestration state (no breaker, no rate limiter) — those are
// owned one level up, per source, by the orchestrator.
type Adapter interface {
	// SourceName is the stable key used for (source, external_id)
	// uniqueness, circuit breaker state, and the type-mapping table.
	SourceName() string
	// BaseURL is the root URL this adapter scrapes, surfaced for
	// diagnostics and logging.
	BaseURL() string
	// ScrapeList fetches one page (1-indexed) of listing results.
	ScrapeList(ctx context.Context, page int) (ScrapeResult, error)
	// ScrapeDetail fetches additional detail for one record, if the
	// source exposes a richer detail page. Returning (nil, nil) means
	// "nothing more to add" and is not an error.
	ScrapeDetail(ctx context.Context, externalID, url string) (*normalize.Raw, error)
	// RequestDelay is the minimum number of seconds the orchestrator
	// should wait between requests to this source.
	RequestDelay() float64
}

// Registry maps source names to their Adapter implementation.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry builds a Registry from a list of adapters, keyed by each
// adapter's SourceName.
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[string]Adapter, len(adapters))}
	for _, a := range adapters {
		r.adapters[a.SourceName()] = a
	}
	return r
}

// Get looks up an adapter by source name.
func (r *Registry) Get(source string) (Adapter, bool) {
	a, ok := r.adapters[source]
	return a, ok
}

// Sources returns every registered source name.
func (r *Registry) Sources() []string {
	out := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		out = append(out, name)
	}
	return out
}

// All returns every registered adapter.
func (r *Registry) All() []Adapter {
	out := make([]Adapter, 0, len(r.adapters))
	for _, a := range r.adapters {
		out = append(out, a)
	}
	return out
}
