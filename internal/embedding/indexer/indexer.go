// Package indexer implements EmbeddingIndexer (C6): synthesizing the text
// an opportunity or profile is embedded from, checking the content-hash
// cache before calling the provider, and fanning batches out concurrently
// — grounded on
// services/trace/agent/routing/embedder.go's Warm method (errgroup +
// bounded semaphore over a cache-then-provider path).
package indexer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/opportunityradar/radar/internal/domain"
	"github.com/opportunityradar/radar/internal/embedding/cache"
)

// embeddingFanoutConcurrency bounds how many provider calls run at once
// during a backfill, mirroring toolEmbeddingWarmConcurrency's role in
// embedder.go.
const embeddingFanoutConcurrency = 4

// Provider is the subset of EmbeddingProvider the indexer depends on.
type Provider interface {
	EmbedOne(ctx context.Context, text string) ([]float32, error)
}

// Indexer computes and caches embeddings for opportunities and profiles.
type Indexer struct {
	provider Provider
	cache    *cache.Cache
}

// New constructs an Indexer.
func New(provider Provider, c *cache.Cache) *Indexer {
	return &Indexer{provider: provider, cache: c}
}

// Result reports one embedding attempt's outcome, for batch statistics.
type Result struct {
	OpportunityID string
	Vector        []float32
	CacheHit      bool
	Err           error
}

// EmbedOpportunity computes (or retrieves from cache) the embedding for a
// single opportunity, per the idempotence rule: identical synthesized
// text never triggers a second provider call.
func (ix *Indexer) EmbedOpportunity(ctx context.Context, o domain.Opportunity) (Result, error) {
	text := SynthesizeOpportunityText(o)
	if text == "" {
		return Result{}, fmt.Errorf("indexer: empty embedding text for %s: %w", o.ID, domain.ErrInvalidInput)
	}

	hash := cache.HashText(text)
	if vector, hit, err := ix.cache.Get(hash); err != nil {
		return Result{}, fmt.Errorf("indexer: cache lookup for %s: %w", o.ID, err)
	} else if hit {
		return Result{OpportunityID: o.ID, Vector: vector, CacheHit: true}, nil
	}

	vector, err := ix.provider.EmbedOne(ctx, text)
	if err != nil {
		return Result{}, fmt.Errorf("indexer: embed %s: %w", o.ID, err)
	}
	if err := ix.cache.Put(hash, vector); err != nil {
		return Result{}, fmt.Errorf("indexer: cache store for %s: %w", o.ID, err)
	}
	return Result{OpportunityID: o.ID, Vector: vector}, nil
}

// EmbedOpportunityBatch embeds every opportunity in opps concurrently,
// bounded by embeddingFanoutConcurrency, preserving the 1:1 correspondence
// between input and output slices by index (an errored item leaves its
// Result zero-valued with Err set, rather than aborting the whole batch).
func (ix *Indexer) EmbedOpportunityBatch(ctx context.Context, opps []domain.Opportunity) ([]Result, error) {
	results := make([]Result, len(opps))
	sem := make(chan struct{}, embeddingFanoutConcurrency)
	group, groupCtx := errgroup.WithContext(ctx)

	for i, o := range opps {
		i, o := i, o
		group.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-groupCtx.Done():
				return groupCtx.Err()
			}
			defer func() { <-sem }()

			res, err := ix.EmbedOpportunity(groupCtx, o)
			if err != nil {
				results[i] = Result{OpportunityID: o.ID, Err: err}
				return nil // a single failed item does not cancel the batch
			}
			results[i] = res
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return results, fmt.Errorf("indexer: embed batch: %w", err)
	}
	return results, nil
}
