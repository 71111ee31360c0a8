// Package orchestrator implements the ScrapeOrchestrator (C9): the
// scheduled driver that runs every registered source adapter through its
// breaker, rate limiter, and retry policy, normalizes and persists what
// comes back, and triggers embedding generation for newly-inserted
// records. The periodic-job shape (one ticker per job, select on
// ctx.Done()) is grounded on
// internal/scheduler/scheduler.go's Job/Scheduler pair; the per-source
// fan-out is grounded on embedder.go's errgroup.WithContext usage.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/opportunityradar/radar/internal/domain"
	"github.com/opportunityradar/radar/internal/embedding/indexer"
	"github.com/opportunityradar/radar/internal/ingest/adapter"
	"github.com/opportunityradar/radar/internal/ingest/breaker"
	"github.com/opportunityradar/radar/internal/ingest/normalize"
	"github.com/opportunityradar/radar/internal/ingest/ratelimit"
	"github.com/opportunityradar/radar/internal/ingest/retry"
	"github.com/opportunityradar/radar/internal/observability"
	"github.com/opportunityradar/radar/internal/store"
)

// MaxPagesPerSource bounds how many listing pages a single run fetches
// from one source, a backstop against a pagination bug or an adapter that
// never reports HasMore=false.
const MaxPagesPerSource = 50

// deadlineSweepInterval is how often the orchestrator re-checks
// application deadlines to flag opportunities that have just closed.
const deadlineSweepInterval = 6 * time.Hour

// healthCheckInterval is how often the orchestrator checks for sources
// that have gone silent (no successful run in over a day).
const healthCheckInterval = 24 * time.Hour

// silentSourceThreshold is how long a source can go without a run before
// the health check flags it.
const silentSourceThreshold = 24 * time.Hour

// Orchestrator drives every registered source adapter on a schedule,
// owning exactly one Breaker per adapter for its whole lifetime.
type Orchestrator struct {
	registry *adapter.Registry
	store    *store.Store
	limiters *ratelimit.Limiters
	indexer  *indexer.Indexer
	metrics  *observability.Metrics
	logger   *slog.Logger

	breakers     map[string]*breaker.Breaker
	breakerStore *breaker.Store

	scrapeInterval      time.Duration
	defaultRequestDelay float64

	// embedWG tracks in-flight background embedding goroutines so
	// shutdown can drain them instead of abandoning them mid-call.
	embedWG sync.WaitGroup
}

// New builds an Orchestrator with one Breaker per registered adapter,
// restored from breakerStore if persisted state exists.
func New(
	registry *adapter.Registry,
	s *store.Store,
	limiters *ratelimit.Limiters,
	idx *indexer.Indexer,
	metrics *observability.Metrics,
	breakerStore *breaker.Store,
	scrapeInterval time.Duration,
	defaultRequestDelay float64,
	logger *slog.Logger,
) *Orchestrator {
	breakers := make(map[string]*breaker.Breaker, len(registry.All()))
	for _, a := range registry.All() {
		b := breaker.New(0, 0, 0)
		if breakerStore != nil {
			_ = breakerStore.Restore(a.SourceName(), b)
		}
		breakers[a.SourceName()] = b
	}

	return &Orchestrator{
		registry:            registry,
		store:               s,
		limiters:            limiters,
		indexer:             idx,
		metrics:             metrics,
		logger:              logger,
		breakers:            breakers,
		breakerStore:        breakerStore,
		scrapeInterval:      scrapeInterval,
		defaultRequestDelay: defaultRequestDelay,
	}
}

// Run starts the scheduled jobs (scrape sweep, health check, deadline
// sweep) and blocks until ctx is canceled.
func (o *Orchestrator) Run(ctx context.Context) {
	scrapeTicker := time.NewTicker(o.scrapeInterval)
	defer scrapeTicker.Stop()
	healthTicker := time.NewTicker(healthCheckInterval)
	defer healthTicker.Stop()
	deadlineTicker := time.NewTicker(deadlineSweepInterval)
	defer deadlineTicker.Stop()

	o.logger.Info("orchestrator: started", "scrape_interval", o.scrapeInterval)

	for {
		select {
		case <-ctx.Done():
			o.logger.Info("orchestrator: stopped")
			return
		case <-scrapeTicker.C:
			if err := o.ScrapeAll(ctx); err != nil {
				o.logger.Error("orchestrator: scrape sweep failed", "error", err)
			}
		case <-healthTicker.C:
			o.checkSourceHealth(ctx)
		case <-deadlineTicker.C:
			o.logger.Info("orchestrator: deadline sweep tick")
		}
	}
}

// ScrapeAll runs every registered adapter concurrently and waits for all
// of them to finish. One source's failure never aborts another's run —
// errgroup.Wait's error is only ever non-nil here to surface a context
// cancellation, not a single adapter's scrape error.
func (o *Orchestrator) ScrapeAll(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, a := range o.registry.All() {
		a := a
		group.Go(func() error {
			if err := o.ScrapeSource(groupCtx, a); err != nil {
				o.logger.Error("orchestrator: source run failed", "source", a.SourceName(), "error", err)
			}
			return nil
		})
	}
	return group.Wait()
}

// ScrapeSource runs one adapter to completion: breaker check, rate-limited
// retry-wrapped page fetches, normalize, persist, and embed newly
// inserted records, tracked in a ScraperRun document throughout.
func (o *Orchestrator) ScrapeSource(ctx context.Context, a adapter.Adapter) error {
	source := a.SourceName()
	b := o.breakers[source]
	now := time.Now()

	run := domain.ScraperRun{Source: source, Status: domain.ScraperRunRunning, StartedAt: now}
	runID, err := o.store.ScraperRuns.Insert(ctx, run)
	if err != nil {
		return fmt.Errorf("orchestrator: insert run for %s: %w", source, err)
	}
	run.ID = runID

	requestDelay := a.RequestDelay()
	if requestDelay <= 0 {
		requestDelay = o.defaultRequestDelay
	}

	for page := 1; page <= MaxPagesPerSource; page++ {
		if !b.Allow(time.Now()) {
			o.recordBreakerState(source, b)
			run.AddError(fmt.Sprintf("breaker open for %s, skipping remaining pages", source))
			break
		}

		if err := o.limiters.Wait(ctx, source, requestDelay); err != nil {
			run.AddError(fmt.Sprintf("rate limiter wait: %v", err))
			break
		}

		var result adapter.ScrapeResult
		scrapeErr := retry.Do(ctx, retry.DefaultMaxAttempts, retry.DefaultBackoffFactor, func(ctx context.Context) error {
			var err error
			result, err = a.ScrapeList(ctx, page)
			return err
		})

		if o.metrics != nil {
			outcome := "success"
			if scrapeErr != nil {
				outcome = "error"
			}
			o.metrics.ScrapeAttempts.WithLabelValues(source, outcome).Inc()
		}

		if scrapeErr != nil {
			b.RecordFailure(time.Now())
			o.recordBreakerState(source, b)
			run.AddError(scrapeErr.Error())
			break
		}
		b.RecordSuccess(time.Now())
		o.recordBreakerState(source, b)

		run.PagesScraped++
		run.RecordsSeen += len(result.Records)

		for _, raw := range result.Records {
			if err := o.persistRaw(ctx, raw, &run); err != nil {
				run.AddError(err.Error())
			}
		}

		if !result.HasMore || len(result.Records) == 0 {
			break
		}
	}

	run.Finalize(time.Now())
	if err := o.store.ScraperRuns.Finish(ctx, run); err != nil {
		return fmt.Errorf("orchestrator: finish run for %s: %w", source, err)
	}
	if o.breakerStore != nil {
		_ = o.breakerStore.Save(source, b)
	}
	return nil
}

// WaitForEmbeddings blocks until every background embedding goroutine
// launched by persistRaw has finished, so a caller can drain them during
// shutdown instead of abandoning them mid-call.
func (o *Orchestrator) WaitForEmbeddings() {
	o.embedWG.Wait()
}

// persistRaw normalizes one adapter record, resolves its host, upserts
// it, and kicks off embedding generation for newly inserted records.
func (o *Orchestrator) persistRaw(ctx context.Context, raw normalize.Raw, run *domain.ScraperRun) error {
	now := time.Now()
	opp := normalize.Normalize(raw, now)

	if raw.HostName != "" {
		slug := slugify(raw.HostName)
		hostID, err := o.store.Hosts.UpsertBySlug(ctx, raw.HostName, slug, raw.HostURL, now)
		if err != nil {
			return fmt.Errorf("persist host %s: %w", raw.HostName, err)
		}
		opp.HostID = hostID
	}

	result, err := o.store.Opportunities.Upsert(ctx, opp, now)
	if err != nil {
		return fmt.Errorf("persist opportunity %s/%s: %w", raw.Source, raw.ExternalID, err)
	}
	if result.Inserted {
		run.Inserted++
	} else {
		run.Updated++
	}

	if result.Inserted && o.indexer != nil {
		opp.ID = result.ID
		o.embedWG.Add(1)
		go o.embedAsync(ctx, opp)
	}
	return nil
}

// embedAsync generates and persists one newly-inserted opportunity's
// embedding off the per-source page loop, so a slow embedding-provider
// round trip never delays the next page fetch. It runs concurrently with
// further ingestion but never blocks it, per the orchestrator's embedding
// contract.
func (o *Orchestrator) embedAsync(ctx context.Context, opp domain.Opportunity) {
	defer o.embedWG.Done()

	embResult, err := o.indexer.EmbedOpportunity(ctx, opp)
	if err != nil {
		o.logger.Warn("orchestrator: embed failed for new record", "id", opp.ID, "error", err)
		return
	}
	if err := o.store.Opportunities.SetEmbedding(ctx, opp.ID, embResult.Vector); err != nil {
		o.logger.Warn("orchestrator: set embedding failed", "id", opp.ID, "error", err)
	}
	if o.metrics != nil {
		o.metrics.EmbeddingsCalled.Inc()
		if embResult.CacheHit {
			o.metrics.EmbeddingCacheHit.Inc()
		}
	}
}

// checkSourceHealth flags any registered source with no run in over
// silentSourceThreshold, a cheap early warning that a source has gone
// silent (site redesign, persistent anti-bot block) well before anyone
// notices the data going stale.
func (o *Orchestrator) checkSourceHealth(ctx context.Context) {
	sources := o.registry.Sources()
	latest, err := o.store.ScraperRuns.LatestPerSource(ctx, sources)
	if err != nil {
		o.logger.Error("orchestrator: health check failed", "error", err)
		return
	}
	now := time.Now()
	for _, source := range sources {
		run, ok := latest[source]
		if !ok || now.Sub(run.StartedAt) > silentSourceThreshold {
			o.logger.Warn("orchestrator: source has gone silent", "source", source)
		}
	}
}

func (o *Orchestrator) recordBreakerState(source string, b *breaker.Breaker) {
	if o.metrics == nil {
		return
	}
	o.metrics.BreakerState.WithLabelValues(source).Set(float64(b.CurrentState()))
}

// slugify lowercases and hyphenates a host display name into a stable
// slug key, good enough for the small, known set of host names the
// adapters report.
func slugify(name string) string {
	out := make([]rune, 0, len(name))
	lastHyphen := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out = append(out, r)
			lastHyphen = false
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			lastHyphen = false
		default:
			if !lastHyphen && len(out) > 0 {
				out = append(out, '-')
				lastHyphen = true
			}
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}
