package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics groups the counters and histograms the ingestion and embedding
// paths emit, registered against one Providers.Registry at boot.
type Metrics struct {
	ScrapeAttempts   *prometheus.CounterVec
	ScrapeDuration   *prometheus.HistogramVec
	BreakerState     *prometheus.GaugeVec
	EmbeddingsCalled prometheus.Counter
	EmbeddingCacheHit prometheus.Counter
	MatchesComputed  prometheus.Counter
}

// NewMetrics constructs and registers all ingestion/embedding metrics
// against reg. Shape follows egress/metrics.go: one CounterVec keyed by
// outcome, one HistogramVec keyed by the same label for latency.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		ScrapeAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "radar",
			Subsystem: "ingest",
			Name:      "scrape_attempts_total",
			Help:      "Source adapter scrape attempts by source and outcome.",
		}, []string{"source", "outcome"}),
		ScrapeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "radar",
			Subsystem: "ingest",
			Name:      "scrape_duration_seconds",
			Help:      "Source adapter scrape call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
		BreakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "radar",
			Subsystem: "ingest",
			Name:      "breaker_state",
			Help:      "Circuit breaker state per source (0=closed,1=half-open,2=open).",
		}, []string{"source"}),
		EmbeddingsCalled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "radar",
			Subsystem: "embedding",
			Name:      "provider_calls_total",
			Help:      "Calls made to the embedding provider.",
		}),
		EmbeddingCacheHit: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "radar",
			Subsystem: "embedding",
			Name:      "cache_hits_total",
			Help:      "Embedding requests served from the content-hash cache.",
		}),
		MatchesComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "radar",
			Subsystem: "match",
			Name:      "computed_total",
			Help:      "Matches computed and persisted.",
		}),
	}
	reg.MustRegister(
		m.ScrapeAttempts, m.ScrapeDuration, m.BreakerState,
		m.EmbeddingsCalled, m.EmbeddingCacheHit, m.MatchesComputed,
	)
	return m
}
