package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opportunityradar/radar/internal/domain"
	"github.com/opportunityradar/radar/internal/embedding/indexer"
	"github.com/opportunityradar/radar/internal/ingest/adapter"
	"github.com/opportunityradar/radar/internal/match"
	"github.com/opportunityradar/radar/internal/store"
)

// Scraper is the subset of the orchestrator the API needs to trigger an
// on-demand scrape without importing the full orchestrator package
// (which would otherwise pull gin into ingest's dependency graph).
type Scraper interface {
	ScrapeSource(ctx context.Context, a adapter.Adapter) error
	ScrapeAll(ctx context.Context) error
}

// Handlers implements every /v1 route. One instance is shared across all
// requests; every method must be safe for concurrent use.
type Handlers struct {
	store     *store.Store
	matches   *match.Service
	indexer   *indexer.Indexer
	adapters  *adapter.Registry
	scraper   Scraper
	minScore  float64
	logger    *slog.Logger
}

// NewHandlers builds a Handlers wired to every dependency the routes need.
func NewHandlers(s *store.Store, matches *match.Service, idx *indexer.Indexer, adapters *adapter.Registry, scraper Scraper, minScore float64, logger *slog.Logger) *Handlers {
	return &Handlers{store: s, matches: matches, indexer: idx, adapters: adapters, scraper: scraper, minScore: minScore, logger: logger}
}

// HandleHealth handles GET /v1/health: a liveness probe with no
// dependency checks, always 200 while the process is up.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleReady handles GET /v1/ready: a readiness probe that pings the
// store, so a load balancer stops routing traffic to an instance that
// has lost its database connection.
func (h *Handlers) HandleReady(c *gin.Context) {
	if _, err := h.store.Opportunities.Stats(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "store unreachable", Code: "NOT_READY"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// HandleListOpportunities handles GET /v1/opportunities.
func (h *Handlers) HandleListOpportunities(c *gin.Context) {
	opps, err := h.store.Opportunities.ListActive(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"opportunities": opps, "count": len(opps)})
}

// HandleGetOpportunity handles GET /v1/opportunities/:id.
func (h *Handlers) HandleGetOpportunity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		badRequest(c, "id is required", "MISSING_PARAMETER")
		return
	}
	opp, err := h.store.Opportunities.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, opp)
}

// computeMatchesRequest is the body POST /v1/matches/compute expects.
type computeMatchesRequest struct {
	Profile domain.Profile `json:"profile" binding:"required"`
}

// HandleComputeMatches handles POST /v1/matches/compute: scores the given
// profile against the active opportunity pool and persists every match
// clearing the configured minimum score.
func (h *Handlers) HandleComputeMatches(c *gin.Context) {
	var req computeMatchesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error(), "INVALID_BODY")
		return
	}
	if req.Profile.ID == "" {
		badRequest(c, "profile.id is required", "INVALID_BODY")
		return
	}

	summaries, err := h.matches.Compute(c.Request.Context(), &req.Profile, h.minScore, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": summaries, "count": len(summaries)})
}

// HandleTopMatches handles GET /v1/matches/top?profile_id=...&limit=....
func (h *Handlers) HandleTopMatches(c *gin.Context) {
	profileID := c.Query("profile_id")
	if profileID == "" {
		badRequest(c, "profile_id query parameter is required", "MISSING_PARAMETER")
		return
	}
	limit := int64(20)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	matches, err := h.matches.Top(c.Request.Context(), profileID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches, "count": len(matches)})
}

// triggerScrapeRequest is the optional body POST /v1/scrape/trigger
// accepts; an empty or absent source triggers every registered adapter.
type triggerScrapeRequest struct {
	Source string `json:"source"`
}

// HandleTriggerScrape handles POST /v1/scrape/trigger: runs one named
// source (or every source) synchronously and reports completion. A
// synchronous call is deliberate here — the scheduled sweep already runs
// in the background, and an operator hitting this endpoint wants to know
// the run actually finished, not just that it was queued.
func (h *Handlers) HandleTriggerScrape(c *gin.Context) {
	var req triggerScrapeRequest
	_ = c.ShouldBindJSON(&req)

	ctx := c.Request.Context()
	if req.Source == "" {
		if err := h.scraper.ScrapeAll(ctx); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "completed", "sources": h.adapters.Sources()})
		return
	}

	a, ok := h.adapters.Get(req.Source)
	if !ok {
		badRequest(c, "unknown source: "+req.Source, "UNKNOWN_SOURCE")
		return
	}
	if err := h.scraper.ScrapeSource(ctx, a); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed", "source": req.Source})
}

// HandleListSources handles GET /v1/sources: the registered adapter names,
// for an operator deciding what to pass to /v1/scrape/trigger.
func (h *Handlers) HandleListSources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sources": h.adapters.Sources()})
}

// HandleEmbeddingStats handles GET /v1/embeddings/stats.
func (h *Handlers) HandleEmbeddingStats(c *gin.Context) {
	stats, err := h.store.Opportunities.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":             stats.Total,
		"with_embedding":    stats.WithEmbedding,
		"without_embedding": stats.WithoutEmbedding,
	})
}

// HandleBackfillEmbeddings handles POST /v1/embeddings/backfill: embeds
// every active opportunity still missing a vector, synchronously.
func (h *Handlers) HandleBackfillEmbeddings(c *gin.Context) {
	ctx := c.Request.Context()
	pending, err := h.store.Opportunities.ListActive(ctx, true)
	if err != nil {
		respondError(c, err)
		return
	}

	results, err := h.indexer.EmbedOpportunityBatch(ctx, pending)
	if err != nil {
		respondError(c, err)
		return
	}

	succeeded := 0
	for _, r := range results {
		if r.Err != nil {
			h.logger.Warn("api: backfill embedding failed", "opportunity_id", r.OpportunityID, "error", r.Err)
			continue
		}
		if err := h.store.Opportunities.SetEmbedding(ctx, r.OpportunityID, r.Vector); err != nil {
			h.logger.Warn("api: backfill persist failed", "opportunity_id", r.OpportunityID, "error", err)
			continue
		}
		succeeded++
	}
	c.JSON(http.StatusOK, gin.H{"attempted": len(pending), "succeeded": succeeded})
}
