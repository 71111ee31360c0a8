package api

import "github.com/gin-gonic/gin"

// RegisterRoutes registers every Opportunity Radar route under rg,
// grouped by resource the way services/trace/routes.go groups /v1/trace's
// endpoints — rg should already have RequestID and otelgin middleware
// applied.
//
// Opportunity endpoints:
//
//	GET /v1/opportunities          - list active opportunities
//	GET /v1/opportunities/:id      - fetch a single opportunity
//
// Match endpoints:
//
//	POST /v1/matches/compute       - score a profile against the active pool
//	GET  /v1/matches/top           - top persisted matches for a profile
//
// Ingestion endpoints:
//
//	GET  /v1/sources               - list registered adapter names
//	POST /v1/scrape/trigger        - run one source (or all) synchronously
//
// Embedding endpoints:
//
//	GET  /v1/embeddings/stats      - embedding coverage
//	POST /v1/embeddings/backfill   - embed every opportunity missing a vector
//
// Health endpoints:
//
//	GET /v1/health                 - liveness
//	GET /v1/ready                  - readiness
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/health", h.HandleHealth)
	rg.GET("/ready", h.HandleReady)

	opportunities := rg.Group("/opportunities")
	{
		opportunities.GET("", h.HandleListOpportunities)
		opportunities.GET("/:id", h.HandleGetOpportunity)
	}

	matches := rg.Group("/matches")
	{
		matches.POST("/compute", h.HandleComputeMatches)
		matches.GET("/top", h.HandleTopMatches)
	}

	rg.GET("/sources", h.HandleListSources)

	scrape := rg.Group("/scrape")
	{
		scrape.POST("/trigger", h.HandleTriggerScrape)
	}

	embeddings := rg.Group("/embeddings")
	{
		embeddings.GET("/stats", h.HandleEmbeddingStats)
		embeddings.POST("/backfill", h.HandleBackfillEmbeddings)
	}
}
