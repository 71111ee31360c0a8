// Command radar starts the Opportunity Radar API server: ingestion
// orchestrator, embedding backfill surface, and match computation, all
// behind a gin HTTP boundary.
//
// Usage:
//
//	go run ./cmd/radar
//	go run ./cmd/radar -port 9090
//
// Example requests:
//
//	curl http://localhost:8080/v1/health
//	curl http://localhost:8080/v1/opportunities
//	curl -X POST http://localhost:8080/v1/scrape/trigger -d '{"source":"devpost"}'
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/opportunityradar/radar/internal/api"
	"github.com/opportunityradar/radar/internal/config"
	"github.com/opportunityradar/radar/internal/embedding/cache"
	"github.com/opportunityradar/radar/internal/embedding/indexer"
	"github.com/opportunityradar/radar/internal/embedding/provider"
	"github.com/opportunityradar/radar/internal/ingest/adapter"
	"github.com/opportunityradar/radar/internal/ingest/breaker"
	"github.com/opportunityradar/radar/internal/ingest/orchestrator"
	"github.com/opportunityradar/radar/internal/ingest/ratelimit"
	"github.com/opportunityradar/radar/internal/ingest/source"
	"github.com/opportunityradar/radar/internal/ingest/source/browser"
	"github.com/opportunityradar/radar/internal/match"
	"github.com/opportunityradar/radar/internal/observability"
	"github.com/opportunityradar/radar/internal/store"
)

func main() {
	port := flag.Int("port", 0, "port to listen on (overrides config/env)")
	debug := flag.Bool("debug", false, "enable gin debug mode and request logging")
	configPath := flag.String("config", "", "path to an optional YAML config overlay")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := bootstrapObservability(ctx, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "radar: observability setup failed: %v\n", err)
		os.Exit(1)
	}
	logger := providers.Logger

	cfg, err := config.Load(*configPath, logger)
	if err != nil {
		logger.Error("radar: config load failed", "error", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.HTTPPort = *port
	}

	metrics := observability.NewMetrics(providers.Registry)

	db, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logger.Error("radar: store connect failed", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Disconnect(context.Background()) }()

	badgerDB, err := badger.Open(badger.DefaultOptions(cfg.BadgerDir).WithLogger(nil))
	if err != nil {
		logger.Error("radar: badger open failed", "error", err)
		os.Exit(1)
	}
	defer func() { _ = badgerDB.Close() }()

	embeddingProvider := provider.New(logger)
	embeddingCache := cache.New(badgerDB)
	idx := indexer.New(embeddingProvider, embeddingCache)

	registry, closeBrowser, err := buildAdapterRegistry()
	if err != nil {
		logger.Error("radar: adapter registry setup failed", "error", err)
		os.Exit(1)
	}
	if closeBrowser != nil {
		defer closeBrowser()
	}

	breakerStore := breaker.NewStore(badgerDB)
	limiters := ratelimit.NewLimiters()
	orch := orchestrator.New(registry, db, limiters, idx, metrics, breakerStore, cfg.ScraperInterval(), cfg.DefaultRequestDelay, logger)
	go orch.Run(ctx)

	matchService := match.New(db, metrics, logger)

	if *debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("opportunityradar-radar"))
	router.Use(api.RequestID())
	if *debug {
		router.Use(gin.Logger())
	}

	handlers := api.NewHandlers(db, matchService, idx, registry, orch, cfg.MinMatchScore, logger)
	v1 := router.Group("/v1")
	api.RegisterRoutes(v1, handlers)

	srv := &http.Server{Addr: fmt.Sprintf(":%d", cfg.HTTPPort), Handler: router}
	go func() {
		logger.Info("radar: server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("radar: server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("radar: shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("radar: graceful shutdown failed", "error", err)
	}
	orch.WaitForEmbeddings()
	if err := providers.Shutdown(shutdownCtx); err != nil {
		logger.Error("radar: telemetry shutdown failed", "error", err)
	}
}

func bootstrapObservability(ctx context.Context, configPath string) (*observability.Providers, error) {
	cfg, err := config.Load(configPath, nil)
	if err != nil {
		return nil, err
	}
	return observability.Setup(ctx, "opportunityradar-radar", cfg.OTLPEndpoint, cfg.LogLevel)
}

// buildAdapterRegistry constructs every registered source adapter. The
// browser pool is shared by every headless-browser adapter and its
// cleanup func is returned for the caller to defer; it is nil (and the
// browser-backed adapters are skipped) if the headless browser failed to
// launch, so a broken Chrome install degrades ingestion rather than
// blocking startup entirely.
func buildAdapterRegistry() (*adapter.Registry, func(), error) {
	adapters := []adapter.Adapter{
		source.NewDevpostAdapter(),
		source.NewHackerOneAdapter(),
		source.NewGrantsGovAdapter(),
		source.NewOpenSourceGrantsAdapter(),
		source.NewMLHAdapter(),
		source.NewSBIRAdapter(),
		source.NewEUHorizonAdapter(),
		source.NewInnovateUKAdapter(),
	}

	pool, err := browser.NewPool()
	if err != nil {
		return adapter.NewRegistry(adapters...), nil, nil
	}
	adapters = append(adapters,
		browser.NewEthGlobalAdapter(pool),
		browser.NewHackerEarthAdapter(pool),
		browser.NewKaggleAdapter(pool),
		browser.NewYCombinatorAdapter(pool),
	)
	return adapter.NewRegistry(adapters...), func() { _ = pool.Close() }, nil
}
