package orchestrator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/opportunityradar/radar/internal/ingest/adapter"
	"github.com/opportunityradar/radar/internal/ingest/breaker"
	"github.com/opportunityradar/radar/internal/ingest/normalize"
	"github.com/opportunityradar/radar/internal/ingest/ratelimit"
	"github.com/opportunityradar/radar/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// scriptedAdapter fails its first failN ScrapeList calls and succeeds
// afterward, the shape P6 scenario 6 scripts to exercise the breaker
// opening and a run finalizing as failed.
type scriptedAdapter struct {
	name  string
	calls int
	failN int
}

func (a *scriptedAdapter) SourceName() string    { return a.name }
func (a *scriptedAdapter) BaseURL() string       { return "https://fake.test/" + a.name }
func (a *scriptedAdapter) RequestDelay() float64 { return 0.01 }

func (a *scriptedAdapter) ScrapeList(ctx context.Context, page int) (adapter.ScrapeResult, error) {
	a.calls++
	if a.calls <= a.failN {
		return adapter.ScrapeResult{}, fmt.Errorf("scripted failure %d", a.calls)
	}
	return adapter.ScrapeResult{HasMore: false}, nil
}

func (a *scriptedAdapter) ScrapeDetail(ctx context.Context, externalID, url string) (*normalize.Raw, error) {
	return nil, nil
}

// TestScrapeSource_BreakerOpensAfterConsecutiveFailures exercises P6
// scenario 6: a source that fails enough consecutive runs to trip its
// breaker. The run that trips the breaker, and every run attempted while
// it stays open, must finalize as failed without ever reaching the
// adapter again.
func TestScrapeSource_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("breaker opens then blocks the next run", func(mt *mtest.T) {
		// Six ScrapeSource calls, each issuing one ScraperRuns.Insert and
		// one ScraperRuns.Finish command.
		for i := 0; i < 6; i++ {
			mt.AddMockResponses(mtest.CreateSuccessResponse())
			mt.AddMockResponses(mtest.CreateSuccessResponse())
		}

		s := store.NewStoreFromDatabase(mt.DB)
		a := &scriptedAdapter{name: "scripted", failN: breaker.DefaultFailureThreshold}
		registry := adapter.NewRegistry(a)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		orch := New(registry, s, ratelimit.NewLimiters(), nil, nil, nil, 0, 1.0, logger)

		for i := 0; i < breaker.DefaultFailureThreshold; i++ {
			err := orch.ScrapeSource(context.Background(), a)
			require.NoError(t, err)
		}
		assert.Equal(t, breaker.Open, orch.breakers[a.SourceName()].CurrentState(),
			"breaker should trip after %d consecutive failures", breaker.DefaultFailureThreshold)
		assert.Equal(t, breaker.DefaultFailureThreshold, a.calls)

		// The breaker is open, so this run must not call the adapter at
		// all, even though the script would have it succeed now.
		err := orch.ScrapeSource(context.Background(), a)
		require.NoError(t, err)
		assert.Equal(t, breaker.DefaultFailureThreshold, a.calls,
			"adapter must not be called while its breaker is open")
	})
}
