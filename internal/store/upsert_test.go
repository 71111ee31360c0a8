package store

import (
	"context"
	"testing"
	"time"

	"github.com/opportunityradar/radar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// TestOpportunityRepo_Upsert_Idempotent exercises P1: re-scraping an
// already-known (source, external_id) pair must resolve to the same
// document ID and must never touch embedding or created_at on update,
// matching scraper_persistence_service.py's _upsert_opportunity.
func TestOpportunityRepo_Upsert_Idempotent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("insert then re-scrape", func(mt *mtest.T) {
		repo := &OpportunityRepo{coll: mt.Coll}
		now := time.Now()

		opp := domain.Opportunity{
			Source:     "devpost",
			ExternalID: "hack-1",
			Title:      "Original Title",
		}

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: "opp-1"}}}},
		))

		first, err := repo.Upsert(context.Background(), opp, now)
		require.NoError(t, err)
		assert.True(t, first.Inserted)
		assert.Equal(t, "opp-1", first.ID)

		// Re-scrape: the source reports the same record with an updated
		// title. No upserted ID comes back, so Upsert must look the
		// existing document up by filter to report its ID.
		opp.Title = "Updated Title"

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "radar.opportunities", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "opp-1"},
			{Key: "source", Value: "devpost"},
			{Key: "external_id", Value: "hack-1"},
		}))

		second, err := repo.Upsert(context.Background(), opp, now.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, second.Inserted)
		assert.Equal(t, first.ID, second.ID, "re-scraping the same (source, external_id) must resolve to the same document")
	})
}

// TestUpsertMutableFields_NeverTouchesEmbeddingOrCreatedAt guards the
// other half of P1: the $set document an update sends must never carry
// embedding or created_at, so a re-scrape can't clobber a previously
// generated embedding or the original insert timestamp.
func TestUpsertMutableFields_NeverTouchesEmbeddingOrCreatedAt(t *testing.T) {
	fields := upsertMutableFields(domain.Opportunity{Source: "devpost", ExternalID: "hack-1"}, time.Now())
	_, hasEmbedding := fields["embedding"]
	_, hasCreatedAt := fields["created_at"]
	_, hasID := fields["_id"]
	assert.False(t, hasEmbedding, "update must not overwrite embedding")
	assert.False(t, hasCreatedAt, "update must not overwrite created_at")
	assert.False(t, hasID, "update must not overwrite _id")
}
