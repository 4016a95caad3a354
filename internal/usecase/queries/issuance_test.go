//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"stamppass/internal/infra"
	"stamppass/internal/pkg/clock"
	"stamppass/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIssuanceReadStore struct {
	view    *queries.IssuanceRequestView
	pending []*queries.PendingIssuanceItem
	findErr error

	processedLimit int32
}

func (s *stubIssuanceReadStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.IssuanceRequestView, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	v := *s.view
	return &v, nil
}

func (s *stubIssuanceReadStore) FindPendingByStore(_ context.Context, _ uuid.UUID) ([]*queries.PendingIssuanceItem, error) {
	items := make([]*queries.PendingIssuanceItem, len(s.pending))
	for i, item := range s.pending {
		v := *item
		items[i] = &v
	}
	return items, nil
}

func (s *stubIssuanceReadStore) FindProcessedByStore(_ context.Context, _ uuid.UUID, limit int32) ([]*queries.ProcessedIssuanceItem, error) {
	s.processedLimit = limit
	return []*queries.ProcessedIssuanceItem{}, nil
}

func pendingView(customerID uuid.UUID, createdAt time.Time, ttl time.Duration) *queries.IssuanceRequestView {
	return &queries.IssuanceRequestView{
		ID:                uuid.New(),
		StoreID:           uuid.New(),
		WalletStampCardID: uuid.New(),
		CustomerID:        customerID,
		Status:            "PENDING",
		CurrentStampCount: 4,
		RewardsIssued:     0,
		ExpiresAt:         createdAt.Add(ttl),
		CreatedAt:         createdAt,
	}
}

func TestIssuanceQueriesGetByID(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	customerID := uuid.New()

	t.Run("pending request reports remaining seconds from the clock", func(t *testing.T) {
		stored := pendingView(customerID, base, 180*time.Second)
		mockClock := clock.NewMockClock(base.Add(30 * time.Second))
		q := queries.NewIssuanceQueries(&stubIssuanceReadStore{view: stored}, mockClock)

		actual, err := q.GetByID(context.Background(), customerID, stored.ID)
		require.NoError(t, err)

		expected := *stored
		expected.RemainingSeconds = 150
		if diff := cmp.Diff(&expected, actual); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("remaining seconds round up mid-second", func(t *testing.T) {
		stored := pendingView(customerID, base, 180*time.Second)
		mockClock := clock.NewMockClock(base.Add(30*time.Second + 400*time.Millisecond))
		q := queries.NewIssuanceQueries(&stubIssuanceReadStore{view: stored}, mockClock)

		actual, err := q.GetByID(context.Background(), customerID, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, int32(150), actual.RemainingSeconds)
	})

	t.Run("pending request past its TTL reads as EXPIRED before any write", func(t *testing.T) {
		stored := pendingView(customerID, base, 180*time.Second)
		mockClock := clock.NewMockClock(base.Add(181 * time.Second))
		q := queries.NewIssuanceQueries(&stubIssuanceReadStore{view: stored}, mockClock)

		actual, err := q.GetByID(context.Background(), customerID, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, "EXPIRED", actual.Status)
		assert.Equal(t, int32(0), actual.RemainingSeconds)
	})

	t.Run("exact expiry instant is already expired", func(t *testing.T) {
		stored := pendingView(customerID, base, 180*time.Second)
		mockClock := clock.NewMockClock(base.Add(180 * time.Second))
		q := queries.NewIssuanceQueries(&stubIssuanceReadStore{view: stored}, mockClock)

		actual, err := q.GetByID(context.Background(), customerID, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, "EXPIRED", actual.Status)
	})

	t.Run("resolved request never shows a countdown", func(t *testing.T) {
		stored := pendingView(customerID, base, 180*time.Second)
		stored.Status = "APPROVED"
		stored.RewardsIssued = 1
		mockClock := clock.NewMockClock(base.Add(10 * time.Second))
		q := queries.NewIssuanceQueries(&stubIssuanceReadStore{view: stored}, mockClock)

		actual, err := q.GetByID(context.Background(), customerID, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, "APPROVED", actual.Status)
		assert.Equal(t, int32(0), actual.RemainingSeconds)
	})

	t.Run("another customer's request reads as not found", func(t *testing.T) {
		stored := pendingView(customerID, base, 180*time.Second)
		mockClock := clock.NewMockClock(base)
		q := queries.NewIssuanceQueries(&stubIssuanceReadStore{view: stored}, mockClock)

		_, err := q.GetByID(context.Background(), uuid.New(), stored.ID)
		assert.ErrorIs(t, err, queries.ErrIssuanceRequestNotFound)
	})

	t.Run("missing row maps to the query-level not found error", func(t *testing.T) {
		store := &stubIssuanceReadStore{
			findErr: infra.NewRepoErr(infra.KindNotFound, "issuance request not found"),
		}
		q := queries.NewIssuanceQueries(store, clock.NewMockClock(base))

		_, err := q.GetByID(context.Background(), customerID, uuid.New())
		assert.ErrorIs(t, err, queries.ErrIssuanceRequestNotFound)
	})
}

func TestIssuanceQueriesListPendingByStore(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	storeID := uuid.New()

	item := func(expiresIn time.Duration) *queries.PendingIssuanceItem {
		return &queries.PendingIssuanceItem{
			ID:                uuid.New(),
			WalletStampCardID: uuid.New(),
			CustomerEmail:     "customer@example.com",
			CurrentStampCount: 4,
			GoalCount:         10,
			ExpiresAt:         base.Add(expiresIn),
			CreatedAt:         base,
		}
	}

	t.Run("drops items that expired between query and response", func(t *testing.T) {
		live := item(90 * time.Second)
		dead := item(-1 * time.Second)
		store := &stubIssuanceReadStore{pending: []*queries.PendingIssuanceItem{dead, live}}
		q := queries.NewIssuanceQueries(store, clock.NewMockClock(base))

		items, err := q.ListPendingByStore(context.Background(), storeID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, live.ID, items[0].ID)
		assert.Equal(t, int32(90), items[0].RemainingSeconds)
	})

	t.Run("empty queue stays empty", func(t *testing.T) {
		store := &stubIssuanceReadStore{pending: []*queries.PendingIssuanceItem{}}
		q := queries.NewIssuanceQueries(store, clock.NewMockClock(base))

		items, err := q.ListPendingByStore(context.Background(), storeID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestIssuanceQueriesListProcessedByStore(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	storeID := uuid.New()

	t.Run("non-positive limit falls back to the default page size", func(t *testing.T) {
		store := &stubIssuanceReadStore{}
		q := queries.NewIssuanceQueries(store, clock.NewMockClock(base))

		_, err := q.ListProcessedByStore(context.Background(), storeID, 0)
		require.NoError(t, err)
		assert.Equal(t, int32(50), store.processedLimit)
	})

	t.Run("explicit limit passes through", func(t *testing.T) {
		store := &stubIssuanceReadStore{}
		q := queries.NewIssuanceQueries(store, clock.NewMockClock(base))

		_, err := q.ListProcessedByStore(context.Background(), storeID, 10)
		require.NoError(t, err)
		assert.Equal(t, int32(10), store.processedLimit)
	})
}
