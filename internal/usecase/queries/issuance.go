package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"stamppass/internal/domain/issuance"
	"stamppass/internal/infra"
	"stamppass/internal/pkg/clock"
	"stamppass/internal/pkg/errs"
)

var (
	ErrIssuanceRequestNotFound = errs.New("issuance request not found")
	ErrIssuanceAccess          = errs.New("issuance request access denied")
)

type IssuanceQueries interface {
	// GetByID is the customer-facing polling read. The caller must own the
	// request; anything else reads as not found.
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*IssuanceRequestView, error)
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*IssuanceRequestView, error)
	ListPendingByStore(ctx context.Context, storeID uuid.UUID) ([]*PendingIssuanceItem, error)
	ListProcessedByStore(ctx context.Context, storeID uuid.UUID, limit int) ([]*ProcessedIssuanceItem, error)
}

type IssuanceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*IssuanceRequestView, error)
	// FindPendingByStore returns unexpired PENDING requests, oldest first.
	FindPendingByStore(ctx context.Context, storeID uuid.UUID) ([]*PendingIssuanceItem, error)
	// FindProcessedByStore returns resolved requests, newest first.
	FindProcessedByStore(ctx context.Context, storeID uuid.UUID, limit int32) ([]*ProcessedIssuanceItem, error)
}

type issuanceQueriesImpl struct {
	readStore IssuanceReadStore
	clock     clock.Clock
}

func NewIssuanceQueries(readStore IssuanceReadStore, clock clock.Clock) IssuanceQueries {
	return &issuanceQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *issuanceQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*IssuanceRequestView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.CustomerID != actor {
		// Hide existence from non-owners
		return nil, ErrIssuanceRequestNotFound
	}
	return view, nil
}

func (q *issuanceQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*IssuanceRequestView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrIssuanceRequestNotFound
		}
		return nil, err
	}
	q.finalizeView(view)
	return view, nil
}

func (q *issuanceQueriesImpl) ListPendingByStore(ctx context.Context, storeID uuid.UUID) ([]*PendingIssuanceItem, error) {
	items, err := q.readStore.FindPendingByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	// The store-side filter runs on database time; re-check here so an item
	// that expired between query and response never shows a live countdown.
	live := items[:0]
	for _, item := range items {
		if !now.Before(item.ExpiresAt) {
			continue
		}
		item.RemainingSeconds = remainingSeconds(now, item.ExpiresAt)
		live = append(live, item)
	}
	return live, nil
}

func (q *issuanceQueriesImpl) ListProcessedByStore(ctx context.Context, storeID uuid.UUID, limit int) ([]*ProcessedIssuanceItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.readStore.FindProcessedByStore(ctx, storeID, int32(limit))
}

// finalizeView derives the time-dependent fields. A PENDING row whose TTL has
// elapsed is reported as EXPIRED even before any write has persisted the
// transition; expiry is a function of expires_at, not of a background sweeper.
func (q *issuanceQueriesImpl) finalizeView(view *IssuanceRequestView) {
	now := q.clock.Now()
	if view.Status == issuance.StatusPending.String() {
		if now.Before(view.ExpiresAt) {
			view.RemainingSeconds = remainingSeconds(now, view.ExpiresAt)
		} else {
			view.Status = issuance.StatusExpired.String()
			view.RemainingSeconds = 0
		}
	} else {
		view.RemainingSeconds = 0
	}
}

func remainingSeconds(now, expiresAt time.Time) int32 {
	remaining := expiresAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	secs := int64(remaining / time.Second)
	if remaining%time.Second != 0 {
		secs++
	}
	return int32(secs)
}
