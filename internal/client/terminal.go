package client

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"stamppass/internal/pkg/clock"
)

// PendingQueueCacheKey is the cache key for a store's pending queue.
func PendingQueueCacheKey(storeID uuid.UUID) string {
	return "terminal/" + storeID.String() + "/pending"
}

// ApprovalQueue is the store-terminal view of pending issuance requests. It
// polls the pending list and exposes approve/reject. A failed mutation keeps
// the item in the queue; only a successful mutation or a later poll removes
// it.
type ApprovalQueue struct {
	mu     sync.Mutex
	api    *API
	cache  *Cache
	poller *Poller

	storeID uuid.UUID
	items   []*PendingIssuance
	handle  *PollHandle
}

func NewApprovalQueue(api *API, cache *Cache, clk clock.Clock, storeID uuid.UUID, pollInterval time.Duration) *ApprovalQueue {
	return &ApprovalQueue{
		api:     api,
		cache:   cache,
		poller:  NewPoller(clk, pollInterval),
		storeID: storeID,
	}
}

// Start fetches the queue once and then keeps it refreshed at the poll
// interval until Stop or context teardown.
func (q *ApprovalQueue) Start(ctx context.Context) error {
	if err := q.Refresh(ctx); err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.handle != nil {
		q.handle.Stop()
	}
	q.handle = q.poller.Start(ctx, func(ctx context.Context) bool {
		// Fetch failures are transient; the queue keeps its last
		// good snapshot until the next successful poll.
		_ = q.Refresh(ctx)
		return false
	})
	return nil
}

// Refresh replaces the queue with the backend's current pending list.
func (q *ApprovalQueue) Refresh(ctx context.Context) error {
	items, err := q.api.ListPendingIssuance(ctx, q.storeID)
	if err != nil {
		return err
	}

	q.mu.Lock()
	q.items = items
	q.mu.Unlock()

	q.cache.Set(PendingQueueCacheKey(q.storeID), items)
	return nil
}

// Approve resolves the request. On success the item leaves the queue via an
// immediate refetch; on failure it stays so the operator can retry.
func (q *ApprovalQueue) Approve(ctx context.Context, requestID uuid.UUID) (*IssuanceRequest, error) {
	resolved, err := q.api.ApproveIssuance(ctx, q.storeID, requestID)
	if err != nil {
		return nil, err
	}
	q.afterResolve(ctx, requestID)
	return resolved, nil
}

// Reject resolves the request without granting a stamp.
func (q *ApprovalQueue) Reject(ctx context.Context, requestID uuid.UUID) (*IssuanceRequest, error) {
	resolved, err := q.api.RejectIssuance(ctx, q.storeID, requestID)
	if err != nil {
		return nil, err
	}
	q.afterResolve(ctx, requestID)
	return resolved, nil
}

func (q *ApprovalQueue) afterResolve(ctx context.Context, requestID uuid.UUID) {
	q.cache.Invalidate(PendingQueueCacheKey(q.storeID))
	if err := q.Refresh(ctx); err != nil {
		// Refetch failed; drop the resolved item optimistically so the
		// operator never sees an already-handled request.
		q.mu.Lock()
		kept := q.items[:0]
		for _, item := range q.items {
			if item.ID != requestID {
				kept = append(kept, item)
			}
		}
		q.items = kept
		q.mu.Unlock()
	}
}

// Items returns a copy of the current pending queue, in backend order.
func (q *ApprovalQueue) Items() []*PendingIssuance {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]*PendingIssuance, len(q.items))
	copy(out, q.items)
	return out
}

// Stop ends the poll session.
func (q *ApprovalQueue) Stop() {
	q.mu.Lock()
	handle := q.handle
	q.handle = nil
	q.mu.Unlock()

	if handle != nil {
		handle.Stop()
	}
}
