package client

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"stamppass/internal/pkg/clock"
	"stamppass/internal/pkg/errs"
)

// IssuanceState is the customer-side view of a stamp request.
type IssuanceState string

const (
	IssuanceIdle     IssuanceState = "idle"
	IssuancePending  IssuanceState = "pending"
	IssuanceApproved IssuanceState = "approved"
	IssuanceRewarded IssuanceState = "rewarded"
	IssuanceRejected IssuanceState = "rejected"
	IssuanceExpired  IssuanceState = "expired"
)

// IsTerminal reports whether the state accepts no further poll results.
func (s IssuanceState) IsTerminal() bool {
	switch s {
	case IssuanceApproved, IssuanceRewarded, IssuanceRejected, IssuanceExpired:
		return true
	default:
		return false
	}
}

// Customer-facing copy, rendered verbatim by the screens.
const (
	msgIssuanceApproved = "적립 완료"
	msgIssuanceRewarded = "리워드 획득!"
	msgIssuanceRejected = "적립 요청이 거절되었습니다"
	msgIssuanceExpired  = "요청이 만료되어 적립되지 않았습니다"

	ActionOpenRewardBox = "리워드 보관함"
	ActionViewNewCard   = "새 스탬프 카드 보기"
)

var ErrIssuanceInFlight = errs.New("issuance request already in flight")

// IssuanceSnapshot is an immutable copy of the flow for rendering.
type IssuanceSnapshot struct {
	State            IssuanceState
	RequestID        uuid.UUID
	StampCount       int32
	RewardsIssued    int32
	RemainingSeconds int32
	Message          string
	Actions          []string
}

// IssuanceFlow drives one stamp request from idle through pending to a
// terminal state. Terminal states are monotonic: once reached, no poll
// result changes the displayed state. Each RequestStamp attempt mints a
// fresh idempotency key and owns exactly one poll session.
type IssuanceFlow struct {
	mu     sync.Mutex
	api    *API
	cache  *Cache
	poller *Poller

	state         IssuanceState
	requestID     uuid.UUID
	stampCount    int32
	rewardsIssued int32
	remaining     int32
	generation    uint64
	handle        *PollHandle
}

func NewIssuanceFlow(api *API, cache *Cache, clk clock.Clock, pollInterval time.Duration) *IssuanceFlow {
	return &IssuanceFlow{
		api:    api,
		cache:  cache,
		poller: NewPoller(clk, pollInterval),
		state:  IssuanceIdle,
	}
}

// RequestStamp creates the issuance request and starts polling its status.
// A create failure leaves the flow in idle so the user can retry; the retry
// mints a new idempotency key.
func (f *IssuanceFlow) RequestStamp(ctx context.Context, storeID, walletStampCardID uuid.UUID) error {
	f.mu.Lock()
	if f.state != IssuanceIdle {
		f.mu.Unlock()
		return ErrIssuanceInFlight
	}
	f.mu.Unlock()

	// One create call per user attempt, each with its own key.
	key := uuid.New()
	created, err := f.api.CreateIssuanceRequest(ctx, storeID, walletStampCardID, key)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != IssuanceIdle {
		// A concurrent attempt won the race; its poll session stands.
		return ErrIssuanceInFlight
	}
	f.state = IssuancePending
	f.requestID = created.ID
	f.stampCount = created.CurrentStampCount
	f.rewardsIssued = created.RewardsIssued
	f.remaining = created.RemainingSeconds
	f.generation++

	gen := f.generation
	requestID := created.ID
	f.handle = f.poller.Start(ctx, func(ctx context.Context) bool {
		res, err := f.api.GetIssuanceRequest(ctx, requestID)
		if err != nil {
			// Transient: a missed poll never fails the flow.
			return false
		}
		return f.applyPollResult(gen, res)
	})

	return nil
}

// applyPollResult folds a poll response into the machine. Results from a
// superseded generation, or arriving after a terminal state, are discarded;
// returning true retires the stale poll session.
func (f *IssuanceFlow) applyPollResult(gen uint64, res *IssuanceRequest) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation || f.state != IssuancePending {
		return true
	}

	// Trust the server's remaining seconds on every poll rather than
	// ticking locally, so the countdown cannot drift.
	f.stampCount = res.CurrentStampCount
	f.rewardsIssued = res.RewardsIssued
	f.remaining = res.RemainingSeconds

	switch res.Status {
	case "PENDING":
		return false
	case "APPROVED":
		if res.RewardsIssued > 0 {
			f.state = IssuanceRewarded
			f.cache.Invalidate(CacheKeyWalletStampCards)
		} else {
			f.state = IssuanceApproved
		}
	case "REJECTED":
		f.state = IssuanceRejected
	case "EXPIRED":
		f.state = IssuanceExpired
	default:
		return false
	}
	return true
}

// Snapshot returns the current render state.
func (f *IssuanceFlow) Snapshot() IssuanceSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := IssuanceSnapshot{
		State:            f.state,
		RequestID:        f.requestID,
		StampCount:       f.stampCount,
		RewardsIssued:    f.rewardsIssued,
		RemainingSeconds: f.remaining,
	}

	switch f.state {
	case IssuanceApproved:
		snap.Message = msgIssuanceApproved
	case IssuanceRewarded:
		snap.Message = msgIssuanceRewarded
		snap.Actions = []string{ActionOpenRewardBox, ActionViewNewCard}
	case IssuanceRejected:
		snap.Message = msgIssuanceRejected
	case IssuanceExpired:
		snap.Message = msgIssuanceExpired
	}
	return snap
}

// Stop tears the flow down when its screen unmounts. The generation bump
// makes any in-flight poll result a no-op.
func (f *IssuanceFlow) Stop() {
	f.mu.Lock()
	f.generation++
	handle := f.handle
	f.handle = nil
	f.mu.Unlock()

	if handle != nil {
		handle.Stop()
	}
}

// Reset returns a terminal flow to idle for a fresh attempt.
func (f *IssuanceFlow) Reset() {
	f.Stop()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = IssuanceIdle
	f.requestID = uuid.Nil
	f.stampCount = 0
	f.rewardsIssued = 0
	f.remaining = 0
}
