package client

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"stamppass/internal/pkg/clock"
	"stamppass/internal/pkg/countdown"
	"stamppass/internal/pkg/errs"
)

// RedemptionState is the customer-side view of a redeem session.
type RedemptionState string

const (
	RedemptionLoading    RedemptionState = "loading"
	RedemptionConfirming RedemptionState = "confirming"
	RedemptionCompleting RedemptionState = "completing"
	RedemptionSuccess    RedemptionState = "success"
	RedemptionFailed     RedemptionState = "failed"
)

const (
	msgRedeemSuccess     = "리워드 사용 완료"
	msgRedeemExpired     = "세션이 만료되었습니다. 다시 시도해주세요"
	msgRedeemStartFailed = "사용 세션을 열지 못했습니다. 다시 시도해주세요"
	msgRedeemFailed      = "사용 처리에 실패했습니다. 매장에 문의해주세요"
)

var (
	ErrNotConfirming       = errs.New("session is not awaiting confirmation")
	ErrConfirmationExpired = errs.New("confirmation is no longer valid")
)

// RedemptionSnapshot is an immutable copy of the flow for rendering.
type RedemptionSnapshot struct {
	State            RedemptionState
	SessionID        uuid.UUID
	RemainingSeconds int32
	Countdown        string
	Message          string
}

// RedemptionFlow drives one redeem session: loading → confirming →
// {completing → success, failed}. The countdown ticks locally once per
// second from the server-issued remaining seconds; hitting zero while
// confirming forces failed, and from that point completion is unreachable.
// The completion call itself only happens through a StaffConfirmation,
// never directly from Use.
type RedemptionFlow struct {
	mu    sync.Mutex
	api   *API
	clock clock.Clock

	state      RedemptionState
	sessionID  uuid.UUID
	remaining  int32
	message    string
	generation uint64
	tickerStop chan struct{}
}

func NewRedemptionFlow(api *API, clk clock.Clock) *RedemptionFlow {
	return &RedemptionFlow{
		api:   api,
		clock: clk,
		state: RedemptionLoading,
	}
}

// Start opens the session for the reward. Failure to open is terminal; the
// user restarts the flow from the reward screen.
func (f *RedemptionFlow) Start(ctx context.Context, walletRewardID uuid.UUID) error {
	session, err := f.api.StartRedeemSession(ctx, walletRewardID)
	if err != nil {
		f.mu.Lock()
		f.state = RedemptionFailed
		f.message = msgRedeemStartFailed
		f.mu.Unlock()
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = RedemptionConfirming
	f.sessionID = session.SessionID
	f.remaining = session.RemainingSeconds
	f.generation++
	f.startCountdownLocked(ctx, f.generation)
	return nil
}

func (f *RedemptionFlow) startCountdownLocked(ctx context.Context, gen uint64) {
	stop := make(chan struct{})
	f.tickerStop = stop

	ticker := f.clock.NewTicker(time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-ticker.C():
				if f.tick(gen) {
					return
				}
			}
		}
	}()
}

// tick decrements the countdown. Zero while confirming is an absolute
// deadline: the state flips to failed under the same lock Confirm takes, so
// no completion call can slip through afterwards.
func (f *RedemptionFlow) tick(gen uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation || f.state != RedemptionConfirming {
		return true
	}

	f.remaining--
	if f.remaining <= 0 {
		f.remaining = 0
		f.state = RedemptionFailed
		f.message = msgRedeemExpired
		return true
	}
	return false
}

// StaffConfirmation is the second step of the redeem gate: a prompt shown to
// store staff, not the customer. Only its Confirm enters completing; Use
// never completes the session by itself.
type StaffConfirmation struct {
	flow *RedemptionFlow
	gen  uint64
	used bool
}

// Use requests staff confirmation for the session. It does not change state;
// the returned confirmation's Confirm does.
func (f *RedemptionFlow) Use() (*StaffConfirmation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != RedemptionConfirming || f.remaining <= 0 {
		return nil, ErrNotConfirming
	}
	return &StaffConfirmation{flow: f, gen: f.generation}, nil
}

// Confirm completes the session. It re-validates the deadline under the
// flow's lock, so a confirmation held past expiry is rejected rather than
// redeemed. A completion failure is terminal; the session cannot be retried.
func (c *StaffConfirmation) Confirm(ctx context.Context) error {
	f := c.flow

	f.mu.Lock()
	if c.used || c.gen != f.generation || f.state != RedemptionConfirming || f.remaining <= 0 {
		f.mu.Unlock()
		return ErrConfirmationExpired
	}
	c.used = true
	f.state = RedemptionCompleting
	f.stopCountdownLocked()
	sessionID := f.sessionID
	f.mu.Unlock()

	err := f.api.CompleteRedeemSession(ctx, sessionID)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = RedemptionFailed
		f.message = msgRedeemFailed
		return err
	}
	f.state = RedemptionSuccess
	f.message = msgRedeemSuccess
	return nil
}

// Cancel dismisses the prompt. The session stays in confirming and keeps
// counting down normally.
func (c *StaffConfirmation) Cancel() {
	c.flow.mu.Lock()
	defer c.flow.mu.Unlock()
	c.used = true
}

// Snapshot returns the current render state.
func (f *RedemptionFlow) Snapshot() RedemptionSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return RedemptionSnapshot{
		State:            f.state,
		SessionID:        f.sessionID,
		RemainingSeconds: f.remaining,
		Countdown:        countdown.Format(int(f.remaining)),
		Message:          f.message,
	}
}

// Stop tears the flow down when its screen unmounts.
func (f *RedemptionFlow) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generation++
	f.stopCountdownLocked()
}

func (f *RedemptionFlow) stopCountdownLocked() {
	if f.tickerStop != nil {
		close(f.tickerStop)
		f.tickerStop = nil
	}
}
