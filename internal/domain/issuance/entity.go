package issuance

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotPending        = errors.New("issuance request is not pending")
	ErrExpired           = errors.New("issuance request expired")
	ErrInvalidTransition = errors.New("invalid issuance status transition")
	ErrInvalidStampCount = errors.New("stamp count cannot be negative")
)

// Request is a customer's ask for stamps, resolved by a store terminal within
// the request TTL. Created by the customer; only the terminal (or expiry)
// moves it out of PENDING.
type Request struct {
	id                 uuid.UUID
	storeID            uuid.UUID
	walletStampCardID  uuid.UUID
	customerID         uuid.UUID
	status             Status
	stampCountSnapshot int32
	rewardsIssued      int32
	expiresAt          time.Time
	resolvedAt         *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

func NewRequest(storeID, walletStampCardID, customerID uuid.UUID, now time.Time, ttl time.Duration) *Request {
	return &Request{
		id:                uuid.New(),
		storeID:           storeID,
		walletStampCardID: walletStampCardID,
		customerID:        customerID,
		status:            StatusPending,
		expiresAt:         now.Add(ttl),
	}
}

func ReconstructRequest(
	id, storeID, walletStampCardID, customerID uuid.UUID,
	status Status,
	stampCountSnapshot, rewardsIssued int32,
	expiresAt time.Time,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:                 id,
		storeID:            storeID,
		walletStampCardID:  walletStampCardID,
		customerID:         customerID,
		status:             status,
		stampCountSnapshot: stampCountSnapshot,
		rewardsIssued:      rewardsIssued,
		expiresAt:          expiresAt,
		resolvedAt:         resolvedAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (r *Request) ID() uuid.UUID                { return r.id }
func (r *Request) StoreID() uuid.UUID           { return r.storeID }
func (r *Request) WalletStampCardID() uuid.UUID { return r.walletStampCardID }
func (r *Request) CustomerID() uuid.UUID        { return r.customerID }
func (r *Request) Status() Status               { return r.status }
func (r *Request) StampCountSnapshot() int32    { return r.stampCountSnapshot }
func (r *Request) RewardsIssued() int32         { return r.rewardsIssued }
func (r *Request) ExpiresAt() time.Time         { return r.expiresAt }
func (r *Request) ResolvedAt() *time.Time       { return r.resolvedAt }
func (r *Request) CreatedAt() time.Time         { return r.createdAt }
func (r *Request) UpdatedAt() time.Time         { return r.updatedAt }

func (r *Request) IsPending() bool {
	return r.status == StatusPending
}

func (r *Request) HasExpired(now time.Time) bool {
	return !now.Before(r.expiresAt)
}

// RemainingSeconds is the validity window left, floored at zero. Clients must
// treat this server-derived value as authoritative on every poll.
func (r *Request) RemainingSeconds(now time.Time) int32 {
	if r.status.IsTerminal() {
		return 0
	}
	remaining := r.expiresAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int32(remaining / time.Second)
}

// Approve resolves the request, recording the resulting stamp count and how
// many rewards the approval produced. Approval of an expired request is
// refused even if the row still reads PENDING.
func (r *Request) Approve(now time.Time, stampCount, rewardsIssued int32) error {
	if stampCount < 0 || rewardsIssued < 0 {
		return ErrInvalidStampCount
	}
	if err := r.apply(EventApprove, now); err != nil {
		return err
	}
	r.stampCountSnapshot = stampCount
	r.rewardsIssued = rewardsIssued
	return nil
}

func (r *Request) Reject(now time.Time) error {
	return r.apply(EventReject, now)
}

// Expire terminalizes an overdue request. Unlike Approve/Reject it requires
// the TTL to have elapsed.
func (r *Request) Expire(now time.Time) error {
	if !r.HasExpired(now) {
		return ErrInvalidTransition
	}
	tr, ok := TransitionFor(r.status, EventExpire)
	if !ok {
		return ErrNotPending
	}
	r.status = tr.To
	r.resolvedAt = &now
	return nil
}

func (r *Request) apply(ev Event, now time.Time) error {
	tr, ok := TransitionFor(r.status, ev)
	if !ok {
		return ErrNotPending
	}
	if r.HasExpired(now) {
		return ErrExpired
	}
	r.status = tr.To
	r.resolvedAt = &now
	return nil
}
