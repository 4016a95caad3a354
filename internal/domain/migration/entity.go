package migration

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidClaimedCount = errors.New("claimed stamp count must be positive")
	ErrProofImageRequired  = errors.New("proof image is required")
	ErrAlreadyResolved     = errors.New("migration request already resolved")
)

type Status string

const (
	StatusSubmitted Status = "SUBMITTED"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
)

func (s Status) String() string { return string(s) }

func (s Status) IsResolved() bool {
	return s != StatusSubmitted
}

// Request carries a paper-card balance into the wallet: the customer claims a
// stamp count with a photo of the old card, the store resolves it once. One
// request per store per customer is enforced by the storage layer.
type Request struct {
	id                uuid.UUID
	storeID           uuid.UUID
	customerID        uuid.UUID
	claimedStampCount int32
	proofImageURL     string
	status            Status
	resolvedAt        *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRequest(storeID, customerID uuid.UUID, claimedStampCount int32, proofImageURL string) (*Request, error) {
	if claimedStampCount <= 0 {
		return nil, ErrInvalidClaimedCount
	}
	if proofImageURL == "" {
		return nil, ErrProofImageRequired
	}
	return &Request{
		id:                uuid.New(),
		storeID:           storeID,
		customerID:        customerID,
		claimedStampCount: claimedStampCount,
		proofImageURL:     proofImageURL,
		status:            StatusSubmitted,
	}, nil
}

func ReconstructRequest(
	id, storeID, customerID uuid.UUID,
	claimedStampCount int32,
	proofImageURL string,
	status Status,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:                id,
		storeID:           storeID,
		customerID:        customerID,
		claimedStampCount: claimedStampCount,
		proofImageURL:     proofImageURL,
		status:            status,
		resolvedAt:        resolvedAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (r *Request) ID() uuid.UUID            { return r.id }
func (r *Request) StoreID() uuid.UUID       { return r.storeID }
func (r *Request) CustomerID() uuid.UUID    { return r.customerID }
func (r *Request) ClaimedStampCount() int32 { return r.claimedStampCount }
func (r *Request) ProofImageURL() string    { return r.proofImageURL }
func (r *Request) Status() Status           { return r.status }
func (r *Request) ResolvedAt() *time.Time   { return r.resolvedAt }
func (r *Request) CreatedAt() time.Time     { return r.createdAt }
func (r *Request) UpdatedAt() time.Time     { return r.updatedAt }

func (r *Request) Approve(now time.Time) error {
	return r.resolve(StatusApproved, now)
}

func (r *Request) Reject(now time.Time) error {
	return r.resolve(StatusRejected, now)
}

func (r *Request) resolve(to Status, now time.Time) error {
	if r.status.IsResolved() {
		return ErrAlreadyResolved
	}
	r.status = to
	r.resolvedAt = &now
	return nil
}
