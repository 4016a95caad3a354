package wallet

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRewardUsed    = errors.New("reward already used")
	ErrRewardExpired = errors.New("reward expired")
)

type RewardStatus string

const (
	RewardStatusActive RewardStatus = "active"
	RewardStatusUsed   RewardStatus = "used"
)

// Reward is earned by completing a stamp card and consumed through a redeem
// session.
type Reward struct {
	id                uuid.UUID
	customerID        uuid.UUID
	walletStampCardID uuid.UUID
	name              string
	status            RewardStatus
	usedAt            *time.Time
	expiresAt         *time.Time
	createdAt         time.Time
}

func NewReward(customerID, walletStampCardID uuid.UUID, name string, expiresAt *time.Time) *Reward {
	return &Reward{
		id:                uuid.New(),
		customerID:        customerID,
		walletStampCardID: walletStampCardID,
		name:              name,
		status:            RewardStatusActive,
		expiresAt:         expiresAt,
	}
}

func ReconstructReward(
	id, customerID, walletStampCardID uuid.UUID,
	name string,
	status RewardStatus,
	usedAt, expiresAt *time.Time,
	createdAt time.Time,
) *Reward {
	return &Reward{
		id:                id,
		customerID:        customerID,
		walletStampCardID: walletStampCardID,
		name:              name,
		status:            status,
		usedAt:            usedAt,
		expiresAt:         expiresAt,
		createdAt:         createdAt,
	}
}

func (r *Reward) ID() uuid.UUID                { return r.id }
func (r *Reward) CustomerID() uuid.UUID        { return r.customerID }
func (r *Reward) WalletStampCardID() uuid.UUID { return r.walletStampCardID }
func (r *Reward) Name() string                 { return r.name }
func (r *Reward) Status() RewardStatus         { return r.status }
func (r *Reward) UsedAt() *time.Time           { return r.usedAt }
func (r *Reward) ExpiresAt() *time.Time        { return r.expiresAt }
func (r *Reward) CreatedAt() time.Time         { return r.createdAt }

func (r *Reward) IsActive(now time.Time) bool {
	if r.status != RewardStatusActive {
		return false
	}
	return r.expiresAt == nil || now.Before(*r.expiresAt)
}

// Use consumes the reward. Called only after a redeem session was consumed,
// so a double call indicates a protocol violation rather than a user retry.
func (r *Reward) Use(now time.Time) error {
	if r.status == RewardStatusUsed {
		return ErrRewardUsed
	}
	if r.expiresAt != nil && !now.Before(*r.expiresAt) {
		return ErrRewardExpired
	}
	r.status = RewardStatusUsed
	r.usedAt = &now
	return nil
}
