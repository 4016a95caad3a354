package redemption

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionExpired = errors.New("redeem session expired")
)

// Session is a short-lived, single-use window in which a staff member may
// confirm a reward redemption. Durability is a Redis key with a TTL; the
// entity here only carries identity and the validity window. Consuming the
// key is what makes completion at-most-once.
type Session struct {
	id             uuid.UUID
	walletRewardID uuid.UUID
	customerID     uuid.UUID
	expiresAt      time.Time
}

func NewSession(walletRewardID, customerID uuid.UUID, now time.Time, ttl time.Duration) *Session {
	return &Session{
		id:             uuid.New(),
		walletRewardID: walletRewardID,
		customerID:     customerID,
		expiresAt:      now.Add(ttl),
	}
}

func ReconstructSession(id, walletRewardID, customerID uuid.UUID, expiresAt time.Time) *Session {
	return &Session{
		id:             id,
		walletRewardID: walletRewardID,
		customerID:     customerID,
		expiresAt:      expiresAt,
	}
}

func (s *Session) ID() uuid.UUID             { return s.id }
func (s *Session) WalletRewardID() uuid.UUID { return s.walletRewardID }
func (s *Session) CustomerID() uuid.UUID     { return s.customerID }
func (s *Session) ExpiresAt() time.Time      { return s.expiresAt }

func (s *Session) HasExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

func (s *Session) RemainingSeconds(now time.Time) int32 {
	remaining := s.expiresAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int32(remaining / time.Second)
}

// BelongsTo guards completion: only the customer who opened the session may
// consume it.
func (s *Session) BelongsTo(customerID uuid.UUID) bool {
	return s.customerID == customerID
}
