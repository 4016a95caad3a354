package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type IssuanceRequestView struct {
	ID                uuid.UUID  `json:"id"`
	StoreID           uuid.UUID  `json:"store_id"`
	WalletStampCardID uuid.UUID  `json:"wallet_stamp_card_id"`
	CustomerID        uuid.UUID  `json:"customer_id"`
	Status            string     `json:"status"`
	CurrentStampCount int32      `json:"current_stamp_count"`
	RewardsIssued     int32      `json:"rewards_issued"`
	RemainingSeconds  int32      `json:"remaining_seconds"`
	ExpiresAt         time.Time  `json:"-"`
	ResolvedAt        *time.Time `json:"resolved_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type PendingIssuanceItem struct {
	ID                uuid.UUID `json:"id"`
	WalletStampCardID uuid.UUID `json:"wallet_stamp_card_id"`
	CustomerEmail     string    `json:"customer_email"`
	CurrentStampCount int32     `json:"current_stamp_count"`
	GoalCount         int32     `json:"goal_count"`
	RemainingSeconds  int32     `json:"remaining_seconds"`
	ExpiresAt         time.Time `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
}

type ProcessedIssuanceItem struct {
	ID            uuid.UUID  `json:"id"`
	CustomerEmail string     `json:"customer_email"`
	Status        string     `json:"status"`
	RewardsIssued int32      `json:"rewards_issued"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type WalletStampCardView struct {
	ID          uuid.UUID       `json:"id"`
	StoreID     uuid.UUID       `json:"store_id"`
	StoreName   string          `json:"store_name"`
	DesignID    uuid.UUID       `json:"design_id"`
	DesignName  string          `json:"design_name"`
	RewardName  string          `json:"reward_name"`
	Design      json.RawMessage `json:"design,omitempty"`
	StampCount  int32           `json:"stamp_count"`
	GoalCount   int32           `json:"goal_count"`
	IsCompleted bool            `json:"is_completed"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type RewardView struct {
	ID        uuid.UUID  `json:"id"`
	StoreName string     `json:"store_name"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type MigrationRequestView struct {
	ID                uuid.UUID  `json:"id"`
	StoreID           uuid.UUID  `json:"store_id"`
	StoreName         string     `json:"store_name"`
	ClaimedStampCount int32      `json:"claimed_stamp_count"`
	ProofImageURL     string     `json:"proof_image_url"`
	Status            string     `json:"status"`
	ResolvedAt        *time.Time `json:"resolved_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	StoreID  *uuid.UUID `json:"store_id,omitempty"`
	IsActive bool       `json:"is_active"`
}
