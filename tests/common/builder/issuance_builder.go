//go:build unit || e2e

package builder

import (
	"time"

	reqdto "stamppass/internal/handler/dto/request"
	"stamppass/internal/usecase/queries"

	"github.com/google/uuid"
)

// IssuanceBuilder assembles issuance request DTOs and read models with
// sensible defaults for tests.
type IssuanceBuilder struct {
	ID                uuid.UUID
	StoreID           uuid.UUID
	WalletStampCardID uuid.UUID
	CustomerID        uuid.UUID
	IdempotencyKey    uuid.UUID
	Status            string
	CurrentStampCount int32
	RewardsIssued     int32
	RemainingSeconds  int32
	CreatedAt         time.Time
}

func NewIssuanceBuilder() *IssuanceBuilder {
	return &IssuanceBuilder{
		ID:                uuid.New(),
		StoreID:           uuid.New(),
		WalletStampCardID: uuid.New(),
		CustomerID:        uuid.New(),
		IdempotencyKey:    uuid.New(),
		Status:            "PENDING",
		CurrentStampCount: 3,
		RewardsIssued:     0,
		RemainingSeconds:  180,
		CreatedAt:         time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *IssuanceBuilder) WithStatus(status string) *IssuanceBuilder {
	b.Status = status
	return b
}

func (b *IssuanceBuilder) WithRewardsIssued(n int32) *IssuanceBuilder {
	b.RewardsIssued = n
	return b
}

func (b *IssuanceBuilder) BuildDTO() reqdto.CreateIssuanceRequest {
	return reqdto.CreateIssuanceRequest{
		StoreID:           b.StoreID,
		WalletStampCardID: b.WalletStampCardID,
		IdempotencyKey:    b.IdempotencyKey,
	}
}

func (b *IssuanceBuilder) BuildView() *queries.IssuanceRequestView {
	return &queries.IssuanceRequestView{
		ID:                b.ID,
		StoreID:           b.StoreID,
		WalletStampCardID: b.WalletStampCardID,
		CustomerID:        b.CustomerID,
		Status:            b.Status,
		CurrentStampCount: b.CurrentStampCount,
		RewardsIssued:     b.RewardsIssued,
		RemainingSeconds:  b.RemainingSeconds,
		ExpiresAt:         b.CreatedAt.Add(time.Duration(b.RemainingSeconds) * time.Second),
		CreatedAt:         b.CreatedAt,
	}
}

func (b *IssuanceBuilder) BuildPendingItem() *queries.PendingIssuanceItem {
	return &queries.PendingIssuanceItem{
		ID:                b.ID,
		WalletStampCardID: b.WalletStampCardID,
		CustomerEmail:     "customer@example.com",
		CurrentStampCount: b.CurrentStampCount,
		GoalCount:         10,
		RemainingSeconds:  b.RemainingSeconds,
		ExpiresAt:         b.CreatedAt.Add(time.Duration(b.RemainingSeconds) * time.Second),
		CreatedAt:         b.CreatedAt,
	}
}
