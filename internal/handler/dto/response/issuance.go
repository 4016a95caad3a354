package response

import (
	"time"

	"github.com/google/uuid"

	"stamppass/internal/usecase/queries"
)

type IssuanceRequestResponse struct {
	ID                uuid.UUID  `json:"id"`
	StoreID           uuid.UUID  `json:"storeId"`
	WalletStampCardID uuid.UUID  `json:"walletStampCardId"`
	Status            string     `json:"status"`
	CurrentStampCount int32      `json:"currentStampCount"`
	RewardsIssued     int32      `json:"rewardsIssued"`
	RemainingSeconds  int32      `json:"remainingSeconds"`
	ResolvedAt        *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type PendingIssuanceResponse struct {
	ID                uuid.UUID `json:"id"`
	WalletStampCardID uuid.UUID `json:"walletStampCardId"`
	CustomerEmail     string    `json:"customerEmail"`
	CurrentStampCount int32     `json:"currentStampCount"`
	GoalCount         int32     `json:"goalCount"`
	RemainingSeconds  int32     `json:"remainingSeconds"`
	CreatedAt         time.Time `json:"createdAt"`
}

type ProcessedIssuanceResponse struct {
	ID            uuid.UUID  `json:"id"`
	CustomerEmail string     `json:"customerEmail"`
	Status        string     `json:"status"`
	RewardsIssued int32      `json:"rewardsIssued"`
	ResolvedAt    *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func FromIssuanceRequestView(view *queries.IssuanceRequestView) *IssuanceRequestResponse {
	return &IssuanceRequestResponse{
		ID:                view.ID,
		StoreID:           view.StoreID,
		WalletStampCardID: view.WalletStampCardID,
		Status:            view.Status,
		CurrentStampCount: view.CurrentStampCount,
		RewardsIssued:     view.RewardsIssued,
		RemainingSeconds:  view.RemainingSeconds,
		ResolvedAt:        view.ResolvedAt,
		CreatedAt:         view.CreatedAt,
	}
}

func FromPendingIssuanceItems(items []*queries.PendingIssuanceItem) []*PendingIssuanceResponse {
	responses := make([]*PendingIssuanceResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, &PendingIssuanceResponse{
			ID:                item.ID,
			WalletStampCardID: item.WalletStampCardID,
			CustomerEmail:     item.CustomerEmail,
			CurrentStampCount: item.CurrentStampCount,
			GoalCount:         item.GoalCount,
			RemainingSeconds:  item.RemainingSeconds,
			CreatedAt:         item.CreatedAt,
		})
	}
	return responses
}

func FromProcessedIssuanceItems(items []*queries.ProcessedIssuanceItem) []*ProcessedIssuanceResponse {
	responses := make([]*ProcessedIssuanceResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, &ProcessedIssuanceResponse{
			ID:            item.ID,
			CustomerEmail: item.CustomerEmail,
			Status:        item.Status,
			RewardsIssued: item.RewardsIssued,
			ResolvedAt:    item.ResolvedAt,
			CreatedAt:     item.CreatedAt,
		})
	}
	return responses
}
