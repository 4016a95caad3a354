package response

import (
	"time"

	"github.com/google/uuid"

	"stamppass/internal/usecase/queries"
)

type MigrationRequestResponse struct {
	ID                uuid.UUID  `json:"id"`
	StoreID           uuid.UUID  `json:"storeId"`
	StoreName         string     `json:"storeName"`
	ClaimedStampCount int32      `json:"claimedStampCount"`
	ProofImageURL     string     `json:"proofImageUrl"`
	Status            string     `json:"status"`
	ResolvedAt        *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

func FromMigrationRequestView(view *queries.MigrationRequestView) *MigrationRequestResponse {
	return &MigrationRequestResponse{
		ID:                view.ID,
		StoreID:           view.StoreID,
		StoreName:         view.StoreName,
		ClaimedStampCount: view.ClaimedStampCount,
		ProofImageURL:     view.ProofImageURL,
		Status:            view.Status,
		ResolvedAt:        view.ResolvedAt,
		CreatedAt:         view.CreatedAt,
	}
}

func FromMigrationRequestViews(views []*queries.MigrationRequestView) []*MigrationRequestResponse {
	responses := make([]*MigrationRequestResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, FromMigrationRequestView(view))
	}
	return responses
}
