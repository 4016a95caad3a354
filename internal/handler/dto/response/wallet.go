package response

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"stamppass/internal/usecase/queries"
)

type WalletStampCardResponse struct {
	ID          uuid.UUID       `json:"id"`
	StoreID     uuid.UUID       `json:"storeId"`
	StoreName   string          `json:"storeName"`
	DesignID    uuid.UUID       `json:"designId"`
	DesignName  string          `json:"designName"`
	RewardName  string          `json:"rewardName"`
	Design      json.RawMessage `json:"design,omitempty"`
	StampCount  int32           `json:"stampCount"`
	GoalCount   int32           `json:"goalCount"`
	IsCompleted bool            `json:"isCompleted"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type RewardResponse struct {
	ID        uuid.UUID  `json:"id"`
	StoreName string     `json:"storeName"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	UsedAt    *time.Time `json:"usedAt,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func FromWalletStampCardViews(views []*queries.WalletStampCardView) []*WalletStampCardResponse {
	responses := make([]*WalletStampCardResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, &WalletStampCardResponse{
			ID:          view.ID,
			StoreID:     view.StoreID,
			StoreName:   view.StoreName,
			DesignID:    view.DesignID,
			DesignName:  view.DesignName,
			RewardName:  view.RewardName,
			Design:      view.Design,
			StampCount:  view.StampCount,
			GoalCount:   view.GoalCount,
			IsCompleted: view.IsCompleted,
			CreatedAt:   view.CreatedAt,
			UpdatedAt:   view.UpdatedAt,
		})
	}
	return responses
}

func FromRewardViews(views []*queries.RewardView) []*RewardResponse {
	responses := make([]*RewardResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, &RewardResponse{
			ID:        view.ID,
			StoreName: view.StoreName,
			Name:      view.Name,
			Status:    view.Status,
			UsedAt:    view.UsedAt,
			ExpiresAt: view.ExpiresAt,
			CreatedAt: view.CreatedAt,
		})
	}
	return responses
}
