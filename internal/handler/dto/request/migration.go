package request

import (
	"strings"

	"github.com/google/uuid"
)

type SubmitMigrationRequest struct {
	StoreID           uuid.UUID `json:"storeId" binding:"required"`
	ClaimedStampCount int32     `json:"claimedStampCount" binding:"required,min=1"`
	ProofImageURL     string    `json:"proofImageUrl" binding:"required,url"`
}

func (r SubmitMigrationRequest) TrimmedProofImageURL() string {
	return strings.TrimSpace(r.ProofImageURL)
}
