package request

import (
	"github.com/google/uuid"
)

// CreateIssuanceRequest carries the idempotency key in the body rather than a
// header: each tap of the request button mints a fresh key, and retries of the
// same tap reuse it.
type CreateIssuanceRequest struct {
	StoreID           uuid.UUID `json:"storeId" binding:"required"`
	WalletStampCardID uuid.UUID `json:"walletStampCardId" binding:"required"`
	IdempotencyKey    uuid.UUID `json:"idempotencyKey" binding:"required"`
}
