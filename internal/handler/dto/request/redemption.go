package request

import (
	"github.com/google/uuid"
)

type StartRedeemSessionRequest struct {
	WalletRewardID uuid.UUID `json:"walletRewardId" binding:"required"`
}
