package response

import (
	"github.com/google/uuid"
)

type RedeemSessionResponse struct {
	SessionID        uuid.UUID `json:"sessionId"`
	RemainingSeconds int32     `json:"remainingSeconds"`
}
