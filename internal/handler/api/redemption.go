package api

import (
	"errors"
	"net/http"

	reqdto "stamppass/internal/handler/dto/request"
	resdto "stamppass/internal/handler/dto/response"
	"stamppass/internal/handler/middleware"
	"stamppass/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RedemptionHandler struct {
	redemptionCommands commands.RedemptionCommands
}

func NewRedemptionHandler(redemptionCommands commands.RedemptionCommands) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionCommands: redemptionCommands,
	}
}

// @Summary Start redeem session
// @Description Open a short-lived staff-confirmation window for a reward
// @Tags redemption
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartRedeemSessionRequest true "Redeem session request"
// @Success 201 {object} resdto.RedeemSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /redeem-sessions [post]
func (h *RedemptionHandler) Start(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.StartRedeemSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.redemptionCommands.StartSession(c.Request.Context(), customerID, req.WalletRewardID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRewardNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reward not found",
			})
		case errors.Is(err, commands.ErrRewardNotActive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Reward is already used or expired",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RedeemSessionResponse{
		SessionID:        result.SessionID,
		RemainingSeconds: result.RemainingSeconds,
	})
}

// @Summary Complete redeem session
// @Description Consume the session and mark the reward used; repeat or late calls get 410
// @Tags redemption
// @Security BearerAuth
// @Param sessionId path string true "Redeem session ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /redeem-sessions/{sessionId}/complete [post]
func (h *RedemptionHandler) Complete(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID",
		})
		return
	}

	if err := h.redemptionCommands.CompleteSession(c.Request.Context(), customerID, sessionID); err != nil {
		switch {
		case errors.Is(err, commands.ErrRedeemSessionGone):
			c.JSON(http.StatusGone, gin.H{
				"error": "Redeem session has expired or was already completed",
			})
		case errors.Is(err, commands.ErrRedeemSessionNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Redeem session belongs to another customer",
			})
		case errors.Is(err, commands.ErrRewardNotFound), errors.Is(err, commands.ErrRewardNotActive):
			c.JSON(http.StatusGone, gin.H{
				"error": "Reward is no longer redeemable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
