package api

import (
	"net/http"

	resdto "stamppass/internal/handler/dto/response"
	"stamppass/internal/handler/middleware"
	"stamppass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletQueries queries.WalletQueries
}

func NewWalletHandler(walletQueries queries.WalletQueries) *WalletHandler {
	return &WalletHandler{
		walletQueries: walletQueries,
	}
}

// @Summary List wallet stamp cards
// @Description List the caller's stamp cards, active first
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.WalletStampCardResponse
// @Failure 401 {object} map[string]string
// @Router /wallet/stamp-cards [get]
func (h *WalletHandler) ListStampCards(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cards, err := h.walletQueries.ListStampCards(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromWalletStampCardViews(cards))
}

// @Summary List rewards
// @Description List the caller's rewards, active first
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RewardResponse
// @Failure 401 {object} map[string]string
// @Router /wallet/rewards [get]
func (h *WalletHandler) ListRewards(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	rewards, err := h.walletQueries.ListRewards(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRewardViews(rewards))
}
