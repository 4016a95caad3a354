package api

import (
	"errors"
	"net/http"

	reqdto "stamppass/internal/handler/dto/request"
	resdto "stamppass/internal/handler/dto/response"
	"stamppass/internal/handler/middleware"
	"stamppass/internal/usecase/commands"
	"stamppass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IssuanceHandler struct {
	issuanceCommands commands.IssuanceCommands
	issuanceQueries  queries.IssuanceQueries
}

func NewIssuanceHandler(
	issuanceCommands commands.IssuanceCommands,
	issuanceQueries queries.IssuanceQueries,
) *IssuanceHandler {
	return &IssuanceHandler{
		issuanceCommands: issuanceCommands,
		issuanceQueries:  issuanceQueries,
	}
}

// @Summary Request stamp issuance
// @Description Create a stamp issuance request for the store terminal to approve
// @Tags issuance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateIssuanceRequest true "Issuance request"
// @Success 201 {object} resdto.IssuanceRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /issuance-requests [post]
func (h *IssuanceHandler) Create(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateIssuanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.issuanceCommands.RequestStamp(c.Request.Context(), req, customerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStoreNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Store not found",
			})
		case errors.Is(err, commands.ErrStoreInactive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Store is inactive",
			})
		case errors.Is(err, commands.ErrWalletCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Wallet stamp card not found",
			})
		case errors.Is(err, commands.ErrWalletCardCompleted):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Stamp card is already completed",
			})
		case errors.Is(err, commands.ErrDuplicateIssuance):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Idempotency key reused with different parameters",
			})
		case errors.Is(err, commands.ErrIssuancePendingExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A pending issuance request already exists for this card",
			})
		case errors.Is(err, commands.ErrIdempotencyInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Issuance request is currently being processed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromIssuanceRequestView(result.Request))
}

// @Summary Get issuance request
// @Description Poll an issuance request's status and remaining validity
// @Tags issuance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Issuance request ID"
// @Success 200 {object} resdto.IssuanceRequestResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /issuance-requests/{id} [get]
func (h *IssuanceHandler) GetByID(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID",
		})
		return
	}

	view, err := h.issuanceQueries.GetByID(c.Request.Context(), customerID, requestID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrIssuanceRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Issuance request not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromIssuanceRequestView(view))
}
