package api

import (
	"context"
	"errors"
	"net/http"

	resdto "stamppass/internal/handler/dto/response"
	"stamppass/internal/handler/middleware"
	"stamppass/internal/usecase/commands"
	"stamppass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TerminalHandler serves the store-side surface: the pending approval queue,
// the processed history, and the approve/reject mutations.
type TerminalHandler struct {
	issuanceCommands  commands.IssuanceCommands
	issuanceQueries   queries.IssuanceQueries
	migrationCommands commands.MigrationCommands
	migrationQueries  queries.MigrationQueries
}

func NewTerminalHandler(
	issuanceCommands commands.IssuanceCommands,
	issuanceQueries queries.IssuanceQueries,
	migrationCommands commands.MigrationCommands,
	migrationQueries queries.MigrationQueries,
) *TerminalHandler {
	return &TerminalHandler{
		issuanceCommands:  issuanceCommands,
		issuanceQueries:   issuanceQueries,
		migrationCommands: migrationCommands,
		migrationQueries:  migrationQueries,
	}
}

// @Summary List issuance requests for a store
// @Description status=pending returns the live queue oldest first; status=processed returns resolved history newest first
// @Tags terminal
// @Produce json
// @Security BearerAuth
// @Param storeId path string true "Store ID"
// @Param status query string true "pending or processed"
// @Success 200 {array} resdto.PendingIssuanceResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /terminal/{storeId}/issuance-requests [get]
func (h *TerminalHandler) ListIssuanceRequests(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	switch c.Query("status") {
	case "pending":
		items, err := h.issuanceQueries.ListPendingByStore(c.Request.Context(), storeID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.FromPendingIssuanceItems(items))

	case "processed":
		items, err := h.issuanceQueries.ListProcessedByStore(c.Request.Context(), storeID, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.FromProcessedIssuanceItems(items))

	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "status must be pending or processed",
		})
	}
}

// @Summary Approve issuance request
// @Description Guarded PENDING to APPROVED transition; increments the wallet card and mints a reward on goal completion
// @Tags terminal
// @Produce json
// @Security BearerAuth
// @Param storeId path string true "Store ID"
// @Param id path string true "Issuance request ID"
// @Success 200 {object} resdto.IssuanceRequestResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /terminal/{storeId}/issuance-requests/{id}/approve [post]
func (h *TerminalHandler) ApproveIssuance(c *gin.Context) {
	h.resolveIssuance(c, h.issuanceCommands.Approve)
}

// @Summary Reject issuance request
// @Description Guarded PENDING to REJECTED transition
// @Tags terminal
// @Produce json
// @Security BearerAuth
// @Param storeId path string true "Store ID"
// @Param id path string true "Issuance request ID"
// @Success 200 {object} resdto.IssuanceRequestResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /terminal/{storeId}/issuance-requests/{id}/reject [post]
func (h *TerminalHandler) RejectIssuance(c *gin.Context) {
	h.resolveIssuance(c, h.issuanceCommands.Reject)
}

func (h *TerminalHandler) resolveIssuance(
	c *gin.Context,
	resolve func(ctx context.Context, storeID, requestID uuid.UUID) (*commands.ResolveIssuanceResult, error),
) {
	storeID, ok := middleware.GetStoreID(c)
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

	result, err := resolve(c.Request.Context(), storeID, requestID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrIssuanceRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Issuance request not found",
			})
		case errors.Is(err, commands.ErrIssuanceExpired):
			c.JSON(http.StatusGone, gin.H{
				"error": "Issuance request has expired",
			})
		case errors.Is(err, commands.ErrIssuanceNotPending):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Issuance request was already resolved",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromIssuanceRequestView(result.Request))
}

// @Summary List submitted migrations for a store
// @Tags terminal
// @Produce json
// @Security BearerAuth
// @Param storeId path string true "Store ID"
// @Success 200 {array} resdto.MigrationRequestResponse
// @Failure 403 {object} map[string]string
// @Router /terminal/{storeId}/migrations [get]
func (h *TerminalHandler) ListMigrations(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.migrationQueries.ListSubmittedByStore(c.Request.Context(), storeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMigrationRequestViews(views))
}

// @Summary Approve migration request
// @Description Credits the claimed balance, capped at the design goal, onto a fresh wallet card
// @Tags terminal
// @Produce json
// @Security BearerAuth
// @Param storeId path string true "Store ID"
// @Param id path string true "Migration request ID"
// @Success 200 {object} resdto.MigrationRequestResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /terminal/{storeId}/migrations/{id}/approve [post]
func (h *TerminalHandler) ApproveMigration(c *gin.Context) {
	h.resolveMigration(c, h.migrationCommands.Approve)
}

// @Summary Reject migration request
// @Tags terminal
// @Produce json
// @Security BearerAuth
// @Param storeId path string true "Store ID"
// @Param id path string true "Migration request ID"
// @Success 200 {object} resdto.MigrationRequestResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /terminal/{storeId}/migrations/{id}/reject [post]
func (h *TerminalHandler) RejectMigration(c *gin.Context) {
	h.resolveMigration(c, h.migrationCommands.Reject)
}

func (h *TerminalHandler) resolveMigration(
	c *gin.Context,
	resolve func(ctx context.Context, storeID, migrationID uuid.UUID) (*queries.MigrationRequestView, error),
) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	migrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid migration ID",
		})
		return
	}

	view, err := resolve(c.Request.Context(), storeID, migrationID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMigrationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Migration request not found",
			})
		case errors.Is(err, commands.ErrMigrationResolved):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Migration request was already resolved",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMigrationRequestView(view))
}
