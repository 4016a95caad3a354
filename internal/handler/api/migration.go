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
)

type MigrationHandler struct {
	migrationCommands commands.MigrationCommands
	migrationQueries  queries.MigrationQueries
}

func NewMigrationHandler(
	migrationCommands commands.MigrationCommands,
	migrationQueries queries.MigrationQueries,
) *MigrationHandler {
	return &MigrationHandler{
		migrationCommands: migrationCommands,
		migrationQueries:  migrationQueries,
	}
}

// @Summary Submit paper-card migration
// @Description Claim a paper stamp-card balance with a proof photo; one submission per store
// @Tags migration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitMigrationRequest true "Migration request"
// @Success 201 {object} resdto.MigrationRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /migrations [post]
func (h *MigrationHandler) Submit(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SubmitMigrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.migrationCommands.Submit(c.Request.Context(), req, customerID)
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
		case errors.Is(err, commands.ErrMigrationDuplicate):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A migration request for this store already exists",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid migration request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMigrationRequestView(view))
}

// @Summary List migrations
// @Description List the caller's migration requests, newest first
// @Tags migration
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MigrationRequestResponse
// @Failure 401 {object} map[string]string
// @Router /migrations [get]
func (h *MigrationHandler) List(c *gin.Context) {
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.migrationQueries.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMigrationRequestViews(views))
}
