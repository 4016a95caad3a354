package middleware

import (
	"net/http"

	"stamppass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxStoreIDKey = "store_id"

// StoreAccessMiddleware binds terminal operators to their own store: the
// :storeId path parameter must match the store the authenticated staff or
// owner belongs to.
type StoreAccessMiddleware struct {
	userQueries queries.UserQueries
}

func NewStoreAccessMiddleware(userQueries queries.UserQueries) *StoreAccessMiddleware {
	return &StoreAccessMiddleware{userQueries: userQueries}
}

func (m *StoreAccessMiddleware) RequireOwnStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID, err := uuid.Parse(c.Param("storeId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid store ID",
			})
			c.Abort()
			return
		}

		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		currentUser, err := m.userQueries.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if currentUser.StoreID == nil || *currentUser.StoreID != storeID {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Set(ctxStoreIDKey, storeID)
		c.Next()
	}
}

func GetStoreID(c *gin.Context) (uuid.UUID, bool) {
	storeID, exists := c.Get(ctxStoreIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := storeID.(uuid.UUID)
	return id, ok
}
