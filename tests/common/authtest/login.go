//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"stamppass/internal/handler/dto/request"
	"stamppass/internal/handler/dto/response"
	"stamppass/tests/common/dbtest"
	"stamppass/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// LoginUser authenticates against the live router and returns the bearer
// token.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body response.LoginResponse
	httptest.DecodeResponse(t, w, &body)
	require.NotEmpty(t, body.AccessToken, "login returned no access token")

	return body.AccessToken
}

// CreateAndLogin inserts a user with the shared fixture password and logs
// them in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string, storeID *uuid.UUID) (uuid.UUID, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, email, role, storeID)
	return userID, LoginUser(t, router, email, dbtest.DefaultPassword)
}
