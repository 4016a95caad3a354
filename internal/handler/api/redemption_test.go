//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stamppass/internal/handler/api"
	reqdto "stamppass/internal/handler/dto/request"
	resdto "stamppass/internal/handler/dto/response"
	"stamppass/internal/usecase/commands"
	"stamppass/tests/common/httptest"
	"stamppass/tests/common/testutil"
	commandsmock "stamppass/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedemptionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRedemptionCommands
	handler      *api.RedemptionHandler
	customerID   uuid.UUID
}

func (s *RedemptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.handler = api.NewRedemptionHandler(s.mockCommands)
	s.customerID = uuid.New()

	authed := func(c *gin.Context) {
		c.Set("user_id", s.customerID)
	}
	s.router.POST("/redeem-sessions", authed, s.handler.Start)
	s.router.POST("/redeem-sessions/:sessionId/complete", authed, s.handler.Complete)
}

func (s *RedemptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRedemptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(RedemptionHandlerTestSuite))
}

func (s *RedemptionHandlerTestSuite) TestStart() {
	url := "/redeem-sessions"
	walletRewardID := uuid.New()
	reqBody := reqdto.StartRedeemSessionRequest{WalletRewardID: walletRewardID}

	s.Run("success: returns 201 with the session ID and full TTL", func() {
		sessionID := uuid.New()
		s.mockCommands.EXPECT().StartSession(gomock.Any(), s.customerID, walletRewardID).
			Return(&commands.StartSessionResult{SessionID: sessionID, RemainingSeconds: 300}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusCreated, rec.Code)
		var body resdto.RedeemSessionResponse
		httptest.DecodeResponse(s.T(), rec, &body)
		s.Equal(sessionID, body.SessionID)
		s.Equal(int32(300), body.RemainingSeconds)
	})

	s.Run("error: 404 when the reward does not exist", func() {
		s.mockCommands.EXPECT().StartSession(gomock.Any(), s.customerID, walletRewardID).
			Return(nil, commands.ErrRewardNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 422 when the reward was already used", func() {
		s.mockCommands.EXPECT().StartSession(gomock.Any(), s.customerID, walletRewardID).
			Return(nil, commands.ErrRewardNotActive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 400 when walletRewardId is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("walletRewardId", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *RedemptionHandlerTestSuite) TestComplete() {
	sessionID := uuid.New()
	url := "/redeem-sessions/" + sessionID.String() + "/complete"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CompleteSession(gomock.Any(), s.customerID, sessionID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 410 when the session expired or was already consumed", func() {
		s.mockCommands.EXPECT().CompleteSession(gomock.Any(), s.customerID, sessionID).
			Return(commands.ErrRedeemSessionGone).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusGone, rec.Code)
	})

	s.Run("error: 410 when the reward vanished between start and complete", func() {
		s.mockCommands.EXPECT().CompleteSession(gomock.Any(), s.customerID, sessionID).
			Return(commands.ErrRewardNotActive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusGone, rec.Code)
	})

	s.Run("error: 403 when the session belongs to another customer", func() {
		s.mockCommands.EXPECT().CompleteSession(gomock.Any(), s.customerID, sessionID).
			Return(commands.ErrRedeemSessionNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: 400 on a malformed session ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/redeem-sessions/not-a-uuid/complete", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
