//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stamppass/internal/handler/api"
	resdto "stamppass/internal/handler/dto/response"
	"stamppass/internal/usecase/commands"
	"stamppass/internal/usecase/queries"
	"stamppass/tests/common/builder"
	"stamppass/tests/common/httptest"
	"stamppass/tests/common/testutil"
	commandsmock "stamppass/tests/mock/commands"
	queriesmock "stamppass/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IssuanceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockIssuanceCommands
	mockQueries  *queriesmock.MockIssuanceQueries
	handler      *api.IssuanceHandler
	customerID   uuid.UUID
}

func (s *IssuanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockIssuanceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockIssuanceQueries(s.mockCtrl)
	s.handler = api.NewIssuanceHandler(s.mockCommands, s.mockQueries)
	s.customerID = uuid.New()

	// Mock middleware behavior: inject the authenticated customer.
	authed := func(c *gin.Context) {
		c.Set("user_id", s.customerID)
	}
	s.router.POST("/issuance-requests", authed, s.handler.Create)
	s.router.GET("/issuance-requests/:id", authed, s.handler.GetByID)
}

func (s *IssuanceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIssuanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(IssuanceHandlerTestSuite))
}

type testCaseIssuance struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *IssuanceHandlerTestSuite) TestCreate() {
	url := "/issuance-requests"

	b := builder.NewIssuanceBuilder()
	reqBody := b.BuildDTO()
	pendingView := b.BuildView()

	s.Run("success: returns 201 Created for a fresh request", func() {
		s.mockCommands.EXPECT().RequestStamp(gomock.Any(), reqBody, s.customerID).
			Return(&commands.CreateIssuanceResult{Request: pendingView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusCreated, rec.Code)
		var body resdto.IssuanceRequestResponse
		httptest.DecodeResponse(s.T(), rec, &body)
		s.Equal(pendingView.ID, body.ID)
		s.Equal("PENDING", body.Status)
		s.Equal(int32(180), body.RemainingSeconds)
	})

	s.Run("success: returns 200 OK when the idempotency key replays", func() {
		s.mockCommands.EXPECT().RequestStamp(gomock.Any(), reqBody, s.customerID).
			Return(&commands.CreateIssuanceResult{Request: pendingView, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		var body resdto.IssuanceRequestResponse
		httptest.DecodeResponse(s.T(), rec, &body)
		s.Equal(pendingView.ID, body.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseIssuance{
			{name: "missing field: storeId", mutate: testutil.Field("storeId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: walletStampCardId", mutate: testutil.Field("walletStampCardId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: idempotencyKey", mutate: testutil.Field("idempotencyKey", nil), expectCode: http.StatusBadRequest},
			{name: "malformed uuid", mutate: testutil.Field("storeId", "not-a-uuid"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: maps usecase errors to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "store not found", err: commands.ErrStoreNotFound, expectCode: http.StatusNotFound},
			{name: "store inactive", err: commands.ErrStoreInactive, expectCode: http.StatusUnprocessableEntity},
			{name: "wallet card not found", err: commands.ErrWalletCardNotFound, expectCode: http.StatusNotFound},
			{name: "wallet card completed", err: commands.ErrWalletCardCompleted, expectCode: http.StatusUnprocessableEntity},
			{name: "key reused with different params", err: commands.ErrDuplicateIssuance, expectCode: http.StatusConflict},
			{name: "pending request already live", err: commands.ErrIssuancePendingExists, expectCode: http.StatusConflict},
			{name: "idempotency in progress", err: commands.ErrIdempotencyInProgress, expectCode: http.StatusConflict},
			{name: "unexpected failure", err: commands.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RequestStamp(gomock.Any(), reqBody, s.customerID).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}

func (s *IssuanceHandlerTestSuite) TestGetByID() {
	b := builder.NewIssuanceBuilder().WithStatus("APPROVED").WithRewardsIssued(1)
	view := b.BuildView()
	url := "/issuance-requests/" + view.ID.String()

	s.Run("success: returns the current status snapshot", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.customerID, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		var body resdto.IssuanceRequestResponse
		httptest.DecodeResponse(s.T(), rec, &body)
		s.Equal("APPROVED", body.Status)
		s.Equal(int32(1), body.RewardsIssued)
	})

	s.Run("error: 404 when the request does not exist or belongs to someone else", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.customerID, view.ID).
			Return(nil, queries.ErrIssuanceRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 on a malformed request ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/issuance-requests/not-a-uuid", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
