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
	commandsmock "stamppass/tests/mock/commands"
	queriesmock "stamppass/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TerminalHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockCtrl              *gomock.Controller
	mockIssuanceCommands  *commandsmock.MockIssuanceCommands
	mockIssuanceQueries   *queriesmock.MockIssuanceQueries
	mockMigrationCommands *commandsmock.MockMigrationCommands
	mockMigrationQueries  *queriesmock.MockMigrationQueries
	handler               *api.TerminalHandler
	storeID               uuid.UUID
}

func (s *TerminalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockIssuanceCommands = commandsmock.NewMockIssuanceCommands(s.mockCtrl)
	s.mockIssuanceQueries = queriesmock.NewMockIssuanceQueries(s.mockCtrl)
	s.mockMigrationCommands = commandsmock.NewMockMigrationCommands(s.mockCtrl)
	s.mockMigrationQueries = queriesmock.NewMockMigrationQueries(s.mockCtrl)
	s.handler = api.NewTerminalHandler(
		s.mockIssuanceCommands,
		s.mockIssuanceQueries,
		s.mockMigrationCommands,
		s.mockMigrationQueries,
	)
	s.storeID = uuid.New()

	// Mock middleware behavior: staff access already resolved to a store.
	staff := func(c *gin.Context) {
		c.Set("store_id", s.storeID)
	}
	group := s.router.Group("/terminal/:storeId", staff)
	group.GET("/issuance-requests", s.handler.ListIssuanceRequests)
	group.POST("/issuance-requests/:id/approve", s.handler.ApproveIssuance)
	group.POST("/issuance-requests/:id/reject", s.handler.RejectIssuance)
	group.GET("/migrations", s.handler.ListMigrations)
	group.POST("/migrations/:id/approve", s.handler.ApproveMigration)
	group.POST("/migrations/:id/reject", s.handler.RejectMigration)
}

func (s *TerminalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTerminalHandlerSuite(t *testing.T) {
	suite.Run(t, new(TerminalHandlerTestSuite))
}

func (s *TerminalHandlerTestSuite) listURL(status string) string {
	return "/terminal/" + s.storeID.String() + "/issuance-requests?status=" + status
}

func (s *TerminalHandlerTestSuite) TestListIssuanceRequests() {
	s.Run("success: status=pending returns the live queue", func() {
		first := builder.NewIssuanceBuilder().BuildPendingItem()
		second := builder.NewIssuanceBuilder().BuildPendingItem()
		s.mockIssuanceQueries.EXPECT().ListPendingByStore(gomock.Any(), s.storeID).
			Return([]*queries.PendingIssuanceItem{first, second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.listURL("pending"), nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		var body []*resdto.PendingIssuanceResponse
		httptest.DecodeResponse(s.T(), rec, &body)
		s.Len(body, 2)
		s.Equal(first.ID, body[0].ID)
		s.Equal(first.CustomerEmail, body[0].CustomerEmail)
	})

	s.Run("success: status=pending with an empty queue returns an empty array", func() {
		s.mockIssuanceQueries.EXPECT().ListPendingByStore(gomock.Any(), s.storeID).
			Return([]*queries.PendingIssuanceItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.listURL("pending"), nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("success: status=processed returns resolved history", func() {
		resolved := builder.NewIssuanceBuilder().WithStatus("APPROVED").BuildView()
		item := &queries.ProcessedIssuanceItem{
			ID:            resolved.ID,
			CustomerEmail: "customer@example.com",
			Status:        resolved.Status,
			RewardsIssued: resolved.RewardsIssued,
			CreatedAt:     resolved.CreatedAt,
		}
		s.mockIssuanceQueries.EXPECT().ListProcessedByStore(gomock.Any(), s.storeID, 0).
			Return([]*queries.ProcessedIssuanceItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.listURL("processed"), nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		var body []*resdto.ProcessedIssuanceResponse
		httptest.DecodeResponse(s.T(), rec, &body)
		s.Len(body, 1)
		s.Equal("APPROVED", body[0].Status)
	})

	s.Run("error: 400 on an unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.listURL("archived"), nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *TerminalHandlerTestSuite) TestResolveIssuance() {
	b := builder.NewIssuanceBuilder()
	requestID := b.ID
	approveURL := "/terminal/" + s.storeID.String() + "/issuance-requests/" + requestID.String() + "/approve"
	rejectURL := "/terminal/" + s.storeID.String() + "/issuance-requests/" + requestID.String() + "/reject"

	s.Run("success: approve returns the resolved request", func() {
		approvedView := b.WithStatus("APPROVED").WithRewardsIssued(1).BuildView()
		s.mockIssuanceCommands.EXPECT().Approve(gomock.Any(), s.storeID, requestID).
			Return(&commands.ResolveIssuanceResult{Request: approvedView, RewardIssued: true, RewardName: "Free americano"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, approveURL, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		var body resdto.IssuanceRequestResponse
		httptest.DecodeResponse(s.T(), rec, &body)
		s.Equal("APPROVED", body.Status)
		s.Equal(int32(1), body.RewardsIssued)
	})

	s.Run("success: reject returns the resolved request", func() {
		rejectedView := b.WithStatus("REJECTED").WithRewardsIssued(0).BuildView()
		s.mockIssuanceCommands.EXPECT().Reject(gomock.Any(), s.storeID, requestID).
			Return(&commands.ResolveIssuanceResult{Request: rejectedView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, rejectURL, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		var body resdto.IssuanceRequestResponse
		httptest.DecodeResponse(s.T(), rec, &body)
		s.Equal("REJECTED", body.Status)
	})

	s.Run("error: maps resolve errors to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "not found", err: commands.ErrIssuanceRequestNotFound, expectCode: http.StatusNotFound},
			{name: "already resolved by another terminal", err: commands.ErrIssuanceNotPending, expectCode: http.StatusConflict},
			{name: "expired before the tap landed", err: commands.ErrIssuanceExpired, expectCode: http.StatusGone},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockIssuanceCommands.EXPECT().Approve(gomock.Any(), s.storeID, requestID).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, approveURL, nil, "bearer-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: 400 on a malformed request ID", func() {
		badURL := "/terminal/" + s.storeID.String() + "/issuance-requests/not-a-uuid/approve"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, badURL, nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *TerminalHandlerTestSuite) TestResolveMigration() {
	migrationID := uuid.New()
	approveURL := "/terminal/" + s.storeID.String() + "/migrations/" + migrationID.String() + "/approve"

	s.Run("success: approve returns the credited migration", func() {
		view := &queries.MigrationRequestView{
			ID:                migrationID,
			StoreID:           s.storeID,
			Status:            "APPROVED",
			ClaimedStampCount: 7,
		}
		s.mockMigrationCommands.EXPECT().Approve(gomock.Any(), s.storeID, migrationID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, approveURL, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		var body resdto.MigrationRequestResponse
		httptest.DecodeResponse(s.T(), rec, &body)
		s.Equal("APPROVED", body.Status)
		s.Equal(int32(7), body.ClaimedStampCount)
	})

	s.Run("error: 409 when the migration was already resolved", func() {
		s.mockMigrationCommands.EXPECT().Approve(gomock.Any(), s.storeID, migrationID).
			Return(nil, commands.ErrMigrationResolved).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, approveURL, nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 404 when the migration does not exist", func() {
		s.mockMigrationCommands.EXPECT().Approve(gomock.Any(), s.storeID, migrationID).
			Return(nil, commands.ErrMigrationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, approveURL, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
