//go:build e2e

package issuance_test

import (
	"fmt"
	"net/http"
	"testing"

	"stamppass/internal/handler/dto/request"
	resdto "stamppass/internal/handler/dto/response"
	"stamppass/tests/common/authtest"
	"stamppass/tests/common/dbtest"
	"stamppass/tests/common/httptest"
	"stamppass/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	issuanceURL = "/api/issuance-requests"
	terminalURL = "/api/terminal/%s/issuance-requests"
)

type IssuanceSuite struct {
	e2e.SharedSuite
}

func TestIssuanceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(IssuanceSuite))
}

// seedCustomerWithCard creates a customer with a wallet card at the given
// stamp count and returns the bearer token and card ID.
func (s *IssuanceSuite) seedCustomerWithCard(stampCount int32) (uuid.UUID, string, uuid.UUID, uuid.UUID) {
	t := s.T()
	storeID := dbtest.DefaultStoreID(t, s.DB)
	designID := dbtest.DefaultDesignID(t, s.DB, storeID)
	customerID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", "customer", nil)
	cardID := dbtest.CreateWalletCard(t, s.DB, customerID, storeID, designID, stampCount)
	return customerID, token, storeID, cardID
}

func (s *IssuanceSuite) seedStaff(storeID uuid.UUID) string {
	t := s.T()
	_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", "staff", &storeID)
	return token
}

func (s *IssuanceSuite) createRequest(token string, storeID, cardID uuid.UUID) resdto.IssuanceRequestResponse {
	body := request.CreateIssuanceRequest{
		StoreID:           storeID,
		WalletStampCardID: cardID,
		IdempotencyKey:    uuid.New(),
	}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, issuanceURL, body, token)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created resdto.IssuanceRequestResponse
	httptest.DecodeResponse(s.T(), rec, &created)
	return created
}

func (s *IssuanceSuite) walletStampCount(token string, cardID uuid.UUID) int32 {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/wallet/stamp-cards", nil, token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var cards []*resdto.WalletStampCardResponse
	httptest.DecodeResponse(s.T(), rec, &cards)
	for _, card := range cards {
		if card.ID == cardID {
			return card.StampCount
		}
	}
	s.FailNow("wallet card not found in listing")
	return 0
}

func (s *IssuanceSuite) TestIssuanceLifecycle() {
	s.Run("approve flow grants a stamp", func() {
		_, customerToken, storeID, cardID := s.seedCustomerWithCard(4)
		staffToken := s.seedStaff(storeID)

		created := s.createRequest(customerToken, storeID, cardID)
		s.Equal("PENDING", created.Status)
		s.Positive(created.RemainingSeconds)
		s.LessOrEqual(created.RemainingSeconds, int32(180))

		// The terminal sees the request in its pending queue.
		listURL := fmt.Sprintf(terminalURL, storeID) + "?status=pending"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, listURL, nil, staffToken)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		var queue []*resdto.PendingIssuanceResponse
		httptest.DecodeResponse(s.T(), rec, &queue)
		s.Require().Len(queue, 1)
		s.Equal(created.ID, queue[0].ID)
		s.Equal(int32(4), queue[0].CurrentStampCount)

		approveURL := fmt.Sprintf(terminalURL, storeID) + "/" + created.ID.String() + "/approve"
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, approveURL, nil, staffToken)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		var approved resdto.IssuanceRequestResponse
		httptest.DecodeResponse(s.T(), rec, &approved)
		s.Equal("APPROVED", approved.Status)
		s.Equal(int32(5), approved.CurrentStampCount)

		// The customer's next poll observes the terminal state.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, issuanceURL+"/"+created.ID.String(), nil, customerToken)
		s.Require().Equal(http.StatusOK, rec.Code)
		var polled resdto.IssuanceRequestResponse
		httptest.DecodeResponse(s.T(), rec, &polled)
		s.Equal("APPROVED", polled.Status)
		s.Equal(int32(0), polled.RemainingSeconds)

		s.Equal(int32(5), s.walletStampCount(customerToken, cardID))
	})

	s.Run("idempotency key replay returns the original request", func() {
		_, customerToken, storeID, cardID := s.seedCustomerWithCard(4)

		body := request.CreateIssuanceRequest{
			StoreID:           storeID,
			WalletStampCardID: cardID,
			IdempotencyKey:    uuid.New(),
		}
		first := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, issuanceURL, body, customerToken)
		s.Require().Equal(http.StatusCreated, first.Code, first.Body.String())
		var created resdto.IssuanceRequestResponse
		httptest.DecodeResponse(s.T(), first, &created)

		second := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, issuanceURL, body, customerToken)
		s.Require().Equal(http.StatusOK, second.Code, second.Body.String())
		var replayed resdto.IssuanceRequestResponse
		httptest.DecodeResponse(s.T(), second, &replayed)
		s.Equal(created.ID, replayed.ID)
	})

	s.Run("replayed key with different parameters conflicts", func() {
		customerID, customerToken, storeID, cardID := s.seedCustomerWithCard(4)
		designID := dbtest.DefaultDesignID(s.T(), s.DB, storeID)
		otherCardID := dbtest.CreateWalletCard(s.T(), s.DB, customerID, storeID, designID, 1)

		key := uuid.New()
		body := request.CreateIssuanceRequest{StoreID: storeID, WalletStampCardID: cardID, IdempotencyKey: key}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, issuanceURL, body, customerToken)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		body.WalletStampCardID = otherCardID
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, issuanceURL, body, customerToken)
		s.Equal(http.StatusConflict, rec.Code, rec.Body.String())
	})

	s.Run("one live pending request per card", func() {
		_, customerToken, storeID, cardID := s.seedCustomerWithCard(4)

		s.createRequest(customerToken, storeID, cardID)

		body := request.CreateIssuanceRequest{
			StoreID:           storeID,
			WalletStampCardID: cardID,
			IdempotencyKey:    uuid.New(),
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, issuanceURL, body, customerToken)
		s.Equal(http.StatusConflict, rec.Code, rec.Body.String())
	})

	s.Run("resolution is single-shot", func() {
		_, customerToken, storeID, cardID := s.seedCustomerWithCard(4)
		staffToken := s.seedStaff(storeID)

		created := s.createRequest(customerToken, storeID, cardID)
		approveURL := fmt.Sprintf(terminalURL, storeID) + "/" + created.ID.String() + "/approve"
		rejectURL := fmt.Sprintf(terminalURL, storeID) + "/" + created.ID.String() + "/reject"

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, approveURL, nil, staffToken)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, approveURL, nil, staffToken)
		s.Equal(http.StatusConflict, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, rejectURL, nil, staffToken)
		s.Equal(http.StatusConflict, rec.Code)

		// Only one stamp landed.
		s.Equal(int32(5), s.walletStampCount(customerToken, cardID))
	})

	s.Run("reject leaves the card untouched", func() {
		_, customerToken, storeID, cardID := s.seedCustomerWithCard(4)
		staffToken := s.seedStaff(storeID)

		created := s.createRequest(customerToken, storeID, cardID)
		rejectURL := fmt.Sprintf(terminalURL, storeID) + "/" + created.ID.String() + "/reject"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, rejectURL, nil, staffToken)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, issuanceURL+"/"+created.ID.String(), nil, customerToken)
		s.Require().Equal(http.StatusOK, rec.Code)
		var polled resdto.IssuanceRequestResponse
		httptest.DecodeResponse(s.T(), rec, &polled)
		s.Equal("REJECTED", polled.Status)

		s.Equal(int32(4), s.walletStampCount(customerToken, cardID))
	})

	s.Run("goal completion mints a reward", func() {
		_, customerToken, storeID, cardID := s.seedCustomerWithCard(9)
		staffToken := s.seedStaff(storeID)

		created := s.createRequest(customerToken, storeID, cardID)
		approveURL := fmt.Sprintf(terminalURL, storeID) + "/" + created.ID.String() + "/approve"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, approveURL, nil, staffToken)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		var approved resdto.IssuanceRequestResponse
		httptest.DecodeResponse(s.T(), rec, &approved)
		s.Equal(int32(1), approved.RewardsIssued)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/wallet/rewards", nil, customerToken)
		s.Require().Equal(http.StatusOK, rec.Code)
		var rewards []*resdto.RewardResponse
		httptest.DecodeResponse(s.T(), rec, &rewards)
		s.Require().Len(rewards, 1)
		s.Equal(dbtest.DefaultRewardName, rewards[0].Name)
		s.Equal("active", rewards[0].Status)
	})

	s.Run("unknown request id reads as not found", func() {
		_, _, storeID, _ := s.seedCustomerWithCard(4)
		staffToken := s.seedStaff(storeID)

		approveURL := fmt.Sprintf(terminalURL, storeID) + "/" + uuid.New().String() + "/approve"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, approveURL, nil, staffToken)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *IssuanceSuite) TestTerminalAccess() {
	s.Run("customers cannot reach the terminal surface", func() {
		_, customerToken, storeID, _ := s.seedCustomerWithCard(4)

		listURL := fmt.Sprintf(terminalURL, storeID) + "?status=pending"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, listURL, nil, customerToken)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("staff cannot operate another store's terminal", func() {
		_, _, storeID, _ := s.seedCustomerWithCard(4)
		staffToken := s.seedStaff(storeID)

		listURL := fmt.Sprintf(terminalURL, uuid.New()) + "?status=pending"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, listURL, nil, staffToken)
		s.Equal(http.StatusForbidden, rec.Code)
	})
}
