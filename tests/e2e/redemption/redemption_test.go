//go:build e2e

package redemption_test

import (
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

const sessionsURL = "/api/redeem-sessions"

type RedemptionSuite struct {
	e2e.SharedSuite
}

func TestRedemptionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RedemptionSuite))
}

// seedCustomerWithReward returns a logged-in customer holding one active
// reward.
func (s *RedemptionSuite) seedCustomerWithReward(email string) (string, uuid.UUID) {
	t := s.T()
	storeID := dbtest.DefaultStoreID(t, s.DB)
	designID := dbtest.DefaultDesignID(t, s.DB, storeID)
	customerID, token := authtest.CreateAndLogin(t, s.DB, s.Router, email, "customer", nil)
	cardID := dbtest.CreateWalletCard(t, s.DB, customerID, storeID, designID, 10)
	rewardID := dbtest.CreateActiveReward(t, s.DB, customerID, cardID)
	return token, rewardID
}

func (s *RedemptionSuite) startSession(token string, rewardID uuid.UUID) resdto.RedeemSessionResponse {
	body := request.StartRedeemSessionRequest{WalletRewardID: rewardID}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionsURL, body, token)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var session resdto.RedeemSessionResponse
	httptest.DecodeResponse(s.T(), rec, &session)
	return session
}

func (s *RedemptionSuite) rewardStatus(token string, rewardID uuid.UUID) string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/wallet/rewards", nil, token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var rewards []*resdto.RewardResponse
	httptest.DecodeResponse(s.T(), rec, &rewards)
	for _, r := range rewards {
		if r.ID == rewardID {
			return r.Status
		}
	}
	s.FailNow("reward not found in listing")
	return ""
}

func (s *RedemptionSuite) TestRedeemSession() {
	s.Run("start and confirm consumes the reward", func() {
		token, rewardID := s.seedCustomerWithReward("customer@example.com")

		session := s.startSession(token, rewardID)
		s.NotEqual(uuid.Nil, session.SessionID)
		s.Positive(session.RemainingSeconds)
		s.LessOrEqual(session.RemainingSeconds, int32(60))

		completeURL := sessionsURL + "/" + session.SessionID.String() + "/complete"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, completeURL, nil, token)
		s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		s.Equal("used", s.rewardStatus(token, rewardID))
	})

	s.Run("completion is single-shot", func() {
		token, rewardID := s.seedCustomerWithReward("customer@example.com")

		session := s.startSession(token, rewardID)
		completeURL := sessionsURL + "/" + session.SessionID.String() + "/complete"

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, completeURL, nil, token)
		s.Require().Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, completeURL, nil, token)
		s.Equal(http.StatusGone, rec.Code)
	})

	s.Run("used reward cannot open a new session", func() {
		token, rewardID := s.seedCustomerWithReward("customer@example.com")

		session := s.startSession(token, rewardID)
		completeURL := sessionsURL + "/" + session.SessionID.String() + "/complete"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, completeURL, nil, token)
		s.Require().Equal(http.StatusNoContent, rec.Code)

		body := request.StartRedeemSessionRequest{WalletRewardID: rewardID}
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionsURL, body, token)
		s.Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	})

	s.Run("another customer cannot complete the session", func() {
		ownerToken, rewardID := s.seedCustomerWithReward("customer@example.com")
		otherToken, _ := s.seedCustomerWithReward("intruder@example.com")

		session := s.startSession(ownerToken, rewardID)
		completeURL := sessionsURL + "/" + session.SessionID.String() + "/complete"

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, completeURL, nil, otherToken)
		s.Equal(http.StatusForbidden, rec.Code)

		// The hijack attempt burns the window but never spends the reward;
		// the owner starts over.
		s.Equal("active", s.rewardStatus(ownerToken, rewardID))
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, completeURL, nil, ownerToken)
		s.Equal(http.StatusGone, rec.Code)
	})

	s.Run("unknown reward reads as not found", func() {
		token, _ := s.seedCustomerWithReward("customer@example.com")

		body := request.StartRedeemSessionRequest{WalletRewardID: uuid.New()}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionsURL, body, token)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
