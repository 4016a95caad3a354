//go:build unit

package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"stamppass/internal/client"
	"stamppass/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pollInterval = 2 * time.Second

// issuanceServer is a scriptable backend for one issuance request.
type issuanceServer struct {
	mu            sync.Mutex
	requestID     uuid.UUID
	status        string
	stampCount    int32
	rewardsIssued int32
	remaining     int32
	createCalls   int
	keys          []uuid.UUID
	createStatus  int
}

func newIssuanceServer() *issuanceServer {
	return &issuanceServer{
		requestID: uuid.New(),
		status:    "PENDING",
		remaining: 180,
	}
}

func (s *issuanceServer) setStatus(status string, stampCount, rewardsIssued int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.stampCount = stampCount
	s.rewardsIssued = rewardsIssued
}

func (s *issuanceServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/issuance-requests", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			IdempotencyKey uuid.UUID `json:"idempotencyKey"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		s.mu.Lock()
		s.createCalls++
		s.keys = append(s.keys, body.IdempotencyKey)
		failWith := s.createStatus
		s.mu.Unlock()

		if failWith != 0 {
			w.WriteHeader(failWith)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "create failed"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		s.writeRequest(w)
	})
	mux.HandleFunc("GET /api/issuance-requests/", func(w http.ResponseWriter, _ *http.Request) {
		s.writeRequest(w)
	})
	return mux
}

func (s *issuanceServer) writeRequest(w http.ResponseWriter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = json.NewEncoder(w).Encode(client.IssuanceRequest{
		ID:                s.requestID,
		Status:            s.status,
		CurrentStampCount: s.stampCount,
		RewardsIssued:     s.rewardsIssued,
		RemainingSeconds:  s.remaining,
	})
}

func newIssuanceFlow(t *testing.T, backend *issuanceServer) (*client.IssuanceFlow, *client.Cache, *clock.MockClock) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	cache := client.NewCache()
	api := client.NewAPI(srv.URL, "test-token", srv.Client())
	return client.NewIssuanceFlow(api, cache, clk, pollInterval), cache, clk
}

func waitForState(t *testing.T, snapshot func() client.IssuanceSnapshot, want client.IssuanceState) {
	t.Helper()
	require.Eventually(t, func() bool {
		return snapshot().State == want
	}, 2*time.Second, 10*time.Millisecond)
}

func TestIssuanceFlowApproved(t *testing.T) {
	backend := newIssuanceServer()
	flow, _, clk := newIssuanceFlow(t, backend)
	defer flow.Stop()

	require.NoError(t, flow.RequestStamp(t.Context(), uuid.New(), uuid.New()))
	assert.Equal(t, client.IssuancePending, flow.Snapshot().State)

	backend.setStatus("APPROVED", 3, 0)
	clk.Tick(pollInterval)
	waitForState(t, flow.Snapshot, client.IssuanceApproved)

	snap := flow.Snapshot()
	assert.Equal(t, "적립 완료", snap.Message)
	assert.Equal(t, int32(3), snap.StampCount)
	assert.Empty(t, snap.Actions)
}

func TestIssuanceFlowRewarded(t *testing.T) {
	backend := newIssuanceServer()
	flow, cache, clk := newIssuanceFlow(t, backend)
	defer flow.Stop()

	cache.Set(client.CacheKeyWalletStampCards, "stale-cards")

	require.NoError(t, flow.RequestStamp(t.Context(), uuid.New(), uuid.New()))

	backend.setStatus("APPROVED", 10, 1)
	clk.Tick(pollInterval)
	waitForState(t, flow.Snapshot, client.IssuanceRewarded)

	snap := flow.Snapshot()
	assert.Equal(t, []string{"리워드 보관함", "새 스탬프 카드 보기"}, snap.Actions)

	// Reaching rewarded must invalidate the wallet-cards cache.
	_, ok := cache.Get(client.CacheKeyWalletStampCards)
	assert.False(t, ok)
}

func TestIssuanceFlowTerminalStatesAreMonotonic(t *testing.T) {
	backend := newIssuanceServer()
	flow, _, clk := newIssuanceFlow(t, backend)
	defer flow.Stop()

	require.NoError(t, flow.RequestStamp(t.Context(), uuid.New(), uuid.New()))

	backend.setStatus("REJECTED", 0, 0)
	clk.Tick(pollInterval)
	waitForState(t, flow.Snapshot, client.IssuanceRejected)

	// The poll session must be retired; a later status change is never applied.
	require.Eventually(t, func() bool {
		return clk.LiveTickers() == 0
	}, 2*time.Second, 10*time.Millisecond)

	backend.setStatus("APPROVED", 5, 0)
	assert.Equal(t, client.IssuanceRejected, flow.Snapshot().State)
	assert.Equal(t, "적립 요청이 거절되었습니다", flow.Snapshot().Message)
}

func TestIssuanceFlowPollFailuresAreTransient(t *testing.T) {
	backend := newIssuanceServer()

	var failPolls sync.Map
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/issuance-requests/") {
			if _, failing := failPolls.Load("on"); failing {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}
		backend.handler().ServeHTTP(w, r)
	}))
	defer srv.Close()

	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	api := client.NewAPI(srv.URL, "test-token", srv.Client())
	flow := client.NewIssuanceFlow(api, client.NewCache(), clk, pollInterval)
	defer flow.Stop()

	require.NoError(t, flow.RequestStamp(t.Context(), uuid.New(), uuid.New()))

	// A failed poll keeps the flow pending and the poll session alive.
	failPolls.Store("on", true)
	clk.Tick(pollInterval)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, client.IssuancePending, flow.Snapshot().State)
	assert.Equal(t, 1, clk.LiveTickers())

	failPolls.Delete("on")
	backend.setStatus("APPROVED", 2, 0)
	clk.Tick(pollInterval)
	waitForState(t, flow.Snapshot, client.IssuanceApproved)
}

func TestIssuanceFlowCreateFailureStaysIdle(t *testing.T) {
	backend := newIssuanceServer()
	backend.createStatus = http.StatusConflict
	flow, _, clk := newIssuanceFlow(t, backend)

	err := flow.RequestStamp(t.Context(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrConflict)
	assert.Equal(t, client.IssuanceIdle, flow.Snapshot().State)
	assert.Zero(t, clk.LiveTickers())

	// The retry is allowed and mints a new idempotency key.
	backend.mu.Lock()
	backend.createStatus = 0
	backend.mu.Unlock()

	require.NoError(t, flow.RequestStamp(t.Context(), uuid.New(), uuid.New()))
	defer flow.Stop()

	backend.mu.Lock()
	defer backend.mu.Unlock()
	require.Len(t, backend.keys, 2)
	assert.NotEqual(t, backend.keys[0], backend.keys[1])
}

func TestIssuanceFlowOneCreateCallPerAttempt(t *testing.T) {
	backend := newIssuanceServer()
	flow, _, _ := newIssuanceFlow(t, backend)
	defer flow.Stop()

	require.NoError(t, flow.RequestStamp(t.Context(), uuid.New(), uuid.New()))
	assert.ErrorIs(t, flow.RequestStamp(t.Context(), uuid.New(), uuid.New()), client.ErrIssuanceInFlight)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, 1, backend.createCalls)
}

func TestIssuanceFlowStopReleasesTicker(t *testing.T) {
	backend := newIssuanceServer()
	flow, _, clk := newIssuanceFlow(t, backend)

	require.NoError(t, flow.RequestStamp(t.Context(), uuid.New(), uuid.New()))
	assert.Equal(t, 1, clk.LiveTickers())

	flow.Stop()
	require.Eventually(t, func() bool {
		return clk.LiveTickers() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
