//go:build unit

package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"stamppass/internal/client"
	"stamppass/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// terminalServer holds a mutable pending queue for one store.
type terminalServer struct {
	mu           sync.Mutex
	storeID      uuid.UUID
	pending      []*client.PendingIssuance
	rejectStatus int
	listCalls    int
}

func newTerminalServer(pendingCount int) *terminalServer {
	s := &terminalServer{storeID: uuid.New()}
	for i := 0; i < pendingCount; i++ {
		s.pending = append(s.pending, &client.PendingIssuance{
			ID:                uuid.New(),
			WalletStampCardID: uuid.New(),
			CustomerEmail:     "customer@example.com",
			CurrentStampCount: int32(i),
			GoalCount:         10,
			RemainingSeconds:  120,
		})
	}
	return s
}

func (s *terminalServer) remove(id uuid.UUID) {
	kept := s.pending[:0]
	for _, item := range s.pending {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.pending = kept
}

func (s *terminalServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/terminal/{storeId}/issuance-requests", func(w http.ResponseWriter, _ *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listCalls++
		_ = json.NewEncoder(w).Encode(s.pending)
	})
	mux.HandleFunc("POST /api/terminal/{storeId}/issuance-requests/{id}/approve", func(w http.ResponseWriter, r *http.Request) {
		s.resolve(w, r, "APPROVED")
	})
	mux.HandleFunc("POST /api/terminal/{storeId}/issuance-requests/{id}/reject", func(w http.ResponseWriter, r *http.Request) {
		s.resolve(w, r, "REJECTED")
	})
	return mux
}

func (s *terminalServer) resolve(w http.ResponseWriter, r *http.Request, status string) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rejectStatus != 0 {
		w.WriteHeader(s.rejectStatus)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "already resolved"})
		return
	}
	s.remove(id)
	_ = json.NewEncoder(w).Encode(client.IssuanceRequest{ID: id, Status: status})
}

func newApprovalQueue(t *testing.T, backend *terminalServer) (*client.ApprovalQueue, *clock.MockClock) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	api := client.NewAPI(srv.URL, "staff-token", srv.Client())
	return client.NewApprovalQueue(api, client.NewCache(), clk, backend.storeID, pollInterval), clk
}

func TestApprovalQueueRejectRemovesItem(t *testing.T) {
	backend := newTerminalServer(2)
	queue, _ := newApprovalQueue(t, backend)
	defer queue.Stop()

	require.NoError(t, queue.Start(t.Context()))
	items := queue.Items()
	require.Len(t, items, 2)

	_, err := queue.Reject(t.Context(), items[0].ID)
	require.NoError(t, err)

	remaining := queue.Items()
	require.Len(t, remaining, 1)
	assert.Equal(t, items[1].ID, remaining[0].ID)
}

func TestApprovalQueueMutationFailureKeepsItem(t *testing.T) {
	backend := newTerminalServer(2)
	queue, _ := newApprovalQueue(t, backend)
	defer queue.Stop()

	require.NoError(t, queue.Start(t.Context()))
	items := queue.Items()
	require.Len(t, items, 2)

	backend.mu.Lock()
	backend.rejectStatus = http.StatusConflict
	backend.mu.Unlock()

	_, err := queue.Approve(t.Context(), items[0].ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrConflict)

	// The operator keeps seeing the item until a mutation succeeds.
	assert.Len(t, queue.Items(), 2)
}

func TestApprovalQueuePollRefreshes(t *testing.T) {
	backend := newTerminalServer(1)
	queue, clk := newApprovalQueue(t, backend)
	defer queue.Stop()

	require.NoError(t, queue.Start(t.Context()))
	require.Len(t, queue.Items(), 1)

	// Another terminal resolves the request; the next poll drops it here too.
	backend.mu.Lock()
	backend.pending = nil
	backend.mu.Unlock()

	clk.Tick(pollInterval)
	require.Eventually(t, func() bool {
		return len(queue.Items()) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestApprovalQueueStopReleasesTicker(t *testing.T) {
	backend := newTerminalServer(0)
	queue, clk := newApprovalQueue(t, backend)

	require.NoError(t, queue.Start(t.Context()))
	assert.Equal(t, 1, clk.LiveTickers())

	queue.Stop()
	require.Eventually(t, func() bool {
		return clk.LiveTickers() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
