//go:build unit

package client_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"stamppass/internal/client"
	"stamppass/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerStopsOnTerminalResult(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	poller := client.NewPoller(clk, pollInterval)

	var ticks atomic.Int32
	handle := poller.Start(t.Context(), func(context.Context) bool {
		return ticks.Add(1) >= 2
	})

	clk.Tick(pollInterval)
	clk.Tick(pollInterval)

	select {
	case <-handle.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("poll session did not stop on terminal result")
	}

	assert.Equal(t, int32(2), ticks.Load())
	require.Eventually(t, func() bool {
		return clk.LiveTickers() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestPollerStopCancelsWithoutFurtherTicks(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	poller := client.NewPoller(clk, pollInterval)

	var ticks atomic.Int32
	handle := poller.Start(t.Context(), func(context.Context) bool {
		ticks.Add(1)
		return false
	})

	clk.Tick(pollInterval)
	require.Eventually(t, func() bool {
		return ticks.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)

	handle.Stop()
	handle.Stop() // idempotent

	select {
	case <-handle.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("poll session did not stop")
	}

	assert.Equal(t, int32(1), ticks.Load())
}

func TestPollerContextCancellation(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	poller := client.NewPoller(clk, pollInterval)

	ctx, cancel := context.WithCancel(t.Context())
	handle := poller.Start(ctx, func(context.Context) bool { return false })

	cancel()
	select {
	case <-handle.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("poll session did not observe context cancellation")
	}

	require.Eventually(t, func() bool {
		return clk.LiveTickers() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
