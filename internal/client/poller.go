package client

import (
	"context"
	"sync"
	"time"

	"stamppass/internal/pkg/clock"
)

// Poller repeats a fetch at a fixed interval until the tick callback reports
// a terminal result. Each Start owns exactly one ticker, released on every
// exit path, so a poll session can never leak its timer past its owner.
type Poller struct {
	clock    clock.Clock
	interval time.Duration
}

func NewPoller(clk clock.Clock, interval time.Duration) *Poller {
	return &Poller{clock: clk, interval: interval}
}

// PollHandle cancels a running poll session. Stop is idempotent and safe to
// call from any goroutine; Done is closed once the session has fully exited.
type PollHandle struct {
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func (h *PollHandle) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
}

// Done reports session teardown, for tests and for callers that need to
// observe that no further ticks will fire.
func (h *PollHandle) Done() <-chan struct{} {
	return h.done
}

// Start runs tick once per interval on a dedicated goroutine. A true return
// from tick marks the session terminal and stops the ticker immediately.
// Context cancellation and Stop both end the session without a final tick.
func (p *Poller) Start(ctx context.Context, tick func(ctx context.Context) bool) *PollHandle {
	h := &PollHandle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	ticker := p.clock.NewTicker(p.interval)
	go func() {
		defer close(h.done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-h.stop:
				return
			case <-ticker.C():
				if tick(ctx) {
					return
				}
			}
		}
	}()

	return h
}
