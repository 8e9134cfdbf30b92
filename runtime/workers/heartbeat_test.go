package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHeartbeatWorker_BeatsUntilCanceled(t *testing.T) {
	req := require.New(t)

	// Given a heartbeat reading the vitals every few milliseconds
	var reads atomic.Int32
	worker := NewHeartbeatWorker(slog.Default(), 5*time.Millisecond, func() Vitals {
		reads.Add(1)
		return Vitals{Peers: 1, Topics: 2, Messages: 3}
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// Then the vitals are read on every tick
	req.Eventually(func() bool { return reads.Load() >= 2 }, time.Second, 5*time.Millisecond)

	// When the context is canceled
	cancel()

	// Then the worker ends without error
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("Heartbeat should have stopped")
	}
}
