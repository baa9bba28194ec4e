package loop

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopStepsUntilStopped(t *testing.T) {
	var steps atomic.Int64
	l := New(time.Millisecond, func(dt time.Duration) {
		steps.Add(1)
	})

	finished := make(chan struct{})
	go func() {
		l.Run(context.Background())
		close(finished)
	}()

	require.Eventually(t, func() bool { return steps.Load() >= 5 }, time.Second, time.Millisecond)
	l.Stop()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}

	after := steps.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, steps.Load(), "no steps after Stop")
	assert.Equal(t, uint64(after), l.Ticks())
}

func TestLoopStopsOnContextCancel(t *testing.T) {
	l := New(time.Millisecond, func(time.Duration) {})
	ctx, cancel := context.WithCancel(context.Background())

	finished := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(finished)
	}()

	cancel()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	l.Stop()
}

func TestLoopStopIsIdempotent(t *testing.T) {
	l := New(time.Millisecond, func(time.Duration) {})
	l.Stop()
	l.Stop()

	// A stopped loop returns straight away.
	done := make(chan struct{})
	go func() {
		l.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run on a stopped loop blocked")
	}
	assert.Zero(t, l.Ticks())
}

func TestLoopPassesElapsedTime(t *testing.T) {
	var total atomic.Int64
	l := New(2*time.Millisecond, func(dt time.Duration) {
		total.Add(int64(dt))
	})
	go l.Run(context.Background())

	require.Eventually(t, func() bool { return l.Ticks() >= 3 }, time.Second, time.Millisecond)
	l.Stop()
	assert.Greater(t, total.Load(), int64(0))
}
