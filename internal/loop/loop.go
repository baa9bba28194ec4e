package loop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Loop calls a step function at a fixed rate until it is stopped.
type Loop struct {
	interval time.Duration
	step     func(dt time.Duration)

	ticks    atomic.Uint64
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	running  atomic.Bool
}

// New creates a loop running step every interval. A non-positive interval
// falls back to 60 steps per second.
func New(interval time.Duration, step func(dt time.Duration)) *Loop {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Loop{
		interval: interval,
		step:     step,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run blocks, stepping until ctx is cancelled or Stop is called. A loop
// runs at most once; later calls return immediately.
func (l *Loop) Run(ctx context.Context) {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.stopChan:
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			l.step(dt)
			l.ticks.Add(1)
		}
	}
}

// Stop ends the loop and waits for an in-flight step to return. It is safe
// to call more than once and before Run, but not from inside step.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
	if l.running.Load() {
		<-l.done
	}
}

// Ticks is the number of completed steps.
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}
