package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAfterFiresOnceWhenDue(t *testing.T) {
	s := New()
	calls := 0
	s.After(100*time.Millisecond, func() { calls++ })

	s.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, calls)

	s.Advance(time.Millisecond)
	assert.Equal(t, 1, calls)

	s.Advance(time.Second)
	assert.Equal(t, 1, calls)
	assert.Zero(t, s.Pending())
	assert.Equal(t, 1100*time.Millisecond, s.Now())
}

func TestCallbacksFireInDueOrder(t *testing.T) {
	s := New()
	var order []string
	s.After(30*time.Millisecond, func() { order = append(order, "c") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(20*time.Millisecond, func() { order = append(order, "b1") })
	s.After(20*time.Millisecond, func() { order = append(order, "b2") })

	s.Advance(time.Second)
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, order)
}

func TestEveryRepeatsUntilFalse(t *testing.T) {
	s := New()
	ticks := 0
	s.Every(500*time.Millisecond, func() bool {
		ticks++
		return ticks < 3
	})

	s.Advance(10 * time.Second)
	assert.Equal(t, 3, ticks)
	assert.Zero(t, s.Pending())
}

func TestEverySeesClockAtEachTick(t *testing.T) {
	s := New()
	var seen []time.Duration
	s.Every(time.Second, func() bool {
		seen = append(seen, s.Now())
		return true
	})

	s.Advance(3500 * time.Millisecond)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, seen)
	assert.Equal(t, 1, s.Pending())
}

func TestCancel(t *testing.T) {
	s := New()
	fired := false
	id := s.After(time.Second, func() { fired = true })
	s.Cancel(id)
	s.Cancel(id)
	s.Cancel(ID(999))

	s.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestCancelFromInsideRepeat(t *testing.T) {
	s := New()
	ticks := 0
	var id ID
	id = s.Every(time.Second, func() bool {
		ticks++
		s.Cancel(id)
		return true
	})

	s.Advance(5 * time.Second)
	assert.Equal(t, 1, ticks)
	assert.Zero(t, s.Pending())
}

func TestNestedSchedulingInsideWindow(t *testing.T) {
	s := New()
	var at []time.Duration
	s.After(100*time.Millisecond, func() {
		s.After(50*time.Millisecond, func() { at = append(at, s.Now()) })
		s.After(time.Second, func() { at = append(at, s.Now()) })
	})

	s.Advance(200 * time.Millisecond)
	assert.Equal(t, []time.Duration{150 * time.Millisecond}, at)

	s.Advance(time.Second)
	assert.Equal(t, []time.Duration{150 * time.Millisecond, 1100 * time.Millisecond}, at)
}

func TestZeroDelayFiresOnNextAdvance(t *testing.T) {
	s := New()
	fired := false
	s.After(0, func() { fired = true })
	assert.False(t, fired)

	s.Advance(0)
	assert.True(t, fired)
}
