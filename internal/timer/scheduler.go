// Package timer schedules one-shot and repeating callbacks against a clock
// that only moves when Advance is called, so timed effects run on the same
// goroutine as the frame loop and can be driven step by step in tests.
package timer

import (
	"container/heap"
	"time"
)

// ID identifies a scheduled callback.
type ID uint64

type entry struct {
	id     ID
	due    time.Duration
	seq    uint64
	period time.Duration
	once   func()
	repeat func() bool
	index  int
}

type queue []*entry

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue) Push(x any) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

// Scheduler is not safe for concurrent use.
type Scheduler struct {
	now     time.Duration
	queue   queue
	byID    map[ID]*entry
	nextID  ID
	nextSeq uint64
}

// New creates a scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{byID: make(map[ID]*entry)}
}

// Now is the time elapsed through Advance.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending is the number of scheduled callbacks.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After runs fn once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) ID {
	return s.push(&entry{due: s.now + max(d, 0), once: fn})
}

// Every runs fn each period until fn returns false or the entry is
// cancelled. The first call happens one period from now.
func (s *Scheduler) Every(period time.Duration, fn func() bool) ID {
	if period <= 0 {
		period = time.Millisecond
	}
	return s.push(&entry{due: s.now + period, period: period, repeat: fn})
}

// Cancel removes a pending callback. Unknown or finished IDs are ignored.
func (s *Scheduler) Cancel(id ID) {
	e, ok := s.byID[id]
	if !ok {
		return
	}
	delete(s.byID, id)
	if e.index >= 0 {
		heap.Remove(&s.queue, e.index)
	}
}

// Advance moves the clock forward by dt and fires every callback that
// falls due, in due order. Callbacks scheduled while advancing fire in the
// same call when they fall inside the window.
func (s *Scheduler) Advance(dt time.Duration) {
	target := s.now + max(dt, 0)
	for len(s.queue) > 0 && s.queue[0].due <= target {
		e := heap.Pop(&s.queue).(*entry)
		s.now = e.due

		if e.once != nil {
			delete(s.byID, e.id)
			e.once()
			continue
		}

		if !e.repeat() {
			delete(s.byID, e.id)
			continue
		}
		if _, live := s.byID[e.id]; !live {
			// cancelled from inside its own callback
			continue
		}
		e.due += e.period
		e.seq = s.seq()
		heap.Push(&s.queue, e)
	}
	s.now = target
}

func (s *Scheduler) push(e *entry) ID {
	s.nextID++
	e.id = s.nextID
	e.seq = s.seq()
	s.byID[e.id] = e
	heap.Push(&s.queue, e)
	return e.id
}

func (s *Scheduler) seq() uint64 {
	s.nextSeq++
	return s.nextSeq
}
