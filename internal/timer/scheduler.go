// Package timer implements a single-threaded cooperative timer queue driven by
// the game tick. Nothing here runs on its own goroutine: callbacks fire inside
// Advance, on the caller's thread.
package timer

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled callback. Zero is never issued.
type Handle uint64

type entry struct {
	handle Handle
	owner  string
	at     time.Duration
	seq    uint64
	fn     func()
	index  int
}

type queue []*entry

func (q queue) Len() int { return len(q) }
func (q queue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
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

// Scheduler — очередь отложенных вызовов с виртуальными часами.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	q       queue
	entries map[Handle]*entry
	byOwner map[string]map[Handle]struct{}
}

// NewScheduler creates an empty scheduler with the clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		entries: make(map[Handle]*entry),
		byOwner: make(map[string]map[Handle]struct{}),
	}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once delay has elapsed. Negative delays fire on
// the next Advance.
func (s *Scheduler) After(owner string, delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	e := &entry{
		handle: Handle(s.seq),
		owner:  owner,
		at:     s.now + delay,
		seq:    s.seq,
		fn:     fn,
	}
	heap.Push(&s.q, e)
	s.entries[e.handle] = e
	owned, ok := s.byOwner[owner]
	if !ok {
		owned = make(map[Handle]struct{})
		s.byOwner[owner] = owned
	}
	owned[e.handle] = struct{}{}
	return e.handle
}

// Cancel removes a pending callback. Cancelling an unknown, fired or already
// cancelled handle is a no-op and returns false.
func (s *Scheduler) Cancel(h Handle) bool {
	e, ok := s.entries[h]
	if !ok {
		return false
	}
	if e.index >= 0 {
		heap.Remove(&s.q, e.index)
	}
	s.forget(e)
	return true
}

// CancelOwner cancels every pending callback registered under owner and
// returns how many were removed.
func (s *Scheduler) CancelOwner(owner string) int {
	owned := s.byOwner[owner]
	n := 0
	for h := range owned {
		if s.Cancel(h) {
			n++
		}
	}
	delete(s.byOwner, owner)
	return n
}

// Pending returns the number of callbacks still scheduled for owner.
func (s *Scheduler) Pending(owner string) int {
	return len(s.byOwner[owner])
}

// IsPending reports whether h is still waiting to fire.
func (s *Scheduler) IsPending(h Handle) bool {
	_, ok := s.entries[h]
	return ok
}

// Len returns the total number of pending callbacks.
func (s *Scheduler) Len() int {
	return len(s.entries)
}

// Advance moves the clock forward by dt and fires every callback that became
// due, in (time, scheduling order). Callbacks scheduled during Advance that are
// already due fire in the same call.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	for len(s.q) > 0 && s.q[0].at <= target {
		e := heap.Pop(&s.q).(*entry)
		s.forget(e)
		if e.at > s.now {
			s.now = e.at
		}
		e.fn()
	}
	s.now = target
}

func (s *Scheduler) forget(e *entry) {
	delete(s.entries, e.handle)
	if owned, ok := s.byOwner[e.owner]; ok {
		delete(owned, e.handle)
		if len(owned) == 0 {
			delete(s.byOwner, e.owner)
		}
	}
}
