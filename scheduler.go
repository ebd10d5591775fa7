package bstviz

import (
	"container/heap"
	"time"
)

// Scheduler is a cooperative one-shot timer queue on a virtual clock. The
// host advances the clock from its frame callback; due tasks run inline on
// that same call, so no locking is needed. Tasks carry the generation they
// were scheduled under; CancelThrough turns every task of that generation
// or older into a no-op.
type Scheduler struct {
	now       time.Duration
	seq       uint64
	tasks     taskHeap
	cancelled uint64 // tasks with gen < cancelled are dropped
	dropped   int
}

type task struct {
	due time.Duration
	seq uint64
	gen uint64
	fn  func()
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration { return s.now }

// Pending returns the number of queued tasks, including cancelled ones not
// yet drained.
func (s *Scheduler) Pending() int { return len(s.tasks) }

// After schedules fn to run d after the current virtual time. Tasks due at
// the same instant run in the order they were scheduled.
func (s *Scheduler) After(d time.Duration, gen uint64, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	heap.Push(&s.tasks, task{due: s.now + d, seq: s.seq, gen: gen, fn: fn})
}

// CancelThrough invalidates every task scheduled with a generation <= gen.
func (s *Scheduler) CancelThrough(gen uint64) {
	if gen+1 > s.cancelled {
		s.cancelled = gen + 1
	}
}

// Advance moves the clock forward by dt and runs every task that falls due,
// in due order. The clock reads each task's due time while it runs, so a task
// may schedule follow-ups relative to its own instant. Returns the number of
// tasks run and the number of cancelled tasks discarded.
func (s *Scheduler) Advance(dt time.Duration) (ran, dropped int) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	for len(s.tasks) > 0 && s.tasks[0].due <= target {
		t := heap.Pop(&s.tasks).(task)
		s.now = t.due
		if t.gen < s.cancelled {
			dropped++
			continue
		}
		t.fn()
		ran++
	}
	s.now = target
	s.dropped += dropped
	return ran, dropped
}

// Dropped returns the total number of cancelled tasks discarded so far.
func (s *Scheduler) Dropped() int { return s.dropped }

// taskHeap orders tasks by due time, then scheduling order.
type taskHeap []task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(task)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = task{}
	*h = old[:n-1]
	return t
}
