// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package interact

import (
	"container/heap"
	"time"
)

// minPeriod bounds how often a repeating timer can fire, so a timer
// started with a zero delay cannot spin within one Advance.
const minPeriod = time.Millisecond

// Scheduler runs timer callbacks on the goroutine that drives it. Time is
// virtual: it only moves when the owner calls Advance or RunUntil, so the
// event loop (or a test) decides when timers fire.
//
// A Scheduler is not safe for concurrent use.
type Scheduler struct {
	now   time.Duration
	queue timerQueue
	seq   uint64
}

// NewScheduler returns a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of timers waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Advance moves time forward by d, firing every timer that falls due on the
// way in due order. It returns the number of callbacks run.
func (s *Scheduler) Advance(d time.Duration) int {
	return s.RunUntil(s.now + d)
}

// RunUntil moves time forward to t, firing due timers in due order. Timers
// due at the same instant fire in the order they were started. Time never
// moves backward.
func (s *Scheduler) RunUntil(t time.Duration) int {
	fired := 0
	for len(s.queue) > 0 && s.queue[0].due <= t {
		tm := heap.Pop(&s.queue).(*Timer)
		if tm.due > s.now {
			s.now = tm.due
		}
		tm.fire()
		fired++
	}
	if t > s.now {
		s.now = t
	}
	return fired
}

// NewTimer returns an idle timer bound to s.
func (s *Scheduler) NewTimer() *Timer {
	return &Timer{s: s, index: -1}
}

func (s *Scheduler) schedule(t *Timer, due time.Duration) {
	s.seq++
	t.due = due
	t.seq = s.seq
	heap.Push(&s.queue, t)
}

// Timer is a periodic callback. After Start, the callback runs every
// period until it returns false or the timer is canceled.
type Timer struct {
	s      *Scheduler
	fn     func() bool
	period time.Duration
	due    time.Duration
	seq    uint64
	index  int
	gen    uint64

	canceled bool
}

// Start schedules fn to run d from now and every d after that while it
// returns true. Starting a pending timer replaces its schedule.
func (t *Timer) Start(d time.Duration, fn func() bool) {
	t.unqueue()
	if d < minPeriod {
		d = minPeriod
	}
	t.gen++
	t.fn = fn
	t.period = d
	t.canceled = false
	t.s.schedule(t, t.s.now+d)
}

// Cancel stops the timer. A callback already running is not interrupted,
// but it will not be repeated.
func (t *Timer) Cancel() {
	t.unqueue()
	t.gen++
	t.canceled = true
}

// WasCanceled reports whether Cancel was called since the last Start.
func (t *Timer) WasCanceled() bool {
	return t.canceled
}

// Pending reports whether the timer is waiting to fire.
func (t *Timer) Pending() bool {
	return t.index >= 0
}

func (t *Timer) unqueue() {
	if t.index >= 0 {
		heap.Remove(&t.s.queue, t.index)
	}
}

func (t *Timer) fire() {
	gen := t.gen
	again := t.fn()
	// The callback may have restarted or canceled the timer.
	if again && t.gen == gen && t.index < 0 {
		t.s.schedule(t, t.due+t.period)
	}
}

// timerQueue is a min-heap of timers by due time, then start order.
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
