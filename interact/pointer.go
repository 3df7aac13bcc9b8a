// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package interact

import (
	"time"

	"github.com/pensool/pensool"
)

// Pointer timing defaults.
const (
	// DefaultSlowingThreshold is the speed, in pixels per millisecond, at
	// or below which the pointer counts as slowed.
	DefaultSlowingThreshold = 0.1

	// DefaultPopupTime is how long the pointer must stay slow before it
	// counts as stopped.
	DefaultPopupTime = 1000 * time.Millisecond
)

// PointerState is the state of a PointerTracker.
type PointerState uint8

const (
	// PointerIdle is the state after a reset, before any motion.
	PointerIdle PointerState = iota

	// PointerMoving means the pointer is moving faster than the threshold.
	PointerMoving

	// PointerSlowed means the pointer is slow and the popup timer runs.
	PointerSlowed

	// PointerStopped means the pointer stayed slow for the popup time.
	PointerStopped
)

// String returns the state name.
func (s PointerState) String() string {
	switch s {
	case PointerIdle:
		return "idle"
	case PointerMoving:
		return "moving"
	case PointerSlowed:
		return "slowed"
	case PointerStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// PointerEvent is one pointer motion sample.
type PointerEvent struct {
	// Pos is the device position.
	Pos pensool.Vec2

	// Time is the event timestamp, on any monotonic base.
	Time time.Duration
}

// StoppedFunc is called with the pointer position once the pointer has
// stopped, typically to pick for mouseover. It reports whether it acted.
type StoppedFunc func(pos pensool.Vec2) bool

// PointerTracker decides from motion events when the pointer has come to
// rest. Picking waits for that instead of running on every motion event.
//
// The machine runs moving -> slowed -> stopped. A slow event while moving
// starts the popup timer; a fast one while slowed cancels it. When the
// timer fires the pointer is stopped and the stopped callback runs; the
// timer keeps retrying until the callback succeeds. A slow event while
// stopped runs the callback directly and, on success, resets the machine.
type PointerTracker struct {
	state    PointerState
	previous PointerEvent
	timer    *Timer
	stopped  StoppedFunc

	threshold float64
	popup     time.Duration
}

// PointerOption configures a PointerTracker.
type PointerOption func(*PointerTracker)

// WithSlowingThreshold sets the slow speed in pixels per millisecond.
func WithSlowingThreshold(pxPerMS float64) PointerOption {
	return func(p *PointerTracker) {
		if pxPerMS > 0 {
			p.threshold = pxPerMS
		}
	}
}

// WithPopupTime sets how long the pointer must stay slow.
func WithPopupTime(d time.Duration) PointerOption {
	return func(p *PointerTracker) {
		if d > 0 {
			p.popup = d
		}
	}
}

// NewPointerTracker returns an idle tracker whose timer runs on s.
func NewPointerTracker(s *Scheduler, opts ...PointerOption) *PointerTracker {
	p := &PointerTracker{
		timer:     s.NewTimer(),
		threshold: DefaultSlowingThreshold,
		popup:     DefaultPopupTime,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetCallback registers the function run when the pointer stops.
func (p *PointerTracker) SetCallback(fn StoppedFunc) {
	p.stopped = fn
}

// State returns the current state.
func (p *PointerTracker) State() PointerState {
	return p.state
}

// Reset returns the machine to idle. A running timer is left alone; its
// callback finds the machine idle and stops.
func (p *PointerTracker) Reset() {
	p.state = PointerIdle
	p.previous = PointerEvent{}
}

// CancelTimer stops the popup timer, as when another mode takes over the
// pointer. A later motion event can start it again.
func (p *PointerTracker) CancelTimer() {
	p.timer.Cancel()
}

// Observe feeds a motion event to the machine and returns the new state.
// Events with a timestamp not after the previous one only update the
// reference position.
func (p *PointerTracker) Observe(ev PointerEvent) PointerState {
	if p.state == PointerIdle {
		p.state = PointerMoving
		p.previous = ev
		return p.state
	}

	distance := ev.Pos.Distance(p.previous.Pos)
	elapsed := ev.Time - p.previous.Time
	p.previous = ev
	if elapsed <= 0 {
		return p.state
	}
	speed := distance / (float64(elapsed) / float64(time.Millisecond))
	slow := speed <= p.threshold

	switch p.state {
	case PointerMoving:
		if slow {
			p.state = PointerSlowed
			p.timer.Start(p.popup, p.timeout)
		}
	case PointerSlowed:
		if !slow {
			p.state = PointerMoving
			p.timer.Cancel()
		}
	case PointerStopped:
		if !slow {
			p.state = PointerMoving
		} else if p.callback(ev.Pos) {
			p.state = PointerIdle
		}
	}
	return p.state
}

func (p *PointerTracker) callback(pos pensool.Vec2) bool {
	if p.stopped == nil {
		return false
	}
	return p.stopped(pos)
}

// timeout enters the stopped state and tries the callback, asking to be
// run again while it fails.
func (p *PointerTracker) timeout() bool {
	if p.timer.WasCanceled() {
		return false
	}
	if p.state != PointerSlowed && p.state != PointerStopped {
		return false
	}
	p.state = PointerStopped
	if p.callback(p.previous.Pos) {
		return false
	}
	pensool.Logger().Debug("interact: pointer stopped, nothing to act on", "pos", p.previous.Pos)
	return true
}
