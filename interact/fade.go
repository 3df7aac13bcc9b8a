// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package interact

import "time"

// DefaultFadeTime is how long feedback outlives the focus.
const DefaultFadeTime = 500 * time.Millisecond

// FadeManager keeps feedback such as handles on screen for a short while
// after the focus is lost, so the user can still reach handles away from
// the edge. The fade has a single step.
type FadeManager struct {
	timer *Timer
	delay time.Duration
	faded func()
}

// NewFadeManager returns a fade manager whose timer runs on s. A
// non-positive delay selects DefaultFadeTime.
func NewFadeManager(s *Scheduler, delay time.Duration) *FadeManager {
	if delay <= 0 {
		delay = DefaultFadeTime
	}
	return &FadeManager{timer: s.NewTimer(), delay: delay}
}

// RegisterCallback sets the function that removes the feedback.
func (f *FadeManager) RegisterCallback(fn func()) {
	f.faded = fn
}

// FocusLost starts the fade delay.
func (f *FadeManager) FocusLost() {
	f.timer.Start(f.delay, f.timeout)
}

// FocusGained cancels a pending fade and fades immediately. The registered
// callback runs even when no fade was pending, so it must tolerate running
// after the feedback is already gone.
func (f *FadeManager) FocusGained() {
	f.timer.Cancel()
	f.fade()
}

// Fading reports whether a fade is pending.
func (f *FadeManager) Fading() bool {
	return f.timer.Pending()
}

func (f *FadeManager) fade() {
	if f.faded != nil {
		f.faded()
	}
}

func (f *FadeManager) timeout() bool {
	f.fade()
	return false
}
