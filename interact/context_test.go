// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package interact

import (
	"testing"
	"time"

	"github.com/pensool/pensool"
	"github.com/pensool/pensool/damage"
	"github.com/pensool/pensool/scene"
)

type sessionFixture struct {
	view *scene.View
	tr   *damage.Tracker
	ic   *InteractionContext
	now  int // event clock, ms
}

func newSession() *sessionFixture {
	tr := damage.NewTracker(400, 400)
	view := scene.NewView(scene.WithSink(tr))
	return &sessionFixture{
		view: view,
		tr:   tr,
		ic:   NewInteractionContext(view, tr, DefaultSettings()),
	}
}

// move feeds a motion event 10 ms after the previous one.
func (s *sessionFixture) move(x, y float64) PointerState {
	s.now += 10
	return s.ic.PointerMoved(ev(x, y, time.Duration(s.now)*ms))
}

// rest moves to (x, y), holds still and lets the popup timer fire.
func (s *sessionFixture) rest(x, y float64) {
	s.move(x, y)
	s.move(x, y)
	s.ic.Advance(DefaultPopupTime)
}

func TestStoppedPointerFocusesAndOpensMenu(t *testing.T) {
	s := newSession()
	rect := scene.NewRect()
	s.view.Root().Append(rect)
	rect.SetFromRect(0, 0, 100, 100)
	s.ic.Draw(newCanvas())

	s.rest(50, 0)
	if s.ic.Pointer().State() != PointerStopped {
		t.Fatalf("pointer state = %v, want stopped", s.ic.Pointer().State())
	}
	if s.ic.Focus().Operand() != Operand(rect) {
		t.Fatalf("operand = %v, want rect", s.ic.Focus().Operand())
	}
	if !rect.Style().IsHighlighted() {
		t.Error("focused rect not highlighted")
	}
	menu := s.ic.Menu()
	if !menu.IsOpen() || menu.Spec().Axis != pensool.V2(0, -1) {
		t.Fatalf("menu open %v axis %v", menu.IsOpen(), menu.Spec().Axis)
	}
	if s.ic.Scheduler().Pending() != 0 {
		t.Error("popup timer kept running after a successful pick")
	}

	want := pensool.Bounds{X: -1, Y: -11, Width: 102, Height: 112}
	if got := s.ic.Draw(newCanvas()); got != want {
		t.Errorf("Draw = %v, want %v", got, want)
	}

	// Motion across the axis slides the menu along the edge.
	s.move(52, 0)
	if !menu.Spec().Hotspot.Approx(pensool.V2(52, 0), 1e-9) {
		t.Errorf("menu hotspot = %v, want (52,0)", menu.Spec().Hotspot)
	}

	// Resting away from everything closes the menu, drops the highlight
	// at once and the feedback after the fade.
	s.move(300, 300)
	s.rest(300, 300)
	if menu.IsOpen() {
		t.Error("menu still open")
	}
	if rect.Style().IsHighlighted() {
		t.Error("rect still highlighted")
	}
	if s.ic.Focus().Operand() == nil {
		t.Error("operand dropped before the fade")
	}
	s.ic.Advance(DefaultFadeTime)
	if s.ic.Focus().Operand() != nil {
		t.Error("operand kept after the fade")
	}
}

func TestStoppedPointerOnHandleKeepsFocus(t *testing.T) {
	s := newSession()
	line := scene.NewLine()
	s.view.Root().Append(line)
	line.SetTransform(pensool.V2(20, 200), pensool.V2(100, 100), 0)
	s.ic.Draw(newCanvas())

	s.rest(70, 200)
	if s.ic.Focus().Operand() != Operand(line) {
		t.Fatalf("operand = %v, want line", s.ic.Focus().Operand())
	}
	fb := s.ic.Feedback()
	if fb.Operand() != line || fb.Handles() == nil {
		t.Fatal("line feedback not roused")
	}

	// The motion along the line slides the menu one probe ahead.
	s.move(120, 200)
	s.rest(120, 200)
	if s.ic.Focus().Operand() != Operand(line) || fb.Handles() == nil {
		t.Error("resting on a handle lost the focus")
	}
	if !s.ic.Menu().IsOpen() || !s.ic.Menu().Spec().Hotspot.Approx(pensool.V2(72, 200), 1e-9) {
		t.Errorf("menu at %v, want (72,200)", s.ic.Menu().Spec().Hotspot)
	}
}

func TestZoomClosesMenu(t *testing.T) {
	s := newSession()
	rect := scene.NewRect()
	s.view.Root().Append(rect)
	rect.SetFromRect(0, 0, 100, 100)
	s.ic.Draw(newCanvas())
	s.rest(50, 0)

	s.ic.Zoom(pensool.V2(0, 0), true)
	if s.ic.Menu().IsOpen() {
		t.Error("menu open after zoom")
	}
	if got := s.view.Root().Scale(); got != pensool.V2(1.5, 1.5) {
		t.Errorf("root scale = %v, want 1.5", got)
	}
}
