// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package interact

import (
	"time"

	"github.com/pensool/pensool"
	"github.com/pensool/pensool/damage"
	"github.com/pensool/pensool/layout"
	"github.com/pensool/pensool/render"
	"github.com/pensool/pensool/scene"
)

// Settings are the interaction tunables.
type Settings struct {
	FadeTime         time.Duration
	PopupTime        time.Duration
	SlowingThreshold float64 // px/ms
	ItemSize         float64 // px
	OffAxisPixels    float64 // px
}

// DefaultSettings returns the stock tunables.
func DefaultSettings() Settings {
	return Settings{
		FadeTime:         DefaultFadeTime,
		PopupTime:        DefaultPopupTime,
		SlowingThreshold: DefaultSlowingThreshold,
		ItemSize:         layout.DefaultItemSize,
		OffAxisPixels:    layout.DefaultOffAxisPixels,
	}
}

// InteractionContext owns the interaction state of one view: the timer
// scheduler, the pointer tracker, the fade and focus managers, the focus
// feedback and the handle menu. Event handlers receive it instead of
// reaching for globals.
//
// An InteractionContext and its view belong to a single goroutine: every
// method, including Advance, must be called from the event loop that owns
// the scene.
type InteractionContext struct {
	view      *scene.View
	scheduler *Scheduler
	pointer   *PointerTracker
	fade      *FadeManager
	focus     *FocusManager
	feedback  *Feedback
	menu      *layout.HandleMenu

	lastPos pensool.Vec2
	hasLast bool
}

// NewInteractionContext wires the interaction state of view. Repaint
// requests of the feedback and the menu go to sink, which should be the
// view's own. The feedback becomes the view's controls.
func NewInteractionContext(view *scene.View, sink damage.Sink, s Settings) *InteractionContext {
	sched := NewScheduler()
	fade := NewFadeManager(sched, s.FadeTime)
	ic := &InteractionContext{
		view:      view,
		scheduler: sched,
		pointer: NewPointerTracker(sched,
			WithSlowingThreshold(s.SlowingThreshold),
			WithPopupTime(s.PopupTime),
		),
		fade:     fade,
		focus:    NewFocusManager(fade),
		feedback: NewFeedback(sink),
		menu: layout.NewHandleMenu(
			layout.WithSink(sink),
			layout.WithItemSize(s.ItemSize),
			layout.WithOffAxisPixels(s.OffAxisPixels),
		),
	}
	ic.pointer.SetCallback(ic.pointerStopped)
	view.SetControls(ic.feedback)
	return ic
}

// View returns the view.
func (ic *InteractionContext) View() *scene.View { return ic.view }

// Scheduler returns the timer scheduler.
func (ic *InteractionContext) Scheduler() *Scheduler { return ic.scheduler }

// Pointer returns the pointer tracker.
func (ic *InteractionContext) Pointer() *PointerTracker { return ic.pointer }

// Focus returns the focus manager.
func (ic *InteractionContext) Focus() *FocusManager { return ic.focus }

// Feedback returns the focus feedback.
func (ic *InteractionContext) Feedback() *Feedback { return ic.feedback }

// Menu returns the handle menu.
func (ic *InteractionContext) Menu() *layout.HandleMenu { return ic.menu }

// Advance moves the timers forward by d.
func (ic *InteractionContext) Advance(d time.Duration) int {
	return ic.scheduler.Advance(d)
}

// PointerMoved handles a pointer motion event. An open handle menu slides
// along its controlee by the motion across its axis.
func (ic *InteractionContext) PointerMoved(ev PointerEvent) PointerState {
	if ic.hasLast && ic.menu.IsOpen() {
		d := ev.Pos.Sub(ic.lastPos)
		across := d.Dot(ic.menu.Spec().Axis.Orthogonal(pensool.Right))
		if across != 0 {
			ic.menu.Slide(across)
		}
	}
	ic.lastPos, ic.hasLast = ev.Pos, true
	return ic.pointer.Observe(ev)
}

// pointerStopped picks at the resting pointer. A hit on the menu or on a
// handle keeps things as they are; a hit on the scene focuses the node and
// opens the handle menu at the pointer; a miss closes the menu and
// unfocuses.
func (ic *InteractionContext) pointerStopped(pos pensool.Vec2) bool {
	if ic.menu.Pick(pos) != nil {
		return true
	}
	if h := ic.feedback.Pick(pos); h != nil {
		pensool.Logger().Debug("interact: pointer on handle", "handle", h)
		return true
	}
	hit := ic.view.Pick(pos)
	if hit == nil {
		ic.menu.Close()
		ic.focus.Unfocus()
		return false
	}
	ic.focus.Focus(hit)
	ic.menu.Open(hit, pos)
	return true
}

// Zoom zooms the view about center. Open feedback is closed first since
// it is laid out in device space.
func (ic *InteractionContext) Zoom(center pensool.Vec2, in bool) {
	ic.menu.Close()
	ic.view.Zoom(center, in)
}

// Draw draws the scene, then the feedback and the menu over it.
func (ic *InteractionContext) Draw(ctx render.Context) pensool.Bounds {
	b := ic.view.Draw(ctx)
	b = b.Union(ic.feedback.Draw(ctx))
	return b.Union(ic.menu.Draw(ctx))
}
