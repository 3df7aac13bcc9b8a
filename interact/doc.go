// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package interact holds the interaction state around a scene: deciding
// when the pointer has come to rest, focusing the node under it, showing
// and fading the focus feedback, and driving the handle menu.
//
// Everything runs on the goroutine that owns the scene. Timers are
// callbacks on a Scheduler with a virtual clock, advanced by the event
// loop, so a callback never races a pointer event. A fired callback may
// still find that the state it was scheduled for has been superseded and
// must check before acting; the managers here do.
//
// Usage:
//
//	ic := interact.NewInteractionContext(view, tracker, interact.DefaultSettings())
//	ic.PointerMoved(interact.PointerEvent{Pos: p, Time: t})
//	ic.Advance(elapsed)
//	ic.Draw(ctx)
package interact
