// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package interact

import (
	"github.com/pensool/pensool"
	"github.com/pensool/pensool/damage"
	"github.com/pensool/pensool/render"
	"github.com/pensool/pensool/scene"
)

// ghostColor is the pen of the bounding box ghost.
var ghostColor = pensool.RGB(0.6, 0.6, 0.6)

// Feedback shows the controls associated with the focused node: its
// handle set, drawn and picked in the node's frame, and a bounding box
// ghost around lines, circles and multi-child groups. Feedback is not part
// of the model; it only draws and picks.
//
// Feedback implements scene.Controls.
type Feedback struct {
	sink       damage.Sink
	newContext render.Factory

	operand *scene.Node
	handles *scene.Node
	box     pensool.Bounds
}

var _ scene.Controls = (*Feedback)(nil)

// NewFeedback returns inactive feedback that requests repaints from sink.
func NewFeedback(sink damage.Sink) *Feedback {
	if sink == nil {
		sink = damage.Discard
	}
	return &Feedback{sink: sink, newContext: render.MeasureFactory()}
}

// Operand returns the node whose feedback is shown, or nil.
func (f *Feedback) Operand() *scene.Node {
	return f.operand
}

// Handles returns the shown handle set, or nil.
func (f *Feedback) Handles() *scene.Node {
	return f.handles
}

// BoundingBox returns the device box of the ghost and whether it is shown.
func (f *Feedback) BoundingBox() (pensool.Bounds, bool) {
	return f.box, !f.box.IsNull()
}

// RouseFeedback shows or hides the feedback of n. Showing replaces the
// feedback of any earlier node.
func (f *Feedback) RouseFeedback(n *scene.Node, on bool) {
	f.clear()
	if !on {
		return
	}
	f.operand = n
	if scene.WantsBoundingBox(n) {
		f.box = n.GetBounds()
	}
	f.handles = scene.HandlesFor(n)
	f.invalidate()
	pensool.Logger().Debug("interact: feedback roused", "operand", n, "box", f.box, "handles", f.handles != nil)
}

func (f *Feedback) clear() {
	if f.operand == nil {
		return
	}
	f.invalidate()
	f.operand, f.handles, f.box = nil, nil, pensool.Bounds{}
}

// invalidate requests a repaint of everything the feedback draws.
func (f *Feedback) invalidate() {
	if b := f.Draw(f.newContext()); !b.IsNull() {
		f.sink.Invalidate(b)
	}
}

// Draw draws the ghost and the handles into ctx and returns the device
// bounds painted. ctx's matrix is not used; the ghost is in device space
// and the handles in the operand's accumulated frame.
func (f *Feedback) Draw(ctx render.Context) pensool.Bounds {
	var b pensool.Bounds
	if !f.box.IsNull() {
		ctx.Save()
		ctx.SetMatrix(pensool.Identity())
		ctx.NewPath()
		r := f.box.Rect()
		ctx.Rectangle(r.X, r.Y, r.W, r.H)
		ctx.SetLineWidth(scene.DefaultPenWidth)
		ctx.SetColor(ghostColor)
		b = render.DeviceBounds(ctx)
		ctx.Stroke()
		ctx.Restore()
	}
	if f.handles != nil {
		ctx.Save()
		ctx.SetMatrix(f.operand.Accumulated())
		b = b.Union(f.handles.Draw(ctx))
		ctx.Restore()
	}
	return b
}

// Pick returns the handle at the device point p, or nil.
func (f *Feedback) Pick(p pensool.Vec2) *scene.Node {
	if f.handles == nil {
		return nil
	}
	ctx := f.newContext()
	ctx.SetMatrix(f.operand.Accumulated())
	return f.handles.Pick(ctx, p)
}
