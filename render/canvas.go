// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	"github.com/pensool/pensool"
	ipath "github.com/pensool/pensool/internal/path"
	"github.com/pensool/pensool/surface"
)

// DefaultFontSize is the font size of a new canvas, in user units.
const DefaultFontSize = 12

// state is the part of the canvas pushed by Save.
type state struct {
	matrix    pensool.Matrix
	lineWidth float64
	lineCap   surface.LineCap
	color     pensool.RGBA
	fontSize  float64

	// clip is the device clip; the zero rectangle means unclipped.
	clip image.Rectangle
}

// Canvas implements Context over an optional surface. Without a surface,
// painting only clears the path; queries work the same.
//
// The path is stored in device coordinates.
type Canvas struct {
	target surface.Surface
	path   *pensool.Path
	state  state
	stack  []state
}

var _ Context = (*Canvas)(nil)

// NewCanvas creates a canvas painting into target, which may be nil.
func NewCanvas(target surface.Surface) *Canvas {
	return &Canvas{
		target: target,
		path:   pensool.NewPath(),
		state: state{
			matrix:    pensool.Identity(),
			lineWidth: 1,
			color:     pensool.Black,
			fontSize:  DefaultFontSize,
		},
	}
}

// Target returns the surface being painted, or nil.
func (c *Canvas) Target() surface.Surface {
	return c.target
}

// Save pushes the current state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the last saved state. Unbalanced calls are ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		pensool.Logger().Debug("render: restore without save")
		return
	}
	clip := c.state.clip
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	if c.state.clip != clip {
		c.applyClip()
	}
}

// Depth returns the number of saved states.
func (c *Canvas) Depth() int {
	return len(c.stack)
}

// Matrix returns the current transformation matrix.
func (c *Canvas) Matrix() pensool.Matrix {
	return c.state.matrix
}

// SetMatrix replaces the current transformation matrix.
func (c *Canvas) SetMatrix(m pensool.Matrix) {
	c.state.matrix = m
}

// Transform post-multiplies the current matrix by m.
func (c *Canvas) Transform(m pensool.Matrix) {
	c.state.matrix = c.state.matrix.Multiply(m)
}

// Clip intersects the clip with the device rectangle b.
func (c *Canvas) Clip(b pensool.Bounds) {
	r := image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
	if c.state.clip == (image.Rectangle{}) {
		c.state.clip = r
	} else {
		c.state.clip = c.state.clip.Intersect(r)
		if c.state.clip.Empty() {
			// Keep an explicit empty clip distinct from "unclipped".
			c.state.clip = image.Rect(r.Min.X, r.Min.Y, r.Min.X, r.Min.Y)
		}
	}
	c.applyClip()
}

func (c *Canvas) applyClip() {
	if cl, ok := c.target.(surface.Clipper); ok {
		cl.SetClip(c.state.clip)
	}
}

// clippedOut reports whether an explicit clip excludes everything.
func (c *Canvas) clippedOut() bool {
	return c.state.clip != (image.Rectangle{}) && c.state.clip.Empty()
}

// SetLineWidth sets the pen width in device pixels.
func (c *Canvas) SetLineWidth(w float64) {
	c.state.lineWidth = w
}

// LineWidth returns the pen width in device pixels.
func (c *Canvas) LineWidth() float64 {
	return c.state.lineWidth
}

// SetLineCap sets the cap of open subpath ends.
func (c *Canvas) SetLineCap(lc surface.LineCap) {
	c.state.lineCap = lc
}

// SetColor sets the paint color.
func (c *Canvas) SetColor(col pensool.RGBA) {
	c.state.color = col
}

// SetFontSize sets the font size in user units.
func (c *Canvas) SetFontSize(size float64) {
	c.state.fontSize = size
}

// NewPath discards the current path.
func (c *Canvas) NewPath() {
	c.path.Clear()
}

// MoveTo starts a new subpath at the user point (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	p := c.state.matrix.TransformPoint(pensool.V2(x, y))
	c.path.MoveTo(p.X, p.Y)
}

// LineTo adds a line to the user point (x, y).
func (c *Canvas) LineTo(x, y float64) {
	p := c.state.matrix.TransformPoint(pensool.V2(x, y))
	c.path.LineTo(p.X, p.Y)
}

// Arc adds a circular arc in user space. Under a non-uniform matrix the
// arc becomes elliptical in device space.
func (c *Canvas) Arc(cx, cy, r, angle1, angle2 float64) {
	arc := pensool.NewPath()
	arc.Arc(cx, cy, r, angle1, angle2)
	c.path.Extend(arc.Transform(c.state.matrix))
}

// Rectangle adds a closed rectangle in user space.
func (c *Canvas) Rectangle(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	c.path.Close()
}

// ShowText draws s at the current point. The font size is scaled by the
// matrix so text zooms with its node; glyphs are not rotated.
func (c *Canvas) ShowText(s string) {
	if c.target == nil || s == "" || c.clippedOut() {
		return
	}
	at := pensool.Vec2{}
	if c.path.HasCurrentPoint() {
		at = c.path.CurrentPoint()
	} else {
		at = c.state.matrix.TransformPoint(at)
	}
	c.target.DrawText(s, at, surface.TextStyle{
		Color: c.state.color.Color(),
		Size:  c.state.fontSize * c.state.matrix.ScaleFactor(),
	})
}

// Fill paints the current path with the non-zero rule and clears it.
func (c *Canvas) Fill() {
	if c.target != nil && !c.clippedOut() {
		c.target.Fill(c.path, surface.FillStyle{Color: c.state.color.Color()})
	}
	c.NewPath()
}

// Stroke paints the outline of the current path and clears it.
func (c *Canvas) Stroke() {
	if c.target != nil && !c.clippedOut() {
		c.target.Stroke(c.path, surface.StrokeStyle{
			Color: c.state.color.Color(),
			Width: c.state.lineWidth,
			Cap:   c.state.lineCap,
		})
	}
	c.NewPath()
}

func (c *Canvas) stroke() ipath.Stroke {
	return ipath.Stroke{Width: c.state.lineWidth, Cap: capGeometry(c.state.lineCap)}
}

// PathExtents returns the box of the current path. An empty path yields
// all zeros.
func (c *Canvas) PathExtents(space Space) (x0, y0, x1, y1 float64) {
	p := c.path
	if space == UserSpace {
		p = p.Transform(c.state.matrix.Invert())
	}
	return unpack(ipath.PathExtents(ipath.Flatten(p, ipath.Tolerance)))
}

// StrokeExtents returns the box the current path would ink. In user space
// this is the box around the inverse-mapped device box.
func (c *Canvas) StrokeExtents(space Space) (x0, y0, x1, y1 float64) {
	e := ipath.StrokeExtents(ipath.Flatten(c.path, ipath.Tolerance), c.stroke())
	if !e.Valid || space == DeviceSpace {
		return unpack(e)
	}
	inv := c.state.matrix.Invert()
	var u ipath.Extents
	for _, corner := range [4]pensool.Vec2{
		pensool.V2(e.X0, e.Y0), pensool.V2(e.X1, e.Y0),
		pensool.V2(e.X1, e.Y1), pensool.V2(e.X0, e.Y1),
	} {
		u.Add(inv.TransformPoint(corner))
	}
	return unpack(u)
}

// InStroke reports whether the user point p is inked by stroking the path.
func (c *Canvas) InStroke(p pensool.Vec2) bool {
	lines := ipath.Flatten(c.path, ipath.Tolerance)
	return ipath.InStroke(lines, c.stroke(), c.state.matrix.TransformPoint(p))
}

// InFill reports whether the user point p is inside the path.
func (c *Canvas) InFill(p pensool.Vec2) bool {
	lines := ipath.Flatten(c.path, ipath.Tolerance)
	return ipath.InFill(lines, c.state.matrix.TransformPoint(p))
}

// UserToDevice maps a user point to device space.
func (c *Canvas) UserToDevice(p pensool.Vec2) pensool.Vec2 {
	return c.state.matrix.TransformPoint(p)
}

// DeviceToUser maps a device point to user space. A singular matrix maps
// through the identity.
func (c *Canvas) DeviceToUser(p pensool.Vec2) pensool.Vec2 {
	inv, err := c.state.matrix.Inverse()
	if err != nil {
		pensool.Logger().Warn("render: device to user through singular matrix", "err", err)
	}
	return inv.TransformPoint(p)
}

// UserToDeviceDistance maps a user distance vector to device space.
func (c *Canvas) UserToDeviceDistance(d pensool.Vec2) pensool.Vec2 {
	return c.state.matrix.TransformDistance(d)
}

// DeviceToUserDistance maps a device distance vector to user space.
func (c *Canvas) DeviceToUserDistance(d pensool.Vec2) pensool.Vec2 {
	return c.state.matrix.Invert().TransformDistance(d)
}

// DeviceBounds snaps the stroke extents of the current path to pixels.
func DeviceBounds(ctx Context) pensool.Bounds {
	x0, y0, x1, y1 := ctx.StrokeExtents(DeviceSpace)
	if x0 == 0 && y0 == 0 && x1 == 0 && y1 == 0 {
		return pensool.NullBounds()
	}
	return pensool.FromExtents(x0, y0, x1, y1)
}

func unpack(e ipath.Extents) (x0, y0, x1, y1 float64) {
	if !e.Valid {
		return 0, 0, 0, 0
	}
	return e.X0, e.Y0, e.X1, e.Y1
}

func capGeometry(lc surface.LineCap) ipath.Cap {
	switch lc {
	case surface.LineCapRound:
		return ipath.CapRound
	case surface.LineCapSquare:
		return ipath.CapSquare
	}
	return ipath.CapButt
}
