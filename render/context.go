// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/pensool/pensool"
	"github.com/pensool/pensool/surface"
)

// Space selects the coordinate system of an extent query.
type Space uint8

const (
	// UserSpace reports extents in the coordinates of the current matrix.
	UserSpace Space = iota

	// DeviceSpace reports extents in device pixels.
	DeviceSpace
)

// Context is a stateful 2D drawing context.
//
// Implementations are not safe for concurrent use.
type Context interface {
	// Save pushes the matrix, clip and pen state.
	Save()

	// Restore pops the state pushed by the matching Save.
	Restore()

	// Matrix returns the current transformation matrix.
	Matrix() pensool.Matrix

	// SetMatrix replaces the current transformation matrix.
	SetMatrix(m pensool.Matrix)

	// Transform post-multiplies the current matrix by m, so m applies to
	// user coordinates before the existing matrix.
	Transform(m pensool.Matrix)

	// Clip intersects the clip with a device rectangle.
	Clip(b pensool.Bounds)

	SetLineWidth(w float64)
	LineWidth() float64
	SetLineCap(c surface.LineCap)
	SetColor(c pensool.RGBA)
	SetFontSize(size float64)

	// NewPath discards the current path.
	NewPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)

	// Arc adds a circular arc, connected to the current point by a line.
	Arc(cx, cy, r, angle1, angle2 float64)
	Rectangle(x, y, w, h float64)
	ClosePath()

	// ShowText draws s with its baseline origin at the current point.
	ShowText(s string)

	// Fill paints the interior of the current path and clears it.
	Fill()

	// Stroke paints the outline of the current path and clears it.
	Stroke()

	// PathExtents returns the box of the current path as if it had no width.
	PathExtents(space Space) (x0, y0, x1, y1 float64)

	// StrokeExtents returns the box the current path would ink if stroked.
	StrokeExtents(space Space) (x0, y0, x1, y1 float64)

	// InStroke reports whether the user-space point is inked by a stroke of
	// the current path.
	InStroke(p pensool.Vec2) bool

	// InFill reports whether the user-space point is inside the current path.
	InFill(p pensool.Vec2) bool

	UserToDevice(p pensool.Vec2) pensool.Vec2
	DeviceToUser(p pensool.Vec2) pensool.Vec2
	UserToDeviceDistance(d pensool.Vec2) pensool.Vec2
	DeviceToUserDistance(d pensool.Vec2) pensool.Vec2
}

// Factory creates a fresh context with identity matrix and default pen.
type Factory func() Context

// MeasureFactory returns a factory of surface-less canvases, used for
// geometry queries outside a draw walk.
func MeasureFactory() Factory {
	return func() Context { return NewCanvas(nil) }
}
