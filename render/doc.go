// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the drawing context the scene graph renders
// through.
//
// Context is the contract between the scene and the 2D renderer: a
// save/restore stack of matrix, clip and pen state, path construction in
// user coordinates, fill and stroke, and the extent and hit queries that
// picking and damage tracking depend on. Canvas implements it over a
// surface.Surface, or over no surface at all when only geometry is wanted.
//
// # Coordinates
//
// The current transformation matrix (CTM) maps user space to device space.
// Path points are transformed when they are added, so changing the CTM
// afterwards does not move them. Line width is in device pixels and is
// not scaled by the CTM.
//
// # Usage
//
//	canvas := render.NewCanvas(surface.NewImageSurface(800, 600))
//	canvas.Save()
//	canvas.Transform(pensool.Scale(100, 100))
//	canvas.Rectangle(0, 0, 1, 1)
//	canvas.Restore()
//	x0, y0, x1, y1 := canvas.StrokeExtents(render.DeviceSpace)
//	canvas.Stroke()
package render
