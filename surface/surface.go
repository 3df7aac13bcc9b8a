// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/pensool/pensool"
)

// Surface is a rendering target in device pixels.
//
// Example usage:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.Fill(path, surface.FillStyle{Color: color.Black})
//	img := s.Snapshot()
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// Fill fills the device-space path with the non-zero rule.
	// The path is not modified.
	Fill(path *pensool.Path, style FillStyle)

	// Stroke strokes the device-space path with round joins.
	// The path is not modified.
	Stroke(path *pensool.Path, style StrokeStyle)

	// DrawText draws s with its baseline origin at the device point at.
	DrawText(s string, at pensool.Vec2, style TextStyle)

	// Flush completes pending drawing. CPU surfaces return nil.
	Flush() error

	// Snapshot returns a copy of the surface contents.
	Snapshot() *image.RGBA

	// Close releases the surface. Close is idempotent.
	Close() error
}

// Clipper is an optional interface for surfaces that restrict painting to
// a device rectangle.
type Clipper interface {
	Surface

	// SetClip limits subsequent painting to r. An empty r removes the clip.
	SetClip(r image.Rectangle)
}
