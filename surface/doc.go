// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the pixel targets a render.Canvas paints into.
//
// A Surface receives device-space paths that have already been transformed
// by the canvas, so implementations never see user coordinates or matrices.
//
// # Surface Types
//
//   - ImageSurface: CPU rendering to *image.RGBA using golang.org/x/image/vector
//     for coverage and the Go Regular font for text
//   - recording.Recorder: captures commands for replay (registered by that package)
//
// # Registry
//
// Backends are selected by name or by priority:
//
//	s, err := surface.NewSurfaceByName("image", 800, 600)
//	// or the best available:
//	s, err := surface.NewSurface(800, 600)
//
// Surfaces are not safe for concurrent use.
package surface
