// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package damage collects the device regions a scene asks to repaint.
//
// Every view-altering operation on a scene node reports two regions: the
// bounds it occupied when last drawn and the bounds it will occupy when
// drawn next. A Tracker receives both and keeps them in two forms:
//
//   - Region: a short list of dirty rectangles that collapses to a full
//     redraw once it grows past MaxRects
//   - Tiles: a bitmap of fixed-size tiles covering the canvas, one bit per
//     tile, for tile-based repaint
//
// Trackers are not safe for concurrent use; the scene is single-threaded.
package damage
