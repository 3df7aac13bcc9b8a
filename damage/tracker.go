// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package damage

import "github.com/pensool/pensool"

// Sink receives repaint requests in device coordinates.
type Sink interface {
	Invalidate(b pensool.Bounds)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(b pensool.Bounds)

// Invalidate calls f(b).
func (f SinkFunc) Invalidate(b pensool.Bounds) { f(b) }

// Discard drops every request.
var Discard Sink = SinkFunc(func(pensool.Bounds) {})

// Tracker is a Sink that records requests in a Region and, when sized, a
// tile map.
type Tracker struct {
	region Region
	tiles  *Tiles

	// log holds every request in arrival order, null ones included.
	log []pensool.Bounds
}

// NewTracker creates a tracker for a width×height canvas. Non-positive
// dimensions disable the tile map.
func NewTracker(width, height int) *Tracker {
	return &Tracker{tiles: NewTiles(width, height)}
}

// Invalidate records a repaint request.
func (t *Tracker) Invalidate(b pensool.Bounds) {
	pensool.Logger().Debug("damage: invalidate", "bounds", b.String())
	t.log = append(t.log, b)
	t.region.Add(b)
	if t.tiles != nil {
		t.tiles.MarkBounds(b)
	}
}

// Requests returns every request since the last Reset, in order.
func (t *Tracker) Requests() []pensool.Bounds {
	return t.log
}

// Region returns the accumulated dirty region.
func (t *Tracker) Region() *Region {
	return &t.region
}

// Tiles returns the tile map, or nil if the tracker is unsized.
func (t *Tracker) Tiles() *Tiles {
	return t.tiles
}

// Covers reports whether the union of requests since the last Reset
// contains b.
func (t *Tracker) Covers(b pensool.Bounds) bool {
	u := pensool.NullBounds()
	for _, r := range t.log {
		u = u.Union(r)
	}
	return u.Contains(b)
}

// Reset clears everything after a repaint.
func (t *Tracker) Reset() {
	t.log = t.log[:0]
	t.region.Clear()
	if t.tiles != nil {
		t.tiles.Clear()
	}
}
