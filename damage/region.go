// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package damage

import "github.com/pensool/pensool"

// MaxRects is the threshold after which a Region switches to full redraw.
// Past this many rectangles it is cheaper to repaint everything.
const MaxRects = 16

// Region accumulates dirty rectangles. The zero value is empty and ready
// to use.
type Region struct {
	rects []pensool.Bounds
	full  bool
}

// Add marks b as needing repaint. Null bounds are ignored.
func (r *Region) Add(b pensool.Bounds) {
	if r.full || b.IsNull() {
		return
	}
	for _, existing := range r.rects {
		if existing.Contains(b) {
			return
		}
	}
	r.rects = append(r.rects, b)
	if len(r.rects) > MaxRects {
		r.full = true
		r.rects = r.rects[:0]
	}
}

// AddAll switches the region to full redraw.
func (r *Region) AddAll() {
	r.full = true
	r.rects = r.rects[:0]
}

// Rects returns the dirty rectangles, or nil in full redraw mode.
// The returned slice must not be modified.
func (r *Region) Rects() []pensool.Bounds {
	if r.full {
		return nil
	}
	return r.rects
}

// NeedsFullRedraw reports whether the whole canvas must be repainted.
func (r *Region) NeedsFullRedraw() bool {
	return r.full
}

// IsEmpty reports whether nothing needs repainting.
func (r *Region) IsEmpty() bool {
	return !r.full && len(r.rects) == 0
}

// Extent returns the union of the dirty rectangles.
func (r *Region) Extent() pensool.Bounds {
	u := pensool.NullBounds()
	for _, b := range r.rects {
		u = u.Union(b)
	}
	return u
}

// Clear resets the region after a repaint.
func (r *Region) Clear() {
	r.rects = r.rects[:0]
	r.full = false
}
