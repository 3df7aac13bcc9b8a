// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image/color"

	ipath "github.com/pensool/pensool/internal/path"
)

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap (no extension).
	LineCapButt LineCap = iota

	// LineCapRound specifies a semicircular line cap.
	LineCapRound

	// LineCapSquare specifies a square line cap (extends by half width).
	LineCapSquare
)

// String returns the cap name.
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// geometry maps the cap onto the stroke geometry helpers.
func (c LineCap) geometry() ipath.Cap {
	switch c {
	case LineCapRound:
		return ipath.CapRound
	case LineCapSquare:
		return ipath.CapSquare
	default:
		return ipath.CapButt
	}
}

// FillStyle defines how to fill a path.
type FillStyle struct {
	Color color.Color
}

// StrokeStyle defines how to stroke a path. Joins are always round.
type StrokeStyle struct {
	// Color is the stroke color.
	Color color.Color

	// Width is the line width in device pixels.
	Width float64

	// Cap is the line cap style.
	Cap LineCap
}

// DefaultStrokeStyle returns a black 1px butt-capped style.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Color: color.Black,
		Width: 1.0,
		Cap:   LineCapButt,
	}
}

// WithColor returns a copy with the specified color.
func (s StrokeStyle) WithColor(c color.Color) StrokeStyle {
	s.Color = c
	return s
}

// WithWidth returns a copy with the specified width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// WithCap returns a copy with the specified cap style.
func (s StrokeStyle) WithCap(lineCap LineCap) StrokeStyle {
	s.Cap = lineCap
	return s
}

// TextStyle defines how to draw text.
type TextStyle struct {
	Color color.Color

	// Size is the font size in device pixels.
	Size float64
}

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Background is the initial color. Nil leaves the surface transparent.
	Background color.Color
}
