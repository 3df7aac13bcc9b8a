// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/pensool/pensool"
	ipath "github.com/pensool/pensool/internal/path"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Coverage is computed by a vector.Rasterizer into an alpha mask; the
// rasterizer accumulates signed area, so fills follow the non-zero rule.
// Strokes are rasterized as the union of their outline polygons.
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	raster *vector.Rasterizer
	mask   *image.Alpha

	// clip restricts painting; it always lies within the image bounds.
	clip image.Rectangle

	// faces caches text faces by size in 1/64 pixels.
	faces map[fixed.Int26_6]font.Face

	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &ImageSurface{
		width:  width,
		height: height,
		img:    img,
		raster: vector.NewRasterizer(width, height),
		mask:   image.NewAlpha(img.Bounds()),
		clip:   img.Bounds(),
		faces:  make(map[fixed.Int26_6]font.Face),
	}
}

// NewImageSurfaceFromImage creates a surface that renders into img directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	b := img.Bounds()
	return &ImageSurface{
		width:  b.Dx(),
		height: b.Dy(),
		img:    img,
		raster: vector.NewRasterizer(b.Dx(), b.Dy()),
		mask:   image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy())),
		clip:   b,
		faces:  make(map[fixed.Int26_6]font.Face),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.clip, image.NewUniform(c), image.Point{}, draw.Src)
}

// SetClip limits subsequent painting to r. An empty r removes the clip.
func (s *ImageSurface) SetClip(r image.Rectangle) {
	if r.Empty() {
		s.clip = s.img.Bounds()
		return
	}
	s.clip = r.Intersect(s.img.Bounds())
}

// Fill fills the given path using the specified style.
func (s *ImageSurface) Fill(path *pensool.Path, style FillStyle) {
	if s.closed || path == nil || path.IsEmpty() {
		return
	}

	s.raster.Reset(s.width, s.height)
	drawn := false
	for _, line := range ipath.Flatten(path, ipath.Tolerance) {
		if len(line.Points) < 3 {
			continue
		}
		s.addPolygon(line.Points)
		drawn = true
	}
	if drawn {
		s.paint(style.Color)
	}
}

// Stroke strokes the given path using the specified style.
func (s *ImageSurface) Stroke(path *pensool.Path, style StrokeStyle) {
	if s.closed || path == nil || path.IsEmpty() || style.Width <= 0 {
		return
	}

	lines := ipath.Flatten(path, ipath.Tolerance)
	polys := ipath.Outline(lines, ipath.Stroke{Width: style.Width, Cap: style.Cap.geometry()})
	if len(polys) == 0 {
		return
	}

	s.raster.Reset(s.width, s.height)
	for _, poly := range polys {
		s.addPolygon(poly)
	}
	s.paint(style.Color)
}

// DrawText draws s with its baseline origin at the device point at.
func (s *ImageSurface) DrawText(str string, at pensool.Vec2, style TextStyle) {
	if s.closed || str == "" || style.Size <= 0 {
		return
	}
	face, err := s.face(style.Size)
	if err != nil {
		pensool.Logger().Warn("surface: text face unavailable", "size", style.Size, "err", err)
		return
	}

	dst, ok := s.img.SubImage(s.clip).(*image.RGBA)
	if !ok || dst.Bounds().Empty() {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(colorOrBlack(style.Color)),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(at.X), Y: toFixed(at.Y)},
	}
	d.DrawString(str)
}

// Flush is a no-op for the CPU surface.
func (s *ImageSurface) Flush() error {
	return nil
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// Image returns the backing image without copying.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Close releases the cached font faces.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	for _, f := range s.faces {
		_ = f.Close()
	}
	s.faces = nil
	return nil
}

func (s *ImageSurface) addPolygon(pts []pensool.Vec2) {
	s.raster.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		s.raster.LineTo(float32(p.X), float32(p.Y))
	}
	s.raster.ClosePath()
}

// paint rasterizes the accumulated polygons into the coverage mask, then
// composites c through the mask inside the clip.
func (s *ImageSurface) paint(c color.Color) {
	if s.clip.Empty() {
		return
	}
	clear(s.mask.Pix)
	s.raster.Draw(s.mask, s.mask.Bounds(), image.Opaque, image.Point{})

	origin := s.img.Bounds().Min
	draw.DrawMask(s.img, s.clip, image.NewUniform(colorOrBlack(c)), image.Point{},
		s.mask, s.clip.Min.Sub(origin), draw.Over)
}

func (s *ImageSurface) face(size float64) (font.Face, error) {
	key := toFixed(size)
	if f, ok := s.faces[key]; ok {
		return f, nil
	}
	ft, err := regularFont()
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	s.faces[key] = f
	return f, nil
}

// regularFont parses the embedded Go Regular font once.
var regularFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func colorOrBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}
