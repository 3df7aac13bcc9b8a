// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"testing"

	"github.com/pensool/pensool"
)

var red = color.RGBA{255, 0, 0, 255}

func isRed(c color.RGBA) bool   { return c.R > 200 && c.G < 60 && c.B < 60 }
func isWhite(c color.RGBA) bool { return c.R == 255 && c.G == 255 && c.B == 255 }

func TestNewImageSurfaceInvalidSize(t *testing.T) {
	s := NewImageSurface(0, -3)
	defer s.Close()

	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("expected 1x1, got %dx%d", s.Width(), s.Height())
	}
}

func TestImageSurfaceClear(t *testing.T) {
	s := NewImageSurface(10, 10)
	defer s.Close()

	s.Clear(red)
	if c := s.Snapshot().RGBAAt(5, 5); c != red {
		t.Errorf("pixel = %v, want %v", c, red)
	}
}

func TestImageSurfaceFillRectangle(t *testing.T) {
	s := NewImageSurface(100, 100)
	defer s.Close()
	s.Clear(color.White)

	p := pensool.NewPath()
	p.Rectangle(25, 25, 50, 50)
	s.Fill(p, FillStyle{Color: red})

	img := s.Snapshot()
	if c := img.RGBAAt(10, 10); !isWhite(c) {
		t.Errorf("outside pixel = %v, want white", c)
	}
	if c := img.RGBAAt(50, 50); !isRed(c) {
		t.Errorf("inside pixel = %v, want red", c)
	}
}

func TestImageSurfaceStroke(t *testing.T) {
	s := NewImageSurface(100, 100)
	defer s.Close()
	s.Clear(color.White)

	p := pensool.NewPath()
	p.MoveTo(10, 50)
	p.LineTo(90, 50)
	s.Stroke(p, DefaultStrokeStyle().WithColor(red).WithWidth(4))

	img := s.Snapshot()
	if c := img.RGBAAt(50, 49); !isRed(c) {
		t.Errorf("pixel on the line = %v, want red", c)
	}
	if c := img.RGBAAt(50, 45); !isWhite(c) {
		t.Errorf("pixel beside the line = %v, want white", c)
	}
	if c := img.RGBAAt(5, 49); !isWhite(c) {
		t.Errorf("pixel past butt cap = %v, want white", c)
	}
}

func TestImageSurfaceStrokeSquareCap(t *testing.T) {
	s := NewImageSurface(100, 100)
	defer s.Close()
	s.Clear(color.White)

	p := pensool.NewPath()
	p.MoveTo(20, 50)
	p.LineTo(80, 50)
	s.Stroke(p, StrokeStyle{Color: red, Width: 8, Cap: LineCapSquare})

	if c := s.Snapshot().RGBAAt(17, 50); !isRed(c) {
		t.Errorf("pixel inside square cap = %v, want red", c)
	}
}

func TestImageSurfaceStrokeZeroWidth(t *testing.T) {
	s := NewImageSurface(20, 20)
	defer s.Close()
	s.Clear(color.White)

	p := pensool.NewPath()
	p.Rectangle(2, 2, 10, 10)
	s.Stroke(p, StrokeStyle{Color: red})

	if c := s.Snapshot().RGBAAt(2, 2); !isWhite(c) {
		t.Errorf("zero-width stroke painted %v", c)
	}
}

func TestImageSurfaceDrawText(t *testing.T) {
	s := NewImageSurface(120, 40)
	defer s.Close()
	s.Clear(color.White)

	s.DrawText("Hello", pensool.V2(10, 30), TextStyle{Color: color.Black, Size: 20})

	img := s.Snapshot()
	if !anyInk(img, image.Rect(10, 10, 90, 32)) {
		t.Error("DrawText left the text area blank")
	}
	if anyInk(img, image.Rect(100, 0, 120, 40)) {
		t.Error("DrawText painted far right of the string")
	}
}

func TestImageSurfaceClosed(t *testing.T) {
	s := NewImageSurface(10, 10)
	s.Clear(color.White)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	s.Clear(red)
	if c := s.Snapshot().RGBAAt(5, 5); !isWhite(c) {
		t.Errorf("Clear after Close changed pixel to %v", c)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := NewImageSurface(4, 4)
	defer s.Close()
	snap := s.Snapshot()
	snap.SetRGBA(1, 1, red)
	if c := s.Image().RGBAAt(1, 1); c == red {
		t.Error("modifying the snapshot changed the surface")
	}
}

func anyInk(img *image.RGBA, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !isWhite(img.RGBAAt(x, y)) {
				return true
			}
		}
	}
	return false
}

func TestImageSurfaceClip(t *testing.T) {
	s := NewImageSurface(100, 100)
	defer s.Close()
	s.Clear(color.White)

	var _ Clipper = s
	s.SetClip(image.Rect(0, 0, 50, 100))
	p := pensool.NewPath()
	p.Rectangle(10, 10, 80, 80)
	s.Fill(p, FillStyle{Color: red})

	img := s.Snapshot()
	if c := img.RGBAAt(30, 50); !isRed(c) {
		t.Errorf("pixel inside clip = %v, want red", c)
	}
	if c := img.RGBAAt(70, 50); !isWhite(c) {
		t.Errorf("pixel outside clip = %v, want white", c)
	}

	s.SetClip(image.Rectangle{})
	s.Fill(p, FillStyle{Color: red})
	if c := s.Snapshot().RGBAAt(70, 50); !isRed(c) {
		t.Errorf("pixel after clip removed = %v, want red", c)
	}
}
