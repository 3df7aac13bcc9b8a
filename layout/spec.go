package layout

import (
	"math"

	"github.com/pensool/pensool"
	"github.com/pensool/pensool/scene"
)

// Defaults of handle layout, in device pixels.
const (
	// DefaultItemSize is the side of a handle menu item.
	DefaultItemSize = 20

	// DefaultOffAxisPixels is how far ahead of the hotspot Slide searches
	// for the controlee's edge.
	DefaultOffAxisPixels = 2

	// DefaultOpeningIndex is the item a handle menu opens on.
	DefaultOpeningIndex = 1
)

// hitRows are the offsets across the slide direction sampled by Slide, in
// the order they are tried.
var hitRows = [...]float64{-2, -1, 0, 1, 2}

// Controlee is what a handle menu is laid out against.
type Controlee interface {
	// Orthogonal returns the outward unit normal at the device point p.
	Orthogonal(p pensool.Vec2) pensool.Vec2

	// HitTest reports whether the device point p hits the controlee.
	HitTest(flavor scene.HitFlavor, p pensool.Vec2) bool
}

// Spec describes where a linear group of handles is anchored. All points
// are in device space.
type Spec struct {
	// Hotspot is the point on the controlee's edge the group tracks.
	Hotspot pensool.Vec2

	// Benchmark is the center of item 0.
	Benchmark pensool.Vec2

	// Axis is the unit vector items are laid out along, outward from the
	// controlee.
	Axis pensool.Vec2

	// OpeningIndex is the item centered on the hotspot.
	OpeningIndex int

	// ItemSize is the spacing unit of the group; consecutive items are
	// half an item apart.
	ItemSize float64
}

// NewSpec lays out a group opened at hotspot on c, with the default item
// size and opening index. A nil controlee (the background) or a degenerate
// normal orients the group downward.
func NewSpec(c Controlee, hotspot pensool.Vec2) Spec {
	return newSpec(c, hotspot, DefaultItemSize, DefaultOpeningIndex)
}

func newSpec(c Controlee, hotspot pensool.Vec2, itemSize float64, opening int) Spec {
	s := Spec{
		Hotspot:      hotspot,
		OpeningIndex: opening,
		ItemSize:     itemSize,
	}
	s.Axis = axisAt(c, hotspot)
	s.Benchmark = s.benchmarkFor(hotspot)
	return s
}

func axisAt(c Controlee, p pensool.Vec2) pensool.Vec2 {
	if c == nil {
		return pensool.Downward
	}
	axis := c.Orthogonal(p)
	if axis.IsZero() {
		pensool.Logger().Debug("layout: no orientation at hotspot, using downward", "hotspot", p)
		return pensool.Downward
	}
	return axis
}

// benchmarkFor returns the benchmark that centers the opening item on
// hotspot.
func (s Spec) benchmarkFor(hotspot pensool.Vec2) pensool.Vec2 {
	return hotspot.Sub(s.Axis.Mul(s.ItemSize / 2 * float64(s.OpeningIndex)))
}

// Layout returns the device centers of n items: item i sits i half-items
// from the benchmark along the axis.
func (s Spec) Layout(n int) []pensool.Vec2 {
	centers := make([]pensool.Vec2, n)
	for i := range centers {
		centers[i] = s.Benchmark.Add(s.Axis.Mul(s.ItemSize / 2 * float64(i)))
	}
	return centers
}

// Shift moves the benchmark across the axis by |pixels|, to the side given
// by the sign of pixels, without following the controlee. The hotspot is
// unchanged.
func (s *Spec) Shift(pixels float64) {
	side := s.Axis.Orthogonal(pensool.HandednessOf(pixels))
	s.Benchmark = s.Benchmark.Add(side.Mul(math.Abs(pixels)))
}

// SlideTransform returns the transform taking the hit pattern to device
// space: the pattern's x axis turned toward the slide side, with its
// origin at the hotspot.
func (s Spec) SlideTransform(pixels float64) pensool.Matrix {
	side := s.Axis.Orthogonal(pensool.HandednessOf(pixels))
	return pensool.Translate(s.Hotspot.X, s.Hotspot.Y).Multiply(pensool.Rotate(side.Angle()))
}

// Slide follows the controlee's edge toward the side given by the sign of
// pixels. It probes a short line of points DefaultOffAxisPixels ahead of
// the hotspot and re-anchors on the first that hits c's path: the hotspot
// moves there, the axis becomes the normal at it and the benchmark follows.
// When nothing hits, s is unchanged and Slide returns false.
//
// The search is local, so a pointer moving fast along a tight curve can
// leave the edge behind between two events.
func (s *Spec) Slide(c Controlee, pixels float64) bool {
	return s.slide(c, pixels, DefaultOffAxisPixels)
}

func (s *Spec) slide(c Controlee, pixels, ahead float64) bool {
	spot, ok := s.findHotspot(c, pixels, ahead)
	if !ok {
		pensool.Logger().Debug("layout: slide found no edge", "hotspot", s.Hotspot, "pixels", pixels)
		return false
	}
	s.Hotspot = spot
	s.Axis = axisAt(c, spot)
	s.Benchmark = s.benchmarkFor(spot)
	return true
}

func (s Spec) findHotspot(c Controlee, pixels, ahead float64) (pensool.Vec2, bool) {
	m := s.SlideTransform(pixels)
	for _, row := range hitRows {
		p := m.TransformPoint(pensool.V2(ahead, row))
		if c.HitTest(scene.HitPath, p) {
			return p, true
		}
	}
	return pensool.Vec2{}, false
}
