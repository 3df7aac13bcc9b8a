package scene

import (
	"math"

	"github.com/pensool/pensool"
	"github.com/pensool/pensool/render"
	"github.com/pensool/pensool/surface"
	"github.com/pensool/pensool/text"
)

// Kind identifies the shape of a glyph.
type Kind uint8

const (
	// KindPoint is a single pen touch at the origin.
	KindPoint Kind = iota

	// KindLine is the unit segment (0,0)-(1,0).
	KindLine

	// KindRect is the unit square at the origin.
	KindRect

	// KindCircle is the circle of unit diameter whose box is the unit square.
	KindCircle

	// KindText is a string laid out from the origin.
	KindText
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLine:
		return "Line"
	case KindRect:
		return "Rect"
	case KindCircle:
		return "Circle"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// DefaultFontSize is the font size of new text glyphs, in user units.
const DefaultFontSize = render.DefaultFontSize

// pointLength is the length of the segment drawn for a point. A square cap
// on a segment this short paints a pen-sized square.
const pointLength = 0.001

// Glyph is a unit shape owned by a primitive node.
type Glyph struct {
	Kind Kind

	// Text and FontSize apply to KindText only.
	Text     string
	FontSize float64
}

// putPath adds the glyph outline to ctx in the glyph's unit space. Text
// contributes its layout box.
func (g *Glyph) putPath(ctx render.Context, m *text.Measurer) {
	switch g.Kind {
	case KindPoint:
		ctx.SetLineCap(surface.LineCapSquare)
		ctx.MoveTo(0, 0)
		ctx.LineTo(pointLength, pointLength)
	case KindLine:
		ctx.MoveTo(0, 0)
		ctx.LineTo(1, 0)
	case KindRect:
		ctx.Rectangle(0, 0, 1, 1)
	case KindCircle:
		ctx.MoveTo(1, 0.5)
		ctx.Arc(0.5, 0.5, 0.5, 0, 2*math.Pi)
		ctx.ClosePath()
	case KindText:
		box := g.metrics(m).Box()
		ctx.Rectangle(box.X, box.Y, box.W, box.H)
	}
}

// metrics measures a text glyph.
func (g *Glyph) metrics(m *text.Measurer) text.Metrics {
	return m.Measure(g.Text, g.FontSize)
}

// showText paints a text glyph with its baseline at the glyph's ascent.
func (g *Glyph) showText(ctx render.Context, m *text.Measurer) {
	met := g.metrics(m)
	ctx.NewPath()
	ctx.MoveTo(0, met.Ascent)
	ctx.SetFontSize(g.FontSize)
	ctx.ShowText(g.Text)
	ctx.NewPath()
}

// orthogonal returns the outward unit vector of the drawn glyph at the
// device point p. drawn is the glyph's last drawn bounds and frame the
// transform from glyph units to device.
func (g *Glyph) orthogonal(p pensool.Vec2, drawn pensool.Bounds, frame pensool.Matrix, m *text.Measurer) pensool.Vec2 {
	switch g.Kind {
	case KindLine:
		return pensool.LineOrthogonal(
			frame.TransformPoint(pensool.V2(0, 0)),
			frame.TransformPoint(pensool.V2(1, 0)),
		)
	case KindRect:
		return boxOrthogonal(pensool.Rect{W: 1, H: 1}, frame, p, drawn)
	case KindText:
		return boxOrthogonal(g.metrics(m).Box(), frame, p, drawn)
	case KindCircle:
		o := pensool.CircleOrthogonal(drawn.Center(), p)
		if o.IsZero() {
			pensool.Logger().Debug("scene: circle orthogonal at center", "point", p)
		}
		return o
	default:
		return downward
	}
}

// boxOrthogonal picks the side of box, given in glyph units, by the
// diagonal quadrant of p in glyph space and returns that side's outward
// normal in device space. The quadrants follow the box through rotation
// and skew. A singular frame falls back to the drawn bounds.
func boxOrthogonal(box pensool.Rect, frame pensool.Matrix, p pensool.Vec2, drawn pensool.Bounds) pensool.Vec2 {
	inv, err := frame.Inverse()
	if err != nil {
		pensool.Logger().Debug("scene: singular frame, using drawn box", "err", err)
		return pensool.RectOrthogonal(drawn.Rect(), p)
	}
	n := pensool.RectOrthogonal(box, inv.TransformPoint(p))

	// Normals do not map through a skewing frame; the side does.
	side := frame.TransformDistance(n.Orthogonal(pensool.Right))
	out := side.Orthogonal(pensool.Right).Normalize()
	if out.Dot(frame.TransformDistance(n)) < 0 {
		out = out.Neg()
	}
	return out
}

// downward is the orthogonal of shapes without an edge direction.
var downward = pensool.V2(0, 1)
