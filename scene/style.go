package scene

import (
	"github.com/pensool/pensool"
	"github.com/pensool/pensool/render"
)

// DefaultPenWidth is the pen width of new nodes, in device pixels.
const DefaultPenWidth = 1

// Style is the paint state a node applies to its subtree.
type Style struct {
	// PenWidth is the stroke width in device pixels.
	PenWidth float64

	// Color is the paint color.
	Color pensool.RGBA

	// Filled selects fill instead of stroke for primitives.
	Filled bool

	// Previous holds the color replaced by a highlight, nil otherwise.
	Previous *pensool.RGBA
}

// DefaultStyle returns a black, unfilled style with the default pen.
func DefaultStyle() Style {
	return Style{PenWidth: DefaultPenWidth, Color: pensool.Black}
}

// IsHighlighted reports whether a highlight is in effect.
func (s Style) IsHighlighted() bool {
	return s.Previous != nil
}

// highlight switches to the highlight color, or back to the saved color.
// Turning off a highlight that was never turned on leaves the color alone,
// as happens when a node joins an already highlighted group.
func (s *Style) highlight(on bool) {
	if on {
		if s.Previous == nil {
			prev := s.Color
			s.Previous = &prev
		}
		s.Color = pensool.Highlight
		return
	}
	if s.Previous != nil {
		s.Color = *s.Previous
		s.Previous = nil
	}
}

func (s Style) applyTo(ctx render.Context) {
	ctx.SetLineWidth(s.PenWidth)
	ctx.SetColor(s.Color)
}

// SetStyle replaces the node's style.
func (n *Node) SetStyle(s Style) {
	n.Alter(func() {
		n.st.Style = s
	})
}

// SetPenWidth sets the pen width in device pixels.
func (n *Node) SetPenWidth(w float64) {
	n.Alter(func() {
		n.st.Style.PenWidth = w
	})
}

// SetColor sets the paint color.
func (n *Node) SetColor(c pensool.RGBA) {
	n.Alter(func() {
		n.st.Style.Color = c
	})
}

// SetFilled selects fill or stroke for the node's primitives.
func (n *Node) SetFilled(filled bool) {
	n.Alter(func() {
		n.st.Style.Filled = filled
	})
}

// Highlight paints the subtree in the highlight color, or restores the
// colors it had before.
func (n *Node) Highlight(on bool) {
	n.Alter(func() {
		n.highlightTree(on)
	})
}

func (n *Node) highlightTree(on bool) {
	n.st.Style.highlight(on)
	for _, c := range n.children {
		c.highlightTree(on)
	}
}

// SetText replaces the string of a text primitive. It is a no-op for other
// nodes.
func (n *Node) SetText(s string) {
	g := n.st.Glyph
	if g == nil || g.Kind != KindText {
		return
	}
	n.Alter(func() {
		g.Text = s
	})
}
