package scene

import (
	"math"

	"github.com/pensool/pensool"
)

// HandlePenWidth is the pen width of handle points, wider than ordinary
// strokes so they are easy to grab.
const HandlePenWidth = 3

// NewHandlePoint creates a point primitive drawn with the handle pen.
func NewHandlePoint() *Node {
	n := NewPoint()
	n.st.Style.PenWidth = HandlePenWidth
	return n
}

// NewLineHandles creates the handle set of a line: a handle point at each
// end of the unit segment.
func NewLineHandles() *Node {
	set := NewGroup()
	set.Append(NewHandlePoint())
	far := NewHandlePoint()
	far.st.Translation = pensool.V2(1, 0)
	far.deriveTransform()
	set.Append(far)
	return set
}

// NewCircleHandles creates the handle set of a circle: a diagonal line
// across its box.
func NewCircleHandles() *Node {
	set := NewGroup()
	diag := NewLine()
	diag.st.Rotation = math.Pi / 4
	diag.deriveTransform()
	set.Append(diag)
	return set
}

// HandlesFor returns a new handle set for n, or nil when its kind has none.
// Handle sets are not part of the tree; they are drawn and picked in n's
// accumulated transform.
func HandlesFor(n *Node) *Node {
	k, ok := n.Kind()
	if !ok {
		return nil
	}
	switch k {
	case KindLine:
		return NewLineHandles()
	case KindCircle:
		return NewCircleHandles()
	default:
		return nil
	}
}

// WantsBoundingBox reports whether focusing n shows a bounding box ghost:
// lines, circles and groups of more than one child do.
func WantsBoundingBox(n *Node) bool {
	k, ok := n.Kind()
	if !ok {
		return n.Len() > 1
	}
	return k == KindLine || k == KindCircle
}

// ActivateAssociatedControls shows or hides n's associated controls through
// the view's Controls, if any.
func (n *Node) ActivateAssociatedControls(on bool) {
	v := n.View()
	if v == nil || v.controls == nil {
		return
	}
	v.controls.RouseFeedback(n, on)
}
