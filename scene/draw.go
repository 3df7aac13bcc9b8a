package scene

import (
	"github.com/pensool/pensool"
	"github.com/pensool/pensool/render"
)

// HitFlavor selects what HitTest tests against.
type HitFlavor uint8

const (
	// HitPath tests the ideal outline with a one-pixel pen.
	HitPath HitFlavor = iota

	// HitStroke tests the inked outline with the node's own pen.
	HitStroke

	// HitFill tests the interior.
	HitFill
)

// String returns the flavor name.
func (f HitFlavor) String() string {
	switch f {
	case HitPath:
		return "Path"
	case HitStroke:
		return "Stroke"
	case HitFill:
		return "Fill"
	default:
		return "Unknown"
	}
}

// Draw paints the subtree into ctx and returns the device bounds painted,
// which become the node's cached bounds. ctx carries the transforms and
// style of the node's ancestors; Draw applies the node's own and restores
// ctx before returning. An empty group draws null bounds.
func (n *Node) Draw(ctx render.Context) pensool.Bounds {
	return n.walk(ctx, true)
}

// walk draws (paint) or measures the subtree. Both record retained
// transforms; only drawing updates the bounds caches.
func (n *Node) walk(ctx render.Context, paint bool) pensool.Bounds {
	m := n.ApplyTo(ctx)
	defer ctx.Restore()
	if paint {
		n.retain(m)
	}

	var b pensool.Bounds
	if g := n.st.Glyph; g != nil {
		b = n.paintGlyph(ctx, g, paint)
	} else {
		for _, c := range n.children {
			b = b.Union(c.walk(ctx, paint))
		}
	}
	if paint {
		n.st.Bounds = b
	}
	return b
}

// paintGlyph computes the glyph's inked device bounds and, when paint is
// set, fills, strokes or shows it.
func (n *Node) paintGlyph(ctx render.Context, g *Glyph, paint bool) pensool.Bounds {
	m := n.measurer()
	ctx.NewPath()
	g.putPath(ctx, m)
	ctx.SetLineWidth(n.st.Style.PenWidth)
	b := render.DeviceBounds(ctx)
	switch {
	case !paint:
		ctx.NewPath()
	case g.Kind == KindText:
		g.showText(ctx, m)
	case n.st.Style.Filled:
		ctx.Fill()
	default:
		ctx.Stroke()
	}
	return b
}

// putPath adds the subtree's outline to ctx, transformed, without painting.
func (n *Node) putPath(ctx render.Context) {
	n.ApplyTo(ctx)
	defer ctx.Restore()
	if g := n.st.Glyph; g != nil {
		g.putPath(ctx, n.measurer())
		return
	}
	for _, c := range n.children {
		c.putPath(ctx)
	}
}

// freshContext returns a new context set up with the parent's accumulated
// transform and style, for queries made outside a walk.
func (n *Node) freshContext() render.Context {
	ctx := n.contextFactory()()
	if n.parent != nil {
		n.parent.st.Style.applyTo(ctx)
	}
	ctx.SetMatrix(n.parentTransform())
	return ctx
}

// InvalidateAsDrawn requests a repaint of the bounds cached by the last
// draw and returns them.
func (n *Node) InvalidateAsDrawn() pensool.Bounds {
	b := n.st.Bounds
	n.sink().Invalidate(b)
	return b
}

// InvalidateWillDraw computes the bounds the subtree will paint at its
// current geometry, requests a repaint of them and returns them.
func (n *Node) InvalidateWillDraw() pensool.Bounds {
	b := n.walk(n.freshContext(), false)
	n.sink().Invalidate(b)
	return b
}

// GetBounds returns the union of the children's cached bounds, or the
// node's own for a primitive.
func (n *Node) GetBounds() pensool.Bounds {
	if n.IsPrimitive() {
		return n.st.Bounds
	}
	var b pensool.Bounds
	for _, c := range n.children {
		b = b.Union(c.GetBounds())
	}
	return b
}

// HitTest reports whether the device point p hits the node. It works
// outside a walk, from the parent's accumulated transform.
func (n *Node) HitTest(flavor HitFlavor, p pensool.Vec2) bool {
	ctx := n.freshContext()
	n.putPath(ctx)
	user := ctx.DeviceToUser(p)
	switch flavor {
	case HitPath:
		ctx.SetLineWidth(1)
		return ctx.InStroke(user)
	case HitStroke:
		ctx.SetLineWidth(n.st.Style.PenWidth)
		return ctx.InStroke(user)
	default:
		return ctx.InFill(user)
	}
}

// Pick returns the primitive hit by the device point p, or nil. ctx carries
// the ancestors' transforms, as in Draw.
//
// Primitives are hit within half the pick pen width of their outline,
// independently of their style; text is hit inside its layout box. Groups
// try their children in child-list order and the first hit wins, so when
// siblings overlap the one appended first is picked. See View.PickTopmost
// for the reverse order.
//
// Pick panics with a *pensool.TreeInvariantError when n's parent has never
// been walked.
func (n *Node) Pick(ctx render.Context, p pensool.Vec2) *Node {
	n.checkWalked("Pick")
	return n.pick(ctx, p, false)
}

func (n *Node) checkWalked(op string) {
	if n.parent != nil && !n.parent.retained.valid {
		pensool.PanicTreeInvariant(op, "parent has never been drawn or picked")
	}
}

func (n *Node) pick(ctx render.Context, p pensool.Vec2, topmost bool) *Node {
	n.retain(n.ApplyTo(ctx))
	defer ctx.Restore()

	if g := n.st.Glyph; g != nil {
		ctx.NewPath()
		g.putPath(ctx, n.measurer())
		user := ctx.DeviceToUser(p)
		var hit bool
		if g.Kind == KindText {
			hit = ctx.InFill(user)
		} else {
			ctx.SetLineWidth(n.pickPenWidth())
			hit = ctx.InStroke(user)
		}
		ctx.NewPath()
		if hit {
			return n
		}
		return nil
	}

	for i := range n.children {
		c := n.children[i]
		if topmost {
			c = n.children[len(n.children)-1-i]
		}
		if hit := c.pick(ctx, p, topmost); hit != nil {
			return hit
		}
	}
	return nil
}

// Orthogonal returns the outward unit vector of the drawn node at the
// device point p. A group with several children uses its bounding box, a
// group with one child defers to it, and an empty group points down.
func (n *Node) Orthogonal(p pensool.Vec2) pensool.Vec2 {
	if g := n.st.Glyph; g != nil {
		return g.orthogonal(p, n.st.Bounds, n.Accumulated(), n.measurer())
	}
	switch len(n.children) {
	case 0:
		return downward
	case 1:
		return n.children[0].Orthogonal(p)
	default:
		return pensool.RectOrthogonal(n.GetBounds().Rect(), p)
	}
}
