package scene

import (
	"github.com/pensool/pensool"
	"github.com/pensool/pensool/render"
)

// Translation returns the node's translation in its parent's space.
func (n *Node) Translation() pensool.Vec2 {
	return n.st.Translation
}

// Scale returns the node's per-axis scale.
func (n *Node) Scale() pensool.Vec2 {
	return n.st.Scale
}

// Rotation returns the node's rotation in radians.
func (n *Node) Rotation() float64 {
	return n.st.Rotation
}

// Transform returns the node's own transform, T·S·R.
func (n *Node) Transform() pensool.Matrix {
	return n.st.Transform
}

func (n *Node) deriveTransform() {
	n.st.Transform = pensool.Derive(n.st.Translation, n.st.Scale, n.st.Rotation)
}

// ApplyTo saves ctx, applies the node's transform and style, and returns
// the resulting matrix. The caller must Restore ctx.
func (n *Node) ApplyTo(ctx render.Context) pensool.Matrix {
	ctx.Save()
	ctx.Transform(n.st.Transform)
	n.st.Style.applyTo(ctx)
	return ctx.Matrix()
}

// retain caches m as the node's accumulated transform for this epoch.
func (n *Node) retain(m pensool.Matrix) {
	n.retained = retained{matrix: m, epoch: n.Root().epoch, valid: true}
}

// RetainedTransform returns the accumulated transform cached by the last
// walk and whether it is still current. It is stale once any transform in
// the tree has changed since the walk.
func (n *Node) RetainedTransform() (pensool.Matrix, bool) {
	r := n.retained
	if !r.valid {
		return pensool.Identity(), false
	}
	return r.matrix, r.epoch == n.Root().epoch
}

// Accumulated returns the transform from n's unit space to device space.
// A current retained transform is used as is; otherwise the product is
// rebuilt from the parent chain.
func (n *Node) Accumulated() pensool.Matrix {
	if m, ok := n.RetainedTransform(); ok {
		return m
	}
	if n.retained.valid {
		pensool.Logger().Debug("scene: stale retained transform, rebuilding", "node", n.id)
	}
	m := n.st.Transform
	for p := n.parent; p != nil; p = p.parent {
		m = p.st.Transform.Multiply(m)
	}
	return m
}

// parentTransform returns the transform from the parent's unit space to
// device space, identity at the root.
func (n *Node) parentTransform() pensool.Matrix {
	if n.parent == nil {
		return pensool.Identity()
	}
	return n.parent.Accumulated()
}

// localFrame is the transform DeviceToLocal inverts: the parent's
// accumulated transform, or at the root the node's own transform.
func (n *Node) localFrame() pensool.Matrix {
	if n.parent == nil {
		return n.st.Transform
	}
	return n.parent.Accumulated()
}

// DeviceToLocal maps a device point into the coordinate system the node's
// translation is expressed in. A singular frame maps through the identity.
func (n *Node) DeviceToLocal(p pensool.Vec2) pensool.Vec2 {
	inv, err := n.localFrame().Inverse()
	if err != nil {
		pensool.Logger().Warn("scene: device to local through singular transform", "node", n.id, "err", err)
	}
	return inv.TransformPoint(p)
}

// DeviceToLocalDistance maps a device displacement like DeviceToLocal,
// ignoring translation.
func (n *Node) DeviceToLocalDistance(d pensool.Vec2) pensool.Vec2 {
	inv, err := n.localFrame().Inverse()
	if err != nil {
		pensool.Logger().Warn("scene: device to local through singular transform", "node", n.id, "err", err)
	}
	return inv.TransformDistance(d)
}

// Alter runs fn as a view-altering operation: the node's last drawn bounds
// are invalidated before fn, the transform is re-derived after it, and the
// bounds it will be drawn at are invalidated last.
func (n *Node) Alter(fn func()) {
	n.InvalidateAsDrawn()
	fn()
	n.deriveTransform()
	n.Root().epoch++
	n.InvalidateWillDraw()
}

// SetTransform replaces translation, scale and rotation.
func (n *Node) SetTransform(translation, scale pensool.Vec2, rotation float64) {
	n.Alter(func() {
		n.st.Translation = translation
		n.st.Scale = scale
		n.st.Rotation = rotation
	})
}

// MoveRelative translates the node by offset, in local units.
func (n *Node) MoveRelative(offset pensool.Vec2) {
	n.Alter(func() {
		n.st.Translation = n.st.Translation.Add(offset)
	})
}

// MoveAbsolute sets the translation to p, in local units.
func (n *Node) MoveAbsolute(p pensool.Vec2) {
	n.Alter(func() {
		n.st.Translation = p
	})
}

// MoveByDrag translates the node by a device displacement.
func (n *Node) MoveByDrag(increment pensool.Vec2) {
	n.MoveRelative(n.DeviceToLocalDistance(increment))
}

// ScaleUniformly multiplies both scale factors by k.
func (n *Node) ScaleUniformly(k float64) {
	n.Alter(func() {
		n.st.Scale = n.st.Scale.Mul(k)
	})
}

// ScaleRelative multiplies the scale factors by kx and ky.
func (n *Node) ScaleRelative(kx, ky float64) {
	n.Alter(func() {
		n.st.Scale = pensool.V2(n.st.Scale.X*kx, n.st.Scale.Y*ky)
	})
}

// Rotate adds angle radians to the rotation.
func (n *Node) Rotate(angle float64) {
	n.Alter(func() {
		n.st.Rotation += angle
	})
}

// SetFromRect fits the unit shape to the axis-aligned box (x, y, w, h):
// translation (x, y), scale (w, h), no rotation.
func (n *Node) SetFromRect(x, y, w, h float64) {
	n.SetTransform(pensool.V2(x, y), pensool.V2(w, h), 0)
}

// SetByDrag places the unit shape along a drag between two device points:
// it starts at start, is scaled uniformly by the drag length and rotated
// to the drag angle.
func (n *Node) SetByDrag(start, end pensool.Vec2) {
	from := n.DeviceToLocal(start)
	drag := n.DeviceToLocal(end).Sub(from)
	l := drag.Length()
	n.SetTransform(from, pensool.V2(l, l), drag.Angle())
}

// MoveByDragHandle stretches and turns the node as if the far end of its
// unit x-axis were dragged by the device displacement increment.
func (n *Node) MoveByDragHandle(increment pensool.Vec2) {
	// Work in the node's rotated frame, where the handle lies on the x-axis.
	drag := n.DeviceToLocalDistance(increment).Rotate(-n.st.Rotation)
	v := pensool.V2(n.st.Scale.X, 0).Add(drag)
	l := v.Length()
	n.SetTransform(n.st.Translation, pensool.V2(l, l), n.st.Rotation+v.Angle())
}
