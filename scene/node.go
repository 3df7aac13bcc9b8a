package scene

import (
	"slices"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/pensool/pensool"
)

// state is the part of a node that is copied by Clone. Fields are
// exported for copier.
type state struct {
	Translation pensool.Vec2
	Scale       pensool.Vec2
	Rotation    float64

	// Transform is derived from Translation, Scale and Rotation.
	Transform pensool.Matrix

	Style Style

	// Glyph is non-nil exactly for primitives.
	Glyph *Glyph

	// Bounds caches the device bounds of the last draw.
	Bounds pensool.Bounds
}

// retained is the accumulated transform cached by a walk.
type retained struct {
	matrix pensool.Matrix
	epoch  uint64
	valid  bool
}

// Node is a scene-graph node: a group of child nodes or a primitive owning
// one glyph.
//
// The parent pointer is a non-owning back reference; a node is owned by the
// child list of its parent only.
type Node struct {
	id uuid.UUID
	st state

	parent   *Node
	children []*Node

	retained retained

	// epoch and view are used on the root of a tree only.
	epoch uint64
	view  *View
}

func newNode(g *Glyph) *Node {
	n := &Node{
		id: uuid.New(),
		st: state{
			Scale: pensool.V2(1, 1),
			Style: DefaultStyle(),
			Glyph: g,
		},
	}
	n.deriveTransform()
	return n
}

// NewGroup creates an empty group.
func NewGroup() *Node {
	return newNode(nil)
}

// NewPoint creates a point primitive.
func NewPoint() *Node {
	return newNode(&Glyph{Kind: KindPoint})
}

// NewLine creates a unit line primitive.
func NewLine() *Node {
	return newNode(&Glyph{Kind: KindLine})
}

// NewRect creates a unit rectangle primitive.
func NewRect() *Node {
	return newNode(&Glyph{Kind: KindRect})
}

// NewCircle creates a unit circle primitive.
func NewCircle() *Node {
	return newNode(&Glyph{Kind: KindCircle})
}

// NewText creates a text primitive. A non-positive size selects
// DefaultFontSize.
func NewText(s string, size float64) *Node {
	if size <= 0 {
		size = DefaultFontSize
	}
	return newNode(&Glyph{Kind: KindText, Text: s, FontSize: size})
}

// ID returns the node's identity. Clones get fresh identities.
func (n *Node) ID() uuid.UUID {
	return n.id
}

// String returns the node's kind, or "Group", and the first block of its
// identity.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	kind := "Group"
	if g := n.st.Glyph; g != nil {
		kind = g.Kind.String()
	}
	return kind + "#" + n.id.String()[:8]
}

// Parent returns the owning group, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsTop reports whether n is the root of its tree.
func (n *Node) IsTop() bool {
	return n.parent == nil
}

// IsPrimitive reports whether n owns a glyph.
func (n *Node) IsPrimitive() bool {
	return n.st.Glyph != nil
}

// Glyph returns a copy of the glyph of a primitive.
func (n *Node) Glyph() (Glyph, bool) {
	if n.st.Glyph == nil {
		return Glyph{}, false
	}
	return *n.st.Glyph, true
}

// Kind returns the glyph kind of a primitive.
func (n *Node) Kind() (Kind, bool) {
	if n.st.Glyph == nil {
		return 0, false
	}
	return n.st.Glyph.Kind, true
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the i-th child.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Style returns the node's style.
func (n *Node) Style() Style {
	return n.st.Style
}

// Bounds returns the device bounds cached by the last draw.
func (n *Node) Bounds() pensool.Bounds {
	return n.st.Bounds
}

// Root returns the root of the tree containing n.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// View returns the view owning the tree, or nil.
func (n *Node) View() *View {
	return n.Root().view
}

// Append adds child as the last child of n, takes ownership of it and
// requests a repaint of the area child will draw.
//
// Append panics with a *pensool.TreeInvariantError when n is a primitive,
// when child already has a parent, or when child is n or one of its
// ancestors.
func (n *Node) Append(child *Node) {
	n.adopt("Append", child)
	child.InvalidateWillDraw()
}

// adopt links child as the last child of n without requesting a repaint.
func (n *Node) adopt(op string, child *Node) {
	if n.IsPrimitive() {
		pensool.PanicTreeInvariant(op, "primitive nodes own a glyph, not children")
	}
	if child.parent != nil {
		pensool.PanicTreeInvariant(op, "child is already owned by a group")
	}
	if child.view != nil {
		pensool.PanicTreeInvariant(op, "child is the root of a view")
	}
	for a := n; a != nil; a = a.parent {
		if a == child {
			pensool.PanicTreeInvariant(op, "child is an ancestor")
		}
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove requests a repaint of the area child last drew and releases it
// from n. The child's subtree forgets its retained transforms, so it may be
// appended elsewhere.
//
// Remove panics with a *pensool.TreeInvariantError when child is not a
// child of n.
func (n *Node) Remove(child *Node) {
	i := slices.Index(n.children, child)
	if i < 0 || child.parent != n {
		pensool.PanicTreeInvariant("Remove", "node is not a child")
	}
	child.InvalidateAsDrawn()
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	child.forgetRetained()
}

func (n *Node) forgetRetained() {
	n.retained = retained{}
	for _, c := range n.children {
		c.forgetRetained()
	}
}

// Insert groups child with n and returns the group now containing it.
//
// For a group, child is appended to n and n is returned. For a primitive, a
// new group takes n's place in its parent, adopts n and child in that
// order, and inherits the parent's retained transform so it can be drawn
// consistently before the next walk.
//
// Insert panics with a *pensool.TreeInvariantError for a primitive without
// a parent.
func (n *Node) Insert(child *Node) *Node {
	if !n.IsPrimitive() {
		n.Append(child)
		return n
	}

	parent := n.parent
	if parent == nil {
		pensool.PanicTreeInvariant("Insert", "primitive has no parent to branch from")
	}
	i := slices.Index(parent.children, n)

	branch := NewGroup()
	branch.parent = parent
	parent.children[i] = branch
	n.parent = nil
	branch.adopt("Insert", n)
	branch.retained = parent.retained
	branch.Append(child)

	pensool.Logger().Debug("scene: branched primitive", "node", n.id, "group", branch.id)
	return branch
}

// Clone deep-copies the subtree rooted at n. The copy is detached, has no
// retained transforms and carries fresh identities.
func (n *Node) Clone() *Node {
	c := &Node{id: uuid.New(), st: n.st.clone()}
	for _, child := range n.children {
		c.adopt("Clone", child.Clone())
	}
	return c
}

func (s *state) clone() state {
	var out state
	if err := copier.CopyWithOption(&out, s, copier.Option{DeepCopy: true}); err != nil {
		pensool.Logger().Warn("scene: deep copy failed, copying by value", "err", err)
		out = *s
		if s.Glyph != nil {
			g := *s.Glyph
			out.Glyph = &g
		}
		if s.Style.Previous != nil {
			p := *s.Style.Previous
			out.Style.Previous = &p
		}
	}
	return out
}
