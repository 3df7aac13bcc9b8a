// Package scene implements the retained scene graph: a tree of transformed
// nodes that can be drawn, picked by device coordinates, resized and dragged,
// and selectively redrawn.
//
// # Nodes
//
// A Node is either a group, owning an ordered list of child nodes, or a
// primitive, owning exactly one Glyph (point, line, rectangle, circle or
// text). Glyphs are unit shapes; a primitive's translation, scale and
// rotation place the unit shape in its parent's coordinate system.
//
//	root := scene.NewGroup()
//	rect := scene.NewRect()
//	rect.SetFromRect(0, 0, 100, 100)
//	root.Append(rect)
//
// # Transforms
//
// Each node derives its transform as T·S·R from its translation, scale and
// rotation. During a draw or pick walk every node caches its retained
// transform, the product of all transforms from the root down to and
// including itself. The cache is stamped with the tree's epoch; any
// transform change advances the epoch, and code outside a walk rebuilds the
// product from the parent chain instead of trusting a stale cache.
//
// # Damage
//
// Every mutator that changes what will be drawn is view-altering: it
// reports the bounds the node occupied when last drawn, applies the change,
// then reports the bounds it will occupy when drawn next. Both regions go to
// the damage.Sink of the View owning the tree.
//
// # Threading
//
// A tree is single-owner: exactly one goroutine may walk or mutate it at a
// time. Nothing in this package locks.
package scene
