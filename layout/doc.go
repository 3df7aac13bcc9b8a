// Package layout positions handle menus: small linear groups of control
// glyphs laid out along the outward normal of a scene node's edge.
//
// A Spec anchors a group at a hotspot on the controlee's edge. Its axis is
// the controlee's orthogonal at the hotspot and its benchmark is placed so
// the opening item is centered on the hotspot:
//
//	benchmark = hotspot - axis * itemSize/2 * openingIndex
//
// As the pointer moves across the axis, Spec.Slide re-anchors the group by
// probing a few points ahead of the hotspot and taking the first one that
// lies on the controlee's path.
//
// HandleMenu is the stateful menu built on a Spec. It is driven from the
// single event loop that owns the scene and is not safe for concurrent use.
package layout
