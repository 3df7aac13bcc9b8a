// Package pensool is the geometry core of the Pensool vector drawing editor.
//
// # Overview
//
// The root package holds the value types every other package shares:
// [Vec2] for points and displacements, [Matrix] for affine transforms,
// [Bounds] for device-space pixel rectangles, [Path] for vector outlines and
// the orthogonal functions that give the outward normal of a line, circle or
// rectangle at a point.
//
// The retained scene graph built on these types lives in package scene,
// the render collaborator contract in package render.
//
// # Coordinate systems
//
// Device coordinates are screen pixels with y growing downward. Each scene
// node has a local coordinate system; its transform maps local points into
// the parent's system. A transform is derived from translation, scale and
// rotation and applies them to a point in the order rotate, scale, translate:
//
//	m := pensool.Derive(pensool.V2(10, 10), pensool.V2(100, 100), 0)
//	p := m.TransformPoint(pensool.V2(1, 1)) // (110, 110)
//
// # Bounds
//
// Bounds are integer rectangles snapped outward from floating extents, so
// inked geometry is never clipped. The zero value is the null bounds, the
// identity of [Bounds.Union].
//
// # Errors
//
// Degenerate geometry (normalizing a zero vector, inverting a singular
// matrix) is recoverable: the plain methods return a zero vector or the
// identity, the checked variants also return an error wrapping
// [ErrZeroVector] or [ErrSingularTransform]. Misuse of the scene tree panics
// with a [*TreeInvariantError].
//
// # Logging
//
// pensool is silent by default. Call [SetLogger] to route diagnostics of
// all packages to a [log/slog] logger.
package pensool
