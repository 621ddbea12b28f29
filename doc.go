// Package geom implements the path geometry engine of a vector drawing
// editor: editable cubic Bézier paths, freehand stroke fitting, path
// simplification, hit-testing, affine transforms, and bounding boxes.
//
// # Data model
//
// The central types are [Anchor], an on-curve point with two control
// handles, and [Path], an ordered, optionally closed sequence of anchors
// forming cubic Bézier segments. Rectangles and ellipses keep compact
// primitive representations ([RectShape], [EllipseShape]) and convert
// losslessly to paths when an operation needs the richer form.
//
// All types are immutable values and all operations are pure: they take
// a shape and parameters and return a new shape. The package holds no
// state, performs no I/O, and is safe to call concurrently.
//
// # Features
//
//   - Curve evaluation, tangents, and exact de Casteljau splitting (see [CubicBez])
//   - Freehand stroke fitting (see [BrushToPath])
//   - Ramer–Douglas–Peucker simplification (see [SimplifyPoints], [SimplifyPath])
//   - Zoom-aware stroke hit-testing and lasso selection (see [PointOnPath], [LassoCaptures])
//   - Shape transforms: move, rotate, scale, flip, resize (see [Shape], [Resize])
//   - Control-cage and sampled bounding boxes (see [PathBBox], [UnionBBox])
//
// # Conventions
//
// Coordinates are float64 and angles are in radians. Rotation follows
// the y-down graphics convention: a positive angle rotates the positive
// x direction into positive y. Whether a path is closed is an explicit
// flag, never inferred from coinciding endpoints.
package geom
