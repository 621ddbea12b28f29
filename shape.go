package geom

// Axis selects the direction of a flip operation.
type Axis int

const (
	// Horizontal mirrors the x-coordinate, across the vertical line through
	// the flip center.
	Horizontal Axis = iota
	// Vertical mirrors the y-coordinate, across the horizontal line through
	// the flip center.
	Vertical
)

// Shape is a drawable object the engine can transform, hit-test, and bound.
//
// Rectangles and ellipses are kept in compact primitive form so they stay
// cheaply editable ([RectShape], [EllipseShape]); anything else is a
// [PathShape]. Operations that a primitive cannot represent (flip, and any
// caller-side distortion) go through the lossless ToPath conversion.
//
// All methods are pure; they return a new shape and never modify the
// receiver.
type Shape interface {
	// Stroke returns the shape's stroke width, used for hit tolerance and
	// bounding-box expansion.
	Stroke() float64

	// ToPath converts the shape to its anchor-based path form.
	ToPath() Path

	// BoundingBox returns the shape's axis-aligned bounding box, optionally
	// expanded by half the stroke width on all sides.
	BoundingBox(includeStroke bool) BBox

	// Move translates the shape.
	Move(dx, dy float64) Shape

	// Rotate rotates the shape around center by angle radians.
	Rotate(center Point, angle float64) Shape

	// Scale scales the shape about pivot. Negative factors are permitted
	// and flip the shape implicitly; primitives may end up with negative
	// width or height, which callers normalize (see [Resize]).
	Scale(pivot Point, sx, sy float64) Shape

	// Flip mirrors the shape across the line through center perpendicular
	// to axis. Primitives are converted to paths first, since a primitive
	// cannot represent a mirrored state.
	Flip(center Point, axis Axis) Shape
}

// PathShape is a free-form shape: an anchor path plus a stroke width.
type PathShape struct {
	Path        Path
	StrokeWidth float64
}

var _ Shape = PathShape{}

func (s PathShape) Stroke() float64 {
	return s.StrokeWidth
}

func (s PathShape) ToPath() Path {
	return s.Path
}

func (s PathShape) BoundingBox(includeStroke bool) BBox {
	return PathBBox(s.Path, s.StrokeWidth, includeStroke)
}

func (s PathShape) Move(dx, dy float64) Shape {
	return PathShape{Path: s.Path.Translate(Vec(dx, dy)), StrokeWidth: s.StrokeWidth}
}

func (s PathShape) Rotate(center Point, angle float64) Shape {
	return PathShape{Path: s.Path.Transform(RotateAbout(angle, center)), StrokeWidth: s.StrokeWidth}
}

func (s PathShape) Scale(pivot Point, sx, sy float64) Shape {
	return PathShape{Path: s.Path.Transform(ScaleAbout(sx, sy, pivot)), StrokeWidth: s.StrokeWidth}
}

func (s PathShape) Flip(center Point, axis Axis) Shape {
	return PathShape{Path: flipPath(s.Path, center, axis), StrokeWidth: s.StrokeWidth}
}

// flipPath mirrors a path across the line through center perpendicular to
// axis. Reflection reverses traversal, so the handle roles of every anchor
// swap; open paths additionally reverse their anchor order to preserve the
// original drawing direction. Closed paths keep their order, since direction
// is ambiguous for a loop.
func flipPath(p Path, center Point, axis Axis) Path {
	dir := Vec(1, 0)
	if axis == Horizontal {
		dir = Vec(0, 1)
	}
	q := p.Transform(Reflect(center, dir))
	if !q.Closed {
		return q.Reversed()
	}
	anchors := make([]Anchor, len(q.Anchors))
	for i, a := range q.Anchors {
		anchors[i] = a.Reversed()
	}
	return Path{Anchors: anchors, Closed: true}
}
