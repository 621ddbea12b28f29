package geom

// RectShape is a rectangle primitive: an axis-aligned frame plus an
// intrinsic rotation about the frame's center.
//
// Width and height may be negative after a negative scale; [BBox]
// construction and [Resize] normalize extents, the primitive itself does not.
type RectShape struct {
	X           float64
	Y           float64
	Width       float64
	Height      float64
	Rotation    float64
	StrokeWidth float64
}

var _ Shape = RectShape{}

func (r RectShape) Stroke() float64 {
	return r.StrokeWidth
}

func (r RectShape) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Corners returns the rectangle's four corners in drawing order, with the
// intrinsic rotation applied.
func (r RectShape) Corners() [4]Point {
	corners := [4]Point{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X + r.Width, r.Y + r.Height},
		{r.X, r.Y + r.Height},
	}
	if r.Rotation != 0 {
		aff := RotateAbout(r.Rotation, r.Center())
		for i, pt := range corners {
			corners[i] = pt.Transform(aff)
		}
	}
	return corners
}

// ToPath converts the rectangle to a closed four-anchor path of corners.
func (r RectShape) ToPath() Path {
	corners := r.Corners()
	anchors := make([]Anchor, len(corners))
	for i, pt := range corners {
		anchors[i] = Corner(pt)
	}
	return Path{Anchors: anchors, Closed: true}
}

func (r RectShape) BoundingBox(includeStroke bool) BBox {
	var b BBox
	if r.Rotation == 0 {
		b = NewBBox(Pt(r.X, r.Y), Pt(r.X+r.Width, r.Y+r.Height))
	} else {
		corners := r.Corners()
		b, _ = BBoxOfPoints(corners[:])
	}
	if includeStroke {
		b = b.Expand(r.StrokeWidth / 2)
	}
	return b
}

func (r RectShape) Move(dx, dy float64) Shape {
	r.X += dx
	r.Y += dy
	return r
}

// Rotate orbits the rectangle's center around the given center and
// accumulates the angle into the intrinsic rotation, keeping the primitive
// editable as a primitive through repeated rotations.
func (r RectShape) Rotate(center Point, angle float64) Shape {
	c := r.Center().Transform(RotateAbout(angle, center))
	r.X = c.X - r.Width/2
	r.Y = c.Y - r.Height/2
	r.Rotation += angle
	return r
}

func (r RectShape) Scale(pivot Point, sx, sy float64) Shape {
	r.X = pivot.X + (r.X-pivot.X)*sx
	r.Y = pivot.Y + (r.Y-pivot.Y)*sy
	r.Width *= sx
	r.Height *= sy
	return r
}

// Flip converts the rectangle to a path and mirrors that; a primitive cannot
// represent a mirrored state, so the conversion is one-way.
func (r RectShape) Flip(center Point, axis Axis) Shape {
	return PathShape{Path: r.ToPath(), StrokeWidth: r.StrokeWidth}.Flip(center, axis)
}
