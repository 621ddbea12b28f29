package geom

// PathSampleSteps is the reference sampling density, in steps per Bézier
// segment, used for tight bounding boxes and stroke hit-testing. It keeps the
// maximum polyline error well below typical hit tolerances.
const PathSampleSteps = 20

// BBox is an axis-aligned bounding box. Width and height are non-negative by
// construction; constructors normalize flipped extents.
type BBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewBBox returns the box spanning the two corner points, in either order.
func NewBBox(p0, p1 Point) BBox {
	x0, x1 := minmax(p0.X, p1.X)
	y0, y1 := minmax(p0.Y, p1.Y)
	return BBox{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// BBoxOfPoints returns the bounding box of the given points. The second
// return value is false for an empty input; callers must not substitute a
// zero-sized box at the origin.
func BBoxOfPoints(pts []Point) (BBox, bool) {
	if len(pts) == 0 {
		return BBox{}, false
	}
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, pt := range pts[1:] {
		minX = min(minX, pt.X)
		maxX = max(maxX, pt.X)
		minY = min(minY, pt.Y)
		maxY = max(maxY, pt.Y)
	}
	return BBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

func (b BBox) MaxX() float64 { return b.X + b.Width }
func (b BBox) MaxY() float64 { return b.Y + b.Height }

func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// Contains reports whether pt lies within the box, bounds inclusive.
func (b BBox) Contains(pt Point) bool {
	return pt.X >= b.X && pt.X <= b.MaxX() &&
		pt.Y >= b.Y && pt.Y <= b.MaxY()
}

// Intersects reports whether the two boxes overlap. This is the loose
// marquee-selection test: bounding boxes, not exact shape outlines.
func (b BBox) Intersects(o BBox) bool {
	return b.X < o.X+o.Width && b.X+b.Width > o.X &&
		b.Y < o.Y+o.Height && b.Y+b.Height > o.Y
}

// Union returns the smallest box enclosing b and o.
func (b BBox) Union(o BBox) BBox {
	x0 := min(b.X, o.X)
	y0 := min(b.Y, o.Y)
	x1 := max(b.MaxX(), o.MaxX())
	y1 := max(b.MaxY(), o.MaxY())
	return BBox{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Expand grows the box by d on all four sides. A negative d shrinks it;
// extents that would invert collapse onto the center instead.
func (b BBox) Expand(d float64) BBox {
	out := BBox{
		X:      b.X - d,
		Y:      b.Y - d,
		Width:  b.Width + 2*d,
		Height: b.Height + 2*d,
	}
	if out.Width < 0 {
		out.X = b.X + b.Width/2
		out.Width = 0
	}
	if out.Height < 0 {
		out.Y = b.Y + b.Height/2
		out.Height = 0
	}
	return out
}

// Corners returns the box's four corners in drawing order.
func (b BBox) Corners() [4]Point {
	return [4]Point{
		{b.X, b.Y},
		{b.MaxX(), b.Y},
		{b.MaxX(), b.MaxY()},
		{b.X, b.MaxY()},
	}
}

// PathBBox returns the tight bounding box of a path, computed from curve
// sampling at [PathSampleSteps] steps per segment. If includeStroke is set,
// the box is expanded by half the stroke width on all sides.
//
// A single-anchor path (a dot) yields a zero-sized box at the point, or a
// stroke-width-sized box when includeStroke is set, matching how a dot is
// rendered. An empty path yields the zero box.
func PathBBox(p Path, strokeWidth float64, includeStroke bool) BBox {
	if len(p.Anchors) == 0 {
		return BBox{}
	}
	if len(p.Anchors) == 1 {
		b := BBox{X: p.Anchors[0].Point.X, Y: p.Anchors[0].Point.Y}
		if includeStroke {
			b = b.Expand(strokeWidth / 2)
		}
		return b
	}
	b, _ := BBoxOfPoints(p.Sample(PathSampleSteps))
	if includeStroke {
		b = b.Expand(strokeWidth / 2)
	}
	return b
}

// PathControlBBox returns the loose bounding box of a path, computed from
// its control cage (anchor points and handles) without sampling. The curve
// always lies within this box, but the box is not tight.
func PathControlBBox(p Path) BBox {
	pts := make([]Point, 0, 3*len(p.Anchors))
	for _, a := range p.Anchors {
		pts = append(pts, a.Point, a.HandleIn, a.HandleOut)
	}
	b, _ := BBoxOfPoints(pts)
	return b
}

// UnionBBox returns the union of the bounding boxes of all given shapes.
// The second return value is false when the input is empty.
func UnionBBox(shapes []Shape, includeStroke bool) (BBox, bool) {
	if len(shapes) == 0 {
		return BBox{}, false
	}
	out := shapes[0].BoundingBox(includeStroke)
	for _, s := range shapes[1:] {
		out = out.Union(s.BoundingBox(includeStroke))
	}
	return out, true
}
