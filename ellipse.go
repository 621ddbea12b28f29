package geom

import "math"

// EllipseKappa is the standard circle-approximation constant: the control
// handle length, as a fraction of the radius, that makes four cubic Bézier
// segments best approximate a quarter circle.
const EllipseKappa = 0.5522847498307936

// EllipseShape is an ellipse primitive, described by the frame it is
// inscribed in plus an intrinsic rotation about the frame's center.
type EllipseShape struct {
	X           float64
	Y           float64
	Width       float64
	Height      float64
	Rotation    float64
	StrokeWidth float64
}

var _ Shape = EllipseShape{}

func (e EllipseShape) Stroke() float64 {
	return e.StrokeWidth
}

func (e EllipseShape) Center() Point {
	return Point{
		X: e.X + e.Width/2,
		Y: e.Y + e.Height/2,
	}
}

// Radii returns the horizontal and vertical radius, before rotation.
func (e EllipseShape) Radii() (float64, float64) {
	return e.Width / 2, e.Height / 2
}

// ToPath converts the ellipse to a closed four-anchor path using the
// [EllipseKappa] quarter-circle approximation. Anchors sit at the axis
// extremes, traversed in the +x, +y, −x, −y order.
func (e EllipseShape) ToPath() Path {
	c := e.Center()
	rx, ry := e.Radii()
	kx := rx * EllipseKappa
	ky := ry * EllipseKappa
	anchors := []Anchor{
		{
			Point:     Pt(c.X+rx, c.Y),
			HandleIn:  Pt(c.X+rx, c.Y-ky),
			HandleOut: Pt(c.X+rx, c.Y+ky),
		},
		{
			Point:     Pt(c.X, c.Y+ry),
			HandleIn:  Pt(c.X+kx, c.Y+ry),
			HandleOut: Pt(c.X-kx, c.Y+ry),
		},
		{
			Point:     Pt(c.X-rx, c.Y),
			HandleIn:  Pt(c.X-rx, c.Y+ky),
			HandleOut: Pt(c.X-rx, c.Y-ky),
		},
		{
			Point:     Pt(c.X, c.Y-ry),
			HandleIn:  Pt(c.X-kx, c.Y-ry),
			HandleOut: Pt(c.X+kx, c.Y-ry),
		},
	}
	p := Path{Anchors: anchors, Closed: true}
	if e.Rotation != 0 {
		p = p.Transform(RotateAbout(e.Rotation, c))
	}
	return p
}

// SampleOutline returns n points on the ellipse's exact outline, evenly
// spaced in the parametric angle, with the intrinsic rotation applied. The
// first point is not repeated at the end.
func (e EllipseShape) SampleOutline(n int) []Point {
	c := e.Center()
	rx, ry := e.Radii()
	sin, cos := math.Sincos(e.Rotation)
	pts := make([]Point, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		x := rx * math.Cos(th)
		y := ry * math.Sin(th)
		pts[i] = Point{
			X: c.X + x*cos - y*sin,
			Y: c.Y + x*sin + y*cos,
		}
	}
	return pts
}

// BoundingBox returns the ellipse's axis-aligned bounding box. For a rotated
// ellipse it uses the closed-form extents
//
//	w = 2·sqrt((rx·cosθ)² + (ry·sinθ)²)
//	h = 2·sqrt((rx·sinθ)² + (ry·cosθ)²)
//
// which are exact, rather than sampling the outline.
func (e EllipseShape) BoundingBox(includeStroke bool) BBox {
	var b BBox
	if e.Rotation == 0 {
		b = NewBBox(Pt(e.X, e.Y), Pt(e.X+e.Width, e.Y+e.Height))
	} else {
		c := e.Center()
		rx, ry := e.Radii()
		sin, cos := math.Sincos(e.Rotation)
		hw := math.Sqrt(rx*cos*rx*cos + ry*sin*ry*sin)
		hh := math.Sqrt(rx*sin*rx*sin + ry*cos*ry*cos)
		b = BBox{X: c.X - hw, Y: c.Y - hh, Width: 2 * hw, Height: 2 * hh}
	}
	if includeStroke {
		b = b.Expand(e.StrokeWidth / 2)
	}
	return b
}

func (e EllipseShape) Move(dx, dy float64) Shape {
	e.X += dx
	e.Y += dy
	return e
}

// Rotate orbits the ellipse's center around the given center and accumulates
// the angle into the intrinsic rotation, keeping the primitive editable as a
// primitive through repeated rotations.
func (e EllipseShape) Rotate(center Point, angle float64) Shape {
	c := e.Center().Transform(RotateAbout(angle, center))
	e.X = c.X - e.Width/2
	e.Y = c.Y - e.Height/2
	e.Rotation += angle
	return e
}

func (e EllipseShape) Scale(pivot Point, sx, sy float64) Shape {
	e.X = pivot.X + (e.X-pivot.X)*sx
	e.Y = pivot.Y + (e.Y-pivot.Y)*sy
	e.Width *= sx
	e.Height *= sy
	return e
}

// Flip converts the ellipse to a path and mirrors that; a primitive cannot
// represent a mirrored state, so the conversion is one-way.
func (e EllipseShape) Flip(center Point, axis Axis) Shape {
	return PathShape{Path: e.ToPath(), StrokeWidth: e.StrokeWidth}.Flip(center, axis)
}
