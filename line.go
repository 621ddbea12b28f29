package geom

import "math"

// Line represents a line segment.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the nearest point on the
// segment, along with the parameter of that point, clamped to [0, 1].
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// PerpDistance returns the perpendicular distance from pt to the infinite
// line through the segment's endpoints. For a degenerate segment whose
// endpoints coincide it falls back to the point distance.
func (l Line) PerpDistance(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	h2 := d.Hypot2()
	if h2 == 0 {
		return pt.Distance(l.P0)
	}
	return math.Abs(d.Cross(pt.Sub(l.P0))) / math.Sqrt(h2)
}

// Crosses reports whether the two segments intersect, endpoints included.
func (l Line) Crosses(o Line) bool {
	d1 := l.P1.Sub(l.P0)
	d2 := o.P1.Sub(o.P0)
	det := d1.Cross(d2)
	if det == 0 {
		// Parallel or degenerate. Count collinear overlap as a crossing.
		if d1.Cross(o.P0.Sub(l.P0)) != 0 || d2.Cross(l.P0.Sub(o.P0)) != 0 {
			return false
		}
		proj := func(pt Point) float64 { return pt.X }
		d := d1
		if d.Hypot2() == 0 {
			d = d2
		}
		if d.Hypot2() == 0 {
			return l.P0 == o.P0
		}
		if math.Abs(d.Y) > math.Abs(d.X) {
			proj = func(pt Point) float64 { return pt.Y }
		}
		lo1, hi1 := minmax(proj(l.P0), proj(l.P1))
		lo2, hi2 := minmax(proj(o.P0), proj(o.P1))
		return hi1 >= lo2 && hi2 >= lo1
	}
	t := o.P0.Sub(l.P0).Cross(d2) / det
	u := o.P0.Sub(l.P0).Cross(d1) / det
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

func minmax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
