package geom

import "math"

// HitPixelSlop is the clickable margin around a stroke, in screen pixels.
// Callers pass the current zoom scale so the margin stays constant on screen
// regardless of zoom.
const HitPixelSlop = 5.0

// HitTolerance returns the hit-testing distance in drawing coordinates: the
// fixed screen-pixel slop converted through the zoom scale, or half the
// visual stroke thickness, whichever is larger.
func HitTolerance(strokeWidth, scale float64) float64 {
	return max(HitPixelSlop/scale, strokeWidth/2)
}

// PointOnPath reports whether pt lies within hit tolerance of the path's
// stroke. The curve is approximated by a polyline sampled at
// [PathSampleSteps] steps per segment; the sampling error is well below any
// realistic tolerance.
//
// A single-anchor path is a dot and degenerates to a plain distance test.
// An empty path is never hit.
func PointOnPath(pt Point, p Path, strokeWidth, scale float64) bool {
	switch len(p.Anchors) {
	case 0:
		return false
	case 1:
		return pt.Distance(p.Anchors[0].Point) <= HitTolerance(strokeWidth, scale)
	}
	tol := HitTolerance(strokeWidth, scale)
	return polylineHit(pt, p.Sample(PathSampleSteps), false, tol)
}

// PointOnRectStroke reports whether pt lies within hit tolerance of the
// rectangle's outline, taking the intrinsic rotation into account.
func PointOnRectStroke(pt Point, r RectShape, scale float64) bool {
	corners := r.Corners()
	tol := HitTolerance(r.StrokeWidth, scale)
	return polylineHit(pt, corners[:], true, tol)
}

// PointOnEllipseStroke reports whether pt lies within hit tolerance of the
// ellipse's outline. The outline is sampled with a density that grows with
// the ellipse's size, never below 16 points.
func PointOnEllipseStroke(pt Point, e EllipseShape, scale float64) bool {
	rx, ry := e.Radii()
	n := max(16, int(math.Ceil((math.Abs(rx)+math.Abs(ry))/4)))
	tol := HitTolerance(e.StrokeWidth, scale)
	return polylineHit(pt, e.SampleOutline(n), true, tol)
}

// polylineHit tests pt against every segment of the polyline, comparing
// squared distances and short-circuiting on the first hit.
func polylineHit(pt Point, pts []Point, closed bool, tol float64) bool {
	tol2 := tol * tol
	for i := 0; i+1 < len(pts); i++ {
		if d, _ := (Line{pts[i], pts[i+1]}).Nearest(pt); d <= tol2 {
			return true
		}
	}
	if closed && len(pts) > 1 {
		if d, _ := (Line{pts[len(pts)-1], pts[0]}).Nearest(pt); d <= tol2 {
			return true
		}
	}
	return false
}

// LassoCaptures reports whether a freeform lasso polygon selects the shape.
// A shape counts as selected if any sampled point of its outline falls
// inside the lasso, or if any outline edge crosses a lasso edge. The former
// handles shapes fully inside the lasso, the latter handles a lasso cutting
// through a shape larger than itself.
//
// A lasso with fewer than three vertices selects nothing.
func LassoCaptures(lasso []Point, s Shape) bool {
	if len(lasso) < 3 {
		return false
	}
	outline := s.ToPath().Sample(PathSampleSteps)
	for _, pt := range outline {
		if PointInPolygon(pt, lasso) {
			return true
		}
	}
	for i := 0; i+1 < len(outline); i++ {
		edge := Line{outline[i], outline[i+1]}
		for j := range lasso {
			if edge.Crosses(Line{lasso[j], lasso[(j+1)%len(lasso)]}) {
				return true
			}
		}
	}
	return false
}

// PointInPolygon reports whether pt lies inside the polygon given by its
// vertex list, using the even-odd ray crossing rule. The polygon is treated
// as closed; the last vertex connects back to the first.
func PointInPolygon(pt Point, poly []Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) &&
			pt.X < (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}
