package geom

import (
	"math"
	"testing"
)

func TestHitTolerance(t *testing.T) {
	// Zoomed out, the screen-pixel slop dominates.
	diff(t, 10.0, HitTolerance(2, 0.5))
	// Zoomed in on a thick stroke, half the stroke width dominates.
	diff(t, 8.0, HitTolerance(16, 4))
}

func TestPointOnPathAnchors(t *testing.T) {
	for _, closed := range []bool{false, true} {
		p := wavePath(closed)
		for _, a := range p.Anchors {
			if !PointOnPath(a.Point, p, 2, 1) {
				t.Errorf("closed=%v: anchor point %v should hit its own path", closed, a.Point)
			}
		}
	}
}

func TestPointOnPathDot(t *testing.T) {
	p := Path{Anchors: []Anchor{Corner(Pt(10, 10))}}
	if !PointOnPath(Pt(12, 10), p, 2, 1) {
		t.Error("point within tolerance of a dot should hit")
	}
	if PointOnPath(Pt(20, 10), p, 2, 1) {
		t.Error("point far from a dot should miss")
	}
	if PointOnPath(Pt(10, 10), Path{}, 2, 1) {
		t.Error("an empty path is never hit")
	}
}

func TestPointOnPathMiss(t *testing.T) {
	p := wavePath(false)
	if PointOnPath(Pt(30, 100), p, 2, 1) {
		t.Error("distant point should miss")
	}
	// The same point hits when the view is zoomed far out.
	if !PointOnPath(Pt(30, 100), p, 2, 0.05) {
		t.Error("distant point should hit at tiny zoom scale")
	}
}

func TestPointOnRectStroke(t *testing.T) {
	// Zoomed in (scale 10) the tolerance is half the stroke width, 1.
	r := RectShape{X: 0, Y: 0, Width: 20, Height: 10, StrokeWidth: 2}
	if !PointOnRectStroke(Pt(10, 0.5), r, 10) {
		t.Error("point near the top edge should hit")
	}
	if PointOnRectStroke(Pt(10, 5), r, 10) {
		t.Error("the rectangle's interior is not part of the stroke")
	}

	rot := RectShape{X: -10, Y: -5, Width: 20, Height: 10, Rotation: math.Pi / 4, StrokeWidth: 2}
	// The unrotated top-edge midpoint (0,−5) moves to 45°.
	hit := Pt(0, -5).Transform(RotateAbout(math.Pi/4, Pt(0, 0)))
	if !PointOnRectStroke(hit, rot, 10) {
		t.Error("rotated edge midpoint should hit")
	}
	if PointOnRectStroke(Pt(0, -5), rot, 10) {
		t.Error("the unrotated edge position should miss after rotation")
	}
}

func TestPointOnEllipseStroke(t *testing.T) {
	e := EllipseShape{X: -20, Y: -10, Width: 40, Height: 20, StrokeWidth: 2}
	if !PointOnEllipseStroke(Pt(20, 0), e, 1) {
		t.Error("point on the outline should hit")
	}
	if !PointOnEllipseStroke(Pt(0, -10.5), e, 1) {
		t.Error("point just off the outline should hit within tolerance")
	}
	if PointOnEllipseStroke(Pt(0, 0), e, 1) {
		t.Error("the ellipse center is not part of the stroke")
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	if !PointInPolygon(Pt(5, 5), square) {
		t.Error("center should be inside")
	}
	if PointInPolygon(Pt(15, 5), square) {
		t.Error("outside point should be outside")
	}

	// Concave polygon: a C shape whose notch is outside.
	c := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 3), Pt(3, 3), Pt(3, 7), Pt(10, 7), Pt(10, 10), Pt(0, 10)}
	if PointInPolygon(Pt(8, 5), c) {
		t.Error("the notch should be outside")
	}
	if !PointInPolygon(Pt(1.5, 5), c) {
		t.Error("the spine should be inside")
	}
}

func TestLassoCaptures(t *testing.T) {
	shape := RectShape{X: 4, Y: 4, Width: 2, Height: 2}

	surrounding := []Point{Pt(0, 0), Pt(20, 0), Pt(20, 20), Pt(0, 20)}
	if !LassoCaptures(surrounding, shape) {
		t.Error("a lasso surrounding the shape should capture it")
	}

	// A lasso that overlaps only the shape's edge: none of the lasso's
	// verts are inside the shape, but its edges cross the outline.
	big := RectShape{X: 0, Y: 0, Width: 100, Height: 100}
	cutting := []Point{Pt(-5, 40), Pt(10, 40), Pt(10, 60), Pt(-5, 60)}
	if !LassoCaptures(cutting, big) {
		t.Error("a lasso cutting through the shape's edge should capture it")
	}

	far := []Point{Pt(50, 50), Pt(60, 50), Pt(60, 60), Pt(50, 60)}
	if LassoCaptures(far, shape) {
		t.Error("a distant lasso should not capture the shape")
	}

	if LassoCaptures([]Point{Pt(0, 0), Pt(1, 1)}, shape) {
		t.Error("a degenerate lasso selects nothing")
	}
}
