package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFitAnchorsInterior(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 10), Pt(20, 0)}
	anchors := FitAnchors(pts)
	if len(anchors) != 3 {
		t.Fatalf("got %d anchors, want 3", len(anchors))
	}
	// The interior anchor's handles follow the prev→next direction, which
	// here is horizontal, with length 0.2× the neighbor distance.
	mid := anchors[1]
	diff(t, Pt(10, 10), mid.Point)
	d := pts[1].Distance(pts[0]) * DefaultHandleScale
	diff(t, Pt(10-d, 10), mid.HandleIn, cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(10+d, 10), mid.HandleOut, cmpopts.EquateApprox(0, 1e-12))
}

func TestFitAnchorsEndpoints(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)}
	anchors := FitAnchors(pts)
	// Open endpoints use a one-sided tangent: no inbound handle on the
	// first anchor, no outbound handle on the last.
	diff(t, anchors[0].Point, anchors[0].HandleIn)
	if anchors[0].HandleOut == anchors[0].Point {
		t.Error("first anchor should have an outbound handle")
	}
	diff(t, anchors[2].Point, anchors[2].HandleOut)
	if anchors[2].HandleIn == anchors[2].Point {
		t.Error("last anchor should have an inbound handle")
	}
}

func TestFitAnchorsCoincidentNeighbors(t *testing.T) {
	pts := []Point{Pt(5, 5), Pt(5, 5), Pt(5, 5)}
	for _, a := range FitAnchors(pts) {
		if !a.IsCorner() {
			t.Errorf("coincident neighbors should produce corners, got %+v", a)
		}
	}
}

func TestFitAnchorsSinglePoint(t *testing.T) {
	diff(t, []Anchor{Corner(Pt(1, 2))}, FitAnchors([]Point{Pt(1, 2)}))
	diff(t, []Anchor{}, FitAnchors(nil))
}

func TestFitAnchorsUnevenNeighborOvershoot(t *testing.T) {
	// A very long segment next to a very short one: the handle toward the
	// long side scales with the long distance and overshoots the short
	// neighborhood. This is a known property of the unclamped heuristic,
	// pinned here so a change to the constant shows up.
	pts := []Point{Pt(0, 0), Pt(100, 0), Pt(100.5, 1)}
	mid := FitAnchors(pts)[1]
	inLen := mid.Point.Distance(mid.HandleIn)
	if want := 100 * DefaultHandleScale; math.Abs(inLen-want) > 1e-9 {
		t.Errorf("got inbound handle length %g, want %g", inLen, want)
	}
	if shortSide := pts[1].Distance(pts[2]); inLen < 10*shortSide {
		t.Errorf("expected the inbound handle (%g) to dwarf the short side (%g)", inLen, shortSide)
	}
}

func TestBrushToPathDegenerate(t *testing.T) {
	diff(t, Path{Anchors: []Anchor{}}, BrushToPath(nil, 4))
	dot := BrushToPath([]Point{Pt(3, 3)}, 4)
	diff(t, Path{Anchors: []Anchor{Corner(Pt(3, 3))}}, dot)
}

func TestBrushToPathNearCollinear(t *testing.T) {
	// 500 near-collinear points with jitter ≤ 0.5: a stroke width of 4
	// gives ε = 2, which swallows the jitter and yields a handful of
	// anchors.
	pts := make([]Point, 500)
	for i := range pts {
		pts[i] = Pt(float64(i)*0.4, 0.5*math.Sin(float64(i)*0.7))
	}
	p := BrushToPath(pts, 4)
	if len(p.Anchors) > 10 {
		t.Fatalf("got %d anchors, want at most 10", len(p.Anchors))
	}
	if len(p.Anchors) < 2 {
		t.Fatalf("got %d anchors, want at least 2", len(p.Anchors))
	}
	diff(t, pts[0], p.Anchors[0].Point)
	diff(t, pts[len(pts)-1], p.Anchors[len(p.Anchors)-1].Point)
}

func TestBrushToPathThickerStrokesFewerAnchors(t *testing.T) {
	pts := make([]Point, 200)
	for i := range pts {
		pts[i] = Pt(float64(i), 4*math.Sin(float64(i)*0.3))
	}
	thin := BrushToPath(pts, 1)
	thick := BrushToPath(pts, 8)
	if len(thick.Anchors) > len(thin.Anchors) {
		t.Errorf("thick stroke has %d anchors, thin has %d; want thick ≤ thin",
			len(thick.Anchors), len(thin.Anchors))
	}
}
