package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBBoxNormalizes(t *testing.T) {
	diff(t, BBox{X: 1, Y: 2, Width: 3, Height: 4}, NewBBox(Pt(4, 6), Pt(1, 2)))
}

func TestBBoxOfPointsEmpty(t *testing.T) {
	if _, ok := BBoxOfPoints(nil); ok {
		t.Error("empty input must not produce a box")
	}
}

func TestBBoxIntersects(t *testing.T) {
	a := BBox{X: 0, Y: 0, Width: 10, Height: 10}
	if !a.Intersects(BBox{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Error("overlapping boxes should intersect")
	}
	if a.Intersects(BBox{X: 20, Y: 0, Width: 5, Height: 5}) {
		t.Error("disjoint boxes should not intersect")
	}
	// Touching edges do not count as overlap.
	if a.Intersects(BBox{X: 10, Y: 0, Width: 5, Height: 5}) {
		t.Error("edge-adjacent boxes should not intersect")
	}
}

func TestBBoxExpandShrinkCollapses(t *testing.T) {
	b := BBox{X: 0, Y: 0, Width: 4, Height: 10}
	got := b.Expand(-3)
	diff(t, BBox{X: 2, Y: 3, Width: 0, Height: 4}, got)
}

func TestPathBBoxDot(t *testing.T) {
	// A single anchor at (10,10) with stroke width sw boxes to
	// (10−sw/2, 10−sw/2, sw, sw).
	const sw = 4.0
	p := Path{Anchors: []Anchor{{Point: Pt(10, 10), HandleIn: Pt(10, 10), HandleOut: Pt(10, 10)}}}
	diff(t, BBox{X: 10 - sw/2, Y: 10 - sw/2, Width: sw, Height: sw}, PathBBox(p, sw, true))
	diff(t, BBox{X: 10, Y: 10}, PathBBox(p, sw, false))
	diff(t, BBox{}, PathBBox(Path{}, sw, true))
}

func TestPathBBoxContainsSamples(t *testing.T) {
	for _, closed := range []bool{false, true} {
		p := wavePath(closed)
		b := PathBBox(p, 0, false)
		for _, pt := range p.Sample(PathSampleSteps) {
			if !b.Contains(pt) {
				t.Fatalf("closed=%v: sample %v outside bbox %+v", closed, pt, b)
			}
		}
	}
}

func TestPathBBoxStrokeExpansion(t *testing.T) {
	p := wavePath(false)
	tight := PathBBox(p, 6, false)
	stroked := PathBBox(p, 6, true)
	diff(t, tight.Expand(3), stroked)
}

func TestPathControlBBoxContainsCurve(t *testing.T) {
	p := wavePath(false)
	cage := PathControlBBox(p)
	tight := PathBBox(p, 0, false)
	// The control cage is loose: it contains the tight box.
	diff(t, cage, cage.Union(tight), cmpopts.EquateApprox(0, 1e-9))
}

func TestRotatedRectBBox(t *testing.T) {
	r := RectShape{X: 0, Y: 0, Width: 4, Height: 2, Rotation: math.Pi / 2}
	got := r.BoundingBox(false)
	// Rotating the 4×2 frame by 90° around its center (2,1) gives a 2×4 box
	// with the same center.
	diff(t, BBox{X: 1, Y: -1, Width: 2, Height: 4}, got, cmpopts.EquateApprox(0, 1e-9))
}

func TestRotatedEllipseBBox(t *testing.T) {
	e := EllipseShape{X: -30, Y: -10, Width: 60, Height: 20, Rotation: 0.7}
	got := e.BoundingBox(false)

	rx, ry := 30.0, 10.0
	sin, cos := math.Sincos(0.7)
	wantW := 2 * math.Sqrt(rx*cos*rx*cos+ry*sin*ry*sin)
	wantH := 2 * math.Sqrt(rx*sin*rx*sin+ry*cos*ry*cos)
	diff(t, wantW, got.Width, cmpopts.EquateApprox(0, 1e-9))
	diff(t, wantH, got.Height, cmpopts.EquateApprox(0, 1e-9))

	// The closed form must agree with a dense sampling of the outline.
	sampled, _ := BBoxOfPoints(e.SampleOutline(4096))
	diff(t, sampled, got, cmpopts.EquateApprox(0, 1e-3))
}

func TestUnionBBox(t *testing.T) {
	if _, ok := UnionBBox(nil, false); ok {
		t.Fatal("empty union must not synthesize a box")
	}
	shapes := []Shape{
		RectShape{X: 0, Y: 0, Width: 10, Height: 10},
		RectShape{X: 20, Y: 20, Width: 5, Height: 5},
	}
	got, ok := UnionBBox(shapes, false)
	if !ok {
		t.Fatal("expected a box")
	}
	diff(t, BBox{X: 0, Y: 0, Width: 25, Height: 25}, got)
}
