package geom

import (
	"iter"
	"slices"
)

// InsertHandleScale is the fraction of the local chord length used for the
// handles of an anchor added with [Path.InsertAnchorAt]. It is a tuned
// constant; changing it changes how tightly the curve hugs the new anchor.
const InsertHandleScale = 0.25

// Anchor is one node of a cubic Bézier path: an on-curve point plus the two
// control handles of the adjoining segments.
//
// The handles may coincide with the point (a corner, locally straight) or
// extend away from it (a smooth node). Nothing in the type forces the handles
// to be symmetric; symmetry is a behavior of editing operations.
type Anchor struct {
	Point     Point
	HandleIn  Point
	HandleOut Point
}

// Corner returns an anchor with both handles collapsed onto the point.
func Corner(pt Point) Anchor {
	return Anchor{Point: pt, HandleIn: pt, HandleOut: pt}
}

// IsCorner reports whether both handles coincide with the anchor point.
func (a Anchor) IsCorner() bool {
	return a.HandleIn == a.Point && a.HandleOut == a.Point
}

func (a Anchor) Translate(v Vec2) Anchor {
	return Anchor{
		Point:     a.Point.Translate(v),
		HandleIn:  a.HandleIn.Translate(v),
		HandleOut: a.HandleOut.Translate(v),
	}
}

func (a Anchor) Transform(aff Affine) Anchor {
	return Anchor{
		Point:     a.Point.Transform(aff),
		HandleIn:  a.HandleIn.Transform(aff),
		HandleOut: a.HandleOut.Transform(aff),
	}
}

// Reversed swaps the roles of the inbound and outbound handles, for use when
// the traversal direction of the path changes.
func (a Anchor) Reversed() Anchor {
	return Anchor{
		Point:     a.Point,
		HandleIn:  a.HandleOut,
		HandleOut: a.HandleIn,
	}
}

// Path is an ordered sequence of anchors forming cubic Bézier segments, in
// drawing order.
//
// If Closed is set, an implicit closing segment connects the last anchor's
// outbound handle to the first anchor's inbound handle. A path with zero
// anchors is empty; a path with one anchor is a dot, rendered as a filled
// circle of stroke-width diameter rather than a curve.
type Path struct {
	Anchors []Anchor
	Closed  bool
}

// NumSegments returns the number of Bézier segments of the path, including
// the implicit closing segment for closed paths.
func (p Path) NumSegments() int {
	n := len(p.Anchors)
	if n < 2 {
		return 0
	}
	if p.Closed {
		return n
	}
	return n - 1
}

// Segment returns the i-th Bézier segment. For a closed path, the final
// segment connects the last anchor back to the first.
func (p Path) Segment(i int) CubicBez {
	a := p.Anchors[i]
	b := p.Anchors[(i+1)%len(p.Anchors)]
	return CubicBez{a.Point, a.HandleOut, b.HandleIn, b.Point}
}

// Segments iterates over the path's Bézier segments in drawing order.
func (p Path) Segments() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		for i := range p.NumSegments() {
			if !yield(p.Segment(i)) {
				return
			}
		}
	}
}

// Sample samples every segment of the path with stepsPerSegment uniform
// steps, sharing segment boundary points so that no point is duplicated.
//
// For an open path with s segments the result has 1 + s·stepsPerSegment
// points, the first and last of which are the first and last anchor points.
// For a closed path the closing segment is sampled as well and the final
// point coincides with the first.
func (p Path) Sample(stepsPerSegment int) []Point {
	switch len(p.Anchors) {
	case 0:
		return nil
	case 1:
		return []Point{p.Anchors[0].Point}
	}
	pts := make([]Point, 0, 1+p.NumSegments()*stepsPerSegment)
	pts = append(pts, p.Anchors[0].Point)
	for seg := range p.Segments() {
		pts = append(pts, seg.Sample(stepsPerSegment)[1:]...)
	}
	return pts
}

// SplitSegmentAt inserts a new anchor into segment i at parameter t without
// changing the traced curve. This rewrites the outbound handle of the
// segment's start anchor and the inbound handle of its end anchor, per de
// Casteljau subdivision.
//
// An out-of-range segment index returns the path unchanged.
func (p Path) SplitSegmentAt(i int, t float64) Path {
	if i < 0 || i >= p.NumSegments() {
		return p
	}
	left, right := p.Segment(i).SplitAt(t)
	anchors := slices.Clone(p.Anchors)
	j := (i + 1) % len(anchors)
	anchors[i].HandleOut = left.P1
	anchors[j].HandleIn = right.P2
	mid := Anchor{Point: left.P3, HandleIn: left.P2, HandleOut: right.P1}
	anchors = slices.Insert(anchors, i+1, mid)
	return Path{Anchors: anchors, Closed: p.Closed}
}

// InsertAnchorAt inserts a new anchor into segment i at parameter t without
// touching the neighboring anchors' handles. The new anchor's handles follow
// the curve tangent, scaled by [InsertHandleScale] of the segment's chord
// length, so the curve shape changes slightly near the insertion. Use
// [Path.SplitSegmentAt] when the shape must be preserved exactly.
//
// An out-of-range segment index returns the path unchanged. A zero-length
// tangent (cusp) produces a corner anchor.
func (p Path) InsertAnchorAt(i int, t float64) Path {
	if i < 0 || i >= p.NumSegments() {
		return p
	}
	seg := p.Segment(i)
	pt := seg.Eval(t)
	mid := Corner(pt)
	if tan := seg.Tangent(t); tan.Hypot2() > 0 {
		h := tan.Normalize().Mul(seg.P0.Distance(seg.P3) * InsertHandleScale)
		mid.HandleIn = pt.Translate(h.Negate())
		mid.HandleOut = pt.Translate(h)
	}
	anchors := slices.Clone(p.Anchors)
	anchors = slices.Insert(anchors, i+1, mid)
	return Path{Anchors: anchors, Closed: p.Closed}
}

// Reversed returns the path traversed in the opposite direction: anchors in
// reverse order with handle roles swapped.
func (p Path) Reversed() Path {
	anchors := make([]Anchor, len(p.Anchors))
	for i, a := range p.Anchors {
		anchors[len(anchors)-1-i] = a.Reversed()
	}
	return Path{Anchors: anchors, Closed: p.Closed}
}

func (p Path) Translate(v Vec2) Path {
	anchors := make([]Anchor, len(p.Anchors))
	for i, a := range p.Anchors {
		anchors[i] = a.Translate(v)
	}
	return Path{Anchors: anchors, Closed: p.Closed}
}

func (p Path) Transform(aff Affine) Path {
	anchors := make([]Anchor, len(p.Anchors))
	for i, a := range p.Anchors {
		anchors[i] = a.Transform(aff)
	}
	return Path{Anchors: anchors, Closed: p.Closed}
}

func (p Path) IsInf() bool {
	for _, a := range p.Anchors {
		if a.Point.IsInf() || a.HandleIn.IsInf() || a.HandleOut.IsInf() {
			return true
		}
	}
	return false
}

func (p Path) IsNaN() bool {
	for _, a := range p.Anchors {
		if a.Point.IsNaN() || a.HandleIn.IsNaN() || a.HandleOut.IsNaN() {
			return true
		}
	}
	return false
}
