package geom

// Tuned fitting constants. These are empirical, product-level values; the
// defaults reproduce visually smooth strokes without self-intersecting loops
// on sharp corners.
const (
	// DefaultHandleScale is the fraction of the distance to a neighboring
	// point used as handle length by [FitAnchors].
	DefaultHandleScale = 0.2

	// DefaultEpsilonFactor converts a stroke width into the simplification
	// epsilon used by [BrushToPath], so thicker strokes yield fewer anchors.
	DefaultEpsilonFactor = 0.5
)

// FitAnchors derives smooth anchors through the given points using a
// finite-difference tangent estimate: each interior anchor's handles follow
// the direction from the previous to the next point, with handle length
// proportional to the distance of the respective neighbor. Endpoints use a
// one-sided tangent.
//
// Coincident neighbors would make the tangent direction undefined; such
// anchors degrade to corners instead.
func FitAnchors(points []Point) []Anchor {
	anchors := make([]Anchor, len(points))
	for i, pt := range points {
		anchors[i] = fitAnchor(points, i, pt)
	}
	return anchors
}

func fitAnchor(points []Point, i int, pt Point) Anchor {
	prev, hasPrev := neighbor(points, i-1)
	next, hasNext := neighbor(points, i+1)

	var tangent Vec2
	switch {
	case hasPrev && hasNext:
		tangent = next.Sub(prev)
	case hasNext:
		tangent = next.Sub(pt)
	case hasPrev:
		tangent = pt.Sub(prev)
	}
	if tangent.Hypot2() == 0 {
		return Corner(pt)
	}
	dir := tangent.Normalize()

	a := Corner(pt)
	if hasPrev {
		a.HandleIn = pt.Translate(dir.Mul(-pt.Distance(prev) * DefaultHandleScale))
	}
	if hasNext {
		a.HandleOut = pt.Translate(dir.Mul(pt.Distance(next) * DefaultHandleScale))
	}
	return a
}

func neighbor(points []Point, i int) (Point, bool) {
	if i < 0 || i >= len(points) {
		return Point{}, false
	}
	return points[i], true
}

// BrushToPath turns a raw freehand point stream into an editable path: the
// stream is simplified with an epsilon derived from the stroke width
// (strokeWidth × [DefaultEpsilonFactor]) and smooth anchors are fitted
// through the surviving points.
//
// An empty stream yields an empty path; a single point yields a dot path.
func BrushToPath(raw []Point, strokeWidth float64) Path {
	pts := SimplifyPoints(raw, strokeWidth*DefaultEpsilonFactor)
	return Path{Anchors: FitAnchors(pts)}
}
