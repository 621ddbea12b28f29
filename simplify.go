package geom

// MaxStrokePoints caps the number of input points considered by
// [SimplifyPoints]. Ramer–Douglas–Peucker is quadratic on adversarial input,
// and freehand strokes arrive from a live pointer-move handler, so longer
// streams are truncated rather than risking unbounded latency.
const MaxStrokePoints = 20000

// SimplifyPoints reduces a dense polyline using the Ramer–Douglas–Peucker
// algorithm: a point survives only if its perpendicular distance from the
// chord between the surviving endpoints around it exceeds epsilon.
//
// Inputs of two or fewer points are returned unchanged (as a copy). The
// result always retains the first and last input point. Inputs longer than
// [MaxStrokePoints] are truncated before simplification.
func SimplifyPoints(points []Point, epsilon float64) []Point {
	if len(points) > MaxStrokePoints {
		points = points[:MaxStrokePoints]
	}
	if len(points) <= 2 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}
	out := make([]Point, 0, 8)
	out = append(out, points[0])
	out = rdp(points, epsilon, out)
	return append(out, points[len(points)-1])
}

// rdp appends the surviving interior points of points, plus none of the two
// endpoints, to out.
func rdp(points []Point, epsilon float64, out []Point) []Point {
	if len(points) <= 2 {
		return out
	}
	chord := Line{points[0], points[len(points)-1]}
	maxDist := 0.0
	maxIdx := 0
	for i := 1; i < len(points)-1; i++ {
		if d := chord.PerpDistance(points[i]); d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}
	if maxDist <= epsilon {
		return out
	}
	out = rdp(points[:maxIdx+1], epsilon, out)
	out = append(out, points[maxIdx])
	return rdp(points[maxIdx:], epsilon, out)
}

// SimplifyPath reduces the anchor count of an already fitted path. Anchors
// are dropped using the same divide-and-conquer criterion as
// [SimplifyPoints], except that the error metric for an anchor considers its
// handles as well as its on-curve point, so a straight run of anchors with
// strongly curved handles is not flattened away.
//
// Surviving anchors keep their handles. If simplification would leave fewer
// than two anchors, the original path is returned unchanged; simplification
// never destroys a path.
func SimplifyPath(p Path, tolerance float64) Path {
	if len(p.Anchors) <= 2 {
		return p
	}
	keep := make([]bool, len(p.Anchors))
	keep[0] = true
	keep[len(keep)-1] = true
	rdpAnchors(p.Anchors, 0, len(p.Anchors)-1, tolerance, keep)

	anchors := make([]Anchor, 0, len(p.Anchors))
	for i, a := range p.Anchors {
		if keep[i] {
			anchors = append(anchors, a)
		}
	}
	if len(anchors) < 2 {
		return p
	}
	return Path{Anchors: anchors, Closed: p.Closed}
}

func rdpAnchors(anchors []Anchor, lo, hi int, tolerance float64, keep []bool) {
	if hi-lo < 2 {
		return
	}
	chord := Line{anchors[lo].Point, anchors[hi].Point}
	maxErr := 0.0
	maxIdx := 0
	for i := lo + 1; i < hi; i++ {
		a := anchors[i]
		err := chord.PerpDistance(a.Point)
		err = max(err, chord.PerpDistance(a.HandleIn))
		err = max(err, chord.PerpDistance(a.HandleOut))
		if err > maxErr {
			maxErr = err
			maxIdx = i
		}
	}
	if maxErr <= tolerance {
		return
	}
	keep[maxIdx] = true
	rdpAnchors(anchors, lo, maxIdx, tolerance, keep)
	rdpAnchors(anchors, maxIdx, hi, tolerance, keep)
}
