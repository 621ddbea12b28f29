package geom

import "math"

// DragHandle identifies which of the eight resize handles a drag session
// targets: the four corners and the four edge midpoints, named by compass
// position. The interaction layer owns the drag session and passes the
// handle into [Resize] each frame; the engine never stores it.
type DragHandle int

const (
	HandleNone DragHandle = iota
	HandleN
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
	HandleNW
)

// Resize resizes a shape by dragging one of its handles from start to cur.
//
// Dragging a corner moves both dimensions with the opposite corner fixed;
// dragging an edge moves only the perpendicular dimension. With keepAspect
// set, the non-dragged dimension is recomputed from the original aspect
// ratio, anchored so the fixed edge does not move. Dragging a handle past
// the opposite edge flips the origin and keeps extents non-negative, so the
// result is always a valid shape.
//
// Primitive shapes resize their intrinsic frame and keep their rotation and
// stroke width. Path shapes are rescaled to map their old bounding box onto
// the new frame. [HandleNone], or a handle value the engine does not know,
// returns the shape unchanged; a stale drag must never crash.
func Resize(s Shape, handle DragHandle, cur, start Point, keepAspect bool) Shape {
	if handle < HandleN || handle > HandleNW {
		return s
	}
	d := cur.Sub(start)
	switch s := s.(type) {
	case RectShape:
		frame := resizeFrame(NewBBox(Pt(s.X, s.Y), Pt(s.X+s.Width, s.Y+s.Height)), handle, d, keepAspect)
		s.X, s.Y, s.Width, s.Height = frame.X, frame.Y, frame.Width, frame.Height
		return s
	case EllipseShape:
		frame := resizeFrame(NewBBox(Pt(s.X, s.Y), Pt(s.X+s.Width, s.Y+s.Height)), handle, d, keepAspect)
		s.X, s.Y, s.Width, s.Height = frame.X, frame.Y, frame.Width, frame.Height
		return s
	case PathShape:
		old := PathBBox(s.Path, s.StrokeWidth, false)
		frame := resizeFrame(old, handle, d, keepAspect)
		return PathShape{Path: mapPathToFrame(s.Path, old, frame), StrokeWidth: s.StrokeWidth}
	default:
		return s
	}
}

// resizeFrame applies a handle drag of d to the frame and returns the
// normalized result.
func resizeFrame(b BBox, handle DragHandle, d Vec2, keepAspect bool) BBox {
	x0, y0 := b.X, b.Y
	x1, y1 := b.MaxX(), b.MaxY()

	switch handle {
	case HandleN:
		y0 += d.Y
	case HandleS:
		y1 += d.Y
	case HandleW:
		x0 += d.X
	case HandleE:
		x1 += d.X
	case HandleNW:
		x0 += d.X
		y0 += d.Y
	case HandleNE:
		x1 += d.X
		y0 += d.Y
	case HandleSW:
		x0 += d.X
		y1 += d.Y
	case HandleSE:
		x1 += d.X
		y1 += d.Y
	}

	if keepAspect && b.Width > 0 && b.Height > 0 {
		aspect := b.Width / b.Height
		switch handle {
		case HandleN, HandleS:
			// Height is dragged; rederive width anchored at the left edge.
			x1 = x0 + math.Abs(y1-y0)*aspect
		case HandleE, HandleW:
			// Width is dragged; rederive height anchored at the top edge.
			y1 = y0 + math.Abs(x1-x0)/aspect
		case HandleNW, HandleNE, HandleSW, HandleSE:
			// Corners follow the dragged width; the anchored corner stays.
			h := math.Copysign(math.Abs(x1-x0)/aspect, y1-y0)
			if handle == HandleNW || handle == HandleNE {
				y0 = y1 - h
			} else {
				y1 = y0 + h
			}
		}
	}

	return NewBBox(Pt(x0, y0), Pt(x1, y1))
}

// mapPathToFrame rescales every anchor so that the old frame maps onto the
// new one. A degenerate old dimension keeps its coordinates pinned to the
// new origin rather than dividing by zero.
func mapPathToFrame(p Path, old, frame BBox) Path {
	sx, sy := 1.0, 1.0
	if old.Width > 0 {
		sx = frame.Width / old.Width
	}
	if old.Height > 0 {
		sy = frame.Height / old.Height
	}
	mapPt := func(pt Point) Point {
		return Point{
			X: frame.X + (pt.X-old.X)*sx,
			Y: frame.Y + (pt.Y-old.Y)*sy,
		}
	}
	anchors := make([]Anchor, len(p.Anchors))
	for i, a := range p.Anchors {
		anchors[i] = Anchor{
			Point:     mapPt(a.Point),
			HandleIn:  mapPt(a.HandleIn),
			HandleOut: mapPt(a.HandleOut),
		}
	}
	return Path{Anchors: anchors, Closed: p.Closed}
}
