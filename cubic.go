package geom

// CubicBez is a single cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the curve at parameter t using the Bernstein form.
//
// t is expected to be in [0, 1]; callers must clamp.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Tangent returns the derivative of the curve at parameter t.
//
// The result is the zero vector at a cusp, for example when P1 and P2 both
// coincide with the evaluated endpoint. Callers that need a direction must
// fall back to a degenerate (corner) handle instead of normalizing.
func (c CubicBez) Tangent(t float64) Vec2 {
	mt := 1.0 - t
	d01 := c.P1.Sub(c.P0).Mul(3.0 * mt * mt)
	d12 := c.P2.Sub(c.P1).Mul(6.0 * mt * t)
	d23 := c.P3.Sub(c.P2).Mul(3.0 * t * t)
	return d01.Add(d12).Add(d23)
}

// SplitAt subdivides the curve at parameter t using de Casteljau's algorithm.
//
// The two sub-curves together trace exactly the same points as the original:
// the left curve covers [0, t] and the right curve [t, 1].
func (c CubicBez) SplitAt(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)
	return CubicBez{c.P0, p01, p012, mid}, CubicBez{mid, p123, p23, c.P3}
}

// Subdivide subdivides the curve into halves.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.SplitAt(0.5)
}

// Sample returns steps+1 points spaced uniformly in t, including both
// endpoints. steps must be at least 1.
func (c CubicBez) Sample(steps int) []Point {
	pts := make([]Point, steps+1)
	pts[0] = c.P0
	for i := 1; i < steps; i++ {
		pts[i] = c.Eval(float64(i) / float64(steps))
	}
	pts[steps] = c.P3
	return pts
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Translate(v Vec2) CubicBez {
	return CubicBez{
		P0: c.P0.Translate(v),
		P1: c.P1.Translate(v),
		P2: c.P2.Translate(v),
		P3: c.P3.Translate(v),
	}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}
