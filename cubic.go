package contour

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// CatmullRom returns the cubic Bézier that follows the Catmull-Rom spline
// through p1 and p2, with p0 and p3 as the neighboring points. The tangent at
// each end is the chord between its neighbors divided by tension; a tension of
// 6 reproduces the uniform Catmull-Rom spline.
func CatmullRom(p0, p1, p2, p3 Point, tension float64) CubicBez {
	return CubicBez{
		P0: p1,
		P1: p1.Translate(p2.Sub(p0).Div(tension)),
		P2: p2.Translate(p3.Sub(p1).Div(tension).Negate()),
		P3: p2,
	}
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the curve at t ∈ [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	v := Vec2(c.P0).Mul(mt * mt * mt).
		Add(Vec2(c.P1).Mul(mt * mt * 3).
			Add(Vec2(c.P2).Mul(mt * 3).
				Add(Vec2(c.P3).Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// ControlBox returns the rectangle enclosing all four control points, which
// also encloses the curve.
func (c CubicBez) ControlBox() Rect {
	return NewRectFromPoints(c.P0, c.P0).
		UnionPoint(c.P1).
		UnionPoint(c.P2).
		UnionPoint(c.P3)
}
