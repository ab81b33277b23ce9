package contour

// SmoothTension is the Catmull-Rom tension divisor used by [Smooth].
const SmoothTension = 6

// Smooth returns a path through pts made of Catmull-Rom cubics. The neighbor
// of the first and last point is the point itself, so the curve needs no
// phantom points beyond the ends. Collinear points produce a straight path.
//
// Fewer than two points yield an empty path.
func Smooth(pts []Point) BezPath {
	if len(pts) < 2 {
		return nil
	}
	p := make(BezPath, 0, len(pts))
	p.MoveTo(pts[0])
	last := len(pts) - 1
	for i := range last {
		c := CatmullRom(
			pts[max(i-1, 0)],
			pts[i],
			pts[i+1],
			pts[min(i+2, last)],
			SmoothTension,
		)
		p.CubicTo(c.P1, c.P2, c.P3)
	}
	return p
}
