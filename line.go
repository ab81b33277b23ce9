package contour

// Segment is one straight piece of an iso-line, as produced by marching
// squares for a single grid cell.
type Segment struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Sub(s.P0).Hypot()
}

// Reverse returns the segment with its end points swapped.
func (s Segment) Reverse() Segment {
	return Segment{P0: s.P1, P1: s.P0}
}

// Eval evaluates the segment at t ∈ [0, 1].
func (s Segment) Eval(t float64) Point {
	return s.P0.Lerp(s.P1, t)
}

func (s Segment) IsNaN() bool {
	return s.P0.IsNaN() || s.P1.IsNaN()
}
