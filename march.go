package contour

import "math"

// Cell edges. Each edge is interpolated from its first to its second corner,
// in the same direction as the matching edge of the neighboring cell, so that
// shared crossings are bit-for-bit identical.
const (
	edgeTop    = iota // top-left → top-right
	edgeRight         // top-right → bottom-right
	edgeBottom        // bottom-left → bottom-right
	edgeLeft          // top-left → bottom-left
)

// edgeTable maps a cell's case index to the edge pairs crossed by the
// iso-line. The case index has bit 8 for the top-left corner, 4 for top-right,
// 2 for bottom-right and 1 for bottom-left, set when the corner is at or above
// the threshold.
//
// The saddles 5 and 10 emit two independent segments. No attempt is made to
// decide which diagonal the surface follows.
var edgeTable = [16][][2]int{
	0:  nil,
	1:  {{edgeLeft, edgeBottom}},
	2:  {{edgeBottom, edgeRight}},
	3:  {{edgeLeft, edgeRight}},
	4:  {{edgeTop, edgeRight}},
	5:  {{edgeLeft, edgeTop}, {edgeBottom, edgeRight}},
	6:  {{edgeTop, edgeBottom}},
	7:  {{edgeLeft, edgeTop}},
	8:  {{edgeLeft, edgeTop}},
	9:  {{edgeTop, edgeBottom}},
	10: {{edgeTop, edgeRight}, {edgeLeft, edgeBottom}},
	11: {{edgeTop, edgeRight}},
	12: {{edgeLeft, edgeRight}},
	13: {{edgeBottom, edgeRight}},
	14: {{edgeLeft, edgeBottom}},
	15: nil,
}

// interpEpsilon replaces the denominator of an edge interpolation when both
// corners hold (nearly) the same value.
const interpEpsilon = 1e-10

// March extracts the iso-line of f at threshold as unordered segments, using
// marching squares over every grid cell. Zero-length segments, which occur
// when the iso-line touches a cell only at a corner, are dropped.
func March(f *Field, threshold float64) []Segment {
	var segs []Segment
	for j := 0; j < f.Rows-1; j++ {
		y0, y1 := f.Y(j), f.Y(j+1)
		for i := 0; i < f.Cols-1; i++ {
			x0, x1 := f.X(i), f.X(i+1)
			tl := f.At(i, j)
			tr := f.At(i+1, j)
			br := f.At(i+1, j+1)
			bl := f.At(i, j+1)

			idx := 0
			if tl >= threshold {
				idx |= 8
			}
			if tr >= threshold {
				idx |= 4
			}
			if br >= threshold {
				idx |= 2
			}
			if bl >= threshold {
				idx |= 1
			}
			if idx == 0 || idx == 15 {
				continue
			}

			crossing := func(edge int) Point {
				switch edge {
				case edgeTop:
					return Pt(lerp(x0, x1, interp(threshold, tl, tr)), y0)
				case edgeRight:
					return Pt(x1, lerp(y0, y1, interp(threshold, tr, br)))
				case edgeBottom:
					return Pt(lerp(x0, x1, interp(threshold, bl, br)), y1)
				case edgeLeft:
					return Pt(x0, lerp(y0, y1, interp(threshold, tl, bl)))
				default:
					panic("unreachable")
				}
			}
			for _, pair := range edgeTable[idx] {
				seg := Segment{crossing(pair[0]), crossing(pair[1])}
				if seg.P0 != seg.P1 {
					segs = append(segs, seg)
				}
			}
		}
	}
	return segs
}

// interp returns where threshold falls between v0 and v1, clamped to [0, 1].
func interp(threshold, v0, v1 float64) float64 {
	d := v1 - v0
	if math.Abs(d) < interpEpsilon {
		d = interpEpsilon
	}
	t := (threshold - v0) / d
	return min(max(t, 0), 1)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
