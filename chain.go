package contour

import "slices"

// Polyline is an ordered run of points along one iso-line.
type Polyline struct {
	Points []Point
	// Closed reports whether the run ends where it started. The first point
	// is repeated at the end of a closed run.
	Closed bool
}

// Chain joins segments that share end points into maximal polylines.
//
// End points are compared after quantizing to one decimal place. Starting from
// each segment not yet used, the chain is extended forward from the segment's
// end and backward from its start until no unused segment continues it. A walk
// that returns to its starting point closes the polyline. The result depends
// only on the order of segs.
func Chain(segs []Segment) []Polyline {
	if len(segs) == 0 {
		return nil
	}
	index := make(map[pointKey][]int, len(segs)*2)
	for i, seg := range segs {
		k0, k1 := seg.P0.key(), seg.P1.key()
		index[k0] = append(index[k0], i)
		if k1 != k0 {
			index[k1] = append(index[k1], i)
		}
	}

	used := make([]bool, len(segs))
	// next finds an unused segment touching pt and returns its other end.
	next := func(pt Point) (Point, bool) {
		k := pt.key()
		for _, i := range index[k] {
			if used[i] {
				continue
			}
			used[i] = true
			if segs[i].P0.key() == k {
				return segs[i].P1, true
			}
			return segs[i].P0, true
		}
		return Point{}, false
	}

	var out []Polyline
	for i, seg := range segs {
		if used[i] {
			continue
		}
		used[i] = true
		startKey := seg.P0.key()

		forward := []Point{seg.P0, seg.P1}
		closed := false
		for cur := seg.P1; ; {
			pt, ok := next(cur)
			if !ok {
				break
			}
			forward = append(forward, pt)
			if pt.key() == startKey {
				closed = true
				break
			}
			cur = pt
		}

		if !closed {
			var backward []Point
			for cur := seg.P0; ; {
				pt, ok := next(cur)
				if !ok {
					break
				}
				backward = append(backward, pt)
				cur = pt
			}
			if len(backward) > 0 {
				slices.Reverse(backward)
				forward = append(backward, forward...)
			}
		}
		out = append(out, Polyline{Points: forward, Closed: closed})
	}
	return out
}
