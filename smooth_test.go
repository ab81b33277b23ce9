package contour

import (
	"math"
	"testing"
)

func TestSmooth(t *testing.T) {
	got := Smooth([]Point{Pt(0, 0), Pt(6, 0), Pt(6, 6)})
	diff(t, "M0,0 C1,0 5,-1 6,0 C7,1 6,5 6,6", got.SVG(SVGOptions{}))

	got = Smooth([]Point{Pt(0, 0), Pt(3, 0)})
	want := BezPath{
		MoveTo(Pt(0, 0)),
		CubicTo(Pt(0.5, 0), Pt(2.5, 0), Pt(3, 0)),
	}
	diff(t, want, got)
}

func TestSmoothTooShort(t *testing.T) {
	if p := Smooth(nil); p != nil {
		t.Errorf("got %v for no points", p)
	}
	if p := Smooth([]Point{Pt(1, 1)}); p != nil {
		t.Errorf("got %v for a single point", p)
	}
}

func TestSmoothPassesThroughPoints(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(4, 3), Pt(9, 1), Pt(12, 8), Pt(5, 10)}
	p := Smooth(pts)
	if len(p) != len(pts) {
		t.Fatalf("got %d elements, want %d", len(p), len(pts))
	}
	for i, el := range p {
		end, _ := el.EndPoint()
		if end.Distance(pts[i]) > 1e-12 {
			t.Errorf("element %d ends at %v, want %v", i, end, pts[i])
		}
	}
	for c := range p.Cubics() {
		if c.IsNaN() || math.IsInf(c.P1.X, 0) {
			t.Errorf("degenerate cubic %v", c)
		}
	}
}
