package contour

import (
	"errors"
	"slices"
	"testing"
)

func TestSVG(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(10, 10))
	p.LineTo(Pt(20.5, 10))
	p.CubicTo(Pt(30, 30), Pt(40, 40), Pt(50, 10))
	p.ClosePath()
	p.MoveTo(Pt(-1, -2))

	want := "M10,10 L20.5,10 C30,30 40,40 50,10 Z M-1,-2"
	diff(t, want, p.SVG(SVGOptions{}))
}

func TestSVGPrecision(t *testing.T) {
	tests := []struct {
		in   float64
		prec int
		want string
	}{
		{3.14159, 2, "3.14"},
		{1.5, 2, "1.5"},
		{10, 2, "10"},
		{-0.001, 2, "0"},
		{100, 0, "100"},
		{0.1, 0, "0.1"},
		{2.675, 1, "2.7"},
	}
	for _, tt := range tests {
		if got := formatCoord(tt.in, tt.prec); got != tt.want {
			t.Errorf("formatCoord(%v, %d) = %q, want %q", tt.in, tt.prec, got, tt.want)
		}
	}

	var p BezPath
	p.MoveTo(Pt(1.23456, 7.5))
	p.LineTo(Pt(2, 3.999))
	diff(t, "M1.23,7.5 L2,4", p.SVG(SVGOptions{MaxPrecision: 2}))
}

type errWriter struct{}

var errWrite = errors.New("write failed")

func (errWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteSVGError(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 1))
	if err := p.WriteSVG(errWriter{}, SVGOptions{}); !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}
}

func TestCubics(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 0))
	p.CubicTo(Pt(2, 0), Pt(3, 1), Pt(3, 2))
	p.ClosePath()
	p.MoveTo(Pt(5, 5))
	p.LineTo(Pt(6, 6))

	want := []CubicBez{
		{Pt(0, 0), Pt(0, 0), Pt(1, 0), Pt(1, 0)},
		{Pt(1, 0), Pt(2, 0), Pt(3, 1), Pt(3, 2)},
		{Pt(5, 5), Pt(5, 5), Pt(6, 6), Pt(6, 6)},
	}
	diff(t, want, slices.Collect(p.Cubics()))
}

func TestControlBoxAndTransform(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(1, 1))
	p.CubicTo(Pt(4, -2), Pt(6, 5), Pt(3, 3))
	diff(t, Rect{1, -2, 6, 5}, p.ControlBox())

	got := p.Transform(Scale(2, 1))
	want := BezPath{
		MoveTo(Pt(2, 1)),
		CubicTo(Pt(8, -2), Pt(12, 5), Pt(6, 3)),
	}
	diff(t, want, got)
	// The receiver is left untouched.
	diff(t, Pt(1, 1), p[0].P0)
}

func TestEndPoint(t *testing.T) {
	if pt, ok := CubicTo(Pt(1, 1), Pt(2, 2), Pt(3, 4)).EndPoint(); !ok || pt != Pt(3, 4) {
		t.Errorf("got (%v, %t), want ((3, 4), true)", pt, ok)
	}
	if _, ok := ClosePath().EndPoint(); ok {
		t.Error("ClosePath has an end point")
	}
}
