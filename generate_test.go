package contour

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(400, 250, DefaultLevels)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(400, 250, DefaultLevels)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) == 0 {
		t.Fatal("no contours")
	}
	diff(t, a, b)
}

func TestGenerateLevels(t *testing.T) {
	const n = 18
	cs, err := Generate(500, 300, n)
	if err != nil {
		t.Fatal(err)
	}
	lvls, err := Generator{}.Levels(500, 300, n)
	if err != nil {
		t.Fatal(err)
	}
	if len(lvls) != n {
		t.Fatalf("got %d levels, want %d", len(lvls), n)
	}
	prev := -1
	for _, c := range cs {
		if c.Level < prev {
			t.Errorf("level %d follows level %d", c.Level, prev)
		}
		prev = c.Level
		if c.Level < 0 || c.Level >= n {
			t.Fatalf("contour has level %d outside [0, %d)", c.Level, n)
		}
		if c.Major != (c.Level%4 == 0) {
			t.Errorf("level %d: got major %t", c.Level, c.Major)
		}
		if c.Threshold != lvls[c.Level].Threshold {
			t.Errorf("level %d: got threshold %g, want %g", c.Level, c.Threshold, lvls[c.Level].Threshold)
		}
	}
}

func TestGenerateMinPoints(t *testing.T) {
	cs, err := Generate(300, 300, 12)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cs {
		if len(c.Points) < DefaultMinPoints {
			t.Errorf("level %d: contour with %d points", c.Level, len(c.Points))
		}
		if len(c.Path) != len(c.Points) {
			t.Errorf("level %d: path has %d elements for %d points", c.Level, len(c.Path), len(c.Points))
		}
	}

	long, err := Generator{MinPoints: 40}.Generate(300, 300, 12)
	if err != nil {
		t.Fatal(err)
	}
	if len(long) > len(cs) {
		t.Errorf("raising the minimum produced more contours: %d > %d", len(long), len(cs))
	}
	for _, c := range long {
		if len(c.Points) < 40 {
			t.Errorf("level %d: contour with %d points", c.Level, len(c.Points))
		}
	}
}

func TestGenerateContainment(t *testing.T) {
	const w, h = 317, 211
	cs, err := Generate(w, h, DefaultLevels)
	if err != nil {
		t.Fatal(err)
	}
	bounds := Rect{0, 0, w, h}.Inflate(1e-9, 1e-9)
	for _, c := range cs {
		for _, pt := range c.Points {
			if !bounds.Contains(pt) {
				t.Fatalf("level %d: point %v outside %gx%g canvas", c.Level, pt, float64(w), float64(h))
			}
		}
	}
}

func TestGenerateScaling(t *testing.T) {
	extent := func(w, h float64) Rect {
		cs, err := Generate(w, h, DefaultLevels)
		if err != nil {
			t.Fatal(err)
		}
		var r Rect
		for i, c := range cs {
			if i == 0 {
				r = c.Bounds()
			} else {
				r = r.Union(c.Bounds())
			}
		}
		return r
	}
	small := extent(400, 300)
	large := extent(800, 600)
	for _, ratio := range []float64{large.Width() / small.Width(), large.Height() / small.Height()} {
		if ratio < 1.6 || ratio > 2.4 {
			t.Errorf("doubling the canvas scaled the extent by %g", ratio)
		}
	}
}

func TestGenerateLinearField(t *testing.T) {
	g := Generator{Noise: linear}
	cs, err := g.Generate(100, 100, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 4 {
		t.Fatalf("got %d contours, want one per level", len(cs))
	}
	ends := [][2]Point{
		{Pt(40, 0), Pt(0, 40)},
		{Pt(80, 0), Pt(0, 80)},
		{Pt(100, 20), Pt(20, 100)},
		{Pt(100, 60), Pt(60, 100)},
	}
	for i, c := range cs {
		want := float64(40 * (i + 1))
		if c.Level != i || c.Threshold != want {
			t.Errorf("contour %d: got level %d at %g, want level %d at %g", i, c.Level, c.Threshold, i, want)
		}
		if c.Major != (i == 0) {
			t.Errorf("contour %d: got major %t", i, c.Major)
		}
		if c.Closed {
			t.Errorf("contour %d is closed", i)
		}
		// Marching squares on a linear field yields straight lines, and
		// Catmull-Rom keeps collinear points straight.
		for _, cb := range slices.Collect(c.Path.Cubics()) {
			for _, pt := range []Point{cb.P0, cb.P1, cb.P2, cb.P3} {
				if d := pt.X + pt.Y - want; math.Abs(d) > 1e-9 {
					t.Fatalf("contour %d: %v is off the line by %g", i, pt, d)
				}
			}
		}
		first, last := c.Points[0], c.Points[len(c.Points)-1]
		if first.Distance(ends[i][0]) > 1e-9 || last.Distance(ends[i][1]) > 1e-9 {
			if first.Distance(ends[i][1]) > 1e-9 || last.Distance(ends[i][0]) > 1e-9 {
				t.Errorf("contour %d spans %v to %v, want %v to %v", i, first, last, ends[i][0], ends[i][1])
			}
		}
	}
}

func TestGenerateConstantField(t *testing.T) {
	cs, err := Generator{Noise: constant}.Generate(120, 80, 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 0 {
		t.Errorf("got %d contours on a flat field", len(cs))
	}
}

func TestGenerateInvalid(t *testing.T) {
	tests := []struct {
		g      Generator
		w, h   float64
		levels int
		want   error
	}{
		{Generator{}, 0, 100, 4, ErrInvalidSize},
		{Generator{}, 100, -3, 4, ErrInvalidSize},
		{Generator{}, math.NaN(), 100, 4, ErrInvalidSize},
		{Generator{}, 100, 100, 0, ErrInvalidLevels},
		{Generator{}, 100, 100, -2, ErrInvalidLevels},
		{Generator{Step: -1}, 100, 100, 4, ErrInvalidStep},
		{Generator{Step: 1e-300}, 100, 100, 4, ErrInvalidStep},
		{Generator{}, 1e11, 1e11, 4, ErrInvalidSize},
	}
	for _, tt := range tests {
		if _, err := tt.g.Generate(tt.w, tt.h, tt.levels); !errors.Is(err, tt.want) {
			t.Errorf("Generate(%g, %g, %d): got error %v, want %v", tt.w, tt.h, tt.levels, err, tt.want)
		}
		if _, err := tt.g.Levels(tt.w, tt.h, tt.levels); !errors.Is(err, tt.want) {
			t.Errorf("Levels(%g, %g, %d): got error %v, want %v", tt.w, tt.h, tt.levels, err, tt.want)
		}
	}
}

func TestGeneratePrecision(t *testing.T) {
	exact, err := Generator{Noise: linear, Precision: -1}.Generate(100, 100, 1)
	if err != nil {
		t.Fatal(err)
	}
	rounded, err := Generator{Noise: linear, Precision: 1}.Generate(100, 100, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(exact) != 1 || len(rounded) != 1 {
		t.Fatalf("got %d and %d contours, want 1", len(exact), len(rounded))
	}
	diff(t, exact[0].Path.SVG(SVGOptions{}), exact[0].Data)
	diff(t, exact[0].Path.SVG(SVGOptions{MaxPrecision: 1}), rounded[0].Data)
}

func TestContourTransform(t *testing.T) {
	cs, err := Generator{Noise: linear}.Generate(100, 100, 2)
	if err != nil {
		t.Fatal(err)
	}
	c := cs[0]
	scaled := c.Transform(Scale(2, 2), SVGOptions{MaxPrecision: 2})
	for i := range c.Points {
		assertNear(t, scaled.Points[i], Pt(c.Points[i].X*2, c.Points[i].Y*2), 1e-9)
	}
	diff(t, scaled.Path.SVG(SVGOptions{MaxPrecision: 2}), scaled.Data)
	// The receiver is left untouched.
	diff(t, cs[0].Points, c.Points)
	if b := scaled.Bounds(); b.Width() != 2*c.Bounds().Width() {
		t.Errorf("got width %g, want %g", b.Width(), 2*c.Bounds().Width())
	}
}
