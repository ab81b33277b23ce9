package contour

import (
	"errors"
	"math"
	"testing"
)

func TestNewFieldGrid(t *testing.T) {
	f, err := NewField(100, 100, 6, linear)
	if err != nil {
		t.Fatal(err)
	}
	if f.Cols != 18 || f.Rows != 18 {
		t.Errorf("got %dx%d grid, want 18x18", f.Cols, f.Rows)
	}
	// The last sample is clamped to the canvas border.
	diff(t, 96.0, f.X(16))
	diff(t, 100.0, f.X(17))
	diff(t, 100.0, f.Y(17))
	diff(t, 0.0, f.Min)
	diff(t, 200.0, f.Max)
	diff(t, 196.0, f.At(17, 16))
	diff(t, Rect{0, 0, 100, 100}, f.Bounds())

	f, err = NewField(12, 6, 6, linear)
	if err != nil {
		t.Fatal(err)
	}
	if f.Cols != 3 || f.Rows != 2 {
		t.Errorf("got %dx%d grid, want 3x2", f.Cols, f.Rows)
	}
}

func TestNewFieldDefaultsToTerrain(t *testing.T) {
	f, err := NewField(50, 40, 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Terrain(f.X(3), f.Y(2)), f.At(3, 2))
}

func TestNewFieldInvalid(t *testing.T) {
	tests := []struct {
		w, h, step float64
		want       error
	}{
		{0, 10, 6, ErrInvalidSize},
		{10, -1, 6, ErrInvalidSize},
		{math.NaN(), 10, 6, ErrInvalidSize},
		{math.Inf(1), 10, 6, ErrInvalidSize},
		{10, 10, 0, ErrInvalidStep},
		{10, 10, -6, ErrInvalidStep},
		{100, 100, 1e-300, ErrInvalidStep},
		{10, 10, 1e-4, ErrInvalidStep},
		{1e11, 1e11, 6, ErrInvalidSize},
		{math.MaxFloat64, 1, 6, ErrInvalidSize},
	}
	for _, tt := range tests {
		if _, err := NewField(tt.w, tt.h, tt.step, linear); !errors.Is(err, tt.want) {
			t.Errorf("NewField(%g, %g, %g): got error %v, want %v", tt.w, tt.h, tt.step, err, tt.want)
		}
	}
}

func TestGridSize(t *testing.T) {
	tests := []struct {
		w, h, step float64
		cols, rows int
		want       error
	}{
		{100, 100, 6, 18, 18, nil},
		{12, 6, 6, 3, 2, nil},
		{0.5, 0.5, 6, 2, 2, nil},
		// Exactly MaxSamples samples.
		{6 * 16383, 6 * 16383, 6, 16384, 16384, nil},
		{6 * 16383, 6 * 16384, 6, 0, 0, ErrInvalidSize},
		{10, 10, 1e-4, 0, 0, ErrInvalidStep},
	}
	for _, tt := range tests {
		cols, rows, err := GridSize(tt.w, tt.h, tt.step)
		if !errors.Is(err, tt.want) {
			t.Errorf("GridSize(%g, %g, %g): got error %v, want %v", tt.w, tt.h, tt.step, err, tt.want)
			continue
		}
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("GridSize(%g, %g, %g) = %dx%d, want %dx%d", tt.w, tt.h, tt.step, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestFlatField(t *testing.T) {
	f, err := NewField(30, 30, 6, constant)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Flat() {
		t.Error("constant field is not flat")
	}
	diff(t, 5.0, f.Min)
	diff(t, 5.0, f.Max)
}

func TestTerrainBounded(t *testing.T) {
	// The amplitudes of all terms sum to 1.27.
	for x := 0.0; x < 2000; x += 37 {
		for y := 0.0; y < 2000; y += 41 {
			if v := Terrain(x, y); math.Abs(v) > 1.27 {
				t.Fatalf("Terrain(%g, %g) = %g exceeds the sum of amplitudes", x, y, v)
			}
		}
	}
	if Terrain(123, 456) != Terrain(123, 456) {
		t.Error("Terrain is not deterministic")
	}
}
