package contour

import (
	"fmt"
	"math"
)

// NoiseFunc evaluates a scalar field at canvas coordinates.
type NoiseFunc func(x, y float64) float64

// Terrain is the default noise function: a hand-tuned sum of sinusoids. The
// low frequency terms produce large landmasses and the high frequency terms
// add jitter, which is close enough to terrain for decoration without a
// gradient noise implementation. It involves no randomness.
func Terrain(x, y float64) float64 {
	return 0.40*math.Sin(0.008*x+0.006*y) +
		0.35*math.Cos(0.005*x-0.012*y+2.1) +
		0.20*math.Sin(0.018*x+0.015*y+1.3) +
		0.15*math.Cos(0.012*x-0.022*y+3.7) +
		0.08*math.Sin(0.035*x+0.028*y-0.5) +
		0.06*math.Cos(0.025*x-0.038*y+1.9) +
		0.03*math.Sin(0.055*x+0.045*y+2.7)
}

// Field is a scalar field sampled on a regular grid covering a canvas.
//
// Sample i of a row lies at x = min(i*Step, Width), so the last row and column
// sit exactly on the canvas border even when the canvas is not a multiple of
// Step.
type Field struct {
	Cols, Rows    int
	Step          float64
	Width, Height float64
	// Min and Max are the smallest and largest sampled values.
	Min, Max float64

	values []float64
}

// NewField samples noise over a width×height canvas every step units. The
// whole grid is evaluated before NewField returns.
func NewField(width, height, step float64, noise NoiseFunc) (*Field, error) {
	cols, rows, err := GridSize(width, height, step)
	if err != nil {
		return nil, err
	}
	if noise == nil {
		noise = Terrain
	}

	f := &Field{
		Cols:   cols,
		Rows:   rows,
		Step:   step,
		Width:  width,
		Height: height,
		Min:    math.Inf(1),
		Max:    math.Inf(-1),
		values: make([]float64, cols*rows),
	}
	for j := range rows {
		y := f.Y(j)
		for i := range cols {
			v := noise(f.X(i), y)
			f.values[j*cols+i] = v
			f.Min = min(f.Min, v)
			f.Max = max(f.Max, v)
		}
	}
	return f, nil
}

// MaxSamples bounds the number of grid samples a Field may hold.
const MaxSamples = 1 << 28

// GridSize returns the number of columns and rows NewField would sample for a
// width×height canvas at the given stride.
//
// A grid of more than MaxSamples samples is rejected. If the canvas area
// alone exceeds MaxSamples the error wraps ErrInvalidSize, otherwise the
// stride is too fine and the error wraps ErrInvalidStep.
func GridSize(width, height, step float64) (cols, rows int, err error) {
	if !validLength(width) || !validLength(height) {
		return 0, 0, fmt.Errorf("%w: %gx%g", ErrInvalidSize, width, height)
	}
	if !validLength(step) {
		return 0, 0, fmt.Errorf("%w: %g", ErrInvalidStep, step)
	}
	c := math.Ceil(width/step) + 1
	r := math.Ceil(height/step) + 1
	// c and r may be +Inf; the comparison rejects those too.
	if !(c*r <= MaxSamples) {
		if width*height > MaxSamples {
			return 0, 0, fmt.Errorf("%w: %gx%g exceeds %d samples", ErrInvalidSize, width, height, MaxSamples)
		}
		return 0, 0, fmt.Errorf("%w: %g yields a grid of more than %d samples", ErrInvalidStep, step, MaxSamples)
	}
	return int(c), int(r), nil
}

// At returns the sample at column i and row j.
func (f *Field) At(i, j int) float64 {
	return f.values[j*f.Cols+i]
}

// X returns the canvas x coordinate of column i.
func (f *Field) X(i int) float64 {
	return min(float64(i)*f.Step, f.Width)
}

// Y returns the canvas y coordinate of row j.
func (f *Field) Y(j int) float64 {
	return min(float64(j)*f.Step, f.Height)
}

// Bounds returns the canvas rectangle covered by the field.
func (f *Field) Bounds() Rect {
	return Rect{0, 0, f.Width, f.Height}
}

// Flat reports whether every sample has the same value.
func (f *Field) Flat() bool {
	return f.Max == f.Min
}

func validLength(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
