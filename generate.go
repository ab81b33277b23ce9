package contour

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned for canvas dimensions that are not positive
	// finite numbers.
	ErrInvalidSize = errors.New("contour: invalid canvas size")
	// ErrInvalidLevels is returned for a non-positive number of levels.
	ErrInvalidLevels = errors.New("contour: invalid level count")
	// ErrInvalidStep is returned for a grid stride that is not a positive
	// finite number.
	ErrInvalidStep = errors.New("contour: invalid grid step")
)

const (
	// DefaultLevels is the number of levels used by callers that don't pick
	// their own.
	DefaultLevels = 18

	DefaultStep       = 6
	DefaultMajorEvery = 4
	DefaultMinPoints  = 4
	DefaultPrecision  = 2
)

// Contour is one smoothed iso-line.
type Contour struct {
	// Path is the smoothed curve through Points.
	Path BezPath
	// Data is Path in SVG path syntax, ready for a d attribute.
	Data string
	// Major marks contours that should be drawn with a heavier stroke.
	Major bool
	// Level and Threshold identify the iso-value the contour was traced at.
	Level     int
	Threshold float64
	// Points is the chain of marching squares crossings the path was fitted
	// through.
	Points []Point
	Closed bool
}

// Generator produces decorative contour lines over a synthetic scalar field.
// The zero value is ready to use and generates terrain-like contours.
//
// A Generator holds no state between calls; Generate is a pure function of
// its receiver and arguments and is safe for concurrent use.
type Generator struct {
	// Step is the grid stride in canvas units. Zero means DefaultStep.
	Step float64
	// Noise is the sampled field. Nil means Terrain.
	Noise NoiseFunc
	// MajorEvery marks every n-th level, starting with the first, as major.
	// Zero means DefaultMajorEvery; a negative value disables major levels.
	MajorEvery int
	// MinPoints is the smallest chain that is turned into a contour. Shorter
	// chains are discarded as visual noise. Zero means DefaultMinPoints.
	MinPoints int
	// Precision is the number of decimals in Contour.Data. Zero means
	// DefaultPrecision; a negative value formats coordinates exactly.
	Precision int
}

func (g Generator) step() float64 {
	if g.Step == 0 {
		return DefaultStep
	}
	return g.Step
}

func (g Generator) majorEvery() int {
	if g.MajorEvery == 0 {
		return DefaultMajorEvery
	}
	return g.MajorEvery
}

func (g Generator) minPoints() int {
	if g.MinPoints <= 0 {
		return DefaultMinPoints
	}
	return max(g.MinPoints, 2)
}

func (g Generator) svgOptions() SVGOptions {
	switch {
	case g.Precision == 0:
		return SVGOptions{MaxPrecision: DefaultPrecision}
	case g.Precision < 0:
		return SVGOptions{}
	default:
		return SVGOptions{MaxPrecision: g.Precision}
	}
}

// Field samples the generator's noise over a width×height canvas.
func (g Generator) Field(width, height float64) (*Field, error) {
	return NewField(width, height, g.step(), g.Noise)
}

// Levels returns the thresholds Generate would trace for a canvas, without
// extracting any contours.
func (g Generator) Levels(width, height float64, levels int) ([]Level, error) {
	if levels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevels, levels)
	}
	f, err := g.Field(width, height)
	if err != nil {
		return nil, err
	}
	return Levels(f, levels, g.majorEvery()), nil
}

// Generate traces levels iso-lines over a width×height canvas and returns
// them smoothed, ordered by level and then by position in the grid. Two calls
// with the same arguments return identical contours.
//
// A field without variation produces no contours and no error.
func (g Generator) Generate(width, height float64, levels int) ([]Contour, error) {
	if levels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevels, levels)
	}
	f, err := g.Field(width, height)
	if err != nil {
		return nil, err
	}

	minPoints := g.minPoints()
	opts := g.svgOptions()
	var out []Contour
	for _, lvl := range Levels(f, levels, g.majorEvery()) {
		for _, pl := range Chain(March(f, lvl.Threshold)) {
			if len(pl.Points) < minPoints {
				continue
			}
			path := Smooth(pl.Points)
			out = append(out, Contour{
				Path:      path,
				Data:      path.SVG(opts),
				Major:     lvl.Major,
				Level:     lvl.Index,
				Threshold: lvl.Threshold,
				Points:    pl.Points,
				Closed:    pl.Closed,
			})
		}
	}
	return out, nil
}

// Generate traces levels terrain contours over a width×height canvas using
// the zero Generator.
func Generate(width, height float64, levels int) ([]Contour, error) {
	return Generator{}.Generate(width, height, levels)
}

// Bounds returns the rectangle enclosing the contour's points.
func (c Contour) Bounds() Rect {
	r, _ := BoundingBox(c.Points)
	return r
}

// Transform returns a copy of c with aff applied to its path and points. Data
// is regenerated with opts.
func (c Contour) Transform(aff Affine, opts SVGOptions) Contour {
	pts := make([]Point, len(c.Points))
	for i, pt := range c.Points {
		pts[i] = pt.Transform(aff)
	}
	c.Points = pts
	c.Path = c.Path.Transform(aff)
	c.Data = c.Path.SVG(opts)
	return c
}
