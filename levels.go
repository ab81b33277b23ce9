package contour

// Level is one iso-value at which contours are traced.
type Level struct {
	Index     int
	Threshold float64
	// Major marks levels drawn with a heavier stroke.
	Major bool
}

// Levels divides the range of f into n+1 equal bands and returns the n
// thresholds between them, in increasing order. Every majorEvery-th level,
// starting with the first, is major. A majorEvery of 0 or less marks no level
// as major.
//
// Thresholds derive from the observed minimum and maximum of the field, never
// from absolute values, so they adapt to any noise function.
func Levels(f *Field, n, majorEvery int) []Level {
	if n <= 0 {
		return nil
	}
	out := make([]Level, n)
	span := f.Max - f.Min
	for i := range out {
		out[i] = Level{
			Index:     i,
			Threshold: f.Min + float64(i+1)*span/float64(n+1),
			Major:     majorEvery > 0 && i%majorEvery == 0,
		}
	}
	return out
}
