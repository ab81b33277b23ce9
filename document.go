package contour

import (
	"fmt"
	"io"
)

// Style describes how contours are stroked.
type Style struct {
	// Stroke is the line color as an SVG/CSS hex color.
	Stroke string
	// Background fills the canvas. An empty background leaves it transparent.
	Background string

	MajorWidth   float64
	MinorWidth   float64
	MajorOpacity float64
	MinorOpacity float64
}

// DefaultStyle draws thin translucent lines with emphasized major contours.
var DefaultStyle = Style{
	Stroke:       "#1a1a1a",
	MajorWidth:   1.2,
	MinorWidth:   0.5,
	MajorOpacity: 0.35,
	MinorOpacity: 0.18,
}

// Width returns the stroke width for a contour.
func (st Style) Width(major bool) float64 {
	if major {
		return st.MajorWidth
	}
	return st.MinorWidth
}

// Opacity returns the stroke opacity for a contour.
func (st Style) Opacity(major bool) float64 {
	if major {
		return st.MajorOpacity
	}
	return st.MinorOpacity
}

// WriteDocument writes a standalone SVG document of the given size to w,
// drawing one stroked path per contour.
func WriteDocument(w io.Writer, width, height float64, cs []Contour, st Style) error {
	var err error
	printf := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height)
	if st.Background != "" {
		printf(`<rect width="100%%" height="100%%" fill="%s" />`+"\n", st.Background)
	}
	printf(`<g fill="none" stroke="%s" stroke-linecap="round" stroke-linejoin="round">`+"\n", st.Stroke)
	for _, c := range cs {
		printf(`<path d="%s" stroke-width="%g" stroke-opacity="%g" />`+"\n",
			c.Data, st.Width(c.Major), st.Opacity(c.Major))
	}
	printf("</g>\n</svg>\n")
	return err
}
