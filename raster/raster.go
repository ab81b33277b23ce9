// Package raster draws contours into bitmaps using the gg 2D renderer.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/contourkit/contour"
)

// ErrInvalidSize is returned for image dimensions that are not positive.
var ErrInvalidSize = errors.New("raster: invalid image size")

// Render draws cs onto a new width×height image. Contours are assumed to be
// in the image's coordinate space; use [contour.Contour.Transform] with
// [contour.FitRect] to draw contours generated for another canvas size.
func Render(cs []contour.Contour, width, height int, st contour.Style) (image.Image, error) {
	dc, err := draw(cs, width, height, st)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG renders cs like [Render] and encodes the result as PNG to w.
func WritePNG(w io.Writer, cs []contour.Contour, width, height int, st contour.Style) error {
	dc, err := draw(cs, width, height, st)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encoding PNG: %w", err)
	}
	return nil
}

func draw(cs []contour.Contour, width, height int, st contour.Style) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	dc := gg.NewContext(width, height)
	if st.Background != "" {
		dc.ClearWithColor(gg.Hex(st.Background))
	}
	stroke := gg.Hex(st.Stroke)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	for _, c := range cs {
		if len(c.Path) == 0 {
			continue
		}
		dc.SetRGBA(stroke.R, stroke.G, stroke.B, stroke.A*st.Opacity(c.Major))
		dc.SetLineWidth(st.Width(c.Major))
		appendPath(dc, c.Path)
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("raster: stroking level %d: %w", c.Level, err)
		}
	}
	return dc, nil
}

func appendPath(dc *gg.Context, p contour.BezPath) {
	for _, el := range p {
		switch el.Kind {
		case contour.MoveToKind:
			dc.MoveTo(el.P0.X, el.P0.Y)
		case contour.LineToKind:
			dc.LineTo(el.P0.X, el.P0.Y)
		case contour.CubicToKind:
			dc.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case contour.ClosePathKind:
			dc.ClosePath()
		}
	}
}
