package contour

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the subpath.
	ClosePathKind
)

// PathElement is a single drawing command of a [BezPath].
//
// A valid path has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a Bézier path made of lines and cubic Béziers. Every subpath
// begins with a MoveTo, continues with zero or more LineTo and CubicTo
// elements and optionally ends with a ClosePath.
type BezPath []PathElement

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// CubicTo pushes a "cubic to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Cubics returns an iterator over the cubic Béziers of the path. Lines are
// raised to cubics with control points at their ends.
func (p BezPath) Cubics() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		var start, last Point
		for _, el := range p {
			switch el.Kind {
			case MoveToKind:
				start, last = el.P0, el.P0
			case LineToKind:
				if !yield(CubicBez{last, last, el.P0, el.P0}) {
					return
				}
				last = el.P0
			case CubicToKind:
				if !yield(CubicBez{last, el.P0, el.P1, el.P2}) {
					return
				}
				last = el.P2
			case ClosePathKind:
				last = start
			}
		}
	}
}

// Transform returns a new path with an affine transformation applied to every
// element.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

func (p BezPath) IsNaN() bool {
	for _, el := range p {
		if el.P0.IsNaN() || el.P1.IsNaN() || el.P2.IsNaN() {
			return true
		}
	}
	return false
}

// ControlBox returns a rectangle that conservatively encloses the path, using
// control points rather than tight curve bounds.
func (p BezPath) ControlBox() Rect {
	first := true
	var cbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			addPt(el.P0)
		case CubicToKind:
			addPt(el.P0)
			addPt(el.P1)
			addPt(el.P2)
		case ClosePathKind:
		}
	}
	return cbox
}

// SVGOptions specifies optional settings for [BezPath.SVG] and [BezPath.WriteSVG].
type SVGOptions struct {
	// The maximum number of decimal digits with which to format coordinates. A
	// value of 0 chooses the highest precision necessary to unambiguously
	// represent any given coordinate.
	MaxPrecision int
}

// SVG converts the path to a string of SVG path commands.
func (p BezPath) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	p.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG writes the path as SVG path commands to w.
//
// Coordinates are absolute; no attempt is made to shorten the output with
// relative movement.
func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	write := func(s string) {
		if err != nil {
			return
		}
		_, err = io.WriteString(w, s)
	}
	pt := func(pt Point) string {
		return formatCoord(pt.X, opts.MaxPrecision) + "," + formatCoord(pt.Y, opts.MaxPrecision)
	}
	for i, el := range p {
		if i > 0 {
			write(" ")
		}
		switch el.Kind {
		case MoveToKind:
			write("M" + pt(el.P0))
		case LineToKind:
			write("L" + pt(el.P0))
		case CubicToKind:
			write("C" + pt(el.P0) + " " + pt(el.P1) + " " + pt(el.P2))
		case ClosePathKind:
			write("Z")
		default:
			panic("unreachable")
		}
		if err != nil {
			return err
		}
	}
	return err
}

func formatCoord(n float64, maxPrec int) string {
	if maxPrec <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', maxPrec, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
