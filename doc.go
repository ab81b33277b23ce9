// Package contour generates decorative topographic contour lines. It samples
// a synthetic scalar field over a canvas, traces iso-lines through it at evenly
// spaced thresholds, and smooths them into cubic Bézier paths suitable for SVG
// or raster backgrounds.
//
// The output is art, not cartography. The field is a fixed sum of sinusoids
// (see [Terrain]) rather than gradient noise, and the tracing makes no attempt
// to disambiguate saddle cells.
//
// # Pipeline
//
// [Generator.Generate] runs five stages, each of which is exported on its own:
//
//   - [NewField] samples a [NoiseFunc] on a regular grid covering the canvas.
//     The last row and column are clamped to the canvas border, so every sample
//     lies inside it.
//   - [Levels] divides the sampled range into equal bands and returns the
//     thresholds between them. Every fourth level is major by default.
//   - [March] runs marching squares over the field for a single threshold and
//     returns the crossing segments.
//   - [Chain] joins segments that share endpoints into polylines, closing
//     those that loop back on themselves.
//   - [Smooth] turns a polyline into a [BezPath] of Catmull-Rom derived cubic
//     Béziers that pass through every point.
//
// Chains with fewer than [Generator.MinPoints] points are dropped as noise.
// Generation is deterministic: the same arguments always produce identical
// contours, down to the last bit.
//
// # Paths
//
// [BezPath] represents paths as a slice of path elements. [BezPath.SVG] and
// [BezPath.WriteSVG] format them as SVG path data, optionally with limited
// precision (see [SVGOptions]). [Affine] transformations map paths between
// coordinate spaces; [FitRect] builds the transformation that scales one
// canvas onto another.
//
// # Rendering
//
// [WriteDocument] writes contours as a standalone SVG document, drawing major
// contours with a heavier stroke according to a [Style]. The raster
// subpackage draws the same contours into images.
//
// # Caching
//
// Generation is cheap but not free. A [Cache] memoizes a [Generator] for a
// bounded number of canvas sizes and is safe for concurrent use. The
// generator itself holds no state.
package contour
