// Package sink renders a generated border into final output formats.
//
// A sink wraps the path commands and coordinate-space dimensions
// produced by [border.Generate] into something a consumer can use
// directly:
//
//   - SVG: standalone vector document with a non-scaling stroke, so the
//     border keeps a constant visual stroke width when stretched to any
//     display size
//   - JSX: a reusable UI-component template embedding the same path
//   - PNG: raster export drawn from the cubic Beziers directly
//
// Styling is configured with functional options shared between the SVG
// and JSX sinks:
//
//	svg := sink.RenderSVG(b,
//	    sink.WithStroke("#2b2b2b"),
//	    sink.WithStrokeWidth(3),
//	    sink.WithBackground("#fffdf5"),
//	)
package sink
