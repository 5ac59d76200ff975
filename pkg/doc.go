// Package pkg provides the core libraries for wiggly border generation.
//
// # Overview
//
// The generator turns a handful of geometry parameters into a hand-drawn
// looking rectangular border: edge points are displaced by layered sine
// waves and smoothed into cubic Bézier curves. The pkg directory is
// organized into five areas:
//
//  1. [geometry] - Primitives (points, wave offsets, edge sampling, splines)
//  2. [border] - Border assembly (parameters → closed Bézier path)
//  3. [sink] - Output serializers (SVG, PNG, UI component)
//  4. [pipeline] - Orchestration (validate → generate → render, with caching)
//  5. [cache] / [config] / [errors] / [buildinfo] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Params (amplitude, segment size, inset, dimensions, seed)
//	         ↓
//	    [geometry] package (coordinate space, edge sampling, smoothing)
//	         ↓
//	    [border] package (four edges → closed path)
//	         ↓
//	    [sink] package (SVG/PNG/JSX serialization)
//	         ↓
//	    SVG/PNG/JSON/JSX output
//
// # Quick Start
//
// Generate a border and render it as SVG:
//
//	import (
//	    "github.com/marcusmichaels/wiggly-border-generator/pkg/border"
//	    "github.com/marcusmichaels/wiggly-border-generator/pkg/sink"
//	)
//
//	b, err := border.Generate(border.DefaultParams())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := sink.RenderSVG(b, sink.WithStroke("#2b2b2b"))
//
// Or run the full pipeline with caching:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.DefaultOptions())
//
// Generation is fully deterministic: the same parameters always produce
// byte-identical artifacts, which is what makes the cache layer exact.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/geometry/... # Specific package
//
// [geometry]: https://pkg.go.dev/github.com/marcusmichaels/wiggly-border-generator/pkg/geometry
// [border]: https://pkg.go.dev/github.com/marcusmichaels/wiggly-border-generator/pkg/border
// [sink]: https://pkg.go.dev/github.com/marcusmichaels/wiggly-border-generator/pkg/sink
// [pipeline]: https://pkg.go.dev/github.com/marcusmichaels/wiggly-border-generator/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/marcusmichaels/wiggly-border-generator/pkg/cache
// [config]: https://pkg.go.dev/github.com/marcusmichaels/wiggly-border-generator/pkg/config
// [errors]: https://pkg.go.dev/github.com/marcusmichaels/wiggly-border-generator/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/marcusmichaels/wiggly-border-generator/pkg/buildinfo
package pkg
