// Package geometry implements the primitives behind the wiggly border:
// deterministic wave offsets, aspect-ratio-aware coordinate spaces, edge
// point sampling, and Catmull-Rom spline smoothing into cubic Bezier
// path elements.
//
// Everything in this package is a pure function of its inputs. There is
// no randomness and no hidden state: the same parameters always produce
// the same geometry, which makes results cacheable by content hash.
//
// The package deliberately supports only what the border generator
// needs. It is not a general-purpose curve library.
package geometry
