// Package border generates closed, hand-drawn-looking rectangular
// outlines as cubic Bezier paths.
//
// [Generate] is the single entry point: it takes wave parameters plus a
// target display size and returns the closed path together with the
// coordinate-space dimensions a caller needs to set up a scalable
// viewport. Output is fully deterministic; identical parameters always
// produce byte-identical path data.
package border
