package border

import (
	"fmt"
	"strings"

	"github.com/marcusmichaels/wiggly-border-generator/pkg/errors"
	"github.com/marcusmichaels/wiggly-border-generator/pkg/geometry"
)

// Per-edge phase seeds. The values are arbitrary but fixed: each edge
// needs its own phase so opposite sides do not wave in lockstep, and
// they must never change or previously generated borders stop being
// reproducible.
const (
	SeedTop    = 1.3
	SeedRight  = 2.7
	SeedBottom = 3.9
	SeedLeft   = 4.6
)

// Params are the inputs to a generation call. All geometry values are in
// coordinate-space units, not display pixels.
type Params struct {
	// Amplitude is the base wave height. 0 produces a straight
	// rectangle with softly rounded corners from the spline.
	Amplitude float64 `json:"amplitude"`

	// SegmentSize is the target length of one wave segment.
	SegmentSize float64 `json:"segment_size"`

	// StrokeInset reserves extra room between the waves and the edge of
	// the coordinate space so thick strokes are not clipped.
	StrokeInset float64 `json:"stroke_inset"`

	// Width and Height describe the target display size. Only their
	// ratio matters; the working coordinate space is derived from it.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Seed is added to every edge's phase seed. 0 keeps the canonical
	// wiggle; any other value produces a different but equally
	// deterministic border.
	Seed float64 `json:"seed,omitempty"`
}

// DefaultParams returns the parameter set the interactive tools start from.
func DefaultParams() Params {
	return Params{
		Amplitude:   4,
		SegmentSize: 25,
		StrokeInset: 4,
		Width:       400,
		Height:      300,
	}
}

// Validate checks that the parameters have a defined geometric meaning.
// Out-of-range values fail with ErrCodeInvalidParameter rather than
// being clamped: silently adjusting inputs would make the same Params
// mean different things in different versions.
func (p Params) Validate() error {
	if p.Amplitude < 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "amplitude must be >= 0, got %v", p.Amplitude)
	}
	if p.SegmentSize <= 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "segment size must be > 0, got %v", p.SegmentSize)
	}
	if p.StrokeInset < 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "stroke inset must be >= 0, got %v", p.StrokeInset)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "target dimensions must be > 0, got %vx%v", p.Width, p.Height)
	}
	return nil
}

// Border is the result of one generation call: a closed path and the
// coordinate space it lives in. It is never mutated after creation.
type Border struct {
	Path  []geometry.PathElement
	Space geometry.Space
}

// Generate produces a closed wavy rectangle for the given parameters.
//
// The four edges are sampled clockwise from the top-left corner, the
// shared corner points are deduplicated, and the concatenated sequence
// is smoothed into one continuous cubic Bezier path ending in a close
// instruction.
func Generate(p Params) (*Border, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	space := geometry.FitSpace(p.Width, p.Height)
	points := outlinePoints(p, space)

	path := geometry.Smooth(points)
	path = append(path, geometry.ClosePath{})

	return &Border{Path: path, Space: space}, nil
}

// outlinePoints samples the four edges of the working rectangle and
// concatenates them into a single clockwise sequence with no duplicate
// points at the corners.
func outlinePoints(p Params, space geometry.Space) []geometry.Point {
	pad := p.Amplitude + p.StrokeInset

	topLeft := geometry.Pt(pad, pad)
	topRight := geometry.Pt(space.Width-pad, pad)
	bottomRight := geometry.Pt(space.Width-pad, space.Height-pad)
	bottomLeft := geometry.Pt(pad, space.Height-pad)

	hSegments := geometry.SegmentCount(topLeft.Distance(topRight), p.SegmentSize, geometry.MinHorizontalSegments)
	vSegments := geometry.SegmentCount(topRight.Distance(bottomRight), p.SegmentSize, geometry.MinVerticalSegments)

	top := geometry.Edge{
		Start: topLeft, End: topRight,
		Segments: hSegments,
		Seed:     SeedTop + p.Seed,
		Normal:   geometry.Pt(0, -1),
	}
	right := geometry.Edge{
		Start: topRight, End: bottomRight,
		Segments: vSegments,
		Seed:     SeedRight + p.Seed,
		Normal:   geometry.Pt(1, 0),
	}
	bottom := geometry.Edge{
		Start: bottomRight, End: bottomLeft,
		Segments: hSegments,
		Seed:     SeedBottom + p.Seed,
		Normal:   geometry.Pt(0, 1),
	}
	left := geometry.Edge{
		Start: bottomLeft, End: topLeft,
		Segments: vSegments,
		Seed:     SeedLeft + p.Seed,
		Normal:   geometry.Pt(-1, 0),
	}

	points := make([]geometry.Point, 0, 2*(hSegments+vSegments))
	points = append(points, top.SamplePoints(p.Amplitude)...)

	// Each edge starts where the previous one ended, and the left edge
	// also ends at the path's starting corner. Skip those duplicates so
	// the spline sees each corner exactly once.
	rightPts := right.SamplePoints(p.Amplitude)
	points = append(points, rightPts[1:]...)

	bottomPts := bottom.SamplePoints(p.Amplitude)
	points = append(points, bottomPts[1:]...)

	leftPts := left.SamplePoints(p.Amplitude)
	points = append(points, leftPts[1:len(leftPts)-1]...)

	return points
}

// PathData serializes the path as an SVG "d" attribute string.
// Coordinates are formatted with two decimals so the output is
// byte-stable across runs and safe to cache by content.
func (b *Border) PathData() string {
	var sb strings.Builder
	for i, el := range b.Path {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e := el.(type) {
		case geometry.MoveTo:
			fmt.Fprintf(&sb, "M%.2f,%.2f", e.Point.X, e.Point.Y)
		case geometry.CubicTo:
			fmt.Fprintf(&sb, "C%.2f,%.2f %.2f,%.2f %.2f,%.2f",
				e.Control1.X, e.Control1.Y,
				e.Control2.X, e.Control2.Y,
				e.Point.X, e.Point.Y)
		case geometry.ClosePath:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}
