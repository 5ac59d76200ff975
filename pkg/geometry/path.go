package geometry

// PathElement is a single curve-draw instruction.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve to Point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// ClosePath closes the path back to its starting point.
type ClosePath struct{}

func (ClosePath) isPathElement() {}

// SplineTension controls how tightly the smoothed curve hugs the sampled
// points. 0 would yield straight lines between points.
const SplineTension = 0.5

// Smooth converts an ordered point sequence into a path that passes
// through every point: a MoveTo to the first point followed by one
// CubicTo per consecutive pair, with Catmull-Rom-derived control points.
//
// At the sequence boundaries the first and last points stand in as their
// own neighbors, which keeps the open ends from overshooting. Smooth
// never closes the path; that is the caller's decision. Fewer than two
// points yields nil, defined rather than an error.
func Smooth(points []Point) []PathElement {
	if len(points) < 2 {
		return nil
	}

	const k = SplineTension / 3

	elems := make([]PathElement, 0, len(points))
	elems = append(elems, MoveTo{Point: points[0]})
	for i := 0; i < len(points)-1; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, len(points)-1)]

		elems = append(elems, CubicTo{
			Control1: p1.Add(p2.Sub(p0).Mul(k)),
			Control2: p2.Sub(p3.Sub(p1).Mul(k)),
			Point:    p2,
		})
	}
	return elems
}
