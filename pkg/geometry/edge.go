package geometry

import "math"

// Per-axis segment count floors. An edge never collapses below its floor
// regardless of how short it is or how large the target segment size is,
// so every side keeps visually distinguishable waves. Horizontal edges
// are typically longer, so their floor is the larger of the two.
const (
	MinHorizontalSegments = 8
	MinVerticalSegments   = 5
)

// SegmentCount returns the number of wave segments for an edge of the
// given straight-line length, targeting one segment per segmentSize
// units but never fewer than floor.
func SegmentCount(length, segmentSize float64, floor int) int {
	n := int(math.Round(length / segmentSize))
	if n < floor {
		return floor
	}
	return n
}

// Edge describes one side of the working rectangle.
//
// Normal must be a unit vector perpendicular to End-Start pointing away
// from the rectangle interior; sampled points are displaced along it.
type Edge struct {
	Start    Point
	End      Point
	Segments int // number of wave segments, >= 1
	Seed     float64
	Normal   Point
}

// SamplePoints returns Segments+1 points from Start to End inclusive.
//
// The first and last points are Start and End exactly, keeping corners
// sharp. Each interior point sits at its linear interpolation position,
// displaced along the outward normal by the wave offset. The offset sign
// alternates per point: the slowly varying sine sum would otherwise bias
// whole runs of points outward and produce lopsided bulges instead of
// an organic wiggle.
func (e Edge) SamplePoints(amplitude float64) []Point {
	pts := make([]Point, 0, e.Segments+1)
	pts = append(pts, e.Start)
	for i := 1; i < e.Segments; i++ {
		t := float64(i) / float64(e.Segments)
		offset := WaveOffset(i, amplitude, e.Seed)
		if i%2 == 1 {
			offset = -offset
		}
		pts = append(pts, e.Start.Lerp(e.End, t).Add(e.Normal.Mul(offset)))
	}
	pts = append(pts, e.End)
	return pts
}
