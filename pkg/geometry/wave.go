package geometry

import "math"

// WaveOffset returns the deterministic displacement for the point at the
// given 1-based index along an edge.
//
// Three sine terms at incommensurate frequencies are summed so the result
// is neither periodic nor visually uniform. The seed shifts the phase of
// each term, so edges with different seeds produce unrelated wiggle. The
// variation term stays in [-0.75, 0.75], which bounds the offset to
// [-0.25*amplitude, 1.25*amplitude].
func WaveOffset(index int, amplitude, seed float64) float64 {
	i := float64(index)
	variation := 0.3*math.Sin(1.7*i+seed) +
		0.2*math.Sin(2.3*i+1.5*seed) +
		0.25*math.Sin(0.9*i+0.7*seed)
	return amplitude * (0.5 + variation)
}
