package geometry

// BaseSize is the length of the pinned axis of every coordinate space.
//
// Wave density and amplitude are interpreted in coordinate-space units,
// never display pixels. Pinning the short axis to a constant keeps the
// waves visually uniform no matter how large the border is displayed.
const BaseSize = 300.0

// Space is the internal plane all geometry is computed in. One dimension
// is always BaseSize; the other is scaled by the target aspect ratio.
type Space struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FitSpace derives the coordinate space for a target display size.
// The resulting aspect ratio matches targetWidth/targetHeight exactly.
// Both targets must be positive; callers validate before reaching here.
func FitSpace(targetWidth, targetHeight float64) Space {
	if targetWidth >= targetHeight {
		return Space{
			Width:  BaseSize * targetWidth / targetHeight,
			Height: BaseSize,
		}
	}
	return Space{
		Width:  BaseSize,
		Height: BaseSize * targetHeight / targetWidth,
	}
}
