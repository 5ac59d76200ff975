package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/marcusmichaels/wiggly-border-generator/pkg/border"
	"github.com/marcusmichaels/wiggly-border-generator/pkg/geometry"
)

// DefaultPNGScale is the raster pixels-per-coordinate-unit factor.
const DefaultPNGScale = 2.0

// PNGOption configures the PNG sink.
type PNGOption func(*pngOpts)

type pngOpts struct {
	scale float64
	style []SVGOption
}

// WithScale sets the raster scale factor (pixels per coordinate unit).
func WithScale(scale float64) PNGOption {
	return func(o *pngOpts) { o.scale = scale }
}

// WithPNGStyle passes styling options through to the raster output.
func WithPNGStyle(opts ...SVGOption) PNGOption {
	return func(o *pngOpts) { o.style = append(o.style, opts...) }
}

// RenderPNG rasterizes the border.
//
// Unlike the vector sinks there is no non-scaling-stroke trick here: the
// raster is drawn at a fixed scale, so the stroke width is simply scaled
// along with the geometry.
func RenderPNG(b *border.Border, opts ...PNGOption) ([]byte, error) {
	o := pngOpts{scale: DefaultPNGScale}
	for _, opt := range opts {
		opt(&o)
	}
	s := newSVGStyle(o.style...)

	w := int(math.Ceil(b.Space.Width * o.scale))
	h := int(math.Ceil(b.Space.Height * o.scale))
	dc := gg.NewContext(w, h)

	if s.background != "" {
		dc.SetHexColor(s.background)
		dc.Clear()
	}

	dc.Scale(o.scale, o.scale)
	for _, el := range b.Path {
		switch e := el.(type) {
		case geometry.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case geometry.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case geometry.ClosePath:
			dc.ClosePath()
		}
	}

	if s.fill != "" && s.fill != "none" {
		dc.SetHexColor(s.fill)
		dc.FillPreserve()
	}
	dc.SetHexColor(s.stroke)
	dc.SetLineWidth(s.strokeWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.Stroke()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
