package sink

import (
	"bytes"
	"fmt"

	"github.com/marcusmichaels/wiggly-border-generator/pkg/border"
)

// Style defaults. The near-black stroke reads as hand-inked; pure black
// looks printed.
const (
	DefaultFill        = "none"
	DefaultStroke      = "#1a1a1a"
	DefaultStrokeWidth = 4.0
)

// SVGOption configures the SVG and JSX sinks.
type SVGOption func(*svgStyle)

type svgStyle struct {
	fill        string
	stroke      string
	strokeWidth float64
	background  string  // empty means transparent
	width       float64 // display size attributes; 0 omits them
	height      float64
}

// WithFill sets the path fill color ("none" for outline only).
func WithFill(color string) SVGOption {
	return func(s *svgStyle) { s.fill = color }
}

// WithStroke sets the stroke color.
func WithStroke(color string) SVGOption {
	return func(s *svgStyle) { s.stroke = color }
}

// WithStrokeWidth sets the stroke width in coordinate-space units.
func WithStrokeWidth(w float64) SVGOption {
	return func(s *svgStyle) { s.strokeWidth = w }
}

// WithBackground adds an opaque background rectangle behind the border.
func WithBackground(color string) SVGOption {
	return func(s *svgStyle) { s.background = color }
}

// WithSize emits explicit width/height attributes on the SVG element.
// Without it the document scales to its container.
func WithSize(width, height float64) SVGOption {
	return func(s *svgStyle) { s.width, s.height = width, height }
}

func newSVGStyle(opts ...SVGOption) svgStyle {
	s := svgStyle{
		fill:        DefaultFill,
		stroke:      DefaultStroke,
		strokeWidth: DefaultStrokeWidth,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// RenderSVG serializes the border as a standalone SVG document.
//
// The viewBox comes from the coordinate space, so the document can be
// displayed at any size; vector-effect="non-scaling-stroke" keeps the
// stroke width visually constant even under the non-uniform scaling a
// stretched viewport applies.
func RenderSVG(b *border.Border, opts ...SVGOption) []byte {
	s := newSVGStyle(opts...)

	var buf bytes.Buffer
	buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	fmt.Fprintf(&buf, ` viewBox="0 0 %.2f %.2f"`, b.Space.Width, b.Space.Height)
	if s.width > 0 && s.height > 0 {
		fmt.Fprintf(&buf, ` width="%.0f" height="%.0f"`, s.width, s.height)
	}
	buf.WriteString(` preserveAspectRatio="none">` + "\n")

	if s.background != "" {
		fmt.Fprintf(&buf, `  <rect width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			b.Space.Width, b.Space.Height, s.background)
	}

	fmt.Fprintf(&buf, `  <path d="%s" fill="%s" stroke="%s" stroke-width="%.2f" stroke-linecap="round" vector-effect="non-scaling-stroke"/>`+"\n",
		b.PathData(), s.fill, s.stroke, s.strokeWidth)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
