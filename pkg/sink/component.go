package sink

import (
	"bytes"
	"fmt"

	"github.com/marcusmichaels/wiggly-border-generator/pkg/border"
)

// RenderComponent serializes the border as a reusable JSX component.
//
// The component stretches the border behind its children, exposing the
// colors as props with the configured values as defaults. The path data
// itself is baked in: consumers restyle the border, they don't reshape it.
func RenderComponent(b *border.Border, opts ...SVGOption) []byte {
	s := newSVGStyle(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `export const WigglyBorder = ({
  fill = %q,
  stroke = %q,
  strokeWidth = %.2f,
  children,
}) => (
  <div style={{ position: "relative" }}>
    <svg
      viewBox="0 0 %.2f %.2f"
      preserveAspectRatio="none"
      style={{ position: "absolute", inset: 0, width: "100%%", height: "100%%" }}
      aria-hidden="true"
    >
      <path
        d="%s"
        fill={fill}
        stroke={stroke}
        strokeWidth={strokeWidth}
        strokeLinecap="round"
        vectorEffect="non-scaling-stroke"
      />
    </svg>
    {children}
  </div>
);
`, s.fill, s.stroke, s.strokeWidth, b.Space.Width, b.Space.Height, b.PathData())

	return buf.Bytes()
}
