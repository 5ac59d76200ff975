package pipeline

import (
	"encoding/json"

	"github.com/marcusmichaels/wiggly-border-generator/pkg/border"
	"github.com/marcusmichaels/wiggly-border-generator/pkg/errors"
	"github.com/marcusmichaels/wiggly-border-generator/pkg/sink"
)

// Generate produces the border geometry for the given options.
func Generate(opts Options) (*border.Border, error) {
	return border.Generate(opts.Params())
}

// Render serializes a generated border into the requested format.
func Render(b *border.Border, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(b, opts.svgOptions()...), nil
	case FormatJSX:
		return sink.RenderComponent(b, opts.svgOptions()...), nil
	case FormatPNG:
		return sink.RenderPNG(b,
			sink.WithScale(opts.Scale),
			sink.WithPNGStyle(opts.svgOptions()...))
	case FormatJSON:
		return marshalBorder(b, opts)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %q", format)
	}
}

// svgOptions translates pipeline options into sink styling options.
func (o Options) svgOptions() []sink.SVGOption {
	svgOpts := []sink.SVGOption{
		sink.WithFill(o.Fill),
		sink.WithStroke(o.Stroke),
		sink.WithStrokeWidth(o.StrokeWidth),
		sink.WithSize(o.Width, o.Height),
	}
	if o.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(o.Background))
	}
	return svgOpts
}

// borderJSON is the programmatic artifact format: enough for a consumer
// to build its own markup without re-running the geometry.
type borderJSON struct {
	Path   string        `json:"path"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Params border.Params `json:"params"`
}

func marshalBorder(b *border.Border, opts Options) ([]byte, error) {
	out := borderJSON{
		Path:   b.PathData(),
		Width:  b.Space.Width,
		Height: b.Space.Height,
		Params: opts.Params(),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode border")
	}
	return append(data, '\n'), nil
}
