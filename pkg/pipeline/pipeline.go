// Package pipeline provides the generate → render pipeline for the
// border generator.
//
// This package implements the complete flow shared by the CLI, the TUI,
// and the HTTP server: validate options, generate the border geometry,
// and render it into the requested output formats. Centralizing this
// keeps behavior identical across all entry points.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Amplitude:   4,
//	    SegmentSize: 25,
//	    Formats:     []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Generation is deterministic, so rendered artifacts are cached without
// expiry under a content hash of the options.
package pipeline

import (
	"encoding/json"
	"regexp"
	"time"

	"github.com/marcusmichaels/wiggly-border-generator/pkg/border"
	"github.com/marcusmichaels/wiggly-border-generator/pkg/cache"
	"github.com/marcusmichaels/wiggly-border-generator/pkg/errors"
	"github.com/marcusmichaels/wiggly-border-generator/pkg/sink"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatJSX  = "jsx"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
	FormatJSX:  true,
}

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for HTTP requests.
type Options struct {
	// Geometry options (coordinate-space units)
	Amplitude   float64 `json:"amplitude"`
	SegmentSize float64 `json:"segment_size"`
	StrokeInset float64 `json:"stroke_inset"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Seed        float64 `json:"seed,omitempty"`

	// Style options
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	Background  string  `json:"background,omitempty"`
	Scale       float64 `json:"scale,omitempty"` // PNG pixels per coordinate unit

	// Render options
	Formats []string `json:"formats,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// DefaultOptions returns the options every entry point starts from.
func DefaultOptions() Options {
	p := border.DefaultParams()
	return Options{
		Amplitude:   p.Amplitude,
		SegmentSize: p.SegmentSize,
		StrokeInset: p.StrokeInset,
		Width:       p.Width,
		Height:      p.Height,
		Fill:        sink.DefaultFill,
		Stroke:      sink.DefaultStroke,
		StrokeWidth: sink.DefaultStrokeWidth,
		Scale:       sink.DefaultPNGScale,
		Formats:     []string{FormatSVG},
	}
}

// hexColor matches #rgb, #rrggbb and #rrggbbaa.
var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateColor checks that a color is "none" or a hex literal.
func ValidateColor(field, color string) error {
	if color == "" || color == "none" || hexColor.MatchString(color) {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidColor, "%s must be \"none\" or a hex color, got %q", field, color)
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json, jsx)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Fill == "" {
		o.Fill = sink.DefaultFill
	}
	if o.Stroke == "" {
		o.Stroke = sink.DefaultStroke
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = sink.DefaultStrokeWidth
	}
	if o.Scale == 0 {
		o.Scale = sink.DefaultPNGScale
	}

	if err := o.Params().Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateColor("fill", o.Fill); err != nil {
		return err
	}
	if err := ValidateColor("stroke", o.Stroke); err != nil {
		return err
	}
	if err := ValidateColor("background", o.Background); err != nil {
		return err
	}
	if o.StrokeWidth < 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "stroke width must be >= 0, got %v", o.StrokeWidth)
	}
	if o.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "scale must be > 0, got %v", o.Scale)
	}

	o.validated = true
	return nil
}

// Params extracts the geometry parameters from the options.
func (o Options) Params() border.Params {
	return border.Params{
		Amplitude:   o.Amplitude,
		SegmentSize: o.SegmentSize,
		StrokeInset: o.StrokeInset,
		Width:       o.Width,
		Height:      o.Height,
		Seed:        o.Seed,
	}
}

// ContentHash returns the hash that identifies the rendered content.
// The format list is excluded: it selects which artifacts to produce,
// not what any single artifact contains.
func (o Options) ContentHash() string {
	o.Formats = nil
	o.validated = false
	data, _ := json.Marshal(o)
	return cache.Hash(data)
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Border is the generated geometry.
	Border *border.Border

	// OptionsHash is the content hash used for cache keys.
	OptionsHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CurveCount   int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits per rendered format.
type CacheInfo struct {
	Hits map[string]bool
}
