package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/marcusmichaels/wiggly-border-generator/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
// Geometry flags are expressed in coordinate-space units; style flags take
// "none" or hex color literals.
type generateOpts struct {
	output      string // output file (single format) or base path (multiple)
	formatsStr  string // comma-separated output formats
	noCache     bool   // bypass the artifact cache
	amplitude   float64
	segmentSize float64
	strokeInset float64
	width       float64
	height      float64
	seed        float64
	fill        string
	stroke      string
	strokeWidth float64
	background  string
	scale       float64
}

// generateCommand creates the generate command for producing border artifacts.
//
// Default settings:
//   - amplitude: 4, segment size: 25, stroke inset: 4
//   - target dimensions: 400x300
//   - format: svg (png, json, jsx also available)
//   - stroke: #1a1a1a at width 4, no fill
func (c *CLI) generateCommand() *cobra.Command {
	defaults := pipeline.DefaultOptions()
	var g generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate wiggly border artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.defaultOptions()
			applyFlagOverrides(cmd, &opts, &g)
			opts.Formats = parseFormats(g.formatsStr)
			return c.runGenerate(cmd, opts, &g)
		},
	}

	cmd.Flags().StringVarP(&g.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&g.formatsStr, "format", "f", "", "output format(s): svg (default), png, json, jsx (comma-separated)")
	cmd.Flags().BoolVar(&g.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().Float64Var(&g.amplitude, "amplitude", defaults.Amplitude, "maximum wobble amplitude")
	cmd.Flags().Float64Var(&g.segmentSize, "segment-size", defaults.SegmentSize, "target length of one edge segment")
	cmd.Flags().Float64Var(&g.strokeInset, "stroke-inset", defaults.StrokeInset, "inset keeping the stroke inside the canvas")
	cmd.Flags().Float64Var(&g.width, "width", defaults.Width, "target display width")
	cmd.Flags().Float64Var(&g.height, "height", defaults.Height, "target display height")
	cmd.Flags().Float64Var(&g.seed, "seed", 0, "seed offset applied to all edges")
	cmd.Flags().StringVar(&g.fill, "fill", defaults.Fill, "fill color (\"none\" or hex)")
	cmd.Flags().StringVar(&g.stroke, "stroke", defaults.Stroke, "stroke color (hex)")
	cmd.Flags().Float64Var(&g.strokeWidth, "stroke-width", defaults.StrokeWidth, "stroke width in pixels")
	cmd.Flags().StringVar(&g.background, "background", "", "background color for svg/png (hex)")
	cmd.Flags().Float64Var(&g.scale, "scale", defaults.Scale, "png pixels per coordinate unit")

	return cmd
}

// applyFlagOverrides copies explicitly-set flags onto opts. Flags left at
// their defaults don't override config file values.
func applyFlagOverrides(cmd *cobra.Command, opts *pipeline.Options, g *generateOpts) {
	flags := cmd.Flags()
	if flags.Changed("amplitude") {
		opts.Amplitude = g.amplitude
	}
	if flags.Changed("segment-size") {
		opts.SegmentSize = g.segmentSize
	}
	if flags.Changed("stroke-inset") {
		opts.StrokeInset = g.strokeInset
	}
	if flags.Changed("width") {
		opts.Width = g.width
	}
	if flags.Changed("height") {
		opts.Height = g.height
	}
	if flags.Changed("seed") {
		opts.Seed = g.seed
	}
	if flags.Changed("fill") {
		opts.Fill = g.fill
	}
	if flags.Changed("stroke") {
		opts.Stroke = g.stroke
	}
	if flags.Changed("stroke-width") {
		opts.StrokeWidth = g.strokeWidth
	}
	if flags.Changed("background") {
		opts.Background = g.background
	}
	if flags.Changed("scale") {
		opts.Scale = g.scale
	}
}

// runGenerate executes the pipeline and writes one file per format.
func (c *CLI) runGenerate(cmd *cobra.Command, opts pipeline.Options, g *generateOpts) error {
	runner, err := c.newRunner(g.noCache)
	if err != nil {
		return fmt.Errorf("create runner: %w", err)
	}

	prog := newProgress(c.Logger)
	result, err := runner.Execute(cmd.Context(), opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(result.Artifacts)))

	base := fmt.Sprintf("border-%s", uuid.NewString()[:8])
	multi := len(opts.Formats) > 1

	printSuccess("Generated wiggly border")
	cached := true
	for _, format := range opts.Formats {
		if !result.CacheInfo.Hits[format] {
			cached = false
		}
		path := outputPath(g.output, base, format, multi)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(result.Stats.CurveCount, len(result.Artifacts), cached)
	printNextStep("Preview in the browser", appName+" serve")

	return nil
}
