// Package config loads generator settings from a TOML file.
//
// A config file provides defaults for the geometry parameters, the style
// options, the preview server, and the artifact cache. Command-line flags
// always override file values.
//
// # Example
//
//	[border]
//	amplitude = 4.0
//	segment_size = 25.0
//	stroke_inset = 4.0
//	width = 400.0
//	height = 300.0
//
//	[style]
//	stroke = "#1a1a1a"
//	stroke_width = 4.0
//	fill = "none"
//
//	[server]
//	addr = ":8080"
//
//	[cache]
//	redis_addr = "localhost:6379"
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/marcusmichaels/wiggly-border-generator/pkg/errors"
	"github.com/marcusmichaels/wiggly-border-generator/pkg/pipeline"
)

// Config holds all file-configurable settings.
type Config struct {
	Border BorderConfig `toml:"border"`
	Style  StyleConfig  `toml:"style"`
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
}

// BorderConfig overrides the default geometry parameters.
// Zero values mean "use the built-in default".
type BorderConfig struct {
	Amplitude   float64 `toml:"amplitude"`
	SegmentSize float64 `toml:"segment_size"`
	StrokeInset float64 `toml:"stroke_inset"`
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Seed        float64 `toml:"seed"`
}

// StyleConfig overrides the default styling options.
type StyleConfig struct {
	Fill        string  `toml:"fill"`
	Stroke      string  `toml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width"`
	Background  string  `toml:"background"`
	Scale       float64 `toml:"scale"`
}

// ServerConfig holds preview server settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig holds artifact cache settings.
type CacheConfig struct {
	// Disabled turns off artifact caching entirely.
	Disabled bool `toml:"disabled"`

	// Dir overrides the default cache directory (~/.cache/<app>).
	Dir string `toml:"dir"`

	// RedisAddr selects the Redis backend instead of the file backend.
	RedisAddr string `toml:"redis_addr"`
}

// DefaultServerAddr is the preview server's default listen address.
const DefaultServerAddr = ":8080"

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: DefaultServerAddr},
	}
}

// Load reads and parses a TOML config file.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}
	return cfg, nil
}

// Apply copies the file's non-zero values onto opts. Values the file
// leaves unset keep whatever opts already carries, so flag handling can
// layer on top.
func (c Config) Apply(opts *pipeline.Options) {
	if c.Border.Amplitude != 0 {
		opts.Amplitude = c.Border.Amplitude
	}
	if c.Border.SegmentSize != 0 {
		opts.SegmentSize = c.Border.SegmentSize
	}
	if c.Border.StrokeInset != 0 {
		opts.StrokeInset = c.Border.StrokeInset
	}
	if c.Border.Width != 0 {
		opts.Width = c.Border.Width
	}
	if c.Border.Height != 0 {
		opts.Height = c.Border.Height
	}
	if c.Border.Seed != 0 {
		opts.Seed = c.Border.Seed
	}
	if c.Style.Fill != "" {
		opts.Fill = c.Style.Fill
	}
	if c.Style.Stroke != "" {
		opts.Stroke = c.Style.Stroke
	}
	if c.Style.StrokeWidth != 0 {
		opts.StrokeWidth = c.Style.StrokeWidth
	}
	if c.Style.Background != "" {
		opts.Background = c.Style.Background
	}
	if c.Style.Scale != 0 {
		opts.Scale = c.Style.Scale
	}
}
