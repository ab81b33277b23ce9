// Package config loads the settings of the contour command from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/contourkit/contour"
)

// Config holds all contour command configuration.
type Config struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Generator GeneratorConfig `yaml:"generator"`
	Style     StyleConfig     `yaml:"style"`
	Cache     CacheConfig     `yaml:"cache"`
	Server    ServerConfig    `yaml:"server"`
}

// CanvasConfig is the default canvas for one-shot commands.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Levels int     `yaml:"levels"`
}

// GeneratorConfig mirrors the tunables of contour.Generator. Zero values take
// the generator's defaults.
type GeneratorConfig struct {
	Step       float64 `yaml:"step"`
	MajorEvery int     `yaml:"major_every"`
	MinPoints  int     `yaml:"min_points"`
	Precision  int     `yaml:"precision"`
}

// StyleConfig configures stroke appearance for SVG and PNG output.
type StyleConfig struct {
	Stroke       string  `yaml:"stroke"`
	Background   string  `yaml:"background"`
	MajorWidth   float64 `yaml:"major_width"`
	MinorWidth   float64 `yaml:"minor_width"`
	MajorOpacity float64 `yaml:"major_opacity"`
	MinorOpacity float64 `yaml:"minor_opacity"`
}

// CacheConfig sizes the contour cache of the HTTP server.
type CacheConfig struct {
	Size int `yaml:"size"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	ReadTimeout  string `yaml:"read_timeout"`
	WriteTimeout string `yaml:"write_timeout"`
	// MaxDimension bounds the canvas width and height a request may ask for.
	MaxDimension float64 `yaml:"max_dimension"`
	MaxLevels    int     `yaml:"max_levels"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:  1200,
			Height: 600,
			Levels: contour.DefaultLevels,
		},
		Generator: GeneratorConfig{
			Step:       contour.DefaultStep,
			MajorEvery: contour.DefaultMajorEvery,
			MinPoints:  contour.DefaultMinPoints,
			Precision:  contour.DefaultPrecision,
		},
		Style: StyleConfig{
			Stroke:       contour.DefaultStyle.Stroke,
			Background:   contour.DefaultStyle.Background,
			MajorWidth:   contour.DefaultStyle.MajorWidth,
			MinorWidth:   contour.DefaultStyle.MinorWidth,
			MajorOpacity: contour.DefaultStyle.MajorOpacity,
			MinorOpacity: contour.DefaultStyle.MinorOpacity,
		},
		Cache: CacheConfig{
			Size: contour.DefaultCacheSize,
		},
		Server: ServerConfig{
			Addr:         "127.0.0.1:8080",
			ReadTimeout:  "10s",
			WriteTimeout: "30s",
			MaxDimension: 4096,
			MaxLevels:    64,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies CONTOUR_* environment variables.
func (c *Config) applyEnvOverrides() error {
	float := func(name string, dst *float64) error {
		if s := os.Getenv(name); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", name, err)
			}
			*dst = v
		}
		return nil
	}
	if err := float("CONTOUR_WIDTH", &c.Canvas.Width); err != nil {
		return err
	}
	if err := float("CONTOUR_HEIGHT", &c.Canvas.Height); err != nil {
		return err
	}
	if s := os.Getenv("CONTOUR_LEVELS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid CONTOUR_LEVELS: %w", err)
		}
		c.Canvas.Levels = v
	}
	if s := os.Getenv("CONTOUR_ADDR"); s != "" {
		c.Server.Addr = s
	}
	return nil
}

// Validate checks the configuration for values the generator or server would
// reject.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Levels <= 0 {
		return fmt.Errorf("canvas levels must be positive, got %d", c.Canvas.Levels)
	}
	if c.Generator.Step < 0 {
		return fmt.Errorf("generator step must not be negative, got %g", c.Generator.Step)
	}
	step := c.Generator.Step
	if step == 0 {
		step = contour.DefaultStep
	}
	if _, _, err := contour.GridSize(c.Canvas.Width, c.Canvas.Height, step); err != nil {
		return fmt.Errorf("canvas does not fit the generator step: %w", err)
	}
	if c.Server.MaxDimension <= 0 {
		return fmt.Errorf("server max dimension must be positive, got %g", c.Server.MaxDimension)
	}
	if c.Server.MaxLevels <= 0 {
		return fmt.Errorf("server max levels must be positive, got %d", c.Server.MaxLevels)
	}
	if _, _, err := contour.GridSize(c.Server.MaxDimension, c.Server.MaxDimension, step); err != nil {
		return fmt.Errorf("server max dimension does not fit the generator step: %w", err)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache size must not be negative, got %d", c.Cache.Size)
	}
	if _, err := c.ReadTimeout(); err != nil {
		return err
	}
	if _, err := c.WriteTimeout(); err != nil {
		return err
	}
	return nil
}

// ReadTimeout parses Server.ReadTimeout. An empty value means no timeout.
func (c *Config) ReadTimeout() (time.Duration, error) {
	return parseDuration("server.read_timeout", c.Server.ReadTimeout)
}

// WriteTimeout parses Server.WriteTimeout. An empty value means no timeout.
func (c *Config) WriteTimeout() (time.Duration, error) {
	return parseDuration("server.write_timeout", c.Server.WriteTimeout)
}

func parseDuration(name, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}

// NewGenerator returns the generator described by the configuration. All
// canvases share the terrain noise function.
func (c *Config) NewGenerator() contour.Generator {
	return contour.Generator{
		Step:       c.Generator.Step,
		MajorEvery: c.Generator.MajorEvery,
		MinPoints:  c.Generator.MinPoints,
		Precision:  c.Generator.Precision,
	}
}

// ContourStyle returns the stroke style described by the configuration.
func (c *Config) ContourStyle() contour.Style {
	return contour.Style{
		Stroke:       c.Style.Stroke,
		Background:   c.Style.Background,
		MajorWidth:   c.Style.MajorWidth,
		MinorWidth:   c.Style.MinorWidth,
		MajorOpacity: c.Style.MajorOpacity,
		MinorOpacity: c.Style.MinorOpacity,
	}
}
