package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/marykwonn/Project-Texas/internal/core/model"
	"github.com/marykwonn/Project-Texas/internal/core/palette"
	"gopkg.in/yaml.v3"
)

// ErrUnknownRegion is returned when a region name is not configured.
var ErrUnknownRegion = errors.New("unknown region")

// DefaultRegion is the well set selected when no region is named.
const DefaultRegion = "lbu-sample"

// Config holds the wellviz configuration.
type Config struct {
	// Regions maps a region name to the well common names it covers
	Regions map[string]Region `yaml:"regions"`

	Palette PaletteConfig `yaml:"palette"`
	Fault   FaultConfig   `yaml:"fault"`
	Layout  LayoutConfig  `yaml:"layout"`
	Logging LoggingConfig `yaml:"logging"`
}

// Region is a named well selection.
type Region struct {
	Title string   `yaml:"title"`
	Wells []string `yaml:"wells"`
}

// PaletteConfig overrides the built-in color tables.
type PaletteConfig struct {
	MarkerCodes    []string          `yaml:"marker_codes"`
	MarkerColors   []string          `yaml:"marker_colors"`
	StatusColors   map[string]string `yaml:"status_colors"`
	MarkerFallback string            `yaml:"marker_fallback"`
	StatusFallback string            `yaml:"status_fallback"`
}

// FaultConfig locates the fault geometry file.
type FaultConfig struct {
	Path        string `yaml:"path"`
	Name        string `yaml:"name"`
	HeaderLines int    `yaml:"header_lines"`
}

// LayoutConfig is the static scene configuration.
type LayoutConfig struct {
	Title     string `yaml:"title"`
	ClickMode string `yaml:"click_mode"`
	Height    int    `yaml:"height"`
	XTitle    string `yaml:"x_title"`
	YTitle    string `yaml:"y_title"`
	ZTitle    string `yaml:"z_title"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text, json
	File   string `yaml:"file"`
}

// DefaultWells is the well set of the LBU sample dashboard.
var DefaultWells = []string{
	"A374", "A547", "A363", "A533", "A774", "A403", "A536", "A369", "A750", "A401",
	"A820", "A540", "J155", "B750", "J448", "A360", "A754", "J331", "J343",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Regions: map[string]Region{
			DefaultRegion: {Title: "LBU -SAMPLE", Wells: append([]string(nil), DefaultWells...)},
		},
		Fault: FaultConfig{Name: "WILM"},
		Layout: LayoutConfig{
			Title:     "LBU -SAMPLE",
			ClickMode: "event+select",
			Height:    1400,
			XTitle:    "X (EASTING)",
			YTitle:    "Y (NORTHING)",
			ZTitle:    "SUBSURFACE Z",
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if c.Fault.HeaderLines < 0 {
		return fmt.Errorf("fault.header_lines must not be negative, got %d", c.Fault.HeaderLines)
	}
	if c.Layout.Height < 0 {
		return fmt.Errorf("layout.height must not be negative, got %d", c.Layout.Height)
	}
	for name, r := range c.Regions {
		if len(r.Wells) == 0 {
			return fmt.Errorf("region %s has no wells", name)
		}
	}
	return nil
}

// Region returns a configured region by name.
func (c *Config) Region(name string) (Region, error) {
	if name == "" {
		name = DefaultRegion
	}
	r, ok := c.Regions[name]
	if !ok {
		return Region{}, fmt.Errorf("%w: %s", ErrUnknownRegion, name)
	}
	return r, nil
}

// RegionNames returns the configured region names, sorted.
func (c *Config) RegionNames() []string {
	names := make([]string, 0, len(c.Regions))
	for name := range c.Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildPalette returns the immutable palette described by the config.
func (c *Config) BuildPalette() palette.Palette {
	return palette.New(palette.Options{
		MarkerCodes:    c.Palette.MarkerCodes,
		MarkerColors:   c.Palette.MarkerColors,
		StatusColors:   c.Palette.StatusColors,
		MarkerFallback: c.Palette.MarkerFallback,
		StatusFallback: c.Palette.StatusFallback,
	})
}

// BuildLayout returns the scene layout. A non-empty title overrides the
// configured one.
func (c *Config) BuildLayout(title string) model.Layout {
	if title == "" {
		title = c.Layout.Title
	}
	return model.Layout{
		Title:     title,
		ClickMode: c.Layout.ClickMode,
		Height:    c.Layout.Height,
		Scene: model.Scene{
			XAxis: model.Axis{Title: c.Layout.XTitle},
			YAxis: model.Axis{Title: c.Layout.YTitle},
			ZAxis: model.Axis{Title: c.Layout.ZTitle},
		},
	}
}
