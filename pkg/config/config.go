// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-lander/pkg/geom"
)

// Policy selects how the renderer treats a recoverable per-object failure.
type Policy string

// Failure policies.
const (
	PolicySkip  Policy = "skip"  // drop the object, keep rendering
	PolicyAbort Policy = "abort" // fail the whole frame
	PolicyClamp Policy = "clamp" // geometry only: draw malformed boxes with zero area
)

// PaintOrder selects the order objects are painted in.
type PaintOrder string

// Paint orders.
const (
	PaintOrderClass PaintOrder = "class" // class by class, in painter registration order
	PaintOrderScene PaintOrder = "scene" // as listed in the scene
)

// Config contains configuration for a lander visualizer.
type Config struct {
	Bounds                BoundsConfig `json:"bounds" yaml:"bounds"`
	Agent                 AgentConfig  `json:"agent" yaml:"agent"`
	ObstacleColor         string       `json:"obstacleColor" yaml:"obstacleColor"`
	PadColor              string       `json:"padColor" yaml:"padColor"`
	Background            string       `json:"background" yaml:"background"`
	UnknownClassPolicy    Policy       `json:"unknownClassPolicy" yaml:"unknownClassPolicy"`
	InvalidGeometryPolicy Policy       `json:"invalidGeometryPolicy" yaml:"invalidGeometryPolicy"`
	PaintOrder            PaintOrder   `json:"paintOrder" yaml:"paintOrder"`
	Canvas                CanvasConfig `json:"canvas" yaml:"canvas"`
}

// BoundsConfig is the physics-space viewport.
type BoundsConfig struct {
	XMin float64 `json:"xmin" yaml:"xmin"`
	XMax float64 `json:"xmax" yaml:"xmax"`
	YMin float64 `json:"ymin" yaml:"ymin"`
	YMax float64 `json:"ymax" yaml:"ymax"`
}

// AgentConfig sizes and colors the lander. Width and Height are pixels,
// independent of the physics viewport.
type AgentConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Color  string  `json:"color" yaml:"color"`
}

// CanvasConfig is the default draw surface size used by hosts.
type CanvasConfig struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// DefaultConfig returns the lunar lander defaults.
func DefaultConfig() *Config {
	return &Config{
		Bounds: BoundsConfig{
			XMin: 0,
			XMax: 100,
			YMin: 0,
			YMax: 50,
		},
		Agent: AgentConfig{
			Width:  30,
			Height: 40,
			Color:  "red",
		},
		ObstacleColor:         "black",
		PadColor:              "blue",
		Background:            "white",
		UnknownClassPolicy:    PolicySkip,
		InvalidGeometryPolicy: PolicySkip,
		PaintOrder:            PaintOrderClass,
		Canvas: CanvasConfig{
			Width:  800,
			Height: 400,
		},
	}
}

// PhysicsBounds converts the bounds section, failing with *geom.DegenerateBoundsError.
func (c *Config) PhysicsBounds() (geom.Bounds, error) {
	return geom.NewBounds(c.Bounds.XMin, c.Bounds.XMax, c.Bounds.YMin, c.Bounds.YMax)
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if _, err := c.PhysicsBounds(); err != nil {
		return err
	}
	if !(c.Agent.Width > 0) || !(c.Agent.Height > 0) {
		return fmt.Errorf("agent size must be positive, got %gx%g", c.Agent.Width, c.Agent.Height)
	}
	switch c.UnknownClassPolicy {
	case PolicySkip, PolicyAbort:
	default:
		return fmt.Errorf("invalid unknownClassPolicy %q (want skip or abort)", c.UnknownClassPolicy)
	}
	switch c.InvalidGeometryPolicy {
	case PolicySkip, PolicyClamp, PolicyAbort:
	default:
		return fmt.Errorf("invalid invalidGeometryPolicy %q (want skip, clamp or abort)", c.InvalidGeometryPolicy)
	}
	switch c.PaintOrder {
	case PaintOrderClass, PaintOrderScene:
	default:
		return fmt.Errorf("invalid paintOrder %q (want class or scene)", c.PaintOrder)
	}
	if c.Canvas.Width < 0 || c.Canvas.Height < 0 {
		return fmt.Errorf("canvas size cannot be negative, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// LoadConfig loads a configuration from a .json, .yaml or .yml file.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	yamlFile, err := isYAML(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if yamlFile {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration as YAML for .yaml/.yml paths and JSON for .json paths.
func SaveConfig(config *Config, path string) error {
	if config == nil {
		return fmt.Errorf("failed to marshal config: config is nil")
	}
	yamlFile, err := isYAML(path)
	if err != nil {
		return err
	}

	var data []byte
	if yamlFile {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// isYAML picks the config encoding from the file extension.
func isYAML(path string) (bool, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return true, nil
	case ".json":
		return false, nil
	default:
		return false, fmt.Errorf("unsupported config file extension %q (want .json, .yaml or .yml)", ext)
	}
}

// ApplyEnv overrides fields from LANDER_* environment variables.
func (c *Config) ApplyEnv() error {
	floats := []struct {
		key string
		dst *float64
	}{
		{"LANDER_XMIN", &c.Bounds.XMin},
		{"LANDER_XMAX", &c.Bounds.XMax},
		{"LANDER_YMIN", &c.Bounds.YMin},
		{"LANDER_YMAX", &c.Bounds.YMax},
	}
	for _, f := range floats {
		if v, ok := os.LookupEnv(f.key); ok {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", f.key, err)
			}
			*f.dst = parsed
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"LANDER_CANVAS_WIDTH", &c.Canvas.Width},
		{"LANDER_CANVAS_HEIGHT", &c.Canvas.Height},
	}
	for _, i := range ints {
		if v, ok := os.LookupEnv(i.key); ok {
			parsed, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("invalid %s: %w", i.key, err)
			}
			*i.dst = parsed
		}
	}

	if v, ok := os.LookupEnv("LANDER_UNKNOWN_CLASS_POLICY"); ok {
		c.UnknownClassPolicy = Policy(strings.ToLower(strings.TrimSpace(v)))
	}
	if v, ok := os.LookupEnv("LANDER_INVALID_GEOMETRY_POLICY"); ok {
		c.InvalidGeometryPolicy = Policy(strings.ToLower(strings.TrimSpace(v)))
	}
	return nil
}

// Resolve loads path, or the defaults when path is empty or missing, then
// applies environment overrides and validates the result.
func Resolve(path string) (*Config, error) {
	config := DefaultConfig()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if config, err = LoadConfig(path); err != nil {
				return nil, err
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
	}
	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}
