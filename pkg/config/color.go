package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Palette holds the resolved fill colors. Background is nil when disabled.
type Palette struct {
	Agent      color.RGBA
	Obstacle   color.RGBA
	Pad        color.RGBA
	Background color.Color
}

// Palette resolves the configured color strings.
func (c *Config) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Agent, err = ParseColor(c.Agent.Color); err != nil {
		return Palette{}, fmt.Errorf("agent color: %w", err)
	}
	if p.Obstacle, err = ParseColor(c.ObstacleColor); err != nil {
		return Palette{}, fmt.Errorf("obstacle color: %w", err)
	}
	if p.Pad, err = ParseColor(c.PadColor); err != nil {
		return Palette{}, fmt.Errorf("pad color: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(c.Background)) {
	case "", "none", "transparent":
	default:
		bg, err := ParseColor(c.Background)
		if err != nil {
			return Palette{}, fmt.Errorf("background color: %w", err)
		}
		p.Background = bg
	}
	return p, nil
}

// ParseColor accepts an SVG color name ("red", "steelblue") or a hex
// string "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color")
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[s]
		if !ok {
			return color.RGBA{}, fmt.Errorf("unknown color name %q", s)
		}
		return c, nil
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	nrgba := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}
