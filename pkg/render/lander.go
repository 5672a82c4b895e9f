package render

import (
	"fmt"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/state"
)

// NewLanderRegistry registers the agent, obstacle and pad painters, in
// that order, from cfg. Malformed boxes are clamped when the geometry
// policy is clamp.
func NewLanderRegistry(cfg *config.Config, extra ...Registration) (*Registry, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	clamp := cfg.InvalidGeometryPolicy == config.PolicyClamp

	entries := []Registration{
		{Class: state.ClassAgent, Painter: AgentPainter{Width: cfg.Agent.Width, Height: cfg.Agent.Height, Color: palette.Agent}},
		{Class: state.ClassObstacle, Painter: NewObstaclePainter(palette.Obstacle, clamp)},
		{Class: state.ClassPad, Painter: NewPadPainter(palette.Pad, clamp)},
	}
	return NewRegistry(append(entries, extra...)...)
}

// NewLanderRenderer builds the lunar lander scene renderer from cfg.
func NewLanderRenderer(cfg *config.Config, logger *logging.Logger, extra ...Registration) (*StateRenderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	bounds, err := cfg.PhysicsBounds()
	if err != nil {
		return nil, err
	}
	registry, err := NewLanderRegistry(cfg, extra...)
	if err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithLogger(logger),
		WithUnknownClassPolicy(cfg.UnknownClassPolicy),
		WithGeometryPolicy(cfg.InvalidGeometryPolicy),
		WithPaintOrder(cfg.PaintOrder),
	}
	if palette.Background != nil {
		opts = append(opts, WithBackground(palette.Background))
	}
	return NewStateRenderer(bounds, registry, opts...)
}
