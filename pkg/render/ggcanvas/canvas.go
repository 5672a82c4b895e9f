// Package ggcanvas draws lander scenes with the gogpu/gg 2D library.
package ggcanvas

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/opd-ai/go-lander/pkg/geom"
)

// Canvas adapts a gg.Context to render.Canvas.
type Canvas struct {
	dc *gg.Context
}

// New creates a canvas backed by a fresh width x height context.
func New(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// Size returns the context size in pixels.
func (c *Canvas) Size() geom.Size {
	return geom.Size{Width: float64(c.dc.Width()), Height: float64(c.dc.Height())}
}

// Clear fills the whole context with col.
func (c *Canvas) Clear(col color.Color) error {
	c.dc.ClearWithColor(gg.FromColor(col))
	return nil
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(r geom.Rect, col color.Color) error {
	r = r.Canon()
	if r.Empty() {
		return nil
	}
	c.dc.SetColor(col)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("gg fill rectangle: %w", err)
	}
	return nil
}

// FillPolygon fills a closed polygon.
func (c *Canvas) FillPolygon(points geom.Polygon, col color.Color) error {
	if len(points) < 3 {
		return nil
	}
	c.dc.SetColor(col)
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, v := range points[1:] {
		c.dc.LineTo(v.X, v.Y)
	}
	c.dc.ClosePath()
	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("gg fill polygon: %w", err)
	}
	return nil
}

// Image returns a snapshot of the drawn pixels.
func (c *Canvas) Image() (*image.RGBA, error) {
	if err := c.dc.FlushGPU(); err != nil {
		return nil, err
	}
	img, ok := c.dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected gg image type %T", c.dc.Image())
	}
	return img, nil
}

// SavePNG writes the drawn pixels to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// EncodePNG writes the drawn pixels as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
