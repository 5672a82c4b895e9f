package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/opd-ai/go-lander/pkg/geom"
)

// ImageCanvas rasterizes fills into an in-memory RGBA image.
type ImageCanvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

// NewImageCanvas returns a transparent canvas of width x height pixels.
func NewImageCanvas(width, height int) *ImageCanvas {
	width, height = max(width, 0), max(height, 0)
	return &ImageCanvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: vector.NewRasterizer(width, height),
	}
}

// Size returns the canvas size in pixels.
func (c *ImageCanvas) Size() geom.Size {
	b := c.img.Bounds()
	return geom.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Image returns the backing image. It is reused across frames.
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

// Clear implements Clearer.
func (c *ImageCanvas) Clear(col color.Color) error {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	return nil
}

// FillRect implements Canvas.
func (c *ImageCanvas) FillRect(r geom.Rect, col color.Color) error {
	return c.FillPolygon(r.Canon().Corners(), col)
}

// FillPolygon implements Canvas. Parts outside the canvas are clipped away.
func (c *ImageCanvas) FillPolygon(points geom.Polygon, col color.Color) error {
	if !points.IsFinite() {
		return fmt.Errorf("polygon has non-finite vertices")
	}
	size := c.Size()
	if size.Width == 0 || size.Height == 0 {
		return nil
	}
	clipped := points.ClipToRect(geom.Rect{W: size.Width, H: size.Height})
	if len(clipped) < 3 {
		return nil
	}

	c.ras.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	c.ras.DrawOp = draw.Over
	c.ras.MoveTo(float32(clipped[0].X), float32(clipped[0].Y))
	for _, v := range clipped[1:] {
		c.ras.LineTo(float32(v.X), float32(v.Y))
	}
	c.ras.ClosePath()
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	return nil
}

// EncodePNG writes the canvas as PNG.
func (c *ImageCanvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the canvas to a PNG file.
func (c *ImageCanvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return f.Close()
}
