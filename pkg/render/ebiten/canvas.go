// Package ebiten hosts lander scenes in an Ebitengine window.
package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/go-lander/pkg/geom"
)

// Canvas draws fills onto an *ebiten.Image. Point it at the screen with
// SetTarget before each frame.
type Canvas struct {
	dst   *ebiten.Image
	white *ebiten.Image
}

// NewCanvas returns a canvas drawing onto dst, which may be nil until the
// first SetTarget.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

// SetTarget switches the destination image.
func (c *Canvas) SetTarget(dst *ebiten.Image) { c.dst = dst }

// Size returns the destination size in pixels.
func (c *Canvas) Size() geom.Size {
	if c.dst == nil {
		return geom.Size{}
	}
	b := c.dst.Bounds()
	return geom.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Clear implements render.Clearer.
func (c *Canvas) Clear(col color.Color) error {
	if c.dst != nil {
		c.dst.Fill(col)
	}
	return nil
}

// FillRect implements render.Canvas.
func (c *Canvas) FillRect(r geom.Rect, col color.Color) error {
	r = r.Canon()
	if c.dst == nil || r.Empty() {
		return nil
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, true)
	return nil
}

// FillPolygon implements render.Canvas.
func (c *Canvas) FillPolygon(points geom.Polygon, col color.Color) error {
	if c.dst == nil || len(points) < 3 {
		return nil
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, v := range points[1:] {
		path.LineTo(float32(v.X), float32(v.Y))
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	paintVertices(vertices, col)
	c.dst.DrawTriangles(vertices, indices, c.whiteImage(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
	return nil
}

func (c *Canvas) whiteImage() *ebiten.Image {
	if c.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		c.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return c.white
}

// paintVertices colors every vertex with premultiplied col and points its
// source at the single white texel.
func paintVertices(vertices []ebiten.Vertex, col color.Color) {
	r, g, b, a := col.RGBA()
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = float32(r) / 0xffff
		vertices[i].ColorG = float32(g) / 0xffff
		vertices[i].ColorB = float32(b) / 0xffff
		vertices[i].ColorA = float32(a) / 0xffff
	}
}
