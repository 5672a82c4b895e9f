package ggcanvas

import (
	"context"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/geom"
	"github.com/opd-ai/go-lander/pkg/render"
	"github.com/opd-ai/go-lander/pkg/state"
)

var _ render.Clearer = (*Canvas)(nil)

func TestCanvas_RendersDefaultScene(t *testing.T) {
	cfg := config.DefaultConfig()
	r, err := render.NewLanderRenderer(cfg, nil)
	require.NoError(t, err)

	c := New(cfg.Canvas.Width, cfg.Canvas.Height)
	defer c.Close()
	require.NoError(t, r.Render(context.Background(), c, state.DefaultScene(), c.Size()))

	img, err := c.Image()
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"agent", 40, 390, color.RGBA{R: 0xff, A: 0xff}},
		{"obstacle", 300, 300, color.RGBA{A: 0xff}},
		{"pad", 700, 360, color.RGBA{B: 0xff, A: 0xff}},
		{"sky", 500, 100, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, img.RGBAAt(tt.x, tt.y))
		})
	}
}

func TestCanvas_IgnoresEmptyShapes(t *testing.T) {
	c := New(10, 10)
	defer c.Close()

	assert.NoError(t, c.FillRect(geom.Rect{X: 2, Y: 2}, color.Black))
	assert.NoError(t, c.FillPolygon(geom.Polygon{{X: 1, Y: 1}}, color.Black))

	img, err := c.Image()
	require.NoError(t, err)
	assert.Equal(t, uint8(0), img.RGBAAt(2, 2).A)
}

func TestCanvas_SavePNG(t *testing.T) {
	c := New(16, 8)
	defer c.Close()
	require.NoError(t, c.Clear(color.White))

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, c.SavePNG(path))
	assert.FileExists(t, path)
}
