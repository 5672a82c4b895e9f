package engo

import (
	"image/color"
	"testing"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/geom"
	"github.com/opd-ai/go-lander/pkg/render"
	"github.com/opd-ai/go-lander/pkg/state"
)

var _ render.Clearer = (*Canvas)(nil)

func TestTriangulate_Rectangle(t *testing.T) {
	poly := geom.Polygon{{X: 85, Y: 80}, {X: 115, Y: 80}, {X: 115, Y: 120}, {X: 85, Y: 120}}

	drawable, space, ok := triangulate(poly)
	require.True(t, ok)

	assert.Equal(t, engo.Point{X: 85, Y: 80}, space.Position)
	assert.Equal(t, float32(30), space.Width)
	assert.Equal(t, float32(40), space.Height)
	assert.Equal(t, []engo.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}, drawable.Points)
}

func TestTriangulate_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		poly geom.Polygon
	}{
		{"too few points", geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		{"flat", geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := triangulate(tt.poly)
			assert.False(t, ok)
		})
	}
}

func TestCanvas_CollectsFills(t *testing.T) {
	c := NewCanvas()
	red := color.RGBA{R: 0xff, A: 0xff}

	require.NoError(t, c.FillRect(geom.Rect{X: 10, Y: 20, W: -5, H: 4}, red))
	require.NoError(t, c.FillRect(geom.Rect{X: 0, Y: 0, W: 0, H: 4}, red))
	require.NoError(t, c.FillPolygon(geom.OrientedRect(geom.Vector2D{X: 50, Y: 50}, 30, 40, 0.5), red))

	require.Len(t, c.shapes, 2)
	assert.IsType(t, common.Rectangle{}, c.shapes[0].drawable)
	assert.Equal(t, engo.Point{X: 5, Y: 20}, c.shapes[0].space.Position)
	assert.IsType(t, common.ComplexTriangles{}, c.shapes[1].drawable)

	require.NoError(t, c.Clear(color.White))
	assert.Empty(t, c.shapes)
	assert.Equal(t, color.White, c.background)
}

func TestFrameSystem_Stale(t *testing.T) {
	fs := &FrameSystem{}
	size := geom.Size{Width: 800, Height: 400}
	assert.True(t, fs.stale(1, size))

	fs.version, fs.size = 1, size
	assert.False(t, fs.stale(1, size))
	assert.True(t, fs.stale(2, size))
	assert.True(t, fs.stale(1, geom.Size{Width: 640, Height: 400}))
}

func TestViewerScene_Type(t *testing.T) {
	scene := NewViewerScene(nil, StaticSource{Scene: state.DefaultScene()}, nil, nil)
	assert.Equal(t, "LanderScene", scene.Type())

	s, v := scene.source.Current()
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, uint64(1), v)
}

func TestFrameSystem_AbortedFrameLeavesNoFills(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Background = "none"
	cfg.InvalidGeometryPolicy = config.PolicyAbort
	renderer, err := render.NewLanderRenderer(cfg, nil)
	require.NoError(t, err)

	scene := NewViewerScene(renderer, StaticSource{}, nil, nil)
	fs := &FrameSystem{scene: scene}
	size := geom.Size{Width: 800, Height: 400}

	aborting := state.NewScene(
		state.NewAgent("agent0", 5, 0, 0),
		state.NewObstacle("obstacle0", 10, 5, 0, 5),
	)
	assert.False(t, fs.draw(aborting, size))
	assert.Empty(t, scene.canvas.shapes)

	assert.True(t, fs.draw(state.NewScene(state.NewPad("goal0", 80, 95, 0, 10)), size))
	require.Len(t, scene.canvas.shapes, 1)
	assert.IsType(t, common.Rectangle{}, scene.canvas.shapes[0].drawable)
}

func TestCanvas_Reset(t *testing.T) {
	c := NewCanvas()
	require.NoError(t, c.Clear(color.White))
	require.NoError(t, c.FillRect(geom.Rect{W: 1, H: 1}, color.Black))

	c.Reset()
	assert.Empty(t, c.shapes)
	assert.Equal(t, color.White, c.background)
}
