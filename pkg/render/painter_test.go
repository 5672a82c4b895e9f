package render

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-lander/pkg/geom"
	"github.com/opd-ai/go-lander/pkg/state"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func mustMapper(t *testing.T, xmin, xmax, ymin, ymax float64) geom.Mapper {
	t.Helper()
	m, err := geom.NewMapper(geom.Bounds{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax})
	require.NoError(t, err)
	return m
}

func TestAgentPainter_CornersAtZeroHeading(t *testing.T) {
	rec := NewRecorder()
	m := mustMapper(t, 0, 10, 0, 10)
	p := AgentPainter{Width: 30, Height: 40, Color: red}

	err := p.Paint(rec, state.NewAgent("agent0", 5, 5, 0), m, geom.Size{Width: 200, Height: 200})
	require.NoError(t, err)

	polys := rec.Polygons()
	require.Len(t, polys, 1)
	want := geom.Polygon{{X: 85, Y: 80}, {X: 115, Y: 80}, {X: 115, Y: 120}, {X: 85, Y: 120}}
	require.Len(t, polys[0].Points, 4)
	for i, v := range want {
		assert.InDelta(t, v.X, polys[0].Points[i].X, 1e-9, "vertex %d x", i)
		assert.InDelta(t, v.Y, polys[0].Points[i].Y, 1e-9, "vertex %d y", i)
	}
	assert.Equal(t, red, polys[0].Color)
}

func TestAgentPainter_QuarterTurnSwapsExtent(t *testing.T) {
	m := mustMapper(t, 0, 10, 0, 10)
	p := AgentPainter{Width: 30, Height: 40, Color: red}

	for _, angle := range []float64{math.Pi / 2, -math.Pi / 2} {
		rec := NewRecorder()
		require.NoError(t, p.Paint(rec, state.NewAgent("a", 5, 5, angle), m, geom.Size{Width: 200, Height: 200}))

		box := rec.Polygons()[0].Points.BoundingBox()
		assert.InDelta(t, 40, box.W, 1e-9, "angle %v", angle)
		assert.InDelta(t, 30, box.H, 1e-9, "angle %v", angle)
		assert.InDelta(t, 80, box.X, 1e-9)
		assert.InDelta(t, 85, box.Y, 1e-9)
	}
}

func TestAgentPainter_MissingAttribute(t *testing.T) {
	obj := state.NewAgent("agent0", 1, 2, 0)
	delete(obj.Values, state.AttrAngle)

	rec := NewRecorder()
	err := AgentPainter{Width: 30, Height: 40, Color: red}.Paint(rec, obj, mustMapper(t, 0, 10, 0, 10), geom.Size{Width: 10, Height: 10})

	var missing *state.MissingAttributeError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, state.AttrAngle, missing.Attribute)
	assert.Empty(t, rec.Primitives())
}

func TestAgentPainter_NonFinite(t *testing.T) {
	for _, obj := range []state.Object{
		state.NewAgent("nan", math.NaN(), 0, 0),
		state.NewAgent("inf", 0, math.Inf(1), 0),
		state.NewAgent("spin", 0, 0, math.Inf(-1)),
	} {
		rec := NewRecorder()
		err := AgentPainter{Width: 30, Height: 40, Color: red}.Paint(rec, obj, mustMapper(t, 0, 10, 0, 10), geom.Size{Width: 100, Height: 100})

		var geomErr *InvalidGeometryError
		assert.True(t, errors.As(err, &geomErr), "object %s", obj.Name)
		assert.Empty(t, rec.Primitives())
	}
}

func TestBoxPainter_RectMapping(t *testing.T) {
	rec := NewRecorder()
	m := mustMapper(t, 0, 10, 0, 10)
	black := color.RGBA{A: 0xff}

	err := NewObstaclePainter(black, false).Paint(rec, state.NewObstacle("o", 0, 10, 0, 5), m, geom.Size{Width: 100, Height: 100})
	require.NoError(t, err)

	rects := rec.Rects()
	require.Len(t, rects, 1)
	assert.Equal(t, geom.Rect{X: 0, Y: 50, W: 100, H: 50}, rects[0].Rect)
	assert.Equal(t, black, rects[0].Color)
}

func TestBoxPainter_Malformed(t *testing.T) {
	m := mustMapper(t, 0, 10, 0, 10)
	size := geom.Size{Width: 100, Height: 100}
	inverted := state.NewPad("pad", 8, 2, 0, 5)

	t.Run("rejects inverted edges", func(t *testing.T) {
		rec := NewRecorder()
		err := NewPadPainter(red, false).Paint(rec, inverted, m, size)

		var geomErr *InvalidGeometryError
		require.True(t, errors.As(err, &geomErr))
		assert.Equal(t, "pad", geomErr.Object)
		assert.Empty(t, rec.Primitives())
	})

	t.Run("clamps to zero width", func(t *testing.T) {
		rec := NewRecorder()
		require.NoError(t, NewPadPainter(red, true).Paint(rec, inverted, m, size))

		rects := rec.Rects()
		require.Len(t, rects, 1)
		assert.Equal(t, 0.0, rects[0].Rect.W)
		assert.InDelta(t, 50, rects[0].Rect.H, 1e-9)
		assert.InDelta(t, 80, rects[0].Rect.X, 1e-9)
	})

	t.Run("non-finite edges fail even when clamping", func(t *testing.T) {
		rec := NewRecorder()
		err := NewPadPainter(red, true).Paint(rec, state.NewPad("p", math.Inf(-1), 5, 0, 5), m, size)

		var geomErr *InvalidGeometryError
		assert.True(t, errors.As(err, &geomErr))
	})

	t.Run("missing edge", func(t *testing.T) {
		obj := state.NewObstacle("o", 0, 1, 0, 1)
		delete(obj.Values, state.AttrTop)
		err := NewObstaclePainter(red, true).Paint(NewRecorder(), obj, m, size)

		var missing *state.MissingAttributeError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, state.AttrTop, missing.Attribute)
	})
}

func TestPainterFunc(t *testing.T) {
	called := false
	var p ShapePainter = PainterFunc(func(dst Canvas, obj state.Object, m geom.Mapper, size geom.Size) error {
		called = true
		return nil
	})
	require.NoError(t, p.Paint(NewRecorder(), state.Object{}, geom.Mapper{}, geom.Size{}))
	assert.True(t, called)
}
