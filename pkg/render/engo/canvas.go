// Package engo hosts lander scenes in an engo window: a render.Canvas that
// turns fills into ECS entities, and the viewer scene driving it.
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-lander/pkg/geom"
)

// shape is one fill waiting to be handed to the render system.
type shape struct {
	drawable common.Drawable
	space    common.SpaceComponent
	color    color.Color
}

type shapeEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// Canvas collects fills for one frame and syncs them into a RenderSystem.
// Later fills get a higher z-index, so paint order is kept.
type Canvas struct {
	shapes     []shape
	background color.Color
	entities   []*shapeEntity
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Clear implements render.Clearer. It drops pending fills and sets the
// window background on the next Sync.
func (c *Canvas) Clear(col color.Color) error {
	c.shapes = c.shapes[:0]
	c.background = col
	return nil
}

// Reset drops pending fills without touching the background.
func (c *Canvas) Reset() {
	c.shapes = c.shapes[:0]
}

// FillRect implements render.Canvas.
func (c *Canvas) FillRect(r geom.Rect, col color.Color) error {
	r = r.Canon()
	if r.Empty() {
		return nil
	}
	c.shapes = append(c.shapes, shape{
		drawable: common.Rectangle{},
		space: common.SpaceComponent{
			Position: engo.Point{X: float32(r.X), Y: float32(r.Y)},
			Width:    float32(r.W),
			Height:   float32(r.H),
		},
		color: col,
	})
	return nil
}

// FillPolygon implements render.Canvas. The polygon must be convex; it is
// split into a triangle fan.
func (c *Canvas) FillPolygon(points geom.Polygon, col color.Color) error {
	drawable, space, ok := triangulate(points)
	if !ok {
		return nil
	}
	c.shapes = append(c.shapes, shape{drawable: drawable, space: space, color: col})
	return nil
}

// triangulate fans a convex polygon into ComplexTriangles, whose points are
// relative to the bounding box of the shape.
func triangulate(points geom.Polygon) (common.ComplexTriangles, common.SpaceComponent, bool) {
	if len(points) < 3 {
		return common.ComplexTriangles{}, common.SpaceComponent{}, false
	}
	box := points.BoundingBox()
	if box.Empty() {
		return common.ComplexTriangles{}, common.SpaceComponent{}, false
	}

	norm := func(v geom.Vector2D) engo.Point {
		return engo.Point{
			X: float32((v.X - box.X) / box.W),
			Y: float32((v.Y - box.Y) / box.H),
		}
	}
	tris := make([]engo.Point, 0, 3*(len(points)-2))
	for i := 1; i < len(points)-1; i++ {
		tris = append(tris, norm(points[0]), norm(points[i]), norm(points[i+1]))
	}

	space := common.SpaceComponent{
		Position: engo.Point{X: float32(box.X), Y: float32(box.Y)},
		Width:    float32(box.W),
		Height:   float32(box.H),
	}
	return common.ComplexTriangles{Points: tris}, space, true
}

// Sync replaces the entities of the previous frame with the pending fills.
func (c *Canvas) Sync(rs *common.RenderSystem) {
	for _, e := range c.entities {
		rs.Remove(e.BasicEntity)
	}
	c.entities = c.entities[:0]

	if c.background != nil {
		common.SetBackground(c.background)
	}
	for i, s := range c.shapes {
		e := &shapeEntity{BasicEntity: ecs.NewBasic()}
		e.RenderComponent = common.RenderComponent{Drawable: s.drawable, Color: s.color}
		e.RenderComponent.SetZIndex(float32(i))
		e.SpaceComponent = s.space
		rs.Add(&e.BasicEntity, &e.RenderComponent, &e.SpaceComponent)
		c.entities = append(c.entities, e)
	}
	c.shapes = c.shapes[:0]
}
