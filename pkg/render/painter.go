package render

import (
	"image/color"

	"github.com/opd-ai/go-lander/pkg/geom"
	"github.com/opd-ai/go-lander/pkg/state"
)

// ShapePainter draws one object instance. Painters are stateless apart from
// the immutable settings they are built with.
type ShapePainter interface {
	Paint(dst Canvas, obj state.Object, m geom.Mapper, size geom.Size) error
}

// PainterFunc adapts a function to ShapePainter.
type PainterFunc func(dst Canvas, obj state.Object, m geom.Mapper, size geom.Size) error

// Paint calls f.
func (f PainterFunc) Paint(dst Canvas, obj state.Object, m geom.Mapper, size geom.Size) error {
	return f(dst, obj, m, size)
}

// AgentPainter draws the lander as a filled rectangle of fixed pixel size,
// centered on its mapped position and turned by its heading.
type AgentPainter struct {
	Width  float64
	Height float64
	Color  color.Color
}

// Paint implements ShapePainter.
func (p AgentPainter) Paint(dst Canvas, obj state.Object, m geom.Mapper, size geom.Size) error {
	agent, err := obj.Agent()
	if err != nil {
		return err
	}

	center := m.ToCanvas(geom.Vector2D{X: agent.X, Y: agent.Y}, size)
	poly := geom.OrientedRect(center, p.Width, p.Height, agent.Angle)
	if !poly.IsFinite() {
		return &InvalidGeometryError{Object: obj.Name, Class: obj.Class, Reason: "non-finite position or heading"}
	}
	return dst.FillPolygon(poly, p.Color)
}

// BoxPainter draws an axis-aligned rectangular object (obstacle or pad).
// With ClampMalformed set, inverted edges collapse to a zero-area rectangle
// instead of failing with InvalidGeometryError.
type BoxPainter struct {
	Color          color.Color
	ClampMalformed bool
}

// NewObstaclePainter returns the painter for obstacles.
func NewObstaclePainter(c color.Color, clamp bool) BoxPainter {
	return BoxPainter{Color: c, ClampMalformed: clamp}
}

// NewPadPainter returns the painter for landing pads.
func NewPadPainter(c color.Color, clamp bool) BoxPainter {
	return BoxPainter{Color: c, ClampMalformed: clamp}
}

// Paint implements ShapePainter.
func (p BoxPainter) Paint(dst Canvas, obj state.Object, m geom.Mapper, size geom.Size) error {
	box, err := obj.Box()
	if err != nil {
		return err
	}

	if !box.WellFormed() {
		if !p.ClampMalformed {
			return &InvalidGeometryError{Object: obj.Name, Class: obj.Class, Reason: "right must exceed left and top must exceed bottom"}
		}
		box.Right = max(box.Right, box.Left)
		box.Top = max(box.Top, box.Bottom)
	}

	r := m.RectToCanvas(box.Left, box.Right, box.Bottom, box.Top, size)
	if !r.IsFinite() {
		return &InvalidGeometryError{Object: obj.Name, Class: obj.Class, Reason: "non-finite edges"}
	}
	return dst.FillRect(r, p.Color)
}
