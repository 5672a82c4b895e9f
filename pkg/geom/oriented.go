package geom

import "github.com/go-gl/mathgl/mgl64"

// OrientedRect returns the four canvas-space vertices of a w x h rectangle
// centered on center and rotated by a physics-space heading (radians).
//
// The corners are rotated by -heading, because the canvas y axis points down,
// and each rotated y is then negated to turn an up-positive offset into a
// canvas offset. Vertices come back in top-left, top-right, bottom-right,
// bottom-left order (as seen at heading 0).
func OrientedRect(center Vector2D, w, h, heading float64) Polygon {
	left, right := -w/2, w/2
	bottom, top := -h/2, h/2

	local := [4]mgl64.Vec2{
		{left, top},
		{right, top},
		{right, bottom},
		{left, bottom},
	}

	rot := mgl64.Rotate2D(-heading)
	out := make(Polygon, len(local))
	for i, corner := range local {
		r := rot.Mul2x1(corner)
		out[i] = center.Add(Vector2D{X: r.X(), Y: r.Y()}.FlipY())
	}
	return out
}
