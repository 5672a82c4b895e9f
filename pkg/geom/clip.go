package geom

// ClipToRect clips the polygon against an axis-aligned rectangle using the
// Sutherland-Hodgman algorithm. The result may be empty. r must be canonical.
func (p Polygon) ClipToRect(r Rect) Polygon {
	type edge struct {
		inside func(Vector2D) bool
		cross  func(a, b Vector2D) Vector2D
	}

	minX, minY := r.X, r.Y
	maxX, maxY := r.X+r.W, r.Y+r.H
	atX := func(a, b Vector2D, x float64) Vector2D {
		t := (x - a.X) / (b.X - a.X)
		return Vector2D{X: x, Y: a.Y + t*(b.Y-a.Y)}
	}
	atY := func(a, b Vector2D, y float64) Vector2D {
		t := (y - a.Y) / (b.Y - a.Y)
		return Vector2D{X: a.X + t*(b.X-a.X), Y: y}
	}

	edges := [4]edge{
		{func(v Vector2D) bool { return v.X >= minX }, func(a, b Vector2D) Vector2D { return atX(a, b, minX) }},
		{func(v Vector2D) bool { return v.X <= maxX }, func(a, b Vector2D) Vector2D { return atX(a, b, maxX) }},
		{func(v Vector2D) bool { return v.Y >= minY }, func(a, b Vector2D) Vector2D { return atY(a, b, minY) }},
		{func(v Vector2D) bool { return v.Y <= maxY }, func(a, b Vector2D) Vector2D { return atY(a, b, maxY) }},
	}

	out := append(Polygon(nil), p...)
	for _, e := range edges {
		if len(out) == 0 {
			break
		}
		in := out
		out = make(Polygon, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur) && e.inside(prev):
				out = append(out, cur)
			case e.inside(cur):
				out = append(out, e.cross(prev, cur), cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}
