package geom

import (
	"math"
	"testing"
)

func TestOrientedRect_ZeroHeading(t *testing.T) {
	center := Vector2D{X: 100, Y: 100}
	got := OrientedRect(center, 30, 40, 0)

	want := Polygon{
		{X: 85, Y: 80},
		{X: 115, Y: 80},
		{X: 115, Y: 120},
		{X: 85, Y: 120},
	}
	for i := range want {
		if !got[i].ApproxEqual(want[i], eps) {
			t.Errorf("vertex %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestOrientedRect_QuarterTurnSwapsExtents(t *testing.T) {
	center := Vector2D{X: 50, Y: 60}

	for _, heading := range []float64{math.Pi / 2, -math.Pi / 2, 3 * math.Pi / 2} {
		bb := OrientedRect(center, 30, 40, heading).BoundingBox()
		if math.Abs(bb.W-40) > 1e-9 || math.Abs(bb.H-30) > 1e-9 {
			t.Errorf("heading %v: bounding box %vx%v, expected 40x30", heading, bb.W, bb.H)
		}
		if math.Abs(bb.X+bb.W/2-center.X) > 1e-9 || math.Abs(bb.Y+bb.H/2-center.Y) > 1e-9 {
			t.Errorf("heading %v: bounding box not centered: %+v", heading, bb)
		}
	}
}

func TestOrientedRect_QuarterTurnVertices(t *testing.T) {
	// At heading pi/2 the local corner (x, y) lands at canvas offset (y, x).
	got := OrientedRect(Vector2D{}, 30, 40, math.Pi/2)
	want := Polygon{
		{X: 20, Y: -15},
		{X: 20, Y: 15},
		{X: -20, Y: 15},
		{X: -20, Y: -15},
	}
	for i := range want {
		if !got[i].ApproxEqual(want[i], 1e-9) {
			t.Errorf("vertex %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestOrientedRect_FullTurnWrapsAround(t *testing.T) {
	center := Vector2D{X: 10, Y: 10}
	base := OrientedRect(center, 30, 40, 0.3)
	wrapped := OrientedRect(center, 30, 40, 0.3+4*math.Pi)
	for i := range base {
		if !base[i].ApproxEqual(wrapped[i], 1e-9) {
			t.Errorf("vertex %d differs after wrap: %v vs %v", i, base[i], wrapped[i])
		}
	}
}

func TestOrientedRect_PreservesEdgeLengths(t *testing.T) {
	poly := OrientedRect(Vector2D{X: 3, Y: 4}, 30, 40, 0.7)
	edge := func(a, b Vector2D) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

	if l := edge(poly[0], poly[1]); math.Abs(l-30) > 1e-9 {
		t.Errorf("top edge length %v, expected 30", l)
	}
	if l := edge(poly[1], poly[2]); math.Abs(l-40) > 1e-9 {
		t.Errorf("right edge length %v, expected 40", l)
	}
}
