// Package geom holds the 2D math shared by the renderer: vectors, physics-space
// bounds, the physics-to-canvas mapping and the shapes painters emit.
package geom

import "math"

// Vector2D represents a 2D point or offset.
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// FlipY mirrors the vector across the x axis.
func (v Vector2D) FlipY() Vector2D {
	return Vector2D{X: v.X, Y: -v.Y}
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vector2D) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// ApproxEqual compares two vectors component-wise within eps.
func (v Vector2D) ApproxEqual(other Vector2D, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps && math.Abs(v.Y-other.Y) <= eps
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
