package geom

import "fmt"

// Bounds is the physics-space viewport [XMin,XMax] x [YMin,YMax] mapped onto
// the canvas. Construct it with NewBounds; the zero value is degenerate.
type Bounds struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// DegenerateBoundsError reports a viewport with a zero, negative or
// non-finite span on at least one axis.
type DegenerateBoundsError struct {
	Bounds Bounds
	Axis   string
}

func (e *DegenerateBoundsError) Error() string {
	b := e.Bounds
	if e.Axis == "x" {
		return fmt.Sprintf("degenerate physics bounds: x span [%g, %g] must be finite with xmax > xmin", b.XMin, b.XMax)
	}
	return fmt.Sprintf("degenerate physics bounds: y span [%g, %g] must be finite with ymax > ymin", b.YMin, b.YMax)
}

// NewBounds validates and returns a physics viewport.
func NewBounds(xmin, xmax, ymin, ymax float64) (Bounds, error) {
	b := Bounds{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// Validate returns a *DegenerateBoundsError unless both spans are positive and finite.
func (b Bounds) Validate() error {
	if !isFinite(b.XMin) || !isFinite(b.XMax) || !isFinite(b.XMax-b.XMin) || !(b.XMax > b.XMin) {
		return &DegenerateBoundsError{Bounds: b, Axis: "x"}
	}
	if !isFinite(b.YMin) || !isFinite(b.YMax) || !isFinite(b.YMax-b.YMin) || !(b.YMax > b.YMin) {
		return &DegenerateBoundsError{Bounds: b, Axis: "y"}
	}
	return nil
}

// XRange is the horizontal span of the viewport.
func (b Bounds) XRange() float64 { return b.XMax - b.XMin }

// YRange is the vertical span of the viewport.
func (b Bounds) YRange() float64 { return b.YMax - b.YMin }

// Normalize rescales a physics point into [0,1]^2 relative to the viewport.
// Points outside the viewport map outside the unit square.
func (b Bounds) Normalize(p Vector2D) Vector2D {
	return Vector2D{
		X: (p.X - b.XMin) / b.XRange(),
		Y: (p.Y - b.YMin) / b.YRange(),
	}
}
