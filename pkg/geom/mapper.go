package geom

// Size is a canvas size in pixels. Zero is legal and yields invisible output.
type Size struct {
	Width  float64
	Height float64
}

// Mapper converts physics-space coordinates and extents into canvas pixels.
// It is a value type closing over immutable bounds and is safe to share.
type Mapper struct {
	bounds Bounds
}

// NewMapper returns a Mapper for b, failing with *DegenerateBoundsError.
func NewMapper(b Bounds) (Mapper, error) {
	if err := b.Validate(); err != nil {
		return Mapper{}, err
	}
	return Mapper{bounds: b}, nil
}

// Bounds returns the physics viewport of the mapper.
func (m Mapper) Bounds() Bounds { return m.bounds }

// ToCanvas maps a physics point to a pixel position. The y axis is flipped:
// physics space is up-positive, canvas space is down-positive.
func (m Mapper) ToCanvas(p Vector2D, s Size) Vector2D {
	n := m.bounds.Normalize(p)
	return Vector2D{
		X: n.X * s.Width,
		Y: s.Height - n.Y*s.Height,
	}
}

// ExtentToCanvas maps a physics width/height to pixels, without the flip.
func (m Mapper) ExtentToCanvas(w, h float64, s Size) (float64, float64) {
	return w / m.bounds.XRange() * s.Width, h / m.bounds.YRange() * s.Height
}

// RectToCanvas maps a physics rectangle given by its edges to a pixel
// rectangle whose Y is the pixel-space top edge. Malformed edges
// (right < left, top < bottom) yield negative sizes; callers decide policy.
func (m Mapper) RectToCanvas(left, right, bottom, top float64, s Size) Rect {
	topLeft := m.ToCanvas(Vector2D{X: left, Y: top}, s)
	w, h := m.ExtentToCanvas(right-left, top-bottom, s)
	return Rect{X: topLeft.X, Y: topLeft.Y, W: w, H: h}
}
