package render

import (
	"encoding/binary"
	"image/color"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/opd-ai/go-lander/pkg/geom"
)

// PrimitiveKind identifies a recorded draw call.
type PrimitiveKind int

const (
	KindClear PrimitiveKind = iota
	KindRect
	KindPolygon
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindClear:
		return "clear"
	case KindRect:
		return "rect"
	case KindPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Primitive is one recorded draw call.
type Primitive struct {
	Kind   PrimitiveKind
	Rect   geom.Rect
	Points geom.Polygon
	Color  color.RGBA
}

// Recorder is a Canvas that records draw calls instead of drawing them.
// It backs headless runs and tests, and is safe for concurrent use.
type Recorder struct {
	mu         sync.Mutex
	primitives []Primitive
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear implements Clearer. It drops earlier calls, as a fill would hide them.
func (r *Recorder) Clear(c color.Color) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.primitives = append(r.primitives[:0], Primitive{Kind: KindClear, Color: toRGBA(c)})
	return nil
}

// FillRect implements Canvas.
func (r *Recorder) FillRect(rect geom.Rect, c color.Color) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.primitives = append(r.primitives, Primitive{Kind: KindRect, Rect: rect, Color: toRGBA(c)})
	return nil
}

// FillPolygon implements Canvas.
func (r *Recorder) FillPolygon(points geom.Polygon, c color.Color) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.primitives = append(r.primitives, Primitive{
		Kind:   KindPolygon,
		Points: append(geom.Polygon(nil), points...),
		Color:  toRGBA(c),
	})
	return nil
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.primitives = nil
}

// Primitives returns a copy of the recorded calls in order.
func (r *Recorder) Primitives() []Primitive {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Primitive(nil), r.primitives...)
}

// Polygons returns the recorded polygon fills.
func (r *Recorder) Polygons() []Primitive {
	return r.ofKind(KindPolygon)
}

// Rects returns the recorded rectangle fills.
func (r *Recorder) Rects() []Primitive {
	return r.ofKind(KindRect)
}

func (r *Recorder) ofKind(kind PrimitiveKind) []Primitive {
	var out []Primitive
	for _, p := range r.Primitives() {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Fingerprint hashes the recorded calls. Two frames with equal fingerprints
// issued the same draw calls in the same order.
func (r *Recorder) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}
	for _, p := range r.Primitives() {
		h.Write([]byte{byte(p.Kind), p.Color.R, p.Color.G, p.Color.B, p.Color.A})
		putFloat(p.Rect.X)
		putFloat(p.Rect.Y)
		putFloat(p.Rect.W)
		putFloat(p.Rect.H)
		for _, v := range p.Points {
			putFloat(v.X)
			putFloat(v.Y)
		}
	}
	return h.Sum64()
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
