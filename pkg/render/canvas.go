// Package render turns scene snapshots into filled shapes on a draw target.
//
// A StateRenderer looks up one ShapePainter per object (by object name, then
// by class) in a fixed Registry and lets it paint through a Canvas. Renderers
// hold no per-frame state: concurrent renders onto distinct canvases are safe,
// renders onto one canvas must be serialized by the caller.
package render

import (
	"image/color"

	"github.com/opd-ai/go-lander/pkg/geom"
)

// Canvas is the draw target a host hands to the renderer. Coordinates are
// pixels with the origin at the top-left and y growing downward.
type Canvas interface {
	// FillPolygon fills the closed polygon through points.
	FillPolygon(points geom.Polygon, c color.Color) error
	// FillRect fills an axis-aligned rectangle whose Y is the top edge.
	FillRect(r geom.Rect, c color.Color) error
}

// Clearer is implemented by canvases that can flood-fill the whole surface.
type Clearer interface {
	Clear(c color.Color) error
}
