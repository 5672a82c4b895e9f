package render

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/geom"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/state"
)

// StateRenderer paints whole scenes. It is immutable after construction.
type StateRenderer struct {
	registry       *Registry
	mapper         geom.Mapper
	background     color.Color
	unknownPolicy  config.Policy
	geometryPolicy config.Policy
	order          config.PaintOrder
	logger         *logging.Logger
}

// Option configures a StateRenderer.
type Option func(*StateRenderer)

// WithLogger sets the logger used for per-object diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(r *StateRenderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithBackground fills the canvas with c before painting objects.
func WithBackground(c color.Color) Option {
	return func(r *StateRenderer) { r.background = c }
}

// WithUnknownClassPolicy selects skip (default) or abort for unregistered classes.
func WithUnknownClassPolicy(p config.Policy) Option {
	return func(r *StateRenderer) { r.unknownPolicy = p }
}

// WithGeometryPolicy selects skip (default) or abort for InvalidGeometryError.
// Clamping happens in the painters; under clamp, leftover errors are skipped.
func WithGeometryPolicy(p config.Policy) Option {
	return func(r *StateRenderer) { r.geometryPolicy = p }
}

// WithPaintOrder selects class-ordered (default) or scene-ordered painting.
func WithPaintOrder(o config.PaintOrder) Option {
	return func(r *StateRenderer) { r.order = o }
}

// NewStateRenderer builds a renderer over bounds, failing with
// *geom.DegenerateBoundsError before any frame can be drawn.
func NewStateRenderer(bounds geom.Bounds, registry *Registry, opts ...Option) (*StateRenderer, error) {
	mapper, err := geom.NewMapper(bounds)
	if err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, fmt.Errorf("painter registry is required")
	}

	r := &StateRenderer{
		registry:       registry,
		mapper:         mapper,
		unknownPolicy:  config.PolicySkip,
		geometryPolicy: config.PolicySkip,
		order:          config.PaintOrderClass,
		logger:         logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Mapper returns the coordinate mapper the renderer paints with.
func (r *StateRenderer) Mapper() geom.Mapper { return r.mapper }

type job struct {
	obj     state.Object
	painter ShapePainter
}

// Render paints scene onto dst sized size. Unknown classes are resolved
// before anything is drawn, so an aborted frame leaves dst untouched.
// Failing objects are logged and skipped unless a policy says abort, in
// which case the first such error is returned.
func (r *StateRenderer) Render(ctx context.Context, dst Canvas, scene state.Scene, size geom.Size) error {
	jobs, err := r.plan(ctx, scene)
	if err != nil {
		return err
	}

	if r.background != nil {
		if err := r.fillBackground(dst, size); err != nil {
			r.logger.Error(ctx, "background fill failed", err)
		}
	}

	painted, skipped := 0, 0
	for _, j := range jobs {
		err := j.painter.Paint(dst, j.obj, r.mapper, size)
		if err == nil {
			painted++
			continue
		}
		if r.aborts(err) {
			return fmt.Errorf("render object %q: %w", j.obj.Name, err)
		}
		skipped++
		r.logSkip(ctx, j.obj, err)
	}

	r.logger.Debug(ctx, "frame rendered",
		"objects", scene.Len(),
		"painted", painted,
		"skipped", skipped+scene.Len()-len(jobs),
		"width", size.Width,
		"height", size.Height,
	)
	return nil
}

func (r *StateRenderer) plan(ctx context.Context, scene state.Scene) ([]job, error) {
	jobs := make([]job, 0, scene.Len())
	resolve := func(obj state.Object) error {
		p, err := r.registry.Lookup(obj)
		if err != nil {
			if r.unknownPolicy == config.PolicyAbort {
				return err
			}
			r.logger.Debug(ctx, "object skipped: no painter", "object", obj.Name, "class", string(obj.Class))
			return nil
		}
		jobs = append(jobs, job{obj: obj, painter: p})
		return nil
	}

	if r.order == config.PaintOrderScene {
		for _, obj := range scene.Objects {
			if err := resolve(obj); err != nil {
				return nil, err
			}
		}
		return jobs, nil
	}

	for _, class := range r.registry.Classes() {
		for _, obj := range scene.ObjectsOfClass(class) {
			if err := resolve(obj); err != nil {
				return nil, err
			}
		}
	}
	for _, obj := range scene.Objects {
		if r.registry.HasClass(obj.Class) {
			continue
		}
		if err := resolve(obj); err != nil {
			return nil, err
		}
	}
	return jobs, nil
}

func (r *StateRenderer) aborts(err error) bool {
	var geomErr *InvalidGeometryError
	return errors.As(err, &geomErr) && r.geometryPolicy == config.PolicyAbort
}

func (r *StateRenderer) fillBackground(dst Canvas, size geom.Size) error {
	if c, ok := dst.(Clearer); ok {
		return c.Clear(r.background)
	}
	return dst.FillRect(geom.Rect{W: size.Width, H: size.Height}, r.background)
}

func (r *StateRenderer) logSkip(ctx context.Context, obj state.Object, err error) {
	var missing *state.MissingAttributeError
	var geomErr *InvalidGeometryError
	switch {
	case errors.As(err, &missing), errors.As(err, &geomErr):
		r.logger.Warn(ctx, "object skipped", "object", obj.Name, "class", string(obj.Class), "error", err.Error())
	default:
		r.logger.Error(ctx, "object paint failed", err, "object", obj.Name, "class", string(obj.Class))
	}
}
