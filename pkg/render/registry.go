package render

import (
	"fmt"

	"github.com/opd-ai/go-lander/pkg/state"
)

// Registration binds a painter to an object class, or to one named object
// when Object is set. Named bindings win over class bindings.
type Registration struct {
	Class   state.Class
	Object  string
	Painter ShapePainter
}

// Registry maps object classes and names to painters. It is fixed at
// construction and safe for concurrent lookups.
type Registry struct {
	order   []state.Class
	byClass map[state.Class]ShapePainter
	byName  map[string]ShapePainter
}

// NewRegistry builds a registry. Class registration order is kept and drives
// class-ordered painting. Duplicate keys and nil painters are rejected.
func NewRegistry(entries ...Registration) (*Registry, error) {
	r := &Registry{
		byClass: make(map[state.Class]ShapePainter),
		byName:  make(map[string]ShapePainter),
	}
	for _, e := range entries {
		if e.Painter == nil {
			return nil, fmt.Errorf("nil painter for class %q object %q", e.Class, e.Object)
		}
		if e.Object != "" {
			if _, dup := r.byName[e.Object]; dup {
				return nil, fmt.Errorf("duplicate painter for object %q", e.Object)
			}
			r.byName[e.Object] = e.Painter
			continue
		}
		if e.Class == "" {
			return nil, fmt.Errorf("registration needs a class or an object name")
		}
		if _, dup := r.byClass[e.Class]; dup {
			return nil, fmt.Errorf("duplicate painter for class %q", e.Class)
		}
		r.byClass[e.Class] = e.Painter
		r.order = append(r.order, e.Class)
	}
	return r, nil
}

// Lookup resolves the painter for obj, failing with *UnknownClassError.
func (r *Registry) Lookup(obj state.Object) (ShapePainter, error) {
	if p, ok := r.byName[obj.Name]; ok && obj.Name != "" {
		return p, nil
	}
	if p, ok := r.byClass[obj.Class]; ok {
		return p, nil
	}
	return nil, &UnknownClassError{Object: obj.Name, Class: obj.Class}
}

// Classes returns the registered classes in registration order.
func (r *Registry) Classes() []state.Class {
	return append([]state.Class(nil), r.order...)
}

// HasClass reports whether class has a class-level painter.
func (r *Registry) HasClass(class state.Class) bool {
	_, ok := r.byClass[class]
	return ok
}
