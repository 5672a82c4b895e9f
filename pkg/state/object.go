// Package state describes the read-only scene snapshots the renderer consumes:
// object-class tags, named numeric attributes, and whole scenes.
package state

import (
	"fmt"
	"sort"
)

// Class tags an object with the painter family that draws it.
type Class string

// Object classes of the lunar lander domain.
const (
	ClassAgent    Class = "agent"
	ClassObstacle Class = "obstacle"
	ClassPad      Class = "goal"
)

// Attribute names.
const (
	AttrX      = "x"
	AttrY      = "y"
	AttrAngle  = "angle"
	AttrLeft   = "left"
	AttrRight  = "right"
	AttrBottom = "bottom"
	AttrTop    = "top"

	// Velocity is part of the wire format; painters ignore it.
	AttrVX = "vx"
	AttrVY = "vy"
)

// Object is one object instance in a scene snapshot: a class tag plus named
// floating-point attributes. The renderer only reads objects.
type Object struct {
	Name   string             `json:"name,omitempty" yaml:"name,omitempty"`
	Class  Class              `json:"class" yaml:"class"`
	Values map[string]float64 `json:"values" yaml:"values"`
}

// MissingAttributeError reports an object lacking a field its class requires.
type MissingAttributeError struct {
	Object    string
	Class     Class
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("object %q of class %q is missing attribute %q", e.Object, e.Class, e.Attribute)
}

// Float returns the named attribute or a *MissingAttributeError.
func (o Object) Float(attr string) (float64, error) {
	v, ok := o.Values[attr]
	if !ok {
		return 0, &MissingAttributeError{Object: o.Name, Class: o.Class, Attribute: attr}
	}
	return v, nil
}

// Attributes returns the attribute names in sorted order.
func (o Object) Attributes() []string {
	names := make([]string, 0, len(o.Values))
	for k := range o.Values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Agent is the typed view of an agent object.
type Agent struct {
	X     float64
	Y     float64
	Angle float64 // heading in radians, unbounded
}

// Agent reads the agent attributes x, y and angle.
func (o Object) Agent() (Agent, error) {
	var a Agent
	var err error
	if a.X, err = o.Float(AttrX); err != nil {
		return Agent{}, err
	}
	if a.Y, err = o.Float(AttrY); err != nil {
		return Agent{}, err
	}
	if a.Angle, err = o.Float(AttrAngle); err != nil {
		return Agent{}, err
	}
	return a, nil
}

// Box is the typed view of an axis-aligned rectangular object.
type Box struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

// Box reads the rectangle attributes left, right, bottom and top.
func (o Object) Box() (Box, error) {
	var b Box
	var err error
	if b.Left, err = o.Float(AttrLeft); err != nil {
		return Box{}, err
	}
	if b.Right, err = o.Float(AttrRight); err != nil {
		return Box{}, err
	}
	if b.Bottom, err = o.Float(AttrBottom); err != nil {
		return Box{}, err
	}
	if b.Top, err = o.Float(AttrTop); err != nil {
		return Box{}, err
	}
	return b, nil
}

// Width is Right-Left; negative for malformed boxes.
func (b Box) Width() float64 { return b.Right - b.Left }

// Height is Top-Bottom; negative for malformed boxes.
func (b Box) Height() float64 { return b.Top - b.Bottom }

// WellFormed reports whether Right > Left and Top > Bottom.
func (b Box) WellFormed() bool {
	return b.Right > b.Left && b.Top > b.Bottom
}

// NewAgent builds an agent object.
func NewAgent(name string, x, y, angle float64) Object {
	return Object{
		Name:  name,
		Class: ClassAgent,
		Values: map[string]float64{
			AttrX:     x,
			AttrY:     y,
			AttrAngle: angle,
		},
	}
}

// NewObstacle builds an obstacle object.
func NewObstacle(name string, left, right, bottom, top float64) Object {
	return newBox(name, ClassObstacle, left, right, bottom, top)
}

// NewPad builds a landing pad object.
func NewPad(name string, left, right, bottom, top float64) Object {
	return newBox(name, ClassPad, left, right, bottom, top)
}

func newBox(name string, class Class, left, right, bottom, top float64) Object {
	return Object{
		Name:  name,
		Class: class,
		Values: map[string]float64{
			AttrLeft:   left,
			AttrRight:  right,
			AttrBottom: bottom,
			AttrTop:    top,
		},
	}
}
