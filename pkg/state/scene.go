package state

// Scene is one simulation snapshot. Object order only affects paint overlap.
type Scene struct {
	Objects []Object `json:"objects" yaml:"objects"`
}

// NewScene builds a scene from objects.
func NewScene(objects ...Object) Scene {
	return Scene{Objects: objects}
}

// ObjectsOfClass returns the objects tagged with class, in scene order.
func (s Scene) ObjectsOfClass(class Class) []Object {
	var out []Object
	for _, o := range s.Objects {
		if o.Class == class {
			out = append(out, o)
		}
	}
	return out
}

// Len returns the number of objects in the scene.
func (s Scene) Len() int { return len(s.Objects) }

// DefaultScene is the lunar lander's initial state: the agent resting at the
// left edge, one obstacle and a landing pad to the right.
func DefaultScene() Scene {
	return NewScene(
		NewAgent("agent0", 5, 0, 0),
		NewObstacle("obstacle0", 20, 50, 0, 20),
		NewPad("goal0", 80, 95, 0, 10),
	)
}
