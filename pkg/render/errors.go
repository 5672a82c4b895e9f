package render

import (
	"fmt"

	"github.com/opd-ai/go-lander/pkg/state"
)

// UnknownClassError reports an object whose class has no registered painter.
type UnknownClassError struct {
	Object string
	Class  state.Class
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("no painter registered for class %q (object %q)", e.Class, e.Object)
}

// InvalidGeometryError reports object geometry that cannot be drawn:
// inverted rectangle edges or non-finite coordinates.
type InvalidGeometryError struct {
	Object string
	Class  state.Class
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry for object %q of class %q: %s", e.Object, e.Class, e.Reason)
}
