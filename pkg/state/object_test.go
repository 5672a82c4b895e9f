package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_Agent(t *testing.T) {
	a, err := NewAgent("lander", 5, 7, 0.25).Agent()
	require.NoError(t, err)
	assert.Equal(t, Agent{X: 5, Y: 7, Angle: 0.25}, a)
}

func TestObject_Agent_IgnoresVelocity(t *testing.T) {
	obj := NewAgent("lander", 5, 7, 0.25)
	obj.Values[AttrVX] = 3
	obj.Values[AttrVY] = -9.5

	a, err := obj.Agent()
	require.NoError(t, err)
	assert.Equal(t, Agent{X: 5, Y: 7, Angle: 0.25}, a)
}

func TestObject_Agent_MissingAttribute(t *testing.T) {
	obj := Object{Name: "lander", Class: ClassAgent, Values: map[string]float64{AttrX: 1, AttrY: 2}}

	_, err := obj.Agent()

	var mae *MissingAttributeError
	require.True(t, errors.As(err, &mae), "expected MissingAttributeError, got %v", err)
	assert.Equal(t, AttrAngle, mae.Attribute)
	assert.Equal(t, "lander", mae.Object)
	assert.Equal(t, ClassAgent, mae.Class)
	assert.Contains(t, err.Error(), `"angle"`)
}

func TestObject_Box(t *testing.T) {
	b, err := NewObstacle("rock", 20, 50, 0, 20).Box()
	require.NoError(t, err)
	assert.Equal(t, 30.0, b.Width())
	assert.Equal(t, 20.0, b.Height())
	assert.True(t, b.WellFormed())

	malformed, err := NewPad("pad", 10, 5, 3, 1).Box()
	require.NoError(t, err)
	assert.False(t, malformed.WellFormed())
	assert.Negative(t, malformed.Width())
}

func TestObject_Box_NilValues(t *testing.T) {
	_, err := Object{Name: "bare", Class: ClassObstacle}.Box()
	var mae *MissingAttributeError
	require.ErrorAs(t, err, &mae)
	assert.Equal(t, AttrLeft, mae.Attribute)
}

func TestObject_Attributes_Sorted(t *testing.T) {
	obj := NewAgent("a", 1, 2, 3)
	assert.Equal(t, []string{AttrAngle, AttrX, AttrY}, obj.Attributes())
}

func TestScene_ObjectsOfClass(t *testing.T) {
	s := NewScene(
		NewObstacle("o1", 0, 1, 0, 1),
		NewAgent("a", 0, 0, 0),
		NewObstacle("o2", 2, 3, 0, 1),
	)

	obstacles := s.ObjectsOfClass(ClassObstacle)
	require.Len(t, obstacles, 2)
	assert.Equal(t, "o1", obstacles[0].Name)
	assert.Equal(t, "o2", obstacles[1].Name)
	assert.Empty(t, s.ObjectsOfClass(ClassPad))
	assert.Equal(t, 3, s.Len())
}

func TestDefaultScene(t *testing.T) {
	s := DefaultScene()
	require.Equal(t, 3, s.Len())

	agent, err := s.ObjectsOfClass(ClassAgent)[0].Agent()
	require.NoError(t, err)
	assert.Equal(t, Agent{X: 5, Y: 0, Angle: 0}, agent)

	pad, err := s.ObjectsOfClass(ClassPad)[0].Box()
	require.NoError(t, err)
	assert.Equal(t, Box{Left: 80, Right: 95, Bottom: 0, Top: 10}, pad)
}
