package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-lander/pkg/logging"
)

// InputSystem handles the viewer's keyboard shortcuts.
type InputSystem struct {
	logger *logging.Logger
	reload func(context.Context) error
}

// NewInputSystem creates a new input system
func NewInputSystem(logger *logging.Logger, reload func(context.Context) error) *InputSystem {
	return &InputSystem{logger: logger, reload: reload}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update processes input
func (is *InputSystem) Update(dt float32) {
	if engo.Input.Button("reload").JustPressed() && is.reload != nil {
		ctx := context.Background()
		if err := is.reload(ctx); err != nil {
			is.logger.Warn(ctx, "manual reload failed", "error", err.Error())
		}
	}
	if engo.Input.Button("quit").JustPressed() {
		engo.Exit()
	}
}

// SetupInputBindings sets up the key bindings for the viewer
func SetupInputBindings() {
	engo.Input.RegisterButton("reload", engo.KeyR, engo.KeyF5)
	engo.Input.RegisterButton("quit", engo.KeyEscape, engo.KeyQ)
}
