package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-lander/pkg/geom"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/render"
	"github.com/opd-ai/go-lander/pkg/state"
)

// SceneSource supplies the scene to show. The version changes whenever the
// scene does; *state.Watcher is one.
type SceneSource interface {
	Current() (state.Scene, uint64)
}

// StaticSource always returns the same scene.
type StaticSource struct {
	Scene state.Scene
}

// Current implements SceneSource.
func (s StaticSource) Current() (state.Scene, uint64) { return s.Scene, 1 }

// ViewerScene shows a lander scene in an engo window.
type ViewerScene struct {
	renderer *render.StateRenderer
	source   SceneSource
	logger   *logging.Logger
	reload   func(context.Context) error

	canvas *Canvas
	frames *FrameSystem
}

// NewViewerScene creates the scene. reload may be nil; when set it is
// called on the reload key.
func NewViewerScene(renderer *render.StateRenderer, source SceneSource, logger *logging.Logger, reload func(context.Context) error) *ViewerScene {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &ViewerScene{
		renderer: renderer,
		source:   source,
		logger:   logger,
		reload:   reload,
		canvas:   NewCanvas(),
	}
}

// Type returns the scene type (required by Engo)
func (scene *ViewerScene) Type() string {
	return "LanderScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *ViewerScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *ViewerScene) Setup(u engo.Updater) {
	world := u.(*ecs.World)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	scene.frames = &FrameSystem{
		scene:        scene,
		renderSystem: renderSystem,
	}
	world.AddSystem(scene.frames)

	SetupInputBindings()
	world.AddSystem(NewInputSystem(scene.logger, scene.reload))
}

// FrameSystem re-renders the scene when its version or the window size
// changes.
type FrameSystem struct {
	scene        *ViewerScene
	renderSystem *common.RenderSystem

	version uint64
	size    geom.Size
}

// Remove satisfies the ecs.System interface
func (fs *FrameSystem) Remove(basic ecs.BasicEntity) {}

// Update renders a frame when something changed.
func (fs *FrameSystem) Update(dt float32) {
	scene, version := fs.scene.source.Current()
	size := geom.Size{Width: float64(engo.GameWidth()), Height: float64(engo.GameHeight())}
	if !fs.stale(version, size) {
		return
	}

	fs.version, fs.size = version, size
	if fs.draw(scene, size) {
		fs.scene.canvas.Sync(fs.renderSystem)
	}
}

// draw renders scene into the pending fills, discarding whatever an earlier
// aborted frame left behind. It reports whether the fills are ready to sync.
func (fs *FrameSystem) draw(scene state.Scene, size geom.Size) bool {
	ctx := logging.WithFrameID(context.Background(), "")
	fs.scene.canvas.Reset()
	if err := fs.scene.renderer.Render(ctx, fs.scene.canvas, scene, size); err != nil {
		fs.scene.canvas.Reset()
		fs.scene.logger.Error(ctx, "frame aborted, keeping previous frame", err)
		return false
	}
	return true
}

func (fs *FrameSystem) stale(version uint64, size geom.Size) bool {
	return version != fs.version || size != fs.size
}
