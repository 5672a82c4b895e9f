package ebiten

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/render"
	"github.com/opd-ai/go-lander/pkg/state"
)

// SceneSource supplies the scene to show; *state.Watcher is one.
type SceneSource interface {
	Current() (state.Scene, uint64)
}

// Game implements ebiten.Game for a lander scene. The window is resizable;
// the scene is stretched over whatever size the window has.
type Game struct {
	renderer *render.StateRenderer
	source   SceneSource
	logger   *logging.Logger
	reload   func(context.Context) error

	canvas     *Canvas
	width      int
	height     int
	failedAt   uint64
	hasFailure bool
}

// NewGame creates the game. reload may be nil; when set it runs on R or F5.
func NewGame(renderer *render.StateRenderer, source SceneSource, logger *logging.Logger, reload func(context.Context) error, width, height int) *Game {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Game{
		renderer: renderer,
		source:   source,
		logger:   logger,
		reload:   reload,
		canvas:   NewCanvas(nil),
		width:    width,
		height:   height,
	}
}

// Update handles the viewer's keyboard shortcuts.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.reload != nil && (inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyF5)) {
		ctx := context.Background()
		if err := g.reload(ctx); err != nil {
			g.logger.Warn(ctx, "manual reload failed", "error", err.Error())
		}
	}
	return nil
}

// Draw renders the current scene onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	scene, version := g.source.Current()
	g.canvas.SetTarget(screen)

	ctx := logging.WithFrameID(context.Background(), "")
	err := g.renderer.Render(ctx, g.canvas, scene, g.canvas.Size())
	if g.shouldReport(version, err) {
		g.logger.Error(ctx, "frame aborted", err, "version", version)
	}
}

// shouldReport reports each failing scene version once. A successful frame
// clears the failure so a later failure of the same version is reported again.
func (g *Game) shouldReport(version uint64, err error) bool {
	if err == nil {
		g.hasFailure = false
		return false
	}
	if g.hasFailure && g.failedAt == version {
		return false
	}
	g.hasFailure, g.failedAt = true, version
	return true
}

// Layout follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
