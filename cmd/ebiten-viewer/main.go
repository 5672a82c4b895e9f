// cmd/ebiten-viewer/main.go
package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/render"
	ebitenrender "github.com/opd-ai/go-lander/pkg/render/ebiten"
	"github.com/opd-ai/go-lander/pkg/state"
)

type staticSource struct{ scene state.Scene }

func (s staticSource) Current() (state.Scene, uint64) { return s.scene, 1 }

func main() {
	configPath := flag.String("config", "lander.yaml", "Path to configuration file")
	scenePath := flag.String("scene", "", "Scene file to show and watch; the default scene when empty")
	flag.Parse()

	logger := logging.NewLogger()

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	renderer, err := render.NewLanderRenderer(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	var source ebitenrender.SceneSource = staticSource{state.DefaultScene()}
	var reload func(context.Context) error
	if *scenePath != "" {
		watcher, err := state.NewWatcher(*scenePath, logger)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
		defer watcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go watcher.Run(ctx)

		source, reload = watcher, watcher.Reload
	}

	game := ebitenrender.NewGame(renderer, source, logger, reload, cfg.Canvas.Width, cfg.Canvas.Height)

	ebiten.SetWindowSize(cfg.Canvas.Width, cfg.Canvas.Height)
	ebiten.SetWindowTitle("Lunar Lander")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Viewer stopped: %v", err)
	}
}
