// cmd/viewer/main.go
package main

import (
	"context"
	"flag"
	"log"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/render"
	engorender "github.com/opd-ai/go-lander/pkg/render/engo"
	"github.com/opd-ai/go-lander/pkg/state"
)

func main() {
	configPath := flag.String("config", "lander.yaml", "Path to configuration file")
	scenePath := flag.String("scene", "", "Scene file to show and watch; the default scene when empty")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode")
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

	var source engorender.SceneSource = engorender.StaticSource{Scene: state.DefaultScene()}
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

	scene := engorender.NewViewerScene(renderer, source, logger, reload)

	opts := engo.RunOptions{
		Title:      "Lunar Lander",
		Width:      cfg.Canvas.Width,
		Height:     cfg.Canvas.Height,
		Fullscreen: *fullscreen,
		VSync:      true,
	}
	engo.Run(opts, scene)
}
