// cmd/render/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/geom"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/render"
	"github.com/opd-ai/go-lander/pkg/render/ggcanvas"
	"github.com/opd-ai/go-lander/pkg/state"
)

type options struct {
	configPath string
	scenePath  string
	outPath    string
	backend    string
	width      int
	height     int
	color      bool
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		log.Fatalf("render failed: %v", err)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "lander.yaml", "Path to configuration file (.json, .yaml)")
	flag.StringVar(&opts.scenePath, "scene", "", "Scene file (.json, .yaml); the default scene when empty")
	flag.StringVar(&opts.outPath, "out", "frame.png", "Output PNG path (raster and gg backends)")
	flag.StringVar(&opts.backend, "backend", "raster", "Backend: 'raster', 'gg' or 'terminal'")
	flag.IntVar(&opts.width, "width", 0, "Canvas width in pixels (overrides config)")
	flag.IntVar(&opts.height, "height", 0, "Canvas height in pixels (overrides config)")
	flag.BoolVar(&opts.color, "color", false, "Colorize terminal output")
	flag.Parse()
	return opts
}

func run(opts options) error {
	logger := logging.NewLogger()

	cfg, err := config.Resolve(opts.configPath)
	if err != nil {
		return err
	}
	if opts.width > 0 {
		cfg.Canvas.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Canvas.Height = opts.height
	}

	scene := state.DefaultScene()
	if opts.scenePath != "" {
		if scene, err = state.LoadScene(opts.scenePath); err != nil {
			return err
		}
	}

	renderer, err := render.NewLanderRenderer(cfg, logger)
	if err != nil {
		return err
	}

	ctx := logging.WithFrameID(context.Background(), "")
	switch strings.ToLower(opts.backend) {
	case "raster":
		canvas := render.NewImageCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
		if err := renderer.Render(ctx, canvas, scene, canvas.Size()); err != nil {
			return err
		}
		if err := canvas.SavePNG(opts.outPath); err != nil {
			return err
		}
	case "gg":
		canvas := ggcanvas.New(cfg.Canvas.Width, cfg.Canvas.Height)
		defer canvas.Close()
		if err := renderer.Render(ctx, canvas, scene, canvas.Size()); err != nil {
			return err
		}
		if err := canvas.SavePNG(opts.outPath); err != nil {
			return logging.WrapError(err, "failed to save %s", opts.outPath)
		}
	case "terminal":
		return renderTerminal(ctx, renderer, scene, cfg, opts.color)
	default:
		return fmt.Errorf("unknown backend %q", opts.backend)
	}

	logger.Info(ctx, "frame written", "path", opts.outPath, "backend", opts.backend, "objects", scene.Len())
	return nil
}

// renderTerminal draws one character cell per 10x20 pixels of the configured canvas.
func renderTerminal(ctx context.Context, renderer *render.StateRenderer, scene state.Scene, cfg *config.Config, color bool) error {
	const cellW, cellH = 10, 20
	cols := max(cfg.Canvas.Width/cellW, 1)
	rows := max(cfg.Canvas.Height/cellH, 1)

	canvas := render.NewTerminalCanvas(cols, rows, cellW, cellH, nil)
	if color {
		canvas.ColorizeDefaults()
	}
	if err := renderer.Render(ctx, canvas, scene, geom.Size{Width: float64(cols * cellW), Height: float64(rows * cellH)}); err != nil {
		return err
	}
	return canvas.Present(os.Stdout)
}
