// Command pixelgrid opens the interactive pixel grid window.
//
// Drag the blue marker onto the grid, toggle the corner labels with the
// first checkbox (or C) and the prime overlay with the second (or P).
// Escape closes the window.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/gogpu/pixelgrid"
	"github.com/gogpu/pixelgrid/internal/config"
	"github.com/gogpu/pixelgrid/internal/logging"
	"github.com/gogpu/pixelgrid/internal/ui"
	"github.com/gogpu/pixelgrid/render"
	"github.com/hajimehoshi/ebiten/v2"
)

const panelFontSize = 14

func main() {
	configDir := flag.String("config", ".", "directory holding "+config.FileName)
	flag.Parse()

	if err := run(*configDir); err != nil {
		slog.Error("pixelgrid failed", "err", err)
		os.Exit(1)
	}
}

func run(configDir string) error {
	loadErr := config.Load(configDir)
	if loadErr != nil && !errors.Is(loadErr, config.ErrConfigNotFound) {
		return loadErr
	}
	cfg, err := config.Get()
	if err != nil {
		return err
	}

	logging.Setup(os.Stderr, cfg.LogLevel)
	if loadErr != nil {
		slog.Info("no config file, using defaults", "dir", configDir)
	}

	model, err := pixelgrid.New(
		pixelgrid.WithGeometry(cfg.Geometry()),
		pixelgrid.WithBannerDuration(cfg.Banner.Duration),
	)
	if err != nil {
		return err
	}
	renderer, err := render.New()
	if err != nil {
		return err
	}
	face, err := render.DefaultFace(panelFontSize)
	if err != nil {
		return err
	}

	g := newGame(ui.NewController(model, renderer, face))
	defer g.close()

	w, h := g.ctrl.Layout().Size()
	scale := cfg.Window.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetTPS(60)

	slog.Info("window opened", "width", w, "height", h, "scale", scale)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
