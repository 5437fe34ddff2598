// Command pixelsnap renders one pixel grid frame to a PNG file without
// opening a window.
//
//	pixelsnap -x 49 -y 50 -prime -output grid.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/pixelgrid"
	"github.com/gogpu/pixelgrid/internal/config"
	"github.com/gogpu/pixelgrid/internal/logging"
	"github.com/gogpu/pixelgrid/render"
)

type params struct {
	pos     pixelgrid.Position
	corners bool
	prime   bool
	output  string

	noText    bool
	lineWidth float64 // 0 follows the marker size
	fontSize  float64 // 0 uses render.DefaultLabelSize
}

func main() {
	var (
		configDir = flag.String("config", ".", "directory holding "+config.FileName)
		x         = flag.Int("x", pixelgrid.Unplaced.X, "marker column, -1 to 99")
		y         = flag.Int("y", pixelgrid.Unplaced.Y, "marker row, 0 to 100")
		corners   = flag.Bool("corners", false, "show corner labels")
		prime     = flag.Bool("prime", false, "show prime labels and the control area")
		output    = flag.String("output", "", "output file (default from config)")
		noText    = flag.Bool("notext", false, "omit labels")
		lineWidth = flag.Float64("linewidth", 0, "axis line width, 0 follows the marker size")
		fontSize  = flag.Float64("fontsize", 0, "label font size, 0 for the default")
	)
	flag.Parse()

	loadErr := config.Load(*configDir)
	if loadErr != nil && !errors.Is(loadErr, config.ErrConfigNotFound) {
		fmt.Fprintln(os.Stderr, loadErr)
		os.Exit(1)
	}
	if *output != "" {
		config.Set("snapshot.output", *output)
	}
	cfg, err := config.Get()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(os.Stderr, cfg.LogLevel)

	p := params{
		pos:     pixelgrid.Position{X: *x, Y: *y},
		corners: *corners,
		prime:   *prime,
		output:  cfg.Snapshot.Output,

		noText:    *noText,
		lineWidth: *lineWidth,
		fontSize:  *fontSize,
	}

	if err := snapshot(cfg, p); err != nil {
		slog.Error("snapshot failed", "err", err)
		os.Exit(1)
	}
	slog.Info("snapshot saved", "output", p.output, "position", p.pos.String())
}

// snapshot drives a model to the requested state and saves the frame.
func snapshot(cfg config.Config, p params) error {
	model, err := pixelgrid.New(pixelgrid.WithGeometry(cfg.Geometry()))
	if err != nil {
		return err
	}
	frame, err := drive(model, p)
	if err != nil {
		return err
	}

	opts, err := renderOptions(p)
	if err != nil {
		return err
	}
	r, err := render.New(opts...)
	if err != nil {
		return err
	}
	return r.SavePNG(p.output, frame)
}

// drive applies p to m through the same commands a user would issue.
func drive(m *pixelgrid.Model, p params) (pixelgrid.Frame, error) {
	if p.pos != pixelgrid.Unplaced {
		m.DragTo(p.pos)
	}
	m.OnToggleCorners(p.corners)
	if p.prime {
		if err := m.OnTogglePrime(true); err != nil {
			return pixelgrid.Frame{}, fmt.Errorf("prime labels at %s: %w", m.Position(), err)
		}
	}
	return m.Frame(), nil
}

// renderOptions translates the drawing flags into renderer options.
func renderOptions(p params) ([]render.Option, error) {
	var opts []render.Option
	if p.lineWidth < 0 || p.fontSize < 0 {
		return nil, fmt.Errorf("negative line width %v or font size %v", p.lineWidth, p.fontSize)
	}
	if p.lineWidth > 0 {
		opts = append(opts, render.WithLineWidth(p.lineWidth))
	}
	switch {
	case p.noText:
		opts = append(opts, render.WithoutText())
	case p.fontSize > 0:
		face, err := render.DefaultFace(p.fontSize)
		if err != nil {
			return nil, err
		}
		opts = append(opts, render.WithFace(face))
	}
	return opts, nil
}
