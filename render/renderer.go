// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/pixelgrid"
)

// DefaultMargin is the space kept around the grid for labels.
const DefaultMargin = 48

// ErrNilContext is returned when Draw is given a nil context.
var ErrNilContext = errors.New("render: nil context")

// Renderer paints frames. Create one with New.
type Renderer struct {
	palette   Palette
	margin    float64
	lineWidth float64
	face      text.Face
	noText    bool
}

// Option configures a Renderer during creation.
type Option func(*Renderer)

// WithPalette overrides the layer colours.
func WithPalette(p Palette) Option {
	return func(r *Renderer) {
		r.palette = p
	}
}

// WithMargin sets the space around the grid, in pixels.
func WithMargin(m float64) Option {
	return func(r *Renderer) {
		r.margin = m
	}
}

// WithLineWidth sets the stroke width of the axis lines. By default it
// follows the marker size.
func WithLineWidth(w float64) Option {
	return func(r *Renderer) {
		r.lineWidth = w
	}
}

// WithFace sets the label font face instead of the embedded Go Bold.
func WithFace(face text.Face) Option {
	return func(r *Renderer) {
		r.face = face
	}
}

// WithoutText skips label text. Label positions are still computed by
// the model; only the glyphs are omitted.
func WithoutText() Option {
	return func(r *Renderer) {
		r.noText = true
	}
}

// New creates a Renderer. Unless WithFace or WithoutText is given the
// embedded label font is loaded, which can fail.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		palette: DefaultPalette(),
		margin:  DefaultMargin,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.margin < 0 {
		return nil, fmt.Errorf("render: negative margin %v", r.margin)
	}
	if r.face == nil && !r.noText {
		face, err := DefaultFace(DefaultLabelSize)
		if err != nil {
			return nil, err
		}
		r.face = face
	}
	return r, nil
}

// Origin is the position of the grid surface's origin on the canvas.
func (r *Renderer) Origin() pixelgrid.Point {
	return pixelgrid.Pt(r.margin, r.margin)
}

// ToSurface converts a canvas position to a grid-surface position.
func (r *Renderer) ToSurface(p pixelgrid.Point) pixelgrid.Point {
	return p.Sub(r.Origin())
}

// Size returns the canvas size needed for g, margins included.
func (r *Renderer) Size(g pixelgrid.Geometry) (width, height int) {
	w, h := g.SurfaceSize()
	m := int(math.Ceil(2 * r.margin))
	return w + m, h + m
}

// Draw paints f onto dc. The context is cleared to the background first.
func (r *Renderer) Draw(dc *gg.Context, f pixelgrid.Frame) error {
	if dc == nil {
		return ErrNilContext
	}
	dc.ClearWithColor(r.palette.Background)

	dc.Push()
	defer dc.Pop()
	dc.Translate(r.margin, r.margin)

	steps := []func(*gg.Context, pixelgrid.Frame) error{
		r.drawCells,
		r.drawControlArea,
		r.drawAxes,
		r.drawMarker,
		r.drawLabels,
	}
	for _, step := range steps {
		if err := step(dc, f); err != nil {
			return err
		}
	}
	return nil
}

// Image renders f onto a new canvas and returns the pixels.
func (r *Renderer) Image(f pixelgrid.Frame) (image.Image, error) {
	w, h := r.Size(f.Geometry)
	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()
	if err := r.Draw(dc, f); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG renders f and writes it to path.
func (r *Renderer) SavePNG(path string, f pixelgrid.Frame) error {
	w, h := r.Size(f.Geometry)
	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()
	if err := r.Draw(dc, f); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	pixelgrid.Logger().Info("render: snapshot saved", "path", path, "width", w, "height", h)
	return nil
}

// drawCells paints the border column, the bottom border row and the
// white cells. Each group is one path so a frame costs three fills.
func (r *Renderer) drawCells(dc *gg.Context, f pixelgrid.Frame) error {
	g := f.Geometry
	const n = pixelgrid.CellCount

	dc.SetColor(r.palette.Border.Color())
	for row := 0; row <= n; row++ {
		rect(dc, g.CellRect(0, row))
	}
	for col := 1; col <= n; col++ {
		rect(dc, g.CellRect(col, n))
	}
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("render: border: %w", err)
	}

	dc.SetColor(r.palette.Cell.Color())
	for row := 0; row < n; row++ {
		for col := 1; col <= n; col++ {
			rect(dc, g.CellRect(col, row))
		}
	}
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("render: cells: %w", err)
	}
	return nil
}

func (r *Renderer) drawControlArea(dc *gg.Context, f pixelgrid.Frame) error {
	if !f.ShowControlArea {
		return nil
	}
	a := f.ControlArea
	dc.SetColor(r.palette.ControlArea.Color())
	dc.MoveTo(a.X, a.Y+a.H)
	dc.LineTo(a.X, a.Y)
	dc.LineTo(a.X+a.W, a.Y)
	dc.LineTo(a.X+a.W, a.Y+a.H)
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("render: control area: %w", err)
	}
	return nil
}

// drawAxes strokes the reparatron line from the marker back to the first
// white column, and the ezoptron line from the marker down to the border
// row. The vertical line is skipped on the last white row, where it would
// only cover the marker itself.
func (r *Renderer) drawAxes(dc *gg.Context, f pixelgrid.Frame) error {
	g := f.Geometry
	c := f.Marker.Center()
	width := r.lineWidth
	if width <= 0 {
		width = g.PointSize
	}
	dc.SetLineWidth(width)

	if f.Position.X > -1 {
		dc.SetColor(r.palette.Horizontal.Color())
		dc.MoveTo(c.X, c.Y)
		dc.LineTo(g.Pitch(), c.Y)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("render: horizontal axis: %w", err)
		}
	}

	if f.Position.Y < pixelgrid.CellCount && f.Metrics.Ezoptron != 1 {
		dc.SetColor(r.palette.Vertical.Color())
		dc.MoveTo(c.X, c.Y)
		dc.LineTo(c.X, pixelgrid.CellCount*g.Pitch())
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("render: vertical axis: %w", err)
		}
	}
	return nil
}

func (r *Renderer) drawMarker(dc *gg.Context, f pixelgrid.Frame) error {
	dc.SetColor(r.palette.Marker.Color())
	rect(dc, f.Marker)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("render: marker: %w", err)
	}
	return nil
}

func (r *Renderer) drawLabels(dc *gg.Context, f pixelgrid.Frame) error {
	if r.noText || r.face == nil || len(f.Labels) == 0 {
		return nil
	}
	dc.SetFont(r.face)
	for _, l := range f.Labels {
		col := r.palette.Label
		if l.Prime {
			col = r.palette.PrimeLabel
		}
		dc.SetColor(col.Color())
		dc.DrawStringAnchored(l.Name, l.Pos.X, l.Pos.Y, 0, 1)
	}
	return nil
}

func rect(dc *gg.Context, r pixelgrid.Rect) {
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
}
