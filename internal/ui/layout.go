// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ui routes window input to a pixelgrid.Model and paints the
// whole window: the grid canvas on the left and the control panel with
// the two checkboxes, the readouts and the banners on the right.
//
// It has no windowing dependency; cmd/pixelgrid feeds it ebiten input.
package ui

import (
	"github.com/gogpu/pixelgrid"
	"github.com/gogpu/pixelgrid/render"
)

// Panel geometry, in pixels.
const (
	PanelWidth   = 300
	panelPadding = 20
	checkboxSize = 18
	rowHeight    = 36
)

// Layout places the grid surface and the panel controls in window
// coordinates.
type Layout struct {
	Surface pixelgrid.Rect // grid drawing surface
	Canvas  pixelgrid.Rect // grid surface plus label margins
	Panel   pixelgrid.Rect

	Corners pixelgrid.Rect // "show corners" checkbox hit area
	Prime   pixelgrid.Rect // "show prime" checkbox hit area

	Readouts pixelgrid.Point // top-left of the first readout line
	Banners  pixelgrid.Point // top-left of the banner area
}

// NewLayout computes the window layout for g drawn by r.
func NewLayout(r *render.Renderer, g pixelgrid.Geometry) Layout {
	cw, ch := r.Size(g)
	sw, sh := g.SurfaceSize()
	origin := r.Origin()

	l := Layout{
		Surface: pixelgrid.Rect{X: origin.X, Y: origin.Y, W: float64(sw), H: float64(sh)},
		Canvas:  pixelgrid.Rect{W: float64(cw), H: float64(ch)},
		Panel:   pixelgrid.Rect{X: float64(cw), W: PanelWidth, H: float64(ch)},
	}

	x := l.Panel.X + panelPadding
	y := float64(panelPadding)
	row := func() pixelgrid.Rect {
		r := pixelgrid.Rect{X: x, Y: y, W: PanelWidth - 2*panelPadding, H: rowHeight}
		y += rowHeight
		return r
	}
	l.Corners = row()
	l.Prime = row()
	y += rowHeight / 2
	l.Readouts = pixelgrid.Pt(x, y)
	y += 4 * rowHeight
	l.Banners = pixelgrid.Pt(x, y+rowHeight/2)
	return l
}

// Size returns the window size.
func (l Layout) Size() (width, height int) {
	return int(l.Canvas.W + l.Panel.W), int(max(l.Canvas.H, l.Panel.H))
}

// checkbox returns the square drawn inside a control row.
func checkbox(row pixelgrid.Rect) pixelgrid.Rect {
	return pixelgrid.Rect{
		X: row.X,
		Y: row.Y + (row.H-checkboxSize)/2,
		W: checkboxSize,
		H: checkboxSize,
	}
}
