// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ui

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/pixelgrid"
	"github.com/gogpu/pixelgrid/render"
)

// Key is a window key press as the controller sees it.
type Key uint8

const (
	// KeyOther is any key without a binding.
	KeyOther Key = iota
	// KeyToggleCorners flips the "show corners" checkbox.
	KeyToggleCorners
	// KeyTogglePrime flips the "show prime" checkbox.
	KeyTogglePrime
)

// Controller turns window input into model commands and repaints the
// window when the visible state changes.
//
// Controller is NOT safe for concurrent use.
type Controller struct {
	model    *pixelgrid.Model
	renderer *render.Renderer
	layout   Layout
	face     text.Face // panel text, may be nil

	last  frameKey
	dirty bool
}

// frameKey is the comparable part of a frame; a change means a repaint.
type frameKey struct {
	pos       pixelgrid.Position
	mode      pixelgrid.Mode
	dragging  bool
	threshold string
	err       string
}

func keyOf(f pixelgrid.Frame) frameKey {
	return frameKey{
		pos:       f.Position,
		mode:      f.Mode,
		dragging:  f.Dragging,
		threshold: f.ThresholdBanner,
		err:       f.ErrorBanner,
	}
}

// NewController wires m to r. face is used for the panel text; nil
// leaves the panel without text.
func NewController(m *pixelgrid.Model, r *render.Renderer, face text.Face) *Controller {
	return &Controller{
		model:    m,
		renderer: r,
		layout:   NewLayout(r, m.Geometry()),
		face:     face,
		dirty:    true,
	}
}

// Layout returns the window layout.
func (c *Controller) Layout() Layout {
	return c.layout
}

// Press handles a primary-button press at window position p.
func (c *Controller) Press(p pixelgrid.Point) {
	f := c.model.Frame()
	switch {
	case c.layout.Prime.Contains(p):
		c.togglePrime(!f.ShowPrimeLabels())
	case c.layout.Corners.Contains(p):
		c.model.OnToggleCorners(!f.ShowCornerLabels())
	case c.layout.Surface.Contains(p):
		c.model.OnPointerDown(c.renderer.ToSurface(p))
	default:
		c.model.OnOutsideInteraction()
	}
	c.dirty = true
}

// Move handles the cursor at window position p. Leaving the grid
// surface ends a drag.
func (c *Controller) Move(p pixelgrid.Point) {
	if !c.model.Dragging() {
		return
	}
	if !c.layout.Surface.Contains(p) {
		c.model.OnPointerUp()
		c.dirty = true
		return
	}
	if c.model.OnPointerMove(c.renderer.ToSurface(p)) {
		c.dirty = true
	}
}

// Release handles a primary-button release.
func (c *Controller) Release() {
	if c.model.Dragging() {
		c.model.OnPointerUp()
		c.dirty = true
	}
}

// KeyPress handles a key press. Every key but the prime binding counts
// as an interaction outside the prime checkbox.
func (c *Controller) KeyPress(k Key) {
	f := c.model.Frame()
	switch k {
	case KeyTogglePrime:
		c.togglePrime(!f.ShowPrimeLabels())
	case KeyToggleCorners:
		c.model.OnToggleCorners(!f.ShowCornerLabels())
	default:
		c.model.OnOutsideInteraction()
	}
	c.dirty = true
}

func (c *Controller) togglePrime(on bool) {
	err := c.model.OnTogglePrime(on)
	if err != nil && !errors.Is(err, pixelgrid.ErrMarkerNotPlaced) {
		pixelgrid.Logger().Error("ui: prime toggle failed", "err", err)
	}
}

// NeedsRedraw reports whether the window content changed since the
// last Draw, including banners that expired on their own.
func (c *Controller) NeedsRedraw() bool {
	return c.dirty || keyOf(c.model.Frame()) != c.last
}

// Draw paints the whole window onto dc.
func (c *Controller) Draw(dc *gg.Context) error {
	f := c.model.Frame()
	if err := c.renderer.Draw(dc, f); err != nil {
		return fmt.Errorf("ui: draw grid: %w", err)
	}
	if err := c.drawPanel(dc, f); err != nil {
		return fmt.Errorf("ui: draw panel: %w", err)
	}
	c.last = keyOf(f)
	c.dirty = false
	return nil
}
