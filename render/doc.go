// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render paints a pixelgrid.Frame with gogpu/gg.
//
// The grid surface is drawn inset by a margin so that labels anchored
// left of the grid (negative x) stay on the canvas. Pointer positions
// from a window must have Origin subtracted before they reach the model.
//
// # Usage
//
//	r, err := render.New()
//	if err != nil {
//		return err
//	}
//	w, h := r.Size(m.Geometry())
//	dc := gg.NewContext(w, h)
//	if err := r.Draw(dc, m.Frame()); err != nil {
//		return err
//	}
//	return dc.SavePNG("grid.png")
//
// # Layers
//
// Draw paints, back to front: the background, the dark border column
// and bottom row, the white cells, the orange control area (prime mode
// only), the red horizontal axis line, the green vertical axis line,
// the blue marker and finally the overlay labels.
//
// # Thread Safety
//
// Renderer is immutable after New and may be shared. A gg.Context is
// NOT safe for concurrent use.
package render
