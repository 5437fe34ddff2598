// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gg"

// Palette holds the fill colours of every layer.
type Palette struct {
	Background  gg.RGBA
	Border      gg.RGBA
	Cell        gg.RGBA
	Horizontal  gg.RGBA // reparatron axis line
	Vertical    gg.RGBA // ezoptron axis line
	ControlArea gg.RGBA
	Marker      gg.RGBA
	Label       gg.RGBA
	PrimeLabel  gg.RGBA
}

// DefaultPalette returns the grey-and-white grid colours.
func DefaultPalette() Palette {
	return Palette{
		Background:  gg.Hex("#6b7280"),
		Border:      gg.Hex("#374151"),
		Cell:        gg.Hex("#ffffff"),
		Horizontal:  gg.Hex("#ef4444"),
		Vertical:    gg.Hex("#22c55e"),
		ControlArea: gg.Hex("#ffa500"),
		Marker:      gg.Hex("#3b82f6"),
		Label:       gg.Hex("#111827"),
		PrimeLabel:  gg.Hex("#c2410c"),
	}
}
