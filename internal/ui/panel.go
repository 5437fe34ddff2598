// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ui

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/pixelgrid"
)

const (
	bannerInset = 8
	lineHeight  = 22
)

var (
	panelBackground = gg.Hex("#1f2937")
	panelText       = gg.Hex("#f9fafb")
	checkboxOn      = gg.Hex("#3b82f6")
	thresholdFill   = gg.Hex("#facc15")
	thresholdText   = gg.Hex("#111827")
	errorFill       = gg.Hex("#dc2626")
)

// drawPanel paints the checkboxes, the four readouts and any banner.
func (c *Controller) drawPanel(dc *gg.Context, f pixelgrid.Frame) error {
	l := c.layout

	dc.SetColor(panelBackground.Color())
	dc.DrawRectangle(l.Panel.X, l.Panel.Y, l.Panel.W, l.Panel.H)
	if err := dc.Fill(); err != nil {
		return err
	}

	if err := c.drawCheckbox(dc, l.Corners, "Show corners (C)", f.ShowCornerLabels()); err != nil {
		return err
	}
	if err := c.drawCheckbox(dc, l.Prime, "Show prime (P)", f.ShowPrimeLabels()); err != nil {
		return err
	}

	m := f.Metrics
	lines := []string{
		"Reparatron: " + m.ReparatronText(),
		"Ezoptron: " + m.EzoptronText(),
		"Control: " + m.ControlText(),
		fmt.Sprintf("Status: %s", m.Status),
	}
	c.setText(dc, panelText)
	for i, s := range lines {
		c.drawText(dc, s, l.Readouts.X, l.Readouts.Y+float64(i)*rowHeight)
	}

	y := l.Banners.Y
	if f.ThresholdBanner != "" {
		h, err := c.drawBanner(dc, f.ThresholdBanner, y, thresholdFill, thresholdText)
		if err != nil {
			return err
		}
		y += h + rowHeight/2
	}
	if f.ErrorBanner != "" {
		if _, err := c.drawBanner(dc, f.ErrorBanner, y, errorFill, panelText); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) drawCheckbox(dc *gg.Context, row pixelgrid.Rect, label string, checked bool) error {
	box := checkbox(row)
	if checked {
		dc.SetColor(checkboxOn.Color())
		dc.DrawRectangle(box.X, box.Y, box.W, box.H)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	dc.SetColor(panelText.Color())
	dc.SetLineWidth(2)
	dc.DrawRectangle(box.X, box.Y, box.W, box.H)
	if err := dc.Stroke(); err != nil {
		return err
	}
	c.drawText(dc, label, box.X+box.W+10, box.Y)
	return nil
}

// drawBanner paints msg in a filled box at y and returns the box height.
func (c *Controller) drawBanner(dc *gg.Context, msg string, y float64, fill, fg gg.RGBA) (float64, error) {
	l := c.layout
	w := l.Panel.W - 2*panelPadding
	lines := c.wrap(msg, w-2*bannerInset)
	h := float64(len(lines))*lineHeight + 2*bannerInset

	dc.SetColor(fill.Color())
	dc.DrawRectangle(l.Banners.X, y, w, h)
	if err := dc.Fill(); err != nil {
		return 0, err
	}
	c.setText(dc, fg)
	for i, line := range lines {
		c.drawText(dc, line, l.Banners.X+bannerInset, y+bannerInset+float64(i)*lineHeight)
	}
	return h, nil
}

// wrap splits msg into lines no wider than width.
func (c *Controller) wrap(msg string, width float64) []string {
	if c.face == nil {
		return []string{msg}
	}
	wrapped := text.WrapText(msg, c.face, width, text.WrapWord)
	lines := make([]string, 0, len(wrapped))
	for _, r := range wrapped {
		lines = append(lines, r.Text)
	}
	return lines
}

func (c *Controller) setText(dc *gg.Context, col gg.RGBA) {
	if c.face == nil {
		return
	}
	dc.SetFont(c.face)
	dc.SetColor(col.Color())
}

func (c *Controller) drawText(dc *gg.Context, s string, x, y float64) {
	if c.face == nil {
		return
	}
	dc.SetFont(c.face)
	dc.DrawStringAnchored(s, x, y, 0, 1)
}
