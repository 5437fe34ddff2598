// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
)

// DefaultLabelSize is the label font size in pixels.
const DefaultLabelSize = 18

var (
	labelSourceOnce sync.Once
	labelSource     *text.FontSource
	labelSourceErr  error
)

// DefaultFace returns the embedded Go Bold face at size. The font
// source is parsed once and shared.
func DefaultFace(size float64) (text.Face, error) {
	labelSourceOnce.Do(func() {
		labelSource, labelSourceErr = text.NewFontSource(gobold.TTF)
	})
	if labelSourceErr != nil {
		return nil, fmt.Errorf("render: load label font: %w", labelSourceErr)
	}
	return labelSource.Face(size), nil
}
