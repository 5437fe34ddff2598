// Package pixelgrid models an interactive 100×100 cell grid with a
// draggable marker.
//
// # Overview
//
// The marker's cell position drives a small set of derived values: two
// axis percentages (reparatron and ezoptron), the area-based control
// percentage and a status derived from it. Two mutually exclusive label
// overlays can be shown: fixed corner labels A–D around the whole grid,
// or prime labels A'–D' around the rectangle the marker spans.
//
// # Quick Start
//
//	m, err := pixelgrid.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Feed pointer events in surface-local pixels.
//	m.OnPointerDown(pixelgrid.Pt(4, 904))
//	m.OnPointerMove(pixelgrid.Pt(454, 454))
//	m.OnPointerUp()
//
//	// Re-read everything the presentation layer needs.
//	f := m.Frame()
//	fmt.Println(f.Metrics.ControlText(), f.Metrics.Status)
//
// # Coordinate System
//
// Screen coordinates follow the usual raster convention:
//   - Origin (0,0) at the top-left of the drawing surface
//   - X increases right
//   - Y increases down
//
// Screen column 0 is a border column, so the leftmost white cell is
// logical column 0 and the border column maps to the sentinel x = -1.
// The bottom border row maps to the sentinel y = 100.
//
// # Presentation
//
// The model never draws. The render sub-package paints a [Frame] with
// gogpu/gg, and cmd/pixelgrid wires the model to a desktop window.
package pixelgrid
