package pixelgrid

import (
	"errors"
	"fmt"
	"math"
)

// CellCount is the number of addressable white rows and columns.
const CellCount = 100

// Default pixel geometry of a cell and of the marker.
const (
	DefaultCellSize  = 8.0
	DefaultCellGap   = 1.0
	DefaultPointSize = 8.0
)

// HitTolerance is the per-axis drag tolerance as a multiple of the
// marker's rendered size.
const HitTolerance = 1.5

// ErrInvalidGeometry is returned when a Geometry cannot describe a grid.
var ErrInvalidGeometry = errors.New("pixelgrid: invalid geometry")

// Geometry holds the pixel layout of the grid and maps between surface
// pixels and grid cells.
//
// The zero value is not usable; start from DefaultGeometry.
type Geometry struct {
	CellSize  float64 // edge length of one cell
	CellGap   float64 // spacing between neighbouring cells
	PointSize float64 // edge length of the marker square
}

// DefaultGeometry returns the 8px cell, 1px gap layout.
func DefaultGeometry() Geometry {
	return Geometry{
		CellSize:  DefaultCellSize,
		CellGap:   DefaultCellGap,
		PointSize: DefaultPointSize,
	}
}

// Validate reports whether g can be used for hit-testing and drawing.
func (g Geometry) Validate() error {
	switch {
	case !(g.CellSize > 0):
		return fmt.Errorf("%w: cell size %v", ErrInvalidGeometry, g.CellSize)
	case !(g.CellGap >= 0):
		return fmt.Errorf("%w: cell gap %v", ErrInvalidGeometry, g.CellGap)
	case !(g.PointSize > 0):
		return fmt.Errorf("%w: point size %v", ErrInvalidGeometry, g.PointSize)
	}
	return nil
}

// Pitch is the distance between the origins of neighbouring cells.
func (g Geometry) Pitch() float64 {
	return g.CellSize + g.CellGap
}

// Extent is the far edge of the last cell, measured from the surface
// origin. It is the same on both axes.
func (g Geometry) Extent() float64 {
	return CellCount*g.Pitch() + g.CellSize
}

// SurfaceSize returns the pixel size of a surface that holds the border
// column, the bottom border row and all white cells.
func (g Geometry) SurfaceSize() (width, height int) {
	n := int(math.Ceil(g.Extent()))
	return n, n
}

// ToGrid converts a surface-local pixel position to a grid cell.
// Out-of-surface positions clamp to the nearest valid cell, so the
// result always satisfies x ∈ [-1, CellCount-1] and y ∈ [0, CellCount].
func (g Geometry) ToGrid(p Point) Position {
	pitch := g.Pitch()
	return Position{
		X: snap(p.X/pitch, 0, CellCount) - 1,
		Y: snap(p.Y/pitch, 0, CellCount),
	}
}

// snap rounds v half-up to an integer in [lo, hi].
func snap(v float64, lo, hi int) int {
	if math.IsNaN(v) {
		return lo
	}
	v = math.Floor(v + 0.5)
	if v < float64(lo) {
		return lo
	}
	if v > float64(hi) {
		return hi
	}
	return int(v)
}

// ToScreen returns the marker square for pos. It inverts ToGrid: the
// column offset and pitch are the same, so ToGrid(ToScreen(pos).Min())
// is pos for every valid position.
func (g Geometry) ToScreen(pos Position) Rect {
	pitch := g.Pitch()
	inset := (g.CellSize - g.PointSize) / 2
	return Rect{
		X: float64(pos.X+1)*pitch + inset,
		Y: float64(pos.Y)*pitch + inset,
		W: g.PointSize,
		H: g.PointSize,
	}
}

// CellRect returns the square of the cell in screen column col and
// screen row row. Column 0 is the border column.
func (g Geometry) CellRect(col, row int) Rect {
	pitch := g.Pitch()
	return Rect{
		X: float64(col) * pitch,
		Y: float64(row) * pitch,
		W: g.CellSize,
		H: g.CellSize,
	}
}

// HitTest reports whether a pointer-down at p grabs the marker drawn at
// marker. The pointer is snapped to its cell first; the snapped square
// must lie within HitTolerance times the marker's width horizontally and
// its height vertically.
func (g Geometry) HitTest(p Point, marker Rect) bool {
	candidate := g.ToScreen(g.ToGrid(p))
	tol := Pt(marker.W*HitTolerance, marker.H*HitTolerance)
	return within(candidate.Center(), marker.Center(), tol)
}
