package pixelgrid

import "fmt"

// Position is a marker location in grid cells.
//
// X ranges over [-1, CellCount-1] and Y over [0, CellCount]; X = -1 and
// Y = CellCount are the off-grid sentinels.
type Position struct {
	X, Y int
}

// Unplaced is the start-up position: both coordinates on their sentinel.
var Unplaced = Position{X: -1, Y: CellCount}

// Placed reports whether neither coordinate is on its sentinel.
func (p Position) Placed() bool {
	return p.X != -1 && p.Y != CellCount
}

// Clamp returns p limited to the valid coordinate ranges.
func (p Position) Clamp() Position {
	return Position{
		X: min(max(p.X, -1), CellCount-1),
		Y: min(max(p.Y, 0), CellCount),
	}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
