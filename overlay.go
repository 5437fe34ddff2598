package pixelgrid

// Label placement constants, in pixels.
const (
	labelOutset = 32 // distance of left-edge labels from the surface origin
	labelShift  = 12 // leftward shift of labels anchored at x >= 0
	labelLift   = 24 // upward shift of labels anchored on the bottom edge
)

// Label is one overlay corner label.
type Label struct {
	Name   string
	Prime  bool
	Anchor Point // raw corner the label belongs to
	Pos    Point // top-left of the rendered label
}

// label builds a Label and applies the edge placement rule: anchors on
// the bottom edge move up by labelLift, anchors at a non-negative x move
// left by labelShift.
func (g Geometry) label(name string, prime bool, anchor Point) Label {
	pos := anchor
	if anchor.X >= 0 {
		pos.X -= labelShift
	}
	if anchor.Y == g.Extent() {
		pos.Y -= labelLift
	}
	return Label{Name: name, Prime: prime, Anchor: anchor, Pos: pos}
}

// CornerLabels returns A, B, C and D at the corners of the whole grid,
// counter-clockwise from bottom-left.
func (g Geometry) CornerLabels() []Label {
	ext := g.Extent()
	right := ext + labelShift
	return []Label{
		g.label("A", false, Pt(-labelOutset, ext)),
		g.label("B", false, Pt(-labelOutset, 0)),
		g.label("C", false, Pt(right, 0)),
		g.label("D", false, Pt(right, ext)),
	}
}

// PrimeLabels returns A', B', C' and D' at the corners of the rectangle
// spanned by pos. It returns nil when pos is not placed.
func (g Geometry) PrimeLabels(pos Position) []Label {
	if !pos.Placed() || pos.Y >= CellCount {
		return nil
	}
	ext := g.Extent()
	endX := float64(pos.X+1)*g.Pitch() + g.CellSize
	endY := float64(pos.Y) * g.Pitch()
	return []Label{
		g.label("A'", true, Pt(-labelOutset, ext)),
		g.label("B'", true, Pt(-labelOutset, endY)),
		g.label("C'", true, Pt(endX, endY)),
		g.label("D'", true, Pt(endX, ext)),
	}
}

// Labels returns the label set for mode.
func (g Geometry) Labels(mode Mode, pos Position) []Label {
	switch mode {
	case ModeCorners:
		return g.CornerLabels()
	case ModePrime:
		return g.PrimeLabels(pos)
	default:
		return nil
	}
}

// ControlArea returns the rectangle, in pixels, whose share of the grid
// is the control percentage. It runs from the first white column and
// the bottom border row to the far edge of the marker's cell. ok is
// false when pos is not placed.
func (g Geometry) ControlArea(pos Position) (r Rect, ok bool) {
	if !pos.Placed() || pos.Y >= CellCount {
		return Rect{}, false
	}
	pitch := g.Pitch()
	left := pitch
	bottom := CellCount * pitch
	right := float64(pos.X+1)*pitch + g.CellSize
	top := float64(pos.Y) * pitch
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}, true
}
