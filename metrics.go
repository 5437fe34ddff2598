package pixelgrid

import "fmt"

// ThresholdControl is the control percentage that separates the two
// sides of the grid.
const ThresholdControl = 50.0

// Status is the categorical reading of a control percentage.
type Status string

// Status values. Exactly ThresholdControl is its own category.
const (
	StatusThreshold Status = "Threshold"
	StatusDemiurge  Status = "DEMIURGE"
	StatusSemiurge  Status = "semiurge"
)

// ComputeControl returns the share of the grid, in percent, enclosed by
// the rectangle between the grid origin corner and pos. It is 0 for an
// unplaced marker.
func ComputeControl(pos Position) float64 {
	if !pos.Placed() || pos.X < 0 || pos.Y >= CellCount {
		return 0
	}
	controlled := (pos.X + 1) * (CellCount - pos.Y)
	const total = CellCount * CellCount
	return min(100, float64(controlled)/total*100)
}

// Classify maps a control percentage to its Status.
func Classify(control float64) Status {
	switch {
	case control == ThresholdControl:
		return StatusThreshold
	case control > ThresholdControl:
		return StatusDemiurge
	default:
		return StatusSemiurge
	}
}

// Metrics are the four readouts derived from a marker position.
type Metrics struct {
	Reparatron int // horizontal progress, percent
	Ezoptron   int // vertical progress, percent
	Control    float64
	Status     Status
}

// ComputeMetrics derives all readouts from pos.
func ComputeMetrics(pos Position) Metrics {
	control := ComputeControl(pos)
	return Metrics{
		Reparatron: pos.X + 1,
		Ezoptron:   CellCount - pos.Y,
		Control:    control,
		Status:     Classify(control),
	}
}

// ReparatronText formats the horizontal readout, e.g. "42%".
func (m Metrics) ReparatronText() string {
	return fmt.Sprintf("%d%%", m.Reparatron)
}

// EzoptronText formats the vertical readout, e.g. "17%".
func (m Metrics) EzoptronText() string {
	return fmt.Sprintf("%d%%", m.Ezoptron)
}

// ControlText formats the control readout with two decimals, e.g. "25.00%".
func (m Metrics) ControlText() string {
	return fmt.Sprintf("%.2f%%", m.Control)
}

// ThresholdDetector reports when successive control values cross
// ThresholdControl. The zero value starts from a control of 0.
type ThresholdDetector struct {
	last float64
}

// Observe records control and reports whether it crossed the threshold
// relative to the previous observation. Leaving a value of exactly 50
// is not a crossing, arriving at it from either side is.
func (d *ThresholdDetector) Observe(control float64) bool {
	crossed := (d.last < ThresholdControl && control >= ThresholdControl) ||
		(d.last > ThresholdControl && control <= ThresholdControl)
	d.last = control
	return crossed
}

// Last returns the most recently observed control value.
func (d *ThresholdDetector) Last() float64 {
	return d.last
}
