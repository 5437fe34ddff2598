package pixelgrid

import (
	"time"
)

// Model holds the marker, the overlay state and the drag guard, and
// exposes them as commands for a presentation layer to drive.
//
// Every command runs to completion synchronously. After any command the
// presentation layer calls Frame and redraws.
//
// Model is NOT safe for concurrent use; drive it from the UI goroutine.
type Model struct {
	geom           Geometry
	pos            Position
	display        DisplayState
	dragging       bool
	detector       ThresholdDetector
	threshold      Banner
	errBanner      Banner
	clock          func() time.Time
	bannerDuration time.Duration
	inst           *instruments
}

// New creates a Model with the marker unplaced and no overlay shown.
//
// Returns ErrInvalidGeometry if the configured geometry is unusable.
func New(opts ...Option) (*Model, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.geometry.Validate(); err != nil {
		return nil, err
	}
	inst, err := newInstruments(o.meter)
	if err != nil {
		return nil, err
	}
	return &Model{
		geom:           o.geometry,
		pos:            Unplaced,
		clock:          o.clock,
		bannerDuration: o.bannerDuration,
		inst:           inst,
	}, nil
}

// Geometry returns the model's pixel layout.
func (m *Model) Geometry() Geometry { return m.geom }

// Position returns the marker's current cell.
func (m *Model) Position() Position { return m.pos }

// Display returns the overlay state.
func (m *Model) Display() DisplayState { return m.display }

// Dragging reports whether a drag session is in progress.
func (m *Model) Dragging() bool { return m.dragging }

// Metrics returns the readouts for the current position.
func (m *Model) Metrics() Metrics { return ComputeMetrics(m.pos) }

// OnPointerDown handles a pointer-down on the drawing surface at p.
// The surface is outside the prime control, so this is also an outside
// interaction. It reports whether the press grabbed the marker.
func (m *Model) OnPointerDown(p Point) bool {
	m.OnOutsideInteraction()
	if !m.geom.HitTest(p, m.geom.ToScreen(m.pos)) {
		return false
	}
	m.dragging = true
	m.inst.add(m.inst.drags)
	Logger().Debug("pixelgrid: drag started", "position", m.pos.String())
	return true
}

// OnPointerMove moves the marker to the cell under p while a drag is in
// progress. It reports whether the marker moved; outside a drag it is
// a no-op.
func (m *Model) OnPointerMove(p Point) bool {
	if !m.dragging {
		return false
	}
	next := m.geom.ToGrid(p)
	prev := m.pos
	m.pos = next

	control := ComputeControl(next)
	if m.detector.Observe(control) {
		m.threshold.Show(ThresholdBannerText, m.clock(), m.bannerDuration)
		m.inst.add(m.inst.crossings)
		Logger().Info("pixelgrid: threshold crossed", "control", control)
	}
	if next != prev {
		Logger().Debug("pixelgrid: marker moved", "from", prev.String(), "to", next.String())
	}
	return next != prev
}

// OnPointerUp ends any drag. Leaving the surface is reported the same way.
func (m *Model) OnPointerUp() {
	if m.dragging {
		Logger().Debug("pixelgrid: drag ended", "position", m.pos.String())
	}
	m.dragging = false
}

// OnToggleCorners applies the corner-label control.
func (m *Model) OnToggleCorners(on bool) {
	m.dismiss()
	from := m.display.Mode()
	m.display.SetCorners(on)
	m.logTransition(from)
}

// OnTogglePrime applies the prime-label control. Enabling fails with
// ErrMarkerNotPlaced while the marker is unplaced: the state is kept,
// the control must be shown unchecked and the error banner goes up.
// Disabling is always accepted.
func (m *Model) OnTogglePrime(on bool) error {
	m.dismiss()
	from := m.display.Mode()
	if !on {
		m.display.DisablePrime()
		m.logTransition(from)
		return nil
	}
	if err := m.display.EnablePrime(m.pos); err != nil {
		m.errBanner.Show(ErrorBannerText, m.clock(), 0)
		m.inst.add(m.inst.rejected)
		Logger().Warn("pixelgrid: prime overlay rejected", "position", m.pos.String(), "err", err)
		return err
	}
	m.logTransition(from)
	return nil
}

// OnOutsideInteraction handles a pointer-down or key-press anywhere but
// the prime control. It dismisses both banners and leaves Prime,
// restoring the saved corner setting.
func (m *Model) OnOutsideInteraction() {
	m.dismiss()
	from := m.display.Mode()
	if m.display.DisablePrime() {
		m.logTransition(from)
	}
}

// DragTo moves the marker to pos through the pointer commands, as a user
// dragging from the marker's centre to the centre of pos would.
// Because it presses on the surface it also counts as an outside
// interaction. It reports whether the marker moved.
func (m *Model) DragTo(pos Position) bool {
	if !m.OnPointerDown(m.geom.ToScreen(m.pos).Center()) {
		return false
	}
	moved := m.OnPointerMove(m.geom.ToScreen(pos.Clamp()).Center())
	m.OnPointerUp()
	return moved
}

func (m *Model) dismiss() {
	m.threshold.Hide()
	m.errBanner.Hide()
}

func (m *Model) logTransition(from Mode) {
	to := m.display.Mode()
	if from == to {
		return
	}
	Logger().Info("pixelgrid: overlay changed",
		"from", from.String(),
		"to", to.String(),
		"savedCorners", m.display.SavedCornerLabels())
}

// Frame is a read-only snapshot of everything the presentation layer
// renders.
type Frame struct {
	Geometry Geometry
	Position Position
	Marker   Rect // marker square in pixels
	Mode     Mode
	Dragging bool
	Metrics  Metrics
	Labels   []Label

	ControlArea     Rect // valid when ShowControlArea is true
	ShowControlArea bool

	ThresholdBanner string // empty when hidden
	ErrorBanner     string // empty when hidden
}

// ShowCornerLabels reports whether the corner overlay checkbox is checked.
func (f Frame) ShowCornerLabels() bool { return f.Mode == ModeCorners }

// ShowPrimeLabels reports whether the prime overlay checkbox is checked.
func (f Frame) ShowPrimeLabels() bool { return f.Mode == ModePrime }

// Frame returns the current snapshot.
func (m *Model) Frame() Frame {
	now := m.clock()
	f := Frame{
		Geometry: m.geom,
		Position: m.pos,
		Marker:   m.geom.ToScreen(m.pos),
		Mode:     m.display.Mode(),
		Dragging: m.dragging,
		Metrics:  ComputeMetrics(m.pos),
		Labels:   m.geom.Labels(m.display.Mode(), m.pos),
	}
	if f.Mode == ModePrime {
		f.ControlArea, f.ShowControlArea = m.geom.ControlArea(m.pos)
	}
	if m.threshold.Visible(now) {
		f.ThresholdBanner = m.threshold.Text()
	}
	if m.errBanner.Visible(now) {
		f.ErrorBanner = m.errBanner.Text()
	}
	return f
}
