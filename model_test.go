package pixelgrid

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// countingMeter records Int64Counter totals by instrument name.
type countingMeter struct {
	noop.Meter
	counters map[string]*countingCounter
}

func newCountingMeter() *countingMeter {
	return &countingMeter{counters: make(map[string]*countingCounter)}
}

func (m *countingMeter) Int64Counter(name string, _ ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	c := &countingCounter{}
	m.counters[name] = c
	return c, nil
}

func (m *countingMeter) total(name string) int64 {
	if c, ok := m.counters[name]; ok {
		return c.n
	}
	return -1
}

type countingCounter struct {
	noop.Int64Counter
	n int64
}

func (c *countingCounter) Add(_ context.Context, incr int64, _ ...metric.AddOption) {
	c.n += incr
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestModel(t *testing.T) (*Model, *fakeClock, *countingMeter) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	meter := newCountingMeter()
	m, err := New(WithClock(clock.Now), WithMeter(meter))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return m, clock, meter
}

func TestNew_Defaults(t *testing.T) {
	m, _, _ := newTestModel(t)
	if m.Position() != Unplaced {
		t.Errorf("Position() = %v, want %v", m.Position(), Unplaced)
	}
	if m.Display().Mode() != ModeNormal {
		t.Errorf("Mode() = %v, want Normal", m.Display().Mode())
	}
	if m.Dragging() {
		t.Error("Dragging() = true on a new model")
	}
	if m.Geometry() != DefaultGeometry() {
		t.Errorf("Geometry() = %+v, want default", m.Geometry())
	}

	f := m.Frame()
	if f.Metrics.ReparatronText() != "0%" || f.Metrics.EzoptronText() != "0%" || f.Metrics.ControlText() != "0.00%" {
		t.Errorf("initial readouts = %s %s %s", f.Metrics.ReparatronText(), f.Metrics.EzoptronText(), f.Metrics.ControlText())
	}
	if f.Metrics.Status != StatusSemiurge {
		t.Errorf("initial status = %q, want %q", f.Metrics.Status, StatusSemiurge)
	}
}

func TestNew_InvalidGeometry(t *testing.T) {
	_, err := New(WithGeometry(Geometry{}))
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("New() with zero geometry = %v, want ErrInvalidGeometry", err)
	}
}

func TestModel_DragLifecycle(t *testing.T) {
	m, _, meter := newTestModel(t)

	if m.OnPointerMove(Pt(454, 454)) {
		t.Fatal("OnPointerMove without a drag moved the marker")
	}
	if m.Position() != Unplaced {
		t.Fatalf("Position() = %v after idle move", m.Position())
	}

	if !m.OnPointerDown(Pt(4, 904)) {
		t.Fatal("OnPointerDown on the marker did not start a drag")
	}
	if !m.Dragging() {
		t.Fatal("Dragging() = false after grabbing the marker")
	}
	if !m.OnPointerMove(Pt(454, 454)) {
		t.Error("OnPointerMove during a drag did not move the marker")
	}
	if m.OnPointerMove(Pt(452, 452)) {
		t.Error("OnPointerMove within the same cell reported a move")
	}
	if m.Position() != (Position{49, 50}) {
		t.Errorf("Position() = %v, want (49,50)", m.Position())
	}
	// 455/9 is past the half-cell mark, so the marker snaps to the next cell.
	if !m.OnPointerMove(Pt(455, 455)) {
		t.Error("OnPointerMove past the half-cell mark did not move the marker")
	}
	if m.Position() != (Position{50, 51}) {
		t.Errorf("Position() = %v, want (50,51)", m.Position())
	}

	m.OnPointerUp()
	if m.Dragging() {
		t.Error("Dragging() = true after OnPointerUp")
	}
	if m.OnPointerMove(Pt(900, 0)) {
		t.Error("OnPointerMove after OnPointerUp moved the marker")
	}
	if got := meter.total("pixelgrid.drag.sessions"); got != 1 {
		t.Errorf("drag sessions = %d, want 1", got)
	}
}

func TestModel_PointerDownMiss(t *testing.T) {
	m, _, meter := newTestModel(t)
	if m.OnPointerDown(Pt(454, 454)) {
		t.Error("OnPointerDown far from the marker started a drag")
	}
	if m.Dragging() {
		t.Error("Dragging() = true after a miss")
	}
	if got := meter.total("pixelgrid.drag.sessions"); got != 0 {
		t.Errorf("drag sessions = %d, want 0", got)
	}
}

func TestModel_DragClampsOffSurface(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.OnPointerDown(Pt(4, 904))
	m.OnPointerMove(Pt(5000, -300))
	if m.Position() != (Position{99, 0}) {
		t.Errorf("Position() = %v, want (99,0)", m.Position())
	}
	if got := m.Metrics().Control; got != 100 {
		t.Errorf("Control = %v, want 100", got)
	}
}

func TestModel_ThresholdBanner(t *testing.T) {
	m, clock, meter := newTestModel(t)

	m.OnPointerDown(Pt(4, 904))
	m.OnPointerMove(m.Geometry().ToScreen(Position{98, 50}).Center()) // 49.5
	if f := m.Frame(); f.ThresholdBanner != "" {
		t.Fatalf("banner shown below the threshold: %q", f.ThresholdBanner)
	}

	m.OnPointerMove(m.Geometry().ToScreen(Position{59, 16}).Center()) // 50.4
	if f := m.Frame(); f.ThresholdBanner != ThresholdBannerText {
		t.Fatalf("ThresholdBanner = %q after crossing, want %q", f.ThresholdBanner, ThresholdBannerText)
	}

	m.OnPointerMove(m.Geometry().ToScreen(Position{99, 0}).Center()) // 100
	if got := meter.total("pixelgrid.threshold.crossings"); got != 1 {
		t.Errorf("crossings = %d, want 1", got)
	}

	clock.Advance(999 * time.Millisecond)
	if f := m.Frame(); f.ThresholdBanner == "" {
		t.Error("banner hidden before one second elapsed")
	}
	clock.Advance(time.Millisecond)
	if f := m.Frame(); f.ThresholdBanner != "" {
		t.Error("banner still visible after one second")
	}

	m.OnPointerMove(m.Geometry().ToScreen(Position{9, 9}).Center()) // 9
	if got := meter.total("pixelgrid.threshold.crossings"); got != 2 {
		t.Errorf("crossings = %d after downward move, want 2", got)
	}
}

func TestModel_ThresholdBannerDuration(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	m, err := New(WithClock(clock.Now), WithBannerDuration(3*time.Second))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	m.DragTo(Position{99, 0})
	clock.Advance(2 * time.Second)
	if m.Frame().ThresholdBanner == "" {
		t.Error("banner hidden before the configured duration")
	}
}

func TestModel_ThresholdBannerZeroDurationExpires(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	m, err := New(WithClock(clock.Now), WithBannerDuration(0))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	m.DragTo(Position{99, 0})
	if m.Frame().ThresholdBanner != ThresholdBannerText {
		t.Fatal("banner not shown after crossing")
	}
	clock.Advance(DefaultBannerDuration)
	if got := m.Frame().ThresholdBanner; got != "" {
		t.Errorf("ThresholdBanner = %q after the default duration, want hidden", got)
	}
}

func TestModel_PrimeRejectedWhenUnplaced(t *testing.T) {
	m, _, meter := newTestModel(t)

	err := m.OnTogglePrime(true)
	if !errors.Is(err, ErrMarkerNotPlaced) {
		t.Fatalf("OnTogglePrime(true) = %v, want ErrMarkerNotPlaced", err)
	}
	f := m.Frame()
	if f.ShowPrimeLabels() {
		t.Error("prime labels on after a rejected request")
	}
	if f.ErrorBanner != ErrorBannerText {
		t.Errorf("ErrorBanner = %q, want %q", f.ErrorBanner, ErrorBannerText)
	}
	if got := meter.total("pixelgrid.prime.rejected"); got != 1 {
		t.Errorf("rejected = %d, want 1", got)
	}

	m.OnOutsideInteraction()
	if f := m.Frame(); f.ErrorBanner != "" {
		t.Errorf("ErrorBanner = %q after an outside interaction, want hidden", f.ErrorBanner)
	}
}

func TestModel_PrimeRejectedOnSentinelAxis(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.OnToggleCorners(true)

	for _, pos := range []Position{{-1, 40}, {40, CellCount}} {
		m.DragTo(pos)
		if m.Position() != pos {
			t.Fatalf("DragTo(%v) landed at %v", pos, m.Position())
		}
		if err := m.OnTogglePrime(true); !errors.Is(err, ErrMarkerNotPlaced) {
			t.Errorf("OnTogglePrime(true) at %v = %v, want ErrMarkerNotPlaced", pos, err)
		}
		if !m.Display().ShowCornerLabels() {
			t.Errorf("corner labels lost after rejected prime request at %v", pos)
		}
	}
}

func TestModel_PrimeFromCornersRestores(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.DragTo(Position{49, 50})
	m.OnToggleCorners(true)

	if err := m.OnTogglePrime(true); err != nil {
		t.Fatalf("OnTogglePrime(true) = %v", err)
	}
	f := m.Frame()
	if f.ShowCornerLabels() || !f.ShowPrimeLabels() {
		t.Fatalf("in Prime: corners=%v prime=%v", f.ShowCornerLabels(), f.ShowPrimeLabels())
	}
	if len(f.Labels) != 4 || !f.Labels[0].Prime {
		t.Fatalf("Labels = %+v, want four prime labels", f.Labels)
	}
	if !f.ShowControlArea {
		t.Error("ShowControlArea = false in Prime with a placed marker")
	}

	if err := m.OnTogglePrime(false); err != nil {
		t.Fatalf("OnTogglePrime(false) = %v", err)
	}
	f = m.Frame()
	if !f.ShowCornerLabels() || f.ShowPrimeLabels() {
		t.Errorf("after Prime: corners=%v prime=%v, want corners restored", f.ShowCornerLabels(), f.ShowPrimeLabels())
	}
	if f.ShowControlArea {
		t.Error("ShowControlArea = true outside Prime")
	}
}

func TestModel_OutsideInteractionLeavesPrime(t *testing.T) {
	tests := []struct {
		name    string
		corners bool
		leave   func(m *Model)
		want    Mode
	}{
		{"outside from normal", false, func(m *Model) { m.OnOutsideInteraction() }, ModeNormal},
		{"outside from corners", true, func(m *Model) { m.OnOutsideInteraction() }, ModeCorners},
		{"surface press", true, func(m *Model) { m.OnPointerDown(Pt(0, 0)) }, ModeCorners},
		{"corners off", true, func(m *Model) { m.OnToggleCorners(false) }, ModeNormal},
		{"corners on", false, func(m *Model) { m.OnToggleCorners(true) }, ModeCorners},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestModel(t)
			m.DragTo(Position{10, 10})
			m.OnToggleCorners(tt.corners)
			if err := m.OnTogglePrime(true); err != nil {
				t.Fatalf("OnTogglePrime(true) = %v", err)
			}

			tt.leave(m)
			if got := m.Display().Mode(); got != tt.want {
				t.Errorf("mode = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModel_GrabMarkerInPrime(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.DragTo(Position{10, 10})
	_ = m.OnTogglePrime(true)

	center := m.Geometry().ToScreen(m.Position()).Center()
	if !m.OnPointerDown(center) {
		t.Fatal("OnPointerDown on the marker did not start a drag")
	}
	if m.Display().ShowPrimeLabels() {
		t.Error("pressing the surface did not leave Prime")
	}
}

func TestModel_DragTo(t *testing.T) {
	m, _, _ := newTestModel(t)
	if !m.DragTo(Position{49, 50}) {
		t.Fatal("DragTo() = false")
	}
	if m.Position() != (Position{49, 50}) {
		t.Errorf("Position() = %v, want (49,50)", m.Position())
	}
	if m.Dragging() {
		t.Error("DragTo left a drag open")
	}
	if got := m.Metrics().Control; got != 25 {
		t.Errorf("Control = %v, want 25", got)
	}
	if m.DragTo(Position{49, 50}) {
		t.Error("DragTo() to the same cell reported a move")
	}
	if !m.DragTo(Position{500, -5}) || m.Position() != (Position{99, 0}) {
		t.Errorf("DragTo() out of range landed at %v, want (99,0)", m.Position())
	}
}

func TestModel_PrimeLabelsFollowDrag(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.DragTo(Position{49, 50})
	_ = m.OnTogglePrime(true)

	before := m.Frame().Labels[2].Anchor
	// A keyboard-only presentation can keep Prime while the marker moves;
	// drive the move without a surface press.
	m.dragging = true
	m.OnPointerMove(m.Geometry().ToScreen(Position{9, 9}).Center())
	m.OnPointerUp()

	after := m.Frame().Labels[2].Anchor
	if after == before {
		t.Errorf("C' anchor did not follow the marker: %v", after)
	}
	if after != Pt(98, 81) {
		t.Errorf("C' anchor = %v, want (98, 81)", after)
	}
}
