package pixelgrid

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gogpu/pixelgrid"

// instruments are the counters a Model reports to.
type instruments struct {
	crossings metric.Int64Counter
	rejected  metric.Int64Counter
	drags     metric.Int64Counter
}

func newInstruments(m metric.Meter) (*instruments, error) {
	if m == nil {
		m = otel.Meter(instrumentationName)
	}

	var (
		in  instruments
		err error
	)
	in.crossings, err = m.Int64Counter(
		"pixelgrid.threshold.crossings",
		metric.WithDescription("Control value crossings of the 50% threshold"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create crossings counter: %w", err)
	}

	in.rejected, err = m.Int64Counter(
		"pixelgrid.prime.rejected",
		metric.WithDescription("Prime overlay requests rejected for an unplaced marker"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rejected counter: %w", err)
	}

	in.drags, err = m.Int64Counter(
		"pixelgrid.drag.sessions",
		metric.WithDescription("Pointer-down events that grabbed the marker"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drag counter: %w", err)
	}

	return &in, nil
}

func (in *instruments) add(c metric.Int64Counter) {
	c.Add(context.Background(), 1)
}
