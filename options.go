package pixelgrid

import (
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Option configures a Model during creation.
//
// Example:
//
//	m, err := pixelgrid.New(
//		pixelgrid.WithGeometry(pixelgrid.Geometry{CellSize: 6, CellGap: 1, PointSize: 6}),
//		pixelgrid.WithBannerDuration(1500*time.Millisecond),
//	)
type Option func(*options)

// options holds optional configuration for Model creation.
type options struct {
	geometry       Geometry
	clock          func() time.Time
	bannerDuration time.Duration
	meter          metric.Meter
}

// defaultOptions returns the default model options.
func defaultOptions() options {
	return options{
		geometry:       DefaultGeometry(),
		clock:          time.Now,
		bannerDuration: DefaultBannerDuration,
		meter:          nil, // resolved from the global provider
	}
}

// WithGeometry sets the pixel layout used for hit-testing and overlays.
func WithGeometry(g Geometry) Option {
	return func(o *options) {
		o.geometry = g
	}
}

// WithClock sets the time source for banner expiry. Tests use it to
// step time deterministically.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithBannerDuration sets how long the threshold banner stays visible.
// Non-positive durations keep DefaultBannerDuration.
func WithBannerDuration(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.bannerDuration = d
		}
	}
}

// WithMeter sets the OpenTelemetry meter for the model's counters.
// Without it the meter comes from otel.GetMeterProvider().
func WithMeter(m metric.Meter) Option {
	return func(o *options) {
		o.meter = m
	}
}
