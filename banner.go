package pixelgrid

import "time"

// DefaultBannerDuration is how long the threshold banner stays up.
const DefaultBannerDuration = time.Second

// Banner texts.
const (
	ThresholdBannerText = "Threshold"
	ErrorBannerText     = "Place the marker on the grid before showing prime labels"
)

// Banner is a transient message shown by the presentation layer. It
// never schedules anything itself: visibility is evaluated against the
// caller's clock, so a frame loop can poll it without timers.
type Banner struct {
	text    string
	visible bool
	until   time.Time // zero means shown until dismissed
}

// Show makes the banner visible with text. A positive d hides it again
// once d has elapsed after now; otherwise it stays until Hide.
func (b *Banner) Show(text string, now time.Time, d time.Duration) {
	b.text = text
	b.visible = true
	b.until = time.Time{}
	if d > 0 {
		b.until = now.Add(d)
	}
}

// Hide dismisses the banner.
func (b *Banner) Hide() {
	b.visible = false
}

// Visible reports whether the banner is showing at now.
func (b *Banner) Visible(now time.Time) bool {
	if !b.visible {
		return false
	}
	return b.until.IsZero() || now.Before(b.until)
}

// Text returns the last text shown.
func (b *Banner) Text() string {
	return b.text
}
