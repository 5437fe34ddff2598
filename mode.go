package pixelgrid

import "errors"

// ErrMarkerNotPlaced is returned when the prime overlay is requested
// while the marker sits on a sentinel position.
var ErrMarkerNotPlaced = errors.New("pixelgrid: marker is not placed")

// Mode is the active label overlay. Modes are exclusive, so the corner
// and prime overlays can never be shown together.
type Mode uint8

const (
	// ModeNormal shows no overlay.
	ModeNormal Mode = iota
	// ModeCorners shows the fixed A–D labels around the grid.
	ModeCorners
	// ModePrime shows the A'–D' labels around the marker rectangle.
	ModePrime
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeCorners:
		return "Corners"
	case ModePrime:
		return "Prime"
	default:
		return "Unknown"
	}
}

// DisplayState is the overlay state machine. It remembers the corner
// setting that was active before Prime so leaving Prime can restore it.
type DisplayState struct {
	mode         Mode
	savedCorners bool
}

// Mode returns the active overlay.
func (s DisplayState) Mode() Mode { return s.mode }

// ShowCornerLabels reports whether the corner overlay is on.
func (s DisplayState) ShowCornerLabels() bool { return s.mode == ModeCorners }

// ShowPrimeLabels reports whether the prime overlay is on.
func (s DisplayState) ShowPrimeLabels() bool { return s.mode == ModePrime }

// SavedCornerLabels is the corner setting Prime will restore on exit.
func (s DisplayState) SavedCornerLabels() bool { return s.savedCorners }

// SetCorners applies the corner-label control. It is always legal; from
// Prime it leaves Prime and lands on the requested corner setting.
func (s *DisplayState) SetCorners(on bool) {
	s.savedCorners = on
	if on {
		s.mode = ModeCorners
	} else {
		s.mode = ModeNormal
	}
}

// EnablePrime enters Prime, remembering whether corners were on.
// It fails with ErrMarkerNotPlaced and leaves the state untouched when
// pos is not placed. Enabling while already in Prime is a no-op.
func (s *DisplayState) EnablePrime(pos Position) error {
	if !pos.Placed() {
		return ErrMarkerNotPlaced
	}
	if s.mode == ModePrime {
		return nil
	}
	s.savedCorners = s.mode == ModeCorners
	s.mode = ModePrime
	return nil
}

// DisablePrime leaves Prime and restores the saved corner setting.
// It reports whether the state changed.
func (s *DisplayState) DisablePrime() bool {
	if s.mode != ModePrime {
		return false
	}
	if s.savedCorners {
		s.mode = ModeCorners
	} else {
		s.mode = ModeNormal
	}
	return true
}
