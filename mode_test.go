package pixelgrid

import (
	"errors"
	"testing"
)

var placed = Position{49, 50}

func TestDisplayState_ZeroValue(t *testing.T) {
	var s DisplayState
	if s.Mode() != ModeNormal {
		t.Errorf("Mode() = %v, want Normal", s.Mode())
	}
	if s.ShowCornerLabels() || s.ShowPrimeLabels() || s.SavedCornerLabels() {
		t.Errorf("zero DisplayState has flags set: %+v", s)
	}
}

func TestDisplayState_SetCorners(t *testing.T) {
	var s DisplayState
	s.SetCorners(true)
	if s.Mode() != ModeCorners || !s.SavedCornerLabels() {
		t.Fatalf("after SetCorners(true): mode=%v saved=%v", s.Mode(), s.SavedCornerLabels())
	}
	s.SetCorners(false)
	if s.Mode() != ModeNormal || s.SavedCornerLabels() {
		t.Fatalf("after SetCorners(false): mode=%v saved=%v", s.Mode(), s.SavedCornerLabels())
	}
}

func TestDisplayState_EnablePrimeUnplaced(t *testing.T) {
	for _, pos := range []Position{Unplaced, {-1, 10}, {10, CellCount}} {
		for _, corners := range []bool{false, true} {
			var s DisplayState
			s.SetCorners(corners)
			before := s

			err := s.EnablePrime(pos)
			if !errors.Is(err, ErrMarkerNotPlaced) {
				t.Errorf("EnablePrime(%v) = %v, want ErrMarkerNotPlaced", pos, err)
			}
			if s != before {
				t.Errorf("EnablePrime(%v) changed state: %+v -> %+v", pos, before, s)
			}
			if s.ShowPrimeLabels() {
				t.Errorf("EnablePrime(%v) turned prime labels on", pos)
			}
		}
	}
}

func TestDisplayState_PrimeRestoresCorners(t *testing.T) {
	tests := []struct {
		name    string
		corners bool
		want    Mode
	}{
		{"from corners", true, ModeCorners},
		{"from normal", false, ModeNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s DisplayState
			s.SetCorners(tt.corners)

			if err := s.EnablePrime(placed); err != nil {
				t.Fatalf("EnablePrime() = %v", err)
			}
			if s.Mode() != ModePrime || s.ShowCornerLabels() {
				t.Fatalf("in Prime: mode=%v corners=%v", s.Mode(), s.ShowCornerLabels())
			}
			if s.SavedCornerLabels() != tt.corners {
				t.Errorf("SavedCornerLabels() = %v, want %v", s.SavedCornerLabels(), tt.corners)
			}

			if !s.DisablePrime() {
				t.Fatal("DisablePrime() = false, want true")
			}
			if s.Mode() != tt.want {
				t.Errorf("after DisablePrime: mode = %v, want %v", s.Mode(), tt.want)
			}
		})
	}
}

func TestDisplayState_EnablePrimeTwiceKeepsSaved(t *testing.T) {
	var s DisplayState
	s.SetCorners(true)
	_ = s.EnablePrime(placed)
	_ = s.EnablePrime(placed)
	if !s.SavedCornerLabels() {
		t.Error("second EnablePrime overwrote the saved corner state")
	}
}

func TestDisplayState_DisablePrimeOutsidePrime(t *testing.T) {
	var s DisplayState
	s.SetCorners(true)
	if s.DisablePrime() {
		t.Error("DisablePrime() outside Prime = true, want false")
	}
	if s.Mode() != ModeCorners {
		t.Errorf("mode = %v, want Corners", s.Mode())
	}
}

func TestDisplayState_CornersFromPrime(t *testing.T) {
	var s DisplayState
	_ = s.EnablePrime(placed)

	s.SetCorners(true)
	if s.Mode() != ModeCorners || !s.SavedCornerLabels() {
		t.Errorf("SetCorners(true) from Prime: mode=%v saved=%v", s.Mode(), s.SavedCornerLabels())
	}

	_ = s.EnablePrime(placed)
	s.SetCorners(false)
	if s.Mode() != ModeNormal || s.SavedCornerLabels() {
		t.Errorf("SetCorners(false) from Prime: mode=%v saved=%v", s.Mode(), s.SavedCornerLabels())
	}
}

func TestDisplayState_NeverBothOverlays(t *testing.T) {
	var s DisplayState
	steps := []func(){
		func() { s.SetCorners(true) },
		func() { _ = s.EnablePrime(placed) },
		func() { s.SetCorners(true) },
		func() { _ = s.EnablePrime(placed) },
		func() { s.DisablePrime() },
		func() { s.SetCorners(false) },
		func() { _ = s.EnablePrime(Unplaced) },
		func() { _ = s.EnablePrime(placed) },
	}
	for i, step := range steps {
		step()
		if s.ShowCornerLabels() && s.ShowPrimeLabels() {
			t.Fatalf("step %d: both overlays on", i)
		}
	}
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{ModeNormal, "Normal"},
		{ModeCorners, "Corners"},
		{ModePrime, "Prime"},
		{Mode(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}
