package device

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func retentionStack() Stack {
	s := DefaultStack()
	s.ElectronEnergy = 1.0
	return s
}

func TestResonantDefaultScenario(t *testing.T) {
	// Reference run of the 20/40/10 nm stack at E=1.0 eV: |1/D|^2 underflows,
	// so the floor is returned.
	got, err := NewRetention().Transmission(retentionStack())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1e-300 {
		t.Errorf("T = %e, expected 1e-300", got)
	}
}

func TestResonantDomainError(t *testing.T) {
	s := retentionStack()
	s.ElectronEnergy = 4.0

	r := NewRetention()
	_, err := r.Transmission(s)
	if err == nil {
		t.Fatal("expected domain error for E=4.0 eV above a 3.2 eV barrier")
	}
	if !errors.Is(err, ErrDomain) {
		t.Errorf("error %v does not match ErrDomain", err)
	}
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not a *DomainError", err)
	}
	if de.Energy != 4.0 || de.Edge != 3.2 {
		t.Errorf("domain error carries E=%g edge=%g, expected 4.0 and 3.2", de.Energy, de.Edge)
	}

	s.ElectronEnergy = 3.2
	if _, err := r.TunnelingFactor(s, 20, 3.2); !errors.Is(err, ErrDomain) {
		t.Errorf("E equal to barrier: got %v, expected domain error", err)
	}

	s.ElectronEnergy = -0.5
	if _, err := r.Transmission(s); !errors.Is(err, ErrDomain) {
		t.Errorf("negative energy: got %v, expected domain error", err)
	}
}

func TestTunnelingFactor(t *testing.T) {
	r := NewRetention()
	s := retentionStack()

	if got, _ := r.TunnelingFactor(s, 0, 3.2); got != 1 {
		t.Errorf("zero thickness factor = %g, expected 1", got)
	}

	// k = sqrt(2 m* (V0-E)) / hbar with CODATA constants
	k := math.Sqrt(2*0.42*9.1093837015e-31*2.2*1.602176634e-19) / 1.054571817e-34
	expected := math.Exp(-2 * k * 1e-9)
	got, err := r.TunnelingFactor(s, 1, 3.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-expected)/expected > 1e-12 {
		t.Errorf("factor = %e, expected %e", got, expected)
	}
}

func TestPhaseAccumulation(t *testing.T) {
	r := NewRetention()
	s := retentionStack()

	kMid := math.Sqrt(2*0.42*9.1093837015e-31*1.602176634e-19) / 1.054571817e-34
	got, err := r.PhaseAccumulation(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-kMid*10e-9) > 1e-9 {
		t.Errorf("phase = %g, expected %g", got, kMid*10e-9)
	}
}

func TestResonantDenominatorKnownValues(t *testing.T) {
	tests := []struct {
		t3, t1, t2 float64
		expected   complex128
	}{
		{1, 1, 0, 2.125},
		{1, 1, math.Pi / 2, -1i},
	}
	for _, tt := range tests {
		got := ResonantDenominator(tt.t3, tt.t1, tt.t2)
		if cmplx.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("D(%g, %g, %g) = %v, expected %v", tt.t3, tt.t1, tt.t2, got, tt.expected)
		}
	}
}

func TestResonantDenominatorLogPathEquivalence(t *testing.T) {
	for _, t3 := range []float64{1, 0.5, 1e-3, 1e-20} {
		for _, t1 := range []float64{1, 0.1, 1e-30} {
			for _, t2 := range []float64{0, 0.3, 1.7, 33.2} {
				direct := denominator(t3, t1, t2, false)
				rescaled := denominator(t3, t1, t2, true)
				if rel := cmplx.Abs(direct-rescaled) / cmplx.Abs(direct); rel > 1e-9 {
					t.Errorf("D(%g, %g, %g): direct %v, rescaled %v, rel diff %g", t3, t1, t2, direct, rescaled, rel)
				}
				if cmplx.Abs(direct) < 1-1e-12 {
					t.Errorf("|D(%g, %g, %g)| = %g below 1", t3, t1, t2, cmplx.Abs(direct))
				}
			}
		}
	}
}

func TestResonantDenominatorFloors(t *testing.T) {
	// Factors below the floor behave exactly like the floor itself.
	a := ResonantDenominator(0, 0, 1.2)
	b := ResonantDenominator(1e-100, 1e-100, 1.2)
	if a != b {
		t.Errorf("D with zero factors = %v, with floored factors = %v", a, b)
	}
	if cmplx.IsNaN(a) || cmplx.IsInf(a) {
		t.Errorf("D with zero factors is not finite: %v", a)
	}
}

func TestResonantRange(t *testing.T) {
	r := NewRetention()
	for _, tox := range []float64{0.5, 1, 7, 20, 1000} {
		for _, tfg := range []float64{1, 5, 10, 30} {
			for _, e := range []float64{0, 0.1, 1.0, 3.0} {
				s := retentionStack()
				s.TunnelOxide = tox
				s.ControlOxide = 1
				s.FloatingGate = tfg
				s.ElectronEnergy = e
				got, err := r.Transmission(s)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if math.IsNaN(got) || math.IsInf(got, 0) || got < 1e-300 || got > 1 {
					t.Errorf("T(tox=%g, tfg=%g, E=%g) = %e out of [1e-300, 1]", tox, tfg, e, got)
				}
			}
		}
	}
}

func TestResonantThinStack(t *testing.T) {
	s := retentionStack()
	s.TunnelOxide = 1
	s.ControlOxide = 1
	s.FloatingGate = 2

	got, err := NewRetention().Transmission(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got <= 1e-300 || got > 1 {
		t.Errorf("thin stack T = %e, expected above the floor and at most 1", got)
	}
}
