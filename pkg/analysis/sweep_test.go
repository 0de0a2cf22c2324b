package analysis

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/edp1096/toy-tunnel/pkg/device"
)

func TestLinspace(t *testing.T) {
	xs := Linspace(7, 25, 100)
	if len(xs) != 100 {
		t.Fatalf("len = %d, expected 100", len(xs))
	}
	if xs[0] != 7 || xs[99] != 25 {
		t.Errorf("ends = %g, %g, expected 7, 25", xs[0], xs[99])
	}

	desc := Linspace(-5, -25, 3)
	expected := []float64{-5, -15, -25}
	for i := range expected {
		if math.Abs(desc[i]-expected[i]) > 1e-12 {
			t.Errorf("desc[%d] = %g, expected %g", i, desc[i], expected[i])
		}
	}

	if got := Linspace(3, 4, 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("single point = %v, expected [3]", got)
	}
	if got := Linspace(3, 4, 0); got != nil {
		t.Errorf("zero points = %v, expected nil", got)
	}
}

func TestSweepMatchesPointwiseEvaluation(t *testing.T) {
	model := device.NewErase()
	base := device.DefaultStack()
	base.ElectronEnergy = 0.3
	values := Linspace(7, 25, 100)

	sw := NewSweep(model, device.ParamTunnelOxide, values)
	if err := sw.Setup(base); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := sw.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	res := sw.Result()
	if len(res.Samples) != len(values) {
		t.Fatalf("got %d samples, expected %d", len(res.Samples), len(values))
	}
	for i, s := range res.Samples {
		if s.Value != values[i] {
			t.Errorf("sample %d value = %g, expected %g", i, s.Value, values[i])
		}
		snap, _ := base.With(device.ParamTunnelOxide, values[i])
		expected, _ := model.Transmission(snap)
		if s.Coefficient != expected {
			t.Errorf("sample %d T = %e, expected %e", i, s.Coefficient, expected)
		}
	}

	results := sw.GetResults()
	if len(results[SweepKey]) != 100 || len(results["T(erase)"]) != 100 {
		t.Errorf("result columns = %d, %d, expected 100 each", len(results[SweepKey]), len(results["T(erase)"]))
	}

	// The base stack is never modified by the sweep.
	if sw.Base != base {
		t.Errorf("base stack changed during sweep")
	}
}

func TestSweepKeepsUnderflowedSamples(t *testing.T) {
	base := device.DefaultStack()
	base.ElectronEnergy = 1.0

	sw := NewSweep(device.NewRetention(), device.ParamTunnelOxide, Linspace(7, 25, 200))
	if err := sw.Setup(base); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := sw.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	res := sw.Result()
	if len(res.Samples) != 200 {
		t.Fatalf("got %d samples, expected 200", len(res.Samples))
	}
	for i, s := range res.Samples {
		if !(s.Coefficient >= 1e-300 && s.Coefficient <= 1) {
			t.Errorf("sample %d T = %e out of [1e-300, 1]", i, s.Coefficient)
		}
	}
}

func TestSweepAbortsOnDomainError(t *testing.T) {
	base := device.DefaultStack()
	sw := NewSweep(device.NewRetention(), device.ParamElectronEnergy, []float64{1.0, 2.0, 4.0, 1.0})
	if err := sw.Setup(base); err != nil {
		t.Fatalf("setup: %v", err)
	}

	err := sw.Execute()
	if !errors.Is(err, device.ErrDomain) {
		t.Fatalf("got %v, expected domain error", err)
	}
	if !strings.Contains(err.Error(), "energy=4") {
		t.Errorf("error %q does not name the failing sample", err)
	}
	if n := len(sw.Result().Samples); n != 2 {
		t.Errorf("kept %d samples before abort, expected 2", n)
	}
}

func TestSweepPreconditions(t *testing.T) {
	sw := NewSweep(device.NewProgram(), device.ParamVoltage, []float64{12})
	if err := sw.Execute(); err == nil {
		t.Error("execute without setup should fail")
	}

	bad := device.DefaultStack()
	bad.TunnelCap = 0
	if err := sw.Setup(bad); err == nil {
		t.Error("setup with zero tunnel capacitance should fail")
	}

	unknown := NewSweep(device.NewProgram(), device.Param("bogus"), []float64{1})
	if err := unknown.Setup(device.DefaultStack()); err == nil {
		t.Error("setup with unknown parameter should fail")
	}

	thin := NewSweep(device.NewProgram(), device.ParamTunnelOxide, []float64{5, 0})
	if err := thin.Setup(device.DefaultStack()); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := thin.Execute(); err == nil {
		t.Error("zero thickness sample should fail validation")
	}
}

func TestCapRatioScalesControlCapacitance(t *testing.T) {
	model := device.NewProgram()
	base := device.DefaultStack()
	base.Voltage = 12

	sw := NewSweep(model, device.ParamCapRatio, []float64{2})
	if err := sw.Setup(base); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := sw.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	direct := base
	direct.ControlCap = 80
	expected, _ := model.Transmission(direct)
	if got := sw.Result().Samples[0].Coefficient; got != expected {
		t.Errorf("T(ratio=2) = %e, expected %e", got, expected)
	}
}

func TestExecuteAllMatchesSequential(t *testing.T) {
	model := device.NewErase()
	params := []device.Param{device.ParamTunnelOxide, device.ParamVoltage, device.ParamCapRatio}
	axes := [][]float64{Linspace(7, 25, 50), Linspace(-5, -25, 50), Linspace(2, 8, 50)}

	var parallel, sequential []*Sweep
	var all []Analysis
	for i, p := range params {
		a := NewSweep(model, p, axes[i])
		b := NewSweep(model, p, axes[i])
		if err := a.Setup(device.DefaultStack()); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := b.Setup(device.DefaultStack()); err != nil {
			t.Fatalf("setup: %v", err)
		}
		parallel = append(parallel, a)
		sequential = append(sequential, b)
		all = append(all, a)
	}

	if err := ExecuteAll(all...); err != nil {
		t.Fatalf("execute all: %v", err)
	}
	for i := range sequential {
		if err := sequential[i].Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}
		got, want := parallel[i].Result().Samples, sequential[i].Result().Samples
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("%s sample %d: parallel %v, sequential %v", params[i], j, got[j], want[j])
			}
		}
	}
}
