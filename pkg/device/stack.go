package device

import (
	"fmt"
	"math"
)

type Geometry struct {
	TunnelOxide  float64 // Tunnel oxide thickness (nm)
	ControlOxide float64 // Control oxide thickness (nm)
	FloatingGate float64 // Floating gate thickness (nm)
}

type Bias struct {
	Voltage    float64 // Applied gate voltage (V)
	ControlCap float64 // Control gate capacitance (fF)
	TunnelCap  float64 // Tunnel capacitance (fF)
}

type Level struct {
	BarrierHeight  float64 // Oxide barrier height (eV)
	ElectronEnergy float64 // Electron energy (eV)
}

// Stack is an immutable snapshot of every parameter a model reads.
// It is passed by value; sweeps derive a fresh copy per sample with With.
type Stack struct {
	Geometry
	Bias
	Level
	MassRatio float64 // Effective mass / electron rest mass
}

func DefaultStack() Stack {
	return Stack{
		Geometry: Geometry{
			TunnelOxide:  20,
			ControlOxide: 40,
			FloatingGate: 10,
		},
		Bias: Bias{
			Voltage:    -12,
			ControlCap: 40,
			TunnelCap:  20,
		},
		Level: Level{
			BarrierHeight:  3.2,
			ElectronEnergy: 0,
		},
		MassRatio: 0.42,
	}
}

// Validate checks the preconditions shared by all models.
func (s Stack) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"tunnel oxide thickness", s.TunnelOxide},
		{"control oxide thickness", s.ControlOxide},
		{"floating gate thickness", s.FloatingGate},
		{"control capacitance", s.ControlCap},
		{"tunnel capacitance", s.TunnelCap},
		{"mass ratio", s.MassRatio},
	}
	for _, c := range checks {
		if !(c.value > 0) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%s must be positive and finite, got %g", c.name, c.value)
		}
	}
	if math.IsNaN(s.Voltage) || math.IsNaN(s.BarrierHeight) || math.IsNaN(s.ElectronEnergy) {
		return fmt.Errorf("bias and energy levels must not be NaN")
	}
	return nil
}

type Param string

const (
	ParamTunnelOxide    Param = "tox"
	ParamControlOxide   Param = "tcox"
	ParamFloatingGate   Param = "tfg"
	ParamVoltage        Param = "vg"
	ParamCapRatio       Param = "cratio"
	ParamElectronEnergy Param = "energy"
	ParamBarrierHeight  Param = "phib"
)

var paramInfo = map[Param]struct {
	label string
	noun  string
	unit  string
}{
	ParamTunnelOxide:    {"Tunnel Oxide Thickness", "thickness", "nm"},
	ParamControlOxide:   {"Control Oxide Thickness", "control oxide", "nm"},
	ParamFloatingGate:   {"Floating Gate Thickness", "floating gate", "nm"},
	ParamVoltage:        {"Gate Voltage", "voltage", "V"},
	ParamCapRatio:       {"Capacitance Ratio", "capacitance ratio", ""},
	ParamElectronEnergy: {"Electron Energy", "energy", "eV"},
	ParamBarrierHeight:  {"Barrier Height", "barrier height", "eV"},
}

func ParseParam(name string) (Param, error) {
	p := Param(name)
	if _, ok := paramInfo[p]; !ok {
		return "", fmt.Errorf("unknown sweep parameter: %s", name)
	}
	return p, nil
}

func (p Param) Label() string { return paramInfo[p].label }

func (p Param) Unit() string { return paramInfo[p].unit }

// Noun is the short name used in threshold reports ("Max thickness").
func (p Param) Noun() string { return paramInfo[p].noun }

// With returns a copy of s with one parameter replaced.
// ParamCapRatio scales the control capacitance of s rather than setting it.
func (s Stack) With(p Param, value float64) (Stack, error) {
	switch p {
	case ParamTunnelOxide:
		s.TunnelOxide = value
	case ParamControlOxide:
		s.ControlOxide = value
	case ParamFloatingGate:
		s.FloatingGate = value
	case ParamVoltage:
		s.Voltage = value
	case ParamCapRatio:
		s.ControlCap *= value
	case ParamElectronEnergy:
		s.ElectronEnergy = value
	case ParamBarrierHeight:
		s.BarrierHeight = value
	default:
		return s, fmt.Errorf("unknown sweep parameter: %s", p)
	}
	return s, nil
}
