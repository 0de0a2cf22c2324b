package analysis

import (
	"fmt"

	"github.com/edp1096/toy-tunnel/pkg/device"
)

type Regime string

const (
	RegimeErase     Regime = "erase"
	RegimeProgram   Regime = "program"
	RegimeRetention Regime = "retention"
)

func ParseRegime(name string) (Regime, error) {
	switch r := Regime(name); r {
	case RegimeErase, RegimeProgram, RegimeRetention:
		return r, nil
	}
	return "", fmt.Errorf("unknown regime: %s", name)
}

// NewModel returns the coefficient model a regime is evaluated with.
func (r Regime) NewModel() device.Model {
	switch r {
	case RegimeErase:
		return device.NewErase()
	case RegimeProgram:
		return device.NewProgram()
	default:
		return device.NewRetention()
	}
}

type SweepSpec struct {
	Param     device.Param
	Values    []float64
	Direction Direction // which threshold crossing is reported
}

// Study is one regime's full sweep-and-report sequence: every sweep is run
// once per electron energy level.
type Study struct {
	Regime    Regime
	Model     device.Model
	Base      device.Stack
	Energies  []float64 // eV
	Threshold float64
	Sweeps    []SweepSpec
}

// Mark is a threshold crossing found on one sweep.
type Mark struct {
	Param     device.Param
	Direction Direction
	Sample    Sample
	Index     int
	Found     bool
}

// Label names the mark in reports: "Max thickness", "Min voltage".
func (m Mark) Label() string {
	if m.Direction == LastAbove {
		return "Max " + m.Param.Noun()
	}
	return "Min " + m.Param.Noun()
}

type ViabilityRow struct {
	Energy float64
	Marks  []Mark
}

type StudyResult struct {
	Regime    Regime
	Threshold float64
	Energies  []float64
	Curves    [][]Result // [sweep][energy]
	Rows      []ViabilityRow
}

// EffectiveModel is st.Model, or the regime's model when none is set.
func (st *Study) EffectiveModel() device.Model {
	if st.Model != nil {
		return st.Model
	}
	return st.Regime.NewModel()
}

// Run evaluates every sweep at every energy level. st is not modified.
func (st *Study) Run() (*StudyResult, error) {
	model := st.EffectiveModel()
	energies := st.Energies
	if len(energies) == 0 {
		energies = []float64{st.Base.ElectronEnergy}
	}

	sweeps := make([][]*Sweep, len(st.Sweeps))
	var all []Analysis
	for i, spec := range st.Sweeps {
		sweeps[i] = make([]*Sweep, len(energies))
		for j, energy := range energies {
			base := st.Base
			base.ElectronEnergy = energy

			sw := NewSweep(model, spec.Param, spec.Values)
			if err := sw.Setup(base); err != nil {
				return nil, fmt.Errorf("%s study, %s sweep: %w", st.Regime, spec.Param, err)
			}
			sweeps[i][j] = sw
			all = append(all, sw)
		}
	}

	if err := ExecuteAll(all...); err != nil {
		return nil, fmt.Errorf("%s study: %w", st.Regime, err)
	}

	res := &StudyResult{
		Regime:    st.Regime,
		Threshold: st.Threshold,
		Energies:  energies,
		Curves:    make([][]Result, len(st.Sweeps)),
		Rows:      make([]ViabilityRow, len(energies)),
	}
	for i := range st.Sweeps {
		res.Curves[i] = make([]Result, len(energies))
		for j := range energies {
			res.Curves[i][j] = sweeps[i][j].Result()
		}
	}
	for j, energy := range energies {
		res.Rows[j] = Viability(res.Curves, st.Sweeps, j, energy, st.Threshold)
	}

	return res, nil
}

// Viability collects the threshold crossing of every sweep at one energy level.
func Viability(curves [][]Result, specs []SweepSpec, level int, energy, tau float64) ViabilityRow {
	row := ViabilityRow{Energy: energy, Marks: make([]Mark, len(specs))}
	for i, spec := range specs {
		s, idx, ok := FindThreshold(curves[i][level], tau, spec.Direction)
		row.Marks[i] = Mark{
			Param:     spec.Param,
			Direction: spec.Direction,
			Sample:    s,
			Index:     idx,
			Found:     ok,
		}
	}
	return row
}
