package analysis

import (
	"fmt"

	"github.com/edp1096/toy-tunnel/pkg/device"
)

type Sample struct {
	Value       float64 // Swept parameter value
	Coefficient float64 // Transmission coefficient, never below 1e-300
}

// Result is one completed sweep in sample order.
type Result struct {
	Model   string
	Param   device.Param
	Base    device.Stack
	Samples []Sample
}

func (r Result) Values() []float64 {
	values := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		values[i] = s.Value
	}
	return values
}

func (r Result) Coefficients() []float64 {
	coeffs := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		coeffs[i] = s.Coefficient
	}
	return coeffs
}

// Sweep evaluates a model once per value of a single parameter, holding the
// rest of the base stack fixed. Every sample gets its own stack snapshot.
// A domain error at any sample aborts the sweep.
type Sweep struct {
	BaseAnalysis
	model   device.Model
	param   device.Param
	values  []float64
	samples []Sample
	ready   bool
}

func NewSweep(model device.Model, param device.Param, values []float64) *Sweep {
	if model == nil {
		panic("sweep: nil model")
	}

	return &Sweep{
		BaseAnalysis: *NewBaseAnalysis(),
		model:        model,
		param:        param,
		values:       values,
	}
}

func (sw *Sweep) Setup(base device.Stack) error {
	if _, err := device.ParseParam(string(sw.param)); err != nil {
		return err
	}
	if err := base.Validate(); err != nil {
		return fmt.Errorf("base stack: %w", err)
	}

	sw.Base = base
	sw.ready = true
	return nil
}

func (sw *Sweep) Execute() error {
	if !sw.ready {
		return fmt.Errorf("sweep %s: base stack not set", sw.param)
	}

	sw.results = make(map[string][]float64)
	sw.samples = make([]Sample, 0, len(sw.values))
	key := sw.CoefficientKey()

	for _, val := range sw.values {
		snapshot, err := sw.Base.With(sw.param, val)
		if err != nil {
			return err
		}
		if err := snapshot.Validate(); err != nil {
			return fmt.Errorf("invalid stack at %s=%g: %w", sw.param, val, err)
		}

		t, err := sw.model.Transmission(snapshot)
		if err != nil {
			return fmt.Errorf("%s sweep aborted at %s=%g: %w", sw.model.GetName(), sw.param, val, err)
		}

		sw.samples = append(sw.samples, Sample{Value: val, Coefficient: t})
		sw.StoreSweepResult(val, map[string]float64{key: t})
	}

	return nil
}

// CoefficientKey names the coefficient column in GetResults.
func (sw *Sweep) CoefficientKey() string {
	return fmt.Sprintf("T(%s)", sw.model.GetName())
}

func (sw *Sweep) Result() Result {
	samples := make([]Sample, len(sw.samples))
	copy(samples, sw.samples)

	return Result{
		Model:   sw.model.GetName(),
		Param:   sw.param,
		Base:    sw.Base,
		Samples: samples,
	}
}
