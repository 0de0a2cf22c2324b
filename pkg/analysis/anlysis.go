package analysis

import (
	"errors"
	"sync"

	"github.com/edp1096/toy-tunnel/pkg/device"
	"gonum.org/v1/gonum/floats"
)

const SweepKey = "SWEEP"

type Analysis interface {
	Setup(base device.Stack) error
	Execute() error
	GetResults() map[string][]float64
}

type BaseAnalysis struct {
	Base    device.Stack
	results map[string][]float64 // key: variable name, value: result by sweep point
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{results: make(map[string][]float64)}
}

func (a *BaseAnalysis) StoreSweepResult(sweepVal float64, solution map[string]float64) {
	if _, exists := a.results[SweepKey]; !exists {
		a.results[SweepKey] = make([]float64, 0)
	}
	a.results[SweepKey] = append(a.results[SweepKey], sweepVal)

	for name, value := range solution {
		if _, exists := a.results[name]; !exists {
			a.results[name] = make([]float64, 0)
		}
		a.results[name] = append(a.results[name], value)
	}
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// The order follows start -> stop, so a descending axis stays descending.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, stop)
}

// ExecuteAll runs independent analyses concurrently. Analyses share no
// mutable state, so the results equal a sequential run.
func ExecuteAll(analyses ...Analysis) error {
	var wg sync.WaitGroup
	errs := make([]error, len(analyses))

	for i, a := range analyses {
		wg.Add(1)
		go func(i int, a Analysis) {
			defer wg.Done()
			errs[i] = a.Execute()
		}(i, a)
	}
	wg.Wait()

	return errors.Join(errs...)
}
