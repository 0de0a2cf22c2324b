package analysis

import (
	"fmt"
)

// Direction selects which crossing of the viability threshold is reported.
type Direction int

const (
	FirstAbove Direction = iota // first sample above the threshold, in sample order
	LastAbove                   // last sample above the threshold, in sample order
)

func (d Direction) String() string {
	if d == LastAbove {
		return "last"
	}
	return "first"
}

func ParseDirection(name string) (Direction, error) {
	switch name {
	case "first":
		return FirstAbove, nil
	case "last":
		return LastAbove, nil
	}
	return FirstAbove, fmt.Errorf("unknown threshold direction: %s", name)
}

// FindThreshold scans r for samples whose coefficient is strictly above tau.
// ok is false when no sample qualifies; that is a valid outcome meaning the
// regime is not viable over the swept range.
func FindThreshold(r Result, tau float64, dir Direction) (s Sample, idx int, ok bool) {
	if dir == LastAbove {
		for i := len(r.Samples) - 1; i >= 0; i-- {
			if r.Samples[i].Coefficient > tau {
				return r.Samples[i], i, true
			}
		}
	} else {
		for i, sample := range r.Samples {
			if sample.Coefficient > tau {
				return sample, i, true
			}
		}
	}

	return Sample{}, -1, false
}
