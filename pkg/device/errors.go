package device

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every DomainError.
var ErrDomain = errors.New("device: energy outside model domain")

// DomainError reports an evaluation whose wavenumber would be imaginary.
type DomainError struct {
	Op     string  // operation that detected the violation
	Energy float64 // electron energy (eV)
	Edge   float64 // band edge the energy was checked against (eV)
}

func (e *DomainError) Error() string {
	if e.Op == "phase" {
		return fmt.Sprintf("device: %s: electron energy %g eV is below the well bottom %g eV", e.Op, e.Energy, e.Edge)
	}
	return fmt.Sprintf("device: %s: electron energy %g eV is not below barrier %g eV", e.Op, e.Energy, e.Edge)
}

func (e *DomainError) Unwrap() error { return ErrDomain }
