package device

import (
	"math"
	"math/cmplx"

	"github.com/edp1096/toy-tunnel/internal/consts"
)

// Resonant is the double-barrier transmission model used for retention:
// control oxide barrier, floating gate well, tunnel oxide barrier.
type Resonant struct {
	BaseModel
}

func NewRetention() *Resonant {
	return &Resonant{BaseModel: *NewBaseModel("retention", consts.CODATA2018)}
}

func (r *Resonant) GetType() string { return "RESONANT" }

// wavenumber returns sqrt(2 m* E) / hbar for a kinetic energy in eV.
func (r *Resonant) wavenumber(s Stack, energy float64) float64 {
	mEff := s.MassRatio * r.Const.ElectronMass
	return math.Sqrt(2*mEff*energy*r.Const.ElementaryCharge) / r.Const.ReducedPlanck
}

// TunnelingFactor is exp(-2 k d) for a barrier of the given thickness (nm)
// and height (eV). The electron energy must lie below the barrier.
func (r *Resonant) TunnelingFactor(s Stack, thickness, barrier float64) (float64, error) {
	if !(barrier > s.ElectronEnergy) {
		return 0, &DomainError{Op: "tunneling factor", Energy: s.ElectronEnergy, Edge: barrier}
	}
	k := r.wavenumber(s, barrier-s.ElectronEnergy)
	return math.Exp(-2 * k * thickness * 1e-9), nil
}

// PhaseAccumulation is the phase picked up crossing the floating gate well.
func (r *Resonant) PhaseAccumulation(s Stack) (float64, error) {
	if s.ElectronEnergy < 0 {
		return 0, &DomainError{Op: "phase", Energy: s.ElectronEnergy, Edge: 0}
	}
	return r.wavenumber(s, s.ElectronEnergy) * s.FloatingGate * 1e-9, nil
}

// ResonantDenominator combines the tunnel (t3) and control (t1) barrier
// factors with the well phase t2. Its reciprocal's squared magnitude is the
// transmission coefficient.
func ResonantDenominator(t3, t1, t2 float64) complex128 {
	return denominator(t3, t1, t2, false)
}

func denominator(t3, t1, t2 float64, forceLog bool) complex128 {
	t1 = math.Max(t1, consts.FACTOR_FLOOR)
	t3 = math.Max(t3, consts.FACTOR_FLOOR)

	invT1 := 1 / t1
	term1 := complex(invT1-t1/4, 0) * cmplx.Exp(complex(0, t2))
	term2 := complex(t1/4+invT1, 0) * cmplx.Exp(complex(0, -t2))

	part1 := complex(t3/4, 0) * (term2 - term1)
	part2 := (term1 + term2) / complex(t3, 0)

	if forceLog || cmplx.Abs(part2) > consts.OVERFLOW_LIMIT {
		logPart2 := complex(math.Log(cmplx.Abs(part2)), cmplx.Phase(part2))
		part2 = cmplx.Exp(logPart2)
	}

	return part1 + part2
}

func (r *Resonant) Transmission(s Stack) (float64, error) {
	t3, err := r.TunnelingFactor(s, s.TunnelOxide, s.BarrierHeight)
	if err != nil {
		return 0, err
	}
	t1, err := r.TunnelingFactor(s, s.ControlOxide, s.BarrierHeight)
	if err != nil {
		return 0, err
	}
	t2, err := r.PhaseAccumulation(s)
	if err != nil {
		return 0, err
	}

	mag := cmplx.Abs(1 / ResonantDenominator(t3, t1, t2))
	return clampCoefficient(mag * mag), nil
}
