package device

import (
	"math"

	"github.com/edp1096/toy-tunnel/internal/consts"
)

// Fowler is the single-barrier WKB coefficient for a triangular oxide barrier
// under the field set by a capacitive divider.
type Fowler struct {
	BaseModel
	AbsBias bool // Use |V| instead of the signed gate voltage
}

// NewErase returns the erase regime model. Erase bias is negative, so the
// magnitude is dropped across the tunnel oxide.
func NewErase() *Fowler {
	return &Fowler{
		BaseModel: *NewBaseModel("erase", consts.Script),
		AbsBias:   true,
	}
}

// NewProgram returns the program regime model, which uses the signed bias.
func NewProgram() *Fowler {
	return &Fowler{
		BaseModel: *NewBaseModel("program", consts.Script),
		AbsBias:   false,
	}
}

func (f *Fowler) GetType() string { return "WKB" }

// TunnelVoltage is the share of the gate voltage across the tunnel oxide (V).
func (f *Fowler) TunnelVoltage(s Stack) float64 {
	v := s.Voltage
	if f.AbsBias {
		v = math.Abs(v)
	}
	cCtl := s.ControlCap * 1e-15
	cTun := s.TunnelCap * 1e-15
	return v * (cCtl / (cCtl + cTun))
}

// Field is the tunnel oxide field (V/m).
func (f *Fowler) Field(s Stack) float64 {
	return f.TunnelVoltage(s) / (s.TunnelOxide * 1e-9)
}

func (f *Fowler) Transmission(s Stack) (float64, error) {
	q := f.Const.ElementaryCharge
	mStar := s.MassRatio * f.Const.ElectronMass

	delta := math.Max(s.BarrierHeight*q-s.ElectronEnergy*q, consts.DELTA_FLOOR) // V0-E
	numerator := 4 * math.Sqrt(2*mStar) * math.Pow(delta, 1.5)
	denominator := 3 * f.Const.ReducedPlanck * q * f.Field(s)

	return clampCoefficient(math.Exp(-numerator / denominator)), nil
}
