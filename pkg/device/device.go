package device

import (
	"github.com/edp1096/toy-tunnel/internal/consts"
)

// Model evaluates a transmission coefficient for one oxide stack snapshot.
type Model interface {
	GetName() string
	GetType() string
	Transmission(s Stack) (float64, error)
}

type BaseModel struct {
	Name  string
	Const consts.Physical
}

func (m *BaseModel) GetName() string {
	return m.Name
}

func NewBaseModel(name string, c consts.Physical) *BaseModel {
	return &BaseModel{Name: name, Const: c}
}

// SetModelParameters overrides the physical constants by key.
// Unknown keys are ignored, like the device model cards.
func (m *BaseModel) SetModelParameters(params map[string]float64) {
	// m0 (electron rest mass)
	if m0, ok := params["m0"]; ok {
		m.Const.ElectronMass = m0
	}

	// hbar (reduced Planck constant)
	if hbar, ok := params["hbar"]; ok {
		m.Const.ReducedPlanck = hbar
	}

	// q (elementary charge)
	if q, ok := params["q"]; ok {
		m.Const.ElementaryCharge = q
	}
}

// clampCoefficient keeps a coefficient representable on a log axis.
func clampCoefficient(t float64) float64 {
	if !(t >= consts.COEFF_FLOOR) { // also catches NaN
		return consts.COEFF_FLOOR
	}
	if t > 1 {
		return 1
	}
	return t
}
