package consts

const (
	CHARGE        = 1.60217662e-19 // Elementary charge (C)
	ELECTRON_MASS = 9.1093837e-31  // Electron rest mass (kg)
	HBAR          = 1.0545718e-34  // Reduced Planck constant (J·s)
)

const (
	COEFF_FLOOR    = 1e-300 // Smallest transmission coefficient ever returned
	FACTOR_FLOOR   = 1e-100 // Barrier factors are kept above this before inversion
	DELTA_FLOOR    = 1e-20  // Minimum barrier energy deficit (J)
	OVERFLOW_LIMIT = 1e100  // |part2| above this is rebuilt in the log domain
)

// Physical is a set of fundamental constants a model evaluates against.
type Physical struct {
	ElectronMass     float64 // kg
	ReducedPlanck    float64 // J·s
	ElementaryCharge float64 // C
}

var (
	// Script is the rounded set used by the erase and program analyses.
	Script = Physical{
		ElectronMass:     ELECTRON_MASS,
		ReducedPlanck:    HBAR,
		ElementaryCharge: CHARGE,
	}

	// CODATA2018 is the exact set used by the retention analysis.
	CODATA2018 = Physical{
		ElectronMass:     9.1093837015e-31,
		ReducedPlanck:    1.054571817e-34,
		ElementaryCharge: 1.602176634e-19,
	}
)
