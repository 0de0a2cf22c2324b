package solver

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/edp1096/toy-tunnel/internal/consts"
	"github.com/edp1096/toy-tunnel/pkg/device"
	"github.com/edp1096/toy-tunnel/pkg/matrix"
)

type Layer struct {
	Thickness float64 // nm
	Potential float64 // Conduction band edge (eV)
}

// Profile is a piecewise-constant potential between two semi-infinite leads.
type Profile struct {
	Left   float64 // Left lead band edge (eV)
	Right  float64 // Right lead band edge (eV)
	Layers []Layer
}

// ProfileFromStack lays out the flat-band retention stack:
// gate | control oxide | floating gate | tunnel oxide | substrate.
// lead is the thickness of lead material kept on each side (nm).
func ProfileFromStack(s device.Stack, lead float64) Profile {
	return Profile{
		Layers: []Layer{
			{Thickness: lead, Potential: 0},
			{Thickness: s.ControlOxide, Potential: s.BarrierHeight},
			{Thickness: s.FloatingGate, Potential: 0},
			{Thickness: s.TunnelOxide, Potential: s.BarrierHeight},
			{Thickness: lead, Potential: 0},
		},
	}
}

// Grid is the discretized profile: one potential per site, leads excluded.
func (p Profile) Grid(dx float64) []float64 {
	var sites []float64
	for _, l := range p.Layers {
		n := int(math.Round(l.Thickness / dx))
		for range n {
			sites = append(sites, l.Potential)
		}
	}
	return sites
}

// Transmission solves the one-band Schrodinger equation on a uniform grid
// with transmitting boundaries and returns the flux transmission at the
// given electron energy (eV). dx is the grid step (nm).
func Transmission(p Profile, energy, massRatio, dx float64) (float64, error) {
	if !(dx > 0) || !(massRatio > 0) {
		return 0, fmt.Errorf("grid step and mass ratio must be positive (dx=%g, m*=%g)", dx, massRatio)
	}
	if !(energy > p.Left) || !(energy > p.Right) {
		return 0, fmt.Errorf("energy %g eV must lie above both lead edges (%g, %g eV)", energy, p.Left, p.Right)
	}

	c := consts.CODATA2018
	a := dx * 1e-9
	hop := c.ReducedPlanck * c.ReducedPlanck / (2 * massRatio * c.ElectronMass * a * a) / c.ElementaryCharge // eV

	kaL, err := leadPhase(energy-p.Left, hop)
	if err != nil {
		return 0, err
	}
	kaR, err := leadPhase(energy-p.Right, hop)
	if err != nil {
		return 0, err
	}

	// one lead site on each side carries the boundary condition
	sites := append([]float64{p.Left}, p.Grid(dx)...)
	sites = append(sites, p.Right)
	n := len(sites)

	mat, err := matrix.NewMatrix(n)
	if err != nil {
		return 0, err
	}
	defer mat.Destroy()

	stamp(mat, sites, energy, hop, kaL, kaR)

	if err := mat.Solve(); err != nil {
		return 0, fmt.Errorf("open boundary system: %w", err)
	}

	psi := cmplx.Abs(mat.GetComplexSolution(n))
	return psi * psi * math.Sin(kaR) / math.Sin(kaL), nil
}

// leadPhase returns k*dx for a propagating lead state with the given kinetic energy.
func leadPhase(kinetic, hop float64) (float64, error) {
	c := 1 - kinetic/(2*hop)
	if c < -1 {
		return 0, fmt.Errorf("kinetic energy %g eV above the grid band (%g eV); refine the grid", kinetic, 4*hop)
	}
	return math.Acos(c), nil
}

// stamp assembles the tridiagonal system with an incident wave of unit
// amplitude from the left lead.
func stamp(mat matrix.ComplexSystem, sites []float64, energy, hop, kaL, kaR float64) {
	n := len(sites)
	for i, u := range sites {
		row := i + 1
		mat.AddComplexElement(row, row, 2*hop+u-energy, 0)
		if row > 1 {
			mat.AddComplexElement(row, row-1, -hop, 0)
		}
		if row < n {
			mat.AddComplexElement(row, row+1, -hop, 0)
		}
	}

	// self-energies of the semi-infinite leads
	mat.AddComplexElement(1, 1, -hop*math.Cos(kaL), -hop*math.Sin(kaL))
	mat.AddComplexElement(n, n, -hop*math.Cos(kaR), -hop*math.Sin(kaR))

	mat.AddComplexRHS(1, 0, -2*hop*math.Sin(kaL))
}
