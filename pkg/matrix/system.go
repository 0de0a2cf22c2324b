package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// SystemMatrix is a complex sparse system A x = b with separated real and
// imaginary right-hand side and solution vectors.
type SystemMatrix struct {
	Size         int
	matrix       *sparse.Matrix
	rhs          []float64
	rhsImag      []float64
	solution     []float64
	solutionImag []float64
	config       *sparse.Configuration
}

func NewMatrix(size int) (*SystemMatrix, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid matrix size: %d", size)
	}

	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: true,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           false,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	vectorSize := size + 1 // 1-based indexing
	return &SystemMatrix{
		Size:         size,
		matrix:       mat,
		rhs:          make([]float64, vectorSize),
		rhsImag:      make([]float64, vectorSize),
		solution:     make([]float64, vectorSize),
		solutionImag: make([]float64, vectorSize),
		config:       config,
	}, nil
}

func (m *SystemMatrix) AddComplexElement(i, j int, real, imag float64) {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		fmt.Printf("Warning: Matrix index out of bounds (i=%d, j=%d, size=%d)\n", i, j, m.Size)
		return
	}

	element := m.matrix.GetElement(int64(i), int64(j))
	element.Real += real
	element.Imag += imag
}

func (m *SystemMatrix) AddComplexRHS(i int, real, imag float64) {
	if i <= 0 || i > m.Size {
		fmt.Printf("Warning: RHS index out of bounds (i=%d, size=%d)\n", i, m.Size)
		return
	}

	m.rhs[i] += real
	m.rhsImag[i] += imag
}

func (m *SystemMatrix) Solve() error {
	err := m.matrix.Factor()
	if err != nil {
		return fmt.Errorf("matrix factorization failed: %v", err)
	}

	m.solution, m.solutionImag, err = m.matrix.SolveComplex(m.rhs, m.rhsImag)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}

	return nil
}

func (m *SystemMatrix) GetComplexSolution(i int) complex128 {
	if i <= 0 || i > m.Size || i >= len(m.solution) {
		return 0
	}
	return complex(m.solution[i], m.solutionImag[i])
}

func (m *SystemMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
	}
}
