package matrix

import (
	"math/cmplx"
	"testing"
)

func TestSolveComplex(t *testing.T) {
	// A = [[1+2i, 2+3i],
	//      [3+4i, 4+5i]]
	// b = [6+7i, 12+13i]
	// x = [1+i, 2-i]
	m, err := NewMatrix(2)
	if err != nil {
		t.Fatalf("NewMatrix failed: %v", err)
	}
	defer m.Destroy()

	m.AddComplexElement(1, 1, 1, 2)
	m.AddComplexElement(1, 2, 2, 3)
	m.AddComplexElement(2, 1, 3, 4)
	m.AddComplexElement(2, 2, 4, 5)
	m.AddComplexRHS(1, 6, 7)
	m.AddComplexRHS(2, 12, 13)

	if err := m.Solve(); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	expected := []complex128{1 + 1i, 2 - 1i}
	for i, want := range expected {
		if got := m.GetComplexSolution(i + 1); cmplx.Abs(got-want) > 1e-9 {
			t.Errorf("x[%d] = %v, expected %v", i+1, got, want)
		}
	}

	if got := m.GetComplexSolution(3); got != 0 {
		t.Errorf("out of range solution = %v, expected 0", got)
	}
}

func TestNewMatrixInvalidSize(t *testing.T) {
	if _, err := NewMatrix(0); err == nil {
		t.Error("expected error for zero size")
	}
}
