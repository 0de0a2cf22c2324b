package matrix

// ComplexSystem receives the stamps of a complex linear system.
type ComplexSystem interface {
	AddComplexElement(i, j int, real, imag float64) // 1-based indexing
	AddComplexRHS(i int, real, imag float64)
}
