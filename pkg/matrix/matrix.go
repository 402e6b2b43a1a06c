package matrix

import (
	"fmt"
	"io"

	"github.com/edp1096/sparse"
)

// Stamper is the write side of the system seen by network elements.
type Stamper interface {
	AddElement(i, j int, value float64) // 1-based indexing
	AddRHS(i int, value float64)
}

// NodalMatrix is a real modified-nodal system: node rows first, then one
// branch row per fixed-concentration reservoir.
type NodalMatrix struct {
	Size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
	config   *sparse.Configuration
	stampErr error
}

func New(size int) (*NodalMatrix, error) {
	if size <= 0 {
		return nil, fmt.Errorf("matrix size must be positive, got %d", size)
	}

	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %w", err)
	}

	return &NodalMatrix{
		Size:     size,
		matrix:   mat,
		rhs:      make([]float64, size+1), // 1-based indexing
		solution: make([]float64, size+1),
		config:   config,
	}, nil
}

// SetupElements allocates every entry so later stamps never grow the matrix.
func (m *NodalMatrix) SetupElements() {
	for i := 1; i <= m.Size; i++ {
		for j := 1; j <= m.Size; j++ {
			m.matrix.GetElement(int64(i), int64(j))
		}
	}
}

func (m *NodalMatrix) AddElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		m.recordStampErr(fmt.Errorf("matrix index out of bounds (i=%d, j=%d, size=%d)", i, j, m.Size))
		return
	}
	m.matrix.GetElement(int64(i), int64(j)).Real += value
}

func (m *NodalMatrix) AddRHS(i int, value float64) {
	if i <= 0 || i > m.Size {
		m.recordStampErr(fmt.Errorf("rhs index out of bounds (i=%d, size=%d)", i, m.Size))
		return
	}
	m.rhs[i] += value
}

func (m *NodalMatrix) recordStampErr(err error) {
	if m.stampErr == nil {
		m.stampErr = err
	}
}

func (m *NodalMatrix) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
	}
	m.stampErr = nil
}

func (m *NodalMatrix) Solve() error {
	var err error

	if m.stampErr != nil {
		return m.stampErr
	}

	err = m.matrix.Factor()
	if err != nil {
		return fmt.Errorf("matrix factorization failed: %w", err)
	}

	m.solution, err = m.matrix.Solve(m.rhs)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %w", err)
	}

	return nil
}

func (m *NodalMatrix) RHS() []float64 {
	return m.rhs
}

func (m *NodalMatrix) Solution() []float64 {
	return m.solution
}

// PrintSystem writes the stamped equations, one row per line.
func (m *NodalMatrix) PrintSystem(w io.Writer) {
	fmt.Fprintf(w, "Transport equations (%dx%d):\n", m.Size, m.Size)
	fmt.Fprintln(w, "Node balances 1..n, followed by reservoir equations")

	for i := 1; i <= m.Size; i++ {
		fmt.Fprintf(w, "Equation %d:", i)
		for j := 1; j <= m.Size; j++ {
			element := m.matrix.GetElement(int64(i), int64(j))
			if element.Real != 0 {
				fmt.Fprintf(w, "  %+g*x%d", element.Real, j)
			}
		}
		fmt.Fprintf(w, " = %g\n", m.rhs[i])
	}
}

func (m *NodalMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
	}
}
