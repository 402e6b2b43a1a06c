package matrix

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestSolveTwoNodeSystem(t *testing.T) {
	m, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Destroy()
	m.SetupElements()

	// 2x1 - x2 = 1, -x1 + 2x2 = 0
	m.AddElement(1, 1, 2)
	m.AddElement(1, 2, -1)
	m.AddElement(2, 1, -1)
	m.AddElement(2, 2, 2)
	m.AddRHS(1, 1)

	rhs := m.RHS()
	if len(rhs) != 3 || rhs[1] != 1 || rhs[2] != 0 {
		t.Errorf("rhs = %v, want [_ 1 0]", rhs)
	}

	if err := m.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	sol := m.Solution()
	if math.Abs(sol[1]-2.0/3) > 1e-12 || math.Abs(sol[2]-1.0/3) > 1e-12 {
		t.Errorf("solution = %v, want [_ 2/3 1/3]", sol)
	}

	m.Clear()
	for i, v := range m.RHS() {
		if v != 0 {
			t.Errorf("rhs[%d] = %g after Clear", i, v)
		}
	}
}

func TestStampOutOfBounds(t *testing.T) {
	m, err := New(1)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Destroy()

	m.AddElement(1, 1, 1)
	m.AddRHS(2, 1)
	if err := m.Solve(); err == nil || !strings.Contains(err.Error(), "out of bounds") {
		t.Errorf("err = %v, want out of bounds", err)
	}

	m.Clear()
	m.AddElement(1, 1, 1)
	m.AddRHS(1, 3)
	if err := m.Solve(); err != nil {
		t.Fatalf("Solve after Clear: %v", err)
	}
	if math.Abs(m.Solution()[1]-3) > 1e-12 {
		t.Errorf("x1 = %g, want 3", m.Solution()[1])
	}
}

func TestNewRejectsEmpty(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Error("expected error for zero size")
	}
}

func TestPrintSystemShowsRHS(t *testing.T) {
	m, err := New(1)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Destroy()
	m.AddElement(1, 1, 4)
	m.AddRHS(1, 8)

	var buf bytes.Buffer
	m.PrintSystem(&buf)
	if !strings.Contains(buf.String(), "Equation 1:  +4*x1 = 8") {
		t.Errorf("system = %q", buf.String())
	}
}
