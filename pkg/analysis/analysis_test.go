package analysis

import (
	"math"
	"testing"

	"github.com/edp1096/calcify/pkg/energetics"
	"github.com/edp1096/calcify/pkg/network"
	"github.com/edp1096/calcify/pkg/params"
)

func approxRel(a, b, tol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tol*math.Max(math.Abs(a), math.Abs(b))
}

func TestOperatingPointBoundary(t *testing.T) {
	c := params.Default()
	m, err := energetics.New(c)
	if err != nil {
		t.Fatal(err)
	}

	net, err := network.Boundary(c)
	if err != nil {
		t.Fatal(err)
	}
	defer net.Destroy()

	op := NewOperatingPoint()
	if err := op.Setup(net); err != nil {
		t.Fatal(err)
	}
	if err := op.Execute(); err != nil {
		t.Fatal(err)
	}

	res := op.GetResults()
	surface := res["C("+network.NodeSurface+")"]
	if len(surface) != 1 {
		t.Fatalf("got %d surface samples, want 1", len(surface))
	}
	if want := m.Derived().Boundary.Concentration; !approxRel(surface[0], want, 1e-9) {
		t.Errorf("surface = %g, want %g", surface[0], want)
	}
}

func TestSplitSweepMatchesClosedForm(t *testing.T) {
	c := params.Default()
	m, err := energetics.New(c)
	if err != nil {
		t.Fatal(err)
	}
	series, err := m.Sweep(20)
	if err != nil {
		t.Fatal(err)
	}

	pCa := m.Derived().Permeability
	net, err := network.Uptake(c, pCa, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer net.Destroy()

	sweep, err := NewSplitSweep(pCa, LinearFractions(20))
	if err != nil {
		t.Fatal(err)
	}
	if err := sweep.Setup(net); err != nil {
		t.Fatal(err)
	}
	if err := sweep.Execute(); err != nil {
		t.Fatal(err)
	}

	res := sweep.GetResults()
	fv := res[FractionKey]
	surface := res["C("+network.NodeSurface+")"]
	if len(fv) != series.Len() || len(surface) != series.Len() {
		t.Fatalf("lengths: fv=%d surface=%d, want %d", len(fv), len(surface), series.Len())
	}
	for i := range fv {
		if fv[i] != series.Fraction[i] {
			t.Errorf("fraction[%d] = %g, want %g", i, fv[i], series.Fraction[i])
		}
		if !approxRel(surface[i], series.Concentration[i], 1e-9) {
			t.Errorf("f=%g: network %g, closed form %g", fv[i], surface[i], series.Concentration[i])
		}
	}

	// The membrane conductance is restored after the sweep.
	el, _ := net.Element(network.Membrane)
	if el.GetValue() != 0 {
		t.Errorf("membrane conductance = %g after sweep, want 0", el.GetValue())
	}
}

func TestSplitSweepRejects(t *testing.T) {
	if _, err := NewSplitSweep(0, []float64{0.1}); err == nil {
		t.Error("expected error for zero permeability")
	}
	if _, err := NewSplitSweep(1, nil); err == nil {
		t.Error("expected error for empty fractions")
	}
	if _, err := NewSplitSweep(1, []float64{1.2}); err == nil {
		t.Error("expected error for fraction above 1")
	}

	net, err := network.Boundary(params.Default())
	if err != nil {
		t.Fatal(err)
	}
	defer net.Destroy()

	s, err := NewSplitSweep(1, []float64{0.5})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Setup(net); err == nil {
		t.Error("expected error: boundary network has no membrane")
	}
	if err := s.Execute(); err == nil {
		t.Error("expected error: network not set")
	}
}

func TestLinearFractions(t *testing.T) {
	f := LinearFractions(4)
	want := []float64{0, 0.25, 0.5, 0.75}
	for i := range want {
		if f[i] != want[i] {
			t.Errorf("f[%d] = %g, want %g", i, f[i], want[i])
		}
	}
	if LinearFractions(0) != nil {
		t.Error("zero steps should give nil")
	}
}
