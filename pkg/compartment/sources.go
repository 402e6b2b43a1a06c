package compartment

import (
	"fmt"

	"github.com/edp1096/calcify/pkg/matrix"
)

// Reservoir pins the concentration difference between its nodes to Value
// (mol/m^3). It adds one branch unknown: the flux it exchanges.
type Reservoir struct {
	BaseElement
	branchIdx int
}

func NewReservoir(name string, nodeNames []string, concentration float64) *Reservoir {
	return &Reservoir{BaseElement: newBaseElement(name, nodeNames, concentration)}
}

func (r *Reservoir) GetType() string { return "C" }

func (r *Reservoir) SetBranchIndex(idx int) { r.branchIdx = idx }

func (r *Reservoir) BranchIndex() int { return r.branchIdx }

func (r *Reservoir) Stamp(matrix matrix.Stamper, status *Status) error {
	if len(r.Nodes) != 2 {
		return fmt.Errorf("reservoir %s: requires exactly 2 nodes", r.Name)
	}
	if r.branchIdx <= 0 {
		return fmt.Errorf("reservoir %s: branch index not assigned", r.Name)
	}

	n1, n2 := r.Nodes[0], r.Nodes[1]
	bIdx := r.branchIdx

	// c1 - c2 = C
	if n1 != 0 {
		matrix.AddElement(bIdx, n1, 1)
		matrix.AddElement(n1, bIdx, 1)
	}
	if n2 != 0 {
		matrix.AddElement(bIdx, n2, -1)
		matrix.AddElement(n2, bIdx, -1)
	}

	matrix.AddRHS(bIdx, r.Value)
	return nil
}

// Flux injects Value (mol/s) into the first node and withdraws it from the
// second. A calcification sink is a Flux from the reference node.
type Flux struct {
	BaseElement
}

func NewFlux(name string, nodeNames []string, value float64) *Flux {
	return &Flux{BaseElement: newBaseElement(name, nodeNames, value)}
}

func (f *Flux) GetType() string { return "J" }

func (f *Flux) Stamp(matrix matrix.Stamper, status *Status) error {
	if len(f.Nodes) != 2 {
		return fmt.Errorf("flux %s: requires exactly 2 nodes", f.Name)
	}

	n1, n2 := f.Nodes[0], f.Nodes[1]
	v := status.scaled(f.Value)

	if n1 != 0 {
		matrix.AddRHS(n1, v)
	}
	if n2 != 0 {
		matrix.AddRHS(n2, -v)
	}

	return nil
}
