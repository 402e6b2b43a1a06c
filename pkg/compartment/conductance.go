package compartment

import (
	"fmt"

	"github.com/edp1096/calcify/pkg/matrix"
)

// Conductance moves ions between two nodes at rate Value*(c1-c2), in m^3/s.
// Diffusive supply and membrane permeability are both conductances.
type Conductance struct {
	BaseElement
}

func NewConductance(name string, nodeNames []string, value float64) *Conductance {
	return &Conductance{BaseElement: newBaseElement(name, nodeNames, value)}
}

func (g *Conductance) GetType() string { return "G" }

func (g *Conductance) Stamp(matrix matrix.Stamper, status *Status) error {
	if len(g.Nodes) != 2 {
		return fmt.Errorf("conductance %s: requires exactly 2 nodes", g.Name)
	}
	if g.Value < 0 {
		return fmt.Errorf("conductance %s: negative value %g", g.Name, g.Value)
	}

	n1, n2 := g.Nodes[0], g.Nodes[1]
	v := status.scaled(g.Value)

	if n1 != 0 {
		matrix.AddElement(n1, n1, v)
		if n2 != 0 {
			matrix.AddElement(n1, n2, -v)
		}
	}
	if n2 != 0 {
		if n1 != 0 {
			matrix.AddElement(n2, n1, -v)
		}
		matrix.AddElement(n2, n2, v)
	}

	return nil
}

// Flow is the flux from the first to the second node for the given
// node concentrations.
func (g *Conductance) Flow(c1, c2 float64) float64 {
	return g.Value * (c1 - c2)
}
