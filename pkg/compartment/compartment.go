package compartment

import (
	"github.com/edp1096/calcify/pkg/matrix"
)

// Element is one transport path or boundary condition of a compartment
// network. Node index 0 is the zero-concentration reference.
type Element interface {
	GetName() string
	GetType() string
	GetNodeNames() []string
	GetNodes() []int
	Stamp(matrix matrix.Stamper, status *Status) error
	GetValue() float64
	SetValue(value float64)
	SetNodes(nodes []int)
}

// Status is shared by every element during one stamp pass.
type Status struct {
	// Scale divides conductances and fluxes before stamping so the system
	// is well conditioned. Concentrations are unaffected.
	Scale float64
}

func (s *Status) scaled(value float64) float64 {
	if s == nil || s.Scale <= 0 {
		return value
	}
	return value / s.Scale
}

type BaseElement struct {
	Name      string
	Nodes     []int
	Value     float64
	NodeNames []string
}

func (e *BaseElement) GetName() string {
	return e.Name
}

func (e *BaseElement) GetNodes() []int {
	return e.Nodes
}

func (e *BaseElement) GetNodeNames() []string {
	return e.NodeNames
}

func (e *BaseElement) GetValue() float64 {
	return e.Value
}

func (e *BaseElement) SetValue(value float64) {
	e.Value = value
}

func (e *BaseElement) SetNodes(nodes []int) {
	e.Nodes = nodes
}

func newBaseElement(name string, nodeNames []string, value float64) BaseElement {
	return BaseElement{
		Name:      name,
		Nodes:     make([]int, len(nodeNames)),
		NodeNames: nodeNames,
		Value:     value,
	}
}
