package analysis

import (
	"fmt"

	"github.com/edp1096/calcify/pkg/network"
)

// OperatingPoint solves the network once at its current element values.
type OperatingPoint struct{ BaseAnalysis }

func NewOperatingPoint() *OperatingPoint {
	return &OperatingPoint{
		BaseAnalysis: *NewBaseAnalysis(),
	}
}

func (op *OperatingPoint) Setup(net *network.Network) error {
	if net == nil {
		return fmt.Errorf("network not set")
	}
	op.Network = net
	return nil
}

func (op *OperatingPoint) Execute() error {
	if op.Network == nil {
		return fmt.Errorf("network not set")
	}

	if err := op.Network.Solve(); err != nil {
		return fmt.Errorf("operating point: %w", err)
	}

	op.results = make(map[string][]float64)
	op.StoreResult("", 0, op.Network.GetSolution())
	return nil
}
