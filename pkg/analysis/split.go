package analysis

import (
	"fmt"

	"github.com/edp1096/calcify/pkg/compartment"
	"github.com/edp1096/calcify/pkg/network"
)

const FractionKey = "FV"

// SplitSweep steps the membrane conductance through PCa*f_V for each
// fraction and solves the network at every step.
type SplitSweep struct {
	BaseAnalysis
	elementName  string    // Conductance carrying the split route
	permeability float64   // PCa
	fractions    []float64 // f_V values, in order
	origVal      float64
}

func NewSplitSweep(permeability float64, fractions []float64) (*SplitSweep, error) {
	if !(permeability > 0) {
		return nil, fmt.Errorf("permeability must be positive, got %g", permeability)
	}
	if len(fractions) == 0 {
		return nil, fmt.Errorf("no split fractions to sweep")
	}
	for _, f := range fractions {
		if !(f >= 0 && f <= 1) {
			return nil, fmt.Errorf("split fraction %g outside [0,1]", f)
		}
	}

	return &SplitSweep{
		BaseAnalysis: *NewBaseAnalysis(),
		elementName:  network.Membrane,
		permeability: permeability,
		fractions:    fractions,
	}, nil
}

// LinearFractions returns k/steps for k=0..steps-1.
func LinearFractions(steps int) []float64 {
	if steps <= 0 {
		return nil
	}
	fractions := make([]float64, steps)
	for k := range steps {
		fractions[k] = float64(k) / float64(steps)
	}
	return fractions
}

func (s *SplitSweep) Setup(net *network.Network) error {
	if net == nil {
		return fmt.Errorf("network not set")
	}

	el, ok := net.Element(s.elementName)
	if !ok {
		return fmt.Errorf("conductance %s not found", s.elementName)
	}
	if _, ok := el.(*compartment.Conductance); !ok {
		return fmt.Errorf("element %s is not a conductance", s.elementName)
	}

	s.Network = net
	s.origVal = el.GetValue()
	return nil
}

func (s *SplitSweep) Execute() error {
	if s.Network == nil {
		return fmt.Errorf("network not set")
	}

	s.results = make(map[string][]float64)
	defer s.Network.SetValue(s.elementName, s.origVal)

	for _, f := range s.fractions {
		if err := s.Network.SetValue(s.elementName, s.permeability*f); err != nil {
			return err
		}
		if err := s.Network.Solve(); err != nil {
			return fmt.Errorf("solve error at f_V=%g: %w", f, err)
		}
		s.StoreResult(FractionKey, f, s.Network.GetSolution())
	}

	return nil
}
