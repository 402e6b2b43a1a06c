package energetics

import (
	"math"

	"github.com/edp1096/calcify/pkg/params"
)

// SeriesName selects one curve of a Series.
type SeriesName string

const (
	SeriesConcentration SeriesName = "concentration"
	SeriesTotal         SeriesName = "combined"
	SeriesVesicle       SeriesName = "vesicle"
	SeriesMembrane      SeriesName = "membrane"
)

// Sample is one (fraction, value) pair of a curve.
type Sample struct {
	Fraction float64 `json:"fraction"`
	Value    float64 `json:"value"`
}

// Series holds the swept dataset; all slices share the Fraction index.
type Series struct {
	Fraction      []float64 `json:"fraction"`
	Concentration []float64 `json:"concentration"`
	Total         []float64 `json:"combined"`
	Vesicle       []float64 `json:"vesicle"`
	Membrane      []float64 `json:"membrane"`
}

// Sweep evaluates steps evenly spaced split fractions k/steps, k=0..steps-1.
// f_V = 1 is excluded.
func Sweep(c params.Constants, pCa float64, steps int) (Series, error) {
	if steps <= 0 {
		return Series{}, &Error{Kind: ErrInvalidSweepRange, Quantity: "steps", Value: float64(steps)}
	}
	if _, err := checkConstants(c); err != nil {
		return Series{}, err
	}
	if !(pCa > 0) || math.IsInf(pCa, 0) {
		return Series{}, &Error{Kind: ErrDegenerateGradient, Quantity: "PCa", Value: pCa}
	}

	s := Series{
		Fraction:      make([]float64, steps),
		Concentration: make([]float64, steps),
		Total:         make([]float64, steps),
		Vesicle:       make([]float64, steps),
		Membrane:      make([]float64, steps),
	}

	for k := range steps {
		fv := float64(k) / float64(steps)
		ca0 := SteadyStateConcentration(fv, c, pCa)
		e := EnergyCost(fv, ca0, pCa, c.CaIn, c.ATPPerCa)

		s.Fraction[k] = fv
		s.Concentration[k] = ca0
		s.Total[k] = e.Total
		s.Vesicle[k] = e.Vesicle
		s.Membrane[k] = e.Membrane
	}

	return s, nil
}

func (s Series) Len() int { return len(s.Fraction) }

// Values returns the raw slice behind a curve, or nil for an unknown name.
func (s Series) Values(name SeriesName) []float64 {
	switch name {
	case SeriesConcentration:
		return s.Concentration
	case SeriesTotal:
		return s.Total
	case SeriesVesicle:
		return s.Vesicle
	case SeriesMembrane:
		return s.Membrane
	}
	return nil
}

// Points pairs a curve with the fraction axis.
func (s Series) Points(name SeriesName) []Sample {
	values := s.Values(name)
	if values == nil {
		return nil
	}

	points := make([]Sample, len(values))
	for i, v := range values {
		points[i] = Sample{Fraction: s.Fraction[i], Value: v}
	}
	return points
}

// Nearest returns the index of the grid point closest to fv, or -1 for an
// empty series.
func (s Series) Nearest(fv float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, f := range s.Fraction {
		if d := math.Abs(f - fv); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
