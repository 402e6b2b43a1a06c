// Package energetics computes the steady-state Ca2+ balance of a calcifying
// cell and the ATP cost of splitting uptake between a vesicle route and the
// plasma membrane.
package energetics

import (
	"math"

	"github.com/edp1096/calcify/internal/consts"
	"github.com/edp1096/calcify/pkg/params"
)

// Boundary is the diffusion-limited surface concentration.
type Boundary struct {
	Concentration float64 `json:"concentration"` // Ca_bd (mol/m^3)
	Depletion     float64 `json:"depletion"`     // fCa, percent of Ca_out lost across the boundary layer
}

// Capacity describes the channel population.
type Capacity struct {
	MaxFlux      float64 `json:"max_flux"`      // F_Ca (mol/s)
	UsedFraction float64 `json:"used_fraction"` // fV = Q_Ca / F_Ca
}

// Energy is a transport cost in pmol ATP per day.
type Energy struct {
	Total    float64 `json:"combined"`
	Vesicle  float64 `json:"vesicle"`
	Membrane float64 `json:"membrane"`
}

// BoundaryConcentration returns the surface concentration sustained by
// steady radial diffusion delivering exactly the calcification flux.
func BoundaryConcentration(c params.Constants) (Boundary, error) {
	caBd := c.CaOut - c.CalcificationFlux/c.DiffusiveConductance()
	if caBd < 0 || math.IsNaN(caBd) {
		return Boundary{}, &Error{Kind: ErrNegativeBoundaryConcentration, Quantity: "Ca_bd", Value: caBd}
	}

	return Boundary{
		Concentration: caBd,
		Depletion:     (c.CaOut - caBd) / c.CaOut * 100.0,
	}, nil
}

// ChannelCapacity returns the maximum channel-mediated flux and the
// fraction of it the calcification flux uses.
func ChannelCapacity(c params.Constants) (Capacity, error) {
	ionFlux := c.ChannelDensity * c.ChannelCurrent // ions m^-2 s^-1
	maxFlux := ionFlux / c.Avogadro * c.CellArea()

	fv := c.CalcificationFlux / maxFlux
	if !(fv > 0 && fv <= 1) {
		return Capacity{}, &Error{Kind: ErrChannelCapacityExceeded, Quantity: "fV", Value: fv}
	}

	return Capacity{MaxFlux: maxFlux, UsedFraction: fv}, nil
}

// RequiredPermeability returns PCa such that PCa*(caBd-caIn) == maxFlux.
func RequiredPermeability(maxFlux, caBd, caIn float64) (float64, error) {
	gradient := caBd - caIn
	if !(gradient > 0) {
		return 0, &Error{Kind: ErrDegenerateGradient, Quantity: "Ca_bd-Ca_in", Value: gradient}
	}
	return maxFlux / gradient, nil
}

// SteadyStateConcentration is the fixed point between diffusive supply
// (weight 4*pi*D*r, toward Ca_out) and permeability-driven demand
// (weight pCa*fv, toward Ca_in). The result is a convex combination of
// Ca_out and Ca_in and equals Ca_out at fv == 0.
func SteadyStateConcentration(fv float64, c params.Constants, pCa float64) float64 {
	g := c.DiffusiveConductance()
	w := pCa * fv
	theta := w / (g + w)
	return c.CaOut - theta*(c.CaOut-c.CaIn)
}

// EnergyCost splits the daily ATP demand of transporting against ca0
// between the vesicle (share fv) and the plasma membrane (1-fv).
func EnergyCost(fv, ca0, pCa, caIn, atpPerCa float64) Energy {
	rate := pCa * (ca0 - caIn) * atpPerCa // mol ATP/s
	total := rate * consts.SECONDS_PER_DAY * consts.PICO

	vesicle := fv * total
	return Energy{
		Total:    total,
		Vesicle:  vesicle,
		Membrane: total - vesicle,
	}
}
