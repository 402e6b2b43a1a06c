// Package params holds the physical constant set consumed by the
// energetics model. A Constants value is fixed for one run.
package params

import (
	"math"

	"github.com/edp1096/calcify/internal/consts"
)

// Constants enumerates every physical input of the model in SI units.
// Concentrations are mol/m^3, which is numerically equal to mM.
type Constants struct {
	CellRadius        float64 `yaml:"cell_radius" json:"cell_radius"`               // r_cyt (m)
	Diffusivity       float64 `yaml:"diffusivity" json:"diffusivity"`               // D_Ca (m^2/s)
	CalcificationFlux float64 `yaml:"calcification_flux" json:"calcification_flux"` // Q_Ca (mol/s)
	CaOut             float64 `yaml:"ca_out" json:"ca_out"`                         // bulk seawater (mol/m^3)
	CaIn              float64 `yaml:"ca_in" json:"ca_in"`                           // cytosol (mol/m^3)
	ChannelCurrent    float64 `yaml:"channel_current" json:"channel_current"`       // i (ions/s per channel)
	ChannelDensity    float64 `yaml:"channel_density" json:"channel_density"`       // N (channels/m^2)
	Avogadro          float64 `yaml:"avogadro" json:"avogadro"`                     // N_A (1/mol)
	ATPPerCa          float64 `yaml:"atp_per_ca" json:"atp_per_ca"`                 // ATP per ion transported
	VesicleCa         float64 `yaml:"vesicle_ca" json:"vesicle_ca"`                 // Ca_hi inside the vesicle (mol/m^3)
	ReferenceSplit    float64 `yaml:"reference_split" json:"reference_split"`       // empirical f_V marker
}

// Default returns the E. huxleyi parameter set: a 5 um cell calcifying
// one 22 fmol coccolith per hour in 10 mM seawater calcium.
func Default() Constants {
	return Constants{
		CellRadius:        2.5e-6,
		Diffusivity:       7.93e-6 * consts.CM2_TO_M2,
		CalcificationFlux: 6.11e-18,
		CaOut:             10.0 * consts.MILLIMOLAR,
		CaIn:              0.10e-3 * consts.MILLIMOLAR,
		ChannelCurrent:    3.0e6,
		ChannelDensity:    1.0e12,
		Avogadro:          consts.AVOGADRO,
		ATPPerCa:          0.5,
		VesicleCa:         60.0 * consts.MILLIMOLAR,
		ReferenceSplit:    0.0156,
	}
}

// FluxFromFmolPerHour converts a calcification rate in fmol/h to mol/s.
func FluxFromFmolPerHour(fmolPerHour float64) float64 {
	return fmolPerHour * consts.FEMTO / consts.SECONDS_PER_HOUR
}

// CellArea is the cell surface 4*pi*r^2 (m^2).
func (c Constants) CellArea() float64 {
	return 4.0 * math.Pi * c.CellRadius * c.CellRadius
}

// DiffusiveConductance is 4*pi*D*r (m^3/s), the steady radial diffusion
// coefficient linking bulk and surface concentration.
func (c Constants) DiffusiveConductance() float64 {
	return 4.0 * math.Pi * c.Diffusivity * c.CellRadius
}
