package network

import (
	"fmt"

	"github.com/edp1096/calcify/pkg/compartment"
	"github.com/edp1096/calcify/pkg/params"
)

const (
	NodeBulk    = "bulk"
	NodeSurface = "surface"
	NodeCytosol = "cytosol"

	Seawater      = "seawater"
	Cytoplasm     = "cytoplasm"
	Diffusion     = "diffusion"
	Membrane      = "membrane"
	Calcification = "calcification"
)

// Boundary is the diffusion boundary layer: seawater held at Ca_out, radial
// diffusion to the cell surface, and the calcification flux drawn off the
// surface. The solved surface concentration is Ca_bd.
func Boundary(c params.Constants) (*Network, error) {
	n := New("boundary layer")
	elements := []compartment.Element{
		compartment.NewReservoir(Seawater, []string{NodeBulk, "0"}, c.CaOut),
		compartment.NewConductance(Diffusion, []string{NodeBulk, NodeSurface}, c.DiffusiveConductance()),
		compartment.NewFlux(Calcification, []string{"0", NodeSurface}, c.CalcificationFlux),
	}
	return build(n, elements)
}

// Uptake is the two-route balance at split fraction fv: diffusive supply
// from seawater to the surface, and membrane transport of conductance
// pCa*fv from the surface into a cytosol held at Ca_in. The solved surface
// concentration is Ca_0(fv).
func Uptake(c params.Constants, pCa, fv float64) (*Network, error) {
	n := New("split uptake")
	elements := []compartment.Element{
		compartment.NewReservoir(Seawater, []string{NodeBulk, "0"}, c.CaOut),
		compartment.NewConductance(Diffusion, []string{NodeBulk, NodeSurface}, c.DiffusiveConductance()),
		compartment.NewConductance(Membrane, []string{NodeSurface, NodeCytosol}, pCa*fv),
		compartment.NewReservoir(Cytoplasm, []string{NodeCytosol, "0"}, c.CaIn),
	}
	return build(n, elements)
}

func build(n *Network, elements []compartment.Element) (*Network, error) {
	for _, el := range elements {
		if err := n.Add(el); err != nil {
			return nil, err
		}
	}
	if err := n.Build(); err != nil {
		n.Destroy()
		return nil, fmt.Errorf("building %s: %w", n.Name(), err)
	}
	return n, nil
}
