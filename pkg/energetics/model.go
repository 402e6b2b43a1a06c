package energetics

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/edp1096/calcify/internal/logging"
	"github.com/edp1096/calcify/pkg/params"
)

const (
	ReferenceBoundary  = "boundary"
	ReferenceEmpirical = "empirical"
)

// Derived holds the scalars computed once from the constants.
type Derived struct {
	CellArea             float64  `json:"cell_area"`             // A_cyt (m^2)
	DiffusiveConductance float64  `json:"diffusive_conductance"` // 4*pi*D*r (m^3/s)
	Boundary             Boundary `json:"boundary"`
	Capacity             Capacity `json:"capacity"`
	Permeability         float64  `json:"permeability"`   // PCa (m^3/s)
	GradientRatio        float64  `json:"gradient_ratio"` // Ca_hi / Ca_in
}

// Point is a single evaluation at one split fraction.
type Point struct {
	Fraction      float64 `json:"fraction"`
	Concentration float64 `json:"concentration"`
	Energy        Energy  `json:"energy"`
}

// Reference is a named operating point marked on the energy plot.
type Reference struct {
	Name  string `json:"name"`
	Point Point  `json:"point"`
}

// Savings compares the transport cost against the surface depletion the
// boundary layer produces with the cost if the surface stayed at Ca_out.
type Savings struct {
	Depleted   float64 `json:"depleted"`   // pmol ATP/d at Ca_0(fV)
	Undepleted float64 `json:"undepleted"` // pmol ATP/d at Ca_out
	Difference float64 `json:"difference"`
	Percent    float64 `json:"percent"`
}

// Model is a validated constant set together with its derived scalars.
type Model struct {
	constants params.Constants
	derived   Derived
	log       *slog.Logger
}

type Option func(*Model)

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// New validates c and derives every scalar eagerly. It returns the first
// invalid-configuration failure.
func New(c params.Constants, opts ...Option) (*Model, error) {
	m := &Model{
		constants: c,
		log:       logging.Noop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	boundary, err := checkConstants(c)
	if err != nil {
		return nil, err
	}

	capacity, err := ChannelCapacity(c)
	if err != nil {
		return nil, err
	}

	pCa, err := RequiredPermeability(capacity.MaxFlux, boundary.Concentration, c.CaIn)
	if err != nil {
		return nil, err
	}

	m.derived = Derived{
		CellArea:             c.CellArea(),
		DiffusiveConductance: c.DiffusiveConductance(),
		Boundary:             boundary,
		Capacity:             capacity,
		Permeability:         pCa,
		GradientRatio:        c.VesicleCa / c.CaIn,
	}

	m.log.Debug("energetics.derived",
		"ca_bd", boundary.Concentration,
		"f_ca", boundary.Depletion,
		"f_max", capacity.MaxFlux,
		"f_v", capacity.UsedFraction,
		"p_ca", pCa,
	)

	return m, nil
}

// checkConstants validates c, requires an inward gradient and a
// non-negative boundary concentration.
func checkConstants(c params.Constants) (Boundary, error) {
	if err := c.Validate(); err != nil {
		return Boundary{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if c.CaOut <= c.CaIn {
		return Boundary{}, &Error{Kind: ErrDegenerateGradient, Quantity: "Ca_out-Ca_in", Value: c.CaOut - c.CaIn}
	}
	return BoundaryConcentration(c)
}

func (m *Model) Constants() params.Constants { return m.constants }

func (m *Model) Derived() Derived { return m.derived }

// At evaluates the balance at a single split fraction in [0,1].
func (m *Model) At(fv float64) (Point, error) {
	if !(fv >= 0 && fv <= 1) {
		return Point{}, &Error{Kind: ErrInvalidSweepRange, Quantity: "f_V", Value: fv}
	}

	c := m.constants
	pCa := m.derived.Permeability
	ca0 := SteadyStateConcentration(fv, c, pCa)

	return Point{
		Fraction:      fv,
		Concentration: ca0,
		Energy:        EnergyCost(fv, ca0, pCa, c.CaIn, c.ATPPerCa),
	}, nil
}

// References returns the boundary-layer point, at the used channel
// fraction fV where Ca_0 coincides with Ca_bd, and the empirical split.
func (m *Model) References() []Reference {
	refs := make([]Reference, 0, 2)
	for _, r := range []struct {
		name string
		fv   float64
	}{
		{ReferenceBoundary, m.derived.Capacity.UsedFraction},
		{ReferenceEmpirical, m.constants.ReferenceSplit},
	} {
		// Both fractions were range checked in New.
		p, err := m.At(r.fv)
		if err != nil {
			continue
		}
		refs = append(refs, Reference{Name: r.name, Point: p})
	}
	return refs
}

// Savings evaluates the cost at fV against the undepleted surface.
func (m *Model) Savings() Savings {
	c := m.constants
	pCa := m.derived.Permeability
	fv := m.derived.Capacity.UsedFraction

	depleted := EnergyCost(fv, SteadyStateConcentration(fv, c, pCa), pCa, c.CaIn, c.ATPPerCa).Total
	undepleted := EnergyCost(fv, c.CaOut, pCa, c.CaIn, c.ATPPerCa).Total

	s := Savings{
		Depleted:   depleted,
		Undepleted: undepleted,
		Difference: undepleted - depleted,
	}
	if undepleted > 0 && !math.IsInf(undepleted, 0) {
		s.Percent = s.Difference / undepleted * 100.0
	}
	return s
}

// Sweep runs the split sweep with the model's permeability.
func (m *Model) Sweep(steps int) (Series, error) {
	s, err := Sweep(m.constants, m.derived.Permeability, steps)
	if err != nil {
		return Series{}, err
	}
	m.log.Debug("energetics.sweep", "steps", steps)
	return s, nil
}
