// Package report renders model scalars and swept series for a reader or a
// plotting tool. It never feeds back into the model.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/edp1096/calcify/pkg/energetics"
	"github.com/edp1096/calcify/pkg/params"
	"github.com/edp1096/calcify/pkg/util"
)

// Document is the complete machine-readable output of one run.
type Document struct {
	Constants  params.Constants       `json:"constants"`
	Derived    energetics.Derived     `json:"derived"`
	References []energetics.Reference `json:"references"`
	Savings    energetics.Savings     `json:"savings"`
	Series     *energetics.Series     `json:"series,omitempty"`
}

func NewDocument(m *energetics.Model, series *energetics.Series) Document {
	return Document{
		Constants:  m.Constants(),
		Derived:    m.Derived(),
		References: m.References(),
		Savings:    m.Savings(),
		Series:     series,
	}
}

type Reporter struct {
	w     io.Writer
	theme Theme
}

func New(w io.Writer, theme Theme) *Reporter {
	return &Reporter{w: w, theme: theme}
}

func (r *Reporter) line(label, value string) {
	fmt.Fprintf(r.w, "  %-34s %s\n", r.theme.Label.Render(label), value)
}

// Scalars prints the derived quantities, reference points and savings.
func (r *Reporter) Scalars(m *energetics.Model) {
	c := m.Constants()
	d := m.Derived()

	fmt.Fprintln(r.w, r.theme.Title.Render("Boundary layer"))
	r.line("Ca_bd", util.FormatConcentration(d.Boundary.Concentration))
	r.line("fCa (depletion)", util.FormatPercent(d.Boundary.Depletion))
	r.line("Ca_hi/Ca_in", fmt.Sprintf("%.4g", d.GradientRatio))

	fmt.Fprintln(r.w, r.theme.Title.Render("Channels"))
	r.line("F_Ca (max flux)", util.FormatValueFactor(d.Capacity.MaxFlux, "mol/s"))
	r.line("Q_Ca (calcification flux)", util.FormatValueFactor(c.CalcificationFlux, "mol/s"))
	r.line("fV (used fraction)", util.FormatFraction(d.Capacity.UsedFraction))
	r.line("PCa (permeability)", fmt.Sprintf("%.4e m^3/s", d.Permeability))

	fmt.Fprintln(r.w, r.theme.Title.Render("Reference points"))
	for _, ref := range m.References() {
		p := ref.Point
		fmt.Fprintf(r.w, "  %-10s f_V=%s  Ca_0=%s  %s  %s  %s\n",
			r.theme.Marker.Render(ref.Name),
			util.FormatFraction(p.Fraction),
			util.FormatConcentration(p.Concentration),
			r.theme.Combined.Render("combined="+formatEnergy(p.Energy.Total)),
			r.theme.Vesicle.Render("vesicle="+formatEnergy(p.Energy.Vesicle)),
			r.theme.Membrane.Render("membrane="+formatEnergy(p.Energy.Membrane)),
		)
	}

	s := m.Savings()
	fmt.Fprintln(r.w, r.theme.Title.Render("Energy savings"))
	r.line("at Ca_0(fV)", formatEnergy(s.Depleted))
	r.line("at Ca_out", formatEnergy(s.Undepleted))
	r.line("difference", formatEnergy(s.Difference))
	r.line("saving", util.FormatPercent(s.Percent))
}

// Table prints one row per swept fraction. Rows closest to a reference
// point are marked with '*'.
func (r *Reporter) Table(series energetics.Series, refs []energetics.Reference) {
	marked := make(map[int]bool, len(refs))
	for _, ref := range refs {
		if i := series.Nearest(ref.Point.Fraction); i >= 0 {
			marked[i] = true
		}
	}

	fmt.Fprintf(r.w, "\nSplit Sweep Results (%d points, pmol ATP/d):\n", series.Len())
	fmt.Fprintf(r.w, "  %-8s %-14s %-14s %-14s %-14s\n",
		"f_V", "Ca_0",
		r.theme.Membrane.Render(fmt.Sprintf("%-14s", "membrane")),
		r.theme.Vesicle.Render(fmt.Sprintf("%-14s", "vesicle")),
		r.theme.Combined.Render(fmt.Sprintf("%-14s", "combined")))
	fmt.Fprintln(r.w, "------------------------------------------------------------------------")

	for i := range series.Len() {
		mark := " "
		if marked[i] {
			mark = r.theme.Marker.Render("*")
		}
		fmt.Fprintf(r.w, "%s %-8s %-14s %-14s %-14s %-14s\n",
			mark,
			util.FormatFraction(series.Fraction[i]),
			util.FormatConcentration(series.Concentration[i]),
			formatEnergy(series.Membrane[i]),
			formatEnergy(series.Vesicle[i]),
			formatEnergy(series.Total[i]),
		)
	}
}

func (r *Reporter) JSON(doc Document) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// CSV writes the series with a header row, one column per curve.
func (r *Reporter) CSV(series energetics.Series) error {
	cw := csv.NewWriter(r.w)
	header := []string{"f_v", "ca_0",
		string(energetics.SeriesMembrane),
		string(energetics.SeriesVesicle),
		string(energetics.SeriesTotal)}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range series.Len() {
		row := []string{
			formatFloat(series.Fraction[i]),
			formatFloat(series.Concentration[i]),
			formatFloat(series.Membrane[i]),
			formatFloat(series.Vesicle[i]),
			formatFloat(series.Total[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatEnergy(v float64) string {
	return strconv.FormatFloat(v, 'g', 5, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
