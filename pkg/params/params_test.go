package params

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesReferenceCell(t *testing.T) {
	c := Default()
	if math.Abs(c.Diffusivity-7.93e-10) > 1e-22 {
		t.Errorf("diffusivity = %g, want 7.93e-10", c.Diffusivity)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("default constants invalid: %v", err)
	}

	wantArea := 4 * math.Pi * 2.5e-6 * 2.5e-6
	if math.Abs(c.CellArea()-wantArea) > 1e-24 {
		t.Errorf("CellArea = %g, want %g", c.CellArea(), wantArea)
	}
}

func TestFluxFromFmolPerHour(t *testing.T) {
	got := FluxFromFmolPerHour(22)
	if math.Abs(got-6.11e-18)/6.11e-18 > 1e-3 {
		t.Errorf("22 fmol/h = %g mol/s, want ~6.11e-18", got)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Constants)
		field  string
	}{
		{"zero radius", func(c *Constants) { c.CellRadius = 0 }, "cell_radius"},
		{"negative diffusivity", func(c *Constants) { c.Diffusivity = -1 }, "diffusivity"},
		{"NaN flux", func(c *Constants) { c.CalcificationFlux = math.NaN() }, "calcification_flux"},
		{"zero channels", func(c *Constants) { c.ChannelDensity = 0 }, "channel_density"},
		{"zero ATP", func(c *Constants) { c.ATPPerCa = 0 }, "atp_per_ca"},
		{"split of one", func(c *Constants) { c.ReferenceSplit = 1 }, "reference_split"},
		{"negative vesicle", func(c *Constants) { c.VesicleCa = -2 }, "vesicle_ca"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidConstant) {
				t.Errorf("error %v does not match ErrInvalidConstant", err)
			}
			var pe *Error
			if !errors.As(err, &pe) || pe.Field != tt.field {
				t.Errorf("error %v, want field %s", err, tt.field)
			}
		})
	}
}

func TestValidateLeavesOrderingToModel(t *testing.T) {
	c := Default()
	c.CaIn, c.CaOut = c.CaOut, c.CaIn
	if err := c.Validate(); err != nil {
		t.Errorf("swapped concentrations should pass field validation, got %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cell.yaml")
	data := []byte("cell_radius: 1.0e-5\nca_out: 20.0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.CellRadius != 1.0e-5 {
		t.Errorf("cell_radius = %g, want 1e-5", c.CellRadius)
	}
	if c.CaOut != 20.0 {
		t.Errorf("ca_out = %g, want 20", c.CaOut)
	}
	if c.ATPPerCa != Default().ATPPerCa {
		t.Errorf("atp_per_ca = %g, want default", c.ATPPerCa)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Parse([]byte("cell_radius: [1, 2")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestMarshalParsesBack(t *testing.T) {
	want := Default()
	want.CaOut = 12.5
	data, err := want.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
