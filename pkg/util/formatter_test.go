package util

import "testing"

func TestFormatValueFactor(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
		want  string
	}{
		{0, "mol/s", "0.000 mol/s"},
		{2.5, "m", "2.500 m"},
		{2.5e-6, "m", "2.500 um"},
		{6.11e-18, "mol/s", "6.110e-18 mol/s"},
		{3.9126e-16, "mol/s", "3.913e-16 mol/s"},
		{4.2e-15, "mol/s", "4.200 fmol/s"},
		{6.0221367e23, "/mol", "6.022e+23 /mol"},
	}

	for _, tt := range tests {
		if got := FormatValueFactor(tt.value, tt.unit); got != tt.want {
			t.Errorf("FormatValueFactor(%g, %q) = %q, want %q", tt.value, tt.unit, got, tt.want)
		}
	}
}

func TestFormatConcentration(t *testing.T) {
	if got := FormatConcentration(10.0); got != "10.000 mM" {
		t.Errorf("got %q", got)
	}
	if got := FormatConcentration(1e-4); got != "100.000 nM" {
		t.Errorf("got %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(1.5616); got != "1.562 %" {
		t.Errorf("got %q", got)
	}
	if got := FormatPercent(2.45e-3); got != "2.450e-03 %" {
		t.Errorf("got %q", got)
	}
}
