package util

import (
	"fmt"
	"math"
)

func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue == 0:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e3:
		return fmt.Sprintf("%.3e %s", value, unit)
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	case absValue >= 1e-15:
		return fmt.Sprintf("%.3f f%s", value*1e15, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// FormatConcentration prints mol/m^3 as molar-prefixed mM.
func FormatConcentration(value float64) string {
	return FormatValueFactor(value*1e-3, "M")
}

func FormatFraction(value float64) string {
	return fmt.Sprintf("%6.4f", value)
}

func FormatPercent(value float64) string {
	if value != 0 && math.Abs(value) < 1e-2 {
		return fmt.Sprintf("%.3e %%", value)
	}
	return fmt.Sprintf("%.3f %%", value)
}
