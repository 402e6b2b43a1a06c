package consts

const (
	AVOGADRO         = 6.0221367e23 // Avogadro constant (1/mol)
	SECONDS_PER_HOUR = 3600.0       // (s/h)
	SECONDS_PER_DAY  = 86400.0      // (s/d)
	PICO             = 1e12         // mol -> pmol
	FEMTO            = 1e-15        // fmol -> mol
	CM2_TO_M2        = 1e-4         // cm^2 -> m^2
	MILLIMOLAR       = 1.0          // 1 mM = 1 mol/m^3
)
