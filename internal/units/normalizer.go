package units

import (
	"math"
	"strings"
)

// unitFactor returns the conversion factor to kilograms for the provided
// unit and whether the unit is recognized. Matching is case-insensitive.
func unitFactor(unit string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "g", "gco2", "gco2e":
		return GramsToKg, true
	case "kg", "kgco2", "kgco2e":
		return KgToKg, true
	case "t", "tco2", "tco2e":
		return TonsToKg, true
	case "lb", "lbco2", "lbco2e":
		return PoundsToKg, true
	default:
		return 0, false
	}
}

// NormalizeToKg converts a mass in any recognized unit to kilograms.
//
// Recognized units are g, kg, t, lb and their CO2 / CO2e variants, matched
// case-insensitively. The prediction service reports legacy emissions in
// grams, so ingestion goes through here before formatting.
//
// It returns ErrNonFinite for NaN/Inf input or an overflowing result,
// ErrNegativeValue for negative input and ErrInvalidUnit for unknown units.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrNonFinite
	}

	if value < 0 {
		return 0, ErrNegativeValue
	}

	factor, ok := unitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}

	result := value * factor
	if math.IsInf(result, 0) {
		return 0, ErrNonFinite
	}

	return result, nil
}

// IsRecognizedUnit reports whether unit is a supported mass unit.
func IsRecognizedUnit(unit string) bool {
	_, ok := unitFactor(unit)
	return ok
}

// IsValid reports whether value is a displayable measurement in domain:
// finite, and non-negative unless the domain allows negative values.
func IsValid(value float64, domain Domain) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	return value >= 0 || domain.AllowsNegative()
}
