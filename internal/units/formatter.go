package units

import (
	"math"
	"strconv"
)

// bracket is one SI magnitude tier.
type bracket struct {
	prefix string
	factor float64
	base   bool
}

//nolint:gochecknoglobals // Fixed lookup values.
var (
	nanoBracket  = bracket{prefix: "n", factor: 1e9}
	microBracket = bracket{prefix: "µ", factor: 1e6}
	milliBracket = bracket{prefix: "m", factor: 1e3}
	baseBracket  = bracket{factor: 1, base: true}
)

// bracketFor selects the magnitude bracket of v. Zero resolves to the base
// unit so that an exact zero never renders as "0 n<unit>".
func bracketFor(v float64) bracket {
	abs := math.Abs(v)
	switch {
	case abs == 0:
		return baseBracket
	case abs < NanoThreshold:
		return nanoBracket
	case abs < MicroThreshold:
		return microBracket
	case abs < MilliThreshold:
		return milliBracket
	default:
		return baseBracket
	}
}

// symbol returns the unit symbol for a bracket of the domain.
func (b bracket) symbol(d Domain) string {
	if b.base {
		return d.Suffix()
	}
	return b.prefix + d.stem()
}

// Format renders value in domain with the four-tier compact policy.
//
// The magnitude bracket is chosen from |value|: below 1e-6 the value is
// scaled by 1e9 (nano), below 1e-3 by 1e6 (micro), below 1 by 1e3 (milli),
// otherwise it is printed in the base unit. decimals is clamped to
// [0, MaxDecimals].
//
// Temperatures are delegated to FormatTemperature. NaN, infinite values and
// negative values outside DomainTemperature render as NotAvailable.
//
// Examples:
//
//	Format(0.0000005, DomainMass, 2) // "500.00 ng"
//	Format(0.5, DomainMass, 2)       // "500.00 mg"
//	Format(4.82e-8, DomainEnergy, 2) // "48.20 nkWh"
func Format(value float64, domain Domain, decimals int) string {
	if domain == DomainTemperature {
		return FormatTemperature(value, decimals)
	}
	if !IsValid(value, domain) {
		return NotAvailable
	}

	decimals = clampInt(decimals, 0, MaxDecimals)
	b := bracketFor(value)
	return strconv.FormatFloat(value*b.factor, 'f', decimals, 64) + " " + b.symbol(domain)
}

// FormatEmissions renders an emissions mass in kilograms using the named
// presentation mode.
//
// ModeHeadline is the two-tier policy of the headline card: values below
// 1 kg are shown in grams with 6 decimals ("0.000500 g"), values of 1 kg
// and above in kilograms with 4 decimals ("1.2346 kg"). An exact zero is
// reported in kilograms ("0.000000 kg").
//
// ModeCompact is Format(kg, DomainMass, CompactDecimals).
//
// Invalid input (NaN, Inf, negative) renders as NotAvailable in both modes.
func FormatEmissions(kg float64, mode Mode) string {
	if mode == ModeCompact {
		return Format(kg, DomainMass, CompactDecimals)
	}
	if !IsValid(kg, DomainMass) {
		return NotAvailable
	}

	switch {
	case kg == 0:
		return strconv.FormatFloat(0, 'f', HeadlineGramDecimals, 64) + " kg"
	case kg < 1:
		return strconv.FormatFloat(kg/GramsToKg, 'f', HeadlineGramDecimals, 64) + " g"
	default:
		return strconv.FormatFloat(kg, 'f', HeadlineKgDecimals, 64) + " kg"
	}
}

// FormatTemperature renders a temperature in degrees Celsius with a fixed
// precision of one or two decimals (decimals is clamped to that range).
// Negative temperatures are valid; NaN and infinite values render as
// NotAvailable.
func FormatTemperature(celsius float64, decimals int) string {
	if !IsValid(celsius, DomainTemperature) {
		return NotAvailable
	}
	decimals = clampInt(decimals, MinTemperatureDecimals, MaxTemperatureDecimals)
	return strconv.FormatFloat(celsius, 'f', decimals, 64) + DomainTemperature.Suffix()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
