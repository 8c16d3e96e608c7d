// Package units renders telemetry scalars as human-readable strings.
//
// Values produced by the energy accounting service span many orders of
// magnitude (nanograms to kilograms of CO2, nanowatt-hours to kilowatt-hours),
// so the compact policy picks an SI bracket by comparing the absolute value
// against fixed powers of ten. Temperatures are always human scale and use
// a separate fixed-precision policy.
package units

import "fmt"

// Domain identifies the physical quantity a scalar measures.
type Domain int

const (
	// DomainMass is a mass in kilograms (emissions are expressed in kg CO2).
	DomainMass Domain = iota

	// DomainPower is a power draw in watts.
	DomainPower

	// DomainEmissionRate is an emission rate in kilograms per second.
	DomainEmissionRate

	// DomainEnergy is an energy amount in kilowatt-hours.
	DomainEnergy

	// DomainTemperature is a temperature in degrees Celsius.
	// It is the only domain where negative values are valid.
	DomainTemperature

	// DomainDuration is a duration in seconds.
	DomainDuration
)

// String returns a human-readable representation of the Domain.
func (d Domain) String() string {
	switch d {
	case DomainMass:
		return "Mass"
	case DomainPower:
		return "Power"
	case DomainEmissionRate:
		return "EmissionRate"
	case DomainEnergy:
		return "Energy"
	case DomainTemperature:
		return "Temperature"
	case DomainDuration:
		return "Duration"
	default:
		return fmt.Sprintf("Domain(%d)", d)
	}
}

// Suffix returns the base unit symbol of the domain.
func (d Domain) Suffix() string {
	switch d {
	case DomainMass:
		return "kg"
	case DomainPower:
		return "W"
	case DomainEmissionRate:
		return "kg/s"
	case DomainEnergy:
		return "kWh"
	case DomainTemperature:
		return "°C"
	case DomainDuration:
		return "s"
	default:
		return ""
	}
}

// stem returns the symbol an SI prefix attaches to. Mass based domains
// drop the kilo prefix of their base symbol so that brackets read "mg",
// "µg/s" rather than "mkg".
func (d Domain) stem() string {
	switch d {
	case DomainMass:
		return "g"
	case DomainEmissionRate:
		return "g/s"
	default:
		return d.Suffix()
	}
}

// AllowsNegative reports whether negative values are meaningful in the domain.
func (d Domain) AllowsNegative() bool {
	return d == DomainTemperature
}

// Mode selects the presentation policy for emissions values.
type Mode int

const (
	// ModeHeadline is the two-tier policy of the primary emissions display:
	// grams with 6 decimals below 1 kg, kilograms with 4 decimals above.
	ModeHeadline Mode = iota

	// ModeCompact is the four-tier nano/micro/milli/base policy used by badges.
	ModeCompact
)

// String returns a human-readable representation of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeHeadline:
		return "headline"
	case ModeCompact:
		return "compact"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}
