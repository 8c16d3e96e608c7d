package impact

import (
	"fmt"

	"github.com/econum/cableviz/internal/units"
)

// ColorToken is the visual weight of a severity band.
type ColorToken int

const (
	// ColorVeryLow marks the lowest emissions band.
	ColorVeryLow ColorToken = iota
	// ColorLow marks the second band.
	ColorLow
	// ColorModerate marks the middle band.
	ColorModerate
	// ColorHigh marks the fourth band.
	ColorHigh
	// ColorVeryHigh marks the top band.
	ColorVeryHigh
)

// String returns a human-readable representation of the ColorToken.
func (c ColorToken) String() string {
	switch c {
	case ColorVeryLow:
		return "VeryLow"
	case ColorLow:
		return "Low"
	case ColorModerate:
		return "Moderate"
	case ColorHigh:
		return "High"
	case ColorVeryHigh:
		return "VeryHigh"
	default:
		return fmt.Sprintf("ColorToken(%d)", c)
	}
}

// SeverityBand describes the magnitude of an emissions measurement.
type SeverityBand struct {
	// Label is the display label, e.g. "Modéré".
	Label string `json:"label"`

	// Color is the visual weight token of the band.
	Color ColorToken `json:"color"`

	// GaugePercentage is the fill of the impact progress bar, 0..100.
	GaugePercentage int `json:"gauge_percentage"`

	// Equivalent is the companion "equivalent activity" phrase.
	Equivalent string `json:"equivalent"`
}

// Emissions band breakpoints in kg CO2.
const (
	LowThresholdKg      = 0.001
	ModerateThresholdKg = 0.01
	HighThresholdKg     = 0.1
	VeryHighThresholdKg = 1.0
)

// Band definitions, lowest first.
//
//nolint:gochecknoglobals // Fixed lookup values.
var (
	BandVeryLow = SeverityBand{
		Label: "Très faible", Color: ColorVeryLow, GaugePercentage: 20,
		Equivalent: "Équivalent à quelques secondes d'utilisation d'un smartphone",
	}
	BandLow = SeverityBand{
		Label: "Faible", Color: ColorLow, GaugePercentage: 40,
		Equivalent: "Équivalent à l'envoi de quelques emails",
	}
	BandModerate = SeverityBand{
		Label: "Modéré", Color: ColorModerate, GaugePercentage: 60,
		Equivalent: "Équivalent à la charge d'un smartphone",
	}
	BandHigh = SeverityBand{
		Label: "Élevé", Color: ColorHigh, GaugePercentage: 80,
		Equivalent: "Équivalent à 1 km en voiture électrique",
	}
	BandVeryHigh = SeverityBand{
		Label: "Très élevé", Color: ColorVeryHigh, GaugePercentage: 100,
		Equivalent: "Équivalent à plusieurs km en voiture",
	}
)

//nolint:gochecknoglobals // Immutable classifier over the fixed band table.
var emissionsClassifier = mustClassifier(UpperExclusive, []Threshold[SeverityBand]{
	{Upper: LowThresholdKg, Band: BandVeryLow},
	{Upper: ModerateThresholdKg, Band: BandLow},
	{Upper: HighThresholdKg, Band: BandModerate},
	{Upper: VeryHighThresholdKg, Band: BandHigh},
}, BandVeryHigh)

// Classify returns the severity band of an emissions mass in kg CO2.
//
// Bands are inclusive-low, exclusive-high: [0,0.001) Très faible/20%,
// [0.001,0.01) Faible/40%, [0.01,0.1) Modéré/60%, [0.1,1) Élevé/80%,
// [1,∞) Très élevé/100%. NaN and negative values classify as Très faible;
// callers render such values as "N/A" next to the band.
func Classify(emissionsKg float64) SeverityBand {
	return emissionsClassifier.Classify(emissionsKg)
}

// Equivalent returns the "equivalent activity" phrase for an emissions mass.
// It is context text only and uses the same thresholds as Classify.
func Equivalent(emissionsKg float64) string {
	return Classify(emissionsKg).Equivalent
}

// Bands returns all emissions bands, lowest first.
func Bands() []SeverityBand {
	return []SeverityBand{BandVeryLow, BandLow, BandModerate, BandHigh, BandVeryHigh}
}

// Badge returns the compact badge text of an emissions mass, for example
// "Impact Faible · 4.73 mg".
func Badge(emissionsKg float64) string {
	return fmt.Sprintf("Impact %s · %s", Classify(emissionsKg).Label,
		units.FormatEmissions(emissionsKg, units.ModeCompact))
}
