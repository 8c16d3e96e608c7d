package units

// NotAvailable is the sentinel rendered for NaN, non-finite or otherwise
// invalid measurements.
const NotAvailable = "N/A"

// Magnitude bracket breakpoints. They are domain independent.
const (
	// NanoThreshold is the upper bound (exclusive) of the nano bracket.
	NanoThreshold = 1e-6

	// MicroThreshold is the upper bound (exclusive) of the micro bracket.
	MicroThreshold = 1e-3

	// MilliThreshold is the upper bound (exclusive) of the milli bracket.
	// Values at or above it use the base unit.
	MilliThreshold = 1.0
)

// Display precision constants.
const (
	// CompactDecimals is the precision of the compact emissions badge.
	CompactDecimals = 2

	// HeadlineGramDecimals is the precision of headline values below 1 kg.
	HeadlineGramDecimals = 6

	// HeadlineKgDecimals is the precision of headline values of 1 kg and above.
	HeadlineKgDecimals = 4

	// MaxDecimals bounds the precision accepted by Format.
	MaxDecimals = 12

	// MinTemperatureDecimals and MaxTemperatureDecimals bound temperature precision.
	MinTemperatureDecimals = 1
	MaxTemperatureDecimals = 2
)

// Unit conversion constants for normalizing mass values to kilograms.
const (
	// GramsToKg converts grams to kilograms.
	GramsToKg = 0.001

	// KgToKg is the identity conversion for kilograms.
	KgToKg = 1.0

	// TonsToKg converts metric tons to kilograms.
	TonsToKg = 1000.0

	// PoundsToKg converts pounds to kilograms.
	PoundsToKg = 0.453592
)
