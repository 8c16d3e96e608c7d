package energy

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Input is the emissions part of a prediction: either a bare mass or a full
// record. The set of implementations is closed.
type Input interface {
	isInput()
}

// Scalar is an emissions mass in kg CO2 without measurement details.
type Scalar float64

// Detailed is a full measurement record.
type Detailed struct {
	Record Record
}

func (Scalar) isInput()   {}
func (Detailed) isInput() {}

// Provenance tells whether a record was measured or made up from a scalar.
type Provenance int

// Record provenances.
const (
	ProvenanceMeasured Provenance = iota
	ProvenanceSynthesized
)

func (p Provenance) String() string {
	if p == ProvenanceSynthesized {
		return "synthesized"
	}
	return "measured"
}

// Emissions is a resolved Input.
type Emissions struct {
	Record     Record
	Provenance Provenance
}

// Approximate reports whether the hardware and location details are
// placeholders.
func (e Emissions) Approximate() bool {
	return e.Provenance == ProvenanceSynthesized
}

// Placeholder values for records synthesised from a bare emissions mass.
const (
	PlaceholderProject    = "ECONUM"
	PlaceholderCountry    = "France"
	PlaceholderCountryISO = "FRA"
	PlaceholderHardware   = "Apple M2"
	PlaceholderOS         = "macOS-15.5-arm64-arm-64bit"
	PlaceholderPython     = "3.12.1"
	PlaceholderCodeCarbon = "3.0.1"
)

// Resolver normalises an Input to Emissions. The zero value uses the wall
// clock and random UUIDs for synthesised records.
type Resolver struct {
	Now   func() time.Time
	NewID func() string
}

// Resolve returns the emissions of in. Detailed records pass through
// unchanged. Scalars get a placeholder record carrying the mass, the run
// duration and an emissions rate of kg/executionSeconds (0 when the
// duration is not positive). ok is false for a nil input.
func (r Resolver) Resolve(in Input, executionSeconds float64) (Emissions, bool) {
	switch v := in.(type) {
	case Detailed:
		return Emissions{Record: v.Record, Provenance: ProvenanceMeasured}, true
	case Scalar:
		return Emissions{Record: r.synthesize(float64(v), executionSeconds), Provenance: ProvenanceSynthesized}, true
	default:
		return Emissions{}, false
	}
}

func (r Resolver) synthesize(kg, executionSeconds float64) Record {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	newID := uuid.NewString
	if r.NewID != nil {
		newID = r.NewID
	}

	rate := 0.0
	if executionSeconds > 0 && !math.IsInf(executionSeconds, 0) {
		rate = kg / executionSeconds
	}

	return Record{
		Timestamp:         now().UTC().Format(time.RFC3339),
		ProjectName:       PlaceholderProject,
		RunID:             newID(),
		ExperimentID:      newID(),
		Duration:          executionSeconds,
		Emissions:         kg,
		EmissionsRate:     rate,
		CPUPower:          0.63,
		GPUPower:          0.1,
		RAMPower:          3.0,
		CPUEnergy:         1.78e-10,
		GPUEnergy:         4.73e-8,
		RAMEnergy:         7.31e-10,
		EnergyConsumed:    4.82e-8,
		CountryName:       PlaceholderCountry,
		CountryISOCode:    PlaceholderCountryISO,
		OS:                PlaceholderOS,
		PythonVersion:     PlaceholderPython,
		CodeCarbonVersion: PlaceholderCodeCarbon,
		CPUCount:          8,
		CPUModel:          PlaceholderHardware,
		GPUCount:          1,
		GPUModel:          PlaceholderHardware,
		Longitude:         2.3387,
		Latitude:          48.8582,
		RAMTotalSize:      8,
		TrackingMode:      "machine",
		OnCloud:           "N",
		PUE:               1,
	}
}
