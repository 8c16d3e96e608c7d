package energy

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/econum/cableviz/internal/units"
)

// View selects a group of record fields.
type View int

// Field groups.
const (
	ViewSummary View = iota
	ViewEnergy
	ViewHardware
)

// Views lists every view in tab order.
func Views() []View { return []View{ViewSummary, ViewEnergy, ViewHardware} }

// String returns the tab title.
func (v View) String() string {
	switch v {
	case ViewSummary:
		return "Résumé"
	case ViewEnergy:
		return "Énergie"
	case ViewHardware:
		return "Matériel"
	default:
		return "unknown"
	}
}

// ParseView accepts "summary", "energy" or "hardware".
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "summary", "resume", "résumé":
		return ViewSummary, nil
	case "energy", "energie", "énergie":
		return ViewEnergy, nil
	case "hardware", "materiel", "matériel":
		return ViewHardware, nil
	default:
		return ViewSummary, fmt.Errorf("view %q: %w", s, ErrUnknownView)
	}
}

// Field is one labelled display value.
type Field struct {
	Label string
	Value string
}

// DefaultDecimals is the precision of bracketed energy and mass values.
const DefaultDecimals = 6

// ramMiBThreshold separates RAM sizes reported in MiB from sizes in GiB.
const ramMiBThreshold = 1024

// NoGPU is shown when the run used no GPU.
const NoGPU = "Aucun"

// Fields returns the fields of view for e. Each field belongs to exactly
// one view. decimals applies to bracketed energy, mass and rate values.
func Fields(e Emissions, view View, decimals int) []Field {
	r := e.Record
	switch view {
	case ViewSummary:
		b := NewBreakdown(r)
		fields := []Field{
			{Label: "Durée", Value: seconds(r.Duration)},
			{Label: "Émissions CO₂", Value: units.Format(r.Emissions, units.DomainMass, decimals)},
		}
		for _, s := range b.Shares {
			fields = append(fields, Field{Label: s.Label(), Value: units.Format(s.Energy, units.DomainEnergy, decimals)})
		}
		return append(fields,
			Field{Label: "Localisation", Value: fmt.Sprintf("%s (%s)", r.CountryName, r.CountryISOCode)},
			Field{Label: "Coordonnées", Value: fmt.Sprintf("Lat: %s, Long: %s", coord(r.Latitude), coord(r.Longitude))},
		)
	case ViewEnergy:
		return []Field{
			{Label: "Énergie totale consommée", Value: units.Format(r.EnergyConsumed, units.DomainEnergy, decimals)},
			{Label: "Taux d'émission", Value: units.Format(r.EmissionsRate, units.DomainEmissionRate, decimals)},
			{Label: "Puissance CPU", Value: power(r.CPUPower)},
			{Label: "Puissance GPU", Value: power(r.GPUPower)},
			{Label: "Puissance RAM", Value: power(r.RAMPower)},
			{Label: "Facteur PUE", Value: coord(r.PUE)},
		}
	case ViewHardware:
		return []Field{
			{Label: "CPU", Value: fmt.Sprintf("%s (%d cœurs)", r.CPUModel, r.CPUCount)},
			{Label: "GPU", Value: gpu(r)},
			{Label: "RAM totale", Value: ram(r.RAMTotalSize)},
			{Label: "OS", Value: r.OS},
			{Label: "Python", Value: version(r.PythonVersion)},
			{Label: "CodeCarbon", Value: version(r.CodeCarbonVersion)},
			{Label: "Suivi", Value: tracking(r)},
		}
	default:
		return nil
	}
}

func power(w float64) string {
	if !units.IsValid(w, units.DomainPower) {
		return units.NotAvailable
	}
	return strconv.FormatFloat(w, 'f', 2, 64) + " W"
}

func seconds(d float64) string {
	if !units.IsValid(d, units.DomainDuration) {
		return units.NotAvailable
	}
	return strconv.FormatFloat(d, 'f', 2, 64) + " s"
}

func coord(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return units.NotAvailable
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func gpu(r Record) string {
	if r.GPUCount <= 0 {
		return NoGPU
	}
	return fmt.Sprintf("%s (%d)", r.GPUModel, r.GPUCount)
}

// ram renders a RAM size in Go. CodeCarbon reports GiB; sizes of 1024 and
// more are taken as MiB.
func ram(size float64) string {
	if !(size >= 0) || math.IsInf(size, 0) {
		return units.NotAvailable
	}
	if size >= ramMiBThreshold {
		size /= 1024
	}
	return strconv.FormatFloat(size, 'f', 1, 64) + " Go"
}

// version normalises a dotted version ("3.0" -> "v3.0.0"); unparsable
// strings are shown as-is.
func version(s string) string {
	if s == "" {
		return units.NotAvailable
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return s
	}
	return "v" + v.String()
}

func tracking(r Record) string {
	mode := r.TrackingMode
	if mode == "" {
		mode = units.NotAvailable
	}
	if strings.EqualFold(r.OnCloud, "Y") {
		return fmt.Sprintf("%s, cloud %s %s", mode, r.CloudProvider, r.CloudRegion)
	}
	return mode
}
