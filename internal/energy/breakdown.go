package energy

import (
	"math"
	"strconv"
)

// Source is an energy consumer of a run.
type Source int

// Energy sources, in display order.
const (
	SourceCPU Source = iota
	SourceGPU
	SourceRAM
)

func (s Source) String() string {
	switch s {
	case SourceCPU:
		return "CPU"
	case SourceGPU:
		return "GPU"
	case SourceRAM:
		return "RAM"
	default:
		return "unknown"
	}
}

// Share is the part of the total energy used by one source.
type Share struct {
	Source  Source
	Energy  float64 // kWh
	Percent float64 // 0..100
}

// Label returns "CPU (12.3%)" style text.
func (s Share) Label() string {
	return s.Source.String() + " (" + strconv.FormatFloat(s.Percent, 'f', 1, 64) + "%)"
}

// Width returns the number of cells out of cols a proportional bar of this
// share fills.
func (s Share) Width(cols int) int {
	if cols <= 0 || !(s.Percent > 0) {
		return 0
	}
	w := int(math.Round(s.Percent / 100 * float64(cols)))
	return min(max(w, 0), cols)
}

// Breakdown splits the energy of a record over its sources.
type Breakdown struct {
	Total  float64
	Shares [3]Share
}

// NewBreakdown computes per-source shares of cpu+gpu+ram energy. Sources
// that are negative or not finite are left out of the total and get 0%.
// When the total is zero every percentage is 0.
func NewBreakdown(r Record) Breakdown {
	energies := [3]float64{r.CPUEnergy, r.GPUEnergy, r.RAMEnergy}

	var b Breakdown
	for i, e := range energies {
		b.Shares[i] = Share{Source: Source(i), Energy: e}
		if validEnergy(e) {
			b.Total += e
		}
	}
	if !(b.Total > 0) || math.IsInf(b.Total, 0) {
		return b
	}
	for i, e := range energies {
		if validEnergy(e) {
			b.Shares[i].Percent = e / b.Total * 100
		}
	}
	return b
}

func validEnergy(e float64) bool {
	return e >= 0 && !math.IsInf(e, 0)
}

// Share returns the share of s.
func (b Breakdown) Share(s Source) Share {
	if s < SourceCPU || s > SourceRAM {
		return Share{Source: s}
	}
	return b.Shares[s]
}
