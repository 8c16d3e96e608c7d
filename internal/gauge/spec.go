// Package gauge maps a bounded temperature onto a half-circle gauge.
//
// Planning is pure: Planner.Plan turns a value and a surface geometry into
// an ordered list of drawing commands (arcs, tick lines, text). Renderer is
// a thin adapter that acquires a Surface, replays the plan phase by phase
// and releases the surface again.
package gauge

import (
	"fmt"
	"math"
	"strconv"
)

// Default gauge domain.
const (
	DefaultDomainMax  = 120.0
	DefaultMajorEvery = 30.0
)

// Tick is a graduation of the gauge. Major ticks are longer and thicker;
// a tick with a Label gets its text drawn next to it.
type Tick struct {
	Value float64
	Label string
	Major bool
}

// Spec is the immutable description of one gauge instance.
type Spec struct {
	// DomainMax is the value at the right end of the arc. The left end is 0.
	DomainMax float64

	// Ticks are drawn in order. Majors come first in the default layout.
	Ticks []Tick

	// Clamp limits the mapped value to [0, DomainMax]. When false, values
	// outside the domain are mapped as-is and overshoot the arc; callers
	// needing a bounded needle must clamp before rendering.
	Clamp bool
}

// DefaultSpec returns the 0..120 °C gauge with labelled major ticks every
// 30 units and unlabelled minor ticks halfway between them.
func DefaultSpec() Spec {
	s, err := NewSpec(DefaultDomainMax, DefaultMajorEvery)
	if err != nil {
		panic(err)
	}
	return s
}

// NewSpec builds a spec over [0, domainMax] with major ticks at multiples of
// majorEvery (labelled "N°") and minor ticks at majorEvery/2 + k*majorEvery.
func NewSpec(domainMax, majorEvery float64) (Spec, error) {
	if !(domainMax > 0) || math.IsInf(domainMax, 0) {
		return Spec{}, fmt.Errorf("domain max %v: %w", domainMax, ErrInvalidSpec)
	}
	if !(majorEvery > 0) || math.IsInf(majorEvery, 0) || majorEvery > domainMax {
		return Spec{}, fmt.Errorf("major tick interval %v for max %v: %w", majorEvery, domainMax, ErrInvalidSpec)
	}

	var ticks []Tick
	const eps = 1e-9
	for v := 0.0; v <= domainMax+eps; v += majorEvery {
		ticks = append(ticks, Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64) + "°", Major: true})
	}
	for v := majorEvery / 2; v < domainMax-eps; v += majorEvery {
		ticks = append(ticks, Tick{Value: v})
	}
	return Spec{DomainMax: domainMax, Ticks: ticks}, nil
}

// Validate reports whether s can be planned.
func (s Spec) Validate() error {
	if !(s.DomainMax > 0) || math.IsInf(s.DomainMax, 0) {
		return fmt.Errorf("domain max %v: %w", s.DomainMax, ErrInvalidSpec)
	}
	for i, t := range s.Ticks {
		if math.IsNaN(t.Value) || math.IsInf(t.Value, 0) {
			return fmt.Errorf("tick %d is not finite: %w", i, ErrInvalidSpec)
		}
	}
	return nil
}

// Angle maps v over [0, domainMax] to θ = π − (v/domainMax)·π: π at the left
// end, 0 at the right end. Values outside the domain are not clamped.
func Angle(v, domainMax float64) float64 {
	return math.Pi - (v/domainMax)*math.Pi
}
