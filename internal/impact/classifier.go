// Package impact buckets telemetry scalars into ordered severity bands.
//
// A single generic Classifier walks an ordered threshold table; the package
// instantiates it twice, once for emissions in kg CO2 (five bands) and once
// for cable temperature in °C (three statuses). Both tables share the same
// monotonic contract: a larger input never maps to an earlier band.
package impact

import (
	"fmt"
	"math"
)

// Closure selects which side of a threshold is included in the lower band.
type Closure int

const (
	// UpperExclusive bands cover [lower, upper): a value equal to a
	// threshold belongs to the next band.
	UpperExclusive Closure = iota

	// UpperInclusive bands cover (lower, upper]: a value equal to a
	// threshold stays in the band it closes.
	UpperInclusive
)

// Threshold closes one band of a table at Upper.
type Threshold[B any] struct {
	Upper float64
	Band  B
}

// Classifier maps a scalar onto ordered bands.
// The zero value is not usable; build instances with NewClassifier.
type Classifier[B any] struct {
	thresholds []Threshold[B]
	top        B
	closure    Closure
}

// NewClassifier builds a classifier from thresholds sorted by strictly
// increasing, finite Upper bounds. Values beyond the last threshold map to
// top. It returns ErrUnorderedThresholds when the table is not ascending
// and ErrEmptyTable when no threshold is given.
func NewClassifier[B any](closure Closure, thresholds []Threshold[B], top B) (*Classifier[B], error) {
	if len(thresholds) == 0 {
		return nil, ErrEmptyTable
	}
	for i, th := range thresholds {
		if math.IsNaN(th.Upper) || math.IsInf(th.Upper, 0) {
			return nil, fmt.Errorf("threshold %d is not finite: %w", i, ErrUnorderedThresholds)
		}
		if i > 0 && th.Upper <= thresholds[i-1].Upper {
			return nil, fmt.Errorf("threshold %d (%g) does not exceed %g: %w",
				i, th.Upper, thresholds[i-1].Upper, ErrUnorderedThresholds)
		}
	}

	table := make([]Threshold[B], len(thresholds))
	copy(table, thresholds)
	return &Classifier[B]{thresholds: table, top: top, closure: closure}, nil
}

// mustClassifier is used for the package tables, which are known to be valid.
func mustClassifier[B any](closure Closure, thresholds []Threshold[B], top B) *Classifier[B] {
	c, err := NewClassifier(closure, thresholds, top)
	if err != nil {
		panic(err)
	}
	return c
}

// Classify returns the band containing v. NaN classifies into the first band.
func (c *Classifier[B]) Classify(v float64) B {
	return c.bandAt(c.Index(v))
}

// Index returns the position of the band containing v, from 0 (first band)
// to Len()-1 (top band).
func (c *Classifier[B]) Index(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	for i, th := range c.thresholds {
		if c.below(v, th.Upper) {
			return i
		}
	}
	return len(c.thresholds)
}

// Len returns the number of bands, including the top band.
func (c *Classifier[B]) Len() int {
	return len(c.thresholds) + 1
}

func (c *Classifier[B]) below(v, upper float64) bool {
	if c.closure == UpperInclusive {
		return v <= upper
	}
	return v < upper
}

func (c *Classifier[B]) bandAt(i int) B {
	if i >= len(c.thresholds) {
		return c.top
	}
	return c.thresholds[i].Band
}
