// Package chart turns raw prediction time axes into uniform plotting series.
//
// The prediction service reports timestamps either as raw engine
// milliseconds or as minute counts. Adapt converts a (timestamps, values)
// pair into display labels according to an AxisPolicy, keeping the point
// order and values exactly as received.
package chart

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/econum/cableviz/internal/units"
)

// AxisPolicy selects how timestamps become x-axis labels.
type AxisPolicy int

const (
	// PolicyMinutesLabel converts millisecond timestamps to minute counts
	// and labels them "{minutes} ms". The "ms" suffix on a minute count is
	// the label the dashboard has always shown and is kept as is.
	PolicyMinutesLabel AxisPolicy = iota

	// PolicyFloorLabel labels millisecond timestamps with floor(t), as in
	// the tabular view.
	PolicyFloorLabel

	// PolicyPreLabeledMinutes treats timestamps as minute counts and labels
	// them "{t} min" verbatim.
	PolicyPreLabeledMinutes
)

const msPerMinute = 60000

// String returns the configuration name of the policy.
func (p AxisPolicy) String() string {
	switch p {
	case PolicyMinutesLabel:
		return "minutes-label"
	case PolicyFloorLabel:
		return "floor-label"
	case PolicyPreLabeledMinutes:
		return "prelabeled-minutes"
	default:
		return fmt.Sprintf("AxisPolicy(%d)", int(p))
	}
}

// ParsePolicy parses a policy name as used in configuration files and flags.
func ParsePolicy(s string) (AxisPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minutes-label", "ms-minutes", "":
		return PolicyMinutesLabel, nil
	case "floor-label", "ms-floor":
		return PolicyFloorLabel, nil
	case "prelabeled-minutes", "minutes", "min":
		return PolicyPreLabeledMinutes, nil
	default:
		return 0, fmt.Errorf("unknown axis policy %q: %w", s, ErrUnknownPolicy)
	}
}

// Style carries rendering hints for a series.
type Style struct {
	Name      string `json:"name"`
	LineColor string `json:"line_color"`
	FillColor string `json:"fill_color"`
	Markers   bool   `json:"markers"`
	XTitle    string `json:"x_title"`
	YTitle    string `json:"y_title"`
	Domain    units.Domain
}

// Style presets of the dashboard charts.
//
//nolint:gochecknoglobals // Fixed presets.
var (
	TemperatureStyle = Style{
		Name:      "Température du câble",
		LineColor: "#ea580c",
		FillColor: "#fed7aa",
		Markers:   true,
		XTitle:    "Temps (minutes)",
		YTitle:    "Température (°C)",
		Domain:    units.DomainTemperature,
	}
	EmissionsStyle = Style{
		Name:      "Émissions de CO₂",
		LineColor: "#22c55e",
		FillColor: "#bbf7d0",
		Markers:   true,
		XTitle:    "Temps (minutes)",
		YTitle:    "Émissions (kg CO₂)",
		Domain:    units.DomainMass,
	}
)

// Series is a renderable chart series. Labels and Values have equal length.
type Series struct {
	Labels []string
	Values []float64
	Style  Style
	Policy AxisPolicy
}

// Adapt builds a Series from parallel timestamp and value slices.
//
// It returns an error wrapping ErrInvalidInput when the slices differ in
// length or a timestamp is NaN or infinite; nothing is truncated or
// dropped. Values are copied as received, including non-finite ones, which
// render as "N/A" in tooltips.
//
// Example:
//
//	s, _ := Adapt([]float64{0, 60000, 120000}, []float64{20, 25, 30}, PolicyMinutesLabel)
//	// s.Labels == []string{"0 ms", "1 ms", "2 ms"}
func Adapt(timestamps, values []float64, policy AxisPolicy) (Series, error) {
	if len(timestamps) != len(values) {
		return Series{}, fmt.Errorf("%d timestamps for %d values: %w",
			len(timestamps), len(values), ErrInvalidInput)
	}

	labels := make([]string, len(timestamps))
	for i, ts := range timestamps {
		if math.IsNaN(ts) || math.IsInf(ts, 0) {
			return Series{}, fmt.Errorf("timestamp %d is not finite: %w", i, ErrInvalidInput)
		}
		label, err := labelFor(ts, policy)
		if err != nil {
			return Series{}, err
		}
		labels[i] = label
	}

	vals := make([]float64, len(values))
	copy(vals, values)

	return Series{Labels: labels, Values: vals, Policy: policy}, nil
}

func labelFor(ts float64, policy AxisPolicy) (string, error) {
	switch policy {
	case PolicyMinutesLabel:
		return strconv.FormatFloat(unsignedZero(math.Floor(ts/msPerMinute)), 'f', 0, 64) + " ms", nil
	case PolicyFloorLabel:
		return strconv.FormatFloat(unsignedZero(math.Floor(ts)), 'f', 0, 64), nil
	case PolicyPreLabeledMinutes:
		return strconv.FormatFloat(unsignedZero(ts), 'f', -1, 64) + " min", nil
	default:
		return "", fmt.Errorf("axis policy %d: %w", int(policy), ErrUnknownPolicy)
	}
}

// unsignedZero maps -0 to 0 so labels never read "-0".
func unsignedZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// WithStyle returns a copy of s carrying style.
func (s Series) WithStyle(style Style) Series {
	s.Style = style
	return s
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s.Values)
}

// Points yields (label, value) pairs in input order.
func (s Series) Points() iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for i, v := range s.Values {
			if !yield(s.Labels[i], v) {
				return
			}
		}
	}
}

// Tooltip returns the hover text of point i, formatted in the style domain.
// Temperatures use two decimals, other domains the compact four-tier policy.
func (s Series) Tooltip(i int) string {
	if i < 0 || i >= len(s.Values) {
		return ""
	}
	var value string
	if s.Style.Domain == units.DomainTemperature {
		value = units.FormatTemperature(s.Values[i], units.MaxTemperatureDecimals)
	} else {
		value = units.Format(s.Values[i], s.Style.Domain, units.CompactDecimals)
	}
	return s.Labels[i] + ": " + value
}

// Bounds returns the smallest and largest finite values. ok is false when
// the series has no finite value.
func (s Series) Bounds() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}
