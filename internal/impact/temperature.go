package impact

import (
	"fmt"
	"math"
)

// TemperatureStatus is the badge status of a cable temperature.
type TemperatureStatus int

const (
	// StatusSafe is a temperature at or below the warning threshold.
	StatusSafe TemperatureStatus = iota
	// StatusWarning is a temperature above warning and at or below danger.
	StatusWarning
	// StatusDanger is a temperature above the danger threshold.
	StatusDanger
)

// String returns the lowercase status name used in logs and badges.
func (s TemperatureStatus) String() string {
	switch s {
	case StatusSafe:
		return "safe"
	case StatusWarning:
		return "warning"
	case StatusDanger:
		return "danger"
	default:
		return fmt.Sprintf("TemperatureStatus(%d)", s)
	}
}

// Default temperature thresholds in °C.
const (
	DefaultWarningCelsius = 70.0
	DefaultDangerCelsius  = 90.0
)

// TemperatureClassifier classifies cable temperatures.
type TemperatureClassifier struct {
	c       *Classifier[TemperatureStatus]
	warning float64
	danger  float64
}

// NewTemperatureClassifier builds a classifier with Safe ≤ warning,
// Warning ≤ danger and Danger above. warning must be below danger.
func NewTemperatureClassifier(warning, danger float64) (*TemperatureClassifier, error) {
	c, err := NewClassifier(UpperInclusive, []Threshold[TemperatureStatus]{
		{Upper: warning, Band: StatusSafe},
		{Upper: danger, Band: StatusWarning},
	}, StatusDanger)
	if err != nil {
		return nil, fmt.Errorf("temperature thresholds: %w", err)
	}
	return &TemperatureClassifier{c: c, warning: warning, danger: danger}, nil
}

// Classify returns the status of a temperature. NaN is StatusSafe.
func (t *TemperatureClassifier) Classify(celsius float64) TemperatureStatus {
	return t.c.Classify(celsius)
}

// Thresholds returns the warning and danger thresholds.
func (t *TemperatureClassifier) Thresholds() (warning, danger float64) {
	return t.warning, t.danger
}

// PeakStatus returns the highest finite temperature of temps and its
// status. ok is false when temps holds no finite value.
func (t *TemperatureClassifier) PeakStatus(temps []float64) (peak float64, status TemperatureStatus, ok bool) {
	peak = math.Inf(-1)
	for _, v := range temps {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v > peak {
			peak = v
			ok = true
		}
	}
	if !ok {
		return 0, StatusSafe, false
	}
	return peak, t.Classify(peak), true
}

//nolint:gochecknoglobals // Immutable classifier over the default thresholds.
var defaultTemperature = func() *TemperatureClassifier {
	c, err := NewTemperatureClassifier(DefaultWarningCelsius, DefaultDangerCelsius)
	if err != nil {
		panic(err)
	}
	return c
}()

// DefaultTemperatureClassifier returns the classifier with the 70/90 °C thresholds.
func DefaultTemperatureClassifier() *TemperatureClassifier {
	return defaultTemperature
}

// ClassifyTemperature classifies with the default thresholds:
// Safe ≤70, Warning ≤90, Danger >90.
func ClassifyTemperature(celsius float64) TemperatureStatus {
	return defaultTemperature.Classify(celsius)
}

// PeakStatus applies the default classifier to the hottest sample of temps.
func PeakStatus(temps []float64) (float64, TemperatureStatus, bool) {
	return defaultTemperature.PeakStatus(temps)
}
