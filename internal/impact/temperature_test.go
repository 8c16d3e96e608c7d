package impact

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTemperature(t *testing.T) {
	tests := []struct {
		celsius float64
		want    TemperatureStatus
	}{
		{celsius: -20, want: StatusSafe},
		{celsius: 25, want: StatusSafe},
		{celsius: 70, want: StatusSafe},
		{celsius: 70.01, want: StatusWarning},
		{celsius: 90, want: StatusWarning},
		{celsius: 90.01, want: StatusDanger},
		{celsius: 95, want: StatusDanger},
		{celsius: math.NaN(), want: StatusSafe},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTemperature(tt.celsius), "celsius=%v", tt.celsius)
		})
	}
}

func TestNewTemperatureClassifier(t *testing.T) {
	t.Run("custom thresholds", func(t *testing.T) {
		c, err := NewTemperatureClassifier(50, 60)
		require.NoError(t, err)
		assert.Equal(t, StatusWarning, c.Classify(55))
		assert.Equal(t, StatusDanger, c.Classify(61))
		w, d := c.Thresholds()
		assert.InDelta(t, 50.0, w, 0)
		assert.InDelta(t, 60.0, d, 0)
	})

	t.Run("warning must be below danger", func(t *testing.T) {
		_, err := NewTemperatureClassifier(90, 70)
		require.ErrorIs(t, err, ErrUnorderedThresholds)
	})
}

func TestPeakStatus(t *testing.T) {
	t.Run("uses hottest finite sample", func(t *testing.T) {
		peak, status, ok := PeakStatus([]float64{25, 60, math.NaN(), 91.5, 80})
		require.True(t, ok)
		assert.InDelta(t, 91.5, peak, 0)
		assert.Equal(t, StatusDanger, status)
	})

	t.Run("all sub-zero", func(t *testing.T) {
		peak, status, ok := PeakStatus([]float64{-10, -3})
		require.True(t, ok)
		assert.InDelta(t, -3.0, peak, 0)
		assert.Equal(t, StatusSafe, status)
	})

	t.Run("empty series", func(t *testing.T) {
		_, _, ok := PeakStatus(nil)
		assert.False(t, ok)
	})

	t.Run("only invalid samples", func(t *testing.T) {
		_, _, ok := PeakStatus([]float64{math.NaN(), math.Inf(1)})
		assert.False(t, ok)
	})
}
