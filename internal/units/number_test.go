package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{n: 123, want: "123"},
		{n: 1234, want: "1,234"},
		{n: 1234567, want: "1,234,567"},
		{n: 0, want: "0"},
		{n: -1234, want: "-1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.n))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name      string
		f         float64
		precision int
		want      string
	}{
		{name: "round to integer", f: 18248.56, precision: 0, want: "18,249"},
		{name: "one decimal place", f: 781.25, precision: 1, want: "781.2"},
		{name: "two decimal places", f: 1234.567, precision: 2, want: "1,234.57"},
		{name: "small value", f: 0.42, precision: 2, want: "0.42"},
		{name: "negative keeps sign", f: -1234.5, precision: 1, want: "-1,234.5"},
		{name: "negative below one keeps sign", f: -0.5, precision: 1, want: "-0.5"},
		{name: "negative rounding to zero drops sign", f: -0.001, precision: 1, want: "0.0"},
		{name: "NaN", f: math.NaN(), precision: 2, want: NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.f, tt.precision))
		})
	}
}
