package gauge_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econum/cableviz/internal/gauge"
	"github.com/econum/cableviz/internal/impact"
)

func commandsIn(p gauge.Plan, phase gauge.State) []gauge.Command {
	var out []gauge.Command
	for _, c := range p.Commands {
		if c.Phase == phase {
			out = append(out, c)
		}
	}
	return out
}

func TestPlan_DangerValue(t *testing.T) {
	p := gauge.Compute(95, gauge.DefaultSpec(), gauge.Fit(300, 150))

	assert.Equal(t, impact.StatusDanger, p.Status)
	assert.Equal(t, gauge.ColorDanger, p.Color)
	assert.InDelta(t, math.Pi*25/120, p.Angle, 1e-12)
	assert.Equal(t, "95.0°C", p.Label)

	value := commandsIn(p, gauge.StateValueArcDrawn)
	require.Len(t, value, 1)
	assert.Equal(t, gauge.OpArc, value[0].Op)
	assert.Equal(t, gauge.ColorDanger, value[0].Color)
	assert.InDelta(t, math.Pi, value[0].Start, 1e-12)
	assert.InDelta(t, p.Angle, value[0].End, 1e-12)
}

func TestPlan_StatusColors(t *testing.T) {
	geo := gauge.Fit(300, 150)
	tests := []struct {
		v     float64
		color string
	}{
		{25, gauge.ColorSafe},
		{70, gauge.ColorSafe},
		{70.01, gauge.ColorWarning},
		{90, gauge.ColorWarning},
		{90.01, gauge.ColorDanger},
		{-10, gauge.ColorSafe},
	}
	for _, tt := range tests {
		p := gauge.Compute(tt.v, gauge.DefaultSpec(), geo)
		assert.Equal(t, tt.color, p.Color, "value %v", tt.v)
	}
}

func TestPlan_ZeroDegeneratesToZeroLengthArc(t *testing.T) {
	p := gauge.Compute(0, gauge.DefaultSpec(), gauge.Fit(300, 150))

	value := commandsIn(p, gauge.StateValueArcDrawn)
	require.Len(t, value, 1)
	assert.InDelta(t, math.Pi, value[0].Start, 1e-12)
	assert.InDelta(t, math.Pi, value[0].End, 1e-12)
	assert.Equal(t, "0.0°C", p.Label)
}

func TestPlan_NaN(t *testing.T) {
	p := gauge.Compute(math.NaN(), gauge.DefaultSpec(), gauge.Fit(300, 150))
	assert.InDelta(t, math.Pi, p.Angle, 1e-12)
	assert.Equal(t, "N/A", p.Label)
	assert.Equal(t, gauge.ColorSafe, p.Color)
}

func TestPlan_Overshoot(t *testing.T) {
	spec := gauge.DefaultSpec()
	geo := gauge.Fit(300, 150)

	p := gauge.Compute(150, spec, geo)
	assert.Less(t, p.Angle, 0.0, "unclamped values overshoot the right end")

	spec.Clamp = true
	p = gauge.Compute(150, spec, geo)
	assert.InDelta(t, 0.0, p.Angle, 1e-12)
	assert.Equal(t, "150.0°C", p.Label, "label keeps the raw value")
	assert.Equal(t, gauge.ColorDanger, p.Color)

	p = gauge.Compute(-20, spec, geo)
	assert.InDelta(t, math.Pi, p.Angle, 1e-12)
}

func TestPlan_CommandOrder(t *testing.T) {
	spec := gauge.DefaultSpec()
	p := gauge.Compute(42, spec, gauge.Fit(300, 150))

	require.NotEmpty(t, p.Commands)
	assert.Equal(t, gauge.OpClear, p.Commands[0].Op)
	for i := 1; i < len(p.Commands); i++ {
		assert.GreaterOrEqual(t, p.Commands[i].Phase, p.Commands[i-1].Phase, "phases never go backwards")
	}

	bg := commandsIn(p, gauge.StateBackgroundArcDrawn)
	require.Len(t, bg, 1)
	assert.Equal(t, gauge.ColorBackground, bg[0].Color)
	assert.InDelta(t, math.Pi, bg[0].Start, 1e-12)
	assert.InDelta(t, 0.0, bg[0].End, 1e-12)

	ticks := commandsIn(p, gauge.StateTicksDrawn)
	var lines, texts int
	for _, c := range ticks {
		switch c.Op {
		case gauge.OpLine:
			lines++
		case gauge.OpText:
			texts++
		}
	}
	assert.Equal(t, len(spec.Ticks), lines)
	assert.Equal(t, 5, texts)

	label := commandsIn(p, gauge.StateLabelDrawn)
	require.Len(t, label, 1)
	assert.Equal(t, "42.0°C", label[0].Text)
	assert.Equal(t, gauge.ColorLabel, label[0].Color)
	assert.InDelta(t, 120.0, label[0].Y, 1e-9, "label sits half a radius above the centre")
}

func TestPlan_TickGeometry(t *testing.T) {
	p := gauge.Compute(0, gauge.DefaultSpec(), gauge.Fit(300, 150))

	var first gauge.Command
	for _, c := range p.Commands {
		if c.Op == gauge.OpLine {
			first = c
			break
		}
	}
	// Major tick at 0 lies on the left horizontal, pointing inwards.
	assert.InDelta(t, 100.0, first.X, 1e-9)
	assert.InDelta(t, 150.0, first.Y, 1e-9)
	assert.InDelta(t, 115.0, first.X2, 1e-9)
	assert.InDelta(t, 2.0, first.Width, 1e-9)
	assert.Equal(t, gauge.ColorTick, first.Color)
}

func TestPlan_CustomClassifier(t *testing.T) {
	c, err := impact.NewTemperatureClassifier(40, 50)
	require.NoError(t, err)

	p := gauge.Planner{Spec: gauge.DefaultSpec(), Classifier: c}.Plan(45, gauge.Fit(300, 150))
	assert.Equal(t, impact.StatusWarning, p.Status)
}

func TestPlan_Deterministic(t *testing.T) {
	geo := gauge.Fit(300, 150)
	assert.Equal(t, gauge.Compute(77.7, gauge.DefaultSpec(), geo), gauge.Compute(77.7, gauge.DefaultSpec(), geo))
}
