package canvas_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econum/cableviz/internal/canvas"
	"github.com/econum/cableviz/internal/gauge"
)

func lines(s string) []string { return strings.Split(s, "\n") }

func TestNewRaster_Blank(t *testing.T) {
	r := canvas.NewRaster(10, 3, 0, 0)
	cols, rows := r.Cells()
	assert.Equal(t, 10, cols)
	assert.Equal(t, 3, rows)

	w, h := r.Size()
	assert.InDelta(t, 20.0, w, 1e-9)
	assert.InDelta(t, 12.0, h, 1e-9)

	out := lines(r.String())
	require.Len(t, out, 3)
	for _, l := range out {
		assert.Equal(t, strings.Repeat(" ", 10), l)
	}
}

func TestRaster_LinePlotsBraille(t *testing.T) {
	r := canvas.NewRaster(4, 1, 8, 4)
	r.Line(0, 0, 7.9, 0, 1, "#ffffff")

	out := r.String()
	// Top dot row lit in every cell: bits 0x01|0x08.
	assert.Equal(t, strings.Repeat(string(rune(0x2809)), 4), out)
	assert.Equal(t, 1, r.Primitives())
}

func TestRaster_TextOverlay(t *testing.T) {
	r := canvas.NewRaster(10, 2, 20, 8)
	r.Text(10, 5, "hey", "", "#000000")

	out := lines(r.String())
	require.Len(t, out, 2)
	assert.Equal(t, strings.Repeat(" ", 10), out[0])
	assert.Equal(t, "    hey   ", out[1])
}

func TestRaster_TextStaysInside(t *testing.T) {
	r := canvas.NewRaster(6, 1, 12, 4)
	r.Text(0, 100, "abcd", "", "")
	assert.Equal(t, "abcd  ", r.String())

	r.Clear()
	r.Text(12, -3, "abcd", "", "")
	assert.Equal(t, "  abcd", r.String())
}

func TestRaster_ArcZeroLengthDrawsNothing(t *testing.T) {
	r := canvas.NewRaster(20, 5, 40, 20)
	r.Arc(20, 20, 10, math.Pi, math.Pi, 4, "#ef4444")
	assert.Empty(t, strings.TrimSpace(r.String()))
	assert.Equal(t, 1, r.Primitives())
}

func TestRaster_ArcDrawsUpperHalf(t *testing.T) {
	r := canvas.NewRaster(20, 5, 40, 20)
	r.Arc(20, 20, 10, math.Pi, 0, 2, "#e5e7eb")

	out := lines(r.String())
	require.Len(t, out, 5)
	assert.NotEqual(t, strings.Repeat(" ", 20), out[2], "arc reaches the middle rows")
	assert.Equal(t, strings.Repeat(" ", 20), out[0], "arc stays below the top of its radius")
}

func TestRaster_ClearPurges(t *testing.T) {
	r := canvas.NewRaster(6, 2, 0, 0)
	r.Line(0, 0, 11, 7, 1, "")
	r.Text(6, 0, "x", "", "")
	require.NotEmpty(t, strings.TrimSpace(r.String()))

	r.Clear()
	assert.Empty(t, strings.TrimSpace(r.String()))
	assert.Zero(t, r.Primitives())
}

func TestRaster_RenderColorless(t *testing.T) {
	r := canvas.NewRaster(4, 1, 8, 4)
	r.Line(0, 0, 7.9, 0, 1, "#ffffff")
	assert.Equal(t, r.String(), r.Render(false))
	assert.Contains(t, r.Render(true), string(rune(0x2809)))
}

func TestRaster_DrawsGauge(t *testing.T) {
	raster := canvas.NewRaster(60, 15, 300, 150)
	m := canvas.NewMount(raster)
	r, err := gauge.NewRenderer(m, gauge.DefaultSpec(), gauge.WithLayout(gauge.FitOutsideLabels))
	require.NoError(t, err)

	plan, ok := r.Render(95)
	require.True(t, ok)
	assert.Equal(t, len(plan.Commands)-1, raster.Primitives(), "every command but the clear")

	out := raster.String()
	assert.Contains(t, out, "95.0°C")
	assert.Contains(t, out, "120°")
	assert.Contains(t, out, "0°")
	assert.False(t, m.Held(), "surface is released after the cycle")
}
