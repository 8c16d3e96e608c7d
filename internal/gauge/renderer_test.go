package gauge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econum/cableviz/internal/gauge"
)

type call struct {
	op    string
	color string
	text  string
}

type recordingSurface struct {
	w, h  float64
	calls []call
}

func (s *recordingSurface) Clear() { s.calls = s.calls[:0]; s.calls = append(s.calls, call{op: "clear"}) }
func (s *recordingSurface) Arc(_, _, _, _, _, _ float64, color string) {
	s.calls = append(s.calls, call{op: "arc", color: color})
}
func (s *recordingSurface) Line(_, _, _, _, _ float64, color string) {
	s.calls = append(s.calls, call{op: "line", color: color})
}
func (s *recordingSurface) Text(_, _ float64, text, _, color string) {
	s.calls = append(s.calls, call{op: "text", text: text, color: color})
}
func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }

type fakeSource struct {
	surface  *recordingSurface
	ready    bool
	acquired int
	released int
	detached bool
}

func (f *fakeSource) Acquire() (gauge.Surface, bool) {
	if !f.ready {
		return nil, false
	}
	f.acquired++
	return f.surface, true
}

func (f *fakeSource) Release(gauge.Surface) { f.released++ }
func (f *fakeSource) Detach()               { f.detached = true }

func newSource() *fakeSource {
	return &fakeSource{surface: &recordingSurface{w: 300, h: 150}, ready: true}
}

func TestRenderer_FullCycle(t *testing.T) {
	src := newSource()
	r, err := gauge.NewRenderer(src, gauge.DefaultSpec())
	require.NoError(t, err)
	assert.Equal(t, gauge.StateIdle, r.State())
	assert.Nil(t, r.LastCycle())

	plan, ok := r.Render(95)
	require.True(t, ok)
	assert.Equal(t, gauge.ColorDanger, plan.Color)

	assert.Equal(t, []gauge.State{
		gauge.StateIdle,
		gauge.StateCleared,
		gauge.StateBackgroundArcDrawn,
		gauge.StateValueArcDrawn,
		gauge.StateTicksDrawn,
		gauge.StateLabelDrawn,
		gauge.StateIdle,
	}, r.LastCycle())
	assert.Equal(t, gauge.StateIdle, r.State())

	assert.Equal(t, 1, src.acquired)
	assert.Equal(t, 1, src.released)

	calls := src.surface.calls
	require.Len(t, calls, len(plan.Commands))
	assert.Equal(t, "clear", calls[0].op)
	assert.Equal(t, call{op: "arc", color: gauge.ColorBackground}, calls[1])
	assert.Equal(t, call{op: "arc", color: gauge.ColorDanger}, calls[2])
	assert.Equal(t, call{op: "text", text: "95.0°C", color: gauge.ColorLabel}, calls[len(calls)-1])
}

func TestRenderer_SurfaceUnavailable(t *testing.T) {
	src := newSource()
	src.ready = false
	r, err := gauge.NewRenderer(src, gauge.DefaultSpec())
	require.NoError(t, err)

	_, ok := r.Render(50)
	assert.False(t, ok)
	assert.Nil(t, r.LastCycle())
	assert.Equal(t, gauge.StateIdle, r.State())
	assert.Zero(t, src.released)
	assert.Empty(t, src.surface.calls)
}

func TestRenderer_NilSource(t *testing.T) {
	r, err := gauge.NewRenderer(nil, gauge.DefaultSpec())
	require.NoError(t, err)
	_, ok := r.Render(50)
	assert.False(t, ok)
	r.Close()
}

func TestRenderer_RerenderPurges(t *testing.T) {
	src := newSource()
	r, err := gauge.NewRenderer(src, gauge.DefaultSpec())
	require.NoError(t, err)

	first, ok := r.Render(95)
	require.True(t, ok)
	second, ok := r.Render(20)
	require.True(t, ok)

	assert.Len(t, src.surface.calls, len(second.Commands), "no overlay from the previous render")
	assert.Equal(t, len(first.Commands), len(second.Commands))
	assert.Equal(t, call{op: "arc", color: gauge.ColorSafe}, src.surface.calls[2])
	assert.Equal(t, 2, src.acquired)
	assert.Equal(t, 2, src.released)
}

func TestRenderer_Close(t *testing.T) {
	src := newSource()
	r, err := gauge.NewRenderer(src, gauge.DefaultSpec())
	require.NoError(t, err)

	r.Close()
	assert.True(t, src.detached)

	_, ok := r.Render(10)
	assert.False(t, ok)
	assert.Zero(t, src.acquired)

	r.Close()
}

func TestRenderer_InvalidSpec(t *testing.T) {
	_, err := gauge.NewRenderer(newSource(), gauge.Spec{})
	require.ErrorIs(t, err, gauge.ErrInvalidSpec)
}

func TestRenderer_CustomLayout(t *testing.T) {
	src := newSource()
	var gotW, gotH float64
	r, err := gauge.NewRenderer(src, gauge.DefaultSpec(), gauge.WithLayout(func(w, h float64) gauge.Geometry {
		gotW, gotH = w, h
		return gauge.FitOutsideLabels(w, h)
	}))
	require.NoError(t, err)

	_, ok := r.Render(60)
	require.True(t, ok)
	assert.InDelta(t, 300.0, gotW, 1e-9)
	assert.InDelta(t, 150.0, gotH, 1e-9)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", gauge.StateIdle.String())
	assert.Equal(t, "ticks-drawn", gauge.StateTicksDrawn.String())
	assert.Equal(t, "unknown", gauge.State(99).String())
	assert.Equal(t, "arc", gauge.OpArc.String())
}
