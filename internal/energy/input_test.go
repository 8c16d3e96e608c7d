package energy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econum/cableviz/internal/energy"
)

func fixedResolver() energy.Resolver {
	return energy.Resolver{
		Now:   func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
		NewID: func() string { return "00000000-0000-4000-8000-000000000000" },
	}
}

func TestResolve_Detailed(t *testing.T) {
	rec := energy.Record{RunID: "abc", Emissions: 0.02, CPUModel: "Xeon"}
	e, ok := fixedResolver().Resolve(energy.Detailed{Record: rec}, 3)
	require.True(t, ok)
	assert.Equal(t, energy.ProvenanceMeasured, e.Provenance)
	assert.False(t, e.Approximate())
	assert.Equal(t, rec, e.Record)
}

func TestResolve_Scalar(t *testing.T) {
	e, ok := fixedResolver().Resolve(energy.Scalar(0.5), 2)
	require.True(t, ok)

	assert.True(t, e.Approximate())
	assert.Equal(t, "synthesized", e.Provenance.String())

	r := e.Record
	assert.InDelta(t, 0.5, r.Emissions, 1e-12)
	assert.InDelta(t, 0.25, r.EmissionsRate, 1e-12)
	assert.InDelta(t, 2.0, r.Duration, 1e-12)
	assert.Equal(t, "2026-03-01T12:00:00Z", r.Timestamp)
	assert.Equal(t, "00000000-0000-4000-8000-000000000000", r.RunID)
	assert.Equal(t, energy.PlaceholderProject, r.ProjectName)
	assert.Equal(t, "FRA", r.CountryISOCode)
	assert.Equal(t, "Apple M2", r.CPUModel)
	assert.Equal(t, 1, r.GPUCount)
	assert.InDelta(t, 4.82e-8, r.EnergyConsumed, 1e-20)
}

func TestResolve_ScalarWithoutDuration(t *testing.T) {
	for _, exec := range []float64{0, -1} {
		e, ok := fixedResolver().Resolve(energy.Scalar(0.5), exec)
		require.True(t, ok)
		assert.Zero(t, e.Record.EmissionsRate, "execution %v", exec)
	}
}

func TestResolve_Nil(t *testing.T) {
	_, ok := energy.Resolver{}.Resolve(nil, 1)
	assert.False(t, ok)
}

func TestResolve_DefaultIDs(t *testing.T) {
	e, ok := energy.Resolver{}.Resolve(energy.Scalar(1), 1)
	require.True(t, ok)
	assert.Len(t, e.Record.RunID, 36)
	assert.NotEqual(t, e.Record.RunID, e.Record.ExperimentID)
}
