package history_test

import (
	"context"
	"database/sql"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econum/cableviz/internal/history"
)

func openStore(t *testing.T) (*history.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "history.db")
	s, err := history.Open(context.Background(), path, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestRecordAndList(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	id, err := s.Record(ctx, history.Entry{
		RecordedAt:  base,
		Source:      "a.json",
		Samples:     3,
		PeakCelsius: 95,
		Status:      "danger",
		EmissionsKg: 5e-7,
		Band:        "Très faible",
		Provenance:  "synthesized",
		TraceID:     "01TRACE",
	})
	require.NoError(t, err)
	_, err = ulid.ParseStrict(id)
	require.NoError(t, err)

	_, err = s.Record(ctx, history.Entry{
		RecordedAt:  base.Add(time.Minute),
		Source:      "b.json",
		PeakCelsius: math.NaN(),
		Status:      "safe",
		EmissionsKg: math.NaN(),
	})
	require.NoError(t, err)

	entries, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	newest, oldest := entries[0], entries[1]
	assert.Equal(t, "b.json", newest.Source)
	assert.False(t, newest.HasPeak())
	assert.False(t, newest.HasEmissions())

	assert.Equal(t, id, oldest.ID)
	assert.True(t, oldest.RecordedAt.Equal(base))
	assert.Equal(t, 3, oldest.Samples)
	assert.InDelta(t, 95.0, oldest.PeakCelsius, 1e-9)
	assert.InDelta(t, 5e-7, oldest.EmissionsKg, 1e-18)
	assert.Equal(t, "Très faible", oldest.Band)
	assert.Equal(t, "01TRACE", oldest.TraceID)
}

func TestList_Limit(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()
	for i := range 5 {
		_, err := s.Record(ctx, history.Entry{
			RecordedAt: time.Unix(int64(1000+i), 0),
			Source:     "x",
		})
		require.NoError(t, err)
	}

	entries, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestRecord_DefaultsTimeAndID(t *testing.T) {
	s, _ := openStore(t)
	before := time.Now().Add(-time.Second)

	id, err := s.Record(context.Background(), history.Entry{Source: "-"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	entries, err := s.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].RecordedAt.After(before))
}

func TestRecord_DuplicateID(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()
	e := history.Entry{ID: "fixed", Source: "x"}
	_, err := s.Record(ctx, e)
	require.NoError(t, err)
	_, err = s.Record(ctx, e)
	require.ErrorIs(t, err, history.ErrTransactionFailed)
}

func TestOpen_Reopen(t *testing.T) {
	s, path := openStore(t)
	_, err := s.Record(context.Background(), history.Entry{Source: "kept"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	again, err := history.Open(context.Background(), path, zerolog.Nop())
	require.NoError(t, err)
	defer again.Close()

	entries, err := again.List(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0].Source)
}

func TestOpen_SchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE schema_versions (version INTEGER PRIMARY KEY, applied_at TEXT NOT NULL);
		INSERT INTO schema_versions VALUES (99, 'then');`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = history.Open(context.Background(), path, zerolog.Nop())
	require.ErrorIs(t, err, history.ErrSchemaMismatch)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := history.Open(context.Background(), "", zerolog.Nop())
	require.ErrorIs(t, err, history.ErrInvalidPath)
}
