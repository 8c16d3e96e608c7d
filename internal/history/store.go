// Package history keeps a sqlite log of rendered predictions.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const (
	defaultDirPerm = 0o750

	// timeLayout is fixed width so that stored timestamps sort lexically.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

	// DefaultLimit is the number of entries List returns for a non-positive limit.
	DefaultLimit = 20
)

// Entry is one rendered prediction.
type Entry struct {
	ID         string
	RecordedAt time.Time
	Source     string
	Samples    int

	// PeakCelsius is NaN when the prediction had no finite temperature.
	PeakCelsius float64
	Status      string

	// EmissionsKg is NaN when the prediction carried no emissions.
	EmissionsKg float64
	Band        string
	Provenance  string
	TraceID     string
}

// HasPeak reports whether the entry has a peak temperature.
func (e Entry) HasPeak() bool { return !math.IsNaN(e.PeakCelsius) }

// HasEmissions reports whether the entry has an emissions value.
func (e Entry) HasEmissions() bool { return !math.IsNaN(e.EmissionsKg) }

// Store is a history database.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
	now func() time.Time
}

// Open opens or creates the database at path.
func Open(ctx context.Context, path string, log zerolog.Logger) (*Store, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}
	if err := os.MkdirAll(filepath.Dir(path), defaultDirPerm); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if err := ensureSchema(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Debug().
		Str("component", "history").
		Str("path", path).
		Int("schema_version", SchemaVersion).
		Msg("history store opened")

	return &Store{db: db, log: log, now: time.Now}, nil
}

// Record stores e and returns its id. A zero RecordedAt is set to now and
// an empty ID gets a new ULID.
func (s *Store) Record(ctx context.Context, e Entry) (string, error) {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = s.now()
	}
	if e.ID == "" {
		e.ID = ulid.Make().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}
	if _, err := tx.ExecContext(ctx, insertRenderSQL,
		e.ID,
		e.RecordedAt.UTC().Format(timeLayout),
		e.Source,
		e.Samples,
		nullable(e.PeakCelsius),
		e.Status,
		nullable(e.EmissionsKg),
		e.Band,
		e.Provenance,
		e.TraceID,
	); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Error().Err(rbErr).Msg("failed to roll back history insert")
		}
		return "", fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	s.log.Debug().
		Ctx(ctx).
		Str("component", "history").
		Str("operation", "record").
		Str("id", e.ID).
		Msg("render recorded")
	return e.ID, nil
}

// List returns the latest entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx, listRendersSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("listing renders: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e        Entry
			recorded string
			peak, kg sql.NullFloat64
		)
		if err := rows.Scan(&e.ID, &recorded, &e.Source, &e.Samples,
			&peak, &e.Status, &kg, &e.Band, &e.Provenance, &e.TraceID); err != nil {
			return nil, fmt.Errorf("scanning render: %w", err)
		}
		e.RecordedAt, err = time.Parse(timeLayout, recorded)
		if err != nil {
			return nil, fmt.Errorf("render %s has a bad timestamp: %w", e.ID, err)
		}
		e.PeakCelsius = fromNullable(peak)
		e.EmissionsKg = fromNullable(kg)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing renders: %w", err)
	}
	return out, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing history database: %w", err)
	}
	return nil
}

func nullable(v float64) sql.NullFloat64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func fromNullable(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
