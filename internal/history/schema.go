package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// SchemaVersion is the version of the tables created by this package.
const SchemaVersion = 1

const createTablesSQL = `
	CREATE TABLE IF NOT EXISTS schema_versions (
		version    INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS renders (
		id           TEXT PRIMARY KEY,
		recorded_at  TEXT NOT NULL,
		source       TEXT NOT NULL,
		samples      INTEGER NOT NULL CHECK (samples >= 0),
		peak_celsius REAL,
		status       TEXT NOT NULL,
		emissions_kg REAL,
		band         TEXT NOT NULL,
		provenance   TEXT NOT NULL,
		trace_id     TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS renders_recorded_at ON renders (recorded_at);`

const insertRenderSQL = `
	INSERT INTO renders (
		id, recorded_at, source, samples,
		peak_celsius, status, emissions_kg, band, provenance, trace_id
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const listRendersSQL = `
	SELECT id, recorded_at, source, samples,
		peak_celsius, status, emissions_kg, band, provenance, trace_id
	FROM renders
	ORDER BY recorded_at DESC, id DESC
	LIMIT ?`

// ensureSchema creates the tables of a new database and rejects databases
// written by another schema version.
func ensureSchema(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	version, err := schemaVersion(ctx, db)
	if err != nil {
		return err
	}

	switch version {
	case SchemaVersion:
		return nil
	case 0:
		return initSchema(ctx, db, log)
	default:
		return fmt.Errorf("database has schema %d, want %d: %w", version, SchemaVersion, ErrSchemaMismatch)
	}
}

func initSchema(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Debug().Err(rbErr).Msg("failed to roll back schema transaction")
		}
	}()

	if _, err := tx.ExecContext(ctx, createTablesSQL); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_versions (version, applied_at) VALUES (?, datetime('now'))`,
		SchemaVersion); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	committed = true

	log.Info().
		Str("component", "history").
		Int("version", SchemaVersion).
		Msg("history schema initialized")
	return nil
}

func schemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	exists, err := tableExists(ctx, db, "schema_versions")
	if err != nil || !exists {
		return 0, err
	}

	var version int
	err = db.QueryRowContext(ctx,
		`SELECT version FROM schema_versions ORDER BY version DESC LIMIT 1`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}

func tableExists(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE type='table' AND name=?)`,
		name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking table %s: %w", name, err)
	}
	return exists, nil
}
