// Package orbitstore - the SQLite record store.
package orbitstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/katalvlaran/collatz/orbit"
)

// ErrNotFound indicates that no stored record exists for the requested
// starting value.
var ErrNotFound = errors.New("orbitstore: no record for starting value")

const orbitInfoSchema = `
CREATE TABLE IF NOT EXISTS orbit_info (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    batch_id        TEXT NOT NULL,
    n               INTEGER NOT NULL,
    first_drop      INTEGER NOT NULL,
    first_orbit     TEXT NOT NULL,
    total_orbit     TEXT NOT NULL,
    stop_mod        INTEGER NOT NULL,
    stop_index      INTEGER NOT NULL,
    first_op_ids    TEXT NOT NULL,
    first_op_counts TEXT NOT NULL,
    total_op_ids    TEXT NOT NULL,
    total_op_counts TEXT NOT NULL
);
`

const orbitInfoIndex = `
CREATE INDEX IF NOT EXISTS idx_orbit_info_n ON orbit_info(n);
`

// Store persists orbit records in a SQLite database, one row per record,
// keyed by starting value.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at dsn and ensures
// the orbit_info table exists. Use ":memory:" for an ephemeral store.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("orbitstore: open %q: %w", dsn, err)
	}

	// A single connection keeps ":memory:" databases coherent (every pooled
	// connection would otherwise see its own empty database) and sidesteps
	// SQLite writer contention for file-backed stores.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(orbitInfoSchema); err != nil {
		db.Close()

		return nil, fmt.Errorf("orbitstore: create schema: %w", err)
	}
	if _, err = db.Exec(orbitInfoIndex); err != nil {
		db.Close()

		return nil, fmt.Errorf("orbitstore: create index: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveBatch writes every record of one batch atomically and returns the
// batch id the rows were tagged with. An empty batch is a no-op that still
// yields a fresh id.
func (s *Store) SaveBatch(records []orbit.OrbitRecord) (string, error) {
	batchID := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("orbitstore: begin batch %s: %w", batchID, err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO orbit_info
		(batch_id, n, first_drop, first_orbit, total_orbit, stop_mod, stop_index,
		 first_op_ids, first_op_counts, total_op_ids, total_op_counts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("orbitstore: prepare insert: %w", err)
	}
	defer stmt.Close()

	var rec orbit.OrbitRecord
	for _, rec = range records {
		row, err := encodeRow(rec)
		if err != nil {
			return "", fmt.Errorf("orbitstore: encode start=%d: %w", rec.Start, err)
		}
		if _, err = stmt.Exec(
			batchID,
			rec.Start,
			rec.FirstDrop,
			row.firstOrbit,
			row.totalOrbit,
			rec.StopMod,
			rec.StopIndex,
			row.firstOpIDs,
			row.firstOpCounts,
			row.totalOpIDs,
			row.totalOpCounts,
		); err != nil {
			return "", fmt.Errorf("orbitstore: insert start=%d: %w", rec.Start, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("orbitstore: commit batch %s: %w", batchID, err)
	}

	return batchID, nil
}

// ByStart returns the most recently saved record for the given starting
// value, or ErrNotFound.
func (s *Store) ByStart(n int64) (orbit.OrbitRecord, error) {
	var (
		rec orbit.OrbitRecord
		row jsonRow
	)

	err := s.db.QueryRow(`
		SELECT n, first_drop, first_orbit, total_orbit, stop_mod, stop_index,
		       first_op_ids, first_op_counts, total_op_ids, total_op_counts
		FROM orbit_info WHERE n = ? ORDER BY id DESC LIMIT 1`, n).Scan(
		&rec.Start,
		&rec.FirstDrop,
		&row.firstOrbit,
		&row.totalOrbit,
		&rec.StopMod,
		&rec.StopIndex,
		&row.firstOpIDs,
		&row.firstOpCounts,
		&row.totalOpIDs,
		&row.totalOpCounts,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return orbit.OrbitRecord{}, fmt.Errorf("%w: %d", ErrNotFound, n)
	}
	if err != nil {
		return orbit.OrbitRecord{}, fmt.Errorf("orbitstore: query start=%d: %w", n, err)
	}

	if err = decodeRow(row, &rec); err != nil {
		return orbit.OrbitRecord{}, fmt.Errorf("orbitstore: decode start=%d: %w", n, err)
	}

	return rec, nil
}

// Count returns the total number of stored rows.
func (s *Store) Count() (int64, error) {
	var total int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM orbit_info`).Scan(&total); err != nil {
		return 0, fmt.Errorf("orbitstore: count: %w", err)
	}

	return total, nil
}

// jsonRow carries the TEXT columns of one orbit_info row.
type jsonRow struct {
	firstOrbit    string
	totalOrbit    string
	firstOpIDs    string
	firstOpCounts string
	totalOpIDs    string
	totalOpCounts string
}

// encodeRow serializes every sequence field of a record into JSON TEXT.
func encodeRow(rec orbit.OrbitRecord) (jsonRow, error) {
	var (
		row jsonRow
		err error
	)
	if row.firstOrbit, err = marshalField(rec.FirstOrbit); err != nil {
		return row, err
	}
	if row.totalOrbit, err = marshalField(rec.TotalOrbit); err != nil {
		return row, err
	}
	if row.firstOpIDs, err = marshalField(rec.FirstOpIDs); err != nil {
		return row, err
	}
	if row.firstOpCounts, err = marshalField(rec.FirstOpCounts); err != nil {
		return row, err
	}
	if row.totalOpIDs, err = marshalField(rec.TotalOpIDs); err != nil {
		return row, err
	}
	row.totalOpCounts, err = marshalField(rec.TotalOpCounts)

	return row, err
}

// decodeRow fills the sequence fields of rec back from JSON TEXT.
func decodeRow(row jsonRow, rec *orbit.OrbitRecord) error {
	if err := json.Unmarshal([]byte(row.firstOrbit), &rec.FirstOrbit); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(row.totalOrbit), &rec.TotalOrbit); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(row.firstOpIDs), &rec.FirstOpIDs); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(row.firstOpCounts), &rec.FirstOpCounts); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(row.totalOpIDs), &rec.TotalOpIDs); err != nil {
		return err
	}

	return json.Unmarshal([]byte(row.totalOpCounts), &rec.TotalOpCounts)
}

// marshalField JSON-encodes one sequence field.
func marshalField(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
