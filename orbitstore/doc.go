// Package orbitstore persists orbit records into SQLite, keyed by starting
// value.
//
// Overview:
//
//   - Store wraps a database/sql handle over the pure-Go modernc.org/sqlite
//     driver; no cgo, no external server.
//   - One row per orbit record: the scalar fields map onto INTEGER columns
//     and every sequence field (orbits, op logs, op tallies) is serialized
//     as a JSON TEXT column.
//   - SaveBatch writes a whole batch atomically inside one transaction and
//     tags every row with a fresh batch id (UUID), so multiple runs can
//     coexist in one file.
//   - ByStart returns the most recently saved record for a starting value.
//
// The package is a collaborator of the orbit engine, not part of it: it
// depends only on orbit.OrbitRecord and never feeds anything back into the
// core.
//
// Errors (sentinel):
//
//   - ErrNotFound if no row exists for the requested starting value.
package orbitstore
