// Package orbit - the batch driver.
package orbit

import "github.com/katalvlaran/collatz/rules"

// GenerateBatch simulates every starting value in the half-open range
// [r.MinStart(), total), ascending, one record per value, sharing a single
// freshly built ClassState across the whole batch.
//
// Containment policy: if an orbit fails classification mid-batch
// (ErrUnknownFirstDrop), the failure is logged through Options.Logger, the
// batch stops immediately, and the records collected so far are returned
// with a nil error — one malformed orbit must not lose the valid ones.
//
// The returned error is non-nil only for contract violations: a nil rule,
// or classification-state construction failure (generator capacity).
// A total ≤ r.MinStart() yields an empty, non-nil slice.
func GenerateBatch(total int64, r rules.Rule, opts ...Option) ([]OrbitRecord, error) {
	if r == nil {
		return nil, ErrNilRule
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// Classification state is built once per batch and never reused across
	// batches: the wheel and index maps accumulate per-run assignments.
	st, err := NewClassState(r.Name())
	if err != nil {
		return nil, err
	}

	return runBatch(total, r, st, cfg), nil
}

// runBatch drives the simulator over the start range against the supplied
// state, applying the containment policy.
func runBatch(total int64, r rules.Rule, st *ClassState, cfg Options) []OrbitRecord {
	size := total - r.MinStart()
	if size < 0 {
		size = 0
	}
	records := make([]OrbitRecord, 0, size)

	var n int64
	for n = r.MinStart(); n < total; n++ {
		rec, err := Simulate(n, r, st)
		if err != nil {
			cfg.Logger.Printf("orbit: batch stopped at start=%d: %v", n, err)

			break
		}
		records = append(records, rec)
	}

	return records
}
