// Package orbit - the per-start orbit simulator.
//
// Simulation is a small state machine: RUNNING → (HALTED | CAPPED). Each
// step either applies the rule's decrease or increase transform (exactly one
// applies to a non-halting value; decrease is consulted first), logs the
// operation, detects the first drop, and appends the new value. The loop
// exits when the rule halts, or early when the rule's iteration cap is
// reached.
package orbit

import "github.com/katalvlaran/collatz/rules"

// Simulate constructs one orbit record for the given starting value.
//
// st may be nil, in which case first-drop classification is skipped and
// StopMod/StopIndex stay 0. Classification also requires the rule to be
// eligible (m3a1); it fires exactly once, at the instant the running value
// first becomes ≤ start, and never again even if the orbit dips below start
// later.
//
// For non-probabilistic rules the output is a pure function of start and the
// supplied state's contents. Returns ErrNilRule for a nil rule, and
// ErrUnknownFirstDrop (fatal to this orbit) when a classification-eligible
// drop length is missing from the lookup table.
func Simulate(start int64, r rules.Rule, st *ClassState) (OrbitRecord, error) {
	if r == nil {
		return OrbitRecord{}, ErrNilRule
	}

	// 1) Shortcut cases: the general loop's “first value ≤ start” test
	//    degenerates at the minimal starting value, so the two base orbits
	//    are returned pre-computed with their known classification.
	if r.Name() == rules.NameM3A1 && start == 1 {
		return shortcutRecord(start, rules.OpM3A1), nil
	}
	if r.Name() == rules.NameM3A3 && start == 3 {
		return shortcutRecord(start, rules.OpM3A3), nil
	}

	// 2) Initial state: orbit = [start]; first-drop fields unset (zero).
	rec := OrbitRecord{
		Start:         start,
		TotalOrbit:    []int64{start},
		FirstOpCounts: make(map[rules.OpID]int),
		TotalOpCounts: make(map[rules.OpID]int),
	}

	v := start
	capSteps := r.MaxIterations()
	classify := st != nil && fullySupported[r.Name()]

	var op rules.OpID
	for !r.IsHalt(v) {
		// 3) CAPPED transition: the orbit (including the starting value) has
		//    reached the rule's cap before halting; stop early, no error.
		if capSteps > 0 && len(rec.TotalOrbit) >= capSteps {
			break
		}

		// 4) Exactly one transform applies; decrease is checked first.
		if r.IsDecrease(v) {
			v, op = r.Decrease(v)
		} else {
			v, op = r.Increase(v)
		}

		// 5) Log the operation: always into the total log, and into the
		//    first-drop log only while the drop is still ahead.
		rec.TotalOpIDs = append(rec.TotalOpIDs, op)
		rec.TotalOpCounts[op]++
		if rec.FirstDrop == 0 {
			rec.FirstOpIDs = append(rec.FirstOpIDs, op)
			rec.FirstOpCounts[op]++
		}

		// 6) First-drop detection: the new value fell to ≤ start for the
		//    first time. Snapshot the orbit-so-far (the new value excluded)
		//    and classify exactly once.
		if v <= start && rec.FirstDrop == 0 {
			rec.FirstOrbit = append([]int64(nil), rec.TotalOrbit...)
			rec.FirstDrop = len(rec.FirstOrbit)

			if classify {
				mod, idx, err := st.classify(rec.FirstDrop)
				if err != nil {
					return OrbitRecord{}, err
				}
				rec.StopMod = mod
				rec.StopIndex = idx
			}
		}

		// 7) Append after every step, so TotalOrbit includes the halting
		//    value on the HALTED exit.
		rec.TotalOrbit = append(rec.TotalOrbit, v)
	}

	return rec, nil
}

// shortcutRecord returns the fixed 3-element orbit [n, 4n, 2n] with its
// pre-computed classification (first drop 1, slot 1, ordinal 1) and the
// operation log the general path would conceptually produce: one increase
// before the drop, then one halving.
func shortcutRecord(n int64, increase rules.OpID) OrbitRecord {
	return OrbitRecord{
		Start:         n,
		FirstDrop:     1,
		FirstOrbit:    []int64{n},
		TotalOrbit:    []int64{n, 4 * n, 2 * n},
		StopMod:       1,
		StopIndex:     1,
		FirstOpIDs:    []rules.OpID{increase},
		FirstOpCounts: map[rules.OpID]int{increase: 1},
		TotalOpIDs:    []rules.OpID{increase, rules.OpHalve},
		TotalOpCounts: map[rules.OpID]int{increase: 1, rules.OpHalve: 1},
	}
}
