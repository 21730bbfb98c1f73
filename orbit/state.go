// Package orbit - classification state: the lookup / wheel / index maps and
// the single-shot classification update applied at first-drop time.
package orbit

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/collatz/rules"
	"github.com/katalvlaran/collatz/seq"
)

// classTerms is how many terms of each auxiliary sequence the state builder
// consumes. 200 terms are known-safe against seq.Limit (the 200th dropping
// time is 517, far below the 1000-slot headroom).
const classTerms = 200

// fullySupported gates classification by rule name: the auxiliary sequences
// are defined only for the classic 3x+1 rule.
var fullySupported = map[string]bool{
	rules.NameM3A1: true,
}

// ClassState is the mutable classification bookkeeping for one batch run.
//
// lookup maps a first-drop length to the admissible number of wheel slots
// for that length; wheel maps the length to the next 1-indexed slot to
// assign (wrapping to 1 once it exceeds the lookup magnitude); index counts
// how many orbits landed on each "<length>-<slot>" composite key.
//
// Lifecycle: built once per batch by NewClassState, mutated in place by the
// simulator exactly once per classified orbit, never reset mid-batch, and
// discarded when the batch ends. Not safe for concurrent batches; each batch
// owns a private instance.
type ClassState struct {
	lookup map[int]*big.Int
	wheel  map[int]int
	index  map[string]int
}

// NewClassState builds fresh classification state for the named rule from
// 200 terms of each auxiliary sequence:
//
//	lookup[droppingTime[i]] = admissible[i]
//	wheel[droppingTime[i]]  = 1
//	index["droppingTime[i]-1"] = 0
//
// on top of the seeded base entries lookup[1]=1, wheel[1]=1 and the legacy
// index["1"]=1. For rule names without auxiliary sequences the maps hold
// only the seeds, and the simulator skips classification anyway.
//
// Returns seq.ErrTermCapacity only if the internal term request outgrows the
// generator's sizing — a programming-contract violation, not a runtime
// condition.
func NewClassState(ruleName string) (*ClassState, error) {
	admissible, err := seq.Admissible(classTerms, ruleName)
	if err != nil {
		return nil, fmt.Errorf("orbit: building classification state: %w", err)
	}
	droppingTimes := seq.DroppingTimes(classTerms, ruleName)

	// Seeded base entries for the trivial length-1 case. The bare "1" index
	// key is legacy seed data: its shape never recurs from classify, which
	// only ever writes composite "<length>-<slot>" keys, so it stays inert.
	st := &ClassState{
		lookup: map[int]*big.Int{1: big.NewInt(1)},
		wheel:  map[int]int{1: 1},
		index:  map[string]int{"1": 1},
	}

	var i int
	var d int64
	for i, d = range droppingTimes {
		st.lookup[int(d)] = admissible[i]
		st.wheel[int(d)] = 1
		st.index[indexKey(int(d), 1)] = 0
	}

	return st, nil
}

// indexKey builds the composite "<length>-<slot>" key of the index map.
func indexKey(drop, mod int) string {
	return fmt.Sprintf("%d-%d", drop, mod)
}

// classify performs the single-shot classification update for an orbit whose
// first-drop length is drop:
//
//  1. Fail with ErrUnknownFirstDrop if drop has no lookup entry.
//  2. Wrap the wheel back to slot 1 once it exceeds the admissible magnitude.
//  3. Assign the current slot as the stopping modulus, then bump the wheel so
//     the next orbit with the same length gets the next slot.
//  4. Increment the (length, slot) occurrence count (created at 1 if absent);
//     the new count is the stopping index.
//
// Mutates the state in place; must be invoked at most once per orbit.
func (s *ClassState) classify(drop int) (mod, idx int, err error) {
	// 1) Unknown first-drop length is fatal for the orbit.
	magnitude, ok := s.lookup[drop]
	if !ok {
		return 0, 0, fmt.Errorf("%w: length %d", ErrUnknownFirstDrop, drop)
	}

	// 2) Wrap-around: slots are reused cyclically once the admissible
	//    magnitude for this length is exhausted.
	if big.NewInt(int64(s.wheel[drop])).Cmp(magnitude) > 0 {
		s.wheel[drop] = 1
	}

	// 3) Post-assignment bump.
	mod = s.wheel[drop]
	s.wheel[drop]++

	// 4) Stable ordinal within the (length, slot) pair.
	key := indexKey(drop, mod)
	s.index[key]++
	idx = s.index[key]

	return mod, idx, nil
}
