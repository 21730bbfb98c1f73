// Package orbit provides the orbit-construction and first-drop
// classification engine: a per-start simulator, the classification state it
// mutates, and the batch driver that orchestrates both over a contiguous
// range of starting values.
//
// Overview:
//
//   - Simulate runs one orbit: start from n, repeatedly apply the rule's
//     transform until the rule halts (or its iteration cap fires), and
//     record the full trajectory, the pre-drop prefix, and per-step
//     operation logs.
//   - ClassState holds three mutually consistent maps built once per batch
//     from the auxiliary sequences (seq.Admissible, seq.DroppingTimes):
//     lookup  – first-drop length → admissible slot magnitude,
//     wheel   – first-drop length → next slot to assign (wraps to 1),
//     index   – (length, slot)    → running occurrence count.
//   - GenerateBatch builds one ClassState, simulates every start in
//     [rule.MinStart(), total), and collects the records.
//
// Data flows one way: sequence generators → classification state → simulator
// (reads and mutates state) → batch driver → external consumers
// (orbitstore, plot).
//
// Classification:
//
//	The instant an orbit first reaches a value ≤ its start, its first-drop
//	length L addresses the state: the current wheel slot for L becomes the
//	orbit's stopping modulus (slots cycle round-robin, wrapping once the
//	admissible magnitude lookup[L] is exhausted), and the incremented count
//	for (L, slot) becomes its stopping index. This happens exactly once per
//	orbit, even if the value dips below the start again later, and only for
//	the classification-eligible rule (m3a1) when state is supplied.
//
// Concurrency:
//
//   - Everything is single-threaded and sequential. A ClassState instance is
//     mutated in place and must be owned by exactly one batch; concurrent
//     batches need private instances.
//
// Errors (sentinel):
//
//   - ErrNilRule           if no rule is supplied.
//   - ErrUnknownFirstDrop  if a classification-eligible orbit drops at a
//     length absent from the lookup table. Fatal to that orbit; the batch
//     driver logs it and returns the records collected so far instead of
//     propagating a crash.
//
// Complexity:
//
//   - Simulate: O(len(TotalOrbit)) steps; each step is O(1) plus the op-log
//     appends.
//   - NewClassState: two 200-term generator calls plus O(200) map inserts.
//   - GenerateBatch: sum of the per-orbit costs; state build happens once.
package orbit
