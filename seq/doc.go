// Package seq provides the two auxiliary integer sequences that bound and
// index first-drop classification: admissible terms (an OEIS A100982
// analogue) and allowable dropping times (an OEIS A122437 analogue).
//
// Overview:
//
//   - Admissible produces the requested count of admissible terms with an
//     iterative pair-of-arrays recurrence. At each outer step b (starting at
//     2) it propagates partial sums y[c] = x[c] + x[c-1], copies them back,
//     then sweeps every slot c and folds x[c] into the next candidate term
//     wherever (b+1-c)·ln3 < b·ln2, zeroing the slot. A nonzero candidate
//     becomes the next output term.
//   - DroppingTimes is a closed form: term k (1-indexed) equals
//     floor(1 + k + k·ln3/ln2), computed with floating-point logarithms so
//     the output matches the reference sequence bit-for-bit.
//
// Both generators are defined only for the rule name "m3a1"; for any other
// rule name they return an empty sequence and classification is simply
// skipped upstream.
//
// Arithmetic:
//
//   - Admissible terms outgrow int64 around index 48, so they are produced
//     as *big.Int values.
//   - Dropping times stay tiny (the 200th term is 517) and are plain int64.
//
// Sizing:
//
//   - Admissible works inside fixed arrays with Limit (1000) slots of
//     headroom. A request whose computation would outgrow the arrays fails
//     with ErrTermCapacity instead of silently truncating. Requests of up to
//     200 terms are well within capacity.
//
// Determinism:
//
//   - Both generators are stateless per call: identical inputs always yield
//     identical sequences, with no hidden state carried between calls.
//
// Complexity:
//
//   - Admissible: O(B²) slot updates where B is the largest outer step
//     reached (B ≈ the n-th dropping time), with big-integer additions.
//   - DroppingTimes: O(n).
package seq
