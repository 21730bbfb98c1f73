// Package seq - admissible-term generator (OEIS A100982 analogue).
package seq

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// Limit is the internal sizing of the admissible-term working arrays: the
// outer recurrence step b may grow up to Limit before the generator fails
// with ErrTermCapacity. The default comfortably covers 200-term requests
// (the 200th term is reached near b = 517).
const Limit = 1000

// ErrTermCapacity indicates that a requested term count would push the
// recurrence beyond the internal array sizing. This is a programming-contract
// violation on the caller's side, never a recoverable runtime condition.
var ErrTermCapacity = errors.New("seq: requested term count exceeds internal limit capacity")

// classifiableRule is the sole rule name the auxiliary sequences are defined
// for. Matches rules.NameM3A1; kept as a local literal so the package stays a
// leaf depending only on arithmetic.
const classifiableRule = "m3a1"

// Admissible returns the first terms admissible terms for the given rule
// name. For any rule name other than "m3a1" the sequence is not defined and
// an empty (non-nil) slice is returned.
//
// The generator is stateless per call: identical inputs yield identical
// sequences. Terms are *big.Int because the sequence outgrows int64 around
// index 48.
//
// Returns ErrTermCapacity if producing the requested count would outgrow the
// internal arrays (Limit slots of headroom); callers should request at most
// 200 terms against the default limit.
//
// Complexity: O(B²) big-integer additions, B ≈ dropping time of the last
// requested term.
func Admissible(terms int, ruleName string) ([]*big.Int, error) {
	results := make([]*big.Int, 0, max(terms, 0))
	if ruleName != classifiableRule {
		return results, nil
	}

	// 1) Working arrays x[1..Limit+1], y[1..Limit+1], every slot a live
	//    big.Int so the recurrence below never allocates per step.
	x := make([]*big.Int, Limit+2)
	y := make([]*big.Int, Limit+2)
	var c int
	for c = range x {
		x[c] = new(big.Int)
		y[c] = new(big.Int)
	}

	// 2) Initial condition: a single admissible residue at b = 1.
	x[1].SetInt64(1)

	ln3 := math.Log(3)
	ln2 := math.Log(2)

	b := 1
	a := new(big.Int) // candidate term accumulator, reallocated on emit
	for len(results) < terms {
		b++

		// 3) Sizing guard: the sweeps below touch index b+1. Failing here is
		//    mandatory; truncating the sequence would silently corrupt every
		//    classification table built from it.
		if b > Limit {
			return nil, fmt.Errorf("%w: %d terms requested, limit %d", ErrTermCapacity, terms, Limit)
		}

		// 4) Propagate partial sums y[c] = x[c] + x[c-1] for c in [2, b+1],
		//    then copy back into x.
		for c = 2; c <= b+1; c++ {
			y[c].Add(x[c], x[c-1])
		}
		for c = 2; c <= b+1; c++ {
			x[c].Set(y[c])
		}

		// 5) Sweep every slot; wherever (b+1-c)·ln3 < b·ln2, the slot's count
		//    has become admissible: fold it into the candidate and zero it.
		for c = 1; c <= b+1; c++ {
			if float64(b+1-c)*ln3 < float64(b)*ln2 {
				a.Add(a, x[c])
				x[c].SetInt64(0)
			}
		}

		// 6) A nonzero candidate is the next output term.
		if a.Sign() != 0 {
			results = append(results, a)
			a = new(big.Int)
		}
	}

	return results, nil
}
