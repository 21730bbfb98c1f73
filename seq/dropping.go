// Package seq - allowable-dropping-time generator (OEIS A122437 analogue).
package seq

import "math"

// DroppingTimes returns the first terms allowable dropping times for the
// given rule name: term k (1-indexed) = floor(1 + k + k·ln3/ln2). For any
// rule name other than "m3a1" the sequence is not defined and an empty
// (non-nil) slice is returned.
//
// The closed form is evaluated with floating-point logarithms on purpose:
// the floor-of-real-formula semantics must match the reference sequence
// bit-for-bit, and an integer approximation of ln3/ln2 would not.
//
// Stateless per call and trivially idempotent. Complexity: O(terms).
func DroppingTimes(terms int, ruleName string) []int64 {
	results := make([]int64, 0, max(terms, 0))
	if ruleName != classifiableRule {
		return results
	}

	logRatio := math.Log(3) / math.Log(2)

	var k int
	for k = 1; k <= terms; k++ {
		results = append(results, int64(math.Floor(1+float64(k)+float64(k)*logRatio)))
	}

	return results
}
