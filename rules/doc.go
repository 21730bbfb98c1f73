// Package rules defines the pluggable rule abstraction for generalized
// Collatz-type orbit construction, together with the built-in rule set.
//
// Overview:
//
//   - A Rule bundles a halting predicate, two mutually exclusive step
//     predicates (decrease is always consulted first), the two step
//     transforms, and an optional iteration cap.
//   - Every transform returns both the next value and a symbolic operation
//     identifier (OpID), so callers can keep exact step logs and tallies.
//   - Built-in rules:
//     m3a1 (“classic” 3x+1, halts at 1, classification-eligible),
//     m3a3 (3x+3, halts at 3),
//     m3a5 (3x+5, halts at 5, capped — default 100 iterations),
//     probabilistic (3x+1 with probability p, else 3x+3, halts at ≤3).
//
// When to use:
//
//   - Feed a Rule into orbit.Simulate / orbit.GenerateBatch to construct and
//     classify orbits for the rule's entire start range.
//   - Implement Rule yourself to explore other Collatz-like families; the
//     simulator only ever calls the interface.
//
// Contract:
//
//   - For every reachable non-halting value v, exactly one of IsDecrease(v)
//     and IsIncrease(v) holds.
//   - Repeated application from any value ≥ MinStart must eventually satisfy
//     IsHalt, or the rule must carry a positive MaxIterations. The simulator
//     does not detect non-termination on its own.
//
// Determinism:
//
//   - m3a1, m3a3 and m3a5 are pure: the next value is a function of the
//     current one.
//   - The probabilistic rule draws one independent uniform variate per
//     Increase call. Its RNG is injectable (WithSeed / WithRand) so tests can
//     replay an orbit exactly; the same *rand.Rand must not be shared across
//     goroutines.
//
// Errors (sentinel):
//
//   - ErrBadProbability if the probabilistic branch weight is outside [0, 1].
//   - ErrBadMaxIterations (via panic in the option constructor) if a negative
//     cap is configured.
package rules
