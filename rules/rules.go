// Package rules implements the built-in Collatz-type rule set.
//
// Each built-in rule is a small concrete type behind the Rule interface.
// All four share the same parity-driven step selection (even ⇒ decrease,
// odd ⇒ increase) and the same decrease transform v → v/2; they differ in
// the halting value, the increase transform, and the iteration cap.
package rules

import "math/rand"

// ------------------------------------------------------------------------
// m3a1 — the classic 3x+1 rule. Halts at 1. Classification-eligible.
// ------------------------------------------------------------------------

type m3a1 struct{}

// NewM3A1 returns the classic Collatz rule: halt at 1, decrease v/2 on even
// values, increase 3v+1 on odd values. This is the only rule eligible for
// first-drop classification.
func NewM3A1() Rule { return m3a1{} }

func (m3a1) Name() string { return NameM3A1 }
func (m3a1) MinStart() int64 { return 1 }
func (m3a1) IsHalt(v int64) bool { return v == 1 }
func (m3a1) IsDecrease(v int64) bool { return v%2 == 0 }
func (m3a1) IsIncrease(v int64) bool { return v%2 != 0 }
func (m3a1) MaxIterations() int { return 0 }
func (m3a1) Decrease(v int64) (int64, OpID) { return v / 2, OpHalve }
func (m3a1) Increase(v int64) (int64, OpID) { return 3*v + 1, OpM3A1 }

// ------------------------------------------------------------------------
// m3a3 — the 3x+3 variant. Halts at 3.
// ------------------------------------------------------------------------

type m3a3 struct{}

// NewM3A3 returns the 3x+3 variant: halt at 3, decrease v/2 on even values,
// increase 3v+3 on odd values. Not classification-eligible: the auxiliary
// sequences are defined only for m3a1.
func NewM3A3() Rule { return m3a3{} }

func (m3a3) Name() string { return NameM3A3 }
func (m3a3) MinStart() int64 { return 3 }
func (m3a3) IsHalt(v int64) bool { return v == 3 }
func (m3a3) IsDecrease(v int64) bool { return v%2 == 0 }
func (m3a3) IsIncrease(v int64) bool { return v%2 != 0 }
func (m3a3) MaxIterations() int { return 0 }
func (m3a3) Decrease(v int64) (int64, OpID) { return v / 2, OpHalve }
func (m3a3) Increase(v int64) (int64, OpID) { return 3*v + 3, OpM3A3 }

// ------------------------------------------------------------------------
// m3a5 — the 3x+5 variant. Halts at 5, capped exploration.
// ------------------------------------------------------------------------

type m3a5 struct {
	cap int // 0 = uncapped; default DefaultM3A5Cap
}

// NewM3A5 returns the 3x+5 variant: halt at 5, decrease v/2 on even values,
// increase 3v+5 on odd values. The 3x+5 family admits cycles that never
// reach 5 (e.g. 19 → 62 → 31 → 98 → 49 → 152 → 76 → 38 → 19), so orbits are
// capped at DefaultM3A5Cap iterations unless overridden via
// WithMaxIterations.
func NewM3A5(opts ...Option) Rule {
	cfg := Options{MaxIterations: DefaultM3A5Cap}
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return m3a5{cap: cfg.MaxIterations}
}

func (m3a5) Name() string { return NameM3A5 }
func (m3a5) MinStart() int64 { return 5 }
func (m3a5) IsHalt(v int64) bool { return v == 5 }
func (m3a5) IsDecrease(v int64) bool { return v%2 == 0 }
func (m3a5) IsIncrease(v int64) bool { return v%2 != 0 }
func (r m3a5) MaxIterations() int { return r.cap }
func (m3a5) Decrease(v int64) (int64, OpID) { return v / 2, OpHalve }
func (m3a5) Increase(v int64) (int64, OpID) { return 3*v + 5, OpM3A5 }

// ------------------------------------------------------------------------
// probabilistic — randomized 3x+1 / 3x+3 mix. Halts at ≤3.
// ------------------------------------------------------------------------

type probabilistic struct {
	p   float64    // probability of the 3v+1 branch
	rng *rand.Rand // per-rule stream; one independent draw per Increase
	cap int        // 0 = uncapped
}

// NewProbabilistic returns the randomized rule: halt at v ≤ 3, decrease v/2
// on even values, increase 3v+1 with probability p and 3v+3 otherwise. Each
// Increase performs one independent uniform draw; the emitted OpID reflects
// whichever branch fired.
//
// The RNG is deterministic: WithSeed selects a reproducible stream
// (seed 0 = fixed default), WithRand injects an explicit one. Returns
// ErrBadProbability if p is outside [0, 1].
func NewProbabilistic(p float64, opts ...Option) (Rule, error) {
	if p < 0 || p > 1 {
		return nil, ErrBadProbability
	}

	cfg := Options{}
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rngFromSeed(cfg.Seed)
	}

	return &probabilistic{p: p, rng: rng, cap: cfg.MaxIterations}, nil
}

func (*probabilistic) Name() string { return NameProbabilistic }
func (*probabilistic) MinStart() int64 { return 1 }
func (*probabilistic) IsHalt(v int64) bool { return v <= 3 }
func (*probabilistic) IsDecrease(v int64) bool { return v%2 == 0 }
func (*probabilistic) IsIncrease(v int64) bool { return v%2 != 0 }
func (r *probabilistic) MaxIterations() int { return r.cap }

func (*probabilistic) Decrease(v int64) (int64, OpID) { return v / 2, OpHalve }

// Increase draws one uniform variate and applies whichever branch it selects.
func (r *probabilistic) Increase(v int64) (int64, OpID) {
	if r.rng.Float64() < r.p {
		return 3*v + 1, OpM3A1
	}

	return 3*v + 3, OpM3A3
}
