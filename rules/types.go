// Package rules defines core types and configuration options for the
// built-in Collatz-type rule set.
//
// A Rule is a named policy object: the orbit simulator asks it when to halt,
// which of the two transforms applies to the current value, and what the
// transform produced — both the next value and the symbolic operation id
// that fired. Rules with a positive MaxIterations additionally bound the
// length of any orbit they generate.
package rules

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by rule constructors.
var (
	// ErrBadProbability indicates that the probabilistic rule was constructed
	// with a branch weight outside the closed interval [0, 1].
	ErrBadProbability = errors.New("rules: probability must be within [0, 1]")

	// ErrBadMaxIterations indicates that a negative iteration cap was
	// configured. Raised via panic from WithMaxIterations, mirroring invalid
	// functional-option arguments elsewhere in the module.
	ErrBadMaxIterations = errors.New("rules: MaxIterations must be non-negative")
)

// Rule names of the built-in rule set. The name gates classification:
// only NameM3A1 is eligible for first-drop classification, because the
// auxiliary sequences (seq.Admissible, seq.DroppingTimes) are defined for
// that rule alone.
const (
	// NameM3A1 is the classic 3x+1 rule (halt at 1).
	NameM3A1 = "m3a1"
	// NameM3A3 is the 3x+3 variant (halt at 3).
	NameM3A3 = "m3a3"
	// NameM3A5 is the 3x+5 variant (halt at 5, capped by default).
	NameM3A5 = "m3a5"
	// NameProbabilistic is the randomized 3x+1 / 3x+3 mix (halt at ≤3).
	NameProbabilistic = "probabilistic"
)

// OpID is a symbolic identifier of one orbit step. The simulator records one
// OpID per applied transform into the orbit's operation logs.
type OpID string

// Operation identifiers emitted by the built-in rules.
const (
	// OpHalve identifies the shared decrease step v → v/2.
	OpHalve OpID = "d2"
	// OpM3A1 identifies the increase step v → 3v+1.
	OpM3A1 OpID = "m3a1"
	// OpM3A3 identifies the increase step v → 3v+3.
	OpM3A3 OpID = "m3a3"
	// OpM3A5 identifies the increase step v → 3v+5.
	OpM3A5 OpID = "m3a5"
)

// DefaultM3A5Cap is the default iteration cap of the m3a5 rule. The 3x+5
// family is not known to halt from every start, so exploration is bounded
// unless the caller overrides the cap.
const DefaultM3A5Cap = 100

// Rule is the behavioral contract consumed by the orbit simulator.
//
// Name      – string identity; gates classification-specific logic.
// MinStart  – smallest starting value the rule is defined for.
// IsHalt    – true when simulation should stop at value v.
// IsDecrease / IsIncrease – mutually exclusive step selectors for any
//
//	reachable non-halting v; IsDecrease is always consulted first.
//
// Decrease / Increase – the step transforms; each returns the next value and
//
//	the OpID of the operation that fired.
//
// MaxIterations – optional cap on orbit length, counting the starting value;
//
//	zero means uncapped. When the cap is reached before halting, simulation
//	stops early without error.
type Rule interface {
	Name() string
	MinStart() int64
	IsHalt(v int64) bool
	IsDecrease(v int64) bool
	IsIncrease(v int64) bool
	Decrease(v int64) (int64, OpID)
	Increase(v int64) (int64, OpID)
	MaxIterations() int
}

// Options configures rule construction.
//
// MaxIterations – iteration cap; 0 disables the cap. Only m3a5 and the
//
//	probabilistic rule consult it (m3a1 and m3a3 halt unconditionally on
//	every tested start range).
//
// Seed – deterministic RNG seed for the probabilistic rule; 0 selects the
//
//	fixed default stream.
//
// Rand – explicit RNG for the probabilistic rule; overrides Seed when set.
type Options struct {
	MaxIterations int        // Cap on orbit length, including the start value
	Seed          int64      // Seed for the default deterministic RNG stream
	Rand          *rand.Rand // Injected RNG; takes precedence over Seed
}

// Option represents a functional option for configuring a rule constructor.
type Option func(*Options)

// WithMaxIterations sets the iteration cap. Zero disables the cap.
// Negative values cause a panic with ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithSeed selects a deterministic RNG stream for the probabilistic rule.
// Seed 0 maps to the fixed default stream, so the zero value stays
// reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects an explicit RNG into the probabilistic rule, overriding
// WithSeed. The caller keeps ownership; the rule must not be shared across
// goroutines because *rand.Rand is not goroutine-safe.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = rng
	}
}
