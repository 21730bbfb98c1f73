// Package orbit defines core types and configuration options for orbit
// simulation, first-drop classification, and batch generation.
//
// An orbit is the sequence of values produced by repeatedly applying a
// rule's transform from a starting integer until halting. The first drop is
// the first point where the running value becomes ≤ the starting value; at
// that instant a classification-eligible orbit is assigned a wheel slot
// (stopping modulus) and an ordinal within that slot (stopping index).
package orbit

import (
	"errors"
	"io"
	"log"

	"github.com/katalvlaran/collatz/rules"
)

// Sentinel errors returned by the orbit engine.
var (
	// ErrNilRule indicates that a nil rules.Rule was passed to Simulate or
	// GenerateBatch.
	ErrNilRule = errors.New("orbit: rule is nil")

	// ErrUnknownFirstDrop indicates that a classification-eligible orbit
	// reached a first-drop length with no entry in the lookup table. Fatal to
	// the orbit being simulated; the batch driver contains it (partial
	// results) instead of crashing.
	ErrUnknownFirstDrop = errors.New("orbit: first-drop length not in lookup table")
)

// OrbitRecord is the immutable result of simulating one starting value.
//
// FirstDrop, StopMod and StopIndex use 0 as “not recorded”: FirstDrop stays
// 0 when the orbit halts (or is capped) before ever dropping to ≤ Start, and
// StopMod/StopIndex stay 0 whenever the orbit was not classified (ineligible
// rule, no classification state supplied, or no drop).
//
// Ownership: records are owned by the batch driver's result slice and are
// read-only to consumers.
type OrbitRecord struct {
	// Start is the starting integer n.
	Start int64

	// FirstDrop is the number of steps taken until the running value first
	// became ≤ Start; 0 if that never happened.
	FirstDrop int

	// FirstOrbit holds the values from Start up to (exclusive of) the first
	// value ≤ Start; nil if no drop occurred.
	FirstOrbit []int64

	// TotalOrbit holds every visited value, Start through the halting value,
	// or truncated at the rule's iteration cap.
	TotalOrbit []int64

	// StopMod is the wheel slot assigned at first-drop time; 0 if
	// unclassified.
	StopMod int

	// StopIndex is the ordinal within (FirstDrop, StopMod); 0 if
	// unclassified.
	StopIndex int

	// FirstOpIDs logs the operation of every step inside FirstOrbit, in
	// order; FirstOpCounts tallies them.
	FirstOpIDs    []rules.OpID
	FirstOpCounts map[rules.OpID]int

	// TotalOpIDs logs the operation of every step of the entire orbit, in
	// order; TotalOpCounts tallies them.
	TotalOpIDs    []rules.OpID
	TotalOpCounts map[rules.OpID]int
}

// Options configures the batch driver.
//
// Logger – destination for the fatal-classification containment path. The
//
//	default discards; the library never logs from orbit hot paths.
type Options struct {
	Logger *log.Logger // Receives the batch-stopping classification error
}

// Option represents a functional option for configuring GenerateBatch.
type Option func(*Options)

// WithLogger routes batch-level diagnostics (the early-termination notice on
// a classification failure) to the given logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns batch options with a discard logger.
func DefaultOptions() Options {
	return Options{
		Logger: log.New(io.Discard, "", 0),
	}
}
