// Package collatz is your in-memory laboratory for building, classifying,
// and persisting generalized Collatz-type integer orbits — from the classic
// 3x+1 dynamics to capped and probabilistic variants.
//
// 🚀 What is collatz?
//
//	A focused, research-oriented library that brings together:
//		• Rules: pluggable halting / decrease / increase policies (m3a1, m3a3,
//		  m3a5, probabilistic) with symbolic per-step operation identifiers
//		• Sequences: the admissible-term (OEIS A100982) and dropping-time
//		  (OEIS A122437) auxiliary generators that bound the classification
//		• Orbits: a per-start simulator with first-drop detection and a
//		  wrap-around “wheel” classification (stopping modulus + index)
//		• Batches: one call to classify a contiguous range of starting values
//		• Collaborators: a SQLite record store and a plot-point projector
//
// ✨ Why choose collatz?
//
//   - Deterministic by default – seeded RNG streams for the probabilistic rule
//   - Rock-solid error contracts – sentinel errors, no panics in hot paths
//   - Faithful arithmetic – big-integer admissible terms, bit-exact dropping
//     times, no silent truncation
//   - Extensible – implement rules.Rule to study your own orbit family
//
// Under the hood, everything is organized under five subpackages:
//
//	rules/      — the Rule interface, operation ids & built-in rule set
//	seq/        — admissible-term and dropping-time sequence generators
//	orbit/      — classification state, orbit simulator & batch driver
//	orbitstore/ — SQLite persistence of orbit records, keyed by start value
//	plot/       — projection of orbit records into (x, y, z) scatter points
//
// Quick ASCII example:
//
//	 27 → 82 → 41 → … → 23 → … → 9232 → … → 4 → 2 → 1
//	 └────────96 steps────────┘
//	      first drop (23 ≤ 27) classifies the orbit into its wheel slot
//
// Dive into orbit.GenerateBatch for the one-call entry point, and see
// examples/ for a full batch → store → plot walkthrough.
package collatz
