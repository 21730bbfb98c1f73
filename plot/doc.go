// Package plot projects orbit records into plain (x, y, z) scatter points
// for external rendering.
//
// Overview:
//
//   - A Builder maps one orbit record to a 3-tuple of numeric coordinates;
//     the engine is agnostic to how records are projected, so the builder is
//     the entire contract.
//   - BuildPoints applies a builder over a batch and optionally attaches one
//     label and one color per record. Labels and colors are configuration:
//     their lengths must match the record count exactly, or the call is
//     rejected up front.
//   - Stock builders cover the two projections used most in practice:
//     DropBuilder (start, first-drop length, stopping modulus) and
//     LengthBuilder (start, orbit length, peak value).
//
// Nothing here renders: the output is coordinate data for whatever plotting
// front end the caller prefers.
//
// Errors (sentinel):
//
//   - ErrNilBuilder     if no builder is supplied.
//   - ErrLengthMismatch if a supplied label or color list does not match the
//     record count.
package plot
