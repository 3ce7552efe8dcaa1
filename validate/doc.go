// Package validate checks a Master Kilominx facelet-color assignment for
// structural soundness and group-theoretic reachability, and derives the
// piece-level view the solver consumes.
//
// What
//
//   - Cell: one (facelet, color) observation; a full assignment covers each
//     of the 252 facelets exactly once.
//   - Validate: runs four ordered checks and returns the assembled
//     kilominx.State plus its Pieces view on success.
//   - ValidateState: the same checks on an already-assembled State.
//
// The checks, in order (the first failure wins, nothing is repaired):
//
//  1. color census — exactly 21 facelets of each palette color;
//  2. distinct super centers — the face→color map must be a bijection;
//  3. piece consistency — center blocks uniform, every wing a valid ordered
//     pair of adjacent face colors seen exactly once, every corner one of the
//     twenty solved cyclic triples seen exactly once;
//  4. reachability — even corner permutation, corner twists summing to zero
//     mod 3, even wing permutation.
//
// Why
//
//	The solver's staged reduction is only sound on states inside the puzzle's
//	move group. Checks 1–3 reject assignments no physical puzzle can show
//	(stickering errors); check 4 rejects physically assembled but unreachable
//	states, such as a single twisted corner or a single flipped edge wing.
//
// Determinism
//
//	Pure functions of the input; identical input yields the identical error.
//
// Errors
//
//	Every failure wraps one of the package sentinels (ErrBadAssignment,
//	ErrColorCountMismatch, ErrDuplicateCenterColor,
//	ErrImpossiblePieceColorCombination, ErrUnreachableState) and carries the
//	offending facelet indices for highlighting, see CheckError.
package validate
