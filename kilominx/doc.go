// Package kilominx models the Master Kilominx, the four-layer dodecahedral
// twisty puzzle, as static lookup tables plus a value-semantics State.
//
// What
//
//   - Face and Color enums matching the desktop app's picker palette.
//   - The oriented dodecahedron topology: each face's five neighbors in a
//     fixed rotational order, with side and vertex correspondences.
//   - Facelet indexing: 21 stickers per face in rings (5 corners, 2×5 edge
//     wings, 5 center petals, 1 super center), 252 facelets total.
//   - Piece tables: 20 corner slots (3 facelets, cyclic order), 60 wing
//     slots (2 facelets), 12 color-uniform center blocks.
//   - Move tables: for every (face, layer, fifth-turns) move, a precomputed
//     facelet permutation plus the lifted piece actions (corner slot
//     permutation with twist deltas, wing slot permutation).
//   - A pure MoveEngine: Apply, Inverse, Simplify.
//
// Why
//
//	Per-face five-fold symmetry and the piece-to-facelet mapping are plain
//	index arithmetic, so the whole geometry lives in fixed-size arrays built
//	once and shared read-only. There is no object graph and no runtime
//	mutation of topology.
//
// Determinism
//
//	Tables are built by GetModel() exactly once (sync.Once) and are identical
//	across runs. Apply is a pure function of (State, Move).
//
// Errors
//
//	Runtime notation problems surface as ErrBadMove. A malformed topology is
//	a programming fault: table construction asserts bijectivity, order-5
//	closure, piece closure, and twist-delta balance, and panics on violation.
package kilominx
