// Module master-kilominx-solver models, validates and solves the Master
// Kilominx, the four-layer dodecahedral twisty puzzle.
//
// The library consumes a finished facelet-color assignment and emits move
// tokens plus human-readable instructions; cameras, color classification and
// UI stay outside.
//
// Packages:
//
//	kilominx/ — faces, colors, topology, move tables, State and the pure
//	            move engine (Apply, Inverse, Simplify)
//	validate/ — the four-check state validator and the piece-level view
//	solve/    — the staged reduction solver (centers, edge pairing,
//	            reduction, verification) built on conjugated pure 3-cycles
//	narrate/  — moves rendered as step-by-step instructions, with export
//
//	cmd/kilominx-solve/ — CLI: sticker grid in, instructions out
//
// A minimal round trip:
//
//	scramble, _ := kilominx.ParseMoves("F u2 BR'")
//	state := kilominx.ApplyAll(kilominx.SolvedState(), scramble)
//	sol, err := solve.Solve(state)
//	if err != nil {
//		// invalid or unreachable states are rejected with typed errors
//	}
//	narrate.Export(os.Stdout, sol)
//
// Every solve is deterministic and ends with a replay check, so a returned
// sequence is guaranteed to solve the input it was computed for.
package solver
