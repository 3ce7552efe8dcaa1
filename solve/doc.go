// Package solve reduces any valid Master Kilominx state to the solved state
// and returns the move sequence that does it.
//
// What
//
//	Solve runs a four-stage pipeline of pure State → (State, moves) steps:
//
//	 1. centers   — verifies the five-fold alignment of every center block
//	               (always already aligned on a valid state, so it emits no
//	               moves);
//	 2. pairing   — joins the two wings of each composite edge into one
//	               physical edge, greedily, with a bounded-depth move search
//	               as fallback;
//	 3. reduction — places paired edges and then corners face by face, ending
//	               with the last layer, whose residual twists are matched
//	               against a precomputed case table;
//	 4. verify    — replays the whole sequence on the input and requires the
//	               solved state.
//
//	Every pairing and reduction operation is a conjugated pure 3-cycle:
//	setup · base · setup⁻¹, where the two base 3-cycles (one for corners, one
//	for edge wings) are discovered once at init by enumerating short
//	commutators, and the setup is found by a breadth-first search that tracks
//	only the three affected pieces. Pure operations cannot disturb anything
//	outside their three slots, which is asserted after each application.
//
// Why
//
//	Correctness by construction: 3-cycles are verified pure at discovery
//	time, conjugation preserves purity, and the final replay check catches
//	any residual defect. No stage ever needs to re-solve what an earlier
//	stage finished.
//
// Determinism
//
//	No randomness and no map-order dependence anywhere: base discovery,
//	target ordering, search generator order and tie-breaks are all fixed.
//	Identical input and options produce the identical Solution.
//
// Complexity
//
//	Each operation costs one bounded BFS over at most 60³ tracked-triple
//	states; a full solve applies on the order of a hundred operations.
//
// Errors
//
//	ErrInvalidState wraps the validator's rejection; ErrStageTimeout and
//	ErrCancelled report exhausted budgets and caller cancellation;
//	ErrSolveVerificationFailed reports an internal defect caught by the
//	final replay; ErrOptionViolation reports malformed options.
package solve
