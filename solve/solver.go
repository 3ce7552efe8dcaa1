package solve

import (
	"fmt"

	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
	"github.com/itsAmeMario0o/master-kilominx-solver/validate"
)

// Stage names, in pipeline order. They key the per-stage subsequences of a
// Solution and appear in budget errors and narration headings.
const (
	StageCenters   = "centers"
	StagePairing   = "edge pairing"
	StageReduction = "reduction"
	StageVerify    = "verification"
)

// StageMoves is the subsequence one pipeline stage emitted.
type StageMoves struct {
	Name  string
	Moves kilominx.MoveSequence
}

// Solution is a complete solve: the composed, simplified move sequence and
// the per-stage subsequences it was assembled from. Moves may be shorter
// than the stages' total where turns cancel across a stage boundary; its
// net effect is identical.
type Solution struct {
	Moves  kilominx.MoveSequence
	Stages []StageMoves
}

// Len returns the length of the composed sequence.
func (s Solution) Len() int { return len(s.Moves) }

// Solve reduces state to the solved state and returns the moves that do it.
// The input must be valid; Solve re-validates and wraps any rejection in
// ErrInvalidState. An already-solved input yields an empty Solution. The
// same state and options always produce the same Solution.
func Solve(state kilominx.State, opts ...Option) (Solution, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Solution{}, err
	}

	pieces, err := validate.ValidateState(state)
	if err != nil {
		return Solution{}, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	sol := Solution{Stages: []StageMoves{
		{Name: StageCenters},
		{Name: StagePairing},
		{Name: StageReduction},
		{Name: StageVerify},
	}}

	if state.Solved() {
		return sol, nil
	}

	eng := getEngine()
	c := cubeFromPieces(pieces)

	if err := stageCenters(state); err != nil {
		return Solution{}, err
	}

	bud := o.newBudget(StagePairing)
	pairMoves, c, err := stagePairing(c, eng, o, bud)
	if err != nil {
		return Solution{}, err
	}
	pairMoves = kilominx.Simplify(pairMoves)
	sol.Stages[1].Moves = pairMoves

	bud = o.newBudget(StageReduction)
	redMoves, c, err := stageReduction(c, eng, bud)
	if err != nil {
		return Solution{}, err
	}
	redMoves = kilominx.Simplify(redMoves)
	sol.Stages[2].Moves = redMoves

	if !c.solved() {
		return Solution{}, fmt.Errorf("%w: piece view unsolved after reduction",
			ErrSolveVerificationFailed)
	}

	composed := make(kilominx.MoveSequence, 0, len(pairMoves)+len(redMoves))
	composed = append(composed, pairMoves...)
	composed = append(composed, redMoves...)
	sol.Moves = kilominx.Simplify(composed)

	if replay := kilominx.ApplyAll(state, sol.Moves); !replay.Solved() {
		return Solution{}, fmt.Errorf("%w: replay does not reach the solved state",
			ErrSolveVerificationFailed)
	}

	return sol, nil
}
