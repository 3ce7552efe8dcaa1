package solve

import "errors"

var (
	// ErrOptionViolation reports a malformed functional option, such as a
	// negative timeout or a zero search depth.
	ErrOptionViolation = errors.New("solve: option violation")

	// ErrInvalidState reports an input state that fails validation. Callers
	// should validate first; Solve re-checks and wraps the validator error.
	ErrInvalidState = errors.New("solve: invalid state")

	// ErrStageTimeout reports a stage exceeding its wall-clock or node
	// budget. The wrapped detail names the stage.
	ErrStageTimeout = errors.New("solve: stage timeout")

	// ErrCancelled reports cooperative cancellation through the caller's
	// context, observed at a search-node boundary.
	ErrCancelled = errors.New("solve: cancelled")

	// ErrSolveVerificationFailed reports that the composed sequence did not
	// reproduce the solved state on replay, or that an internal purity
	// assertion fired. Either way it signals a solver defect, never bad
	// input.
	ErrSolveVerificationFailed = errors.New("solve: verification failed")
)
