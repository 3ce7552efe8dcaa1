package validate

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind. Returned errors wrap these, so
// callers match with errors.Is and recover facelet detail with errors.As on
// *CheckError.
var (
	// ErrBadAssignment reports an input that is not a complete one-color-per-
	// facelet assignment: out-of-range ids or colors, duplicates, omissions.
	ErrBadAssignment = errors.New("validate: bad assignment")

	// ErrColorCountMismatch reports a color census other than 21 per color.
	ErrColorCountMismatch = errors.New("validate: color count mismatch")

	// ErrDuplicateCenterColor reports two faces sharing a super-center color.
	ErrDuplicateCenterColor = errors.New("validate: duplicate center color")

	// ErrImpossiblePieceColorCombination reports a facelet combination no
	// physical piece of this puzzle carries.
	ErrImpossiblePieceColorCombination = errors.New("validate: impossible piece color combination")

	// ErrUnreachableState reports a well-formed assembly outside the puzzle's
	// move group.
	ErrUnreachableState = errors.New("validate: unreachable state")
)

// CheckError is the concrete error type of every validation failure. It
// wraps the kind sentinel and lists the facelets implicated, for callers
// that highlight the offending stickers.
type CheckError struct {
	Kind     error  // one of the package sentinels
	Detail   string // human-readable specifics
	Facelets []int  // offending facelet ids, ascending; may be empty
}

// Error implements error.
func (e *CheckError) Error() string {
	if len(e.Facelets) == 0 {
		return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
	}

	return fmt.Sprintf("%v: %s (facelets %v)", e.Kind, e.Detail, e.Facelets)
}

// Unwrap exposes the kind sentinel to errors.Is.
func (e *CheckError) Unwrap() error { return e.Kind }

func checkErr(kind error, facelets []int, format string, args ...any) *CheckError {
	return &CheckError{
		Kind:     kind,
		Detail:   fmt.Sprintf(format, args...),
		Facelets: facelets,
	}
}
