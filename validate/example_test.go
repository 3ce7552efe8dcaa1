package validate_test

import (
	"errors"
	"fmt"

	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
	"github.com/itsAmeMario0o/master-kilominx-solver/validate"
)

// ExampleValidateState rejects a lone twisted corner as unreachable.
func ExampleValidateState() {
	s := kilominx.SolvedState()
	cs := kilominx.GetModel().CornerSlot(0)
	c0, c1, c2 := s.Cells[cs.Facelets[0]], s.Cells[cs.Facelets[1]], s.Cells[cs.Facelets[2]]
	s.Cells[cs.Facelets[0]], s.Cells[cs.Facelets[1]], s.Cells[cs.Facelets[2]] = c2, c0, c1

	_, err := validate.ValidateState(s)
	fmt.Println(errors.Is(err, validate.ErrUnreachableState))

	// Output:
	// true
}
