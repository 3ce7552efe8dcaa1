package solve

import (
	"fmt"

	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
)

// stageCenters confirms the five-fold alignment of every center block. No
// move transports a petal off its face, so on a validated state every block
// already agrees with its super center under each of the five rotations
// being the identity on colors; the stage checks all five positions and
// emits no moves.
func stageCenters(s kilominx.State) error {
	for f := kilominx.Face(0); f < kilominx.NumFaces; f++ {
		want := s.FaceColor(f)
		for k := 0; k < 5; k++ {
			if s.Cells[kilominx.PetalID(f, k)] != want {
				return fmt.Errorf("%w: center block of %v misaligned",
					ErrSolveVerificationFailed, f)
			}
		}
	}

	return nil
}
