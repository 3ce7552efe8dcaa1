package kilominx

// State is the complete sticker assignment of the puzzle: one Color per
// facelet, indexed by FaceletID. It is a value type; Apply never mutates its
// receiver.
type State struct {
	Cells [FaceletCount]Color
}

// SolvedState returns the reference solved state under the standard palette:
// face i uniformly painted with Color i.
func SolvedState() State {
	var s State
	for i := range s.Cells {
		s.Cells[i] = Color(FaceletFace(i))
	}

	return s
}

// FaceColor returns the color of face f's super center, which names the face
// under the state's own palette.
func (s State) FaceColor(f Face) Color { return s.Cells[SuperCenterID(f)] }

// Solved reports whether every face is uniformly its super center's color.
func (s State) Solved() bool {
	for f := Face(0); f < NumFaces; f++ {
		c := s.FaceColor(f)
		for pos := 0; pos < FaceletsPerFace; pos++ {
			if s.Cells[FaceletID(f, pos)] != c {
				return false
			}
		}
	}

	return true
}
