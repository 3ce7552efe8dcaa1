package kilominx

import "fmt"

// Apply returns the state after performing mv on s. The input state is left
// untouched. Apply panics only on a Move with Steps outside 1..4 or a face
// outside the enum, which indicates a caller bug; parsed moves are always in
// range.
func Apply(s State, mv Move) State {
	if err := checkMove(mv); err != nil {
		panic(err)
	}

	table := GetModel().MoveTable(mv)
	var out State
	for i, c := range s.Cells {
		out.Cells[table[i]] = c
	}

	return out
}

// ApplyAll folds a sequence over s, left to right.
func ApplyAll(s State, seq MoveSequence) State {
	for _, mv := range seq {
		s = Apply(s, mv)
	}

	return s
}

// CheckMove reports whether mv is a well-formed move, wrapping ErrBadMove
// if not.
func CheckMove(mv Move) error { return checkMove(mv) }

func checkMove(mv Move) error {
	if mv.Face >= NumFaces {
		return fmt.Errorf("%w: face %d out of range", ErrBadMove, mv.Face)
	}
	if mv.Layer > Slice {
		return fmt.Errorf("%w: layer %d out of range", ErrBadMove, mv.Layer)
	}
	if mv.Steps < 1 || mv.Steps > 4 {
		return fmt.Errorf("%w: steps %d out of range", ErrBadMove, mv.Steps)
	}

	return nil
}

// Simplify merges adjacent moves on the same face and layer mod 5 and drops
// the ones that cancel, cascading through newly adjacent pairs. The result
// performs the same net permutation as the input.
func Simplify(seq MoveSequence) MoveSequence {
	out := make(MoveSequence, 0, len(seq))
	for _, mv := range seq {
		out = append(out, mv)
		// Merge the new tail while it matches the move before it.
		for len(out) >= 2 {
			a, b := out[len(out)-2], out[len(out)-1]
			if a.Face != b.Face || a.Layer != b.Layer {
				break
			}
			steps := (a.Steps + b.Steps) % 5
			out = out[:len(out)-2]
			if steps != 0 {
				out = append(out, Move{Face: a.Face, Layer: a.Layer, Steps: steps})
				break
			}
		}
	}

	return out
}
