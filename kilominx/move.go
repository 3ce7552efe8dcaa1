package kilominx

import (
	"fmt"
	"strings"
)

// Layer selects which layer of a face axis a move turns.
type Layer uint8

const (
	// Outer turns the face cap itself together with the neighbor strips
	// bordering it.
	Outer Layer = iota
	// Slice turns the inner cut just below the cap; the cap stays put.
	Slice
)

// String returns "outer" or "slice".
func (l Layer) String() string {
	if l == Slice {
		return "slice"
	}

	return "outer"
}

// Move is one quarter of the puzzle's move alphabet: a face axis, a layer,
// and 1..4 clockwise fifth-turns. The zero Steps value is invalid.
type Move struct {
	Face  Face
	Layer Layer
	Steps int // clockwise fifth-turns, 1..4
}

// Inverse returns the move undoing m.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Layer: m.Layer, Steps: 5 - m.Steps}
}

// String formats m in standard notation: an upper-case face letter pair for
// outer turns, lower-case for slice turns, followed by the turn suffix
// ("", "2", "2'", "'").
func (m Move) String() string {
	face := m.Face.String()
	if m.Layer == Slice {
		face = strings.ToLower(face)
	}

	switch m.Steps {
	case 1:
		return face
	case 2:
		return face + "2"
	case 3:
		return face + "2'"
	case 4:
		return face + "'"
	default:
		return face + "?"
	}
}

// ParseMove parses a single move token. The face letters are case-significant:
// "F2'" is an outer double counterclockwise turn, "f2'" the slice one.
func ParseMove(tok string) (Move, error) {
	if tok == "" {
		return Move{}, fmt.Errorf("%w: empty token", ErrBadMove)
	}

	// Split the face letters from the turn suffix.
	i := 0
	for i < len(tok) && isFaceLetter(tok[i]) {
		i++
	}
	faceStr, suffix := tok[:i], tok[i:]
	if faceStr == "" {
		return Move{}, fmt.Errorf("%w: %q has no face letters", ErrBadMove, tok)
	}

	layer := Outer
	if faceStr == strings.ToLower(faceStr) {
		layer = Slice
	}

	var face Face
	found := false
	upper := strings.ToUpper(faceStr)
	for f, name := range faceNames {
		if name == upper {
			face = Face(f)
			found = true
			break
		}
	}
	if !found {
		return Move{}, fmt.Errorf("%w: unknown face %q", ErrBadMove, faceStr)
	}

	var steps int
	switch suffix {
	case "":
		steps = 1
	case "2":
		steps = 2
	case "2'":
		steps = 3
	case "'":
		steps = 4
	default:
		return Move{}, fmt.Errorf("%w: bad turn suffix %q in %q", ErrBadMove, suffix, tok)
	}

	return Move{Face: face, Layer: layer, Steps: steps}, nil
}

func isFaceLetter(c byte) bool {
	switch c {
	case 'F', 'U', 'R', 'D', 'L', 'B', 'f', 'u', 'r', 'd', 'l', 'b':
		return true
	default:
		return false
	}
}

// MoveSequence is an ordered list of moves, applied left to right.
type MoveSequence []Move

// String joins the sequence in notation, space-separated.
func (s MoveSequence) String() string {
	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = m.String()
	}

	return strings.Join(parts, " ")
}

// Inverse returns the sequence undoing s: inverses in reverse order.
func (s MoveSequence) Inverse() MoveSequence {
	inv := make(MoveSequence, len(s))
	for i, m := range s {
		inv[len(s)-1-i] = m.Inverse()
	}

	return inv
}

// ParseMoves parses a whitespace-separated sequence in standard notation.
func ParseMoves(text string) (MoveSequence, error) {
	fields := strings.Fields(text)
	seq := make(MoveSequence, 0, len(fields))
	for _, tok := range fields {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, err
		}
		seq = append(seq, m)
	}

	return seq, nil
}
