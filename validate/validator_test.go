package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
)

func cellsOf(s kilominx.State) []Cell {
	cells := make([]Cell, kilominx.FaceletCount)
	for i, c := range s.Cells {
		cells[i] = Cell{Facelet: i, Color: c}
	}

	return cells
}

// TestValidateSolved checks the solved state passes and yields identity
// piece permutations with zero twists.
func TestValidateSolved(t *testing.T) {
	s, p, err := Validate(cellsOf(kilominx.SolvedState()))
	require.NoError(t, err)
	assert.True(t, s.Solved())

	for i, home := range p.CornerPerm {
		assert.Equal(t, i, home)
		assert.Zero(t, p.CornerTwist[i])
	}
	for i, home := range p.WingPerm {
		assert.Equal(t, i, home)
	}
	for f := kilominx.Face(0); f < kilominx.NumFaces; f++ {
		assert.Equal(t, kilominx.Color(f), p.FaceColor[f])
		assert.Equal(t, f, p.ColorFace[kilominx.Color(f)])
	}
}

// TestValidateScrambled checks that any state reached by legal moves
// validates, across outer and slice turns.
func TestValidateScrambled(t *testing.T) {
	seq, err := kilominx.ParseMoves("F u2 BR' l bd2' UR D2 bl U' r2")
	require.NoError(t, err)

	s := kilominx.ApplyAll(kilominx.SolvedState(), seq)
	_, p, verr := Validate(cellsOf(s))
	require.NoError(t, verr)
	require.NotNil(t, p)
}

// TestValidateBadAssignment covers the input-contract failures: duplicate
// facelet, missing facelet, out-of-range id and color.
func TestValidateBadAssignment(t *testing.T) {
	base := cellsOf(kilominx.SolvedState())

	dup := append([]Cell{}, base...)
	dup[5] = dup[4]
	_, _, err := Validate(dup)
	assert.ErrorIs(t, err, ErrBadAssignment)

	_, _, err = Validate(base[:len(base)-1])
	assert.ErrorIs(t, err, ErrBadAssignment)

	_, _, err = Validate([]Cell{{Facelet: kilominx.FaceletCount, Color: kilominx.White}})
	assert.ErrorIs(t, err, ErrBadAssignment)

	bad := append([]Cell{}, base...)
	bad[0].Color = kilominx.NumColors
	_, _, err = Validate(bad)
	assert.ErrorIs(t, err, ErrBadAssignment)
}

// TestValidateColorCountMismatch repaints one sticker and expects the census
// check to fire first.
func TestValidateColorCountMismatch(t *testing.T) {
	s := kilominx.SolvedState()
	s.Cells[kilominx.FaceletID(kilominx.F, 0)] = kilominx.Gray

	_, err := ValidateState(s)
	assert.ErrorIs(t, err, ErrColorCountMismatch)
}

// TestValidateDuplicateCenterColor swaps a super center with a foreign petal
// so the census stays intact but two faces share a center color.
func TestValidateDuplicateCenterColor(t *testing.T) {
	s := kilominx.SolvedState()
	a := kilominx.SuperCenterID(kilominx.F)
	b := kilominx.PetalID(kilominx.U, 0)
	s.Cells[a], s.Cells[b] = s.Cells[b], s.Cells[a]

	_, err := ValidateState(s)
	require.ErrorIs(t, err, ErrDuplicateCenterColor)

	var ce *CheckError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Facelets, a)
}

// TestValidateImpossiblePiece swaps petals across faces: counts and centers
// stay fine, but a center block is no longer uniform.
func TestValidateImpossiblePiece(t *testing.T) {
	s := kilominx.SolvedState()
	a := kilominx.PetalID(kilominx.F, 1)
	b := kilominx.PetalID(kilominx.U, 1)
	s.Cells[a], s.Cells[b] = s.Cells[b], s.Cells[a]

	_, err := ValidateState(s)
	require.ErrorIs(t, err, ErrImpossiblePieceColorCombination)

	var ce *CheckError
	require.ErrorAs(t, err, &ce)
	assert.NotEmpty(t, ce.Facelets)
}

// TestValidateMirroredCorner swaps two stickers within one corner triple.
// Counts and centers stay valid, but the reversed cyclic order is a
// chirality no real corner has.
func TestValidateMirroredCorner(t *testing.T) {
	m := kilominx.GetModel()
	s := kilominx.SolvedState()
	cs := m.CornerSlot(0)
	s.Cells[cs.Facelets[1]], s.Cells[cs.Facelets[2]] =
		s.Cells[cs.Facelets[2]], s.Cells[cs.Facelets[1]]

	_, err := ValidateState(s)
	assert.ErrorIs(t, err, ErrImpossiblePieceColorCombination)
}

// TestValidateTwistedCorner rotates one corner's stickers in place. The
// assembly is physically possible but outside the move group.
func TestValidateTwistedCorner(t *testing.T) {
	m := kilominx.GetModel()
	s := kilominx.SolvedState()
	cs := m.CornerSlot(3)
	c0, c1, c2 := s.Cells[cs.Facelets[0]], s.Cells[cs.Facelets[1]], s.Cells[cs.Facelets[2]]
	s.Cells[cs.Facelets[0]], s.Cells[cs.Facelets[1]], s.Cells[cs.Facelets[2]] = c2, c0, c1

	_, err := ValidateState(s)
	assert.ErrorIs(t, err, ErrUnreachableState)
}

// TestValidateFlippedEdge swaps the two wings of a single composite edge.
// That is a lone wing transposition, hence an odd wing permutation.
func TestValidateFlippedEdge(t *testing.T) {
	m := kilominx.GetModel()
	s := kilominx.SolvedState()
	even, odd := m.WingSlot(0), m.WingSlot(1)
	s.Cells[even.Facelets[0]], s.Cells[odd.Facelets[0]] =
		s.Cells[odd.Facelets[0]], s.Cells[even.Facelets[0]]
	s.Cells[even.Facelets[1]], s.Cells[odd.Facelets[1]] =
		s.Cells[odd.Facelets[1]], s.Cells[even.Facelets[1]]

	_, err := ValidateState(s)
	assert.ErrorIs(t, err, ErrUnreachableState)
}

// TestValidateSwappedCorners exchanges two corner pieces whole, leaving an
// odd corner permutation.
func TestValidateSwappedCorners(t *testing.T) {
	m := kilominx.GetModel()
	s := kilominx.SolvedState()
	a, b := m.CornerSlot(0), m.CornerSlot(1)
	for j := 0; j < 3; j++ {
		s.Cells[a.Facelets[j]] = kilominx.Color(b.Faces[j])
		s.Cells[b.Facelets[j]] = kilominx.Color(a.Faces[j])
	}

	_, err := ValidateState(s)
	assert.ErrorIs(t, err, ErrUnreachableState)
}

// TestValidateIdempotent checks the validator is read-only: validating twice
// gives identical results.
func TestValidateIdempotent(t *testing.T) {
	seq, err := kilominx.ParseMoves("F u2 BR'")
	require.NoError(t, err)
	s := kilominx.ApplyAll(kilominx.SolvedState(), seq)

	p1, err1 := ValidateState(s)
	p2, err2 := ValidateState(s)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, p1, p2)
}
