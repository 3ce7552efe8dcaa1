package kilominx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseMoveRoundTrip checks that every move in the alphabet survives a
// format/parse round trip.
func TestParseMoveRoundTrip(t *testing.T) {
	for f := Face(0); f < NumFaces; f++ {
		for _, layer := range []Layer{Outer, Slice} {
			for steps := 1; steps <= 4; steps++ {
				mv := Move{Face: f, Layer: layer, Steps: steps}
				got, err := ParseMove(mv.String())
				require.NoError(t, err, "token %q", mv.String())
				assert.Equal(t, mv, got)
			}
		}
	}
}

// TestParseMoveNotation pins the notation conventions: case selects the
// layer, the suffix the turn amount, two-letter faces parse whole.
func TestParseMoveNotation(t *testing.T) {
	cases := []struct {
		tok  string
		want Move
	}{
		{"F", Move{F, Outer, 1}},
		{"F2", Move{F, Outer, 2}},
		{"F2'", Move{F, Outer, 3}},
		{"F'", Move{F, Outer, 4}},
		{"f", Move{F, Slice, 1}},
		{"br'", Move{BR, Slice, 4}},
		{"BU2", Move{BU, Outer, 2}},
		{"ul", Move{UL, Slice, 1}},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.tok)
		require.NoError(t, err, tc.tok)
		assert.Equal(t, tc.want, got, tc.tok)
	}
}

// TestParseMoveRejectsGarbage checks that malformed tokens wrap ErrBadMove.
func TestParseMoveRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "X", "F3", "F''", "2", "FX", "bR2x"} {
		_, err := ParseMove(tok)
		assert.ErrorIs(t, err, ErrBadMove, "token %q", tok)
	}
}

// TestParseMovesSequence checks whitespace-separated sequence parsing and
// formatting.
func TestParseMovesSequence(t *testing.T) {
	seq, err := ParseMoves("F u2 BR' bd2'")
	require.NoError(t, err)
	require.Len(t, seq, 4)
	assert.Equal(t, "F u2 BR' bd2'", seq.String())

	_, err = ParseMoves("F q")
	assert.ErrorIs(t, err, ErrBadMove)
}

// TestInverseUndoes checks Move.Inverse and MoveSequence.Inverse against the
// engine: applying a sequence then its inverse restores the state.
func TestInverseUndoes(t *testing.T) {
	seq, err := ParseMoves("F u2 BR' l bd2' UR")
	require.NoError(t, err)

	s := SolvedState()
	got := ApplyAll(ApplyAll(s, seq), seq.Inverse())
	assert.Equal(t, s, got)
}
