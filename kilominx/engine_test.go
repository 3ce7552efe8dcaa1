package kilominx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApplyInverseIdentity checks, for every move in the alphabet, that its
// inverse undoes it and that five fifth-turns close the orbit.
func TestApplyInverseIdentity(t *testing.T) {
	solved := SolvedState()
	for f := Face(0); f < NumFaces; f++ {
		for _, layer := range []Layer{Outer, Slice} {
			for steps := 1; steps <= 4; steps++ {
				mv := Move{Face: f, Layer: layer, Steps: steps}
				assert.Equal(t, solved, Apply(Apply(solved, mv), mv.Inverse()), "%v", mv)
			}

			one := Move{Face: f, Layer: layer, Steps: 1}
			s := solved
			for i := 0; i < 5; i++ {
				s = Apply(s, one)
			}
			assert.Equal(t, solved, s, "%v/%v order 5", f, layer)
		}
	}
}

// TestApplyMovesStickers checks a turn is not a no-op and keeps the color
// census intact.
func TestApplyMovesStickers(t *testing.T) {
	s := Apply(SolvedState(), Move{Face: U, Layer: Outer, Steps: 1})
	assert.NotEqual(t, SolvedState(), s)

	var census [NumColors]int
	for _, c := range s.Cells {
		census[c]++
	}
	for c, n := range census {
		assert.Equal(t, FaceletsPerColor, n, "color %v", Color(c))
	}
}

// TestApplyDoesNotMutateInput checks value semantics of Apply.
func TestApplyDoesNotMutateInput(t *testing.T) {
	s := SolvedState()
	_ = Apply(s, Move{Face: F, Layer: Slice, Steps: 2})
	assert.Equal(t, SolvedState(), s)
}

// TestSimplifyMergesAndCancels pins the mod-5 merge rules, including
// cascading cancellation across a removed pair.
func TestSimplifyMergesAndCancels(t *testing.T) {
	cases := []struct{ in, want string }{
		{"F F", "F2"},
		{"F F2", "F2'"},
		{"F2 F2'", ""},
		{"F F'", ""},
		{"F2 F2 F", ""},
		{"F f", "F f"},
		{"F U U' F'", ""},
		{"br br2'", "br'"},
		{"F U F'", "F U F'"},
	}
	for _, tc := range cases {
		seq, err := ParseMoves(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, Simplify(seq).String(), "input %q", tc.in)
	}
}

// TestSimplifyPreservesEffect checks Simplify against the engine on a longer
// redundant sequence.
func TestSimplifyPreservesEffect(t *testing.T) {
	seq, err := ParseMoves("F F U u u2 U' BR BR BR BR BR l L")
	require.NoError(t, err)

	simplified := Simplify(seq)
	assert.Less(t, len(simplified), len(seq))
	assert.Equal(t, ApplyAll(SolvedState(), seq), ApplyAll(SolvedState(), simplified))
}

// TestSolvedStateProperties checks the reference state and the Solved
// predicate under scrambling.
func TestSolvedStateProperties(t *testing.T) {
	s := SolvedState()
	assert.True(t, s.Solved())
	for f := Face(0); f < NumFaces; f++ {
		assert.Equal(t, Color(f), s.FaceColor(f))
	}

	scrambled := Apply(s, Move{Face: D, Layer: Outer, Steps: 2})
	assert.False(t, scrambled.Solved())
}
