package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
)

func gridOf(s kilominx.State) string {
	var sb strings.Builder
	for f := kilominx.Face(0); f < kilominx.NumFaces; f++ {
		for pos := 0; pos < kilominx.FaceletsPerFace; pos++ {
			if pos > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(s.Cells[kilominx.FaceletID(f, pos)].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// TestRunSolvedGrid feeds the solved grid and expects exit 0 with the
// already-solved line.
func TestRunSolvedGrid(t *testing.T) {
	var out, errOut strings.Builder
	code := run(nil, strings.NewReader(gridOf(kilominx.SolvedState())), &out, &errOut)

	assert.Equal(t, 0, code, errOut.String())
	assert.Equal(t, "Already solved.\n", out.String())
}

// TestRunScrambledGrid solves a scrambled grid and prints instructions.
func TestRunScrambledGrid(t *testing.T) {
	seq, err := kilominx.ParseMoves("F u2 BR'")
	require.NoError(t, err)
	s := kilominx.ApplyAll(kilominx.SolvedState(), seq)

	var out, errOut strings.Builder
	code := run(nil, strings.NewReader(gridOf(s)), &out, &errOut)

	assert.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "Turn the")
}

// TestRunInvalidState exits 1 on a well-formed but unreachable grid.
func TestRunInvalidState(t *testing.T) {
	s := kilominx.SolvedState()
	cs := kilominx.GetModel().CornerSlot(0)
	c0, c1, c2 := s.Cells[cs.Facelets[0]], s.Cells[cs.Facelets[1]], s.Cells[cs.Facelets[2]]
	s.Cells[cs.Facelets[0]], s.Cells[cs.Facelets[1]], s.Cells[cs.Facelets[2]] = c2, c0, c1

	var out, errOut strings.Builder
	code := run(nil, strings.NewReader(gridOf(s)), &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "invalid state")
}

// TestRunBadInput exits 3 on malformed grids.
func TestRunBadInput(t *testing.T) {
	for _, input := range []string{
		"",
		"White White\n",
		strings.Repeat("NotAColor\n", 12),
	} {
		var out, errOut strings.Builder
		code := run(nil, strings.NewReader(input), &out, &errOut)
		assert.Equal(t, 3, code, "input %q", input)
	}
}
