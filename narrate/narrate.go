package narrate

import (
	"fmt"
	"io"

	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
	"github.com/itsAmeMario0o/master-kilominx-solver/solve"
)

var turnPhrases = [5]string{
	"", // Steps is 1..4
	"clockwise one fifth-turn",
	"clockwise two fifth-turns",
	"counter-clockwise two fifth-turns",
	"counter-clockwise one fifth-turn",
}

// Describe renders one move as an imperative instruction, naming the face
// and spelling the turn out in fifth-turns.
func Describe(mv kilominx.Move) string {
	if mv.Steps < 1 || mv.Steps > 4 {
		return fmt.Sprintf("Invalid move %v", mv)
	}

	if mv.Layer == kilominx.Slice {
		return fmt.Sprintf("Turn the inner layer under the %s face %s.",
			mv.Face.LongName(), turnPhrases[mv.Steps])
	}

	return fmt.Sprintf("Turn the %s face %s.", mv.Face.LongName(), turnPhrases[mv.Steps])
}

// Lines renders a Solution as instruction lines: a heading per stage that
// emitted moves, then its instructions numbered through the whole solve.
// An empty solution yields a single line.
func Lines(sol solve.Solution) []string {
	if sol.Len() == 0 {
		return []string{"Already solved."}
	}

	var out []string
	n := 0
	for _, st := range sol.Stages {
		if len(st.Moves) == 0 {
			continue
		}
		out = append(out, fmt.Sprintf("%s (%s):", headline(st.Name), countMoves(len(st.Moves))))
		for _, mv := range st.Moves {
			n++
			out = append(out, fmt.Sprintf("%3d. %s  [%s]", n, Describe(mv), mv))
		}
	}

	return out
}

// Export writes the instruction lines to w, one per line.
func Export(w io.Writer, sol solve.Solution) error {
	for _, line := range Lines(sol) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func countMoves(n int) string {
	if n == 1 {
		return "1 move"
	}

	return fmt.Sprintf("%d moves", n)
}

// headline upper-cases the first letter of a stage name.
func headline(name string) string {
	if name == "" {
		return name
	}
	b := []byte(name)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}

	return string(b)
}
