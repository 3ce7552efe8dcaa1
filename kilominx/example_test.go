package kilominx_test

import (
	"fmt"

	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
)

// ExampleApply scrambles the solved puzzle and undoes the scramble.
func ExampleApply() {
	scramble, _ := kilominx.ParseMoves("F u2 BR'")

	s := kilominx.ApplyAll(kilominx.SolvedState(), scramble)
	fmt.Println("scrambled solved:", s.Solved())

	s = kilominx.ApplyAll(s, scramble.Inverse())
	fmt.Println("restored solved:", s.Solved())

	// Output:
	// scrambled solved: false
	// restored solved: true
}

// ExampleSimplify collapses redundant turns of the same face and layer.
func ExampleSimplify() {
	seq, _ := kilominx.ParseMoves("F F U U' f2 f2'")
	fmt.Printf("%q\n", kilominx.Simplify(seq).String())

	// Output:
	// "F2"
}
