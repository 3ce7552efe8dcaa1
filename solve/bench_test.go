package solve

import (
	"testing"

	"github.com/itsAmeMario0o/master-kilominx-solver/kilominx"
)

func BenchmarkSolve(b *testing.B) {
	seq, err := kilominx.ParseMoves("F u2 BR' l bd2' UR D2 bl U' r2")
	if err != nil {
		b.Fatal(err)
	}
	s := kilominx.ApplyAll(kilominx.SolvedState(), seq)
	getEngine()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWingSetup(b *testing.B) {
	e := getEngine()
	o, err := buildOptions(nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bud := o.newBudget("bench")
		if _, err := e.findWingSetup([3]int{7, 23, 41}, bud); err != nil {
			b.Fatal(err)
		}
	}
}
