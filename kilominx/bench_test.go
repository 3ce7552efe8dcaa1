package kilominx

import "testing"

func BenchmarkApply(b *testing.B) {
	s := SolvedState()
	mv := Move{Face: U, Layer: Outer, Steps: 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = Apply(s, mv)
	}
	_ = s
}

func BenchmarkSimplify(b *testing.B) {
	seq, err := ParseMoves("F F U u u2 U' BR BR BR BR BR l L F' f2")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Simplify(seq)
	}
}
