package core

import "testing"

// BenchmarkPermute benchmarks the accelerated 16-word permutation
func BenchmarkPermute(b *testing.B) {
	s := ascendingState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Permute(&s); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHash10 benchmarks the accelerated hash-10 mode
func BenchmarkHash10(b *testing.B) {
	input := [Rate]uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Hash10(input); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMontMul benchmarks one Montgomery product
func BenchmarkMontMul(b *testing.B) {
	x := uint64(123456789)
	for i := 0; i < b.N; i++ {
		x = montMul(x, 987654321)
	}
	benchSink = x
}

var benchSink uint64
