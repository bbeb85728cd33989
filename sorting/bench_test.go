package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algotrace/sorting"
)

func benchInput(n int) []float64 {
	r := rand.New(rand.NewSource(1))
	in := make([]float64, n)
	for i := range in {
		in[i] = float64(r.Intn(1000))
	}
	return in
}

// BenchmarkMerge_100 measures trace generation for a full-size custom array.
func BenchmarkMerge_100(b *testing.B) {
	in := benchInput(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sorting.Merge(in)
	}
}

// BenchmarkBubble_100 is the quadratic worst case for trace size.
func BenchmarkBubble_100(b *testing.B) {
	in := benchInput(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sorting.Bubble(in)
	}
}
