package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/algotrace/prim_kruskal"
)

// BenchmarkKruskal measures trace generation on 200 vertices and 800 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(b, 42, 200, 800)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures trace generation on the same graph as BenchmarkKruskal.
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(b, 42, 200, 800)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g)
	}
}
