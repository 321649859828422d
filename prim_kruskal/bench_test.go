package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/steinercore/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random graph with 500 nodes and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(500, 2000) // pre-build graph once
	b.ResetTimer()                   // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g, 0, g.Costs(), nil)
	}
}

// BenchmarkPrim measures performance on the same graph, rooted at node 0.
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, 0, g.Costs(), nil)
	}
}
