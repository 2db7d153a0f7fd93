// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/lvds/core"
)

// BenchmarkAddEdge measures adding fan-out edges from a single root.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph(core.WithVertices(b.N+1), core.WithCapacity(b.N+1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(0, i+1, float64(i))
	}
}

// BenchmarkAddEdge_MultiEdges measures parallel edges over a small target set.
func BenchmarkAddEdge_MultiEdges(b *testing.B) {
	g := core.NewGraph(core.WithVertices(101), core.WithMultiEdges())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Cycle through 100 target nodes to stress many parallel edges
		_ = g.AddEdge(0, 1+i%100, float64(i))
	}
}

// BenchmarkRemoveVertex measures cascading removal of a hub vertex in a star graph.
func BenchmarkRemoveVertex(b *testing.B) {
	const leaves = 1000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := core.NewGraph(core.WithVertices(leaves + 1))
		for v := 1; v <= leaves; v++ {
			_ = g.AddUndirectedEdge(0, v, 1)
		}
		b.StartTimer()
		_ = g.RemoveVertex(0)
	}
}

// BenchmarkNeighbors measures adjacency snapshot cost on a dense vertex.
func BenchmarkNeighbors(b *testing.B) {
	const deg = 512
	g := core.NewGraph(core.WithVertices(deg + 1))
	for v := 1; v <= deg; v++ {
		_ = g.AddEdge(0, v, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(0)
	}
}
