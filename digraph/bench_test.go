package digraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gdsl/digraph"
)

// buildRandom populates a digraph with n nodes of out-degree at most deg
// (a duplicate draw is a Connect no-op), edges drawn from a seeded source
// for reproducibility.
func buildRandom(n, deg int) *digraph.Digraph[int, struct{}, struct{}] {
	rng := rand.New(rand.NewSource(42))
	g := digraph.New[int, struct{}, struct{}]()
	for i := 0; i < n; i++ {
		g.Insert(i, struct{}{})
	}
	for i := 0; i < n; i++ {
		for d := 0; d < deg; d++ {
			g.Connect(i, rng.Intn(n), struct{}{})
		}
	}

	return g
}

// BenchmarkConstruction measures insert+connect on a 1000-node graph.
func BenchmarkConstruction(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buildRandom(1000, 10)
	}
}

// BenchmarkBFS_Random sweeps a dense random graph breadth-first.
func BenchmarkBFS_Random(b *testing.B) {
	g := buildRandom(10000, 10)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.BFS(0).Search()
	}
}

// BenchmarkDFS_Random sweeps the same graph depth-first.
func BenchmarkDFS_Random(b *testing.B) {
	g := buildRandom(10000, 10)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.DFS(0).Search()
	}
}
