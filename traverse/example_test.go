package traverse_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gdsl/builder"
	"github.com/katalvlaran/gdsl/core"
	"github.com/katalvlaran/gdsl/traverse"
)

// ExampleTraversal_PathNodes walks the classic five-vertex digraph and
// prints the breadth-first route.
func ExampleTraversal_PathNodes() {
	g := builder.New[int, struct{}, struct{}]().
		Edge(0, 1, struct{}{}).Edge(0, 2, struct{}{}).Edge(0, 3, struct{}{}).
		Edge(1, 3, struct{}{}).
		Edge(2, 4, struct{}{}).
		Edge(3, 2, struct{}{}).
		Graph()

	for _, n := range g.BFS(0).Target(4).PathNodes() {
		fmt.Println(n.Key())
	}
	// Output:
	// 0
	// 2
	// 4
}

// ExampleTraversal_SearchCycle detects the cycle through a back edge.
func ExampleTraversal_SearchCycle() {
	g := builder.New[int, struct{}, struct{}]().
		Edge(0, 1, struct{}{}).
		Edge(1, 2, struct{}{}).
		Edge(2, 0, struct{}{}).
		Graph()

	cycle := g.DFS(0).SearchCycle()
	for _, n := range cycle.Nodes() {
		fmt.Print(n.Key(), " ")
	}
	fmt.Println()
	// Output:
	// 0 1 2 0
}

// ExampleTraversal_Map runs Dijkstra as a min-priority search with a
// relaxation hook: node payloads are tentative distances, edge payloads
// are weights.
func ExampleTraversal_Map() {
	b := builder.New[string, int64, int64]()
	for _, k := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"} {
		b.Node(k, math.MaxInt64)
	}
	b.Mutual("A", "B", 4).Mutual("A", "H", 8).
		Mutual("B", "H", 11).Mutual("B", "C", 8).
		Mutual("C", "F", 4).Mutual("C", "D", 7).
		Mutual("D", "F", 14).Mutual("D", "E", 9).
		Mutual("E", "F", 10).
		Mutual("F", "G", 2).
		Mutual("G", "H", 1).Mutual("G", "I", 6).
		Mutual("H", "I", 7).
		Mutual("I", "C", 2)
	g := b.Graph()

	source, _ := g.Node("A")
	source.SetValue(0)

	traverse.PFSMin(source).Map(func(u, v *core.Node[string, int64, int64], e int64) {
		if v.Value() > u.Value()+e {
			v.SetValue(u.Value() + e)
		}
	}).Search()

	sink, _ := g.Node("E")
	fmt.Println(sink.Value())
	// Output:
	// 21
}
