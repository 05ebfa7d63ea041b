// Package digraph: traversal forwarders and diagnostics.

package digraph

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gdsl/traverse"
)

// DFS returns a depth-first traversal rooted at key. An absent key yields
// a nil-rooted traversal whose terminals all return nil.
func (g *Digraph[K, N, E]) DFS(key K) *traverse.Traversal[K, N, E] {
	return traverse.DFS(g.nodes[key])
}

// BFS returns a breadth-first traversal rooted at key; absent keys behave
// as in DFS.
func (g *Digraph[K, N, E]) BFS(key K) *traverse.Traversal[K, N, E] {
	return traverse.BFS(g.nodes[key])
}

// PFS returns a priority-first traversal rooted at key, ordered by less
// over node payloads (Min discipline unless chained otherwise).
func (g *Digraph[K, N, E]) PFS(key K, less func(a, b N) bool) *traverse.Traversal[K, N, E] {
	return traverse.PFS(g.nodes[key], less)
}

// Print writes every node followed by its outbound edges to w.
// The format is human-oriented and not bit-specified.
func (g *Digraph[K, N, E]) Print(w io.Writer) {
	for _, n := range g.nodes {
		fmt.Fprintln(w, n)
		for e := range n.IterOut() {
			fmt.Fprintf(w, "\t%v\n", e)
		}
	}
}

// PrintNodes writes one line per node to w.
func (g *Digraph[K, N, E]) PrintNodes(w io.Writer) {
	for _, n := range g.nodes {
		fmt.Fprintln(w, n)
	}
}

// PrintEdges writes one line per edge to w.
func (g *Digraph[K, N, E]) PrintEdges(w io.Writer) {
	for _, n := range g.nodes {
		for e := range n.IterOut() {
			fmt.Fprintln(w, e)
		}
	}
}

// Bytesize returns the summed diagnostic byte count of all member nodes,
// adjacency storage included.
// Complexity: O(V).
func (g *Digraph[K, N, E]) Bytesize() uintptr {
	var total uintptr
	for _, n := range g.nodes {
		total += n.Sizeof()
	}

	return total
}
