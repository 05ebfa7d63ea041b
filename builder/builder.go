// Package builder: the Builder type and its declaration methods.

package builder

import "github.com/katalvlaran/gdsl/digraph"

// Builder accumulates node and edge declarations into a Digraph.
// Zero-dependency data entry; all semantics are the container's.
type Builder[K comparable, N any, E any] struct {
	graph *digraph.Digraph[K, N, E]
}

// New creates a Builder over a fresh empty Digraph.
func New[K comparable, N any, E any]() *Builder[K, N, E] {
	return &Builder[K, N, E]{graph: digraph.New[K, N, E]()}
}

// Node declares a node with the given key and payload. Re-declaring a key
// overwrites its payload in place and keeps its edges.
func (b *Builder[K, N, E]) Node(key K, value N) *Builder[K, N, E] {
	b.graph.Insert(key, value)
	return b
}

// Edge declares the directed edge from→to carrying value. Endpoints that
// were never declared are created with zero-value payloads.
func (b *Builder[K, N, E]) Edge(from, to K, value E) *Builder[K, N, E] {
	b.ensure(from)
	b.ensure(to)
	b.graph.Connect(from, to, value)

	return b
}

// Mutual declares the edge in both orientations, the undirected variant
// of Edge.
func (b *Builder[K, N, E]) Mutual(from, to K, value E) *Builder[K, N, E] {
	b.Edge(from, to, value)
	b.Edge(to, from, value)

	return b
}

// Graph returns the constructed Digraph. The builder remains usable;
// further declarations keep mutating the same graph.
func (b *Builder[K, N, E]) Graph() *digraph.Digraph[K, N, E] {
	return b.graph
}

// ensure inserts key with a zero payload unless it is already a member.
func (b *Builder[K, N, E]) ensure(key K) {
	if _, ok := b.graph.Node(key); !ok {
		var zero N
		b.graph.Insert(key, zero)
	}
}
