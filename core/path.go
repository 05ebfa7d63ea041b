// Package core: the Path result type emitted by traversals.

package core

// Path is an ordered sequence of edge views representing a traversal trace.
// Traversals never produce an empty Path; absence of a route is a nil *Path.
type Path[K comparable, N any, E any] struct {
	edges []Edge[K, N, E]
}

// NewPath wraps an edge sequence in a Path. The slice is not copied.
func NewPath[K comparable, N any, E any](edges []Edge[K, N, E]) *Path[K, N, E] {
	return &Path[K, N, E]{edges: edges}
}

// Edges returns the underlying edge sequence.
func (p *Path[K, N, E]) Edges() []Edge[K, N, E] { return p.edges }

// Len returns the number of edges in the path.
func (p *Path[K, N, E]) Len() int { return len(p.edges) }

// Nodes projects the path to its node sequence: the source of the first
// edge followed by the target of every edge in order. A cycle therefore
// begins and ends with the same node.
func (p *Path[K, N, E]) Nodes() []*Node[K, N, E] {
	if len(p.edges) == 0 {
		return nil
	}

	nodes := make([]*Node[K, N, E], 0, len(p.edges)+1)
	nodes = append(nodes, p.edges[0].Source)
	for _, e := range p.edges {
		nodes = append(nodes, e.Target)
	}

	return nodes
}

// First returns the first edge of the path.
func (p *Path[K, N, E]) First() (Edge[K, N, E], bool) {
	if len(p.edges) == 0 {
		var zero Edge[K, N, E]
		return zero, false
	}

	return p.edges[0], true
}

// Last returns the last edge of the path; its Target is the terminal node.
func (p *Path[K, N, E]) Last() (Edge[K, N, E], bool) {
	if len(p.edges) == 0 {
		var zero Edge[K, N, E]
		return zero, false
	}

	return p.edges[len(p.edges)-1], true
}

// Backtrack returns the path itself. Paths are already emitted in walk
// order; the method exists for API compatibility with callers that
// re-orient parent-map traces.
func (p *Path[K, N, E]) Backtrack() *Path[K, N, E] { return p }
