// Package digraph: container storage and bulk operations.

package digraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gdsl/core"
)

// ErrNoSuchNode indicates a checked operation referenced an absent key.
var ErrNoSuchNode = errors.New("digraph: no such node")

// Digraph is a keyed collection of nodes plus a cached edge count.
// The count always equals the sum of outbound degrees over all members.
type Digraph[K comparable, N any, E any] struct {
	nodes     map[K]*core.Node[K, N, E]
	edgeCount int
}

// New creates an empty Digraph.
// Complexity: O(1).
func New[K comparable, N any, E any]() *Digraph[K, N, E] {
	return &Digraph[K, N, E]{nodes: make(map[K]*core.Node[K, N, E])}
}

// Insert adds a node for key carrying value. On an existing key the value
// is overwritten in place (adjacency is untouched) and false is returned;
// on a new key the node is created and true is returned.
// Complexity: O(1).
func (g *Digraph[K, N, E]) Insert(key K, value N) bool {
	if n, ok := g.nodes[key]; ok {
		n.SetValue(value)
		return false
	}
	g.nodes[key] = core.New[K, N, E](key, value)

	return true
}

// InsertNode adds an externally created node under its own key. On key
// collision the existing member is left untouched and false is returned.
// The inserted node's existing adjacency is counted into the edge total.
// Complexity: O(1).
func (g *Digraph[K, N, E]) InsertNode(n *core.Node[K, N, E]) bool {
	if _, ok := g.nodes[n.Key()]; ok {
		return false
	}
	g.nodes[n.Key()] = n
	g.edgeCount += n.OutDegree()

	return true
}

// Connect adds the directed edge source→target carrying value. A missing
// key or an already-present edge is a silent no-op; the edge count is
// incremented only on successful mutation.
// Complexity: O(deg(source)).
func (g *Digraph[K, N, E]) Connect(source, target K, value E) {
	_ = g.TryConnect(source, target, value)
}

// TryConnect is the checked Connect: it reports the missing key or the
// duplicate edge instead of no-opping.
func (g *Digraph[K, N, E]) TryConnect(source, target K, value E) error {
	s, ok := g.nodes[source]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoSuchNode, source)
	}
	t, ok := g.nodes[target]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoSuchNode, target)
	}

	if err := s.TryConnect(t, value); err != nil {
		return err
	}
	g.edgeCount++

	return nil
}

// Disconnect removes the directed edge source→target and its mirror.
// Missing keys or a missing edge are silent no-ops; the edge count is
// decremented only on successful mutation.
// Complexity: O(deg(source) + deg(target)).
func (g *Digraph[K, N, E]) Disconnect(source, target K) {
	_ = g.TryDisconnect(source, target)
}

// TryDisconnect is the checked Disconnect.
func (g *Digraph[K, N, E]) TryDisconnect(source, target K) error {
	s, ok := g.nodes[source]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoSuchNode, source)
	}
	if _, ok = g.nodes[target]; !ok {
		return fmt.Errorf("%w: %v", ErrNoSuchNode, target)
	}

	if err := s.Disconnect(target); err != nil {
		return err
	}
	g.edgeCount--

	return nil
}

// Node returns the member node for key.
// Complexity: O(1).
func (g *Digraph[K, N, E]) Node(key K) (*core.Node[K, N, E], bool) {
	n, ok := g.nodes[key]
	return n, ok
}

// Edge returns the view of the edge source→target, if both endpoints are
// members and the edge exists.
// Complexity: O(deg(source)).
func (g *Digraph[K, N, E]) Edge(source, target K) (core.Edge[K, N, E], bool) {
	s, ok := g.nodes[source]
	if !ok {
		var zero core.Edge[K, N, E]
		return zero, false
	}

	return s.EdgeTo(target)
}

// NodeCount returns the number of member nodes.
func (g *Digraph[K, N, E]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the cached edge total: Σ outbound degree over members.
func (g *Digraph[K, N, E]) EdgeCount() int { return g.edgeCount }

// Nodes returns all member nodes in map order.
// Complexity: O(V).
func (g *Digraph[K, N, E]) Nodes() []*core.Node[K, N, E] {
	out := make([]*core.Node[K, N, E], 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}

	return out
}

// Leaves returns every member with no outbound edges.
// Complexity: O(V).
func (g *Digraph[K, N, E]) Leaves() []*core.Node[K, N, E] {
	var out []*core.Node[K, N, E]
	for _, n := range g.nodes {
		if n.OutDegree() == 0 {
			out = append(out, n)
		}
	}

	return out
}
