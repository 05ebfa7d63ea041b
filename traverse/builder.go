// Package traverse: the fluent Traversal builder: constructors, setters,
// and terminal operations. The search itself lives in driver.go.

package traverse

import (
	"cmp"

	"github.com/katalvlaran/gdsl/core"
)

// searchOrder tags the frontier discipline of a Traversal.
type searchOrder uint8

const (
	orderDFS searchOrder = iota
	orderBFS
	orderPFS
)

// Traversal is a configuration carrier for one search. Construct it with
// DFS, BFS, or PFS, chain setters, then invoke a terminal. A Traversal is
// single-use state-wise but cheap to rebuild; setters return the receiver
// for chaining.
//
// A nil root is tolerated: every terminal returns nil. This lets container
// forwarders hand out traversals for absent keys without a separate error path.
type Traversal[K comparable, N any, E any] struct {
	root   *core.Node[K, N, E]
	target *K
	dir    Direction
	cb     callback[K, N, E]
	ord    searchOrder
	prio   Priority
	less   func(a, b N) bool
}

// DFS builds a depth-first traversal rooted at root.
func DFS[K comparable, N any, E any](root *core.Node[K, N, E]) *Traversal[K, N, E] {
	return &Traversal[K, N, E]{root: root, ord: orderDFS}
}

// BFS builds a breadth-first traversal rooted at root.
func BFS[K comparable, N any, E any](root *core.Node[K, N, E]) *Traversal[K, N, E] {
	return &Traversal[K, N, E]{root: root, ord: orderBFS}
}

// PFS builds a priority-first traversal rooted at root, ordered by the node
// payload under less. The discipline defaults to Min; chain Max() to flip it.
// Panics on a nil comparison; a priority order without one is meaningless.
func PFS[K comparable, N any, E any](root *core.Node[K, N, E], less func(a, b N) bool) *Traversal[K, N, E] {
	if less == nil {
		panic("traverse: PFS(nil comparison)")
	}

	return &Traversal[K, N, E]{root: root, ord: orderPFS, less: less}
}

// PFSMin builds a min-priority traversal for naturally ordered payloads.
func PFSMin[K comparable, N cmp.Ordered, E any](root *core.Node[K, N, E]) *Traversal[K, N, E] {
	return PFS(root, cmp.Less[N])
}

// PFSMax builds a max-priority traversal for naturally ordered payloads.
func PFSMax[K comparable, N cmp.Ordered, E any](root *core.Node[K, N, E]) *Traversal[K, N, E] {
	return PFS(root, cmp.Less[N]).Max()
}

// Target sets the goal key. Without a target the traversal walks until the
// frontier drains and Search returns nil.
func (t *Traversal[K, N, E]) Target(key K) *Traversal[K, N, E] {
	t.target = &key
	return t
}

// Transpose switches the traversal to the Backward direction: inbound
// edges are walked instead of outbound.
func (t *Traversal[K, N, E]) Transpose() *Traversal[K, N, E] {
	t.dir = Backward
	return t
}

// Direction sets the walk direction explicitly.
func (t *Traversal[K, N, E]) Direction(d Direction) *Traversal[K, N, E] {
	t.dir = d
	return t
}

// Map installs a side-effecting edge hook; every reachable edge is accepted.
// A nil hook resets to the accept-everything default.
func (t *Traversal[K, N, E]) Map(fn MapFunc[K, N, E]) *Traversal[K, N, E] {
	if fn == nil {
		t.cb = callback[K, N, E]{}
		return t
	}
	t.cb = callback[K, N, E]{kind: cbMap, mapFn: fn}

	return t
}

// Filter installs a predicate hook; an edge is followed iff fn returns true.
// A nil hook resets to the accept-everything default.
func (t *Traversal[K, N, E]) Filter(fn FilterFunc[K, N, E]) *Traversal[K, N, E] {
	if fn == nil {
		t.cb = callback[K, N, E]{}
		return t
	}
	t.cb = callback[K, N, E]{kind: cbFilter, filterFn: fn}

	return t
}

// FilterMap installs a predicate hook that may also side-effect.
// Acceptance semantics are identical to Filter.
func (t *Traversal[K, N, E]) FilterMap(fn FilterFunc[K, N, E]) *Traversal[K, N, E] {
	if fn == nil {
		t.cb = callback[K, N, E]{}
		return t
	}
	t.cb = callback[K, N, E]{kind: cbFilterMap, filterFn: fn}

	return t
}

// Min sets the min-priority discipline (PFS only; no effect otherwise).
func (t *Traversal[K, N, E]) Min() *Traversal[K, N, E] {
	t.prio = Min
	return t
}

// Max sets the max-priority discipline (PFS only; no effect otherwise).
func (t *Traversal[K, N, E]) Max() *Traversal[K, N, E] {
	t.prio = Max
	return t
}

// Search walks the graph and returns the first node matching the target,
// or nil when the target is absent or unreachable.
func (t *Traversal[K, N, E]) Search() *core.Node[K, N, E] {
	found, _ := t.run(false)
	return found
}

// SearchPath walks the graph and returns the reconstructed edge trace from
// the root to the target, or nil when unreachable. The root being the
// target yields nil: no edge was traversed (use SearchCycle for loops).
func (t *Traversal[K, N, E]) SearchPath() *core.Path[K, N, E] {
	found, parent := t.run(false)
	if found == nil {
		return nil
	}

	return t.reconstruct(found, parent)
}

// PathEdges returns the flat edge list of the root→target route, or nil.
func (t *Traversal[K, N, E]) PathEdges() []core.Edge[K, N, E] {
	p := t.SearchPath()
	if p == nil {
		return nil
	}

	return p.Edges()
}

// PathNodes returns the node sequence of the root→target route, or nil.
func (t *Traversal[K, N, E]) PathNodes() []*core.Node[K, N, E] {
	p := t.SearchPath()
	if p == nil {
		return nil
	}

	return p.Nodes()
}

// SearchCycle re-targets the traversal at its own root and leaves the root
// out of the initial visited set, so rediscovering it through a self-loop
// or any back edge terminates successfully. Returns the cycle as a path
// beginning and ending at the root key, or nil on an acyclic reach.
func (t *Traversal[K, N, E]) SearchCycle() *core.Path[K, N, E] {
	found, parent := t.run(true)
	if found == nil {
		return nil
	}

	return t.reconstruct(found, parent)
}
