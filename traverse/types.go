// Package traverse: configuration axes and the edge-hook variant.

package traverse

import "github.com/katalvlaran/gdsl/core"

// Direction selects which adjacency list a traversal walks.
type Direction int

const (
	// Forward walks outbound edges.
	Forward Direction = iota

	// Backward walks inbound edges, traversing the transposed graph.
	Backward
)

// Priority selects the pop discipline of a priority-first search.
type Priority int

const (
	// Min pops the node with the smallest payload first.
	Min Priority = iota

	// Max pops the node with the largest payload first.
	Max
)

// MapFunc is a side-effecting edge hook; the edge is always accepted.
type MapFunc[K comparable, N any, E any] func(u, v *core.Node[K, N, E], e E)

// FilterFunc is a filtering edge hook; the edge is followed iff it returns
// true. Side effects are permitted (the FilterMap shape).
type FilterFunc[K comparable, N any, E any] func(u, v *core.Node[K, N, E], e E) bool

// cbKind tags the four hook shapes: none, Map, Filter, FilterMap.
type cbKind uint8

const (
	cbNull cbKind = iota
	cbMap
	cbFilter
	cbFilterMap
)

// callback is the tagged hook variant. accept runs the hook for one edge
// and reports whether the traversal should follow it, collapsing the four
// shapes into a single driver-side call.
type callback[K comparable, N any, E any] struct {
	kind     cbKind
	mapFn    MapFunc[K, N, E]
	filterFn FilterFunc[K, N, E]
}

func (c callback[K, N, E]) accept(u, v *core.Node[K, N, E], e E) bool {
	switch c.kind {
	case cbMap:
		c.mapFn(u, v, e)
		return true
	case cbFilter, cbFilterMap:
		return c.filterFn(u, v, e)
	default:
		return true
	}
}
