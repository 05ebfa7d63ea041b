// Package traverse: the generic search driver.
//
// One frontier loop serves every order, direction, hook shape, and
// termination mode. Per popped node, edges are visited in adjacency
// insertion order; acceptance marks the peer visited, records its parent
// edge, and either terminates on target match or pushes the peer.

package traverse

import (
	"iter"

	"github.com/katalvlaran/gdsl/core"
)

// run executes the frontier loop. detectCycle re-targets the root and skips
// seeding it into visited. Returns the matched node (nil on exhaustion) and
// the parent-edge map for path reconstruction.
func (t *Traversal[K, N, E]) run(detectCycle bool) (*core.Node[K, N, E], map[K]core.Edge[K, N, E]) {
	if t.root == nil {
		return nil, nil
	}

	target := t.target
	if detectCycle {
		key := t.root.Key()
		target = &key
	}

	fr := t.newFrontier()
	visited := make(map[K]struct{})
	parent := make(map[K]core.Edge[K, N, E])

	if !detectCycle {
		visited[t.root.Key()] = struct{}{}
	}
	fr.push(t.root)

	for {
		u, ok := fr.pop()
		if !ok {
			return nil, nil // frontier drained: no route
		}

		for ev := range t.edges(u) {
			v := t.next(ev)
			if _, seen := visited[v.Key()]; seen {
				continue
			}
			if !t.cb.accept(ev.Source, ev.Target, ev.Value) {
				continue
			}

			visited[v.Key()] = struct{}{}
			parent[v.Key()] = ev

			if target != nil && v.Key() == *target {
				return v, parent
			}
			fr.push(v)
		}
	}
}

// edges selects the adjacency list for the configured direction.
// Views are oriented source→target either way.
func (t *Traversal[K, N, E]) edges(u *core.Node[K, N, E]) iter.Seq[core.Edge[K, N, E]] {
	if t.dir == Backward {
		return u.IterIn()
	}

	return u.IterOut()
}

// next is the node a traversal continues from after following ev:
// the edge's target going forward, its source going backward.
func (t *Traversal[K, N, E]) next(ev core.Edge[K, N, E]) *core.Node[K, N, E] {
	if t.dir == Backward {
		return ev.Source
	}

	return ev.Target
}

// pred is the node ev was discovered from, next's counterpart, used when
// walking the parent map back toward the root.
func (t *Traversal[K, N, E]) pred(ev core.Edge[K, N, E]) *core.Node[K, N, E] {
	if t.dir == Backward {
		return ev.Target
	}

	return ev.Source
}

// reconstruct walks the parent map from the matched node back to the root
// and emits the route. Forward traces are reversed into root→target order.
// Backward traces already read found→root in the graph's own edge
// orientation and are kept as walked.
func (t *Traversal[K, N, E]) reconstruct(found *core.Node[K, N, E], parent map[K]core.Edge[K, N, E]) *core.Path[K, N, E] {
	rootKey := t.root.Key()
	edges := make([]core.Edge[K, N, E], 0, len(parent))

	cur := found.Key()
	for {
		ev, ok := parent[cur]
		if !ok {
			break
		}
		edges = append(edges, ev)
		cur = t.pred(ev).Key()
		if cur == rootKey {
			break
		}
	}

	if t.dir == Forward {
		for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
			edges[i], edges[j] = edges[j], edges[i]
		}
	}

	return core.NewPath(edges)
}
