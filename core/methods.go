// Package core: Node mutation and query methods.
//
// Every directed edge lives twice: an outbound entry at the source and a
// mirror inbound entry at the target. All mutators maintain that pairing
// atomically with respect to the calling goroutine.

package core

import "fmt"

// Connect unconditionally adds the directed edge n→target carrying value.
// Parallel edges are permitted at this level; use TryConnect to forbid them.
// Complexity: O(1) amortized.
func (n *Node[K, N, E]) Connect(target *Node[K, N, E], value E) {
	n.adj.assertMutable("Connect")
	if target != n {
		target.adj.assertMutable("Connect")
	}

	n.adj.outbound = append(n.adj.outbound, halfEdge[K, N, E]{peer: target, value: value})
	target.adj.inbound = append(target.adj.inbound, halfEdge[K, N, E]{peer: n, value: value})
}

// TryConnect adds the directed edge n→target unless an outbound edge to
// target's key already exists, in which case it returns ErrEdgeExists.
// Duplicate detection is a linear scan; adjacency lists are typically small.
// Complexity: O(deg(n)).
func (n *Node[K, N, E]) TryConnect(target *Node[K, N, E], value E) error {
	if n.IsConnected(target.key) {
		return fmt.Errorf("%w: %v -> %v", ErrEdgeExists, n.key, target.key)
	}
	n.Connect(target, value)

	return nil
}

// IsConnected reports whether an outbound edge to a peer with the given key exists.
// Complexity: O(deg(n)).
func (n *Node[K, N, E]) IsConnected(key K) bool {
	for _, he := range n.adj.outbound {
		if he.peer.key == key {
			return true
		}
	}

	return false
}

// Disconnect removes the first outbound edge to the given key together with
// its mirror inbound entry at the peer. Returns ErrNoSuchEdge if absent.
// Complexity: O(deg(n) + deg(peer)).
func (n *Node[K, N, E]) Disconnect(key K) error {
	n.adj.assertMutable("Disconnect")

	for i, he := range n.adj.outbound {
		if he.peer.key != key {
			continue
		}
		peer := he.peer
		if peer != n {
			peer.adj.assertMutable("Disconnect")
		}
		n.adj.outbound = append(n.adj.outbound[:i], n.adj.outbound[i+1:]...)
		peer.adj.dropOneInbound(n)

		return nil
	}

	return fmt.Errorf("%w: %v -> %v", ErrNoSuchEdge, n.key, key)
}

// Isolate removes every edge incident to n (outbound, inbound, and their
// mirrors at peers), leaving n alive but orphaned.
// Complexity: O(Σ deg(peer)) over all peers, O(deg(n)) peers visited.
func (n *Node[K, N, E]) Isolate() {
	n.adj.assertMutable("Isolate")

	for _, he := range n.adj.outbound {
		if he.peer == n {
			continue // self-loop entries vanish with the clear below
		}
		he.peer.adj.assertMutable("Isolate")
		he.peer.adj.dropAllInbound(n)
	}
	for _, he := range n.adj.inbound {
		if he.peer == n {
			continue
		}
		he.peer.adj.assertMutable("Isolate")
		he.peer.adj.dropAllOutbound(n)
	}

	n.adj.outbound = nil
	n.adj.inbound = nil
}

// IsOrphan reports whether both adjacency lists are empty.
// Complexity: O(1).
func (n *Node[K, N, E]) IsOrphan() bool {
	return len(n.adj.outbound) == 0 && len(n.adj.inbound) == 0
}

// OutDegree returns the number of outbound edges.
func (n *Node[K, N, E]) OutDegree() int { return len(n.adj.outbound) }

// InDegree returns the number of inbound edges.
func (n *Node[K, N, E]) InDegree() int { return len(n.adj.inbound) }

// dropOneInbound removes the first inbound entry whose peer is exactly node.
// Identity comparison keeps mirror removal exact under parallel edges.
func (a *adjacency[K, N, E]) dropOneInbound(node *Node[K, N, E]) {
	for i, he := range a.inbound {
		if he.peer == node {
			a.inbound = append(a.inbound[:i], a.inbound[i+1:]...)
			return
		}
	}
}

// dropAllInbound removes every inbound entry whose peer is exactly node.
func (a *adjacency[K, N, E]) dropAllInbound(node *Node[K, N, E]) {
	kept := a.inbound[:0]
	for _, he := range a.inbound {
		if he.peer != node {
			kept = append(kept, he)
		}
	}
	a.inbound = kept
}

// dropAllOutbound removes every outbound entry whose peer is exactly node.
func (a *adjacency[K, N, E]) dropAllOutbound(node *Node[K, N, E]) {
	kept := a.outbound[:0]
	for _, he := range a.outbound {
		if he.peer != node {
			kept = append(kept, he)
		}
	}
	a.outbound = kept
}
