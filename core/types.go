// This file declares Node, its adjacency storage, sentinel errors,
// and the New constructor.

package core

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Sentinel errors for core node operations.
var (
	// ErrEdgeExists indicates TryConnect found an outbound edge to the target key.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrNoSuchEdge indicates an operation referenced a non-existent edge.
	ErrNoSuchEdge = errors.New("core: no such edge")
)

// halfEdge is a single adjacency entry: the peer endpoint plus the edge payload.
// The peer pointer is non-owning in spirit; the Go runtime collects cycles,
// so no weak-handle machinery is needed.
type halfEdge[K comparable, N any, E any] struct {
	peer  *Node[K, N, E]
	value E
}

// adjacency holds the two ordered edge lists owned by a node.
// Insertion order is preserved and observable through iteration.
//
// borrows counts live adjacency iterators. Mutators refuse to run while
// it is non-zero; the counter is atomic so disjoint nodes can be iterated
// from concurrent goroutines (see traverse.SearchParallel).
type adjacency[K comparable, N any, E any] struct {
	outbound []halfEdge[K, N, E]
	inbound  []halfEdge[K, N, E]

	borrows atomic.Int32
}

// Node is a shared-ownership vertex: a key, a payload, and adjacency.
//
// Two *Node values referring to the same vertex compare equal with ==;
// equality of keys says nothing about identity. The payload is mutable
// through SetValue, which traversal hooks use for relaxation-style updates.
type Node[K comparable, N any, E any] struct {
	key   K
	value N
	adj   adjacency[K, N, E]
}

// New creates a node with the given key and payload and empty adjacency.
// Complexity: O(1).
func New[K comparable, N any, E any](key K, value N) *Node[K, N, E] {
	return &Node[K, N, E]{key: key, value: value}
}

// Key returns the node's key.
func (n *Node[K, N, E]) Key() K { return n.key }

// Value returns the node's payload.
func (n *Node[K, N, E]) Value() N { return n.value }

// SetValue replaces the node's payload.
// Safe to call from traversal hooks; the payload is not borrow-guarded.
func (n *Node[K, N, E]) SetValue(value N) { n.value = value }

// String renders the node as "key : value" for diagnostics.
func (n *Node[K, N, E]) String() string {
	return fmt.Sprintf("%v : %v", n.key, n.value)
}

// assertMutable panics if the adjacency is being iterated.
// op names the caller for the panic message.
func (a *adjacency[K, N, E]) assertMutable(op string) {
	if a.borrows.Load() != 0 {
		panic("core: " + op + " during adjacency iteration")
	}
}
