// Package core defines the Node vertex type, its adjacency storage,
// edge views, and the Path result type shared by every traversal.
//
// A Node[K, N, E] is a shared vertex handle: K identifies it, N is the
// vertex payload, E is the per-edge payload. Handles compare by identity
// (pointer equality), never by key; copying a handle is O(1). Directed
// edges are stored twice, an outbound entry at the source and a mirror
// inbound entry at the target, so both directions of adjacency can be
// iterated in insertion order.
//
// Mutation discipline: a node's adjacency must not be mutated while one
// of its adjacency iterators is live. Violations panic immediately with
// a descriptive message rather than corrupting the lists.
//
// Errors:
//
//	ErrEdgeExists - TryConnect found an existing outbound edge to the key.
//	ErrNoSuchEdge - Disconnect named an edge that is not present.
package core
