// Package digraph provides the keyed Digraph container: a mapping from
// unique keys to owned core.Node handles, with bulk edge operations, an
// exact cached edge count, traversal forwarders, and diagnostics.
//
// Container mutators that name a missing key are silent no-ops: the
// container is generic glue, and absence is an expected state, not a
// failure. Checked variants (TryConnect, TryDisconnect) return sentinel
// errors instead for callers that need the distinction.
//
// Errors:
//
//	ErrNoSuchNode      - checked operation referenced an absent key.
//	core.ErrEdgeExists - checked connect found an existing edge.
//	core.ErrNoSuchEdge - checked disconnect named an absent edge.
//
// A Digraph is not safe for concurrent mutation; traversal of an
// unchanging graph is safe from any number of goroutines.
package digraph
