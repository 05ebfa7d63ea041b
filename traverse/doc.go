// Package traverse implements the graph search engine: one generic frontier
// loop serving depth-first, breadth-first, and priority-first orders, in the
// forward or transposed direction, with user edge hooks.
//
// A Traversal is a fluent configuration carrier rooted at a core.Node:
//
//	target := traverse.BFS(root).Target(k).Search()
//	cycle  := traverse.DFS(root).SearchCycle()
//	pathN  := traverse.PFSMin(root).Target(k).PathNodes()
//
// Configuration axes:
//
//   - Order: DFS (LIFO), BFS (FIFO), PFS (heap keyed by node payload; Min
//     or Max discipline). PFS requires a payload comparison; PFSMin and
//     PFSMax supply one for ordered payloads.
//   - Direction: Forward walks outbound edges; Transpose switches to the
//     inbound lists, traversing the transposed graph. Edge views stay
//     oriented source→target either way.
//   - Hook: Map (side effect, edge always accepted), Filter / FilterMap
//     (edge followed only on true), or none (every edge accepted).
//   - Terminal: Search, SearchPath, PathEdges, PathNodes walk until the
//     target is found or the frontier drains; SearchCycle re-targets the
//     root and skips pre-seeding it into the visited set, so a self-loop
//     or a back edge to the root terminates successfully.
//
// Traversal terminals never return errors: absence of a result is nil.
// A Filter that always rejects explores no edges, the canonical early exit.
//
// Complexity: O(V + E) for DFS/BFS, O((V + E) log V) for PFS, plus hook cost.
package traverse
