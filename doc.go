// Package gdsl is a generic directed-graph data-structure library for Go.
//
// 🚀 What is gdsl?
//
//	A small, modern library built around shared vertex handles and one
//	composable traversal engine:
//
//	  • Core primitives: Node[K, N, E] vertices with ordered outbound and
//	    inbound adjacency, connected by directed edges
//	  • Traversals: DFS, BFS, and priority-first search (min or max),
//	    forward or transposed, with Map/Filter/FilterMap edge hooks
//	  • Containers: a keyed Digraph collection with bulk operations
//	    and a declarative builder for literal-style construction
//
// ✨ Why choose gdsl?
//
//   - Generic               — key, vertex payload, and edge payload are all type parameters
//   - One search driver     — every order and direction runs the same frontier loop
//   - Pure Go               — no cgo; third-party code only in the test suites and errgroup for parallel BFS
//
// Everything is organized under four subpackages:
//
//	core/     — Node, adjacency, edge views, and the Path result type
//	traverse/ — the Traversal builder and the generic search driver
//	digraph/  — the keyed Digraph container with traversal forwarders
//	builder/  — fluent declarative graph construction
//
// Quick ASCII example:
//
//	    0 ──▶ 1
//	    │     │
//	    ▼     ▼
//	    2 ──▶ 3
//
//	a four-vertex digraph; g.BFS(0).Target(3).PathNodes() walks it.
//
// See each subpackage's doc.go for contracts, complexity notes, and examples.
//
//	go get github.com/katalvlaran/gdsl
package gdsl
