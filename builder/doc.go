// Package builder provides fluent, declarative construction of Digraphs:
// the programmatic equivalent of a graph-literal syntax.
//
// Each call line reads like a literal entry: declare a node with its
// payload, or declare an edge and let missing endpoints spring into
// existence with zero-value payloads:
//
//	g := builder.New[int, string, int]().
//		Node(0, "root").
//		Edge(0, 1, 4).
//		Edge(0, 2, 8).
//		Mutual(2, 3, 1). // both orientations: the undirected variant
//		Graph()
//
// Construction is deterministic for a fixed call order. Builder methods
// never panic at runtime and never fail: duplicate node declarations
// overwrite the payload in place, duplicate edge declarations are no-ops,
// both per the container's insert/connect semantics.
package builder
