package core_test

import (
	"fmt"

	"github.com/katalvlaran/gdsl/core"
)

// ExampleNode_IterOut walks a node's outbound adjacency in insertion order.
func ExampleNode_IterOut() {
	a := core.New[string, int, float64]("A", 42)
	b := core.New[string, int, float64]("B", 6)
	c := core.New[string, int, float64]("C", 7)

	a.Connect(b, 0.5)
	a.Connect(c, 1.7)

	for e := range a.IterOut() {
		fmt.Println(e)
	}
	// Output:
	// A -> B : 0.5
	// A -> C : 1.7
}

// ExampleNode_IterIn shows that inbound iteration keeps edges oriented
// from→to: the peer appears first.
func ExampleNode_IterIn() {
	a := core.New[string, int, int]("A", 0)
	b := core.New[string, int, int]("B", 0)

	a.Connect(b, 9)

	for e := range b.IterIn() {
		fmt.Println(e)
	}
	// Output:
	// A -> B : 9
}

// ExampleNode_Isolate disconnects a node from all peers in one call.
func ExampleNode_Isolate() {
	hub := core.New[int, string, int](0, "hub")
	spoke := core.New[int, string, int](1, "spoke")

	hub.Connect(spoke, 1)
	spoke.Connect(hub, 1)

	hub.Isolate()
	fmt.Println(hub.IsOrphan(), spoke.IsOrphan())
	// Output:
	// true true
}
