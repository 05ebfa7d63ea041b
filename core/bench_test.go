package core_test

import (
	"testing"

	"github.com/katalvlaran/gdsl/core"
)

// BenchmarkConnect measures pushing edges onto a single hub node.
func BenchmarkConnect(b *testing.B) {
	hub := core.New[int, struct{}, int](0, struct{}{})
	peers := make([]*core.Node[int, struct{}, int], 1024)
	for i := range peers {
		peers[i] = core.New[int, struct{}, int](i+1, struct{}{})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hub.Connect(peers[i%len(peers)], i)
	}
}

// BenchmarkIterOut measures a full adjacency sweep over a 1k-degree node.
func BenchmarkIterOut(b *testing.B) {
	const degree = 1000
	hub := core.New[int, struct{}, int](0, struct{}{})
	for i := 0; i < degree; i++ {
		hub.Connect(core.New[int, struct{}, int](i+1, struct{}{}), i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int
		for e := range hub.IterOut() {
			sum += e.Value
		}
		_ = sum
	}
}
