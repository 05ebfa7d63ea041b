// Package traverse: frontier strategies behind the generic driver.
//
// The driver is agnostic to pop discipline; each search order supplies a
// frontier. DFS uses a LIFO stack, BFS a FIFO queue, PFS a heap whose
// comparisons read live node payloads: re-prioritization by a hook (the
// relaxation idiom) is therefore observed by later sift operations, matching
// a heap of shared handles.

package traverse

import (
	"container/heap"

	"github.com/katalvlaran/gdsl/core"
)

// frontier is the driver's yet-to-expand node store.
type frontier[K comparable, N any, E any] interface {
	push(n *core.Node[K, N, E])
	pop() (*core.Node[K, N, E], bool)
}

// newFrontier selects the strategy for the configured order.
func (t *Traversal[K, N, E]) newFrontier() frontier[K, N, E] {
	switch t.ord {
	case orderBFS:
		return &fifo[K, N, E]{}
	case orderPFS:
		less := t.less
		if t.prio == Max {
			asc := less
			less = func(a, b N) bool { return asc(b, a) }
		}
		return &valueHeap[K, N, E]{less: less}
	default:
		return &lifo[K, N, E]{}
	}
}

// lifo is the DFS stack. Neighbors are pushed in adjacency order, so the
// walk descends into the last-pushed neighbor first.
type lifo[K comparable, N any, E any] struct {
	items []*core.Node[K, N, E]
}

func (s *lifo[K, N, E]) push(n *core.Node[K, N, E]) { s.items = append(s.items, n) }

func (s *lifo[K, N, E]) pop() (*core.Node[K, N, E], bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	n := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = nil // release the handle
	s.items = s.items[:len(s.items)-1]

	return n, true
}

// fifo is the BFS queue; head indexes into a grow-only slice.
type fifo[K comparable, N any, E any] struct {
	items []*core.Node[K, N, E]
	head  int
}

func (q *fifo[K, N, E]) push(n *core.Node[K, N, E]) { q.items = append(q.items, n) }

func (q *fifo[K, N, E]) pop() (*core.Node[K, N, E], bool) {
	if q.head == len(q.items) {
		return nil, false
	}
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++

	return n, true
}

// valueHeap is the PFS frontier: container/heap over node handles, ordered
// by the payload comparison at sift time. Ties break in heap order,
// unspecified but stable within one run.
type valueHeap[K comparable, N any, E any] struct {
	nodes []*core.Node[K, N, E]
	less  func(a, b N) bool
}

func (h *valueHeap[K, N, E]) Len() int { return len(h.nodes) }

func (h *valueHeap[K, N, E]) Less(i, j int) bool {
	return h.less(h.nodes[i].Value(), h.nodes[j].Value())
}

func (h *valueHeap[K, N, E]) Swap(i, j int) { h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i] }

func (h *valueHeap[K, N, E]) Push(x any) { h.nodes = append(h.nodes, x.(*core.Node[K, N, E])) }

func (h *valueHeap[K, N, E]) Pop() any {
	old := h.nodes
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.nodes = old[:n-1]

	return item
}

func (h *valueHeap[K, N, E]) push(n *core.Node[K, N, E]) { heap.Push(h, n) }

func (h *valueHeap[K, N, E]) pop() (*core.Node[K, N, E], bool) {
	if len(h.nodes) == 0 {
		return nil, false
	}

	return heap.Pop(h).(*core.Node[K, N, E]), true
}
