// Package traverse: level-synchronous parallel breadth-first search.
//
// A work-distributing variant of the BFS order: each frontier level is
// expanded concurrently, one goroutine per node, bounded by GOMAXPROCS.
// The observable result matches the sequential BFS modulo intra-level
// ordering ties. Edge hooks must be safe for concurrent use, and may run
// for an edge whose target loses the insertion race to a sibling level
// member; the sequential driver never does this, as it checks the visited
// set before running the hook.

package traverse

import (
	"errors"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gdsl/core"
)

// errTargetFound ends the matching goroutine's edge loop once the target is
// matched. The group has no shared cancellation: the other goroutines of the
// level run to completion, and no further level is expanded.
var errTargetFound = errors.New("traverse: target found")

// SearchParallel is Search with concurrent level expansion. Only the BFS
// order distributes work; other orders fall back to the sequential driver
// (their pop disciplines are inherently serial).
func (t *Traversal[K, N, E]) SearchParallel() *core.Node[K, N, E] {
	if t.ord != orderBFS || t.root == nil {
		return t.Search()
	}

	var (
		mu      sync.Mutex
		visited = map[K]struct{}{t.root.Key(): {}}
		found   *core.Node[K, N, E]
	)

	level := []*core.Node[K, N, E]{t.root}
	for len(level) > 0 && found == nil {
		next := make([]*core.Node[K, N, E], 0, len(level))

		g := new(errgroup.Group)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for _, u := range level {
			g.Go(func() error {
				for ev := range t.edges(u) {
					v := t.next(ev)

					mu.Lock()
					_, seen := visited[v.Key()]
					mu.Unlock()
					if seen {
						continue
					}

					if !t.cb.accept(ev.Source, ev.Target, ev.Value) {
						continue
					}

					mu.Lock()
					if _, raced := visited[v.Key()]; raced {
						mu.Unlock()
						continue
					}
					visited[v.Key()] = struct{}{}
					if t.target != nil && v.Key() == *t.target {
						found = v
						mu.Unlock()
						return errTargetFound
					}
					next = append(next, v)
					mu.Unlock()
				}

				return nil
			})
		}
		_ = g.Wait() // errTargetFound is the only error and found carries it

		level = next
	}

	return found
}
