// Package dijkstra: the relaxation loop shared by both entry points.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/mr-pathak/jia/core"
)

// Dijkstra computes shortest distances from source to all reachable
// vertices in g. The loop runs until the priority queue is empty, so
// Result.Dist holds the final distance for every vertex in index order
// (core.Inf for unreachable vertices).
//
// All edge weights must be non-negative; see the package documentation.
// Returns ErrGraphNil or ErrVertexOutOfRange for invalid input, or
// ErrBadMaxDistance for a bad option.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	return run(g, source, core.None, opts)
}

// DijkstraTo is the single-target variant: the loop terminates early once
// target is extracted as the minimum and finalized. Result.Dist[target]
// is the shortest distance (core.Inf if unreachable), and the predecessor
// chain from target back to source is complete.
func DijkstraTo(g *core.Graph, source, target int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, target)
	}

	return run(g, source, target, opts)
}

// run validates inputs, prepares per-call state and drives the loop.
// target == core.None means "all targets".
func run(g *core.Graph, source, target int, opts []Option) (*Result, error) {
	// 1) Validate graph and source.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, source)
	}

	// 2) Build options and catch any invalid ones immediately.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Per-call working state: every vertex starts unreached,
	//    parentless and unfinalized; the source sits at distance 0.
	n := g.VertexCount()
	r := &runner{
		graph:   g,
		opts:    cfg,
		target:  target,
		visited: make([]bool, n),
		pq:      make(vertexPQ, 0, n),
		res: &Result{
			Source: source,
			Target: target,
			Dist:   make([]int64, n),
			Parent: make([]int, n),
			Order:  make([]int, 0, n),
		},
	}
	for i := 0; i < n; i++ {
		r.res.Dist[i] = core.Inf
		r.res.Parent[i] = core.None
	}
	r.res.Dist[source] = 0

	// 4) Seed the heap with the source and run the main loop.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &pqItem{v: source, dist: 0})
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	graph   *core.Graph
	opts    Options
	target  int // core.None for the all-targets variant
	visited []bool
	pq      vertexPQ
	res     *Result
}

// process repeatedly extracts the minimum-distance unvisited vertex and
// relaxes its outgoing arcs.
//
// Loop termination:
//
//   - the heap becomes empty (all reachable vertices finalized), or
//   - the early-exit target is extracted and finalized, or
//   - the minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*pqItem)
		u := item.v

		// Skip stale heap entries: under lazy decrease-key a vertex may
		// sit in the queue several times; only the first pop counts.
		if r.visited[u] {
			continue
		}

		// Beyond the cap nothing closer remains in the heap: stop without
		// finalizing u.
		if item.dist > r.opts.MaxDistance {
			break
		}

		// u's distance is now final; it is never relaxed again.
		r.visited[u] = true
		r.res.Order = append(r.res.Order, u)
		r.opts.OnFinalize(u, item.dist)

		// Single-target early exit: the target is finalized, stop.
		if u == r.target {
			break
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc out of u and improves neighbor distances where a
// strictly shorter path is found, pushing a fresh heap entry per update.
func (r *runner) relax(u int) error {
	arcs, err := r.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, a := range arcs {
		// Finalized vertices are never relaxed again.
		if r.visited[a.To] {
			continue
		}

		// Skip arcs whose candidate distance would overflow int64; such
		// a neighbor is indistinguishable from unreachable.
		if a.Weight >= core.Inf-du {
			continue
		}

		newDist := du + a.Weight
		// Candidates beyond the cap are never recorded, so Dist keeps
		// core.Inf for every vertex the run does not finalize.
		if newDist > r.opts.MaxDistance {
			continue
		}
		if newDist >= r.res.Dist[a.To] {
			continue
		}

		r.res.Dist[a.To] = newDist
		r.res.Parent[a.To] = u
		heap.Push(&r.pq, &pqItem{v: a.To, dist: newDist})
	}

	return nil
}

// pqItem pairs a vertex with the distance it was pushed at.
type pqItem struct {
	v    int
	dist int64
}

// vertexPQ is a min-heap of *pqItem ordered by dist ascending. Lazy
// decrease-key: relaxation pushes duplicates, and outdated entries are
// ignored on pop via the visited check.
type vertexPQ []*pqItem

func (pq vertexPQ) Len() int            { return len(pq) }
func (pq vertexPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq vertexPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
